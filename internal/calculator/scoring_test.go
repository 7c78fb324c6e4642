package calculator

import (
	"errors"
	"testing"

	"github.com/mmynk/fivehundred/internal/models"
)

func TestBidValue(t *testing.T) {
	tests := []struct {
		level int
		suit  models.Suit
		want  int
	}{
		{6, models.Spades, 40},
		{6, models.Clubs, 60},
		{6, models.Diamonds, 80},
		{6, models.Hearts, 100},
		{6, models.NoTrump, 120},
		{8, models.Clubs, 260},
		{10, models.NoTrump, 520},
		{models.NoLevel, models.Misere, 250},
		{models.NoLevel, models.OpenMisere, 500},
		{7, models.Misere, 250}, // level is ignored for misere
		{models.NoLevel, models.Hearts, 0},
	}

	for _, tt := range tests {
		got := BidValue(tt.level, tt.suit)
		if got != tt.want {
			t.Errorf("BidValue(%d, %s) = %d, want %d", tt.level, tt.suit, got, tt.want)
		}
	}
}

func TestBidValue_Monotonic(t *testing.T) {
	for _, level := range models.Levels {
		for i := 1; i < len(models.LevelSuits); i++ {
			lower := BidValue(level, models.LevelSuits[i-1])
			higher := BidValue(level, models.LevelSuits[i])
			if higher <= lower {
				t.Errorf("level %d: %s (%d) should be worth more than %s (%d)",
					level, models.LevelSuits[i], higher, models.LevelSuits[i-1], lower)
			}
		}
	}
	for _, suit := range models.LevelSuits {
		for i := 1; i < len(models.Levels); i++ {
			step := BidValue(models.Levels[i], suit) - BidValue(models.Levels[i-1], suit)
			if step != 100 {
				t.Errorf("%s: level step %d -> %d adds %d, want 100", suit, models.Levels[i-1], models.Levels[i], step)
			}
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name           string
		bid            models.Bid
		wantBidding    int
		wantNonBidding int
	}{
		{
			name:           "level bid made exactly",
			bid:            models.Bid{Level: 8, Suit: models.Clubs, TricksWon: 8},
			wantBidding:    260,
			wantNonBidding: 20,
		},
		{
			name:           "level bid failed",
			bid:            models.Bid{Level: 8, Suit: models.Clubs, TricksWon: 5},
			wantBidding:    -260,
			wantNonBidding: 50,
		},
		{
			name:           "overtricks still score bid value only",
			bid:            models.Bid{Level: 6, Suit: models.Spades, TricksWon: 10},
			wantBidding:    40,
			wantNonBidding: 0,
		},
		{
			name:           "no tricks at all",
			bid:            models.Bid{Level: 7, Suit: models.NoTrump, TricksWon: 0},
			wantBidding:    -220,
			wantNonBidding: 100,
		},
		{
			name:           "misere made",
			bid:            models.Bid{Level: models.NoLevel, Suit: models.Misere, TricksWon: 0},
			wantBidding:    250,
			wantNonBidding: 0,
		},
		{
			name:           "misere failed",
			bid:            models.Bid{Level: models.NoLevel, Suit: models.Misere, TricksWon: 1},
			wantBidding:    -250,
			wantNonBidding: 0,
		},
		{
			name:           "open misere failed badly",
			bid:            models.Bid{Level: models.NoLevel, Suit: models.OpenMisere, TricksWon: 6},
			wantBidding:    -500,
			wantNonBidding: 0,
		},
		{
			name:           "level suit without level falls back to zero",
			bid:            models.Bid{Level: models.NoLevel, Suit: models.Hearts, TricksWon: 7},
			wantBidding:    0,
			wantNonBidding: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bidding, nonBidding := Score(tt.bid)
			if bidding != tt.wantBidding {
				t.Errorf("bidding = %d, want %d", bidding, tt.wantBidding)
			}
			if nonBidding != tt.wantNonBidding {
				t.Errorf("non-bidding = %d, want %d", nonBidding, tt.wantNonBidding)
			}
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	for _, suit := range append(append([]models.Suit{}, models.LevelSuits...), models.MisereSuits...) {
		levels := models.Levels
		if suit.IsMisere() {
			levels = []int{models.NoLevel}
		}
		for _, level := range levels {
			for tricks := 0; tricks <= models.TricksPerRound; tricks++ {
				bid := models.Bid{Level: level, Suit: suit, TricksWon: tricks}
				b1, n1 := Score(bid)
				b2, n2 := Score(bid)
				if b1 != b2 || n1 != n2 {
					t.Fatalf("Score(%v) not deterministic: (%d,%d) then (%d,%d)", bid, b1, n1, b2, n2)
				}
			}
		}
	}
}

func TestValidateBid(t *testing.T) {
	tests := []struct {
		name    string
		bid     models.Bid
		wantErr bool
	}{
		{"valid level bid", models.Bid{Level: 7, Suit: models.Hearts, TeamID: 1, TricksWon: 7}, false},
		{"valid misere", models.Bid{Level: models.NoLevel, Suit: models.OpenMisere, TeamID: 0, TricksWon: 0}, false},
		{"tricks above ten", models.Bid{Level: 7, Suit: models.Hearts, TricksWon: 11}, true},
		{"negative tricks", models.Bid{Level: 7, Suit: models.Hearts, TricksWon: -1}, true},
		{"level too low", models.Bid{Level: 5, Suit: models.Hearts, TricksWon: 5}, true},
		{"level too high", models.Bid{Level: 11, Suit: models.Hearts, TricksWon: 5}, true},
		{"level suit missing level", models.Bid{Level: models.NoLevel, Suit: models.Spades, TricksWon: 5}, true},
		{"misere with level", models.Bid{Level: 6, Suit: models.Misere, TricksWon: 0}, true},
		{"unknown suit", models.Bid{Level: 6, Suit: "Stars", TricksWon: 6}, true},
		{"unknown team", models.Bid{Level: 6, Suit: models.Clubs, TeamID: 2, TricksWon: 6}, true},
		{"missing team", models.Bid{Level: 6, Suit: models.Clubs, TeamID: -1, TricksWon: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBid(tt.bid)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateBid() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBid) {
				t.Errorf("expected ErrInvalidBid, got %v", err)
			}
		})
	}
}

func TestScoringTable(t *testing.T) {
	table := ScoringTable()

	if len(table.Rows) != len(models.Levels) {
		t.Fatalf("expected %d rows, got %d", len(models.Levels), len(table.Rows))
	}
	if got := table.Rows[2].Values[models.Clubs]; got != 260 {
		t.Errorf("8 Clubs = %d, want 260", got)
	}
	if got := table.Rows[4].Values[models.NoTrump]; got != 520 {
		t.Errorf("10 No-Trump = %d, want 520", got)
	}
	if table.Misere[models.Misere] != 250 || table.Misere[models.OpenMisere] != 500 {
		t.Errorf("unexpected misere values: %v", table.Misere)
	}
	if table.OppositionTrickPoints != 10 {
		t.Errorf("opposition points = %d, want 10", table.OppositionTrickPoints)
	}
}
