// Package calculator holds the pure scoring rules of 500: the value of a bid,
// the score deltas of a finished round, and the game-over predicate.
package calculator

import (
	"errors"
	"fmt"

	"github.com/mmynk/fivehundred/internal/models"
)

// ErrInvalidBid is returned by ValidateBid for a bid that cannot be scored.
var ErrInvalidBid = errors.New("invalid bid")

// baseScores are the bid values at level 6 (misere suits have no level).
var baseScores = map[models.Suit]int{
	models.Spades:     40,
	models.Clubs:      60,
	models.Diamonds:   80,
	models.Hearts:     100,
	models.NoTrump:    120,
	models.Misere:     250,
	models.OpenMisere: 500,
}

const (
	// pointsPerLevel is added for each level above 6.
	pointsPerLevel = 100

	// pointsPerOppositionTrick is scored by the non-bidding team per trick taken.
	pointsPerOppositionTrick = 10
)

// BidValue computes what a contract is worth.
// Level suits: base + (level - 6) * 100. Misere suits ignore the level.
// A level suit without a level is worth 0.
func BidValue(level int, suit models.Suit) int {
	if suit.IsMisere() {
		return baseScores[suit]
	}
	if level == models.NoLevel {
		return 0
	}
	return baseScores[suit] + (level-6)*pointsPerLevel
}

// Made reports whether the bidding team fulfilled the contract.
// Level suits need at least level tricks; misere suits need zero tricks.
func Made(bid models.Bid) bool {
	if bid.Suit.IsMisere() {
		return bid.TricksWon == 0
	}
	return bid.Level != models.NoLevel && bid.TricksWon >= bid.Level
}

// Score returns the score deltas for the bidding and non-bidding team.
//
// The non-bidding team scores 10 per trick it took on level suits whether or
// not the contract was made, and nothing on misere suits. Score is pure and
// total: it expects a bid accepted by ValidateBid, and a level suit without a
// level scores (0, 0).
func Score(bid models.Bid) (bidding, nonBidding int) {
	if !bid.Suit.IsMisere() && bid.Level == models.NoLevel {
		return 0, 0
	}

	value := BidValue(bid.Level, bid.Suit)
	if Made(bid) {
		bidding = value
	} else {
		bidding = -value
	}

	if !bid.Suit.IsMisere() {
		nonBidding = bid.OppositionTricks() * pointsPerOppositionTrick
	}
	return bidding, nonBidding
}

// ValidateBid checks that a bid can be scored. The returned error wraps
// ErrInvalidBid.
func ValidateBid(bid models.Bid) error {
	if !bid.Suit.IsValid() {
		return fmt.Errorf("%w: unknown suit %q", ErrInvalidBid, bid.Suit)
	}
	if bid.TeamID < 0 || bid.TeamID >= models.NumTeams {
		return fmt.Errorf("%w: team id %d must be 0 or 1", ErrInvalidBid, bid.TeamID)
	}
	if bid.TricksWon < 0 || bid.TricksWon > models.TricksPerRound {
		return fmt.Errorf("%w: tricks won %d must be between 0 and %d", ErrInvalidBid, bid.TricksWon, models.TricksPerRound)
	}
	if bid.Suit.IsMisere() {
		if bid.Level != models.NoLevel {
			return fmt.Errorf("%w: %s is bid without a level", ErrInvalidBid, bid.Suit)
		}
		return nil
	}
	if bid.Level < 6 || bid.Level > 10 {
		return fmt.Errorf("%w: level %d must be between 6 and 10 for %s", ErrInvalidBid, bid.Level, bid.Suit)
	}
	return nil
}
