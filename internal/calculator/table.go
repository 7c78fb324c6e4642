package calculator

import "github.com/mmynk/fivehundred/internal/models"

// TableRow is one level of the scoring table.
type TableRow struct {
	Level  int
	Values map[models.Suit]int
}

// Table is the reference grid of bid values shown to players.
type Table struct {
	Suits  []models.Suit
	Rows   []TableRow
	Misere map[models.Suit]int

	// OppositionTrickPoints is what the non-bidding team scores per trick.
	OppositionTrickPoints int
}

// ScoringTable builds the bid value grid for every level suit and level,
// plus the fixed misere values.
func ScoringTable() Table {
	t := Table{
		Suits:                 append([]models.Suit(nil), models.LevelSuits...),
		Misere:                make(map[models.Suit]int, len(models.MisereSuits)),
		OppositionTrickPoints: pointsPerOppositionTrick,
	}
	for _, level := range models.Levels {
		row := TableRow{Level: level, Values: make(map[models.Suit]int, len(models.LevelSuits))}
		for _, suit := range models.LevelSuits {
			row.Values[suit] = BidValue(level, suit)
		}
		t.Rows = append(t.Rows, row)
	}
	for _, suit := range models.MisereSuits {
		t.Misere[suit] = BidValue(models.NoLevel, suit)
	}
	return t
}
