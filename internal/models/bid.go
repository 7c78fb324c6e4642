package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Suit is the trump declaration of a bid.
type Suit string

const (
	Spades     Suit = "Spades"
	Clubs      Suit = "Clubs"
	Diamonds   Suit = "Diamonds"
	Hearts     Suit = "Hearts"
	NoTrump    Suit = "No-Trump"
	Misere     Suit = "Misere"
	OpenMisere Suit = "Open Misere"
)

// LevelSuits lists the suits that are bid with a level, lowest value first.
var LevelSuits = []Suit{Spades, Clubs, Diamonds, Hearts, NoTrump}

// MisereSuits lists the fixed-value suits, lowest value first.
var MisereSuits = []Suit{Misere, OpenMisere}

// Levels are the legal bid levels for level suits.
var Levels = []int{6, 7, 8, 9, 10}

// NoLevel marks a bid without a level (Misere and Open Misere).
const NoLevel = 0

// TricksPerRound is the number of tricks played in every round.
const TricksPerRound = 10

// suitAliases maps accepted spellings to the canonical suit.
// The symbols are what the original web client stored.
var suitAliases = map[string]Suit{
	"spades":      Spades,
	"♠":           Spades,
	"♠️":          Spades,
	"clubs":       Clubs,
	"♣":           Clubs,
	"♣️":          Clubs,
	"diamonds":    Diamonds,
	"♦":           Diamonds,
	"♦️":          Diamonds,
	"hearts":      Hearts,
	"♥":           Hearts,
	"♥️":          Hearts,
	"no-trump":    NoTrump,
	"no trump":    NoTrump,
	"notrump":     NoTrump,
	"nt":          NoTrump,
	"misere":      Misere,
	"open misere": OpenMisere,
	"open-misere": OpenMisere,
}

// ParseSuit resolves a suit name or symbol.
func ParseSuit(s string) (Suit, error) {
	if suit, ok := suitAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return suit, nil
	}
	return "", fmt.Errorf("unknown suit %q", s)
}

// IsMisere reports whether the suit is scored as a fixed-value misere contract.
func (s Suit) IsMisere() bool {
	return s == Misere || s == OpenMisere
}

// IsValid reports whether s is one of the canonical suits.
func (s Suit) IsValid() bool {
	switch s {
	case Spades, Clubs, Diamonds, Hearts, NoTrump, Misere, OpenMisere:
		return true
	}
	return false
}

// UnmarshalJSON accepts any alias understood by ParseSuit. Unknown values are
// kept verbatim so validation can report them.
func (s *Suit) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("suit must be a string: %w", err)
	}
	if parsed, err := ParseSuit(raw); err == nil {
		*s = parsed
		return nil
	}
	*s = Suit(raw)
	return nil
}

// Bid is the contract called in a round together with its outcome.
type Bid struct {
	// Level is 6..10 for level suits and NoLevel for misere suits.
	Level int `json:"level"`

	Suit Suit `json:"suit"`

	// TeamID is the id of the bidding team.
	TeamID int `json:"teamId"`

	// TricksWon is the number of tricks (0..10) taken by the bidding team.
	TricksWon int `json:"tricksWon"`
}

// OppositionTricks is the number of tricks the non-bidding team took.
func (b Bid) OppositionTricks() int {
	return TricksPerRound - b.TricksWon
}

// String renders the bid as it is called at the table, e.g. "8 Hearts".
func (b Bid) String() string {
	if b.Suit.IsMisere() || b.Level == NoLevel {
		return string(b.Suit)
	}
	return fmt.Sprintf("%d %s", b.Level, b.Suit)
}

// UnmarshalJSON accepts the bidding team either as "teamId" or as an embedded
// team object ("team": {"id": 1, ...}). A bid naming no team decodes with
// TeamID -1 so validation rejects it.
func (b *Bid) UnmarshalJSON(data []byte) error {
	type plain Bid
	var wire struct {
		plain
		TeamID *int `json:"teamId"`
		Team   *struct {
			ID int `json:"id"`
		} `json:"team"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*b = Bid(wire.plain)
	switch {
	case wire.TeamID != nil:
		b.TeamID = *wire.TeamID
	case wire.Team != nil:
		b.TeamID = wire.Team.ID
	default:
		b.TeamID = -1
	}
	return nil
}
