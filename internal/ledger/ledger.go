// Package ledger keeps the ordered log of played rounds and derives team
// scores from it.
//
// Team totals are never accumulated incrementally. Every read replays the
// scoring rules over the bids in the ledger, so a total is always a pure
// function of the round list.
package ledger

import (
	"errors"
	"fmt"

	"github.com/mmynk/fivehundred/internal/calculator"
	"github.com/mmynk/fivehundred/internal/models"
)

// ErrRoundNotFound is returned when a round id is not in the ledger.
var ErrRoundNotFound = errors.New("round not found")

// Ledger is an ordered list of rounds in play order.
// It is not safe for concurrent use.
type Ledger struct {
	rounds []models.Round
}

// New creates a ledger holding a copy of rounds, with every cached delta
// recomputed from its bid.
func New(rounds []models.Round) *Ledger {
	l := &Ledger{rounds: make([]models.Round, 0, len(rounds))}
	for _, r := range rounds {
		l.rounds = append(l.rounds, rescore(r))
	}
	return l
}

// rescore refreshes the cached deltas of a round from its bid.
func rescore(r models.Round) models.Round {
	r.BiddingTeamScore, r.NonBiddingTeamScore = calculator.Score(r.Bid)
	return r
}

// Append adds a round at the end of the ledger and returns it as stored.
func (l *Ledger) Append(r models.Round) models.Round {
	r = rescore(r)
	l.rounds = append(l.rounds, r)
	return r
}

// Delete removes the round with the given id.
func (l *Ledger) Delete(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	l.rounds = append(l.rounds[:i:i], l.rounds[i+1:]...)
	return nil
}

// Edit replaces the bid of the round with the given id, keeping its id,
// timestamp and position, and returns the updated round.
func (l *Ledger) Edit(id string, bid models.Bid) (models.Round, error) {
	i := l.index(id)
	if i < 0 {
		return models.Round{}, fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	r := l.rounds[i]
	r.Bid = bid
	l.rounds[i] = rescore(r)
	return l.rounds[i], nil
}

func (l *Ledger) index(id string) int {
	for i := range l.rounds {
		if l.rounds[i].ID == id {
			return i
		}
	}
	return -1
}

// Rounds returns a copy of the rounds in play order.
func (l *Ledger) Rounds() []models.Round {
	return models.CloneRounds(l.rounds)
}

// Len returns the number of rounds.
func (l *Ledger) Len() int {
	return len(l.rounds)
}

// Totals replays the scoring rules over every bid and returns each team's
// score, indexed by team id. The bidding team of a round receives its
// bidding delta and the other team its non-bidding delta. Rounds naming an
// unknown team contribute nothing.
func (l *Ledger) Totals() [models.NumTeams]int {
	var totals [models.NumTeams]int
	for _, r := range l.rounds {
		team := r.Bid.TeamID
		if team < 0 || team >= models.NumTeams {
			continue
		}
		bidding, nonBidding := calculator.Score(r.Bid)
		totals[team] += bidding
		totals[models.OtherTeam(team)] += nonBidding
	}
	return totals
}

// ApplyTotals returns copies of teams with Score set from Totals.
func (l *Ledger) ApplyTotals(teams []models.Team) []models.Team {
	totals := l.Totals()
	out := models.CloneTeams(teams)
	for i := range out {
		if id := out[i].ID; id >= 0 && id < models.NumTeams {
			out[i].Score = totals[id]
		}
	}
	return out
}
