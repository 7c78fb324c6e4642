// Package game implements a 500 scoring session: setup, bid submission,
// history edits, undo/redo and import, moving between the setup, active and
// game-over states.
//
// A Session is a single-threaded state machine. Every method runs to
// completion and callers that share a session must serialise access.
package game

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/fivehundred/internal/calculator"
	"github.com/mmynk/fivehundred/internal/ledger"
	"github.com/mmynk/fivehundred/internal/models"
)

var (
	ErrNotStarted     = errors.New("game has not been set up")
	ErrAlreadyStarted = errors.New("game is already set up")
	ErrGameOver       = errors.New("game is over")
	ErrInvalidSetup   = errors.New("invalid team setup")
	ErrInvalidImport  = errors.New("invalid imported game")
)

// State is the lifecycle phase of a session.
type State int

const (
	StateSetup State = iota
	StateActive
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateActive:
		return "active"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source used for round timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator sets the generator used for new round ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// Session owns the teams and the round ledger of one game.
type Session struct {
	teams    []models.Team
	ledger   *ledger.Ledger
	gameOver bool
	winner   int
	history  history

	// roundStart is when the current round began, for DurationMs.
	roundStart time.Time

	now   func() time.Time
	newID func() string
}

// NewSession creates a session in the setup state.
func NewSession(opts ...Option) *Session {
	s := &Session{
		ledger:  ledger.New(nil),
		winner:  calculator.NoWinner,
		history: newHistory(),
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) started() bool {
	return len(s.teams) == models.NumTeams
}

// State reports the current lifecycle phase.
func (s *Session) State() State {
	switch {
	case !s.started():
		return StateSetup
	case s.gameOver:
		return StateGameOver
	default:
		return StateActive
	}
}

// Setup starts a game with two teams. Scores start at zero, the round list
// is empty and the history holds a single snapshot.
func (s *Session) Setup(teams []models.Team) error {
	if s.started() {
		return ErrAlreadyStarted
	}
	normalized, err := normalizeTeams(teams)
	if err != nil {
		return err
	}

	s.teams = normalized
	s.ledger = ledger.New(nil)
	s.evaluate()
	s.history = newHistory()
	s.pushHistory()
	s.roundStart = s.now()
	return nil
}

// SubmitBid scores a finished round, appends it to the ledger and
// re-evaluates the game. Bids are rejected once the game is over.
func (s *Session) SubmitBid(bid models.Bid) (models.Round, error) {
	if !s.started() {
		return models.Round{}, ErrNotStarted
	}
	if s.gameOver {
		return models.Round{}, ErrGameOver
	}
	if err := calculator.ValidateBid(bid); err != nil {
		return models.Round{}, err
	}

	now := s.now()
	r := s.ledger.Append(models.Round{
		ID:         s.newID(),
		Bid:        bid,
		Timestamp:  now.UnixMilli(),
		DurationMs: now.Sub(s.roundStart).Milliseconds(),
	})
	s.recompute()
	s.pushHistory()
	s.roundStart = now
	return r, nil
}

// DeleteRound removes a round and rescores the game, which may end or
// reopen it.
func (s *Session) DeleteRound(id string) error {
	if !s.started() {
		return ErrNotStarted
	}
	if err := s.ledger.Delete(id); err != nil {
		return err
	}
	s.recompute()
	s.pushHistory()
	return nil
}

// EditRound replaces the bid of a round, rescoring that round from the new
// bid and the game from the whole ledger.
func (s *Session) EditRound(id string, bid models.Bid) (models.Round, error) {
	if !s.started() {
		return models.Round{}, ErrNotStarted
	}
	if err := calculator.ValidateBid(bid); err != nil {
		return models.Round{}, err
	}
	r, err := s.ledger.Edit(id, bid)
	if err != nil {
		return models.Round{}, err
	}
	s.recompute()
	s.pushHistory()
	return r, nil
}

// Undo steps back one history entry. It reports false at the start of the
// history.
func (s *Session) Undo() bool {
	snap, ok := s.history.undo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// Redo steps forward one history entry. It reports false at the end of the
// history.
func (s *Session) Redo() bool {
	snap, ok := s.history.redo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// Reset returns the session to the setup state and drops all history.
func (s *Session) Reset() {
	s.teams = nil
	s.ledger = ledger.New(nil)
	s.gameOver = false
	s.winner = calculator.NoWinner
	s.history = newHistory()
	s.roundStart = time.Time{}
}

// Import replaces the whole game with the given teams and rounds. Team
// scores are recomputed from the rounds and the history restarts with the
// imported state. On error the session is left untouched.
func (s *Session) Import(teams []models.Team, rounds []models.Round) error {
	normalized, err := normalizeTeams(teams)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	checked, err := s.checkRounds(rounds)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}

	s.teams = normalized
	s.ledger = ledger.New(checked)
	s.recompute()
	s.history = newHistory()
	s.pushHistory()
	s.roundStart = s.now()
	return nil
}

// checkRounds validates imported rounds and assigns ids to rounds that have
// none. Duplicate ids are rejected.
func (s *Session) checkRounds(rounds []models.Round) ([]models.Round, error) {
	out := make([]models.Round, 0, len(rounds))
	seen := make(map[string]bool, len(rounds))
	for i, r := range rounds {
		if err := calculator.ValidateBid(r.Bid); err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		if r.ID == "" {
			r.ID = s.newID()
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("round %d: duplicate id %s", i+1, r.ID)
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out, nil
}

// normalizeTeams checks the team setup and returns copies ordered by id with
// zero scores.
func normalizeTeams(teams []models.Team) ([]models.Team, error) {
	if len(teams) != models.NumTeams {
		return nil, fmt.Errorf("%w: need exactly %d teams, got %d", ErrInvalidSetup, models.NumTeams, len(teams))
	}
	out := models.CloneTeams(teams)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	for i := range out {
		if out[i].ID != i {
			return nil, fmt.Errorf("%w: team ids must be 0 and 1", ErrInvalidSetup)
		}
		if n := len(out[i].Players); n != 2 && n != 3 {
			return nil, fmt.Errorf("%w: team %d has %d players, want 2 or 3", ErrInvalidSetup, i, n)
		}
		out[i].Score = 0
	}
	if len(out[0].Players) != len(out[1].Players) {
		return nil, fmt.Errorf("%w: teams must have the same number of players", ErrInvalidSetup)
	}
	return out, nil
}

func (s *Session) recompute() {
	s.teams = s.ledger.ApplyTotals(s.teams)
	s.evaluate()
}

func (s *Session) evaluate() {
	s.gameOver, s.winner = calculator.CheckGameOver(s.Scores())
}

func (s *Session) restore(snap Snapshot) {
	s.teams = snap.Teams
	s.ledger = ledger.New(snap.Rounds)
	s.evaluate()
}

func (s *Session) pushHistory() {
	s.history.push(s.Snapshot())
}

// Snapshot returns a deep copy of the current teams and rounds.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Teams:  models.CloneTeams(s.teams),
		Rounds: s.ledger.Rounds(),
	}
}

// Teams returns a copy of the teams ordered by id. It is empty during setup.
func (s *Session) Teams() []models.Team {
	return models.CloneTeams(s.teams)
}

// Rounds returns a copy of the rounds in play order.
func (s *Session) Rounds() []models.Round {
	return s.ledger.Rounds()
}

// Scores returns the team scores indexed by team id.
func (s *Session) Scores() [models.NumTeams]int {
	var scores [models.NumTeams]int
	for _, t := range s.teams {
		if t.ID >= 0 && t.ID < models.NumTeams {
			scores[t.ID] = t.Score
		}
	}
	return scores
}

// GameOver reports whether a team has won.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// WinningTeamID returns the winning team id, or calculator.NoWinner.
func (s *Session) WinningTeamID() int {
	return s.winner
}

// CanUndo reports whether Undo would change the state.
func (s *Session) CanUndo() bool {
	return s.history.canUndo()
}

// CanRedo reports whether Redo would change the state.
func (s *Session) CanRedo() bool {
	return s.history.canRedo()
}
