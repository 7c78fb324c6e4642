package game

import "github.com/mmynk/fivehundred/internal/models"

// Snapshot is a deep copy of the teams and rounds at one point in time.
type Snapshot struct {
	Teams  []models.Team
	Rounds []models.Round
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Teams:  models.CloneTeams(s.Teams),
		Rounds: models.CloneRounds(s.Rounds),
	}
}

// history is a linear undo/redo stack. index points at the snapshot that
// matches the current state, or is -1 when the stack is empty.
type history struct {
	entries []Snapshot
	index   int
}

func newHistory() history {
	return history{index: -1}
}

// push records a new snapshot after the current one, dropping any redo
// entries beyond it.
func (h *history) push(s Snapshot) {
	keep := h.index + 1
	h.entries = append(h.entries[:keep:keep], s.Clone())
	h.index = len(h.entries) - 1
}

func (h *history) canUndo() bool {
	return h.index > 0
}

func (h *history) canRedo() bool {
	return h.index < len(h.entries)-1
}

func (h *history) undo() (Snapshot, bool) {
	if !h.canUndo() {
		return Snapshot{}, false
	}
	h.index--
	return h.entries[h.index].Clone(), true
}

func (h *history) redo() (Snapshot, bool) {
	if !h.canRedo() {
		return Snapshot{}, false
	}
	h.index++
	return h.entries[h.index].Clone(), true
}

func (h *history) len() int {
	return len(h.entries)
}
