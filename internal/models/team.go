package models

import "strings"

// NumTeams is the number of teams in every game.
const NumTeams = 2

// Team represents one side of the table.
type Team struct {
	// ID is 0 or 1.
	ID int `json:"id"`

	// Icon is the display icon chosen at setup (usually an emoji).
	Icon string `json:"icon"`

	// Players holds 2 names in a 4-player game and 3 in a 6-player game.
	Players []string `json:"players"`

	// Score is the team's cumulative score. It is recomputed from the
	// rounds after every change and is zero at setup.
	Score int `json:"score"`
}

// Label joins the player names for display, e.g. "Alice & Bob".
func (t Team) Label() string {
	return strings.Join(t.Players, " & ")
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	c := t
	c.Players = append([]string(nil), t.Players...)
	return c
}

// CloneTeams deep-copies a slice of teams.
func CloneTeams(teams []Team) []Team {
	if teams == nil {
		return nil
	}
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = t.Clone()
	}
	return out
}

// OtherTeam returns the id of the team opposing teamID.
func OtherTeam(teamID int) int {
	return 1 - teamID
}
