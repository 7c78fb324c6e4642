package models

// Round is an immutable record of one completed bid.
type Round struct {
	// ID is the unique identifier for the round (UUID format).
	ID string `json:"id"`

	Bid Bid `json:"bid"`

	// Timestamp is the Unix time in milliseconds when the round was recorded.
	Timestamp int64 `json:"timestamp"`

	// BiddingTeamScore and NonBiddingTeamScore cache the score deltas for
	// display. They are refreshed whenever the bid changes and are never
	// used to compute team totals.
	BiddingTeamScore    int `json:"biddingTeamScore"`
	NonBiddingTeamScore int `json:"nonBiddingTeamScore"`

	// DurationMs is how long the round took to play, measured from the
	// previous round (or game start). Zero when unknown.
	DurationMs int64 `json:"durationMs,omitempty"`
}

// DeltaFor returns the cached delta this round contributed to teamID.
func (r Round) DeltaFor(teamID int) int {
	if r.Bid.TeamID == teamID {
		return r.BiddingTeamScore
	}
	return r.NonBiddingTeamScore
}

// CloneRounds copies a slice of rounds. Rounds hold no references, so a
// shallow element copy is a deep copy.
func CloneRounds(rounds []Round) []Round {
	if rounds == nil {
		return nil
	}
	return append([]Round(nil), rounds...)
}
