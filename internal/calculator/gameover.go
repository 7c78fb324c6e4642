package calculator

import "github.com/mmynk/fivehundred/internal/models"

const (
	// WinningScore ends the game in favour of the team that reaches it.
	WinningScore = 500

	// BustScore ends the game against the team that falls to it.
	BustScore = -500

	// NoWinner is the winner index reported while the game continues.
	NoWinner = -1
)

// CheckGameOver evaluates team scores, indexed by team id.
//
// A team at or above WinningScore wins. Otherwise a team at or below
// BustScore loses and the other team wins. Reaching the target is checked
// first, so it takes precedence over a bust.
func CheckGameOver(scores [models.NumTeams]int) (over bool, winner int) {
	for i, s := range scores {
		if s >= WinningScore {
			return true, i
		}
	}
	for i, s := range scores {
		if s <= BustScore {
			return true, models.OtherTeam(i)
		}
	}
	return false, NoWinner
}

// GameOverReason describes why CheckGameOver ended the game: "target" when a
// team reached the winning score and "bust" when a team fell to the bust
// score. It returns "" while the game continues.
func GameOverReason(scores [models.NumTeams]int) string {
	over, winner := CheckGameOver(scores)
	if !over {
		return ""
	}
	if scores[winner] >= WinningScore {
		return "target"
	}
	return "bust"
}
