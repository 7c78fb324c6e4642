package calculator

import "testing"

func TestCheckGameOver(t *testing.T) {
	tests := []struct {
		name       string
		scores     [2]int
		wantOver   bool
		wantWinner int
		wantReason string
	}{
		{"team 0 reaches target", [2]int{500, 120}, true, 0, "target"},
		{"team 1 reaches target", [2]int{40, 620}, true, 1, "target"},
		{"team 1 busts", [2]int{120, -510}, true, 0, "bust"},
		{"team 0 busts exactly", [2]int{-500, 0}, true, 1, "bust"},
		{"close but not over", [2]int{490, 490}, false, NoWinner, ""},
		{"both deep negative but above bust", [2]int{-490, -499}, false, NoWinner, ""},
		{"target takes precedence over bust", [2]int{-520, 510}, true, 1, "target"},
		{"fresh game", [2]int{0, 0}, false, NoWinner, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			over, winner := CheckGameOver(tt.scores)
			if over != tt.wantOver || winner != tt.wantWinner {
				t.Errorf("CheckGameOver(%v) = (%v, %d), want (%v, %d)",
					tt.scores, over, winner, tt.wantOver, tt.wantWinner)
			}
			if reason := GameOverReason(tt.scores); reason != tt.wantReason {
				t.Errorf("GameOverReason(%v) = %q, want %q", tt.scores, reason, tt.wantReason)
			}
		})
	}
}
