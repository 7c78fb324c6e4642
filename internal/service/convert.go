package service

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/fivehundred/internal/calculator"
	"github.com/mmynk/fivehundred/internal/game"
	"github.com/mmynk/fivehundred/internal/models"
	pb "github.com/mmynk/fivehundred/pkg/proto"
)

func toProtoTeam(t models.Team) *pb.Team {
	return &pb.Team{
		Id:      int32(t.ID),
		Icon:    t.Icon,
		Players: append([]string{}, t.Players...),
		Score:   int32(t.Score),
		Label:   t.Label(),
	}
}

func toProtoTeams(teams []models.Team) []*pb.Team {
	out := make([]*pb.Team, len(teams))
	for i, t := range teams {
		out[i] = toProtoTeam(t)
	}
	return out
}

func fromProtoTeams(teams []*pb.Team) []models.Team {
	out := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		if t == nil {
			continue
		}
		out = append(out, models.Team{
			ID:      int(t.GetId()),
			Icon:    t.GetIcon(),
			Players: append([]string(nil), t.GetPlayers()...),
		})
	}
	return out
}

func toProtoBid(b models.Bid) *pb.Bid {
	return &pb.Bid{
		Level:     int32(b.Level),
		Suit:      string(b.Suit),
		TeamId:    int32(b.TeamID),
		TricksWon: int32(b.TricksWon),
	}
}

// fromProtoBid resolves suit aliases. An unknown suit is passed through so
// that validation rejects it with ErrInvalidBid.
func fromProtoBid(b *pb.Bid) models.Bid {
	suit, err := models.ParseSuit(b.GetSuit())
	if err != nil {
		suit = models.Suit(b.GetSuit())
	}
	return models.Bid{
		Level:     int(b.GetLevel()),
		Suit:      suit,
		TeamID:    int(b.GetTeamId()),
		TricksWon: int(b.GetTricksWon()),
	}
}

func toProtoRound(r models.Round) *pb.Round {
	return &pb.Round{
		Id:                  r.ID,
		Bid:                 toProtoBid(r.Bid),
		Timestamp:           r.Timestamp,
		BiddingTeamScore:    int32(r.BiddingTeamScore),
		NonBiddingTeamScore: int32(r.NonBiddingTeamScore),
		DurationMs:          r.DurationMs,
	}
}

func toProtoRounds(rounds []models.Round) []*pb.Round {
	out := make([]*pb.Round, len(rounds))
	for i, r := range rounds {
		out[i] = toProtoRound(r)
	}
	return out
}

func toGameState(id string, s *game.Session, updatedAt time.Time) *pb.GameState {
	return &pb.GameState{
		Id:            id,
		State:         s.State().String(),
		Teams:         toProtoTeams(s.Teams()),
		Rounds:        toProtoRounds(s.Rounds()),
		GameOver:      s.GameOver(),
		WinningTeamId: int32(s.WinningTeamID()),
		CanUndo:       s.CanUndo(),
		CanRedo:       s.CanRedo(),
		UpdatedAt:     timestamppb.New(updatedAt),
	}
}

// suitValues lists values in the order of suits.
func suitValues(suits []models.Suit, values map[models.Suit]int) []*pb.SuitValue {
	out := make([]*pb.SuitValue, 0, len(suits))
	for _, suit := range suits {
		out = append(out, &pb.SuitValue{Suit: string(suit), Points: int32(values[suit])})
	}
	return out
}

func toScoringTable(t calculator.Table) *pb.GetScoringTableResponse {
	resp := &pb.GetScoringTableResponse{
		Misere:                suitValues(models.MisereSuits, t.Misere),
		OppositionTrickPoints: int32(t.OppositionTrickPoints),
		WinningScore:          calculator.WinningScore,
		BustScore:             calculator.BustScore,
	}
	for _, suit := range t.Suits {
		resp.Suits = append(resp.Suits, string(suit))
	}
	for _, row := range t.Rows {
		resp.Rows = append(resp.Rows, &pb.ScoringRow{Level: int32(row.Level), Values: suitValues(t.Suits, row.Values)})
	}
	return resp
}
