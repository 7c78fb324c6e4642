package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/fivehundred/internal/metrics"
	"github.com/mmynk/fivehundred/internal/middleware"
	"github.com/mmynk/fivehundred/internal/models"
	"github.com/mmynk/fivehundred/internal/storage"
	"github.com/mmynk/fivehundred/internal/storage/sqlite"
	pb "github.com/mmynk/fivehundred/pkg/proto"
	"github.com/mmynk/fivehundred/pkg/proto/protoconnect"
)

const testScorerHeader = "X-Test-Scorer"

// testAuthInterceptor sets the scorer named in testScorerHeader, or
// defaultScorer, as the authenticated caller.
func testAuthInterceptor(defaultScorer string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			scorerID := req.Header().Get(testScorerHeader)
			if scorerID == "" {
				scorerID = defaultScorer
			}
			ctx = middleware.WithScorer(ctx, scorerID, scorerID+"@example.com")
			return next(ctx, req)
		}
	}
}

type testEnv struct {
	client  protoconnect.ScoreServiceClient
	svc     *ScoreService
	store   storage.Store
	metrics *metrics.Metrics
	alice   string
	bob     string
	url     string
}

// setupTestServer creates a test server backed by a temporary SQLite database.
func setupTestServer(t *testing.T, opts ...Option) (*testEnv, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	alice := models.NewScorer("alice@example.com", "Alice", "x")
	bob := models.NewScorer("bob@example.com", "Bob", "x")
	for _, s := range []*models.Scorer{alice, bob} {
		if err := store.CreateScorer(context.Background(), s); err != nil {
			t.Fatalf("failed to create scorer: %v", err)
		}
	}

	m := metrics.New(prometheus.NewRegistry())
	svc := NewScoreService(store, m, opts...)
	path, handler := protoconnect.NewScoreServiceHandler(svc, connect.WithInterceptors(testAuthInterceptor(alice.ID)))

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	env := &testEnv{
		client:  protoconnect.NewScoreServiceClient(http.DefaultClient, server.URL),
		svc:     svc,
		store:   store,
		metrics: m,
		alice:   alice.ID,
		bob:     bob.ID,
		url:     server.URL,
	}

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}
	return env, cleanup
}

func fourPlayerTeams() []*pb.Team {
	return []*pb.Team{
		{Id: 0, Icon: "🐻", Players: []string{"Alice", "Bob"}},
		{Id: 1, Icon: "🦊", Players: []string{"Carol", "Dave"}},
	}
}

func createGame(t *testing.T, client protoconnect.ScoreServiceClient) *pb.GameState {
	t.Helper()
	resp, err := client.CreateGame(context.Background(), connect.NewRequest(&pb.CreateGameRequest{Teams: fourPlayerTeams()}))
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	return resp.Msg.Game
}

func submitBid(t *testing.T, client protoconnect.ScoreServiceClient, gameID string, bid *pb.Bid) *pb.SubmitBidResponse {
	t.Helper()
	resp, err := client.SubmitBid(context.Background(), connect.NewRequest(&pb.SubmitBidRequest{GameId: gameID, Bid: bid}))
	if err != nil {
		t.Fatalf("SubmitBid failed: %v", err)
	}
	return resp.Msg
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}

func scores(g *pb.GameState) [2]int32 {
	return [2]int32{g.Teams[0].Score, g.Teams[1].Score}
}

func points(values []*pb.SuitValue, suit string) int32 {
	for _, v := range values {
		if v.GetSuit() == suit {
			return v.GetPoints()
		}
	}
	return -1
}

func TestCreateGame(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	game := createGame(t, env.client)

	if game.Id == "" {
		t.Error("expected non-empty game ID")
	}
	if game.State != "active" {
		t.Errorf("state: expected 'active', got '%s'", game.State)
	}
	if len(game.Teams) != 2 || scores(game) != [2]int32{0, 0} {
		t.Errorf("unexpected teams: %+v", game.Teams)
	}
	if game.Teams[0].Label != "Alice & Bob" {
		t.Errorf("label: got '%s'", game.Teams[0].Label)
	}
	if len(game.Rounds) != 0 || game.GameOver || game.WinningTeamId != -1 {
		t.Errorf("unexpected fresh game: %+v", game)
	}
	if game.CanUndo || game.CanRedo {
		t.Error("a fresh game has nothing to undo or redo")
	}
	if game.UpdatedAt == nil {
		t.Error("expected UpdatedAt")
	}
}

func TestCreateGame_InvalidSetup(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name  string
		teams []*pb.Team
	}{
		{"one team", fourPlayerTeams()[:1]},
		{"uneven teams", []*pb.Team{
			{Id: 0, Players: []string{"A", "B", "C"}},
			{Id: 1, Players: []string{"D", "E"}},
		}},
		{"single player", []*pb.Team{
			{Id: 0, Players: []string{"A"}},
			{Id: 1, Players: []string{"B"}},
		}},
		{"duplicate ids", []*pb.Team{
			{Id: 0, Players: []string{"A", "B"}},
			{Id: 0, Players: []string{"C", "D"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.client.CreateGame(context.Background(), connect.NewRequest(&pb.CreateGameRequest{Teams: tt.teams}))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestSubmitBid(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	game := createGame(t, env.client)

	// 7 Hearts made with 8 tricks: 200 to the bidders, 2 tricks x 10 to the opponents.
	resp := submitBid(t, env.client, game.Id, &pb.Bid{Level: 7, Suit: "Hearts", TeamId: 0, TricksWon: 8})
	if resp.Round.Id == "" {
		t.Error("expected round ID")
	}
	if resp.Round.BiddingTeamScore != 200 || resp.Round.NonBiddingTeamScore != 20 {
		t.Errorf("round deltas: got %d/%d", resp.Round.BiddingTeamScore, resp.Round.NonBiddingTeamScore)
	}
	if got := scores(resp.Game); got != [2]int32{200, 20} {
		t.Errorf("scores: expected [200 20], got %v", got)
	}

	// 6 Spades failed by team 1 with 4 tricks: -40 to the bidders, 60 to team 0.
	resp = submitBid(t, env.client, game.Id, &pb.Bid{Level: 6, Suit: "♠️", TeamId: 1, TricksWon: 4})
	if resp.Round.Bid.Suit != "Spades" {
		t.Errorf("suit alias should be canonicalised, got %s", resp.Round.Bid.Suit)
	}
	if got := scores(resp.Game); got != [2]int32{260, -20} {
		t.Errorf("scores: expected [260 -20], got %v", got)
	}
	if len(resp.Game.Rounds) != 2 || !resp.Game.CanUndo {
		t.Errorf("unexpected game: %+v", resp.Game)
	}

	if got := testutil.ToFloat64(env.metrics.BidsSubmitted.WithLabelValues("Spades", "failed")); got != 1 {
		t.Errorf("failed Spades bids metric = %v, want 1", got)
	}
}

func TestSubmitBid_Invalid(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	game := createGame(t, env.client)

	tests := []struct {
		name string
		bid  *pb.Bid
	}{
		{"missing bid", nil},
		{"unknown suit", &pb.Bid{Level: 7, Suit: "Stars", TeamId: 0, TricksWon: 7}},
		{"too many tricks", &pb.Bid{Level: 7, Suit: "Clubs", TeamId: 0, TricksWon: 11}},
		{"level too low", &pb.Bid{Level: 5, Suit: "Clubs", TeamId: 0, TricksWon: 5}},
		{"level suit without level", &pb.Bid{Suit: "Clubs", TeamId: 0, TricksWon: 5}},
		{"misere with level", &pb.Bid{Level: 7, Suit: "Misere", TeamId: 0, TricksWon: 0}},
		{"bad team", &pb.Bid{Level: 7, Suit: "Clubs", TeamId: 2, TricksWon: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.client.SubmitBid(context.Background(), connect.NewRequest(&pb.SubmitBidRequest{GameId: game.Id, Bid: tt.bid}))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}

	resp, err := env.client.GetGame(context.Background(), connect.NewRequest(&pb.GetGameRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if len(resp.Msg.Game.Rounds) != 0 || resp.Msg.Game.CanUndo {
		t.Error("rejected bids must not change the game")
	}
}

func TestSubmitBid_GameOver(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	game := createGame(t, env.client)

	resp := submitBid(t, env.client, game.Id, &pb.Bid{Suit: "Open Misere", TeamId: 1, TricksWon: 0})
	if !resp.Game.GameOver || resp.Game.WinningTeamId != 1 || resp.Game.State != "game_over" {
		t.Fatalf("expected team 1 to win, got %+v", resp.Game)
	}
	if got := scores(resp.Game); got != [2]int32{0, 500} {
		t.Errorf("scores: expected [0 500], got %v", got)
	}

	_, err := env.client.SubmitBid(context.Background(), connect.NewRequest(&pb.SubmitBidRequest{
		GameId: game.Id,
		Bid:    &pb.Bid{Level: 6, Suit: "Spades", TeamId: 0, TricksWon: 6},
	}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	if got := testutil.ToFloat64(env.metrics.GamesCompleted.WithLabelValues("target")); got != 1 {
		t.Errorf("games completed metric = %v, want 1", got)
	}

	// Undoing the winning round reopens the game.
	undo, err := env.client.Undo(context.Background(), connect.NewRequest(&pb.UndoRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if undo.Msg.Game.GameOver || undo.Msg.Game.WinningTeamId != -1 {
		t.Errorf("expected game to reopen after undo: %+v", undo.Msg.Game)
	}
}

func TestDeleteRound(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	game := createGame(t, env.client)
	first := submitBid(t, env.client, game.Id, &pb.Bid{Level: 8, Suit: "Diamonds", TeamId: 0, TricksWon: 9})
	submitBid(t, env.client, game.Id, &pb.Bid{Level: 6, Suit: "No-Trump", TeamId: 1, TricksWon: 6})

	resp, err := env.client.DeleteRound(context.Background(), connect.NewRequest(&pb.DeleteRoundRequest{
		GameId:  game.Id,
		RoundId: first.Round.Id,
	}))
	if err != nil {
		t.Fatalf("DeleteRound failed: %v", err)
	}
	if len(resp.Msg.Game.Rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(resp.Msg.Game.Rounds))
	}
	// Only 6 No-Trump made with 6 tricks remains: 120 to team 1, 40 to team 0.
	if got := scores(resp.Msg.Game); got != [2]int32{40, 120} {
		t.Errorf("scores: expected [40 120], got %v", got)
	}
}

func TestDeleteRound_NotFound(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	game := createGame(t, env.client)
	submitBid(t, env.client, game.Id, &pb.Bid{Level: 6, Suit: "Clubs", TeamId: 0, TricksWon: 6})

	_, err := env.client.DeleteRound(context.Background(), connect.NewRequest(&pb.DeleteRoundRequest{
		GameId:  game.Id,
		RoundId: "no-such-round",
	}))
	assertCode(t, err, connect.CodeNotFound)

	resp, err := env.client.GetGame(context.Background(), connect.NewRequest(&pb.GetGameRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if len(resp.Msg.Game.Rounds) != 1 || resp.Msg.Game.CanRedo {
		t.Errorf("a failed delete must leave the game untouched: %+v", resp.Msg.Game)
	}
}

func TestEditRound(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	game := createGame(t, env.client)
	round := submitBid(t, env.client, game.Id, &pb.Bid{Level: 9, Suit: "Clubs", TeamId: 0, TricksWon: 9}).Round

	resp, err := env.client.EditRound(context.Background(), connect.NewRequest(&pb.EditRoundRequest{
		GameId:  game.Id,
		RoundId: round.Id,
		Bid:     &pb.Bid{Level: 9, Suit: "Clubs", TeamId: 0, TricksWon: 7},
	}))
	if err != nil {
		t.Fatalf("EditRound failed: %v", err)
	}
	if resp.Msg.Round.Id != round.Id || resp.Msg.Round.Timestamp != round.Timestamp {
		t.Error("edit must keep the round id and timestamp")
	}
	// 9 Clubs is worth 360; failing it costs 360 and the opponents take 3 tricks.
	if got := scores(resp.Msg.Game); got != [2]int32{-360, 30} {
		t.Errorf("scores: expected [-360 30], got %v", got)
	}

	_, err = env.client.EditRound(context.Background(), connect.NewRequest(&pb.EditRoundRequest{
		GameId:  game.Id,
		RoundId: "missing",
		Bid:     &pb.Bid{Level: 9, Suit: "Clubs", TeamId: 0, TricksWon: 7},
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestUndoRedo(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	game := createGame(t, env.client)
	submitBid(t, env.client, game.Id, &pb.Bid{Level: 6, Suit: "Hearts", TeamId: 0, TricksWon: 6})
	submitBid(t, env.client, game.Id, &pb.Bid{Level: 7, Suit: "Spades", TeamId: 1, TricksWon: 7})

	undo, err := env.client.Undo(ctx, connect.NewRequest(&pb.UndoRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if !undo.Msg.Moved || len(undo.Msg.Game.Rounds) != 1 || !undo.Msg.Game.CanRedo {
		t.Fatalf("unexpected state after undo: %+v", undo.Msg)
	}
	if got := scores(undo.Msg.Game); got != [2]int32{100, 40} {
		t.Errorf("scores after undo: expected [100 40], got %v", got)
	}

	redo, err := env.client.Redo(ctx, connect.NewRequest(&pb.RedoRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("Redo failed: %v", err)
	}
	if !redo.Msg.Moved || len(redo.Msg.Game.Rounds) != 2 || redo.Msg.Game.CanRedo {
		t.Fatalf("unexpected state after redo: %+v", redo.Msg)
	}

	again, err := env.client.Redo(ctx, connect.NewRequest(&pb.RedoRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("Redo failed: %v", err)
	}
	if again.Msg.Moved {
		t.Error("redo at the end of history should not move")
	}

	for i := 0; i < 2; i++ {
		if _, err := env.client.Undo(ctx, connect.NewRequest(&pb.UndoRequest{GameId: game.Id})); err != nil {
			t.Fatalf("Undo failed: %v", err)
		}
	}
	start, err := env.client.Undo(ctx, connect.NewRequest(&pb.UndoRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if start.Msg.Moved || len(start.Msg.Game.Rounds) != 0 || start.Msg.Game.CanUndo {
		t.Errorf("undo at the start of history should be a no-op: %+v", start.Msg)
	}

	// A new action after undo drops the redo branch.
	submitBid(t, env.client, game.Id, &pb.Bid{Suit: "Misere", TeamId: 0, TricksWon: 1})
	resp, err := env.client.GetGame(ctx, connect.NewRequest(&pb.GetGameRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if resp.Msg.Game.CanRedo {
		t.Error("expected redo branch to be discarded")
	}

	if got := testutil.ToFloat64(env.metrics.HistoryMoves.WithLabelValues("undo")); got != 3 {
		t.Errorf("undo metric = %v, want 3", got)
	}
}

func TestResetGame(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	game := createGame(t, env.client)
	submitBid(t, env.client, game.Id, &pb.Bid{Level: 6, Suit: "Hearts", TeamId: 0, TricksWon: 6})

	if _, err := env.client.ResetGame(ctx, connect.NewRequest(&pb.ResetGameRequest{GameId: game.Id})); err != nil {
		t.Fatalf("ResetGame failed: %v", err)
	}

	_, err := env.client.GetGame(ctx, connect.NewRequest(&pb.GetGameRequest{GameId: game.Id}))
	assertCode(t, err, connect.CodeNotFound)

	if _, err := env.store.GetGame(ctx, game.Id); err == nil {
		t.Error("expected saved game to be cleared")
	}
	if got := testutil.ToFloat64(env.metrics.LiveGames); got != 0 {
		t.Errorf("live games = %v, want 0", got)
	}
}

func TestGetGame_OtherScorer(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	game := createGame(t, env.client)

	req := connect.NewRequest(&pb.GetGameRequest{GameId: game.Id})
	req.Header().Set(testScorerHeader, env.bob)
	_, err := env.client.GetGame(context.Background(), req)
	assertCode(t, err, connect.CodeNotFound)

	_, err = env.client.GetGame(context.Background(), connect.NewRequest(&pb.GetGameRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestGetGame_ReloadsSavedGame(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	game := createGame(t, env.client)
	submitBid(t, env.client, game.Id, &pb.Bid{Level: 8, Suit: "Hearts", TeamId: 1, TricksWon: 10})

	// A second service over the same store has nothing live and must load
	// the game from storage.
	fresh := NewScoreService(env.store, metrics.New(prometheus.NewRegistry()))
	path, handler := protoconnect.NewScoreServiceHandler(fresh, connect.WithInterceptors(testAuthInterceptor(env.alice)))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()
	client := protoconnect.NewScoreServiceClient(http.DefaultClient, server.URL)

	resp, err := client.GetGame(context.Background(), connect.NewRequest(&pb.GetGameRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if len(resp.Msg.Game.Rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(resp.Msg.Game.Rounds))
	}
	if got := scores(resp.Msg.Game); got != [2]int32{0, 300} {
		t.Errorf("scores: expected [0 300], got %v", got)
	}
	if resp.Msg.Game.CanUndo {
		t.Error("a reloaded game starts a fresh history")
	}
}

func TestListGames(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	first := createGame(t, env.client)
	submitBid(t, env.client, first.Id, &pb.Bid{Level: 10, Suit: "No-Trump", TeamId: 0, TricksWon: 10})
	createGame(t, env.client)

	resp, err := env.client.ListGames(ctx, connect.NewRequest(&pb.ListGamesRequest{}))
	if err != nil {
		t.Fatalf("ListGames failed: %v", err)
	}
	if len(resp.Msg.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(resp.Msg.Games))
	}

	var found bool
	for _, g := range resp.Msg.Games {
		if g.Id != first.Id {
			continue
		}
		found = true
		if g.RoundCount != 1 || !g.GameOver || g.WinningTeamId != 0 || g.Teams[0].Score != 520 {
			t.Errorf("unexpected summary: %+v", g)
		}
	}
	if !found {
		t.Error("first game missing from listing")
	}

	req := connect.NewRequest(&pb.ListGamesRequest{})
	req.Header().Set(testScorerHeader, env.bob)
	other, err := env.client.ListGames(ctx, req)
	if err != nil {
		t.Fatalf("ListGames failed: %v", err)
	}
	if len(other.Msg.Games) != 0 {
		t.Errorf("bob should see no games, got %d", len(other.Msg.Games))
	}
}

func TestExportImport(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	game := createGame(t, env.client)
	submitBid(t, env.client, game.Id, &pb.Bid{Level: 7, Suit: "Diamonds", TeamId: 0, TricksWon: 7})
	submitBid(t, env.client, game.Id, &pb.Bid{Suit: "Misere", TeamId: 1, TricksWon: 0})

	export, err := env.client.ExportGame(ctx, connect.NewRequest(&pb.ExportGameRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("ExportGame failed: %v", err)
	}
	if !strings.HasPrefix(export.Msg.Filename, "500score-game-") || !strings.HasSuffix(export.Msg.Filename, ".json") {
		t.Errorf("unexpected filename %s", export.Msg.Filename)
	}
	var file map[string]any
	if err := json.Unmarshal([]byte(export.Msg.Content), &file); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	if file["version"] != "1.0" || file["exportDate"] == "" {
		t.Errorf("unexpected export metadata: %v", file)
	}

	t.Run("into a new game", func(t *testing.T) {
		resp, err := env.client.ImportGame(ctx, connect.NewRequest(&pb.ImportGameRequest{Content: export.Msg.Content}))
		if err != nil {
			t.Fatalf("ImportGame failed: %v", err)
		}
		imported := resp.Msg.Game
		if imported.Id == game.Id {
			t.Error("import should create a new game")
		}
		if len(imported.Rounds) != 2 || scores(imported) != [2]int32{180, 280} {
			t.Errorf("unexpected imported game: rounds=%d scores=%v", len(imported.Rounds), scores(imported))
		}
		if imported.CanUndo {
			t.Error("an imported game starts a fresh history")
		}
	})

	t.Run("tampered scores are recomputed", func(t *testing.T) {
		tampered := strings.Replace(export.Msg.Content, `"score": 180`, `"score": 9999`, 1)
		resp, err := env.client.ImportGame(ctx, connect.NewRequest(&pb.ImportGameRequest{Content: tampered}))
		if err != nil {
			t.Fatalf("ImportGame failed: %v", err)
		}
		if got := scores(resp.Msg.Game); got != [2]int32{180, 280} {
			t.Errorf("expected recomputed scores, got %v", got)
		}
	})

	t.Run("replace an existing game", func(t *testing.T) {
		target := createGame(t, env.client)
		resp, err := env.client.ImportGame(ctx, connect.NewRequest(&pb.ImportGameRequest{
			GameId:  target.Id,
			Content: export.Msg.Content,
		}))
		if err != nil {
			t.Fatalf("ImportGame failed: %v", err)
		}
		if resp.Msg.Game.Id != target.Id || len(resp.Msg.Game.Rounds) != 2 {
			t.Errorf("unexpected replaced game: %+v", resp.Msg.Game)
		}
	})

	t.Run("invalid files", func(t *testing.T) {
		for _, content := range []string{
			`not json`,
			`{"teams": []}`,
			`{"teams": "x", "rounds": []}`,
			`{"teams": [{"id":0,"players":["A","B"]}], "rounds": []}`,
		} {
			_, err := env.client.ImportGame(ctx, connect.NewRequest(&pb.ImportGameRequest{GameId: game.Id, Content: content}))
			assertCode(t, err, connect.CodeInvalidArgument)
		}

		resp, err := env.client.GetGame(ctx, connect.NewRequest(&pb.GetGameRequest{GameId: game.Id}))
		if err != nil {
			t.Fatalf("GetGame failed: %v", err)
		}
		if len(resp.Msg.Game.Rounds) != 2 || !resp.Msg.Game.CanUndo {
			t.Error("a failed import must leave the game untouched")
		}
	})
}

func TestGetScoringTable(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := env.client.GetScoringTable(context.Background(), connect.NewRequest(&pb.GetScoringTableRequest{}))
	if err != nil {
		t.Fatalf("GetScoringTable failed: %v", err)
	}
	table := resp.Msg
	if len(table.Suits) != 5 || len(table.Rows) != 5 {
		t.Fatalf("unexpected table shape: %d suits, %d rows", len(table.Suits), len(table.Rows))
	}
	if table.Rows[0].Level != 6 || points(table.Rows[0].Values, "Spades") != 40 {
		t.Errorf("6 Spades should be worth 40: %v", table.Rows[0])
	}
	if got := points(table.Rows[4].Values, "No-Trump"); got != 520 {
		t.Errorf("10 No-Trump should be worth 520, got %d", got)
	}
	if len(table.Rows[0].Values) != 5 || table.Rows[0].Values[0].Suit != "Spades" || table.Rows[0].Values[4].Suit != "No-Trump" {
		t.Errorf("row values should follow the suit order: %v", table.Rows[0].Values)
	}
	if points(table.Misere, "Misere") != 250 || points(table.Misere, "Open Misere") != 500 {
		t.Errorf("unexpected misere values: %v", table.Misere)
	}
	if table.WinningScore != 500 || table.BustScore != -500 {
		t.Errorf("unexpected thresholds: %d / %d", table.WinningScore, table.BustScore)
	}
}

// fakeClock is a settable time source shared by the service and its sessions.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (s *ScoreService) isLive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.games[id]
	return ok
}

func TestIdleGamesAreEvicted(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)}
	env, cleanup := setupTestServer(t, WithClock(clock.Now), WithIdleTimeout(time.Minute))
	defer cleanup()
	ctx := context.Background()

	game := createGame(t, env.client)
	submitBid(t, env.client, game.Id, &pb.Bid{Level: 7, Suit: "Clubs", TeamId: 0, TricksWon: 8})
	before := submitBid(t, env.client, game.Id, &pb.Bid{Level: 6, Suit: "Hearts", TeamId: 1, TricksWon: 5}).Game
	other := createGame(t, env.client)

	if got := testutil.ToFloat64(env.metrics.LiveGames); got != 2 {
		t.Fatalf("live games = %v, want 2", got)
	}

	clock.Advance(2 * time.Minute)
	if _, err := env.client.GetGame(ctx, connect.NewRequest(&pb.GetGameRequest{GameId: other.Id})); err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if env.svc.isLive(game.Id) {
		t.Fatal("idle game should have been evicted")
	}
	if got := testutil.ToFloat64(env.metrics.LiveGames); got != 1 {
		t.Errorf("live games after eviction = %v, want 1", got)
	}

	resp, err := env.client.GetGame(ctx, connect.NewRequest(&pb.GetGameRequest{GameId: game.Id}))
	if err != nil {
		t.Fatalf("GetGame after eviction failed: %v", err)
	}
	reloaded := resp.Msg.Game
	if scores(reloaded) != scores(before) || len(reloaded.Rounds) != len(before.Rounds) {
		t.Errorf("reloaded game differs: scores %v rounds %d, want %v and %d",
			scores(reloaded), len(reloaded.Rounds), scores(before), len(before.Rounds))
	}
	for i := range before.Rounds {
		if reloaded.Rounds[i].Id != before.Rounds[i].Id {
			t.Errorf("round %d id = %s, want %s", i, reloaded.Rounds[i].Id, before.Rounds[i].Id)
		}
	}
	if reloaded.CanUndo {
		t.Error("a reloaded game starts a fresh history")
	}
	if got := testutil.ToFloat64(env.metrics.LiveGames); got != 2 {
		t.Errorf("live games after reload = %v, want 2", got)
	}
}

func TestIdleEviction_SkipsBusyGames(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)}
	env, cleanup := setupTestServer(t, WithClock(clock.Now), WithIdleTimeout(time.Minute))
	defer cleanup()

	busy := createGame(t, env.client)
	other := createGame(t, env.client)

	env.svc.mu.Lock()
	g := env.svc.games[busy.Id]
	env.svc.mu.Unlock()
	g.mu.Lock()

	clock.Advance(2 * time.Minute)
	if _, err := env.client.GetGame(context.Background(), connect.NewRequest(&pb.GetGameRequest{GameId: other.Id})); err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	g.mu.Unlock()

	if !env.svc.isLive(busy.Id) {
		t.Error("a game in use must not be evicted")
	}
}

func TestResetGame_WaitingRequestSeesNotFound(t *testing.T) {
	var armed atomic.Bool
	entered := make(chan struct{}, 1)
	clock := func() time.Time {
		if armed.Load() {
			select {
			case entered <- struct{}{}:
			default:
			}
		}
		return time.Now()
	}
	env, cleanup := setupTestServer(t, WithClock(clock))
	defer cleanup()
	ctx := middleware.WithScorer(context.Background(), env.alice, "alice@example.com")

	created, err := env.svc.CreateGame(ctx, connect.NewRequest(&pb.CreateGameRequest{Teams: fourPlayerTeams()}))
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	id := created.Msg.Game.Id

	env.svc.mu.Lock()
	g := env.svc.games[id]
	env.svc.mu.Unlock()

	// Hold the game while a bid queues up behind it, then reset it the way
	// ResetGame does.
	g.mu.Lock()
	armed.Store(true)
	done := make(chan error, 1)
	go func() {
		_, err := env.svc.SubmitBid(ctx, connect.NewRequest(&pb.SubmitBidRequest{
			GameId: id,
			Bid:    &pb.Bid{Level: 6, Suit: "Spades", TeamId: 0, TricksWon: 6},
		}))
		done <- err
	}()
	<-entered

	g.session.Reset()
	g.persistence.Clear(ctx)
	env.svc.retire(g)
	g.mu.Unlock()

	assertCode(t, <-done, connect.CodeNotFound)

	_, err = env.svc.ImportGame(ctx, connect.NewRequest(&pb.ImportGameRequest{
		GameId:  id,
		Content: `{"teams":[{"id":0,"players":["A","B"]},{"id":1,"players":["C","D"]}],"rounds":[]}`,
	}))
	assertCode(t, err, connect.CodeNotFound)
	if _, err := env.store.GetGame(context.Background(), id); err == nil {
		t.Error("a reset game must not be saved again")
	}
}
