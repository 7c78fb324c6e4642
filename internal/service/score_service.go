package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/fivehundred/internal/calculator"
	"github.com/mmynk/fivehundred/internal/game"
	"github.com/mmynk/fivehundred/internal/ledger"
	"github.com/mmynk/fivehundred/internal/metrics"
	"github.com/mmynk/fivehundred/internal/middleware"
	"github.com/mmynk/fivehundred/internal/storage"
	pb "github.com/mmynk/fivehundred/pkg/proto"
	"github.com/mmynk/fivehundred/pkg/proto/protoconnect"
)

// DefaultIdleTimeout is how long a game stays live after its last request.
const DefaultIdleTimeout = 30 * time.Minute

var (
	errAuthRequired  = errors.New("authentication required")
	errGameIDMissing = errors.New("game_id required")
	errBidMissing    = errors.New("bid required")
)

// ScoreService implements the Connect ScoreService. Each game's Session is
// single-threaded, so every live game carries its own mutex. Games idle for
// longer than the idle timeout are dropped from memory and reloaded from the
// store on their next request.
type ScoreService struct {
	store   storage.Store
	metrics *metrics.Metrics
	now     func() time.Time
	idle    time.Duration

	mu        sync.Mutex
	games     map[string]*liveGame
	lastSweep time.Time
}

// liveGame is a loaded game. closed is set, under mu, once the game has left
// the live set; a request that was waiting on mu must look the game up again.
type liveGame struct {
	mu          sync.Mutex
	id          string
	ownerID     string
	session     *game.Session
	persistence *storage.Persistence
	updatedAt   time.Time
	closed      bool

	// lastUsed is guarded by ScoreService.mu.
	lastUsed time.Time
}

// Option configures a ScoreService.
type Option func(*ScoreService)

// WithClock sets the time source for games and idle eviction.
func WithClock(now func() time.Time) Option {
	return func(s *ScoreService) { s.now = now }
}

// WithIdleTimeout sets how long an unused game stays in memory.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *ScoreService) { s.idle = d }
}

// NewScoreService creates a ScoreService backed by store.
func NewScoreService(store storage.Store, m *metrics.Metrics, opts ...Option) *ScoreService {
	s := &ScoreService{
		store:   store,
		metrics: m,
		now:     time.Now,
		idle:    DefaultIdleTimeout,
		games:   make(map[string]*liveGame),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// toConnectError maps domain errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, calculator.ErrInvalidBid),
		errors.Is(err, game.ErrInvalidSetup),
		errors.Is(err, game.ErrInvalidImport),
		errors.Is(err, storage.ErrInvalidImport):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ledger.ErrRoundNotFound),
		errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrNotStarted),
		errors.Is(err, game.ErrAlreadyStarted):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func requireScorer(ctx context.Context) (string, error) {
	scorerID := middleware.GetScorerID(ctx)
	if scorerID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errAuthRequired)
	}
	return scorerID, nil
}

func gameNotFound(gameID string) error {
	return toConnectError(fmt.Errorf("game %s: %w", gameID, storage.ErrNotFound))
}

func (s *ScoreService) newSession() *game.Session {
	return game.NewSession(game.WithClock(s.now))
}

// register adds a game to the live set.
func (s *ScoreService) register(g *liveGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.evictIdle(now)
	g.lastUsed = now
	s.games[g.id] = g
	s.metrics.LiveGames.Set(float64(len(s.games)))
}

// retire removes a game from the live set. Called with g.mu held.
func (s *ScoreService) retire(g *liveGame) {
	g.closed = true
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.games[g.id] == g {
		delete(s.games, g.id)
	}
	s.metrics.LiveGames.Set(float64(len(s.games)))
}

// evictIdle drops games unused for longer than the idle timeout. Games busy
// with a request are skipped. Called with s.mu held.
func (s *ScoreService) evictIdle(now time.Time) {
	if now.Sub(s.lastSweep) < s.idle/2 {
		return
	}
	s.lastSweep = now
	for id, g := range s.games {
		if now.Sub(g.lastUsed) <= s.idle || !g.mu.TryLock() {
			continue
		}
		g.closed = true
		delete(s.games, id)
		g.mu.Unlock()
		slog.Debug("Evicted idle game", "game_id", id, "idle", now.Sub(g.lastUsed))
	}
	s.metrics.LiveGames.Set(float64(len(s.games)))
}

// lockGame returns the scorer's game with its mutex held, loading it from
// the store if it is not live. Games owned by someone else are not found.
func (s *ScoreService) lockGame(ctx context.Context, gameID, scorerID string) (*liveGame, error) {
	if gameID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errGameIDMissing)
	}

	for {
		s.mu.Lock()
		now := s.now()
		s.evictIdle(now)
		g, ok := s.games[gameID]
		if !ok {
			var err error
			g, err = s.loadGame(ctx, gameID, scorerID)
			if err != nil {
				s.mu.Unlock()
				return nil, err
			}
			s.games[gameID] = g
			s.metrics.LiveGames.Set(float64(len(s.games)))
		}
		g.lastUsed = now
		s.mu.Unlock()

		if g.ownerID != scorerID {
			return nil, gameNotFound(gameID)
		}
		g.mu.Lock()
		if !g.closed {
			return g, nil
		}
		g.mu.Unlock()
	}
}

func (s *ScoreService) loadGame(ctx context.Context, gameID, scorerID string) (*liveGame, error) {
	p := storage.NewPersistence(s.store, gameID, scorerID)
	doc, ok := p.Load(ctx)
	if !ok {
		return nil, gameNotFound(gameID)
	}

	session := s.newSession()
	if err := session.Import(doc.Teams, doc.Rounds); err != nil {
		slog.Warn("Discarding saved game that no longer imports", "game_id", gameID, "error", err)
		p.Clear(ctx)
		return nil, gameNotFound(gameID)
	}
	slog.Debug("Loaded saved game", "game_id", gameID, "rounds", len(doc.Rounds))
	return &liveGame{
		id:          gameID,
		ownerID:     scorerID,
		session:     session,
		persistence: p,
		updatedAt:   s.now(),
	}, nil
}

// save persists the session and stamps the game. Called with g.mu held.
func (s *ScoreService) save(ctx context.Context, g *liveGame) {
	g.persistence.Save(ctx, storage.NewDocument(g.session.Teams(), g.session.Rounds()))
	g.updatedAt = s.now()
}

// observeGameOver records a game that has just finished.
func (s *ScoreService) observeGameOver(g *liveGame, wasOver bool) {
	if wasOver || !g.session.GameOver() {
		return
	}
	result := calculator.GameOverReason(g.session.Scores())
	s.metrics.ObserveGameOver(result)
	teams := g.session.Teams()
	slog.Info("Game over",
		"game_id", g.id,
		"result", result,
		"winner", teams[g.session.WinningTeamID()].Label(),
		"scores", g.session.Scores(),
	)
}

// CreateGame sets up a new game for the calling scorer.
func (s *ScoreService) CreateGame(ctx context.Context, req *connect.Request[pb.CreateGameRequest]) (*connect.Response[pb.CreateGameResponse], error) {
	scorerID, err := requireScorer(ctx)
	if err != nil {
		return nil, err
	}

	session := s.newSession()
	if err := session.Setup(fromProtoTeams(req.Msg.GetTeams())); err != nil {
		return nil, toConnectError(err)
	}

	g := &liveGame{
		id:      uuid.New().String(),
		ownerID: scorerID,
		session: session,
	}
	g.persistence = storage.NewPersistence(s.store, g.id, scorerID)

	g.mu.Lock()
	defer g.mu.Unlock()
	s.save(ctx, g)
	s.register(g)

	teams := session.Teams()
	slog.Info("Game created", "game_id", g.id, "scorer_id", scorerID, "team_0", teams[0].Label(), "team_1", teams[1].Label())
	return connect.NewResponse(&pb.CreateGameResponse{Game: toGameState(g.id, session, g.updatedAt)}), nil
}

// GetGame returns the current state of a game.
func (s *ScoreService) GetGame(ctx context.Context, req *connect.Request[pb.GetGameRequest]) (*connect.Response[pb.GetGameResponse], error) {
	scorerID, err := requireScorer(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.lockGame(ctx, req.Msg.GetGameId(), scorerID)
	if err != nil {
		return nil, err
	}
	defer g.mu.Unlock()

	return connect.NewResponse(&pb.GetGameResponse{Game: toGameState(g.id, g.session, g.updatedAt)}), nil
}

// ListGames summarises the scorer's saved games, most recent first.
func (s *ScoreService) ListGames(ctx context.Context, req *connect.Request[pb.ListGamesRequest]) (*connect.Response[pb.ListGamesResponse], error) {
	scorerID, err := requireScorer(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListGamesByOwner(ctx, scorerID)
	if err != nil {
		slog.Error("ListGames failed", "scorer_id", scorerID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	summaries := make([]*pb.GameSummary, 0, len(records))
	for _, record := range records {
		doc, err := storage.DecodeDocument(record.Document)
		if err != nil {
			slog.Warn("Skipping unreadable saved game", "game_id", record.ID, "error", err)
			continue
		}
		l := ledger.New(doc.Rounds)
		over, winner := calculator.CheckGameOver(l.Totals())
		summaries = append(summaries, &pb.GameSummary{
			Id:            record.ID,
			Teams:         toProtoTeams(l.ApplyTotals(doc.Teams)),
			RoundCount:    int32(l.Len()),
			GameOver:      over,
			WinningTeamId: int32(winner),
			CreatedAt:     timestamppb.New(time.Unix(record.CreatedAt, 0)),
			UpdatedAt:     timestamppb.New(time.Unix(record.UpdatedAt, 0)),
		})
	}

	return connect.NewResponse(&pb.ListGamesResponse{Games: summaries}), nil
}

// SubmitBid scores a finished round.
func (s *ScoreService) SubmitBid(ctx context.Context, req *connect.Request[pb.SubmitBidRequest]) (*connect.Response[pb.SubmitBidResponse], error) {
	scorerID, err := requireScorer(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.GetBid() == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errBidMissing)
	}
	g, err := s.lockGame(ctx, req.Msg.GetGameId(), scorerID)
	if err != nil {
		return nil, err
	}
	defer g.mu.Unlock()

	wasOver := g.session.GameOver()
	round, err := g.session.SubmitBid(fromProtoBid(req.Msg.GetBid()))
	if err != nil {
		return nil, toConnectError(err)
	}
	s.metrics.ObserveBid(string(round.Bid.Suit), calculator.Made(round.Bid))
	s.observeGameOver(g, wasOver)
	s.save(ctx, g)

	slog.Debug("Bid scored",
		"game_id", g.id,
		"bid", round.Bid.String(),
		"team_id", round.Bid.TeamID,
		"tricks_won", round.Bid.TricksWon,
		"bidding_team_score", round.BiddingTeamScore,
		"non_bidding_team_score", round.NonBiddingTeamScore,
	)
	return connect.NewResponse(&pb.SubmitBidResponse{
		Round: toProtoRound(round),
		Game:  toGameState(g.id, g.session, g.updatedAt),
	}), nil
}

// DeleteRound removes a round and rescores the game.
func (s *ScoreService) DeleteRound(ctx context.Context, req *connect.Request[pb.DeleteRoundRequest]) (*connect.Response[pb.DeleteRoundResponse], error) {
	scorerID, err := requireScorer(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.lockGame(ctx, req.Msg.GetGameId(), scorerID)
	if err != nil {
		return nil, err
	}
	defer g.mu.Unlock()

	if err := g.session.DeleteRound(req.Msg.GetRoundId()); err != nil {
		return nil, toConnectError(err)
	}
	s.save(ctx, g)

	slog.Info("Round deleted", "game_id", g.id, "round_id", req.Msg.GetRoundId())
	return connect.NewResponse(&pb.DeleteRoundResponse{Game: toGameState(g.id, g.session, g.updatedAt)}), nil
}

// EditRound replaces a round's bid and rescores the game.
func (s *ScoreService) EditRound(ctx context.Context, req *connect.Request[pb.EditRoundRequest]) (*connect.Response[pb.EditRoundResponse], error) {
	scorerID, err := requireScorer(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.GetBid() == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errBidMissing)
	}
	g, err := s.lockGame(ctx, req.Msg.GetGameId(), scorerID)
	if err != nil {
		return nil, err
	}
	defer g.mu.Unlock()

	wasOver := g.session.GameOver()
	round, err := g.session.EditRound(req.Msg.GetRoundId(), fromProtoBid(req.Msg.GetBid()))
	if err != nil {
		return nil, toConnectError(err)
	}
	s.observeGameOver(g, wasOver)
	s.save(ctx, g)

	slog.Info("Round edited", "game_id", g.id, "round_id", round.ID, "bid", round.Bid.String())
	return connect.NewResponse(&pb.EditRoundResponse{
		Round: toProtoRound(round),
		Game:  toGameState(g.id, g.session, g.updatedAt),
	}), nil
}

// Undo steps back one change. At the start of history it is a no-op.
func (s *ScoreService) Undo(ctx context.Context, req *connect.Request[pb.UndoRequest]) (*connect.Response[pb.UndoResponse], error) {
	g, moved, err := s.moveHistory(ctx, req.Msg.GetGameId(), "undo")
	if err != nil {
		return nil, err
	}
	defer g.mu.Unlock()
	return connect.NewResponse(&pb.UndoResponse{Moved: moved, Game: toGameState(g.id, g.session, g.updatedAt)}), nil
}

// Redo steps forward one change. At the end of history it is a no-op.
func (s *ScoreService) Redo(ctx context.Context, req *connect.Request[pb.RedoRequest]) (*connect.Response[pb.RedoResponse], error) {
	g, moved, err := s.moveHistory(ctx, req.Msg.GetGameId(), "redo")
	if err != nil {
		return nil, err
	}
	defer g.mu.Unlock()
	return connect.NewResponse(&pb.RedoResponse{Moved: moved, Game: toGameState(g.id, g.session, g.updatedAt)}), nil
}

// moveHistory returns the game locked.
func (s *ScoreService) moveHistory(ctx context.Context, gameID, direction string) (*liveGame, bool, error) {
	scorerID, err := requireScorer(ctx)
	if err != nil {
		return nil, false, err
	}
	g, err := s.lockGame(ctx, gameID, scorerID)
	if err != nil {
		return nil, false, err
	}

	wasOver := g.session.GameOver()
	var moved bool
	if direction == "undo" {
		moved = g.session.Undo()
	} else {
		moved = g.session.Redo()
	}
	if moved {
		s.metrics.ObserveHistoryMove(direction)
		s.observeGameOver(g, wasOver)
		s.save(ctx, g)
	}
	return g, moved, nil
}

// ResetGame discards a game and its saved state.
func (s *ScoreService) ResetGame(ctx context.Context, req *connect.Request[pb.ResetGameRequest]) (*connect.Response[pb.ResetGameResponse], error) {
	scorerID, err := requireScorer(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.lockGame(ctx, req.Msg.GetGameId(), scorerID)
	if err != nil {
		return nil, err
	}
	defer g.mu.Unlock()

	g.session.Reset()
	g.persistence.Clear(ctx)
	s.retire(g)

	slog.Info("Game reset", "game_id", g.id, "scorer_id", scorerID)
	return connect.NewResponse(&pb.ResetGameResponse{}), nil
}

// ExportGame renders the game as an export file.
func (s *ScoreService) ExportGame(ctx context.Context, req *connect.Request[pb.ExportGameRequest]) (*connect.Response[pb.ExportGameResponse], error) {
	scorerID, err := requireScorer(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.lockGame(ctx, req.Msg.GetGameId(), scorerID)
	if err != nil {
		return nil, err
	}
	defer g.mu.Unlock()

	now := s.now()
	data, err := storage.EncodeExport(storage.NewExport(g.session.Teams(), g.session.Rounds(), now))
	if err != nil {
		slog.Error("ExportGame failed", "game_id", g.id, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&pb.ExportGameResponse{
		Filename: storage.ExportFilename(now),
		Content:  string(data),
	}), nil
}

// ImportGame loads an export file into a new game, or replaces an existing
// one when a game id is given. Invalid files leave everything unchanged.
func (s *ScoreService) ImportGame(ctx context.Context, req *connect.Request[pb.ImportGameRequest]) (*connect.Response[pb.ImportGameResponse], error) {
	scorerID, err := requireScorer(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := storage.DecodeExport([]byte(req.Msg.GetContent()))
	if err != nil {
		slog.Warn("Rejected import", "scorer_id", scorerID, "error", err)
		return nil, toConnectError(err)
	}

	if req.Msg.GetGameId() != "" {
		g, err := s.lockGame(ctx, req.Msg.GetGameId(), scorerID)
		if err != nil {
			return nil, err
		}
		defer g.mu.Unlock()

		if err := g.session.Import(doc.Teams, doc.Rounds); err != nil {
			return nil, toConnectError(err)
		}
		s.save(ctx, g)
		slog.Info("Game replaced by import", "game_id", g.id, "rounds", len(doc.Rounds))
		return connect.NewResponse(&pb.ImportGameResponse{Game: toGameState(g.id, g.session, g.updatedAt)}), nil
	}

	session := s.newSession()
	if err := session.Import(doc.Teams, doc.Rounds); err != nil {
		return nil, toConnectError(err)
	}
	g := &liveGame{
		id:      uuid.New().String(),
		ownerID: scorerID,
		session: session,
	}
	g.persistence = storage.NewPersistence(s.store, g.id, scorerID)

	g.mu.Lock()
	defer g.mu.Unlock()
	s.save(ctx, g)
	s.register(g)

	slog.Info("Game imported", "game_id", g.id, "scorer_id", scorerID, "rounds", len(doc.Rounds))
	return connect.NewResponse(&pb.ImportGameResponse{Game: toGameState(g.id, session, g.updatedAt)}), nil
}

// GetScoringTable returns the bid value reference table.
func (s *ScoreService) GetScoringTable(ctx context.Context, req *connect.Request[pb.GetScoringTableRequest]) (*connect.Response[pb.GetScoringTableResponse], error) {
	return connect.NewResponse(toScoringTable(calculator.ScoringTable())), nil
}

var _ protoconnect.ScoreServiceHandler = (*ScoreService)(nil)
