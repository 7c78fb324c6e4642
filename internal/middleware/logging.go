package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	pb "github.com/mmynk/fivehundred/pkg/proto"
)

// gameScoped is satisfied by every request message that names a game.
type gameScoped interface {
	GetGameId() string
}

// gameCarrier is satisfied by responses that return a game snapshot.
type gameCarrier interface {
	GetGame() *pb.GameState
}

// gameID finds the game an RPC touched: the request's game_id, or for
// CreateGame and ImportGame the id of the game in the response.
// A failed call may hand back a typed nil response, so resp is only
// inspected when err is nil.
func gameID(req connect.AnyRequest, resp connect.AnyResponse, err error) string {
	if m, ok := req.Any().(gameScoped); ok && m.GetGameId() != "" {
		return m.GetGameId()
	}
	if err != nil || resp == nil {
		return ""
	}
	if m, ok := resp.Any().(gameCarrier); ok {
		return m.GetGame().GetId()
	}
	return ""
}

// LoggingInterceptor logs every RPC with its procedure, scorer, game and
// duration. Client errors log at warn, internal ones at error.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []any{"procedure", req.Spec().Procedure}
			if p := req.Peer().Protocol; p != "" {
				attrs = append(attrs, "protocol", p)
			}
			if id := GetScorerID(ctx); id != "" {
				attrs = append(attrs, "scorer_id", id)
			}
			if id := gameID(req, resp, err); id != "" {
				attrs = append(attrs, "game_id", id)
			}
			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())

			var connectErr *connect.Error
			switch {
			case err == nil:
				logger.InfoContext(ctx, "RPC ok", attrs...)
			case errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal:
				logger.WarnContext(ctx, "RPC error", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
			default:
				logger.ErrorContext(ctx, "RPC error", append(attrs, "error", err)...)
			}
			return resp, err
		}
	}
}
