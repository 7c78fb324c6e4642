package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/fivehundred/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// ScorerIDKey is the context key for the authenticated scorer ID.
	ScorerIDKey contextKey = "scorer_id"
	// EmailKey is the context key for the authenticated scorer's email.
	EmailKey contextKey = "email"
)

// GetScorerID extracts the scorer ID from the context.
// Returns empty string if not found.
func GetScorerID(ctx context.Context) string {
	scorerID, _ := ctx.Value(ScorerIDKey).(string)
	return scorerID
}

// GetEmail extracts the scorer email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// WithScorer returns a context carrying the scorer identity, as RequireAuth
// would set it.
func WithScorer(ctx context.Context, scorerID, email string) context.Context {
	ctx = context.WithValue(ctx, ScorerIDKey, scorerID)
	return context.WithValue(ctx, EmailKey, email)
}

// RequireAuth returns an interceptor that validates the bearer token and
// rejects unauthenticated calls. Procedures listed in public skip the check
// but still get the scorer identity when a valid token is sent.
func RequireAuth(jwtManager *auth.JWTManager, public ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			claims, err := claimsFromHeader(jwtManager, req.Header().Get("Authorization"))
			if err != nil {
				if open[req.Spec().Procedure] {
					return next(ctx, req)
				}
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithScorer(ctx, claims.ScorerID, claims.Email), req)
		}
	}
}

func claimsFromHeader(jwtManager *auth.JWTManager, header string) (*auth.Claims, error) {
	if header == "" {
		return nil, auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}
	return jwtManager.Validate(parts[1])
}
