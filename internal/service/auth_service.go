package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/fivehundred/internal/auth"
	"github.com/mmynk/fivehundred/internal/middleware"
	"github.com/mmynk/fivehundred/internal/models"
	proto "github.com/mmynk/fivehundred/pkg/proto"
	"github.com/mmynk/fivehundred/pkg/proto/protoconnect"
)

// PublicProcedures can be called without a token.
var PublicProcedures = []string{
	protoconnect.AuthServiceRegisterProcedure,
	protoconnect.AuthServiceLoginProcedure,
	protoconnect.AuthServiceLogoutProcedure,
	protoconnect.ScoreServiceGetScoringTableProcedure,
}

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

func toProtoUser(scorer *models.Scorer) *proto.User {
	return &proto.User{
		Id:          scorer.ID,
		Email:       scorer.Email,
		DisplayName: scorer.DisplayName,
		CreatedAt:   timestamppb.New(time.Unix(scorer.CreatedAt, 0)),
	}
}

// Register creates a new scorer account.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[proto.RegisterRequest]) (*connect.Response[proto.RegisterResponse], error) {
	s.logger.Info("Register request", "email", req.Msg.Email)

	if strings.TrimSpace(req.Msg.Email) == "" || strings.TrimSpace(req.Msg.DisplayName) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	scorer, err := s.authenticator.Register(ctx, req.Msg.Email, strings.TrimSpace(req.Msg.DisplayName), req.Msg.Password)
	if err != nil {
		s.logger.Error("Registration failed", "email", req.Msg.Email, "error", err)
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(scorer)
	if err != nil {
		s.logger.Error("Failed to generate token", "scorer_id", scorer.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Scorer registered", "scorer_id", scorer.ID, "email", scorer.Email)
	return connect.NewResponse(&proto.RegisterResponse{User: toProtoUser(scorer), Token: token}), nil
}

// Login authenticates a scorer and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[proto.LoginRequest]) (*connect.Response[proto.LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	scorer, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(scorer)
	if err != nil {
		s.logger.Error("Failed to generate token", "scorer_id", scorer.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Scorer logged in", "scorer_id", scorer.ID)
	return connect.NewResponse(&proto.LoginResponse{User: toProtoUser(scorer), Token: token}), nil
}

// Logout is a no-op: tokens are stateless and clients discard them.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[proto.LogoutRequest]) (*connect.Response[proto.LogoutResponse], error) {
	s.logger.Info("Logout request", "scorer_id", middleware.GetScorerID(ctx), "email", middleware.GetEmail(ctx))
	return connect.NewResponse(&proto.LogoutResponse{}), nil
}

// GetCurrentUser returns the authenticated scorer's account.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[proto.GetCurrentUserRequest]) (*connect.Response[proto.GetCurrentUserResponse], error) {
	scorerID := middleware.GetScorerID(ctx)
	if scorerID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	scorer, err := s.authenticator.Lookup(ctx, scorerID)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
		}
		s.logger.Error("GetCurrentUser failed", "scorer_id", scorerID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&proto.GetCurrentUserResponse{User: toProtoUser(scorer)}), nil
}

var _ protoconnect.AuthServiceHandler = (*AuthService)(nil)
