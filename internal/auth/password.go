package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/fivehundred/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

// ScorerStorage is the subset of storage.Store the authenticator needs.
type ScorerStorage interface {
	CreateScorer(ctx context.Context, scorer *models.Scorer) error
	GetScorerByEmail(ctx context.Context, email string) (*models.Scorer, error)
	GetScorerByID(ctx context.Context, id string) (*models.Scorer, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage ScorerStorage
	cost    int
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage ScorerStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
		cost:    bcrypt.DefaultCost,
	}
}

// WithCost returns a copy of the authenticator hashing with the given bcrypt
// cost. Tests use bcrypt.MinCost.
func (a *PasswordAuthenticator) WithCost(cost int) *PasswordAuthenticator {
	c := *a
	c.cost = cost
	return &c
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new scorer with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, email, displayName, credential string) (*models.Scorer, error) {
	email = normalizeEmail(email)
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	existing, err := a.storage.GetScorerByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	scorer := models.NewScorer(email, displayName, string(hashed))
	if err := a.storage.CreateScorer(ctx, scorer); err != nil {
		return nil, fmt.Errorf("failed to create scorer: %w", err)
	}
	return scorer, nil
}

// Authenticate verifies the email and password, returning the scorer if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.Scorer, error) {
	scorer, err := a.storage.GetScorerByEmail(ctx, normalizeEmail(email))
	if err != nil || scorer == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(scorer.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return scorer, nil
}

// Lookup fetches a scorer by id.
func (a *PasswordAuthenticator) Lookup(ctx context.Context, id string) (*models.Scorer, error) {
	scorer, err := a.storage.GetScorerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up scorer: %w", err)
	}
	if scorer == nil {
		return nil, ErrInvalidCredentials
	}
	return scorer, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
