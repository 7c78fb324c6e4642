package models

import (
	"time"

	"github.com/google/uuid"
)

// Scorer is a registered account that keeps score and owns saved games.
type Scorer struct {
	// ID is the unique identifier for the scorer (UUID format).
	ID string

	// Email is the login address (unique).
	Email string

	// DisplayName is shown in the game list.
	DisplayName string

	// PasswordHash is the bcrypt hash of the scorer's password.
	PasswordHash string

	// CreatedAt and UpdatedAt are Unix timestamps in seconds.
	CreatedAt int64
	UpdatedAt int64
}

// NewScorer creates a scorer with a fresh id and timestamps.
func NewScorer(email, displayName, passwordHash string) *Scorer {
	now := time.Now().Unix()
	return &Scorer{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
