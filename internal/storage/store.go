// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/fivehundred/internal/models"
)

// ErrNotFound is returned when a saved game does not exist.
var ErrNotFound = errors.New("not found")

// GameRecord is a saved game as the store sees it: an opaque document owned
// by a scorer. The document is interpreted by Persistence, never by the store.
type GameRecord struct {
	// ID is the unique identifier for the game (UUID format).
	ID string

	// OwnerID is the scorer who created the game.
	OwnerID string

	// Document is the schema-versioned JSON session document.
	Document []byte

	// CreatedAt and UpdatedAt are Unix timestamps in seconds.
	CreatedAt int64
	UpdatedAt int64
}

// Store defines the interface for game and scorer storage operations.
// This abstraction allows swapping storage backends (SQLite, in-memory, etc.)
// without changing the service layer.
type Store interface {
	// SaveGame inserts the game or replaces its document.
	// CreatedAt is kept from the first save; UpdatedAt is set by the store.
	SaveGame(ctx context.Context, game *GameRecord) error

	// GetGame retrieves a game by its ID.
	// Returns an error wrapping ErrNotFound if the game does not exist.
	GetGame(ctx context.Context, gameID string) (*GameRecord, error)

	// DeleteGame removes a game. Deleting a missing game is not an error.
	DeleteGame(ctx context.Context, gameID string) error

	// ListGamesByOwner returns the scorer's games, most recently updated first.
	ListGamesByOwner(ctx context.Context, ownerID string) ([]*GameRecord, error)

	// CreateScorer inserts a new scorer account.
	CreateScorer(ctx context.Context, scorer *models.Scorer) error

	// GetScorerByEmail returns nil, nil when no scorer has the email.
	GetScorerByEmail(ctx context.Context, email string) (*models.Scorer, error)

	// GetScorerByID returns nil, nil when the scorer does not exist.
	GetScorerByID(ctx context.Context, id string) (*models.Scorer, error)

	// Close releases any resources held by the store.
	Close() error
}
