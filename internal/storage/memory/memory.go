// Package memory provides an in-memory implementation of storage.Store.
//
// State is lost when the process exits. It backs tests and the "memory"
// database driver for throwaway servers.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mmynk/fivehundred/internal/models"
	"github.com/mmynk/fivehundred/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store is a map-based storage.Store. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	games   map[string]storage.GameRecord
	scorers map[string]models.Scorer
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		games:   make(map[string]storage.GameRecord),
		scorers: make(map[string]models.Scorer),
	}
}

// SaveGame adds or replaces the game.
func (m *Store) SaveGame(ctx context.Context, game *storage.GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().Unix()
	record := *game
	record.Document = append([]byte(nil), game.Document...)
	if existing, ok := m.games[game.ID]; ok {
		record.CreatedAt = existing.CreatedAt
	} else if record.CreatedAt == 0 {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	m.games[game.ID] = record

	game.CreatedAt, game.UpdatedAt = record.CreatedAt, record.UpdatedAt
	return nil
}

// GetGame looks up a game by ID.
func (m *Store) GetGame(ctx context.Context, gameID string) (*storage.GameRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game %s: %w", gameID, storage.ErrNotFound)
	}
	record.Document = append([]byte(nil), record.Document...)
	return &record, nil
}

// DeleteGame removes a game if present.
func (m *Store) DeleteGame(ctx context.Context, gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, gameID)
	return nil
}

// ListGamesByOwner returns the owner's games, most recently updated first.
func (m *Store) ListGamesByOwner(ctx context.Context, ownerID string) ([]*storage.GameRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*storage.GameRecord
	for _, record := range m.games {
		if record.OwnerID != ownerID {
			continue
		}
		r := record
		r.Document = append([]byte(nil), record.Document...)
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt != out[j].UpdatedAt {
			return out[i].UpdatedAt > out[j].UpdatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CreateScorer adds a scorer. Emails must be unique.
func (m *Store) CreateScorer(ctx context.Context, scorer *models.Scorer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.scorers {
		if existing.Email == scorer.Email {
			return fmt.Errorf("failed to create scorer: email %s already registered", scorer.Email)
		}
	}
	m.scorers[scorer.ID] = *scorer
	return nil
}

// GetScorerByEmail returns nil, nil when no scorer has the email.
func (m *Store) GetScorerByEmail(ctx context.Context, email string) (*models.Scorer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.scorers {
		if s.Email == email {
			scorer := s
			return &scorer, nil
		}
	}
	return nil, nil
}

// GetScorerByID returns nil, nil when the scorer does not exist.
func (m *Store) GetScorerByID(ctx context.Context, id string) (*models.Scorer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.scorers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Close is a no-op.
func (m *Store) Close() error {
	return nil
}
