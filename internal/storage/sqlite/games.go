package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/fivehundred/internal/storage"
)

// SaveGame inserts a game or replaces the document of an existing one.
func (s *SQLiteStore) SaveGame(ctx context.Context, game *storage.GameRecord) error {
	now := time.Now().Unix()
	if game.CreatedAt == 0 {
		game.CreatedAt = now
	}
	game.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (id, owner_id, document, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		game.ID, game.OwnerID, string(game.Document), game.CreatedAt, game.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	// Report the original creation time back for games that already existed
	return s.db.QueryRowContext(ctx,
		"SELECT created_at FROM games WHERE id = ?", game.ID,
	).Scan(&game.CreatedAt)
}

// GetGame retrieves a game by ID.
func (s *SQLiteStore) GetGame(ctx context.Context, gameID string) (*storage.GameRecord, error) {
	game := &storage.GameRecord{}
	var document string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, document, created_at, updated_at FROM games WHERE id = ?",
		gameID,
	).Scan(&game.ID, &game.OwnerID, &document, &game.CreatedAt, &game.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("game %s: %w", gameID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	game.Document = []byte(document)
	return game, nil
}

// DeleteGame removes a game by ID.
func (s *SQLiteStore) DeleteGame(ctx context.Context, gameID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM games WHERE id = ?", gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// ListGamesByOwner retrieves a scorer's games, most recently updated first.
func (s *SQLiteStore) ListGamesByOwner(ctx context.Context, ownerID string) ([]*storage.GameRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, document, created_at, updated_at
		 FROM games WHERE owner_id = ?
		 ORDER BY updated_at DESC, id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []*storage.GameRecord
	for rows.Next() {
		game := &storage.GameRecord{}
		var document string
		if err := rows.Scan(&game.ID, &game.OwnerID, &document, &game.CreatedAt, &game.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		game.Document = []byte(document)
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}
	return games, nil
}
