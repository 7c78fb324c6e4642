package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/fivehundred/internal/models"
)

// CreateScorer inserts a new scorer into the database.
func (s *SQLiteStore) CreateScorer(ctx context.Context, scorer *models.Scorer) error {
	query := `
		INSERT INTO scorers (id, email, display_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		scorer.ID,
		scorer.Email,
		scorer.DisplayName,
		scorer.PasswordHash,
		scorer.CreatedAt,
		scorer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create scorer: %w", err)
	}

	return nil
}

// GetScorerByEmail retrieves a scorer by their email address.
func (s *SQLiteStore) GetScorerByEmail(ctx context.Context, email string) (*models.Scorer, error) {
	return s.getScorer(ctx, "email", email)
}

// GetScorerByID retrieves a scorer by their ID.
func (s *SQLiteStore) GetScorerByID(ctx context.Context, id string) (*models.Scorer, error) {
	return s.getScorer(ctx, "id", id)
}

// getScorer looks a scorer up by a unique column. column is never user input.
func (s *SQLiteStore) getScorer(ctx context.Context, column, value string) (*models.Scorer, error) {
	query := `
		SELECT id, email, display_name, password_hash, created_at, updated_at
		FROM scorers
		WHERE ` + column + ` = ?
	`

	scorer := &models.Scorer{}
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&scorer.ID,
		&scorer.Email,
		&scorer.DisplayName,
		&scorer.PasswordHash,
		&scorer.CreatedAt,
		&scorer.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // Scorer not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scorer by %s: %w", column, err)
	}

	return scorer, nil
}
