package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/fivehundred/internal/models"
	"github.com/mmynk/fivehundred/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "fivehundred-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_Games(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := models.NewScorer("alice@example.com", "Alice", "hash")
	other := models.NewScorer("bob@example.com", "Bob", "hash")
	for _, s := range []*models.Scorer{owner, other} {
		if err := store.CreateScorer(ctx, s); err != nil {
			t.Fatalf("CreateScorer failed: %v", err)
		}
	}

	t.Run("SaveGame inserts and GetGame retrieves", func(t *testing.T) {
		game := &storage.GameRecord{ID: "g1", OwnerID: owner.ID, Document: []byte(`{"schemaVersion":"2.0"}`)}
		if err := store.SaveGame(ctx, game); err != nil {
			t.Fatalf("SaveGame failed: %v", err)
		}
		if game.CreatedAt == 0 || game.UpdatedAt == 0 {
			t.Error("Expected timestamps to be set")
		}

		got, err := store.GetGame(ctx, "g1")
		if err != nil {
			t.Fatalf("GetGame failed: %v", err)
		}
		if got.OwnerID != owner.ID {
			t.Errorf("OwnerID mismatch: got %s, want %s", got.OwnerID, owner.ID)
		}
		if string(got.Document) != `{"schemaVersion":"2.0"}` {
			t.Errorf("Document mismatch: got %s", got.Document)
		}
	})

	t.Run("SaveGame replaces the document and keeps CreatedAt", func(t *testing.T) {
		first, err := store.GetGame(ctx, "g1")
		if err != nil {
			t.Fatalf("GetGame failed: %v", err)
		}

		update := &storage.GameRecord{ID: "g1", OwnerID: owner.ID, Document: []byte(`{"v":2}`)}
		if err := store.SaveGame(ctx, update); err != nil {
			t.Fatalf("SaveGame failed: %v", err)
		}
		if update.CreatedAt != first.CreatedAt {
			t.Errorf("CreatedAt changed: got %d, want %d", update.CreatedAt, first.CreatedAt)
		}

		got, _ := store.GetGame(ctx, "g1")
		if string(got.Document) != `{"v":2}` {
			t.Errorf("Document not replaced: %s", got.Document)
		}
	})

	t.Run("ListGamesByOwner filters by owner", func(t *testing.T) {
		if err := store.SaveGame(ctx, &storage.GameRecord{ID: "g2", OwnerID: owner.ID, Document: []byte(`{}`)}); err != nil {
			t.Fatal(err)
		}
		if err := store.SaveGame(ctx, &storage.GameRecord{ID: "g3", OwnerID: other.ID, Document: []byte(`{}`)}); err != nil {
			t.Fatal(err)
		}

		games, err := store.ListGamesByOwner(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListGamesByOwner failed: %v", err)
		}
		if len(games) != 2 {
			t.Fatalf("Expected 2 games, got %d", len(games))
		}
		for _, g := range games {
			if g.OwnerID != owner.ID {
				t.Errorf("Game %s belongs to %s", g.ID, g.OwnerID)
			}
		}
	})

	t.Run("DeleteGame removes the game", func(t *testing.T) {
		if err := store.DeleteGame(ctx, "g2"); err != nil {
			t.Fatalf("DeleteGame failed: %v", err)
		}
		if _, err := store.GetGame(ctx, "g2"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteGame(ctx, "g2"); err != nil {
			t.Errorf("Deleting a missing game should not fail: %v", err)
		}
	})

	t.Run("GetGame returns ErrNotFound for nonexistent game", func(t *testing.T) {
		_, err := store.GetGame(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestSQLiteStore_ForeignKeysOnEveryConnection(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Without idle connections every statement runs on a freshly opened one.
	store.db.SetMaxIdleConns(0)

	for i := 0; i < 5; i++ {
		game := &storage.GameRecord{ID: fmt.Sprintf("orphan-%d", i), OwnerID: "no-such-scorer", Document: []byte(`{}`)}
		if err := store.SaveGame(ctx, game); err == nil {
			t.Fatalf("attempt %d: expected foreign key violation for unknown owner", i)
		}
	}

	var enabled int
	if err := store.db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("PRAGMA foreign_keys failed: %v", err)
	}
	if enabled != 1 {
		t.Errorf("foreign_keys = %d on a fresh connection, want 1", enabled)
	}
}

func TestSQLiteStore_Scorers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	scorer := models.NewScorer("carol@example.com", "Carol", "$2a$10$hash")
	if err := store.CreateScorer(ctx, scorer); err != nil {
		t.Fatalf("CreateScorer failed: %v", err)
	}

	byEmail, err := store.GetScorerByEmail(ctx, "carol@example.com")
	if err != nil || byEmail == nil {
		t.Fatalf("GetScorerByEmail failed: %v", err)
	}
	if byEmail.ID != scorer.ID || byEmail.DisplayName != "Carol" {
		t.Errorf("Unexpected scorer: %+v", byEmail)
	}

	byID, err := store.GetScorerByID(ctx, scorer.ID)
	if err != nil || byID == nil {
		t.Fatalf("GetScorerByID failed: %v", err)
	}
	if byID.PasswordHash != scorer.PasswordHash {
		t.Errorf("PasswordHash mismatch: got %s", byID.PasswordHash)
	}

	missing, err := store.GetScorerByEmail(ctx, "nobody@example.com")
	if err != nil || missing != nil {
		t.Errorf("Expected nil, nil for unknown email, got %v, %v", missing, err)
	}

	dup := models.NewScorer("carol@example.com", "Carol 2", "hash")
	if err := store.CreateScorer(ctx, dup); err == nil {
		t.Error("Expected error for duplicate email")
	}
}

func TestNew_ReopenKeepsData(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "games.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	scorer := models.NewScorer("dave@example.com", "Dave", "hash")
	if err := store.CreateScorer(ctx, scorer); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Reopening with applied migrations failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetScorerByID(ctx, scorer.ID)
	if err != nil || got == nil {
		t.Fatalf("Scorer lost after reopen: %v", err)
	}
}
