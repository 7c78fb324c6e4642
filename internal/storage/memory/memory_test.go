package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/fivehundred/internal/models"
	"github.com/mmynk/fivehundred/internal/storage"
)

func TestStore_Games(t *testing.T) {
	ctx := context.Background()
	store := New()

	record := &storage.GameRecord{ID: "g1", OwnerID: "alice", Document: []byte(`{"a":1}`)}
	if err := store.SaveGame(ctx, record); err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}
	if record.CreatedAt == 0 || record.UpdatedAt == 0 {
		t.Error("SaveGame should stamp the record")
	}

	// The store must not alias caller buffers.
	record.Document[0] = 'X'
	got, err := store.GetGame(ctx, "g1")
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if string(got.Document) != `{"a":1}` {
		t.Errorf("stored document changed: %s", got.Document)
	}

	if err := store.SaveGame(ctx, &storage.GameRecord{ID: "g2", OwnerID: "bob", Document: []byte(`{}`)}); err != nil {
		t.Fatal(err)
	}
	games, err := store.ListGamesByOwner(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 || games[0].ID != "g1" {
		t.Errorf("unexpected listing: %+v", games)
	}

	if err := store.DeleteGame(ctx, "g1"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetGame(ctx, "g1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Scorers(t *testing.T) {
	ctx := context.Background()
	store := New()

	scorer := models.NewScorer("alice@example.com", "Alice", "hash")
	if err := store.CreateScorer(ctx, scorer); err != nil {
		t.Fatalf("CreateScorer failed: %v", err)
	}
	if err := store.CreateScorer(ctx, models.NewScorer("alice@example.com", "Other", "hash")); err == nil {
		t.Error("expected duplicate email to fail")
	}

	byEmail, err := store.GetScorerByEmail(ctx, "alice@example.com")
	if err != nil || byEmail == nil || byEmail.ID != scorer.ID {
		t.Errorf("GetScorerByEmail = %+v, %v", byEmail, err)
	}
	byID, err := store.GetScorerByID(ctx, scorer.ID)
	if err != nil || byID == nil || byID.DisplayName != "Alice" {
		t.Errorf("GetScorerByID = %+v, %v", byID, err)
	}
	missing, err := store.GetScorerByID(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("expected nil, nil for missing scorer, got %+v, %v", missing, err)
	}
}
