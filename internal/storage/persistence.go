package storage

import (
	"context"
	"errors"
	"log/slog"
)

// Persistence is the load/save adapter for one game. It never returns
// errors: failures are logged and a load that fails behaves as if nothing
// was saved.
type Persistence struct {
	store   Store
	gameID  string
	ownerID string
}

// NewPersistence binds a game id and its owner to a store.
func NewPersistence(store Store, gameID, ownerID string) *Persistence {
	return &Persistence{store: store, gameID: gameID, ownerID: ownerID}
}

// Load returns the saved document, or false when there is none.
// Documents with another schema version or malformed content are deleted.
// Games owned by another scorer are reported as absent.
func (p *Persistence) Load(ctx context.Context) (*Document, bool) {
	record, err := p.store.GetGame(ctx, p.gameID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Error("Failed to load saved game", "game_id", p.gameID, "error", err)
		}
		return nil, false
	}
	if record.OwnerID != p.ownerID {
		slog.Warn("Saved game belongs to another scorer", "game_id", p.gameID, "owner_id", record.OwnerID, "scorer_id", p.ownerID)
		return nil, false
	}

	doc, err := DecodeDocument(record.Document)
	if err != nil {
		slog.Warn("Discarding unreadable saved game", "game_id", p.gameID, "error", err)
		p.Clear(ctx)
		return nil, false
	}
	return doc, true
}

// Save writes the document. Errors are logged.
func (p *Persistence) Save(ctx context.Context, doc *Document) {
	data, err := EncodeDocument(doc)
	if err != nil {
		slog.Error("Failed to encode game", "game_id", p.gameID, "error", err)
		return
	}
	record := &GameRecord{ID: p.gameID, OwnerID: p.ownerID, Document: data}
	if err := p.store.SaveGame(ctx, record); err != nil {
		slog.Error("Failed to save game", "game_id", p.gameID, "error", err)
	}
}

// Clear deletes the saved game. Errors are logged.
func (p *Persistence) Clear(ctx context.Context) {
	if err := p.store.DeleteGame(ctx, p.gameID); err != nil {
		slog.Error("Failed to delete saved game", "game_id", p.gameID, "error", err)
	}
}
