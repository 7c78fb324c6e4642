package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/fivehundred/internal/models"
)

const (
	// SchemaVersion is the only session document version this build reads.
	// There is no migration between versions: any other value is discarded.
	SchemaVersion = "2.0"

	// ExportVersion is written into export documents.
	ExportVersion = "1.0"
)

var (
	ErrSchemaMismatch  = errors.New("session document schema version mismatch")
	ErrInvalidDocument = errors.New("invalid session document")
	ErrInvalidImport   = errors.New("invalid game file format")
)

// Document is the persisted form of a session.
type Document struct {
	SchemaVersion string         `json:"schemaVersion"`
	Teams         []models.Team  `json:"teams"`
	Rounds        []models.Round `json:"rounds"`
}

// NewDocument builds a current-version document from a session's state.
func NewDocument(teams []models.Team, rounds []models.Round) *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Teams:         nonNilTeams(teams),
		Rounds:        nonNilRounds(rounds),
	}
}

// EncodeDocument serializes a session document.
func EncodeDocument(doc *Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session document: %w", err)
	}
	return data, nil
}

// DecodeDocument parses a session document. It fails with ErrSchemaMismatch
// when the version is not SchemaVersion and with ErrInvalidDocument when the
// JSON is malformed or teams/rounds are missing.
func DecodeDocument(data []byte) (*Document, error) {
	var wire struct {
		SchemaVersion *string         `json:"schemaVersion"`
		Teams         json.RawMessage `json:"teams"`
		Rounds        json.RawMessage `json:"rounds"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if wire.SchemaVersion == nil || *wire.SchemaVersion != SchemaVersion {
		got := "<missing>"
		if wire.SchemaVersion != nil {
			got = *wire.SchemaVersion
		}
		return nil, fmt.Errorf("%w: got %s, want %s", ErrSchemaMismatch, got, SchemaVersion)
	}

	teams, rounds, err := decodeGame(wire.Teams, wire.Rounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &Document{SchemaVersion: SchemaVersion, Teams: teams, Rounds: rounds}, nil
}

// ExportDocument is the file format used to move a game between devices.
type ExportDocument struct {
	Teams      []models.Team  `json:"teams"`
	Rounds     []models.Round `json:"rounds"`
	ExportDate string         `json:"exportDate"`
	Version    string         `json:"version"`
}

// NewExport builds an export document stamped with the given time.
func NewExport(teams []models.Team, rounds []models.Round, now time.Time) *ExportDocument {
	return &ExportDocument{
		Teams:      nonNilTeams(teams),
		Rounds:     nonNilRounds(rounds),
		ExportDate: now.UTC().Format(time.RFC3339Nano),
		Version:    ExportVersion,
	}
}

// EncodeExport renders an export document as indented JSON.
func EncodeExport(doc *ExportDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// DecodeExport parses an export file. Only teams and rounds are required;
// both must be arrays. Any failure wraps ErrInvalidImport.
func DecodeExport(data []byte) (*ExportDocument, error) {
	var wire struct {
		Teams      json.RawMessage `json:"teams"`
		Rounds     json.RawMessage `json:"rounds"`
		ExportDate string          `json:"exportDate"`
		Version    string          `json:"version"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	teams, rounds, err := decodeGame(wire.Teams, wire.Rounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return &ExportDocument{
		Teams:      teams,
		Rounds:     rounds,
		ExportDate: wire.ExportDate,
		Version:    wire.Version,
	}, nil
}

// ExportFilename suggests a file name for an export made at now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("500score-game-%s.json", now.UTC().Format("2006-01-02"))
}

func decodeGame(rawTeams, rawRounds json.RawMessage) ([]models.Team, []models.Round, error) {
	if !isArray(rawTeams) {
		return nil, nil, errors.New("teams must be an array")
	}
	if !isArray(rawRounds) {
		return nil, nil, errors.New("rounds must be an array")
	}
	var teams []models.Team
	if err := json.Unmarshal(rawTeams, &teams); err != nil {
		return nil, nil, fmt.Errorf("teams: %w", err)
	}
	var rounds []models.Round
	if err := json.Unmarshal(rawRounds, &rounds); err != nil {
		return nil, nil, fmt.Errorf("rounds: %w", err)
	}
	return nonNilTeams(teams), nonNilRounds(rounds), nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func nonNilTeams(teams []models.Team) []models.Team {
	if teams == nil {
		return []models.Team{}
	}
	return teams
}

func nonNilRounds(rounds []models.Round) []models.Round {
	if rounds == nil {
		return []models.Round{}
	}
	return rounds
}
