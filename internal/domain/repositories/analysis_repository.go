package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

// AnalysisRepository persists the last successful analysis of each note
type AnalysisRepository interface {
	// GetByNoteID returns nil, nil when the note was never analysed.
	GetByNoteID(ctx context.Context, noteID uuid.UUID) (*entities.NoteAnalysis, error)
	// Upsert replaces the stored analysis of a note.
	Upsert(ctx context.Context, analysis *entities.NoteAnalysis) error
	Delete(ctx context.Context, noteID uuid.UUID) error
}

// AnalysisCache is a best-effort fast path in front of AnalysisRepository
type AnalysisCache interface {
	Get(ctx context.Context, noteID uuid.UUID) (*entities.NoteAnalysis, bool, error)
	Set(ctx context.Context, analysis *entities.NoteAnalysis, ttl time.Duration) error
	Delete(ctx context.Context, noteID uuid.UUID) error
}

var (
	// ErrNoteNotFound is returned by a NoteSource for unknown object keys
	ErrNoteNotFound = errors.New("note object not found")
	// ErrNoteTooLarge is returned by a NoteSource when an object exceeds its size limit
	ErrNoteTooLarge = errors.New("note object too large")
)

// NoteSource reads stored notes documents by object key
type NoteSource interface {
	GetText(ctx context.Context, objectKey string) (string, error)
}
