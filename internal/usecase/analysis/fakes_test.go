package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
)

type fakeRepo struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]entities.NoteAnalysis
	upserts int
	getErr  error
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[uuid.UUID]entities.NoteAnalysis)}
}

func (r *fakeRepo) GetByNoteID(ctx context.Context, noteID uuid.UUID) (*entities.NoteAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	row, ok := r.rows[noteID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *fakeRepo) Upsert(ctx context.Context, a *entities.NoteAnalysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.upserts++
	r.rows[a.NoteID] = *a
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, noteID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, noteID)
	return nil
}

func (r *fakeRepo) upsertCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.upserts
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]entities.NoteAnalysis
	sets    int
	lastTTL time.Duration
	err     error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uuid.UUID]entities.NoteAnalysis)}
}

func (c *fakeCache) Get(_ context.Context, noteID uuid.UUID) (*entities.NoteAnalysis, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, false, c.err
	}
	entry, ok := c.entries[noteID]
	if !ok {
		return nil, false, nil
	}
	return &entry, true, nil
}

func (c *fakeCache) Set(_ context.Context, a *entities.NoteAnalysis, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.sets++
	c.lastTTL = ttl
	c.entries[a.NoteID] = *a
	return nil
}

func (c *fakeCache) Delete(_ context.Context, noteID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, noteID)
	return c.err
}

type fakeSource map[string]string

var errSourceDown = errors.New("connection reset")

func (s fakeSource) GetText(_ context.Context, key string) (string, error) {
	if key == "down" {
		return "", errSourceDown
	}
	text, ok := s[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", repositories.ErrNoteNotFound, key)
	}
	return text, nil
}
