package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
)

// MemoryStore is a simple in-memory analysis cache with expiration. It is
// used when Redis is not configured and in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

type memoryItem struct {
	value      []byte
	expireTime time.Time
}

var _ repositories.AnalysisCache = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		now:   time.Now,
		stop:  make(chan struct{}),
	}

	go store.cleanupExpired(5 * time.Minute)

	return store
}

// Set stores an encoded copy of the analysis. A non-positive ttl never expires.
func (ms *MemoryStore) Set(_ context.Context, analysis *entities.NoteAnalysis, ttl time.Duration) error {
	value, err := json.Marshal(analysis)
	if err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	item := &memoryItem{value: value}
	if ttl > 0 {
		item.expireTime = ms.now().Add(ttl)
	}
	ms.items[analysisKey(analysis.NoteID)] = item
	return nil
}

// Get returns a decoded copy, or false when absent or expired
func (ms *MemoryStore) Get(_ context.Context, noteID uuid.UUID) (*entities.NoteAnalysis, bool, error) {
	ms.mu.RLock()
	item, exists := ms.items[analysisKey(noteID)]
	ms.mu.RUnlock()

	if !exists || item.expired(ms.now()) {
		return nil, false, nil
	}

	var analysis entities.NoteAnalysis
	if err := json.Unmarshal(item.value, &analysis); err != nil {
		return nil, false, err
	}
	return &analysis, true, nil
}

// Delete removes a note's entry
func (ms *MemoryStore) Delete(_ context.Context, noteID uuid.UUID) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, analysisKey(noteID))
	return nil
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() error {
	ms.once.Do(func() { close(ms.stop) })
	return nil
}

func (it *memoryItem) expired(now time.Time) bool {
	return !it.expireTime.IsZero() && now.After(it.expireTime)
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.purge()
		}
	}
}

func (ms *MemoryStore) purge() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, item := range ms.items {
		if item.expired(now) {
			delete(ms.items, key)
		}
	}
}

func analysisKey(noteID uuid.UUID) string {
	return "notes:analysis:" + noteID.String()
}
