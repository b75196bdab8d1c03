package preference

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Preference
}

// NewMemoryRepository constructs an in-memory repository for tests and dev.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Preference)}
}

func (r *memoryRepository) Get(_ context.Context, clientID string) (Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pref, ok := r.storage[clientID]
	if !ok {
		return Preference{}, ErrNotFound
	}
	return pref, nil
}

func (r *memoryRepository) Put(_ context.Context, pref Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[pref.ClientID] = pref
	return nil
}
