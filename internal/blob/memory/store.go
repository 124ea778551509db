package memory

import (
	"context"
	"sync"

	"github.com/mcoot/rummyledger/internal/blob"
)

// Store is an in-memory implementation of the blob store
type Store struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

// New creates a new in-memory blob store instance
func New() *Store {
	return &Store{
		documents: make(map[string][]byte),
	}
}

// Ensure Store implements the interface
var _ blob.Store = (*Store)(nil)

func (s *Store) Download(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.documents[key]
	if !ok {
		return nil, blob.ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *Store) Upload(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.documents[key] = cp
	return nil
}
