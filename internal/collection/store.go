// Package collection keeps an in-memory ordered sequence of records
// synchronized with one JSON-array document in the blob store.
//
// The cache is the sole read path for request handling and is treated as
// authoritative between persists. Writes replace the whole document with no
// version check: when two replaces overlap, the one whose upload completes
// last wins, regardless of which cache mutation happened first.
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/rummyledger/internal/blob"
)

// Store caches one collection document as a slice of records
type Store[T any] struct {
	blob   blob.Store
	key    string
	logger *slog.Logger

	mu      sync.Mutex
	records []T
}

// New creates a collection store for the document at the given key
func New[T any](b blob.Store, key string, logger *slog.Logger) *Store[T] {
	return &Store[T]{
		blob:   b,
		key:    key,
		logger: logger,
	}
}

// Key returns the document key this store is bound to
func (s *Store[T]) Key() string {
	return s.key
}

// Load fetches the document and replaces the cache with its contents.
// A missing key means a fresh deployment and loads an empty collection.
// Any other failure, including a parse failure, also degrades to an empty
// collection: the condition is logged but never surfaced, so a transient
// outage at startup silently yields an empty dataset.
func (s *Store[T]) Load(ctx context.Context) {
	data, err := s.blob.Download(ctx, s.key)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			s.logger.Info("document does not exist, starting empty",
				slog.String("key", s.key))
		} else {
			s.logger.Warn("failed to load document, starting empty",
				slog.String("key", s.key),
				slog.String("error", err.Error()))
		}
		s.set(nil)
		return
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("failed to parse document, starting empty",
			slog.String("key", s.key),
			slog.String("error", err.Error()))
		s.set(nil)
		return
	}

	s.set(records)
}

// Snapshot returns a copy of the cached records in insertion order
func (s *Store[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyRecords()
}

// Mutate applies fn to the cached records under the store's lock and returns
// a snapshot of the resulting state. The mutation itself is atomic with
// respect to other requests; the usual mutate-then-Replace sequence is not.
func (s *Store[T]) Mutate(fn func(records []T) []T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = fn(s.records)
	return s.copyRecords()
}

// Replace serializes the given snapshot and overwrites the document
// unconditionally. Failures propagate: a failed replace after a cache
// mutation leaves the durable copy behind until the next successful one.
func (s *Store[T]) Replace(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.key, err)
	}

	if err := s.blob.Upload(ctx, s.key, data); err != nil {
		return fmt.Errorf("replace %s: %w", s.key, err)
	}
	return nil
}

func (s *Store[T]) set(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

func (s *Store[T]) copyRecords() []T {
	cp := make([]T, len(s.records))
	copy(cp, s.records)
	return cp
}
