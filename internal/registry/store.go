package registry

import (
	"context"
	"fmt"
	"sync"
)

// Store persists records keyed by id.
//
// Get returns nil, nil for an id that was never inserted. Insert is only
// called with a fresh id and Replace only with an id known to exist.
type Store[R any] interface {
	Insert(ctx context.Context, id int64, rec R) error
	Get(ctx context.Context, id int64) (*R, error)
	Replace(ctx context.Context, id int64, rec R) error
}

// SequencedStore is a Store that allocates ids itself. InsertNext stores the
// record built for the next id and commits the id together with the record,
// so a failed insert consumes nothing.
type SequencedStore[R any] interface {
	Store[R]
	InsertNext(ctx context.Context, build func(id int64) R) (int64, error)
}

// MemoryStore is a map-backed Store.
type MemoryStore[R any] struct {
	mu      sync.RWMutex
	records map[int64]R
}

func NewMemoryStore[R any]() *MemoryStore[R] {
	return &MemoryStore[R]{records: make(map[int64]R)}
}

func (s *MemoryStore[R]) Insert(_ context.Context, id int64, rec R) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; ok {
		return fmt.Errorf("record %d already exists", id)
	}
	s.records[id] = rec
	return nil
}

func (s *MemoryStore[R]) Get(_ context.Context, id int64) (*R, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *MemoryStore[R]) Replace(_ context.Context, id int64, rec R) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("record %d does not exist", id)
	}
	s.records[id] = rec
	return nil
}
