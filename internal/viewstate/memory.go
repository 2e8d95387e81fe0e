// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package viewstate

import (
	"context"
	"sync"
	"time"
)

// sweepInterval is the least time between two sweeps of expired entries.
const sweepInterval = time.Minute

// MemoryStore keeps instances in process memory. It is used in development
// when Valkey is not running, and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry

	lastSweep time.Time
}

type memoryEntry struct {
	data    Data
	expires time.Time
}

// NewMemoryStore creates an in-memory instance store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

// Create stores a new instance and returns its id. Expired entries are
// swept on the way in, at most once per sweepInterval, so the map does
// not grow without bound.
func (s *MemoryStore) Create(_ context.Context, data *Data) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		for id, e := range s.entries {
			if now.After(e.expires) {
				delete(s.entries, id)
			}
		}
		s.lastSweep = now
	}

	id := NewID()
	data.CreatedAt = now
	s.entries[id] = memoryEntry{data: *data, expires: now.Add(s.ttl)}
	return id, nil
}

// Get returns a copy of the stored instance.
func (s *MemoryStore) Get(_ context.Context, id string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(e.expires) {
		delete(s.entries, id)
		return nil, ErrNotFound
	}
	data := e.data
	return &data, nil
}

// Save replaces an existing instance and resets its expiry.
func (s *MemoryStore) Save(_ context.Context, id string, data *Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || s.now().After(e.expires) {
		return ErrNotFound
	}
	s.entries[id] = memoryEntry{data: *data, expires: s.now().Add(s.ttl)}
	return nil
}

// Len returns the number of stored instances, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
