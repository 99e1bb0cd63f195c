// Package otp provides the one-time-code store implementations used by the
// password-reset flow.
package otp

import (
	"context"
	"sync"
	"time"

	"alumnihub/internal/domain/service"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memoryStore is the process-local CodeStore. Entries die with the process,
// which matches the original behavior; shared deployments use the Redis
// store instead.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() service.CodeStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Put stores value under key, replacing any prior entry.
func (s *memoryStore) Put(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}

	return nil
}

// Get returns the live value for key. Reading an expired entry deletes it,
// so a stale code cannot be retried later.
func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", service.ErrCodeNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, key)

		return "", service.ErrCodeExpired
	}

	return entry.value, nil
}

// Delete removes the entry for key.
func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}
