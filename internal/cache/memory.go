package cache

import (
	"context"
	"path"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	fields    map[string]string
	expiresAt time.Time
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore is a TTL-aware in-memory Store used in tests and local
// development. Expired entries are dropped lazily on access.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) lookup(key string) (*memoryEntry, bool) {
	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if entry.expired(s.now()) {
		delete(s.entries, key)
		return nil, false
	}
	return entry, true
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.lookup(key)
	if !ok || entry.fields != nil {
		return "", ErrMiss
	}
	return entry.value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &memoryEntry{value: value, expiresAt: s.expiry(ttl)}
	return nil
}

func (s *MemoryStore) GetHash(ctx context.Context, key, field string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.lookup(key)
	if !ok || entry.fields == nil {
		return "", ErrMiss
	}
	value, ok := entry.fields[field]
	if !ok {
		return "", ErrMiss
	}
	return value, nil
}

func (s *MemoryStore) SetHash(ctx context.Context, key, field, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.lookup(key)
	if !ok || entry.fields == nil {
		entry = &memoryEntry{fields: make(map[string]string)}
		s.entries[key] = entry
	}
	entry.fields[field] = value
	entry.expiresAt = s.expiry(ttl)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *MemoryStore) DeletePattern(ctx context.Context, pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		if matchPattern(pattern, key) {
			delete(s.entries, key)
		}
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// Len reports the number of live (unexpired) entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key := range s.entries {
		if _, ok := s.lookup(key); ok {
			n++
		}
	}
	return n
}

// SetClock overrides the store's clock. Test hook for TTL expiry.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *MemoryStore) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(ttl)
}

// matchPattern matches Redis-style glob patterns. Cache keys never contain
// path separators, so path.Match's segment rules line up with Redis MATCH
// for the patterns the coordinator emits.
func matchPattern(pattern, key string) bool {
	if strings.ContainsRune(key, '/') {
		return false
	}
	ok, err := path.Match(pattern, key)
	return err == nil && ok
}
