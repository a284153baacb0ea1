// Package revocation provides an in-process RevokedTokenSet for single-node
// deployments and tests. Multi-instance deployments use the Redis store so a
// logout on one node is seen by every other node.
package revocation

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// MemoryStore keeps revoked token ids until their natural expiry.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// WithClock replaces the clock used for expiry decisions.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

// Revoke records tokenID until expiresAt. Tokens already past their expiry
// are not stored: they can no longer be used anyway.
func (s *MemoryStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	if !s.now().Before(expiresAt) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.entries[tokenID]; !ok || expiresAt.After(cur) {
		s.entries[tokenID] = expiresAt
	}
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	exp, ok := s.entries[tokenID]
	s.mu.RUnlock()
	return ok && s.now().Before(exp), nil
}

// Purge drops every entry whose token has expired at now and returns how many
// were removed.
func (s *MemoryStore) Purge(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, exp := range s.entries {
		if !now.Before(exp) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Len is the number of entries currently held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Run purges expired entries every interval until ctx is cancelled.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Purge(s.now()); n > 0 {
				log.Debug().Int("purged", n).Int("remaining", s.Len()).Msg("revoked tokens purged")
			}
		}
	}
}
