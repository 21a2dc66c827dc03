package token

import (
	"context"
	"sync"
	"time"
)

// RevocationStore holds the JTIs of tokens invalidated before expiry.
// The ttl hint lets external stores drop entries once the token would
// have expired on its own.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// MemoryRevocationStore is the in-process default. It grows for the life
// of the process; swap in the Redis store when that matters.
type MemoryRevocationStore struct {
	mu   sync.RWMutex
	jtis map[string]struct{}
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		jtis: make(map[string]struct{}),
	}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, jti string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jtis[jti] = struct{}{}
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.jtis[jti]
	return ok, nil
}
