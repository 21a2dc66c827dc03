package token

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevocationStore(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryRevocationStore_Concurrent(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		jti := fmt.Sprintf("jti-%d", i)
		go func() {
			defer wg.Done()
			_ = store.Revoke(ctx, jti, time.Hour)
		}()
		go func() {
			defer wg.Done()
			_, _ = store.IsRevoked(ctx, jti)
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		revoked, err := store.IsRevoked(ctx, fmt.Sprintf("jti-%d", i))
		require.NoError(t, err)
		assert.True(t, revoked)
	}
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisRevocationStore(t *testing.T) {
	store := NewRedisRevocationStore(newTestRedis(t))
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-redis")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-redis", time.Hour))

	revoked, err = store.IsRevoked(ctx, "jti-redis")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisRevocationStore_WithManager(t *testing.T) {
	m := NewManager("test-secret", time.Hour, NewRedisRevocationStore(newTestRedis(t)))

	signed, _, err := m.Issue(uuid.New(), "ADMIN")
	require.NoError(t, err)

	require.NoError(t, m.Revoke(context.Background(), signed))

	_, err = m.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}
