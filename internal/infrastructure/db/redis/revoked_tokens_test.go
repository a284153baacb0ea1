package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client backed by an in-process miniredis server.
func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mini.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, mini
}

func TestRevokedTokens_Key(t *testing.T) {
	r := NewRevokedTokens(nil)
	assert.Equal(t, "revoked:abc-123", r.key("abc-123"))
}

func TestRevokedTokens_RevokeThenCheck(t *testing.T) {
	client, mini := newTestClient(t)
	r := NewRevokedTokens(client)
	ctx := context.Background()

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.True(t, mini.Exists("revoked:jti-1"))
	assert.InDelta(t, time.Minute.Seconds(), mini.TTL("revoked:jti-1").Seconds(), 2)

	other, err := r.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, other, "revoking one token must not affect another")
}

func TestRevokedTokens_EntryLapsesWithToken(t *testing.T) {
	client, mini := newTestClient(t)
	r := NewRevokedTokens(client)
	ctx := context.Background()

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Now().Add(30*time.Second)))
	mini.FastForward(31 * time.Second)

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevokedTokens_RevokeTwice(t *testing.T) {
	client, mini := newTestClient(t)
	r := NewRevokedTokens(client)
	ctx := context.Background()

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))
	require.NoError(t, r.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	assert.Len(t, mini.Keys(), 1)
}

func TestRevokedTokens_ExpiredTokenIsNoop(t *testing.T) {
	client, mini := newTestClient(t)
	r := NewRevokedTokens(client)

	require.NoError(t, r.Revoke(context.Background(), "jti", time.Now().Add(-time.Second)))
	assert.Empty(t, mini.Keys())
}

func TestRevokedTokens_ServerDown(t *testing.T) {
	client, mini := newTestClient(t)
	r := NewRevokedTokens(client)
	mini.Close()

	_, err := r.IsRevoked(context.Background(), "jti")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revocation check")

	err = r.Revoke(context.Background(), "jti", time.Now().Add(time.Minute))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoke token")
}
