package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRevoker(t *testing.T, prefix string) (*RedisRevoker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRevoker(client, prefix), mr
}

func TestRedisRevoker_Key(t *testing.T) {
	r, _ := newTestRevoker(t, "")
	assert.Equal(t, "ces:console:revoked:abc", r.key("abc"))

	r, _ = newTestRevoker(t, "app")
	assert.Equal(t, "app:revoked:abc", r.key("abc"))
}

func TestRedisRevoker_RevokeThenIsRevoked(t *testing.T) {
	r, mr := newTestRevoker(t, "")
	ctx := context.Background()

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, time.Hour, mr.TTL("ces:console:revoked:jti-1"))

	revoked, err = r.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevoker_KeyExpiresWithToken(t *testing.T) {
	r, mr := newTestRevoker(t, "")
	ctx := context.Background()

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Minute))
	mr.FastForward(2 * time.Minute)

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevoker_EmptyTokenID(t *testing.T) {
	r, mr := newTestRevoker(t, "")
	ctx := context.Background()

	assert.ErrorIs(t, r.Revoke(ctx, "", time.Hour), ErrEmptyTokenID)
	assert.Empty(t, mr.Keys())

	revoked, err := r.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevoker_ExpiredTokenNotStored(t *testing.T) {
	r, mr := newTestRevoker(t, "")

	require.NoError(t, r.Revoke(context.Background(), "jti-1", 0))
	assert.Empty(t, mr.Keys())
}

func TestRedisRevoker_WrapsRedisErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	r := NewRedisRevoker(client, "")
	ctx := context.Background()

	err := r.Revoke(ctx, "jti", time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "注销令牌失败")

	_, err = r.IsRevoked(ctx, "jti")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "查询令牌状态失败")
}

func TestNopRevoker(t *testing.T) {
	var r Revoker = NopRevoker{}
	require.NoError(t, r.Revoke(context.Background(), "jti", time.Hour))

	revoked, err := r.IsRevoked(context.Background(), "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}
