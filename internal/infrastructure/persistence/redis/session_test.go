package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/backoffice/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "session:42", sessionKey(42))
	assert.Equal(t, "blacklist:abc.def", blacklistKey("abc.def"))
}

func TestRedisErr(t *testing.T) {
	err := redisErr(errors.New("i/o timeout"), "保存会话失败")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRedisError))
}

func TestSessionStore_BreakerOpensWhenRedisDown(t *testing.T) {
	// 无人监听的端口，连接立即被拒绝
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	store := NewSessionStore(client)
	ctx := context.Background()

	for i := 0; i < breakerFailures; i++ {
		_, err := store.IsInBlacklist(ctx, "token")
		require.Error(t, err)
		assert.False(t, errors.Is(err, circuitbreaker.ErrOpenState))
	}
	assert.Equal(t, circuitbreaker.StateOpen, store.breaker.State())

	_, err := store.IsInBlacklist(ctx, "token")
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRedisError))
}

// 需要真实Redis：BOOKSTORE_TEST_REDIS_ADDR=localhost:6379 go test ./...
func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	addr := os.Getenv("BOOKSTORE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("未设置BOOKSTORE_TEST_REDIS_ADDR，跳过Redis集成测试")
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		_ = client.Close()
	})
	return NewSessionStore(client)
}

func TestSessionStore_Session(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, 1, map[string]interface{}{"email": "op@example.com"}, time.Minute))

	data, err := store.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "op@example.com", data["email"])

	require.NoError(t, store.DeleteSession(ctx, 1))
	_, err = store.GetSession(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestSessionStore_Blacklist(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	revoked, err := store.IsInBlacklist(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.AddToBlacklist(ctx, "token-a", time.Minute))
	revoked, err = store.IsInBlacklist(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)
}
