package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type mockRedisKV struct {
	values map[string]string

	lastSetTTL time.Duration
	getErr     error
}

func newMockRedisKV() *mockRedisKV {
	return &mockRedisKV{values: make(map[string]string)}
}

func (m *mockRedisKV) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if m.getErr != nil {
		cmd.SetErr(m.getErr)
		return cmd
	}
	val, ok := m.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func (m *mockRedisKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.values[key] = value.(string)
	m.lastSetTTL = expiration
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (m *mockRedisKV) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.values[k]; ok {
			delete(m.values, k)
			n++
		}
	}
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(n)
	return cmd
}

func TestRedisStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockRedisKV()
	store := &redisStore{client: mock, key: "console:token", ttl: time.Hour}

	_, err := store.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Set(ctx, " tok-1 "))
	require.Equal(t, " tok-1 ", mock.values["console:token"], "token must be stored byte for byte")
	require.Equal(t, time.Hour, mock.lastSetTTL)

	token, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, " tok-1 ", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)
}

func TestRedisStore_LookupFailureIsNotAbsence(t *testing.T) {
	mock := newMockRedisKV()
	mock.getErr = errors.New("connection refused")
	store := &redisStore{client: mock, key: "console:token"}

	_, err := store.Get(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoToken)
}

func TestNewRedisStore_NilClient(t *testing.T) {
	require.Nil(t, NewRedisStore(nil, "x", 0))
}
