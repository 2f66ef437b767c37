package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisKVClient struct {
	lastSetKey string
	lastSetVal interface{}
	lastSetTTL time.Duration
	lastExists []string

	setErr    error
	existsErr error
	existsN   int64
}

func (m *mockRedisKVClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.lastSetKey = key
	m.lastSetVal = value
	m.lastSetTTL = expiration
	cmd := redis.NewStatusCmd(ctx)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	cmd.SetVal("OK")
	return cmd
}

func (m *mockRedisKVClient) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	m.lastExists = keys
	cmd := redis.NewIntCmd(ctx)
	if m.existsErr != nil {
		cmd.SetErr(m.existsErr)
		return cmd
	}
	cmd.SetVal(m.existsN)
	return cmd
}

func TestMemoryRevocationStore_Basics(t *testing.T) {
	store := NewMemoryRevocationStore()

	ok, err := store.IsRevoked("missing")
	if err != nil || ok {
		t.Fatalf("expected missing jti false,nil; got %v,%v", ok, err)
	}

	if err := store.Revoke("jti-1", 50*time.Millisecond); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	ok, err = store.IsRevoked("jti-1")
	if err != nil || !ok {
		t.Fatalf("expected jti revoked, got %v,%v", ok, err)
	}

	time.Sleep(70 * time.Millisecond)
	ok, err = store.IsRevoked("jti-1")
	if err != nil || ok {
		t.Fatalf("expected revocation expired, got %v,%v", ok, err)
	}
}

func TestMemoryRevocationStore_EmptyJTI(t *testing.T) {
	store := NewMemoryRevocationStore()
	if err := store.Revoke("", time.Minute); err != nil {
		t.Fatalf("empty jti revoke should be no-op, got %v", err)
	}
	ok, err := store.IsRevoked("")
	if err != nil || ok {
		t.Fatalf("expected empty jti not revoked, got %v,%v", ok, err)
	}
}

func TestRedisRevocationStore_Basics(t *testing.T) {
	mock := &mockRedisKVClient{existsN: 1}
	store := &redisRevocationStore{
		client: mock,
		prefix: "auth:revoked:",
	}

	if err := store.Revoke(" j1 ", 0); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if mock.lastSetKey != "auth:revoked:j1" {
		t.Fatalf("unexpected key, got %q", mock.lastSetKey)
	}
	if mock.lastSetTTL <= 0 {
		t.Fatalf("expected positive TTL fallback, got %v", mock.lastSetTTL)
	}

	ok, err := store.IsRevoked(" j1 ")
	if err != nil || !ok {
		t.Fatalf("expected revoked true,nil; got %v,%v", ok, err)
	}
	if len(mock.lastExists) != 1 || mock.lastExists[0] != "auth:revoked:j1" {
		t.Fatalf("unexpected exists key: %+v", mock.lastExists)
	}
}

func TestRedisRevocationStore_ErrorPaths(t *testing.T) {
	mock := &mockRedisKVClient{
		setErr:    errors.New("set failed"),
		existsErr: errors.New("exists failed"),
	}
	store := &redisRevocationStore{
		client: mock,
		prefix: "auth:revoked:",
	}

	if err := store.Revoke("", time.Minute); err != nil {
		t.Fatalf("empty jti revoke should be no-op, got %v", err)
	}
	if err := store.Revoke("j2", time.Minute); err == nil {
		t.Fatalf("expected revoke error")
	}
	if _, err := store.IsRevoked("j2"); err == nil {
		t.Fatalf("expected exists error")
	}
}
