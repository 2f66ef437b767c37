package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisStore struct {
	client redisKV
	key    string
	ttl    time.Duration
}

// NewRedisStore guarda el token en <namespace>:token. Con ttl > 0 la clave expira sola.
func NewRedisStore(client *redis.Client, namespace string, ttl time.Duration) Store {
	if client == nil {
		return nil
	}
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		namespace = "console"
	}
	return &redisStore{
		client: client,
		key:    namespace + ":" + TokenKey,
		ttl:    ttl,
	}
}

func (s *redisStore) Get(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *redisStore) Set(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return s.Clear(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.key, token, s.ttl).Err()
}

func (s *redisStore) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.key).Err()
}
