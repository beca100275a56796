package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultCartTTL = 7 * 24 * time.Hour

// RedisCartStore keeps each cart as one string value that expires after TTL
// without writes.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) Save(ctx context.Context, key string, payload []byte) error {
	return s.Client.Set(ctx, key, payload, s.TTL).Err()
}

func (s *RedisCartStore) Load(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *RedisCartStore) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}
