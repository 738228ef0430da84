package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore is a Store backed by Redis, for deployments that run the
// engine's reputation cache out-of-process (e.g. shared between several
// validation replicas).
type RedisStore struct {
	client redis.UniversalClient
	ctx    context.Context
}

func NewRedisStore(ctx context.Context, client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, ctx: ctx}
}

func (r *RedisStore) Get(key string) ([]byte, error) {
	result, err := r.client.Get(r.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheNotFound
	} else if err != nil {
		return nil, errors.Join(ErrCacheFailedToGet, err)
	}
	return result, nil
}

func (r *RedisStore) Set(key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(r.ctx, key, value, ttl).Err(); err != nil {
		return errors.Join(ErrCacheFailedToSet, err)
	}
	return nil
}

func (r *RedisStore) Del(key string) error {
	if err := r.client.Del(r.ctx, key).Err(); err != nil {
		return errors.Join(ErrCacheFailedToDel, err)
	}
	return nil
}
