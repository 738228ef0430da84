package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type Engine string

const (
	EngineMemory Engine = "memory"
	EngineRedis  Engine = "redis"
)

var ErrUnknownEngine = errors.New("unknown cache engine")

type Config struct {
	Engine Engine
	Redis  struct {
		Addr     string
		Password string
		DB       int
	}
	Memory struct {
		DefaultTTL      time.Duration
		CleanupInterval time.Duration
	}
}

// New builds a Store from config, defaulting to an in-process store when no
// engine is configured so the antibot core never hard-requires Redis.
func New(cfg Config) (Store, error) {
	switch cfg.Engine {
	case "", EngineMemory:
		ttl := cfg.Memory.DefaultTTL
		if ttl == 0 {
			ttl = 10 * time.Minute
		}
		interval := cfg.Memory.CleanupInterval
		if interval == 0 {
			interval = time.Minute
		}
		return NewMemoryStore(ttl, interval), nil
	case EngineRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisStore(context.Background(), client), nil
	default:
		return nil, ErrUnknownEngine
	}
}
