package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is a Store backed by an in-process go-cache, used for
// single-node deployments and in tests in place of Redis.
type MemoryStore struct {
	c *gocache.Cache
}

func NewMemoryStore(defaultTTL, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{c: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	v, found := m.c.Get(key)
	if !found {
		return nil, ErrCacheNotFound
	}
	return v.([]byte), nil
}

func (m *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}

func (m *MemoryStore) Del(key string) error {
	m.c.Delete(key)
	return nil
}
