// Package cache provides the height-stratified key/value store backing the
// reputation ledger's memoization (see DESIGN NOTES in SPEC_FULL.md).
package cache

import (
	"errors"
	"time"
)

var (
	ErrCacheNotFound    = errors.New("key not found in cache")
	ErrCacheFailedToSet = errors.New("failed to set value in cache")
	ErrCacheFailedToDel = errors.New("failed to delete value from cache")
	ErrCacheFailedToGet = errors.New("failed to get value from cache")
)

// Store is a flat key/value cache with per-entry TTL. Callers that need
// height-stratification (e.g. the reputation ledger) fold the height into
// the key themselves rather than relying on TTL expiry, since TTL has no
// relationship to chain reorganisation.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Del(key string) error
}
