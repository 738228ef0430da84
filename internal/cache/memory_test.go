package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)

	_, err := store.Get("missing")
	require.ErrorIs(t, err, ErrCacheNotFound)

	require.NoError(t, store.Set("addr:100", []byte("1.5"), time.Minute))

	v, err := store.Get("addr:100")
	require.NoError(t, err)
	assert.Equal(t, []byte("1.5"), v)

	require.NoError(t, store.Del("addr:100"))
	_, err = store.Get("addr:100")
	require.ErrorIs(t, err, ErrCacheNotFound)
}

func TestNewDefaultsToMemory(t *testing.T) {
	store, err := New(Config{})
	require.NoError(t, err)
	require.NoError(t, store.Set("k", []byte("v"), time.Minute))
	v, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestNewUnknownEngine(t *testing.T) {
	_, err := New(Config{Engine: "bogus"})
	require.ErrorIs(t, err, ErrUnknownEngine)
}
