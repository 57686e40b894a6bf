package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(5 * time.Minute)

	require.NoError(t, c.Set(ctx, "report", []byte(`{"ok":true}`)))

	value, ok, err := c.Get(ctx, "report")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"ok":true}`), value)
}

func TestMemoryCache_MissingKey(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(5 * time.Minute)

	value, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestMemoryCache_ExpiredEntryEvicted(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	// Управляем временем: запись кладётся в 12:00, читается в 12:02
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	require.NoError(t, c.Set(ctx, "report", []byte("stale")))

	current = current.Add(2 * time.Minute)
	value, ok, err := c.Get(ctx, "report")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)

	// Просроченная запись удалена, а не просто скрыта
	c.mu.RLock()
	_, exists := c.entries["report"]
	c.mu.RUnlock()
	assert.False(t, exists)
}

func TestMemoryCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(5 * time.Minute)

	require.NoError(t, c.Set(ctx, "report", []byte("data")))
	require.NoError(t, c.Invalidate(ctx, "report"))

	_, ok, err := c.Get(ctx, "report")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(5 * time.Minute)

	require.NoError(t, c.Set(ctx, "report", []byte("v1")))
	require.NoError(t, c.Set(ctx, "report", []byte("v2")))

	value, ok, err := c.Get(ctx, "report")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), value)
}
