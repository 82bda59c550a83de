package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ictam/agmsite/internal/adapters/driven/storage/memory"
	"github.com/ictam/agmsite/internal/core/domain"
)

func TestContentCache_LoadsOnce(t *testing.T) {
	cache, src := newTestCache()

	first, gen1, err := cache.Get(context.Background())
	require.NoError(t, err)
	second, gen2, err := cache.Get(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, gen1, gen2)
	assert.Equal(t, 1, src.Loads())
}

func TestContentCache_ReloadBumpsGeneration(t *testing.T) {
	cache, src := newTestCache()
	_, gen1, err := cache.Get(context.Background())
	require.NoError(t, err)

	src.Replace(&domain.Content{Links: []domain.Link{{Title: "New", URL: "/new"}}})
	require.NoError(t, cache.Reload(context.Background()))

	content, gen2, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Greater(t, gen2, gen1)
	assert.Len(t, content.Links, 1)
}

func TestContentCache_ReloadFailureKeepsSnapshot(t *testing.T) {
	cache, src := newTestCache()
	before, gen, err := cache.Get(context.Background())
	require.NoError(t, err)

	boom := errors.New("disk on fire")
	src.SetError(boom)
	err = cache.Reload(context.Background())
	assert.ErrorIs(t, err, boom)

	after, genAfter, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, before, after)
	assert.Equal(t, gen, genAfter)
}

func TestContentCache_NilContentBecomesEmpty(t *testing.T) {
	cache := NewContentCache(memory.NewContentSource(nil))

	content, _, err := cache.Get(context.Background())

	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Empty(t, content.Speakers)
}

func TestContentCache_NoSource(t *testing.T) {
	cache := NewContentCache(nil)
	_, _, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrContentUnavailable)
}
