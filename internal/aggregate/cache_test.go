package aggregate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rankbuddy/internal/sources"
	"github.com/jonathan/rankbuddy/internal/types"
)

func TestCacheGet_ReusesPoolForSameSeed(t *testing.T) {
	stub := &stubSource{name: "completion", mode: sources.ModePhrase,
		batch: types.CandidateBatch{"seo tips"}}
	cache := NewCache(New([]sources.Source{stub}))

	first, _, err := cache.Get(context.Background(), "seo")
	require.NoError(t, err)

	second, _, err := cache.Get(context.Background(), "SEO ")
	require.NoError(t, err)

	assert.Same(t, first, second, "normalized-equal seeds hit the cache")
	assert.Equal(t, 1, stub.fetches)
}

func TestCacheGet_RebuildsOnSeedChange(t *testing.T) {
	stub := &stubSource{name: "completion", mode: sources.ModePhrase}
	cache := NewCache(New([]sources.Source{stub}))

	first, _, err := cache.Get(context.Background(), "seo")
	require.NoError(t, err)

	second, _, err := cache.Get(context.Background(), "content marketing")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, stub.fetches)
	assert.Equal(t, "content marketing", second.Seed)
}

func TestCacheInvalidate_ForcesRebuild(t *testing.T) {
	stub := &stubSource{name: "completion", mode: sources.ModePhrase}
	cache := NewCache(New([]sources.Source{stub}))

	_, _, err := cache.Get(context.Background(), "seo")
	require.NoError(t, err)

	cache.Invalidate()

	_, _, err = cache.Get(context.Background(), "seo")
	require.NoError(t, err)
	assert.Equal(t, 2, stub.fetches)
}

func TestCacheGet_InvalidSeed(t *testing.T) {
	cache := NewCache(New(nil))

	_, _, err := cache.Get(context.Background(), "")
	var seedErr *types.SeedError
	assert.ErrorAs(t, err, &seedErr)
}
