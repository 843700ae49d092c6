package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCacheBasics(t *testing.T) {
	c := New(2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	_, found := c.Get("a")
	assert.False(t, found, "oldest entry should be evicted")

	v, found := c.Get("c")
	require.True(t, found)
	assert.Equal(t, 3, v)

	c.Delete("c")
	_, found = c.Get("c")
	assert.False(t, found)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestLRUCacheExpiry(t *testing.T) {
	c := New(10, 20*time.Millisecond)
	c.Set("k", "v")

	time.Sleep(50 * time.Millisecond)

	_, found := c.Get("k")
	assert.False(t, found)
}

type countingSource struct {
	calls atomic.Int32
	err   error
	delay time.Duration
}

func (s *countingSource) FetchRawListings(ctx context.Context, query string, category models.Category) ([]models.RawListing, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return []models.RawListing{{Title: query, Magnet: "magnet:" + query}}, nil
}

func TestListingCacheServesRepeatQueries(t *testing.T) {
	src := &countingSource{}
	lc := NewListingCache(src, 16, time.Minute, nil)

	first, err := lc.FetchRawListings(context.Background(), "Dune", models.CategoryMovies)
	require.NoError(t, err)
	second, err := lc.FetchRawListings(context.Background(), "Dune", models.CategoryMovies)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), src.calls.Load())

	_, err = lc.FetchRawListings(context.Background(), "Dune", models.CategoryHDMovies)
	require.NoError(t, err)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestListingCacheDoesNotCacheFailures(t *testing.T) {
	src := &countingSource{err: errors.New("503")}
	lc := NewListingCache(src, 16, time.Minute, nil)

	_, err := lc.FetchRawListings(context.Background(), "Dune", models.CategoryMovies)
	assert.Error(t, err)
	_, err = lc.FetchRawListings(context.Background(), "Dune", models.CategoryMovies)
	assert.Error(t, err)

	assert.Equal(t, int32(2), src.calls.Load())
}

func TestListingCacheCollapsesConcurrentFetches(t *testing.T) {
	src := &countingSource{delay: 50 * time.Millisecond}
	lc := NewListingCache(src, 16, time.Minute, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listings, err := lc.FetchRawListings(context.Background(), "Show S01", models.CategoryTVShows)
			assert.NoError(t, err)
			assert.Len(t, listings, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
}

func TestListingCacheSharedFetchOutlivesFirstCaller(t *testing.T) {
	src := &countingSource{delay: 100 * time.Millisecond}
	lc := NewListingCache(src, 16, time.Minute, nil)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := lc.FetchRawListings(firstCtx, "Dune", models.CategoryMovies)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)

	type result struct {
		listings []models.RawListing
		err      error
	}
	second := make(chan result, 1)
	go func() {
		listings, err := lc.FetchRawListings(context.Background(), "Dune", models.CategoryMovies)
		second <- result{listings, err}
	}()
	time.Sleep(10 * time.Millisecond)
	cancelFirst()

	assert.ErrorIs(t, <-firstErr, context.Canceled)

	res := <-second
	require.NoError(t, res.err)
	assert.Len(t, res.listings, 1)
	assert.Equal(t, int32(1), src.calls.Load())

	cached, err := lc.FetchRawListings(context.Background(), "Dune", models.CategoryMovies)
	require.NoError(t, err)
	assert.Equal(t, res.listings, cached)
}

func TestListingCacheDisabled(t *testing.T) {
	src := &countingSource{}
	lc := NewListingCache(src, 16, 0, nil)

	assert.Same(t, src, lc)
}

func TestListingKeyNormalisesQuery(t *testing.T) {
	assert.Equal(t, ListingKey("Mr. Robot", models.CategoryTVShows), ListingKey("Mr  Robot", models.CategoryTVShows))
	assert.NotEqual(t, ListingKey("Dune", models.CategoryMovies), ListingKey("Dune", models.CategoryHDMovies))
}
