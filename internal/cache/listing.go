package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/amaumene/streamy/internal/constants"
	"github.com/amaumene/streamy/pkg/logger"
	"github.com/amaumene/streamy/pkg/torrentsearch"
	"github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/amaumene/streamy/pkg/torrentsearch/utils"
	"golang.org/x/sync/singleflight"
)

// ListingCache wraps a listing source so identical queries within ttl are
// served from memory, with at most one fetch in flight per key.
// Failed fetches are not cached.
type ListingCache struct {
	source torrentsearch.RawListingSource
	cache  *LRUCache
	group  singleflight.Group
	logger logger.Logger
}

// NewListingCache returns source unchanged when ttl is zero.
func NewListingCache(source torrentsearch.RawListingSource, size int, ttl time.Duration, log logger.Logger) torrentsearch.RawListingSource {
	if ttl <= 0 {
		return source
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ListingCache{
		source: source,
		cache:  New(size, ttl),
		logger: log,
	}
}

// ListingKey identifies a query/category pair in the cache.
func ListingKey(query string, category models.Category) string {
	return fmt.Sprintf("listings:%d:%s", category, utils.SanitizeTitle(query))
}

func (lc *ListingCache) FetchRawListings(ctx context.Context, query string, category models.Category) ([]models.RawListing, error) {
	key := ListingKey(query, category)

	if cached, found := lc.cache.Get(key); found {
		lc.logger.Debugf("[Cache] hit for %q (%s)", query, category)
		return cached.([]models.RawListing), nil
	}

	// Shared by every caller waiting on key: detached from the first caller's cancellation.
	ch := lc.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.FetchTimeout)
		defer cancel()

		listings, err := lc.source.FetchRawListings(fetchCtx, query, category)
		if err != nil {
			return nil, err
		}
		lc.cache.Set(key, listings)
		return listings, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.RawListing), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
