// Package torrentsearch finds and ranks torrents for a movie, show, season or episode.
// Queries are planned per content kind, fetched concurrently from a listing source,
// deduplicated, filtered and sorted by a size/seeder heuristic.
package torrentsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/amaumene/streamy/pkg/logger"
	"github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/amaumene/streamy/pkg/torrentsearch/sorter"
	"github.com/amaumene/streamy/pkg/torrentsearch/utils"
	"github.com/sourcegraph/conc/iter"
)

const (
	defaultMaxWorkers = 4
	defaultBudget     = 25 * time.Second
	debugResultCount  = 3
)

// RawListingSource fetches unprocessed listings for one query in one category.
type RawListingSource interface {
	FetchRawListings(ctx context.Context, query string, category models.Category) ([]models.RawListing, error)
}

// TorrentSearch runs query plans against a listing source and ranks the results.
type TorrentSearch struct {
	source     RawListingSource
	sorter     *sorter.TorrentSorter
	logger     logger.Logger
	maxWorkers int
	budget     time.Duration
}

// New creates a TorrentSearch reading from source.
func New(source RawListingSource, log logger.Logger) *TorrentSearch {
	if log == nil {
		log = logger.Nop()
	}
	return &TorrentSearch{
		source:     source,
		sorter:     sorter.NewTorrentSorter(),
		logger:     log,
		maxWorkers: defaultMaxWorkers,
		budget:     defaultBudget,
	}
}

// SetMaxWorkers bounds how many pairs of a plan are fetched at once.
func (ts *TorrentSearch) SetMaxWorkers(n int) {
	if n > 0 {
		ts.maxWorkers = n
	}
}

// SetBudget bounds the wall-clock time of one Search call.
func (ts *TorrentSearch) SetBudget(d time.Duration) {
	if d > 0 {
		ts.budget = d
	}
}

// Search returns the ranked torrents for target. It never fails: fetch errors
// and an exhausted time budget only reduce the number of results.
func (ts *TorrentSearch) Search(ctx context.Context, target models.Target) []models.TorrentResult {
	ctx, cancel := context.WithTimeout(ctx, ts.budget)
	defer cancel()

	plan := utils.BuildQueryPlan(target)
	ts.logger.Debugf("[TorrentSearch] %s search for %q: %d queries", target.Kind, target.Title, len(plan))

	listings := Deduplicate(ts.Aggregate(ctx, plan))
	if target.Kind == models.KindTVSeason {
		listings = FilterSeasonPacks(listings)
	}

	results := ts.sorter.Rank(FilterUsable(listings))

	ts.logger.Infof("[TorrentSearch] found %d torrents for %q", len(results), target.Title)
	for _, line := range ts.sorter.DebugInfo(results, debugResultCount) {
		ts.logger.Debugf("[TorrentSearch] %s", line)
	}

	return results
}

// Aggregate fetches every pair of plan and concatenates the listings in plan order.
// A pair that fails contributes nothing; the others are unaffected.
func (ts *TorrentSearch) Aggregate(ctx context.Context, plan models.QueryPlan) []models.RawListing {
	if len(plan) == 0 {
		return nil
	}

	mapper := iter.Mapper[models.QueryPair, []models.RawListing]{MaxGoroutines: ts.maxWorkers}
	batches := mapper.Map(plan, func(pair *models.QueryPair) []models.RawListing {
		listings, err := ts.fetch(ctx, *pair)
		if err != nil {
			ts.logger.Warnf("[TorrentSearch] query %q (%s) failed: %v", pair.Query, pair.Category, err)
			return nil
		}
		return listings
	})

	var all []models.RawListing
	for _, batch := range batches {
		all = append(all, batch...)
	}
	return all
}

func (ts *TorrentSearch) fetch(ctx context.Context, pair models.QueryPair) (listings []models.RawListing, err error) {
	defer func() {
		if r := recover(); r != nil {
			listings, err = nil, fmt.Errorf("listing source panicked: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ts.source.FetchRawListings(ctx, pair.Query, pair.Category)
}
