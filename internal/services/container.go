// Package services provides the catalog client, the torrent index scraper and
// the dependency injection container handed to the HTTP handlers.
package services

import (
	"context"

	"github.com/amaumene/streamy/internal/cache"
	"github.com/amaumene/streamy/internal/database"
	"github.com/amaumene/streamy/internal/metrics"
	"github.com/amaumene/streamy/internal/models"
	"github.com/amaumene/streamy/pkg/logger"
	"github.com/amaumene/streamy/pkg/torrentsearch"
	tsmodels "github.com/amaumene/streamy/pkg/torrentsearch/models"
)

// Container holds all application services for dependency injection.
// TMDB is nil when no catalog API key is configured.
type Container struct {
	TMDB          CatalogService
	TorrentSearch TorrentFinder
	Formatter     *Formatter
	Cache         *cache.LRUCache
	DB            database.Database
	Metrics       *metrics.Manager
	Logger        logger.Logger
}

// CatalogService defines the interface for TMDB API operations.
type CatalogService interface {
	SearchMulti(ctx context.Context, query string) ([]models.SearchResult, error)
	SearchMovies(ctx context.Context, query string) ([]models.SearchResult, error)
	SearchTV(ctx context.Context, query string) ([]models.SearchResult, error)
	MovieDetails(ctx context.Context, id int) (*models.Details, error)
	MovieCredits(ctx context.Context, id int) (*models.MovieCredits, error)
	TVDetails(ctx context.Context, id int) (*models.Details, error)
	SeasonDetails(ctx context.Context, id, season int) (*models.Details, error)
	EpisodeDetails(ctx context.Context, id, season, episode int) (*models.Details, error)
	Ping(ctx context.Context) error
}

// TorrentFinder ranks torrents for a movie, show, season or episode.
type TorrentFinder interface {
	Search(ctx context.Context, target tsmodels.Target) []tsmodels.TorrentResult
}

var (
	_ CatalogService                 = (*TMDB)(nil)
	_ TorrentFinder                  = (*torrentsearch.TorrentSearch)(nil)
	_ torrentsearch.RawListingSource = (*PirateBay)(nil)
)
