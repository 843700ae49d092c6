package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/amaumene/streamy/internal/cache"
	"github.com/amaumene/streamy/internal/config"
	"github.com/amaumene/streamy/internal/constants"
	"github.com/amaumene/streamy/internal/database"
	"github.com/amaumene/streamy/internal/handlers"
	"github.com/amaumene/streamy/internal/metrics"
	"github.com/amaumene/streamy/internal/middleware"
	"github.com/amaumene/streamy/internal/services"
	"github.com/amaumene/streamy/pkg/logger"
	"github.com/amaumene/streamy/pkg/torrentsearch"
	"github.com/gin-gonic/gin"
)

const catalogPruneInterval = time.Hour

// App holds the wired services of a running API server.
type App struct {
	cfg       *config.Config
	log       logger.Logger
	metrics   *metrics.Manager
	db        *database.BoltDB
	container *services.Container
	engine    *gin.Engine
}

// NewApp wires every service from cfg. The catalog client is left out when no
// usable TMDB key is configured, which makes the catalog routes answer 503.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{
		cfg:     cfg,
		log:     log,
		metrics: metrics.NewManager(),
	}

	app.container = &services.Container{
		TorrentSearch: newTorrentSearch(cfg, app.metrics, log),
		Formatter:     services.NewFormatter(cfg.TMDBImageBaseURL),
		Metrics:       app.metrics,
		Logger:        log,
	}

	if cfg.TMDBEnabled() {
		memoryCache := cache.New(constants.DefaultCatalogCacheSize, cfg.CatalogCacheTTL)
		tmdb := services.NewTMDB(cfg.TMDBAPIKey, cfg.TMDBBaseURL, memoryCache, app.metrics, log)

		if cfg.CatalogCachePath != "" {
			db, err := database.NewBolt(cfg.CatalogCachePath, cfg.CatalogCacheTTL)
			if err != nil {
				return nil, err
			}
			app.db = db
			app.container.DB = db
			tmdb.SetDB(db)
			log.Infof("[App] catalog disk cache enabled at %s", cfg.CatalogCachePath)
		}

		app.container.TMDB = tmdb
		app.container.Cache = memoryCache
		log.Infof("[App] TMDB integration enabled")
	} else {
		log.Warnf("[App] TMDB_API_KEY not configured, catalog routes are disabled")
	}

	app.engine = app.newRouter()
	return app, nil
}

// newTorrentSearch builds the ranking pipeline on top of the cached index scraper.
func newTorrentSearch(cfg *config.Config, m *metrics.Manager, log logger.Logger) *torrentsearch.TorrentSearch {
	scraper := services.NewPirateBay(cfg.TorrentSiteDomain, m, log)
	source := cache.NewListingCache(scraper, cfg.ListingCacheSize, cfg.ListingCacheTTL, log)

	search := torrentsearch.New(source, log)
	search.SetMaxWorkers(constants.TorrentSearchWorkers)
	search.SetBudget(constants.TorrentSearchBudget)
	return search
}

func (a *App) newRouter() *gin.Engine {
	if a.cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Gzip(),
		middleware.Recovery(a.log),
		middleware.Logger(a.log),
		middleware.Metrics(a.metrics),
		middleware.CORS(),
	)

	handlers.New(a.container, a.cfg).RegisterRoutes(r)
	return r
}

// Router returns the configured gin engine.
func (a *App) Router() *gin.Engine {
	return a.engine
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.db != nil {
		cleanup := services.NewCleanupService(a.db, a.log)
		cleanup.SetInterval(catalogPruneInterval)
		cleanup.Start(ctx)
		defer cleanup.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Infof("[App] listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Infof("[App] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// Close releases the disk cache, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
