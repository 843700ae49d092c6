package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/amaumene/streamy/internal/cache"
	"github.com/amaumene/streamy/internal/constants"
	"github.com/amaumene/streamy/internal/database"
	apierrors "github.com/amaumene/streamy/internal/errors"
	"github.com/amaumene/streamy/internal/metrics"
	"github.com/amaumene/streamy/internal/models"
	"github.com/amaumene/streamy/pkg/httputil"
	"github.com/amaumene/streamy/pkg/logger"
	"github.com/amaumene/streamy/pkg/ratelimiter"
	"github.com/amaumene/streamy/pkg/security"
)

const tmdbServiceName = "TMDB"

// TMDB is a client for the TMDB v3 API authenticated with a bearer token.
type TMDB struct {
	apiKey      string
	baseURL     string
	cache       *cache.LRUCache
	db          database.Database
	rateLimiter ratelimiter.RateLimiter
	httpClient  *http.Client
	metrics     *metrics.Manager
	logger      logger.Logger
	validator   *security.APIKeyValidator
	attempts    uint
	retryDelay  time.Duration
}

func NewTMDB(apiKey, baseURL string, cache *cache.LRUCache, m *metrics.Manager, log logger.Logger) *TMDB {
	validator := security.NewAPIKeyValidator()
	if log == nil {
		log = logger.Nop()
	}
	if baseURL == "" {
		baseURL = constants.DefaultTMDBBaseURL
	}

	sanitizedKey := validator.SanitizeAPIKey(apiKey)
	if !validator.IsValidTMDBKey(sanitizedKey) {
		log.Warnf("[TMDB] API key has an unexpected format (key: %s)", validator.MaskAPIKey(sanitizedKey))
	}

	return &TMDB{
		apiKey:      sanitizedKey,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		cache:       cache,
		rateLimiter: ratelimiter.NewTokenBucket(constants.TMDBRateBurst, constants.TMDBRateLimit),
		httpClient:  httputil.NewHTTPClient(constants.TMDBRequestTimeout),
		metrics:     m,
		logger:      log,
		validator:   validator,
		attempts:    constants.MaxFetchAttempts,
		retryDelay:  constants.RetryBaseDelay,
	}
}

// SetDB enables the on-disk cache for detail lookups.
func (t *TMDB) SetDB(db database.Database) {
	t.db = db
}

func (t *TMDB) SearchMulti(ctx context.Context, query string) ([]models.SearchResult, error) {
	return t.search(ctx, "search_multi", "/search/multi", query)
}

func (t *TMDB) SearchMovies(ctx context.Context, query string) ([]models.SearchResult, error) {
	return t.search(ctx, "search_movie", "/search/movie", query)
}

func (t *TMDB) SearchTV(ctx context.Context, query string) ([]models.SearchResult, error) {
	return t.search(ctx, "search_tv", "/search/tv", query)
}

func (t *TMDB) search(ctx context.Context, operation, path, query string) ([]models.SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	params.Set("page", "1")

	var resp models.TMDBSearchResponse
	if err := t.getJSON(ctx, operation, path, params, false, &resp); err != nil {
		return nil, err
	}

	results := resp.Results
	if len(results) > constants.MaxSearchResults {
		results = results[:constants.MaxSearchResults]
	}
	t.logger.Debugf("[TMDB] %s %q returned %d results", operation, query, len(results))
	return results, nil
}

func (t *TMDB) MovieDetails(ctx context.Context, id int) (*models.Details, error) {
	var details models.Details
	if err := t.getJSON(ctx, "movie_details", fmt.Sprintf("/movie/%d", id), nil, true, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// MovieCredits returns the ten most popular cast members and the ten most popular crew members.
func (t *TMDB) MovieCredits(ctx context.Context, id int) (*models.MovieCredits, error) {
	var credits models.MovieCredits
	if err := t.getJSON(ctx, "movie_credits", fmt.Sprintf("/movie/%d/credits", id), nil, true, &credits); err != nil {
		return nil, err
	}

	sort.SliceStable(credits.Cast, func(i, j int) bool {
		return credits.Cast[i].Popularity > credits.Cast[j].Popularity
	})
	if len(credits.Cast) > constants.MaxCastMembers {
		credits.Cast = credits.Cast[:constants.MaxCastMembers]
	}

	sort.SliceStable(credits.Crew, func(i, j int) bool {
		return credits.Crew[i].Popularity > credits.Crew[j].Popularity
	})
	if len(credits.Crew) > constants.MaxCrewMembers {
		credits.Crew = credits.Crew[:constants.MaxCrewMembers]
	}

	return &credits, nil
}

func (t *TMDB) TVDetails(ctx context.Context, id int) (*models.Details, error) {
	var details models.Details
	if err := t.getJSON(ctx, "tv_details", fmt.Sprintf("/tv/%d", id), nil, true, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (t *TMDB) SeasonDetails(ctx context.Context, id, season int) (*models.Details, error) {
	var details models.Details
	path := fmt.Sprintf("/tv/%d/season/%d", id, season)
	if err := t.getJSON(ctx, "season_details", path, nil, true, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (t *TMDB) EpisodeDetails(ctx context.Context, id, season, episode int) (*models.Details, error) {
	var details models.Details
	path := fmt.Sprintf("/tv/%d/season/%d/episode/%d", id, season, episode)
	if err := t.getJSON(ctx, "episode_details", path, nil, true, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Ping checks that the API answers the configuration endpoint.
func (t *TMDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.TMDBHealthTimeout)
	defer cancel()

	req, err := t.newRequest(ctx, "/configuration", nil)
	if err != nil {
		return apierrors.NewUnexpectedError("failed to build ping request", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.metrics.ObserveCatalogRequest("ping", metrics.OutcomeError)
		return apierrors.NewUnavailableError(tmdbServiceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.metrics.ObserveCatalogRequest("ping", metrics.OutcomeError)
		return apierrors.NewUnavailableError(tmdbServiceName, &httputil.StatusError{URL: req.URL.Path, StatusCode: resp.StatusCode})
	}

	t.metrics.ObserveCatalogRequest("ping", metrics.OutcomeSuccess)
	return nil
}
