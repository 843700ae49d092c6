package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/amaumene/streamy/internal/config"
	"github.com/amaumene/streamy/pkg/logger"
	tsmodels "github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		TMDBBaseURL:       "http://127.0.0.1:1",
		TMDBImageBaseURL:  "https://image.tmdb.org/t/p/w500",
		TorrentSiteDomain: "index.invalid",
		Host:              "127.0.0.1",
		Port:              8001,
		LogLevel:          "error",
		ListingCacheTTL:   time.Minute,
		ListingCacheSize:  16,
		CatalogCacheTTL:   time.Hour,
	}
}

func TestTorrentsTarget(t *testing.T) {
	tests := []struct {
		name    string
		opts    torrentsOptions
		want    tsmodels.Target
		wantErr bool
	}{
		{"movie", torrentsOptions{kind: "movie", season: -1, episode: -1}, tsmodels.MovieTarget("Dune"), false},
		{"any", torrentsOptions{kind: "any", season: -1, episode: -1}, tsmodels.Target{Title: "Dune", Kind: tsmodels.KindAny}, false},
		{"show", torrentsOptions{kind: "tv", season: -1, episode: -1}, tsmodels.ShowTarget("Dune"), false},
		{"specials season", torrentsOptions{kind: "tv", season: 0, episode: -1}, tsmodels.SeasonTarget("Dune", 0), false},
		{"episode", torrentsOptions{kind: "tv", season: 1, episode: 2}, tsmodels.EpisodeTarget("Dune", 1, 2), false},
		{"episode without season", torrentsOptions{kind: "tv", season: -1, episode: 2}, tsmodels.Target{}, true},
		{"movie with season", torrentsOptions{kind: "movie", season: 1, episode: -1}, tsmodels.Target{}, true},
		{"unknown kind", torrentsOptions{kind: "music", season: -1, episode: -1}, tsmodels.Target{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.target("Dune")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppWithoutCatalogKey(t *testing.T) {
	app, err := NewApp(testConfig(), logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.container.TMDB)

	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "disabled", body["services"].(map[string]interface{})["tmdb_integration"])

	w = httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/movies/dune", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "streamy_http_requests_total")
}

func TestAppWithCatalogDiskCache(t *testing.T) {
	cfg := testConfig()
	cfg.TMDBAPIKey = "0123456789abcdef0123456789abcdef"
	cfg.CatalogCachePath = filepath.Join(t.TempDir(), "catalog.db")

	app, err := NewApp(cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, app.container.TMDB)
	assert.NotNil(t, app.container.DB)
	assert.NotNil(t, app.container.Cache)
	assert.NoError(t, app.Close())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Torrent Search API")
}
