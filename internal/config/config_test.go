package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("API_PORT", "")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDBBaseURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.TMDBImageBaseURL)
	assert.Equal(t, "tpirbay.site", cfg.TorrentSiteDomain)
	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "0.0.0.0:8001", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.ListingCacheTTL)
	assert.Empty(t, cfg.CatalogCachePath)
	assert.False(t, cfg.TMDBEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("TORRENT_SITE_DOMAIN", "mirror.example")
	t.Setenv("API_PORT", "9000")
	t.Setenv("DEBUG", "false")
	t.Setenv("LISTING_CACHE_TTL", "30s")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.TMDBEnabled())
	assert.Equal(t, "mirror.example", cfg.TorrentSiteDomain)
	assert.Equal(t, 9000, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 30*time.Second, cfg.ListingCacheTTL)
}

func TestLoadFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streamy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"TORRENT_SITE_DOMAIN": "file.example", "API_PORT": 8100}`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("TORRENT_SITE_DOMAIN", "")
	t.Setenv("API_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file.example", cfg.TorrentSiteDomain)
	assert.Equal(t, 8100, cfg.Port)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("API_PORT", "70000")
	t.Setenv("CONFIG_FILE", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestTMDBEnabledPlaceholder(t *testing.T) {
	cfg := &Config{TMDBAPIKey: "your_tmdb_api_key_here"}
	assert.False(t, cfg.TMDBEnabled())

	cfg.TMDBAPIKey = "eyJhbGciOiJIUzI1NiJ9.e30.sig"
	assert.True(t, cfg.TMDBEnabled())
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := &Config{Port: 8001, TorrentSiteDomain: "x", ListingCacheTTL: -1}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 512, cfg.ListingCacheSize)
	assert.Equal(t, time.Duration(0), cfg.ListingCacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.CatalogCacheTTL)
	assert.NotEmpty(t, cfg.TMDBBaseURL)
}
