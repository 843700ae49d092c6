// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/amaumene/streamy/internal/constants"
	"github.com/amaumene/streamy/pkg/security"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// Default dotenv file name
	defaultEnvFile = ".env"
)

// Config holds the application configuration.
// Values come from the environment, an optional .env file and an optional config file.
type Config struct {
	// Catalog API
	TMDBAPIKey       string
	TMDBBaseURL      string
	TMDBImageBaseURL string

	// Torrent index
	TorrentSiteDomain string

	// HTTP server
	Host  string
	Port  int
	Debug bool

	// Logging
	LogLevel string
	LogFile  string

	// Caching
	ListingCacheTTL  time.Duration
	ListingCacheSize int
	CatalogCachePath string
	CatalogCacheTTL  time.Duration
}

// Load reads configuration from the environment, .env and CONFIG_FILE.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", defaultEnvFile, err)
	}

	v := newViper()
	if configFile := v.GetString("CONFIG_FILE"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("TMDB_API_KEY", "")
	v.SetDefault("TMDB_BASE_URL", constants.DefaultTMDBBaseURL)
	v.SetDefault("TMDB_IMAGE_BASE_URL", constants.DefaultTMDBImageBaseURL)
	v.SetDefault("TORRENT_SITE_DOMAIN", constants.DefaultTorrentDomain)
	v.SetDefault("HOST", constants.DefaultHost)
	v.SetDefault("API_PORT", constants.DefaultPort)
	v.SetDefault("DEBUG", true)
	v.SetDefault("LOG_LEVEL", constants.DefaultLogLevel)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LISTING_CACHE_TTL", constants.DefaultListingCacheTTL)
	v.SetDefault("LISTING_CACHE_SIZE", constants.DefaultListingCacheSize)
	v.SetDefault("CATALOG_CACHE_PATH", "")
	v.SetDefault("CATALOG_CACHE_TTL", time.Duration(constants.DefaultCatalogCacheTTL)*time.Hour)
	v.SetDefault("CONFIG_FILE", "")

	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		TMDBAPIKey:        strings.TrimSpace(v.GetString("TMDB_API_KEY")),
		TMDBBaseURL:       strings.TrimRight(v.GetString("TMDB_BASE_URL"), "/"),
		TMDBImageBaseURL:  v.GetString("TMDB_IMAGE_BASE_URL"),
		TorrentSiteDomain: strings.TrimSpace(v.GetString("TORRENT_SITE_DOMAIN")),
		Host:              v.GetString("HOST"),
		Port:              v.GetInt("API_PORT"),
		Debug:             v.GetBool("DEBUG"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFile:           v.GetString("LOG_FILE"),
		ListingCacheTTL:   v.GetDuration("LISTING_CACHE_TTL"),
		ListingCacheSize:  v.GetInt("LISTING_CACHE_SIZE"),
		CatalogCachePath:  v.GetString("CATALOG_CACHE_PATH"),
		CatalogCacheTTL:   v.GetDuration("CATALOG_CACHE_TTL"),
	}
}

// Validate checks if the configuration is valid.
// Sets default values for missing optional fields.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("API_PORT out of range: %d", c.Port)
	}
	if c.TorrentSiteDomain == "" {
		return errors.New("TORRENT_SITE_DOMAIN is required")
	}
	if c.TMDBBaseURL == "" {
		c.TMDBBaseURL = constants.DefaultTMDBBaseURL
	}
	if c.TMDBImageBaseURL == "" {
		c.TMDBImageBaseURL = constants.DefaultTMDBImageBaseURL
	}
	if c.ListingCacheSize <= 0 {
		c.ListingCacheSize = constants.DefaultListingCacheSize
	}
	if c.ListingCacheTTL < 0 {
		c.ListingCacheTTL = 0
	}
	if c.CatalogCacheTTL <= 0 {
		c.CatalogCacheTTL = time.Duration(constants.DefaultCatalogCacheTTL) * time.Hour
	}
	return nil
}

// TMDBEnabled reports whether a real catalog API key is configured.
func (c *Config) TMDBEnabled() bool {
	return security.NewAPIKeyValidator().IsConfiguredTMDBKey(c.TMDBAPIKey)
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
