// Package constants defines timeout values and retry limits used throughout the application.
package constants

import "time"

const (
	// Upper bound for the whole torrent lookup of one request
	TorrentSearchBudget = 25 * time.Second

	// Timeout for a single index page fetch
	FetchTimeout = 12 * time.Second

	// Catalog API timeouts
	TMDBRequestTimeout = 10 * time.Second
	TMDBHealthTimeout  = 5 * time.Second

	// Backoff between retries
	RetryBaseDelay = 500 * time.Millisecond
	RetryMaxDelay  = 4 * time.Second

	// Default lifetime of cached index pages
	DefaultListingCacheTTL = 5 * time.Minute

	// Graceful shutdown drain
	ShutdownTimeout = 10 * time.Second
)
