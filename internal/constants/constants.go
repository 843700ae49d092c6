// Package constants defines application-wide constants and default values.
package constants

const (
	// API metadata
	APIName        = "Torrent Search API"
	APIVersion     = "5.0"
	APIDescription = "Modern torrent search API with TMDB integration and intelligent scoring"

	// Default configuration values
	DefaultHost     = "0.0.0.0"
	DefaultPort     = 8001
	DefaultLogLevel = "info"

	DefaultTMDBBaseURL      = "https://api.themoviedb.org/3"
	DefaultTMDBImageBaseURL = "https://image.tmdb.org/t/p/w500"
	DefaultTorrentDomain    = "tpirbay.site"
	TMDBLanguage            = "en-US"

	// Cache settings
	DefaultListingCacheSize = 512
	DefaultCatalogCacheSize = 1000
	DefaultCatalogCacheTTL  = 24 // hours

	// Rate limiting
	TMDBRateLimit    = 20 // requests per second
	TMDBRateBurst    = 5  // burst capacity
	TorrentRateLimit = 4  // requests per second
	TorrentRateBurst = 4  // burst capacity
)

// Health values reported by /health.
const (
	ServiceActive    = "active"
	ServiceConnected = "connected"
	ServiceDisabled  = "disabled"
	ServiceError     = "error"
)
