// Package constants defines numerical limits.
package constants

const (
	// Number of query/category pairs fetched at once for one search
	TorrentSearchWorkers = 4

	// Catalog search results returned to clients, in provider order
	MaxSearchResults = 5

	// Cast and crew are each trimmed before merging
	MaxCastMembers   = 10
	MaxCrewMembers   = 10
	MaxMergedCredits = 20

	// Order given to crew members so they sort after cast
	CrewCreditOrder = 999

	// Retry attempts for scraping and catalog requests
	MaxFetchAttempts = 3
)
