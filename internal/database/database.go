// Package database provides an on-disk cache for catalog responses using BoltDB.
package database

import (
	"time"
)

// CatalogEntry is one cached catalog response.
type CatalogEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// Database defines the interface for data persistence operations.
type Database interface {
	// GetCatalogEntry returns the cached response for key, or nil when missing or expired
	GetCatalogEntry(key string) (*CatalogEntry, error)
	// StoreCatalogEntry stores a response under key
	StoreCatalogEntry(key string, data []byte) error
	// DeleteExpired removes entries older than the configured TTL
	DeleteExpired() (int, error)
	// Close closes the database connection
	Close() error
}
