package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// Default database file permissions
	dbFileMode = 0600
	dbDirMode  = 0755

	// Default database filename
	defaultDBFile = "catalog.db"

	openTimeout = time.Second
)

var catalogBucket = []byte("catalog")

// BoltDB implements the Database interface using BoltDB.
type BoltDB struct {
	db  *bolt.DB
	ttl time.Duration
	now func() time.Time
}

// NewBolt creates a new BoltDB database instance.
// If dbPath is empty, uses the default database file in current directory.
func NewBolt(dbPath string, ttl time.Duration) (*BoltDB, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, dbFileMode, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(catalogBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create catalog bucket: %w", err)
	}

	return &BoltDB{db: db, ttl: ttl, now: time.Now}, nil
}

// Close closes the database connection.
func (b *BoltDB) Close() error {
	return b.db.Close()
}

// GetCatalogEntry retrieves a cached response by key.
// Returns nil if not found or expired, without error.
func (b *BoltDB) GetCatalogEntry(key string) (*CatalogEntry, error) {
	var entry *CatalogEntry

	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(catalogBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}

		var stored CatalogEntry
		if err := json.Unmarshal(raw, &stored); err != nil {
			return err
		}
		entry = &stored
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog entry: %w", err)
	}

	if entry == nil || b.expired(entry) {
		return nil, nil
	}
	return entry, nil
}

// StoreCatalogEntry stores a response, replacing any previous entry.
func (b *BoltDB) StoreCatalogEntry(key string, data []byte) error {
	raw, err := json.Marshal(CatalogEntry{
		Key:       key,
		Data:      data,
		CreatedAt: b.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode catalog entry: %w", err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(catalogBucket).Put([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to store catalog entry: %w", err)
	}

	return nil
}

// DeleteExpired removes every entry older than the TTL and returns how many were removed.
func (b *BoltDB) DeleteExpired() (int, error) {
	removed := 0

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(catalogBucket)

		var stale [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var entry CatalogEntry
			if err := json.Unmarshal(v, &entry); err != nil || b.expired(&entry) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range stale {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired entries: %w", err)
	}

	return removed, nil
}

func (b *BoltDB) expired(entry *CatalogEntry) bool {
	return b.ttl > 0 && b.now().Sub(entry.CreatedAt) > b.ttl
}
