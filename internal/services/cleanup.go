package services

import (
	"context"
	"sync"
	"time"

	"github.com/amaumene/streamy/internal/database"
	"github.com/amaumene/streamy/pkg/logger"
)

const defaultCleanupInterval = 1 * time.Hour

// CleanupService periodically removes expired entries from the catalog disk cache.
type CleanupService struct {
	db       database.Database
	logger   logger.Logger
	interval time.Duration
	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(db database.Database, log logger.Logger) *CleanupService {
	if log == nil {
		log = logger.Nop()
	}
	return &CleanupService{
		db:       db,
		logger:   log,
		interval: defaultCleanupInterval,
		stopChan: make(chan struct{}),
	}
}

// SetInterval sets how often cleanup runs
func (c *CleanupService) SetInterval(duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if duration > 0 {
		c.interval = duration
	}
}

// Start runs one cleanup and then repeats it every interval until ctx is done or Stop is called.
func (c *CleanupService) Start(ctx context.Context) {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	interval := c.interval
	c.mu.Unlock()

	c.logger.Infof("[CleanupService] starting with interval %v", interval)
	c.CleanupNow()

	go c.cleanupLoop(ctx, interval)
}

// Stop stops the cleanup loop
func (c *CleanupService) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}

	c.running = false
	close(c.stopChan)
	c.logger.Infof("[CleanupService] stopped")
}

func (c *CleanupService) cleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.Stop()
			return
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.CleanupNow()
		}
	}
}

// CleanupNow removes expired entries immediately and returns how many were removed.
func (c *CleanupService) CleanupNow() int {
	if c.db == nil {
		return 0
	}

	removed, err := c.db.DeleteExpired()
	if err != nil {
		c.logger.Warnf("[CleanupService] failed to remove expired catalog entries: %v", err)
		return 0
	}
	if removed > 0 {
		c.logger.Debugf("[CleanupService] removed %d expired catalog entries", removed)
	}
	return removed
}
