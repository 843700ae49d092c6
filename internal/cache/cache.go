package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Delete(key string)
	Clear()
}

// LRUCache is a size bounded cache whose entries expire after ttl.
type LRUCache struct {
	lru *expirable.LRU[string, interface{}]
}

func New(capacity int, ttl time.Duration) *LRUCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCache{
		lru: expirable.NewLRU[string, interface{}](capacity, nil, ttl),
	}
}

func (c *LRUCache) Get(key string) (interface{}, bool) {
	return c.lru.Get(key)
}

func (c *LRUCache) Set(key string, value interface{}) {
	c.lru.Add(key, value)
}

func (c *LRUCache) Delete(key string) {
	c.lru.Remove(key)
}

func (c *LRUCache) Clear() {
	c.lru.Purge()
}

func (c *LRUCache) Len() int {
	return c.lru.Len()
}
