// Package cache holds keyed configuration snapshots with per-entry TTLs.
// Keys are opaque strings of the form "<domain>:<criterion>"; the domain
// prefix drives hit/miss accounting and bulk flushes.
package cache

import (
	"strings"
	"sync"
	"time"
)

// Stats receives hit/miss counts per domain. *metrics.Metrics satisfies it.
type Stats interface {
	CacheHit(domain string)
	CacheMiss(domain string)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is a process-wide TTL snapshot holder. Writers replace whole entries
// atomically per key; readers never mutate entries. Safe for concurrent use.
type Cache struct {
	entries sync.Map
	stats   Stats

	sweepInterval time.Duration
	stopOnce      sync.Once
	stop          chan struct{}
}

// New creates a cache. stats may be nil; sweepInterval <= 0 disables the
// background sweep even if StartSweeper is called.
func New(sweepInterval time.Duration, stats Stats) *Cache {
	return &Cache{
		stats:         stats,
		sweepInterval: sweepInterval,
		stop:          make(chan struct{}),
	}
}

// Get returns the live value stored under key. Expired entries count as
// misses and are removed lazily.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.entries.Load(key)
	if ok {
		e := v.(entry)
		if time.Now().Before(e.expiresAt) {
			c.hit(key)
			return e.value, true
		}
		c.entries.Delete(key)
	}
	c.miss(key)
	return nil, false
}

// Set stores value under key for ttl. A non-positive ttl stores nothing.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.entries.Store(key, entry{value: value, expiresAt: time.Now().Add(ttl)})
}

// Invalidate removes one key.
func (c *Cache) Invalidate(key string) {
	c.entries.Delete(key)
}

// InvalidateByPrefix removes every key starting with prefix.
func (c *Cache) InvalidateByPrefix(prefix string) {
	c.entries.Range(func(k, _ interface{}) bool {
		if strings.HasPrefix(k.(string), prefix) {
			c.entries.Delete(k)
		}
		return true
	})
}

// Flush removes every entry of a domain. An empty domain or "all" clears
// the whole cache.
func (c *Cache) Flush(domain string) {
	if domain == "" || domain == "all" {
		c.entries.Range(func(k, _ interface{}) bool {
			c.entries.Delete(k)
			return true
		})
		return
	}
	c.InvalidateByPrefix(domain + ":")
}

// Len reports the number of stored entries, including not yet swept ones.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// StartSweeper launches the periodic expiry sweep. Sweeps are serialised
// with respect to themselves only; readers and writers are not blocked.
func (c *Cache) StartSweeper() {
	if c.sweepInterval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(c.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// Stop terminates the background sweep.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) sweep() {
	now := time.Now()
	c.entries.Range(func(k, v interface{}) bool {
		if !now.Before(v.(entry).expiresAt) {
			c.entries.Delete(k)
		}
		return true
	})
}

func (c *Cache) hit(key string) {
	if c.stats != nil {
		c.stats.CacheHit(domainOf(key))
	}
}

func (c *Cache) miss(key string) {
	if c.stats != nil {
		c.stats.CacheMiss(domainOf(key))
	}
}

func domainOf(key string) string {
	if i := strings.Index(key, ":"); i > 0 {
		return key[:i]
	}
	return key
}
