// Package availability caches per-well curve availability so the serving
// layer can answer "what can this well analyze" without re-walking curve
// metadata on every request. The cache is owned by the caller, never by
// the numeric core.
package availability

import (
	"sync"
	"time"
)

// Clock abstracts time for TTL checks so expiry is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// DefaultTTL is the entry lifetime when none is configured.
const DefaultTTL = 15 * time.Minute

// WellAvailability describes which analyses a well's curves support.
type WellAvailability struct {
	Well       string    `json:"well"`
	Curves     []string  `json:"curves"`
	Analyzable bool      `json:"analyzable"` // density and neutron curves both resolve
	ComputedAt time.Time `json:"computed_at"`
}

// Cache is a TTL cache of WellAvailability entries. Expired entries are
// reported as absent and recomputed by the caller; they are never served.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   Clock
	entries map[string]WellAvailability
}

// New creates a cache with the given TTL (DefaultTTL when ttl <= 0) and
// clock (SystemClock when nil).
func New(ttl time.Duration, clock Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Cache{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]WellAvailability),
	}
}

// Get returns the entry for a well and whether a fresh one exists.
func (c *Cache) Get(well string) (WellAvailability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[well]
	if !ok {
		return WellAvailability{}, false
	}
	if c.clock.Now().Sub(entry.ComputedAt) > c.ttl {
		return WellAvailability{}, false
	}
	return entry, true
}

// Put stores an entry stamped with the current clock time.
func (c *Cache) Put(entry WellAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry.ComputedAt = c.clock.Now()
	c.entries[entry.Well] = entry
}

// Invalidate removes one well's entry.
func (c *Cache) Invalidate(well string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, well)
}

// InvalidateAll clears the cache.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]WellAvailability)
}
