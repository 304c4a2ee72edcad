package rates

import (
	"context"
	"sync"
	"time"

	"finkit/internal/logx"
)

// DefaultTTL is the freshness window: the maximum age a cached snapshot may
// have before a refresh is attempted.
const DefaultTTL = time.Hour

// Cache holds the most recently fetched snapshot and refreshes it from
// Source once it goes stale.
//
// Refreshes are intentionally not serialized: the mutex guards only the
// snapshot swap, fetches run outside it. Concurrent callers in a stale
// window may each trigger a fetch; that is fine because fetching is
// idempotent and the last write wins.
type Cache struct {
	Source Source
	TTL    time.Duration // freshness window, DefaultTTL when <= 0
	Now    func() time.Time
	Log    *logx.Logger

	mu   sync.Mutex
	snap Snapshot
}

func (c *Cache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Cache) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return DefaultTTL
}

func (c *Cache) current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Get returns a usable snapshot. The cached one is served while it is
// non-empty and younger than the freshness window; otherwise a synchronous
// refresh is attempted. Get never fails: a refresh error falls back to the
// previous snapshot if one exists, else to the built-in approximate table.
func (c *Cache) Get(ctx context.Context) Snapshot {
	snap := c.current()
	if !snap.Empty() && snap.Age(c.now()) < c.ttl() {
		return snap
	}
	fresh, err := c.refresh(ctx)
	if err != nil {
		if c.Log != nil {
			c.Log.Warn("rate refresh failed, serving stale data", "err", err, "have_previous", !snap.Empty())
		}
		if snap.Empty() {
			return Fallback()
		}
		return snap
	}
	return fresh
}

// Set unconditionally replaces the cached snapshot with externally supplied
// rates and restarts the freshness window. Used when a caller already holds
// authoritative rates and a duplicate fetch would be wasteful.
func (c *Cache) Set(snap Snapshot) {
	snap.FetchedAt = c.now()
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
}

// refresh fetches from the source and installs the result. An empty
// successful response counts as a failure so a good snapshot is never
// replaced by nothing.
func (c *Cache) refresh(ctx context.Context) (Snapshot, error) {
	if c.Source == nil {
		return Snapshot{}, errNoSource
	}
	fresh, err := c.Source.Fetch(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if fresh.Empty() {
		return Snapshot{}, errEmptySnapshot
	}
	if fresh.FetchedAt.IsZero() {
		fresh.FetchedAt = c.now()
	}
	c.mu.Lock()
	c.snap = fresh
	c.mu.Unlock()
	return fresh, nil
}
