// Package ratelimit wraps rate sources with client-side politeness limits.
// Free exchange-rate APIs ban aggressive pollers, so outbound fetches are
// gated even though the cache already makes them rare.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"finkit/internal/rates"
)

// MinInterval enforces a minimum time between fetches to the wrapped source.
// Concurrent callers wait until the interval has elapsed since the last
// fetch, or return early when the context is canceled.
type MinInterval struct {
	S        rates.Source
	Interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func (m *MinInterval) Name() string { return m.S.Name() }

func (m *MinInterval) Fetch(ctx context.Context) (rates.Snapshot, error) {
	if m.Interval > 0 {
		m.mu.Lock()
		wait := time.Until(m.last.Add(m.Interval))
		m.mu.Unlock()
		if wait > 0 {
			t := time.NewTimer(wait)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return rates.Snapshot{}, ctx.Err()
			case <-t.C:
			}
		}
	}
	snap, err := m.S.Fetch(ctx)
	if m.Interval > 0 {
		m.mu.Lock()
		m.last = time.Now()
		m.mu.Unlock()
	}
	return snap, err
}
