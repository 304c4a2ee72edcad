// Package rates holds exchange-rate snapshots and the caching layer in front
// of the external rate sources. All rates are expressed relative to the pivot
// currency, so any-to-any conversion needs two lookups instead of a full
// cross-rate matrix.
package rates

import (
	"context"
	"strings"
	"time"
)

// Pivot is the reference currency all snapshot rates are expressed against.
const Pivot = "USD"

// Snapshot maps an uppercase currency code to units of that currency per
// 1 unit of the pivot currency, together with the time it was fetched.
// A snapshot is replaced wholesale, never mutated in place; callers must
// treat Rates as read-only.
type Snapshot struct {
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// Empty reports whether the snapshot carries no rates.
func (s Snapshot) Empty() bool { return len(s.Rates) == 0 }

// Rate returns the pivot-relative rate for a currency code. Lookup is
// case-insensitive.
func (s Snapshot) Rate(code string) (float64, bool) {
	r, ok := s.Rates[strings.ToUpper(strings.TrimSpace(code))]
	return r, ok
}

// Age returns how old the snapshot is relative to now.
func (s Snapshot) Age(now time.Time) time.Duration { return now.Sub(s.FetchedAt) }

// Source fetches a fresh snapshot from an external rate provider.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (Snapshot, error)
}
