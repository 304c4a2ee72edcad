package rates

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	errNoSource      = errors.New("no rate source configured")
	errEmptySnapshot = errors.New("source returned an empty snapshot")
)

// Chain is a Source that tries each underlying source in order and returns
// the first non-empty snapshot. All sources failing is a single fetch
// failure as far as the cache is concerned.
type Chain struct {
	Sources []Source
}

func (c Chain) Name() string {
	names := make([]string, 0, len(c.Sources))
	for _, s := range c.Sources {
		names = append(names, s.Name())
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

func (c Chain) Fetch(ctx context.Context) (Snapshot, error) {
	var firstErr error
	for _, s := range c.Sources {
		snap, err := s.Fetch(ctx)
		if err == nil && !snap.Empty() {
			return snap, nil
		}
		if err == nil {
			err = errEmptySnapshot
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	if firstErr == nil {
		firstErr = errNoSource
	}
	return Snapshot{}, firstErr
}
