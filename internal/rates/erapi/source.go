package erapi

import (
	"context"

	"finkit/internal/rates"
)

// Source adapts Client to the rates.Source interface, always fetching
// pivot-relative rates.
type Source struct {
	Client *Client
	// SourceName overrides the reported name, useful when several endpoints
	// of the same shape are chained.
	SourceName string
}

func (s Source) Name() string {
	if s.SourceName != "" {
		return s.SourceName
	}
	return "erapi"
}

func (s Source) Fetch(ctx context.Context) (rates.Snapshot, error) {
	return s.Client.LatestRates(ctx, rates.Pivot)
}
