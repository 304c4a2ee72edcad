package erapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"finkit/internal/rates"
)

// latestResponse is the upstream payload. Only the rates field matters;
// anything without it is treated as a fetch failure.
type latestResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// LatestRates fetches the current snapshot of base-relative rates.
// A non-2xx status, malformed JSON, a missing or empty rates field, and
// non-positive rate values are all fetch failures.
func (c *Client) LatestRates(ctx context.Context, base string) (rates.Snapshot, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = rates.Pivot
	}

	u := fmt.Sprintf("%s/latest/%s", c.baseURL, base)
	if len(c.query) > 0 {
		u += "?" + c.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return rates.Snapshot{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return rates.Snapshot{}, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break
	case http.StatusForbidden, http.StatusUnauthorized:
		return rates.Snapshot{}, fmt.Errorf("unauthorized")
	case http.StatusTooManyRequests:
		return rates.Snapshot{}, fmt.Errorf("rate limited")
	default:
		b, _ := io.ReadAll(io.LimitReader(res.Body, 2<<10))
		return rates.Snapshot{}, fmt.Errorf("unexpected status code %d: %s", res.StatusCode, string(b))
	}

	var body latestResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return rates.Snapshot{}, fmt.Errorf("decoding rates response: %w", err)
	}
	if len(body.Rates) == 0 {
		return rates.Snapshot{}, fmt.Errorf("response has no rates field")
	}

	out := make(map[string]float64, len(body.Rates))
	for code, rate := range body.Rates {
		if rate <= 0 {
			continue
		}
		out[strings.ToUpper(code)] = rate
	}
	if len(out) == 0 {
		return rates.Snapshot{}, fmt.Errorf("response has no usable rates")
	}
	return rates.Snapshot{Rates: out, FetchedAt: time.Now()}, nil
}
