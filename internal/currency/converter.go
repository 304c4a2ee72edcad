// Package currency converts monetary amounts across currencies via the cached
// USD-pivot rates and renders them as localized display strings.
//
// Everything here degrades instead of failing: unknown codes pass amounts
// through unchanged and fall back to plain-text formatting, so UI call sites
// never see an error from this layer.
package currency

import (
	"context"
	"strings"

	"finkit/internal/rates"
)

// Converter performs conversion and formatting against a rate cache.
// Both operations are pure given the current cache contents.
type Converter struct {
	cache *rates.Cache
}

func NewConverter(cache *rates.Cache) *Converter {
	return &Converter{cache: cache}
}

// Convert converts amount from one currency to another via the pivot:
// amount / rate(from) * rate(to). Same-currency conversion returns the
// amount untouched, without a rate lookup. A missing rate on either side
// degrades to identity rather than failing.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) float64 {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to {
		return amount
	}
	snap := c.cache.Get(ctx)
	fromRate, okFrom := snap.Rate(from)
	toRate, okTo := snap.Rate(to)
	if !okFrom || !okTo || fromRate == 0 {
		return amount
	}
	return amount / fromRate * toRate
}

// Format renders the amount in its own currency.
func (c *Converter) Format(amount float64, code string) string {
	return formatAmount(amount, code)
}

// FormatIn converts the amount into the display currency first, then renders
// it with the display currency's conventions.
func (c *Converter) FormatIn(ctx context.Context, amount float64, code, display string) string {
	display = strings.ToUpper(strings.TrimSpace(display))
	if display == "" {
		return c.Format(amount, code)
	}
	converted := c.Convert(ctx, amount, code, display)
	return formatAmount(converted, display)
}
