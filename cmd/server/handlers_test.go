package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"finkit/internal/catalog"
	"finkit/internal/currency"
	"finkit/internal/rates"
)

type fakeSource struct {
	snap rates.Snapshot
	err  error
}

func (f fakeSource) Name() string { return "fake" }
func (f fakeSource) Fetch(_ context.Context) (rates.Snapshot, error) {
	return f.snap, f.err
}

func testApp(src rates.Source, seed map[string]float64) *app {
	cache := &rates.Cache{Source: src}
	if seed != nil {
		cache.Set(rates.Snapshot{Rates: seed})
	}
	return &app{
		cache:    cache,
		conv:     currency.NewConverter(cache),
		resolver: catalog.NewResolver(),
	}
}

func TestConvert_UsesCachedRates(t *testing.T) {
	a := testApp(nil, map[string]float64{"USD": 1, "EUR": 0.9, "GBP": 0.8})

	rr := httptest.NewRecorder()
	a.handleConvert(rr, httptest.NewRequest("GET", "/api/convert?amount=90&from=eur&to=gbp", nil))
	if rr.Code != 200 {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var resp convertResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.From != "EUR" || resp.To != "GBP" {
		t.Fatalf("codes not normalized: %+v", resp)
	}
	if resp.Converted < 79.999 || resp.Converted > 80.001 {
		t.Fatalf("want ~80, got %v", resp.Converted)
	}
	if resp.Formatted != "£80" {
		t.Fatalf("want formatted £80, got %q", resp.Formatted)
	}
}

func TestConvert_BadAmount(t *testing.T) {
	a := testApp(nil, map[string]float64{"USD": 1})

	rr := httptest.NewRecorder()
	a.handleConvert(rr, httptest.NewRequest("GET", "/api/convert?amount=abc&from=usd&to=eur", nil))
	if rr.Code != 400 {
		t.Fatalf("want 400, got %d", rr.Code)
	}
}

func TestRates_SourceFailureServesFallbackTable(t *testing.T) {
	a := testApp(fakeSource{err: errors.New("down")}, nil)

	rr := httptest.NewRecorder()
	a.handleRates(rr, httptest.NewRequest("GET", "/api/rates", nil))
	if rr.Code != 200 {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var snap rates.Snapshot
	if err := json.Unmarshal(rr.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Empty() {
		t.Fatal("rate endpoint must never serve an empty mapping")
	}
	if r, ok := snap.Rate("USD"); !ok || r != 1 {
		t.Fatalf("fallback table must carry USD=1, got %v %v", r, ok)
	}
}

func TestFormat_CrossCurrency(t *testing.T) {
	a := testApp(nil, map[string]float64{"USD": 1, "GBP": 0.8})

	rr := httptest.NewRecorder()
	a.handleFormat(rr, httptest.NewRequest("GET", "/api/format?amount=15.99&currency=GBP&display=USD", nil))
	var resp formatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 15.99 GBP -> 19.9875 USD -> "$20"
	if resp.Formatted != "$20" {
		t.Fatalf("want $20, got %q", resp.Formatted)
	}
}

func TestResolve_MatchAndMiss(t *testing.T) {
	a := testApp(nil, nil)

	rr := httptest.NewRecorder()
	a.handleResolve(rr, httptest.NewRequest("GET", "/api/resolve?name=Netflix+Premium", nil))
	var resp resolveResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Match || resp.Entry == nil || resp.Entry.ID != "netflix" {
		t.Fatalf("want netflix match, got %+v", resp)
	}

	rr = httptest.NewRecorder()
	a.handleResolve(rr, httptest.NewRequest("GET", "/api/resolve?name=", nil))
	if rr.Code != 200 {
		t.Fatalf("a miss is not an error, got %d", rr.Code)
	}
	resp = resolveResponse{}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Match || resp.Entry != nil {
		t.Fatalf("want no match, got %+v", resp)
	}
}

func TestCategories_Distinct(t *testing.T) {
	a := testApp(nil, nil)

	rr := httptest.NewRecorder()
	a.handleCategories(rr, httptest.NewRequest("GET", "/api/categories", nil))
	var resp categoriesResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	seen := map[catalog.Category]bool{}
	for _, c := range resp.Categories {
		if seen[c] {
			t.Fatalf("category %q listed twice", c)
		}
		seen[c] = true
	}
	if len(resp.Categories) == 0 {
		t.Fatal("no categories returned")
	}
}
