package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"finkit/internal/catalog"
	"finkit/internal/currency"
	"finkit/internal/rates"
)

// app bundles the normalization layer for the HTTP handlers.
type app struct {
	cache    *rates.Cache
	conv     *currency.Converter
	resolver *catalog.Resolver
}

type convertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
	Formatted string  `json:"formatted"`
}

type formatResponse struct {
	Formatted string `json:"formatted"`
}

type resolveResponse struct {
	Match bool           `json:"match"`
	Entry *catalog.Entry `json:"entry,omitempty"`
}

type catalogResponse struct {
	Services []catalog.Entry `json:"services"`
}

type categoriesResponse struct {
	Categories []catalog.Category `json:"categories"`
}

func (a *app) handleRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, a.cache.Get(r.Context()))
}

func (a *app) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}
	from := strings.TrimSpace(q.Get("from"))
	to := strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		http.Error(w, "missing from or to currency", http.StatusBadRequest)
		return
	}
	converted := a.conv.Convert(r.Context(), amount, from, to)
	writeJSON(w, http.StatusOK, convertResponse{
		Amount:    amount,
		From:      strings.ToUpper(from),
		To:        strings.ToUpper(to),
		Converted: converted,
		Formatted: a.conv.Format(converted, to),
	})
}

func (a *app) handleFormat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}
	code := strings.TrimSpace(q.Get("currency"))
	if code == "" {
		http.Error(w, "missing currency", http.StatusBadRequest)
		return
	}
	display := strings.TrimSpace(q.Get("display"))
	writeJSON(w, http.StatusOK, formatResponse{
		Formatted: a.conv.FormatIn(r.Context(), amount, code, display),
	})
}

func (a *app) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// A miss is a normal outcome, not an error: the UI falls back to the
	// generic icon and category.
	entry, ok := a.resolver.Resolve(r.URL.Query().Get("name"))
	if !ok {
		writeJSON(w, http.StatusOK, resolveResponse{Match: false})
		return
	}
	writeJSON(w, http.StatusOK, resolveResponse{Match: true, Entry: &entry})
}

func (a *app) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, catalogResponse{Services: catalog.Entries()})
}

func (a *app) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: catalog.Categories()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
