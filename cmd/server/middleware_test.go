package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finkit/internal/logx"
)

func TestLimitBody_CapsLargeBody(t *testing.T) {
	var readErr error
	h := limitBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	big := bytes.Repeat([]byte("x"), 1<<20+1)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/convert", bytes.NewReader(big)))
	if readErr == nil {
		t.Fatal("body over the cap must fail to read")
	}

	readErr = nil
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/convert", strings.NewReader("small")))
	if readErr != nil {
		t.Fatalf("body under the cap must read cleanly: %v", readErr)
	}
}

func TestRequestLog_SetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logx.New(logx.Config{Handler: slog.NewTextHandler(&buf, nil)})

	h := withRequestLog(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/rates", nil))

	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatal("X-Request-Id header not set")
	}
	if !strings.Contains(buf.String(), "status=204") {
		t.Fatalf("log line missing status: %s", buf.String())
	}
}

func TestRequestLog_LogsPanickingRequest(t *testing.T) {
	var buf bytes.Buffer
	log := logx.New(logx.Config{Handler: slog.NewTextHandler(&buf, nil)})

	h := recoverPanic(withRequestLog(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/convert", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", rr.Code)
	}
	if !strings.Contains(buf.String(), "request_id=") {
		t.Fatalf("panicking request not logged: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "path=/api/convert") {
		t.Fatalf("log line missing path: %s", buf.String())
	}
}
