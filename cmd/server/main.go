package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"finkit/internal/catalog"
	"finkit/internal/config"
	"finkit/internal/currency"
	"finkit/internal/httpx"
	"finkit/internal/logx"
	"finkit/internal/rates"
	"finkit/internal/rates/erapi"
	"finkit/internal/rates/ratelimit"
)

func main() {
	_ = godotenv.Load()

	log := logx.New(logx.Config{Component: "server"})
	logx.SetDefault(log)

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	src, err := buildSource(cfg)
	if err != nil {
		log.Error("rate source", "err", err)
		os.Exit(1)
	}

	cache := &rates.Cache{
		Source: src,
		TTL:    time.Duration(cfg.Rates.FreshnessSec) * time.Second,
		Log:    log.WithComponent("ratecache"),
	}
	app := &app{
		cache:    cache,
		conv:     currency.NewConverter(cache),
		resolver: catalog.NewResolver(catalog.WithBoundaryMaxLen(cfg.Resolver.BoundaryMaxLen)),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/rates", app.handleRates)
	mux.HandleFunc("/api/convert", app.handleConvert)
	mux.HandleFunc("/api/format", app.handleFormat)
	mux.HandleFunc("/api/resolve", app.handleResolve)
	mux.HandleFunc("/api/catalog", app.handleCatalog)
	mux.HandleFunc("/api/categories", app.handleCategories)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           withJSONHeaders(withGzip(recoverPanic(withRequestLog(log.WithComponent("http"), limitBody(mux))))),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if interval := time.Duration(cfg.Rates.RefreshIntervalSec) * time.Second; interval > 0 {
		g.Go(func() error {
			refreshLoop(ctx, cache, interval)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// buildSource assembles the rate source stack: erapi client(s), an optional
// fallback chain, and client-side politeness limits.
func buildSource(cfg config.Config) (rates.Source, error) {
	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

	newSource := func(endpoint, name string) (rates.Source, error) {
		client, err := erapi.NewClient(cfg.Rates.APIKey,
			erapi.WithBaseURL(endpoint),
			erapi.WithHTTPClient(httpClient))
		if err != nil {
			return nil, err
		}
		return erapi.Source{Client: client, SourceName: name}, nil
	}

	primary, err := newSource(cfg.Rates.Endpoint, "erapi")
	if err != nil {
		return nil, err
	}
	var src rates.Source = primary
	if cfg.Rates.FallbackEndpoint != "" {
		backup, err := newSource(cfg.Rates.FallbackEndpoint, "erapi-fallback")
		if err != nil {
			return nil, err
		}
		src = rates.Chain{Sources: []rates.Source{primary, backup}}
	}

	// Prefer token bucket with burst if RPM is set, otherwise min-interval.
	if cfg.Rates.MaxRequestsPerMinute > 0 {
		rate := float64(cfg.Rates.MaxRequestsPerMinute) / 60.0
		burst := cfg.Rates.Burst
		if burst <= 0 {
			burst = 1
		}
		src = &ratelimit.TokenBucketSource{S: src, TB: ratelimit.NewTokenBucket(rate, burst)}
	} else if cfg.Rates.MinRequestIntervalSec > 0 {
		src = &ratelimit.MinInterval{S: src, Interval: time.Duration(cfg.Rates.MinRequestIntervalSec) * time.Second}
	}
	return src, nil
}

// refreshLoop keeps the cache warm so interactive conversions rarely pay for
// a synchronous fetch. Get already handles staleness and failures.
func refreshLoop(ctx context.Context, cache *rates.Cache, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			cache.Get(ctx)
		}
	}
}
