package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type Server struct {
	Port              string `json:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Rates struct {
	Endpoint         string `json:"endpoint"`
	FallbackEndpoint string `json:"fallback_endpoint"`
	APIKey           string `json:"api_key"`
	// FreshnessSec is the cache freshness window.
	FreshnessSec int `json:"freshness_sec"`
	// RefreshIntervalSec drives the background warmer in the server binary.
	// 0 disables it; conversions then refresh lazily.
	RefreshIntervalSec    int `json:"refresh_interval_sec"`
	MinRequestIntervalSec int `json:"min_request_interval_sec"`
	MaxRequestsPerMinute  int `json:"max_requests_per_minute"`
	Burst                 int `json:"burst"`
}

type Resolver struct {
	BoundaryMaxLen int `json:"boundary_max_len"`
}

type Config struct {
	Server   Server   `json:"server"`
	Rates    Rates    `json:"rates"`
	Resolver Resolver `json:"resolver"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8080", RequestTimeoutSec: 10},
		Rates: Rates{
			Endpoint:             "https://open.er-api.com/v6",
			FreshnessSec:         3600,
			RefreshIntervalSec:   0,
			MaxRequestsPerMinute: 2,
			Burst:                2,
		},
		Resolver: Resolver{BoundaryMaxLen: 2},
	}
}

// Load reads JSON config from path. If path is empty or the file does not
// exist, it returns defaults. Environment variables override select fields
// for secrecy.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := envInt("REQUEST_TIMEOUT_SEC"); v > 0 {
		cfg.Server.RequestTimeoutSec = v
	}
	if v := os.Getenv("RATES_ENDPOINT"); v != "" {
		cfg.Rates.Endpoint = v
	}
	if v := os.Getenv("RATES_FALLBACK_ENDPOINT"); v != "" {
		cfg.Rates.FallbackEndpoint = v
	}
	if v := os.Getenv("RATES_API_KEY"); v != "" {
		cfg.Rates.APIKey = v
	}
	if v := envInt("RATES_FRESHNESS_SEC"); v > 0 {
		cfg.Rates.FreshnessSec = v
	}
	if v := envInt("RATES_REFRESH_INTERVAL_SEC"); v >= 0 && os.Getenv("RATES_REFRESH_INTERVAL_SEC") != "" {
		cfg.Rates.RefreshIntervalSec = v
	}
	if v := envInt("RATES_MIN_INTERVAL_SEC"); v > 0 {
		cfg.Rates.MinRequestIntervalSec = v
	}
	if v := envInt("RATES_MAX_RPM"); v > 0 {
		cfg.Rates.MaxRequestsPerMinute = v
	}
	if v := envInt("RATES_BURST"); v > 0 {
		cfg.Rates.Burst = v
	}
	if v := envInt("RESOLVER_BOUNDARY_MAX_LEN"); v > 0 {
		cfg.Resolver.BoundaryMaxLen = v
	}
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	var x int
	_, _ = fmt.Sscanf(v, "%d", &x)
	return x
}
