package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"finkit/internal/config"
	"finkit/internal/httpx"
	"finkit/internal/rates"
	"finkit/internal/rates/erapi"
)

// fetch performs a single rate fetch and prints the snapshot, which is handy
// for checking an endpoint or API key before deploying the server.
func main() {
	_ = godotenv.Load()

	var endpoint string
	var apiKey string
	var timeout int
	var configPath string
	var offline bool

	flag.StringVar(&endpoint, "endpoint", os.Getenv("RATES_ENDPOINT"), "rates API base URL (default from config)")
	flag.StringVar(&apiKey, "api-key", os.Getenv("RATES_API_KEY"), "rates API key (optional)")
	flag.IntVar(&timeout, "timeout", 15, "request timeout seconds")
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
	flag.BoolVar(&offline, "offline", false, "print the built-in fallback table instead of fetching")
	flag.Parse()

	if offline {
		dump(rates.Fallback())
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if endpoint == "" {
		endpoint = cfg.Rates.Endpoint
	}
	if apiKey == "" {
		apiKey = cfg.Rates.APIKey
	}

	httpClient := httpx.New(time.Duration(timeout) * time.Second)
	client, err := erapi.NewClient(apiKey,
		erapi.WithBaseURL(endpoint),
		erapi.WithHTTPClient(httpClient))
	if err != nil {
		log.Fatalf("client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()
	snap, err := client.LatestRates(ctx, rates.Pivot)
	if err != nil {
		log.Fatalf("fetch: %v (the server would fall back to cached or built-in rates)", err)
	}
	dump(snap)
}

func dump(snap rates.Snapshot) {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Println(string(b))
}
