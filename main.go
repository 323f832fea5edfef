package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"marketfetcher/internal/asset"
	"marketfetcher/internal/cache"
	"marketfetcher/internal/coingecko"
	"marketfetcher/internal/config"
	"marketfetcher/internal/coordinator"
	"marketfetcher/internal/fetchhttp"
	"marketfetcher/internal/seeds"
	"marketfetcher/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	httpClient := fetchhttp.New(fetchhttp.Options{
		Attempts:   cfg.RetryAttempts,
		RetryDelay: cfg.RetryDelay,
		Timeout:    cfg.RequestTimeout,
	})

	yahooClient := yahoo.NewClient(httpClient,
		cfg.YahooQuoteBaseURL,
		cfg.YahooQuoteFallbackBaseURL,
		cfg.YahooSummaryBaseURL,
		cfg.YahooScreenerURL,
	)
	batch := coordinator.New(yahooClient, cfg.FetchConcurrency, cfg.UnitPacing)

	// The cache degrades to memory-only when Redis is down, so a failed
	// connection is logged, not fatal.
	store := connectStore(ctx, cfg)
	artifacts := cache.NewService(store)

	sources := []asset.Source{
		seeds.New(),
		yahoo.NewForexSource(batch),
		yahoo.NewCommoditiesSource(batch),
		yahoo.NewETFSource(batch),
		coingecko.NewClient(httpClient, cfg.CoinGeckoBaseURL, cfg.PagePacing, 100),
	}

	fmt.Println("Fetching market data from all sources...")
	fmt.Println("========================================")
	total := 0
	for _, src := range sources {
		records, err := src.Fetch(ctx)
		if err != nil {
			fmt.Printf("%s: ERROR - %v\n", src.Name(), err)
			continue
		}
		fmt.Printf("%s: %d records\n", src.Name(), len(records))
		total += len(records)

		meta := map[string]any{"count": len(records), "fetched_at": time.Now().Unix()}
		artifacts.Set(ctx, cache.MetaKey(src.Name()), meta, cache.TTLResult)
	}
	fmt.Println("========================================")
	fmt.Printf("All fetches completed: %d records\n", total)
}

// connectStore dials Redis and returns nil when it is unreachable.
func connectStore(ctx context.Context, cfg *config.Config) cache.Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unreachable, cache is memory-only", "addr", cfg.RedisAddr, "error", err)
		return nil
	}
	return cache.NewRedisStore(rdb)
}
