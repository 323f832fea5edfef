package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the market fetcher.
// Pacing delays and retry knobs were tuned empirically against provider
// rate limits; the defaults preserve those values but everything is
// overridable through the environment or a config file.
type Config struct {
	// Base URLs for provider endpoints (configurable for testing)
	YahooQuoteBaseURL         string `mapstructure:"yahoo_quote_base_url"`
	YahooQuoteFallbackBaseURL string `mapstructure:"yahoo_quote_fallback_base_url"`
	YahooSummaryBaseURL       string `mapstructure:"yahoo_summary_base_url"`
	YahooScreenerURL          string `mapstructure:"yahoo_screener_url"`
	CoinGeckoBaseURL          string `mapstructure:"coingecko_base_url"`

	// HTTP client behavior
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	RetryAttempts  int           `mapstructure:"retry_attempts"`
	RetryDelay     time.Duration `mapstructure:"retry_delay"`

	// Batch orchestration
	FetchConcurrency  int           `mapstructure:"fetch_concurrency"`
	EnrichConcurrency int           `mapstructure:"enrich_concurrency"`
	UnitPacing        time.Duration `mapstructure:"unit_pacing"`
	PagePacing        time.Duration `mapstructure:"page_pacing"`

	// Cache / primary store
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	CacheDefaultTTL time.Duration `mapstructure:"cache_default_ttl"`
}

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over file values.
//
// Expected environment variables (all optional):
//   - YAHOO_QUOTE_BASE_URL, YAHOO_QUOTE_FALLBACK_BASE_URL
//   - YAHOO_SUMMARY_BASE_URL, YAHOO_SCREENER_URL
//   - COINGECKO_BASE_URL
//   - REQUEST_TIMEOUT, RETRY_ATTEMPTS, RETRY_DELAY
//   - FETCH_CONCURRENCY, ENRICH_CONCURRENCY, UNIT_PACING, PAGE_PACING
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB, CACHE_DEFAULT_TTL
func Load() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	// Provider endpoints
	v.SetDefault("yahoo_quote_base_url", "https://query1.finance.yahoo.com/v8/finance/chart")
	v.SetDefault("yahoo_quote_fallback_base_url", "https://query2.finance.yahoo.com/v8/finance/chart")
	v.SetDefault("yahoo_summary_base_url", "https://query1.finance.yahoo.com/v10/finance/quoteSummary")
	v.SetDefault("yahoo_screener_url", "https://query1.finance.yahoo.com/v1/finance/screener")
	v.SetDefault("coingecko_base_url", "https://api.coingecko.com/api/v3")

	// HTTP client
	v.SetDefault("request_timeout", 12*time.Second)
	v.SetDefault("retry_attempts", 3)
	v.SetDefault("retry_delay", 2*time.Second)

	// Orchestration
	v.SetDefault("fetch_concurrency", 5)
	v.SetDefault("enrich_concurrency", 3)
	v.SetDefault("unit_pacing", 200*time.Millisecond)
	v.SetDefault("page_pacing", 2*time.Second)

	// Cache
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_default_ttl", 2*time.Hour)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.marketfetcher")
	_ = v.ReadInConfig()

	v.BindEnv("yahoo_quote_base_url", "YAHOO_QUOTE_BASE_URL")
	v.BindEnv("yahoo_quote_fallback_base_url", "YAHOO_QUOTE_FALLBACK_BASE_URL")
	v.BindEnv("yahoo_summary_base_url", "YAHOO_SUMMARY_BASE_URL")
	v.BindEnv("yahoo_screener_url", "YAHOO_SCREENER_URL")
	v.BindEnv("coingecko_base_url", "COINGECKO_BASE_URL")
	v.BindEnv("request_timeout", "REQUEST_TIMEOUT")
	v.BindEnv("retry_attempts", "RETRY_ATTEMPTS")
	v.BindEnv("retry_delay", "RETRY_DELAY")
	v.BindEnv("fetch_concurrency", "FETCH_CONCURRENCY")
	v.BindEnv("enrich_concurrency", "ENRICH_CONCURRENCY")
	v.BindEnv("unit_pacing", "UNIT_PACING")
	v.BindEnv("page_pacing", "PAGE_PACING")
	v.BindEnv("redis_addr", "REDIS_ADDR")
	v.BindEnv("redis_password", "REDIS_PASSWORD")
	v.BindEnv("redis_db", "REDIS_DB")
	v.BindEnv("cache_default_ttl", "CACHE_DEFAULT_TTL")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.RetryAttempts <= 0 {
		return nil, fmt.Errorf("retry_attempts must be positive, got %d", config.RetryAttempts)
	}
	if config.FetchConcurrency <= 0 {
		return nil, fmt.Errorf("fetch_concurrency must be positive, got %d", config.FetchConcurrency)
	}

	return config, nil
}
