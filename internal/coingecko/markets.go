// Package coingecko fetches market-cap-ranked coin listings from the
// CoinGecko free tier and maps them into normalized records.
package coingecko

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"marketfetcher/internal/asset"
	"marketfetcher/internal/fetchhttp"
	"marketfetcher/internal/ratelimit"
)

// SourceName is the provenance tag stamped on coin records.
const SourceName = "coingecko"

// pageSize is the fixed page size of /coins/markets. A page shorter than
// this marks the end of the ranking.
const pageSize = 100

// Client fetches paginated coin listings.
type Client struct {
	http    *fetchhttp.Client
	baseURL string
	// pagePacing is slept between pages to respect the free-tier limit.
	pagePacing time.Duration
	limit      int
}

// NewClient creates a CoinGecko client fetching up to limit coins.
func NewClient(httpClient *fetchhttp.Client, baseURL string, pagePacing time.Duration, limit int) *Client {
	if limit <= 0 {
		limit = pageSize
	}
	return &Client{
		http:       httpClient,
		baseURL:    baseURL,
		pagePacing: pagePacing,
		limit:      limit,
	}
}

// coinMarket mirrors one element of the /coins/markets array.
type coinMarket struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	TotalVolume              *float64 `json:"total_volume"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	ATH                      *float64 `json:"ath"`
	ATL                      *float64 `json:"atl"`
}

// Name implements asset.Source.
func (c *Client) Name() string { return SourceName }

// Fetch implements asset.Source, returning the top coins by market cap.
func (c *Client) Fetch(ctx context.Context) ([]asset.Record, error) {
	return c.TopCoins(ctx, c.limit), nil
}

// TopCoins pages through the market-cap ranking until limit records are
// collected or a short page signals the end of data. Results are trimmed
// to limit. A failed page ends the walk with whatever was gathered.
func (c *Client) TopCoins(ctx context.Context, limit int) []asset.Record {
	if limit <= 0 {
		return nil
	}
	slog.Info("fetching top coins", "limit", limit)

	pages := limit/pageSize + 1
	records := make([]asset.Record, 0, limit)

	for page := 1; page <= pages; page++ {
		if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APICoinGecko); err != nil {
			break
		}

		body, err := c.http.GetJSON(ctx, c.baseURL+"/coins/markets", map[string]string{
			"vs_currency": "usd",
			"order":       "market_cap_desc",
			"per_page":    strconv.Itoa(pageSize),
			"page":        strconv.Itoa(page),
			"sparkline":   "false",
		}, map[string]string{"Accept": "application/json"})
		if err != nil || body == nil {
			break
		}

		var coins []coinMarket
		if err := json.Unmarshal(body, &coins); err != nil {
			slog.Warn("coins page parse error", "page", page, "error", err)
			break
		}

		for _, coin := range coins {
			records = append(records, mapCoin(coin))
		}

		if len(coins) < pageSize {
			break
		}
		if c.pagePacing > 0 && page < pages {
			t := time.NewTimer(c.pagePacing)
			select {
			case <-ctx.Done():
				t.Stop()
				return trim(records, limit)
			case <-t.C:
			}
		}
	}

	return trim(records, limit)
}

func mapCoin(coin coinMarket) asset.Record {
	symbol := strings.ToUpper(coin.Symbol)
	rec := asset.Record{
		Ticker:           symbol + "-USD",
		Source:           SourceName,
		Name:             asset.String(defaultString(coin.Name, symbol)),
		QuoteType:        asset.String("CRYPTOCURRENCY"),
		Sector:           asset.String("Crypto"),
		Currency:         asset.String("USD"),
		MarketCap:        coin.MarketCap,
		Price:            coin.CurrentPrice,
		ChangePct:        coin.PriceChangePercentage24h,
		AvgVolume30d:     coin.TotalVolume,
		FiftyTwoWeekHigh: coin.ATH,
		FiftyTwoWeekLow:  coin.ATL,
	}
	if coin.ID != "" {
		rec.SourceID = asset.String(coin.ID)
	}
	return rec
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func trim(records []asset.Record, limit int) []asset.Record {
	if len(records) > limit {
		return records[:limit]
	}
	return records
}
