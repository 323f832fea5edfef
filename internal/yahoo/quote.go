// Package yahoo fetches quotes, fundamentals summaries and screener listings
// from the Yahoo Finance endpoints and maps them into normalized records.
package yahoo

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"

	"marketfetcher/internal/asset"
	"marketfetcher/internal/fetchhttp"
	"marketfetcher/internal/ratelimit"
)

// SourceName is the provenance tag stamped on quote records.
const SourceName = "yahoo_finance"

// Yahoo rejects requests without browser-like headers.
var requestHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Accept":          "application/json",
	"Accept-Language": "en-US,en;q=0.9",
}

// Client fetches from the Yahoo Finance v8/v10/v1 endpoints.
type Client struct {
	http *fetchhttp.Client

	// quoteBaseURLs are tried in order; query2 mirrors query1 and picks up
	// the slack when the primary host throttles.
	quoteBaseURLs  []string
	summaryBaseURL string
	screenerURL    string
}

// NewClient creates a Yahoo client. Base URLs come from configuration so
// tests can point them at local servers.
func NewClient(httpClient *fetchhttp.Client, quoteBaseURL, quoteFallbackBaseURL, summaryBaseURL, screenerURL string) *Client {
	bases := []string{quoteBaseURL}
	if quoteFallbackBaseURL != "" {
		bases = append(bases, quoteFallbackBaseURL)
	}
	return &Client{
		http:           httpClient,
		quoteBaseURLs:  bases,
		summaryBaseURL: summaryBaseURL,
		screenerURL:    screenerURL,
	}
}

// chartResponse mirrors the v8/finance/chart payload.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol              string   `json:"symbol"`
				ShortName           string   `json:"shortName"`
				LongName            string   `json:"longName"`
				InstrumentType      string   `json:"instrumentType"`
				ExchangeName        string   `json:"exchangeName"`
				Currency            string   `json:"currency"`
				RegularMarketPrice  *float64 `json:"regularMarketPrice"`
				PreviousClose       *float64 `json:"previousClose"`
				ChartPreviousClose  *float64 `json:"chartPreviousClose"`
				FiftyTwoWeekHigh    *float64 `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow     *float64 `json:"fiftyTwoWeekLow"`
				RegularMarketVolume *float64 `json:"regularMarketVolume"`
				MarketCap           *float64 `json:"marketCap"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

// FetchQuote retrieves a lightweight quote for one ticker.
// Returns nil when every host failed or the payload carried no price;
// callers treat nil as a skippable miss.
func (c *Client) FetchQuote(ctx context.Context, ticker string) *asset.Record {
	for _, base := range c.quoteBaseURLs {
		if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APIYahoo); err != nil {
			return nil
		}

		body, err := c.http.GetJSON(ctx, base+"/"+ticker, nil, requestHeaders)
		if err != nil || body == nil {
			continue
		}

		var parsed chartResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			slog.Warn("quote parse error", "ticker", ticker, "error", err)
			continue
		}
		if len(parsed.Chart.Result) == 0 {
			continue
		}

		meta := parsed.Chart.Result[0].Meta
		price := meta.RegularMarketPrice
		if price == nil {
			price = meta.PreviousClose
		}
		if price == nil {
			continue
		}

		prevClose := meta.PreviousClose
		if prevClose == nil {
			prevClose = meta.ChartPreviousClose
		}
		var changePct float64
		if prevClose != nil && *prevClose != 0 {
			changePct = (*price - *prevClose) / *prevClose * 100
		}

		rec := &asset.Record{
			Ticker:           ticker,
			Source:           SourceName,
			Name:             asset.String(displayName(meta.ShortName, meta.LongName, ticker)),
			Price:            asset.Float(round4(*price)),
			ChangePct:        asset.Float(round4(changePct)),
			Currency:         asset.String(defaultString(meta.Currency, "USD")),
			FiftyTwoWeekHigh: meta.FiftyTwoWeekHigh,
			FiftyTwoWeekLow:  meta.FiftyTwoWeekLow,
			AvgVolume30d:     meta.RegularMarketVolume,
			MarketCap:        meta.MarketCap,
		}
		if meta.InstrumentType != "" {
			rec.QuoteType = asset.String(meta.InstrumentType)
		}
		if meta.ExchangeName != "" {
			rec.Exchange = asset.String(meta.ExchangeName)
		}
		return rec
	}
	return nil
}

// ValidateTicker reports whether Yahoo knows the ticker and quotes a price.
func (c *Client) ValidateTicker(ctx context.Context, ticker string) bool {
	quote := c.FetchQuote(ctx, ticker)
	return quote != nil && quote.Price != nil
}

func displayName(short, long, fallback string) string {
	if short != "" {
		return short
	}
	if long != "" {
		return long
	}
	return fallback
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func round4(f float64) float64 {
	return math.Round(f*1e4) / 1e4
}
