package yahoo

import (
	"context"
	"encoding/json"
	"log/slog"

	"marketfetcher/internal/asset"
	"marketfetcher/internal/ratelimit"
)

// summaryModules selects the quoteSummary modules carrying fundamentals.
const summaryModules = "summaryProfile,defaultKeyStatistics,summaryDetail,price"

// rawValue unwraps Yahoo's {"raw": n, "fmt": "..."} number envelope.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

// summaryResponse mirrors the v10/finance/quoteSummary payload.
type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
				Country  string `json:"country"`
			} `json:"summaryProfile"`
			DefaultKeyStatistics struct {
				Beta rawValue `json:"beta"`
			} `json:"defaultKeyStatistics"`
			SummaryDetail struct {
				Beta       rawValue `json:"beta"`
				TrailingPE rawValue `json:"trailingPE"`
				MarketCap  rawValue `json:"marketCap"`
			} `json:"summaryDetail"`
			Price struct {
				MarketCap rawValue `json:"marketCap"`
			} `json:"price"`
		} `json:"result"`
	} `json:"quoteSummary"`
}

// FetchSummary retrieves fundamentals for one ticker as a partial record
// suitable for merging into a quote. Returns nil on any failure; the
// summary endpoint sits behind an auth wall on some deployments, so
// absence here is routine and never invalidates the quote.
func (c *Client) FetchSummary(ctx context.Context, ticker string) *asset.Record {
	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APIYahoo); err != nil {
		return nil
	}

	body, err := c.http.GetJSON(ctx, c.summaryBaseURL+"/"+ticker,
		map[string]string{"modules": summaryModules}, requestHeaders)
	if err != nil || body == nil {
		return nil
	}

	var parsed summaryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		slog.Warn("summary parse error", "ticker", ticker, "error", err)
		return nil
	}
	if len(parsed.QuoteSummary.Result) == 0 {
		return nil
	}

	res := parsed.QuoteSummary.Result[0]
	rec := &asset.Record{
		Ticker: ticker,
		Source: SourceName,
	}
	if res.SummaryProfile.Sector != "" {
		rec.Sector = asset.String(res.SummaryProfile.Sector)
	}
	if res.SummaryProfile.Industry != "" {
		rec.Industry = asset.String(res.SummaryProfile.Industry)
	}
	if res.SummaryProfile.Country != "" {
		rec.Country = asset.String(res.SummaryProfile.Country)
	}
	if res.DefaultKeyStatistics.Beta.Raw != nil {
		rec.Beta = res.DefaultKeyStatistics.Beta.Raw
	} else if res.SummaryDetail.Beta.Raw != nil {
		rec.Beta = res.SummaryDetail.Beta.Raw
	}
	if res.SummaryDetail.TrailingPE.Raw != nil {
		rec.PERatio = res.SummaryDetail.TrailingPE.Raw
	}
	if res.SummaryDetail.MarketCap.Raw != nil {
		rec.MarketCap = res.SummaryDetail.MarketCap.Raw
	} else if res.Price.MarketCap.Raw != nil {
		rec.MarketCap = res.Price.MarketCap.Raw
	}
	return rec
}
