package yahoo

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"marketfetcher/internal/asset"
	"marketfetcher/internal/ratelimit"
)

// ScreenerSourceName is the provenance tag for screener-listed records.
const ScreenerSourceName = "yahoo_screener"

// maxScreenerSize is the largest page Yahoo accepts per screener call.
const maxScreenerSize = 250

// Filter is one field/operator/value screening condition.
type Filter struct {
	Field    string  `json:"field"`
	Operator string  `json:"operator"` // GT or LT
	Value    float64 `json:"value"`
}

// ScreenerQuery describes a one-shot listing query: cap-tier filters plus
// sort field and order. Size is clamped to the provider maximum.
type ScreenerQuery struct {
	Filters   []Filter
	SortField string
	SortOrder string // ASC or DESC
	Size      int
}

// USLargeCapQuery screens for US large caps sorted by market cap.
func USLargeCapQuery() ScreenerQuery {
	return ScreenerQuery{
		Filters: []Filter{
			{Field: "intradaymarketcap", Operator: "GT", Value: 10e9},
		},
		SortField: "intradaymarketcap",
		SortOrder: "DESC",
		Size:      maxScreenerSize,
	}
}

// screenerResponse mirrors the v1/finance/screener payload.
type screenerResponse struct {
	Finance struct {
		Result []struct {
			Quotes []struct {
				Symbol                   string   `json:"symbol"`
				ShortName                string   `json:"shortName"`
				LongName                 string   `json:"longName"`
				QuoteType                string   `json:"quoteType"`
				Exchange                 string   `json:"exchange"`
				Currency                 string   `json:"currency"`
				MarketCap                *float64 `json:"marketCap"`
				RegularMarketPrice       *float64 `json:"regularMarketPrice"`
				AverageDailyVolume3Month *float64 `json:"averageDailyVolume3Month"`
				Sector                   string   `json:"sector"`
				Industry                 string   `json:"industry"`
				FiftyTwoWeekHigh         *float64 `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow          *float64 `json:"fiftyTwoWeekLow"`
			} `json:"quotes"`
		} `json:"result"`
	} `json:"finance"`
}

// Screener runs a listing query and returns the matching records in one
// call. Any failure degrades to an empty slice: the screener is an
// opportunistic bulk source, never load-bearing.
func (c *Client) Screener(ctx context.Context, query ScreenerQuery) []asset.Record {
	size := query.Size
	if size <= 0 || size > maxScreenerSize {
		size = maxScreenerSize
	}

	params := map[string]string{
		"formatted": "false",
		"lang":      "en-US",
		"region":    "US",
		"size":      strconv.Itoa(size),
	}
	if query.SortField != "" {
		params["sortField"] = query.SortField
		params["sortType"] = query.SortOrder
	}
	if len(query.Filters) > 0 {
		if encoded, err := json.Marshal(query.Filters); err == nil {
			params["query"] = string(encoded)
		}
	}

	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APIYahoo); err != nil {
		return nil
	}

	body, err := c.http.GetJSON(ctx, c.screenerURL, params, requestHeaders)
	if err != nil || body == nil {
		slog.Warn("screener unavailable, skipping")
		return nil
	}

	var parsed screenerResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		slog.Warn("screener parse error", "error", err)
		return nil
	}
	if len(parsed.Finance.Result) == 0 {
		return nil
	}

	quotes := parsed.Finance.Result[0].Quotes
	records := make([]asset.Record, 0, len(quotes))
	for _, q := range quotes {
		if q.Symbol == "" {
			continue
		}
		rec := asset.Record{
			Ticker:           q.Symbol,
			Source:           ScreenerSourceName,
			Name:             asset.String(displayName(q.ShortName, q.LongName, q.Symbol)),
			QuoteType:        asset.String(defaultString(q.QuoteType, "EQUITY")),
			Currency:         asset.String(defaultString(q.Currency, "USD")),
			MarketCap:        q.MarketCap,
			Price:            q.RegularMarketPrice,
			AvgVolume30d:     q.AverageDailyVolume3Month,
			FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,
			FiftyTwoWeekLow:  q.FiftyTwoWeekLow,
		}
		if q.Exchange != "" {
			rec.Exchange = asset.String(q.Exchange)
		}
		if q.Sector != "" {
			rec.Sector = asset.String(q.Sector)
		}
		if q.Industry != "" {
			rec.Industry = asset.String(q.Industry)
		}
		records = append(records, rec)
	}
	return records
}
