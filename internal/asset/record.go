package asset

// Record is the normalized shape returned by all sources.
// Ticker and Source are always present on records that survive an adapter;
// every other field is best-effort and nil when the provider did not supply it.
type Record struct {
	Ticker           string   `json:"ticker"`
	Source           string   `json:"source"`
	Name             *string  `json:"name,omitempty"`
	QuoteType        *string  `json:"quote_type,omitempty"`
	Exchange         *string  `json:"exchange,omitempty"`
	Currency         *string  `json:"currency,omitempty"`
	Country          *string  `json:"country,omitempty"`
	Sector           *string  `json:"sector,omitempty"`
	Industry         *string  `json:"industry,omitempty"`
	MarketCap        *float64 `json:"market_cap,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	ChangePct        *float64 `json:"change_pct,omitempty"`
	AvgVolume30d     *float64 `json:"avg_volume_30d,omitempty"`
	FiftyTwoWeekHigh *float64 `json:"fifty_two_week_high,omitempty"`
	FiftyTwoWeekLow  *float64 `json:"fifty_two_week_low,omitempty"`
	Beta             *float64 `json:"beta,omitempty"`
	PERatio          *float64 `json:"pe_ratio,omitempty"`
	ATRPct           *float64 `json:"atr_pct,omitempty"`
	SourceID         *string  `json:"source_id,omitempty"`
}

// Valid reports whether the record carries the two required fields.
func (r Record) Valid() bool {
	return r.Ticker != "" && r.Source != ""
}

// Merge copies non-nil fields from other into r. Fields already set on r
// are never overwritten, and nil fields on other never clear anything.
// Used to fold a fundamentals summary into a quote record.
func (r *Record) Merge(other Record) {
	if r.Name == nil && other.Name != nil {
		r.Name = other.Name
	}
	if r.QuoteType == nil && other.QuoteType != nil {
		r.QuoteType = other.QuoteType
	}
	if r.Exchange == nil && other.Exchange != nil {
		r.Exchange = other.Exchange
	}
	if r.Currency == nil && other.Currency != nil {
		r.Currency = other.Currency
	}
	if r.Country == nil && other.Country != nil {
		r.Country = other.Country
	}
	if r.Sector == nil && other.Sector != nil {
		r.Sector = other.Sector
	}
	if r.Industry == nil && other.Industry != nil {
		r.Industry = other.Industry
	}
	if r.MarketCap == nil && other.MarketCap != nil {
		r.MarketCap = other.MarketCap
	}
	if r.Price == nil && other.Price != nil {
		r.Price = other.Price
	}
	if r.ChangePct == nil && other.ChangePct != nil {
		r.ChangePct = other.ChangePct
	}
	if r.AvgVolume30d == nil && other.AvgVolume30d != nil {
		r.AvgVolume30d = other.AvgVolume30d
	}
	if r.FiftyTwoWeekHigh == nil && other.FiftyTwoWeekHigh != nil {
		r.FiftyTwoWeekHigh = other.FiftyTwoWeekHigh
	}
	if r.FiftyTwoWeekLow == nil && other.FiftyTwoWeekLow != nil {
		r.FiftyTwoWeekLow = other.FiftyTwoWeekLow
	}
	if r.Beta == nil && other.Beta != nil {
		r.Beta = other.Beta
	}
	if r.PERatio == nil && other.PERatio != nil {
		r.PERatio = other.PERatio
	}
	if r.ATRPct == nil && other.ATRPct != nil {
		r.ATRPct = other.ATRPct
	}
	if r.SourceID == nil && other.SourceID != nil {
		r.SourceID = other.SourceID
	}
}

// String returns a pointer to s. Convenience for building records.
func String(s string) *string { return &s }

// Float returns a pointer to f. Convenience for building records.
func Float(f float64) *float64 { return &f }
