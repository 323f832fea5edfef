package asset

import "testing"

func TestRecord_Valid(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   bool
	}{
		{"ticker and source", Record{Ticker: "AAPL", Source: "yahoo_finance"}, true},
		{"missing ticker", Record{Source: "yahoo_finance"}, false},
		{"missing source", Record{Ticker: "AAPL"}, false},
		{"empty", Record{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecord_Merge_FillsMissingFields(t *testing.T) {
	quote := Record{
		Ticker: "AAPL",
		Source: "yahoo_finance",
		Price:  Float(210.5),
	}
	summary := Record{
		Ticker:    "AAPL",
		Source:    "yahoo_finance",
		Sector:    String("Technology"),
		Beta:      Float(1.2),
		PERatio:   Float(31.4),
		MarketCap: Float(3.2e12),
	}

	quote.Merge(summary)

	if quote.Sector == nil || *quote.Sector != "Technology" {
		t.Errorf("Sector not merged, got %v", quote.Sector)
	}
	if quote.Beta == nil || *quote.Beta != 1.2 {
		t.Errorf("Beta not merged, got %v", quote.Beta)
	}
	if quote.PERatio == nil || *quote.PERatio != 31.4 {
		t.Errorf("PERatio not merged, got %v", quote.PERatio)
	}
	if quote.MarketCap == nil || *quote.MarketCap != 3.2e12 {
		t.Errorf("MarketCap not merged, got %v", quote.MarketCap)
	}
}

func TestRecord_Merge_NeverOverwritesWithNil(t *testing.T) {
	quote := Record{
		Ticker:    "AAPL",
		Source:    "yahoo_finance",
		Price:     Float(210.5),
		Name:      String("Apple"),
		MarketCap: Float(3.2e12),
	}
	empty := Record{Ticker: "AAPL", Source: "yahoo_finance"}

	quote.Merge(empty)

	if quote.Price == nil || *quote.Price != 210.5 {
		t.Errorf("Price overwritten, got %v", quote.Price)
	}
	if quote.Name == nil || *quote.Name != "Apple" {
		t.Errorf("Name overwritten, got %v", quote.Name)
	}
	if quote.MarketCap == nil || *quote.MarketCap != 3.2e12 {
		t.Errorf("MarketCap overwritten, got %v", quote.MarketCap)
	}
}

func TestRecord_Merge_KeepsExistingOverIncoming(t *testing.T) {
	quote := Record{
		Ticker: "AAPL",
		Source: "yahoo_finance",
		Name:   String("Apple"),
	}
	summary := Record{
		Ticker: "AAPL",
		Source: "yahoo_finance",
		Name:   String("Apple Inc. (long)"),
	}

	quote.Merge(summary)

	if *quote.Name != "Apple" {
		t.Errorf("existing Name replaced, got %q", *quote.Name)
	}
}
