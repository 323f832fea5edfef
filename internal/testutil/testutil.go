package testutil

import (
	"context"

	"marketfetcher/internal/asset"
)

// MockQuoteSource is a mock implementation of the coordinator's
// QuoteSource interface for testing.
type MockQuoteSource struct {
	FetchQuoteFunc   func(ctx context.Context, ticker string) *asset.Record
	FetchSummaryFunc func(ctx context.Context, ticker string) *asset.Record
}

// FetchQuote implements coordinator.QuoteSource.
func (m *MockQuoteSource) FetchQuote(ctx context.Context, ticker string) *asset.Record {
	if m.FetchQuoteFunc != nil {
		return m.FetchQuoteFunc(ctx, ticker)
	}
	return nil
}

// FetchSummary implements coordinator.QuoteSource.
func (m *MockQuoteSource) FetchSummary(ctx context.Context, ticker string) *asset.Record {
	if m.FetchSummaryFunc != nil {
		return m.FetchSummaryFunc(ctx, ticker)
	}
	return nil
}

// MockSource is a mock implementation of the asset.Source interface.
type MockSource struct {
	NameFunc  func() string
	FetchFunc func(ctx context.Context) ([]asset.Record, error)
}

// Name implements asset.Source.
func (m *MockSource) Name() string {
	if m.NameFunc != nil {
		return m.NameFunc()
	}
	return "mock"
}

// Fetch implements asset.Source.
func (m *MockSource) Fetch(ctx context.Context) ([]asset.Record, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil, nil
}

// QuoteRecord builds a minimal valid quote record for tests.
func QuoteRecord(ticker string, price float64) *asset.Record {
	return &asset.Record{
		Ticker: ticker,
		Source: "mock",
		Price:  asset.Float(price),
	}
}
