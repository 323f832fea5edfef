// Package coordinator fans per-ticker fetches out across a bounded pool of
// goroutines and gathers whatever survived. One ticker failing never aborts
// the batch; callers get the records that worked, in no particular order.
package coordinator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"marketfetcher/internal/asset"
)

// QuoteSource supplies per-ticker quotes and optional fundamentals.
// A nil record means the provider had nothing usable; the condition has
// already been logged where it happened.
type QuoteSource interface {
	FetchQuote(ctx context.Context, ticker string) *asset.Record
	FetchSummary(ctx context.Context, ticker string) *asset.Record
}

// Options tunes one batch call. Zero values fall back to the coordinator's
// configured defaults.
type Options struct {
	// Enrich merges a fundamentals summary into each successful quote.
	// Summary failure never invalidates the quote.
	Enrich bool
	// Concurrency bounds simultaneous in-flight fetch units.
	// Enrichment-heavy callers typically pass a lower value.
	Concurrency int
}

// Coordinator runs batches of ticker fetches under a concurrency gate.
// Each batch call gets its own gate; independent batches never share one.
type Coordinator struct {
	quotes      QuoteSource
	concurrency int
	pacing      time.Duration
}

// New creates a Coordinator. concurrency is the default gate width;
// pacing is slept after each unit to avoid bursty request patterns.
func New(quotes QuoteSource, concurrency int, pacing time.Duration) *Coordinator {
	if concurrency <= 0 {
		concurrency = 5
	}
	return &Coordinator{
		quotes:      quotes,
		concurrency: concurrency,
		pacing:      pacing,
	}
}

// FetchBatch fetches quotes for all tickers concurrently, bounded by the
// gate, and returns the normalized records that succeeded. Tickers whose
// fetch produced nothing are dropped. Output order is unspecified.
func (c *Coordinator) FetchBatch(ctx context.Context, tickers []string, opts Options) []asset.Record {
	if len(tickers) == 0 {
		return nil
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = c.concurrency
	}

	sem := semaphore.NewWeighted(int64(concurrency))
	results := make(chan *asset.Record, len(tickers))

	var wg sync.WaitGroup
	for _, t := range tickers {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			results <- c.fetchOne(ctx, sem, ticker, opts.Enrich)
		}(t)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	records := make([]asset.Record, 0, len(tickers))
	for rec := range results {
		if rec == nil {
			continue
		}
		records = append(records, *rec)
	}

	slog.Info("batch complete",
		"requested", len(tickers),
		"fetched", len(records),
		"enrich", opts.Enrich)
	return records
}

// fetchOne is a single fetch unit: acquire a slot, quote, optionally
// enrich, pace, release.
func (c *Coordinator) fetchOne(ctx context.Context, sem *semaphore.Weighted, ticker string, enrich bool) *asset.Record {
	if err := sem.Acquire(ctx, 1); err != nil {
		slog.Debug("fetch unit canceled", "ticker", ticker)
		return nil
	}
	defer sem.Release(1)

	rec := c.quotes.FetchQuote(ctx, ticker)
	if rec == nil {
		slog.Warn("no quote, skipping", "ticker", ticker)
	} else if enrich {
		if summary := c.quotes.FetchSummary(ctx, ticker); summary != nil {
			rec.Merge(*summary)
		}
	}

	if c.pacing > 0 {
		t := time.NewTimer(c.pacing)
		select {
		case <-ctx.Done():
			t.Stop()
		case <-t.C:
		}
	}
	return rec
}
