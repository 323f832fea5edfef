package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"marketfetcher/internal/fetchhttp"
)

func testHTTPClient() *fetchhttp.Client {
	return fetchhttp.New(fetchhttp.Options{
		Attempts:   1,
		RetryDelay: time.Millisecond,
		Timeout:    2 * time.Second,
	})
}

// coinPage builds n fake coins offset so tickers differ across pages.
func coinPage(n, offset int) string {
	coins := make([]map[string]any, n)
	for i := 0; i < n; i++ {
		coins[i] = map[string]any{
			"id":            fmt.Sprintf("coin-%d", offset+i),
			"symbol":        fmt.Sprintf("c%d", offset+i),
			"name":          fmt.Sprintf("Coin %d", offset+i),
			"current_price": 1.5,
			"market_cap":    1e9,
		}
	}
	b, _ := json.Marshal(coins)
	return string(b)
}

func TestTopCoins_StopsOnShortPage(t *testing.T) {
	var pagesServed atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pagesServed.Add(1)
		switch page {
		case 1, 2:
			fmt.Fprint(w, coinPage(100, (page-1)*100))
		default:
			fmt.Fprint(w, coinPage(40, (page-1)*100))
		}
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(), server.URL, 0, 250)
	records := client.TopCoins(context.Background(), 250)

	if got := pagesServed.Load(); got != 3 {
		t.Errorf("pages served = %d, want 3 (short page ends the walk)", got)
	}
	if len(records) != 240 {
		t.Errorf("got %d records, want 240", len(records))
	}
}

func TestTopCoins_TrimsToLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		fmt.Fprint(w, coinPage(100, (page-1)*100))
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(), server.URL, 0, 150)
	records := client.TopCoins(context.Background(), 150)

	if len(records) != 150 {
		t.Errorf("got %d records, want 150 (trimmed)", len(records))
	}
}

func TestTopCoins_QueryAndMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("vs_currency") != "usd" || q.Get("order") != "market_cap_desc" ||
			q.Get("per_page") != "100" || q.Get("sparkline") != "false" {
			t.Errorf("unexpected query params: %v", q)
		}
		fmt.Fprint(w, `[{
			"id": "bitcoin", "symbol": "btc", "name": "Bitcoin",
			"current_price": 65000.5, "market_cap": 1280000000000,
			"total_volume": 32000000000, "price_change_percentage_24h": -1.2,
			"ath": 73700, "atl": 67.8
		}]`)
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(), server.URL, 0, 10)
	records := client.TopCoins(context.Background(), 10)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Ticker != "BTC-USD" {
		t.Errorf("Ticker = %q, want BTC-USD", rec.Ticker)
	}
	if rec.Source != SourceName {
		t.Errorf("Source = %q, want %q", rec.Source, SourceName)
	}
	if rec.QuoteType == nil || *rec.QuoteType != "CRYPTOCURRENCY" {
		t.Errorf("QuoteType = %v, want CRYPTOCURRENCY", rec.QuoteType)
	}
	if rec.Price == nil || *rec.Price != 65000.5 {
		t.Errorf("Price = %v, want 65000.5", rec.Price)
	}
	if rec.SourceID == nil || *rec.SourceID != "bitcoin" {
		t.Errorf("SourceID = %v, want bitcoin", rec.SourceID)
	}
	if rec.ChangePct == nil || *rec.ChangePct != -1.2 {
		t.Errorf("ChangePct = %v, want -1.2", rec.ChangePct)
	}
}

func TestTopCoins_PageFailureKeepsPartial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 1 {
			fmt.Fprint(w, coinPage(100, 0))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(), server.URL, 0, 250)
	records := client.TopCoins(context.Background(), 250)

	if len(records) != 100 {
		t.Errorf("got %d records, want the 100 from the successful page", len(records))
	}
}
