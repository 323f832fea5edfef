package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const screenerBody = `{
	"finance": {
		"result": [{
			"quotes": [
				{"symbol": "AAPL", "shortName": "Apple Inc.", "quoteType": "EQUITY", "exchange": "NMS",
				 "currency": "USD", "marketCap": 3200000000000, "regularMarketPrice": 210.5,
				 "averageDailyVolume3Month": 51000000, "sector": "Technology", "industry": "Consumer Electronics"},
				{"symbol": "MSFT", "shortName": "Microsoft", "quoteType": "EQUITY",
				 "currency": "USD", "marketCap": 3100000000000, "regularMarketPrice": 420.1},
				{"symbol": "", "shortName": "Nameless"}
			]
		}]
	}
}`

func TestScreener_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("formatted") != "false" || q.Get("lang") != "en-US" || q.Get("region") != "US" {
			t.Errorf("missing standard screener params, got %v", q)
		}
		if q.Get("sortField") != "intradaymarketcap" || q.Get("sortType") != "DESC" {
			t.Errorf("sort params = %q/%q", q.Get("sortField"), q.Get("sortType"))
		}

		var filters []Filter
		if err := json.Unmarshal([]byte(q.Get("query")), &filters); err != nil {
			t.Errorf("query param not parseable: %v", err)
		} else if len(filters) != 1 || filters[0].Operator != "GT" {
			t.Errorf("filters = %+v, want one GT filter", filters)
		}

		fmt.Fprint(w, screenerBody)
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(), "", "", "", server.URL)
	records := client.Screener(context.Background(), USLargeCapQuery())

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (empty symbol dropped)", len(records))
	}
	for _, rec := range records {
		if !rec.Valid() {
			t.Errorf("invalid record: %+v", rec)
		}
		if rec.Source != ScreenerSourceName {
			t.Errorf("Source = %q, want %q", rec.Source, ScreenerSourceName)
		}
	}
	if records[0].Ticker != "AAPL" || records[0].Sector == nil || *records[0].Sector != "Technology" {
		t.Errorf("first record mismatched: %+v", records[0])
	}
}

func TestScreener_SizeClamp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("size"); got != "250" {
			t.Errorf("size = %q, want 250", got)
		}
		fmt.Fprint(w, `{"finance": {"result": [{"quotes": []}]}}`)
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(), "", "", "", server.URL)
	client.Screener(context.Background(), ScreenerQuery{Size: 9000})
}

func TestScreener_FailureDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(), "", "", "", server.URL)
	if records := client.Screener(context.Background(), USLargeCapQuery()); len(records) != 0 {
		t.Errorf("got %d records from a failing screener, want 0", len(records))
	}
}

func TestScreener_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"finance": `)
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(), "", "", "", server.URL)
	if records := client.Screener(context.Background(), USLargeCapQuery()); len(records) != 0 {
		t.Errorf("got %d records from malformed payload, want 0", len(records))
	}
}
