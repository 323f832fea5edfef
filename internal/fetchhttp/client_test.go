package fetchhttp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// fastClient returns a client with millisecond delays so retry tests run quickly.
func fastClient() *Client {
	return New(Options{
		Attempts:   3,
		RetryDelay: 5 * time.Millisecond,
		Timeout:    2 * time.Second,
	})
}

func TestGetJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("symbol") != "AAPL" {
			t.Errorf("symbol = %q, want AAPL", r.URL.Query().Get("symbol"))
		}
		if r.Header.Get("X-Test") != "yes" {
			t.Errorf("X-Test header = %q, want yes", r.Header.Get("X-Test"))
		}
		w.Write([]byte(`{"price": 210.5}`))
	}))
	defer server.Close()

	body, err := fastClient().GetJSON(context.Background(), server.URL,
		map[string]string{"symbol": "AAPL"},
		map[string]string{"X-Test": "yes"})
	if err != nil {
		t.Fatalf("GetJSON() returned error: %v", err)
	}

	var parsed struct {
		Price float64 `json:"price"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if parsed.Price != 210.5 {
		t.Errorf("price = %v, want 210.5", parsed.Price)
	}
}

func TestGetJSON_RateLimitThenSuccess(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	start := time.Now()
	body, err := fastClient().GetJSON(context.Background(), server.URL, nil, nil)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("GetJSON() returned error: %v", err)
	}
	if body == nil {
		t.Fatal("GetJSON() returned nil body")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server saw %d calls, want 2", got)
	}
	// One backoff of delay*(0+1)*2 = 10ms; the fixed inter-attempt delay
	// must not be added on top.
	if elapsed < 10*time.Millisecond {
		t.Errorf("elapsed %v, want at least the scaled backoff (10ms)", elapsed)
	}
	if elapsed > 100*time.Millisecond {
		t.Errorf("elapsed %v, backoff should be a single scaled sleep", elapsed)
	}
}

func TestGetJSON_ServerErrorExhaustsAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	body, err := fastClient().GetJSON(context.Background(), server.URL, nil, nil)

	if body != nil {
		t.Errorf("body = %q, want nil", body)
	}
	if err == nil {
		t.Fatal("GetJSON() returned nil error after exhausting attempts")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d calls, want exactly 3", got)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.Kind != KindServer {
		t.Errorf("Kind = %q, want %q", reqErr.Kind, KindServer)
	}
	if !reqErr.Retryable {
		t.Error("server errors should be marked retryable")
	}
}

func TestGetJSON_UnauthorizedSkipsImmediately(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	body, err := fastClient().GetJSON(context.Background(), server.URL, nil, nil)

	if body != nil {
		t.Errorf("body = %q, want nil", body)
	}
	if err == nil {
		t.Fatal("GetJSON() returned nil error on 401")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server saw %d calls, want exactly 1 (auth walls are permanent)", got)
	}
}

func TestGetJSON_TransportError(t *testing.T) {
	// Point at a closed server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	body, err := fastClient().GetJSON(context.Background(), url, nil, nil)

	if body != nil {
		t.Errorf("body = %q, want nil", body)
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.Kind != KindNetwork && reqErr.Kind != KindTimeout {
		t.Errorf("Kind = %q, want network or timeout", reqErr.Kind)
	}
}

func TestGetJSON_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := fastClient().GetJSON(ctx, server.URL, nil, nil)
		if err == nil {
			t.Error("GetJSON() returned nil error with canceled context")
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("GetJSON() did not return promptly after cancellation")
	}
}
