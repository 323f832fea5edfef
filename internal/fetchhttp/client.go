package fetchhttp

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"resty.dev/v3"
)

const (
	// Default retry configuration, tuned against the free tiers of the
	// providers this module talks to.
	defaultAttempts   = 3
	defaultRetryDelay = 2 * time.Second
	defaultTimeout    = 12 * time.Second
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	// Attempts is the total number of tries for one logical request.
	Attempts int
	// RetryDelay is the fixed sleep between attempts, and the base for the
	// rate-limit backoff (delay * (attempt+1) * 2 on HTTP 429).
	RetryDelay time.Duration
	// Timeout bounds each individual attempt.
	Timeout time.Duration
	// Headers are sent on every request unless overridden per call.
	Headers map[string]string
}

// Client issues a single logical GET with bounded retries and
// rate-limit-aware backoff. It keeps no state between calls; backoff
// counters are local to each GetJSON invocation.
type Client struct {
	rc         *resty.Client
	attempts   int
	retryDelay time.Duration
	headers    map[string]string
}

// New creates a retrying HTTP client.
func New(opts Options) *Client {
	if opts.Attempts <= 0 {
		opts.Attempts = defaultAttempts
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	rc := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		rc:         rc,
		attempts:   opts.Attempts,
		retryDelay: opts.RetryDelay,
		headers:    opts.Headers,
	}
}

// GetJSON issues a GET and returns the raw JSON body on HTTP 200.
// On 429 it backs off proportionally to the attempt index and retries; on
// any other failure it waits the fixed delay and retries. After exhausting
// all attempts it returns the last classified error. Callers treat a nil
// payload as a skippable miss, never as fatal.
//
// HTTP 401 is returned immediately: retrying an auth wall only burns quota.
func (c *Client) GetJSON(ctx context.Context, url string, params, headers map[string]string) ([]byte, error) {
	var lastErr *RequestError

	for attempt := 0; attempt < c.attempts; attempt++ {
		req := c.rc.R().
			SetContext(ctx).
			SetHeaders(c.headers).
			SetHeaders(headers)
		if len(params) > 0 {
			req.SetQueryParams(params)
		}

		resp, err := req.Get(url)
		if err != nil {
			lastErr = classifyTransport(err)
			slog.Warn("request failed",
				"url", url,
				"attempt", attempt+1,
				"kind", lastErr.Kind,
				"error", err)
			if ctx.Err() != nil {
				return nil, lastErr
			}
			if attempt < c.attempts-1 {
				if err := sleep(ctx, c.retryDelay); err != nil {
					return nil, lastErr
				}
			}
			continue
		}

		code := resp.StatusCode()
		switch {
		case code == 200:
			return resp.Bytes(), nil

		case code == 429:
			lastErr = classifyStatus(code)
			wait := c.retryDelay * time.Duration(attempt+1) * 2
			slog.Warn("rate limited", "url", url, "wait", wait)
			if err := sleep(ctx, wait); err != nil {
				return nil, lastErr
			}
			// 429 backoff replaces the fixed inter-attempt delay.
			continue

		case code == 401:
			slog.Warn("unauthorized, skipping", "url", url)
			return nil, classifyStatus(code)

		default:
			lastErr = classifyStatus(code)
			slog.Warn("unexpected status",
				"url", url,
				"attempt", attempt+1,
				"status", code)
			if attempt < c.attempts-1 {
				if err := sleep(ctx, c.retryDelay); err != nil {
					return nil, lastErr
				}
			}
		}
	}

	return nil, lastErr
}

// classifyTransport distinguishes timeouts from other transport failures.
func classifyTransport(err error) *RequestError {
	if errors.Is(err, context.DeadlineExceeded) {
		return newTimeoutError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newTimeoutError(err)
	}
	return newNetworkError(err)
}

// sleep waits for d or until ctx is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
