package ratelimit

import (
	"context"
	"os"
	"sync"

	"golang.org/x/time/rate"
)

// API represents the external providers we throttle against.
type API string

const (
	// APIYahoo covers the chart, quoteSummary and screener endpoints.
	APIYahoo API = "yahoo"
	// APICoinGecko covers the coins/markets listing endpoint.
	APICoinGecko API = "coingecko"
)

// Limiter manages rate limits for the external providers.
type Limiter struct {
	limiters map[API]*rate.Limiter
	mu       sync.RWMutex
}

var (
	instance *Limiter
	once     sync.Once
)

// GetLimiter returns the singleton rate limiter instance.
func GetLimiter() *Limiter {
	once.Do(func() {
		instance = &Limiter{
			limiters: make(map[API]*rate.Limiter),
		}
		instance.initLimiters()
	})
	return instance
}

// initLimiters initializes limiters for each provider with conservative defaults.
func (l *Limiter) initLimiters() {
	// In test mode, use unlimited rate limits to avoid slowing down tests.
	if os.Getenv("GO_TESTING") == "1" || isTestMode() {
		l.limiters[APIYahoo] = rate.NewLimiter(rate.Inf, 1)
		l.limiters[APICoinGecko] = rate.NewLimiter(rate.Inf, 1)
		return
	}

	// Yahoo tolerates bursts but throttles sustained traffic hard;
	// 5/s leaves headroom under the batch concurrency gate.
	l.limiters[APIYahoo] = rate.NewLimiter(rate.Limit(5), 1)

	// CoinGecko free tier: ~30 calls/minute. One every two seconds keeps
	// the paginated listing safely under it.
	l.limiters[APICoinGecko] = rate.NewLimiter(rate.Limit(0.5), 1)
}

// isTestMode checks if we're running under `go test`.
func isTestMode() bool {
	for _, arg := range os.Args {
		if len(arg) > 6 && arg[:6] == "-test." {
			return true
		}
	}
	return false
}

// Wait blocks until the limiter permits an event for the given API.
// It returns an error if the context is canceled first.
func (l *Limiter) Wait(ctx context.Context, api API) error {
	l.mu.RLock()
	limiter, exists := l.limiters[api]
	l.mu.RUnlock()

	if !exists {
		return nil
	}

	return limiter.Wait(ctx)
}

// Allow reports whether an event for the given API may happen now.
func (l *Limiter) Allow(api API) bool {
	l.mu.RLock()
	limiter, exists := l.limiters[api]
	l.mu.RUnlock()

	if !exists {
		return true
	}

	return limiter.Allow()
}
