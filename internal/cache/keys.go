package cache

import (
	"fmt"
	"strings"
	"time"
)

// keyVersion is bumped when the cached payload schema changes, so stale
// entries from older deployments are simply never read.
const keyVersion = "v2"

// ResearchKey addresses the full research artifact for a symbol.
func ResearchKey(symbol string) string {
	return fmt.Sprintf("research:%s:%s", keyVersion, strings.ToUpper(symbol))
}

// BotKey addresses one bot's result for a symbol.
func BotKey(symbol, botName string) string {
	return fmt.Sprintf("bot:%s:%s:%s", keyVersion, strings.ToUpper(symbol), botName)
}

// MetaKey addresses sweep metadata for a symbol.
func MetaKey(symbol string) string {
	return fmt.Sprintf("meta:%s:%s", keyVersion, strings.ToUpper(symbol))
}

// SweepLockKey addresses the short-lived lock taken while a symbol is
// being swept. Unversioned: locks never outlive a deployment.
func SweepLockKey(symbol string) string {
	return fmt.Sprintf("sweep_lock:%s", strings.ToUpper(symbol))
}

// Default TTLs per data type, scaled to how fast each one goes stale.
const (
	// Fast-changing
	TTLPrice      = 4 * time.Hour
	TTLNews       = 2 * time.Hour
	TTLVolume     = 4 * time.Hour
	TTLSentiment  = 2 * time.Hour
	TTLTechnicals = 4 * time.Hour

	// Medium-changing
	TTLFundamentals = 24 * time.Hour
	TTLAnalyst      = 24 * time.Hour
	TTLEarnings     = 24 * time.Hour

	// Slow-changing
	TTLMacro = 30 * 24 * time.Hour

	// TTLResult bounds a full research artifact: it refreshes when its
	// fastest component (news/sentiment) does.
	TTLResult = TTLNews
)
