package asset

import "context"

// Source is the core interface that all market-data sources implement.
// A source knows how to pull raw data from one provider and map it into
// normalized records. Implementations absorb provider failures where they
// can; a returned error means the source produced nothing usable.
type Source interface {
	// Name identifies the source for logging and provenance tags.
	Name() string

	// Fetch retrieves and normalizes records from the provider.
	// The returned slice may be empty; records always carry Ticker and Source.
	Fetch(ctx context.Context) ([]Record, error)
}
