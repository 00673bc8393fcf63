package data

import (
	"context"

	"github.com/wp4032/stocks/internal/domain"
)

// Provider is the market-data collaborator. Implementations must be
// safe for concurrent use: the scan pipeline shares one Provider across
// all workers.
//
// Errors from either method mean "this data could not be fetched"; the
// calculators convert them to unavailable metric values. A Provider
// never causes the run to abort.
type Provider interface {
	// PriceHistory returns daily bars for the symbol covering roughly
	// the given number of calendar years ending now, ascending by date.
	// An empty slice is a valid response.
	PriceHistory(ctx context.Context, symbol string, years int) ([]domain.PriceBar, error)

	// Fundamentals returns annual statement snapshots for the symbol,
	// most-recent first. Line items individually absent in a period are
	// marked missing, not zero.
	Fundamentals(ctx context.Context, symbol string) ([]domain.FundamentalSnapshot, error)
}
