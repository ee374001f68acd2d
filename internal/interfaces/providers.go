package interfaces

import (
	"context"
	"time"

	"stock-analyzer/internal/types"
)

// PriceProvider returns daily price history for a symbol. Implemented by the
// provider layer; the analysis engine only consumes already-fetched bars.
type PriceProvider interface {
	// History returns daily bars for the symbol over the named range
	// (e.g. "1mo", "6mo", "1y"), oldest first.
	History(ctx context.Context, symbol, period string) ([]types.PriceBar, error)
}

// NewsProvider returns headlines for the cascade. CompanyNews is scoped to one
// symbol and date window; MarketNews is the general-market fallback used when
// no company headline is sentiment-consistent with a move.
type NewsProvider interface {
	CompanyNews(ctx context.Context, symbol string, from, to time.Time, limit int) ([]types.Headline, error)
	MarketNews(ctx context.Context, limit int) ([]types.Headline, error)
}
