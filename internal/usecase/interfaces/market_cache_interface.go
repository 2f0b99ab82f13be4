package interfaces

import (
	"context"
	"pricing_agent/internal/domain/entities"
)

// IMarketSummaryCache caches market summaries per product.
// Get reports found=false on a miss.
//
// Every Invalidate bumps the product generation. SetIfGeneration stores the
// summary only while the generation still equals the one read before the
// summary was computed, so a fill racing a new observation is dropped.
type IMarketSummaryCache interface {
	Get(ctx context.Context, productID string) (summary entities.MarketSummary, found bool, err error)
	Generation(ctx context.Context, productID string) (int64, error)
	SetIfGeneration(ctx context.Context, productID string, generation int64, summary entities.MarketSummary) (stored bool, err error)
	Invalidate(ctx context.Context, productID string) error
}
