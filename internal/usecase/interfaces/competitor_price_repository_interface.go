package interfaces

import (
	"context"
	"pricing_agent/internal/domain/entities"
)

// ICompetitorPriceRepository abstracts the append-only competitor observation log.

type ICompetitorPriceRepository interface {
	Create(ctx context.Context, p entities.CompetitorPrice) (entities.CompetitorPrice, error)
	ListByProductID(ctx context.Context, productID string) ([]entities.CompetitorPrice, error)
}
