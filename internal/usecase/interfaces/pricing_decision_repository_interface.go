package interfaces

import (
	"context"
	"pricing_agent/internal/domain/entities"
)

// IPricingDecisionRepository abstracts the append-only decision audit trail.
//
// Create must be atomic: either the whole decision is visible or none of it.

type IPricingDecisionRepository interface {
	Create(ctx context.Context, d entities.PricingDecision) (entities.PricingDecision, error)
	ListByProductID(ctx context.Context, productID string) ([]entities.PricingDecision, error)
}
