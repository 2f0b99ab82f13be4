package pricing

import "pricing_agent/internal/domain/entities"

// FloorAdjustmentNote is appended to the reasoning of a proposal lifted to the floor.
const FloorAdjustmentNote = " (adjusted to floor price)"

// EnforceFloor is the only place where a proposal price is checked against
// the product floor. The second return value reports whether it adjusted.
func EnforceFloor(proposal entities.PricingProposal, product entities.Product) (entities.PricingProposal, bool) {
	if proposal.Price >= product.FloorPrice {
		return proposal, false
	}
	proposal.Price = product.FloorPrice
	proposal.Reasoning += FloorAdjustmentNote
	return proposal, true
}
