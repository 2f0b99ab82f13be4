package pricing

import (
	"fmt"
	"strconv"

	"pricing_agent/internal/domain/entities"
)

const (
	DefaultPriceDecrement = 100.0
	DefaultCurrencySymbol = "₦"

	priceDropAngle          = "Best price in the market right now"
	valueReinforcementAngle = "Original product with warranty"
	valueReinforcementWhy   = "Maintaining price and emphasizing quality/warranty."
)

// FallbackRules is the deterministic strategy used when no usable external
// suggestion is available.
type FallbackRules struct {
	PriceDecrement float64
	CurrencySymbol string
}

func DefaultFallbackRules() FallbackRules {
	return FallbackRules{PriceDecrement: DefaultPriceDecrement, CurrencySymbol: DefaultCurrencySymbol}
}

// Propose undercuts the lowest competitor for price-sensitive customers when
// that is an actual drop, and holds the current price otherwise.
func (r FallbackRules) Propose(product entities.Product, market entities.MarketSummary, customerType entities.CustomerType) entities.PricingProposal {
	if customerType == entities.CustomerTypePriceSensitive {
		lowest := market.LowestOr(product.CurrentPrice)
		target := lowest - r.PriceDecrement
		if target < product.FloorPrice {
			target = product.FloorPrice
		}
		if target < product.CurrentPrice {
			return entities.PricingProposal{
				Strategy:     entities.StrategyPriceDrop,
				Price:        target,
				Reasoning:    fmt.Sprintf("Price-sensitive customer. Dropped to %s to compete.", r.FormatPrice(target)),
				MessageAngle: priceDropAngle,
			}
		}
	}

	return entities.PricingProposal{
		Strategy:     entities.StrategyValueReinforcement,
		Price:        product.CurrentPrice,
		Reasoning:    valueReinforcementWhy,
		MessageAngle: valueReinforcementAngle,
	}
}

func (r FallbackRules) FormatPrice(v float64) string {
	return r.CurrencySymbol + strconv.FormatFloat(v, 'f', -1, 64)
}
