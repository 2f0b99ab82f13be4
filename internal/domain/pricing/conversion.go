package pricing

import "pricing_agent/internal/domain/entities"

const (
	baseConversion        = 0.30
	priceDropWeight       = 0.4
	marketAdvantageWeight = 0.3
	priceSensitiveBonus   = 0.2
	qualityDamping        = 0.8
	maxConversion         = 0.95
)

// SensitivityScore maps a customer type to the estimator input:
// 0.0 for price-sensitive customers, 1.0 for everyone else.
func SensitivityScore(t entities.CustomerType) float64 {
	if t == entities.CustomerTypePriceSensitive {
		return 0.0
	}
	return 1.0
}

// EstimateConversion is the interpretable conversion heuristic. The result is
// always within [0, 0.95] for non-negative prices.
func EstimateConversion(oldPrice, newPrice, marketAverage, sensitivityScore float64) float64 {
	p := baseConversion

	if newPrice < oldPrice && oldPrice > 0 {
		p += (oldPrice - newPrice) / oldPrice * priceDropWeight
	}

	if newPrice < marketAverage && marketAverage > 0 {
		p += (marketAverage - newPrice) / marketAverage * marketAdvantageWeight
	}

	if sensitivityScore < 0.5 {
		if newPrice < marketAverage {
			p += priceSensitiveBonus
		}
	} else {
		p *= qualityDamping
	}

	if p > maxConversion {
		return maxConversion
	}
	if p < 0 {
		return 0
	}
	return p
}
