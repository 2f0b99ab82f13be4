// Package pricing holds the side-effect free pricing rules: market
// aggregation, the deterministic fallback strategy, floor enforcement and the
// conversion heuristic.
package pricing

import "pricing_agent/internal/domain/entities"

// Summarize reduces competitor observations to their mean and minimum.
// An empty set yields the zero summary ("no market data").
func Summarize(observations []entities.CompetitorPrice) entities.MarketSummary {
	if len(observations) == 0 {
		return entities.MarketSummary{}
	}

	sum := 0.0
	lowest := observations[0].Price
	for _, o := range observations {
		sum += o.Price
		if o.Price < lowest {
			lowest = o.Price
		}
	}
	return entities.MarketSummary{
		Average: sum / float64(len(observations)),
		Lowest:  lowest,
		Count:   len(observations),
	}
}
