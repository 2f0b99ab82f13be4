package entities

import "time"

// Strategy is the pricing tactic chosen for a decision.
type Strategy string

const (
	StrategyPriceDrop          Strategy = "price_drop"
	StrategyValueReinforcement Strategy = "value_reinforcement"
)

func (s Strategy) Valid() bool {
	switch s {
	case StrategyPriceDrop, StrategyValueReinforcement:
		return true
	}
	return false
}

// PricingProposal is the transient output of the strategy resolver.
// It is never persisted directly.
type PricingProposal struct {
	Strategy     Strategy `json:"strategy"`
	Price        float64  `json:"recommended_price"`
	Reasoning    string   `json:"reasoning"`
	MessageAngle string   `json:"message_angle"`
}

// PricingDecision is the audit-trail record of one recommendation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (product_id-index): product_id
//
// Invariant: NewPrice >= product floor price. Decisions are never updated.
// MarketAvgPrice and LowestCompetitorPrice keep the raw summary, 0 meaning
// "no market data".
type PricingDecision struct {
	ID                    string    `json:"id"`
	ProductID             string    `json:"product_id"`
	CustomerID            string    `json:"customer_id,omitempty"`
	OldPrice              float64   `json:"old_price"`
	NewPrice              float64   `json:"new_price"`
	Strategy              Strategy  `json:"strategy"`
	Reasoning             string    `json:"reasoning"`
	MarketAvgPrice        float64   `json:"market_avg_price"`
	LowestCompetitorPrice float64   `json:"lowest_competitor_price"`
	ConversionProbability float64   `json:"conversion_probability"`
	CreatedAt             time.Time `json:"created_at"`
}
