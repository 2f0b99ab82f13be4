package entities

import "time"

// CompetitorPrice is a single competitor price observation for a product.
// Observations are append-only.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (product_id-index): product_id
type CompetitorPrice struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Source    string    `json:"source"`
	Price     float64   `json:"price"`
	URL       string    `json:"url,omitempty"`
	ScrapedAt time.Time `json:"scraped_at"`
}

// MarketSummary reduces the competitor observations of a product.
//
// A zero Count means "no market data": Average and Lowest are then 0 and must
// not be used as real price points.
type MarketSummary struct {
	Average float64 `json:"average"`
	Lowest  float64 `json:"lowest"`
	Count   int     `json:"count"`
}

func (m MarketSummary) HasData() bool {
	return m.Count > 0
}

// AverageOr returns the market average, or fallback when there is no market data.
func (m MarketSummary) AverageOr(fallback float64) float64 {
	if m.Average == 0 {
		return fallback
	}
	return m.Average
}

// LowestOr returns the lowest competitor price, or fallback when there is no market data.
func (m MarketSummary) LowestOr(fallback float64) float64 {
	if m.Lowest == 0 {
		return fallback
	}
	return m.Lowest
}
