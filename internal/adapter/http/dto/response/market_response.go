package response

import (
	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/usecase"
	"time"
)

type CompetitorPriceResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Source    string    `json:"source"`
	Price     float64   `json:"price"`
	URL       string    `json:"url,omitempty"`
	ScrapedAt time.Time `json:"scraped_at"`
}

func FromCompetitorPrice(p entities.CompetitorPrice) CompetitorPriceResponse {
	return CompetitorPriceResponse{
		ID:        p.ID,
		ProductID: p.ProductID,
		Source:    p.Source,
		Price:     p.Price,
		URL:       p.URL,
		ScrapedAt: p.ScrapedAt,
	}
}

func FromCompetitorPrices(ps []entities.CompetitorPrice) []CompetitorPriceResponse {
	out := make([]CompetitorPriceResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromCompetitorPrice(p))
	}
	return out
}

// MarketAnalysisResponse is the pricing recommendation for one product and
// (optionally) one customer. Market fields are 0 when no competitor
// observations exist.
type MarketAnalysisResponse struct {
	DecisionID            string  `json:"decision_id"`
	ProductID             string  `json:"product_id"`
	ProductName           string  `json:"product_name"`
	CustomerID            string  `json:"customer_id,omitempty"`
	CurrentPrice          float64 `json:"current_price"`
	FloorPrice            float64 `json:"floor_price"`
	MarketAvgPrice        float64 `json:"market_avg_price"`
	LowestCompetitorPrice float64 `json:"lowest_competitor_price"`
	CompetitorCount       int     `json:"competitor_count"`
	RecommendedStrategy   string  `json:"recommended_strategy"`
	RecommendedPrice      float64 `json:"recommended_price"`
	Reasoning             string  `json:"reasoning"`
	MessageAngle          string  `json:"message_angle"`
	ConversionProbability float64 `json:"conversion_probability"`
}

func FromPricingOutcome(o usecase.PricingOutcome) MarketAnalysisResponse {
	return MarketAnalysisResponse{
		DecisionID:            o.Decision.ID,
		ProductID:             o.Product.ID,
		ProductName:           o.Product.Name,
		CustomerID:            o.Decision.CustomerID,
		CurrentPrice:          o.Product.CurrentPrice,
		FloorPrice:            o.Product.FloorPrice,
		MarketAvgPrice:        o.Market.Average,
		LowestCompetitorPrice: o.Market.Lowest,
		CompetitorCount:       o.Market.Count,
		RecommendedStrategy:   string(o.Decision.Strategy),
		RecommendedPrice:      o.Decision.NewPrice,
		Reasoning:             o.Decision.Reasoning,
		MessageAngle:          o.MessageAngle,
		ConversionProbability: o.Decision.ConversionProbability,
	}
}

type PricingDecisionResponse struct {
	ID                    string    `json:"id"`
	ProductID             string    `json:"product_id"`
	CustomerID            string    `json:"customer_id,omitempty"`
	OldPrice              float64   `json:"old_price"`
	NewPrice              float64   `json:"new_price"`
	Strategy              string    `json:"strategy"`
	Reasoning             string    `json:"reasoning"`
	MarketAvgPrice        float64   `json:"market_avg_price"`
	LowestCompetitorPrice float64   `json:"lowest_competitor_price"`
	ConversionProbability float64   `json:"conversion_probability"`
	CreatedAt             time.Time `json:"created_at"`
}

func FromPricingDecisions(ds []entities.PricingDecision) []PricingDecisionResponse {
	out := make([]PricingDecisionResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, PricingDecisionResponse{
			ID:                    d.ID,
			ProductID:             d.ProductID,
			CustomerID:            d.CustomerID,
			OldPrice:              d.OldPrice,
			NewPrice:              d.NewPrice,
			Strategy:              string(d.Strategy),
			Reasoning:             d.Reasoning,
			MarketAvgPrice:        d.MarketAvgPrice,
			LowestCompetitorPrice: d.LowestCompetitorPrice,
			ConversionProbability: d.ConversionProbability,
			CreatedAt:             d.CreatedAt,
		})
	}
	return out
}
