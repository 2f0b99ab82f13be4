package request

import (
	"strings"
	"time"

	"pricing_agent/internal/usecase"
)

// CompetitorPriceRequest is one competitor observation. scraped_at defaults
// to the time the observation is recorded.
type CompetitorPriceRequest struct {
	Source    string     `json:"source" binding:"required"`
	Price     float64    `json:"price" binding:"required,gt=0"`
	URL       string     `json:"url" binding:"omitempty,url"`
	ScrapedAt *time.Time `json:"scraped_at"`
}

func (r CompetitorPriceRequest) ToInput(productID string) usecase.RecordCompetitorPriceInput {
	in := usecase.RecordCompetitorPriceInput{
		ProductID: strings.TrimSpace(productID),
		Source:    strings.TrimSpace(r.Source),
		Price:     r.Price,
		URL:       strings.TrimSpace(r.URL),
	}
	if r.ScrapedAt != nil {
		in.ScrapedAt = r.ScrapedAt.UTC()
	}
	return in
}
