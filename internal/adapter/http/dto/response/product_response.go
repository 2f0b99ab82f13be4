package response

import (
	"pricing_agent/internal/domain/entities"
	"time"
)

type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Model        string    `json:"model,omitempty"`
	CurrentPrice float64   `json:"current_price"`
	FloorPrice   float64   `json:"floor_price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Model:        p.Model,
		CurrentPrice: p.CurrentPrice,
		FloorPrice:   p.FloorPrice,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}
