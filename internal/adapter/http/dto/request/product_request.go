package request

import (
	"strings"

	"pricing_agent/internal/usecase"
)

type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Model        string  `json:"model"`
	CurrentPrice float64 `json:"current_price" binding:"required,gt=0"`
	FloorPrice   float64 `json:"floor_price" binding:"gte=0"`
}

func (r CreateProductRequest) ToInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Name:         strings.TrimSpace(r.Name),
		Model:        strings.TrimSpace(r.Model),
		CurrentPrice: r.CurrentPrice,
		FloorPrice:   r.FloorPrice,
	}
}
