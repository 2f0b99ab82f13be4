package response

import (
	"pricing_agent/internal/domain/entities"
	"time"
)

type CustomerResponse struct {
	ID              string    `json:"id"`
	Phone           string    `json:"phone"`
	Name            string    `json:"name,omitempty"`
	CustomerType    string    `json:"customer_type"`
	Confidence      float64   `json:"confidence"`
	CreatedAt       time.Time `json:"created_at"`
	LastInteraction time.Time `json:"last_interaction"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		Phone:           c.Phone,
		Name:            c.Name,
		CustomerType:    string(c.CustomerType),
		Confidence:      c.Confidence,
		CreatedAt:       c.CreatedAt,
		LastInteraction: c.LastInteraction,
	}
}
