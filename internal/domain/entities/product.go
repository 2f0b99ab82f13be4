package entities

import "time"

// Product is a catalog item priced by the pricing agent.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Pricing notes:
//   - FloorPrice is the lowest price the business accepts (cost + minimum margin).
//   - FloorPrice <= CurrentPrice at creation time.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Model        string    `json:"model"`
	CurrentPrice float64   `json:"current_price"`
	FloorPrice   float64   `json:"floor_price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
