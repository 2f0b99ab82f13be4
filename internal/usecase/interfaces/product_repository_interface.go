package interfaces

import (
	"context"
	"pricing_agent/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// GetByID returns a zero Product (empty ID) when the product does not exist.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}
