package interfaces

import (
	"context"
	"pricing_agent/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Lookups return a zero Customer (empty ID) when nothing matches.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByPhone(ctx context.Context, phone string) (entities.Customer, error)
	UpdateClassification(ctx context.Context, id string, customerType entities.CustomerType, confidence float64) (entities.Customer, error)
}
