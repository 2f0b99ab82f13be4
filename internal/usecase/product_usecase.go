package usecase

import (
	"context"
	"errors"
	"log"
	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductInput = errors.New("invalid product input")
	ErrFloorAboveCurrent   = errors.New("floor price cannot exceed current price")
)

// CreateProductInput is the command accepted by CreateProduct.
type CreateProductInput struct {
	Name         string
	Model        string
	CurrentPrice float64
	FloorPrice   float64
}

// IProductUseCase exposes the product catalog.
//
// Price fields are only changed through dedicated price-change operations,
// which live outside this service.

type IProductUseCase interface {
	CreateProduct(ctx context.Context, in CreateProductInput) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, in CreateProductInput) (entities.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CurrentPrice <= 0 || in.FloorPrice < 0 {
		return entities.Product{}, ErrInvalidProductInput
	}
	if in.FloorPrice > in.CurrentPrice {
		return entities.Product{}, ErrFloorAboveCurrent
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:           uuid.NewString(),
		Name:         name,
		Model:        strings.TrimSpace(in.Model),
		CurrentPrice: in.CurrentPrice,
		FloorPrice:   in.FloorPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[product][usecase] create failed name=%q err=%v", name, err)
		return entities.Product{}, err
	}
	log.Printf("[product][usecase] created product_id=%s current_price=%.2f floor_price=%.2f", created.ID, created.CurrentPrice, created.FloorPrice)
	return created, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	return findProduct(ctx, u.repo, id)
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

// findProduct resolves a product id or fails with a sentinel error.
func findProduct(ctx context.Context, repo interfaces.IProductRepository, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}
