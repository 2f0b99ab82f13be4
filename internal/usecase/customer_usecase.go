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
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidCustomerInput = errors.New("invalid customer input")
	ErrInvalidCustomerType  = errors.New("invalid customer type")
)

// ICustomerUseCase manages customers and stores the sensitivity class
// produced by the upstream classifier.

type ICustomerUseCase interface {
	Register(ctx context.Context, phone, name string) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Classify(ctx context.Context, id string, customerType string, confidence float64) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Register is idempotent on phone: an existing customer is returned as is.
func (u *CustomerUseCase) Register(ctx context.Context, phone, name string) (entities.Customer, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}

	existing, err := u.repo.GetByPhone(ctx, phone)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" {
		log.Printf("[customer][usecase] register matched existing customer_id=%s", existing.ID)
		return existing, nil
	}

	now := time.Now().UTC()
	c := entities.Customer{
		ID:              uuid.NewString(),
		Phone:           phone,
		Name:            strings.TrimSpace(name),
		CustomerType:    entities.CustomerTypeUnknown,
		CreatedAt:       now,
		LastInteraction: now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[customer][usecase] create failed err=%v", err)
		return entities.Customer{}, err
	}
	if created.ID != c.ID {
		log.Printf("[customer][usecase] register lost phone claim to customer_id=%s", created.ID)
		return created, nil
	}
	log.Printf("[customer][usecase] created customer_id=%s", created.ID)
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	return findCustomer(ctx, u.repo, id)
}

func (u *CustomerUseCase) Classify(ctx context.Context, id string, customerType string, confidence float64) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	ct, ok := entities.ParseCustomerType(customerType)
	if !ok || confidence < 0 || confidence > 1 {
		return entities.Customer{}, ErrInvalidCustomerType
	}

	updated, err := u.repo.UpdateClassification(ctx, id, ct, confidence)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	log.Printf("[customer][usecase] classified customer_id=%s type=%s confidence=%.2f", id, ct, confidence)
	return updated, nil
}

func findCustomer(ctx context.Context, repo interfaces.ICustomerRepository, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}
