package usecase

import (
	"context"
	"log"
	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/domain/pricing"
	"pricing_agent/internal/infrastructure/metrics"
	"pricing_agent/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PricingOutcome is what callers get back from a pricing decision: the
// persisted decision plus the raw market stats and the customer talking point.
type PricingOutcome struct {
	Product      entities.Product
	Decision     entities.PricingDecision
	Market       entities.MarketSummary
	MessageAngle string
}

// IPricingUseCase is the pricing orchestrator.
//
// Flow for one decision:
//   - summarize the market
//   - resolve a proposal (suggestion service or fallback rules)
//   - enforce the floor price
//   - estimate conversion probability
//   - persist the decision (append-only)
type IPricingUseCase interface {
	Analyze(ctx context.Context, productID, customerID string) (PricingOutcome, error)
	Decide(ctx context.Context, product entities.Product, customer *entities.Customer) (PricingOutcome, error)
	ListDecisions(ctx context.Context, productID string) ([]entities.PricingDecision, error)
}

type PricingUseCase struct {
	products  interfaces.IProductRepository
	customers interfaces.ICustomerRepository
	decisions interfaces.IPricingDecisionRepository
	market    IMarketUseCase
	resolver  IStrategyResolver
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(
	products interfaces.IProductRepository,
	customers interfaces.ICustomerRepository,
	decisions interfaces.IPricingDecisionRepository,
	market IMarketUseCase,
	resolver IStrategyResolver,
) *PricingUseCase {
	return &PricingUseCase{
		products:  products,
		customers: customers,
		decisions: decisions,
		market:    market,
		resolver:  resolver,
	}
}

// Analyze resolves the referenced entities and runs Decide. Unknown ids are
// the only caller-visible failures besides infrastructure errors.
func (u *PricingUseCase) Analyze(ctx context.Context, productID, customerID string) (PricingOutcome, error) {
	product, err := findProduct(ctx, u.products, productID)
	if err != nil {
		return PricingOutcome{}, err
	}

	var customer *entities.Customer
	if strings.TrimSpace(customerID) != "" {
		c, err := findCustomer(ctx, u.customers, customerID)
		if err != nil {
			return PricingOutcome{}, err
		}
		customer = &c
	}

	return u.Decide(ctx, product, customer)
}

func (u *PricingUseCase) Decide(ctx context.Context, product entities.Product, customer *entities.Customer) (PricingOutcome, error) {
	if product.ID == "" {
		return PricingOutcome{}, ErrInvalidProductID
	}

	customerType := entities.CustomerTypeUnknown
	customerID := ""
	if customer != nil {
		customerID = customer.ID
		if customer.CustomerType.Valid() {
			customerType = customer.CustomerType
		}
	}
	log.Printf("[pricing][usecase] decide start product_id=%s customer_id=%s customer_type=%s", product.ID, customerID, customerType)

	market, err := u.market.Summary(ctx, product.ID)
	if err != nil {
		log.Printf("[pricing][usecase] market summary failed product_id=%s err=%v", product.ID, err)
		return PricingOutcome{}, err
	}

	proposal := u.resolver.Resolve(ctx, product, market, customerType)

	proposal, adjusted := pricing.EnforceFloor(proposal, product)
	if adjusted {
		metrics.FloorAdjustments.Inc()
		log.Printf("[pricing][usecase] proposal lifted to floor product_id=%s floor_price=%.2f", product.ID, product.FloorPrice)
	}

	probability := pricing.EstimateConversion(
		product.CurrentPrice,
		proposal.Price,
		market.AverageOr(product.CurrentPrice),
		pricing.SensitivityScore(customerType),
	)

	decision := entities.PricingDecision{
		ID:                    uuid.NewString(),
		ProductID:             product.ID,
		CustomerID:            customerID,
		OldPrice:              product.CurrentPrice,
		NewPrice:              proposal.Price,
		Strategy:              proposal.Strategy,
		Reasoning:             proposal.Reasoning,
		MarketAvgPrice:        market.Average,
		LowestCompetitorPrice: market.Lowest,
		ConversionProbability: probability,
		CreatedAt:             time.Now().UTC(),
	}

	created, err := u.decisions.Create(ctx, decision)
	if err != nil {
		log.Printf("[pricing][usecase] decision persist failed product_id=%s err=%v", product.ID, err)
		return PricingOutcome{}, err
	}
	metrics.PricingDecisions.WithLabelValues(string(created.Strategy)).Inc()
	log.Printf("[pricing][usecase] decision persisted decision_id=%s product_id=%s strategy=%s old_price=%.2f new_price=%.2f conversion=%.4f",
		created.ID, created.ProductID, created.Strategy, created.OldPrice, created.NewPrice, created.ConversionProbability)

	return PricingOutcome{
		Product:      product,
		Decision:     created,
		Market:       market,
		MessageAngle: proposal.MessageAngle,
	}, nil
}

// ListDecisions returns the decision audit trail of a product, newest first.
func (u *PricingUseCase) ListDecisions(ctx context.Context, productID string) ([]entities.PricingDecision, error) {
	product, err := findProduct(ctx, u.products, productID)
	if err != nil {
		return nil, err
	}

	decisions, err := u.decisions.ListByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(decisions, func(i, j int) bool {
		return decisions[i].CreatedAt.After(decisions[j].CreatedAt)
	})
	return decisions, nil
}
