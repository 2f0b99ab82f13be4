package usecase

import (
	"context"
	"errors"
	"log"
	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/domain/pricing"
	"pricing_agent/internal/infrastructure/metrics"
	"pricing_agent/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCompetitorPrice = errors.New("invalid competitor price")

// RecordCompetitorPriceInput is a competitor observation reported by an operator
// or an upstream feed.
type RecordCompetitorPriceInput struct {
	ProductID string
	Source    string
	Price     float64
	URL       string
	ScrapedAt time.Time
}

// IMarketUseCase owns competitor observations and their summary.

type IMarketUseCase interface {
	RecordCompetitorPrice(ctx context.Context, in RecordCompetitorPriceInput) (entities.CompetitorPrice, error)
	ListCompetitorPrices(ctx context.Context, productID string) ([]entities.CompetitorPrice, error)
	Summary(ctx context.Context, productID string) (entities.MarketSummary, error)
}

type MarketUseCase struct {
	products interfaces.IProductRepository
	prices   interfaces.ICompetitorPriceRepository
	cache    interfaces.IMarketSummaryCache
}

var _ IMarketUseCase = (*MarketUseCase)(nil)

// NewMarketUseCase builds the market use case. cache may be nil.
func NewMarketUseCase(products interfaces.IProductRepository, prices interfaces.ICompetitorPriceRepository, cache interfaces.IMarketSummaryCache) *MarketUseCase {
	return &MarketUseCase{products: products, prices: prices, cache: cache}
}

func (u *MarketUseCase) RecordCompetitorPrice(ctx context.Context, in RecordCompetitorPriceInput) (entities.CompetitorPrice, error) {
	source := strings.TrimSpace(in.Source)
	if source == "" || in.Price <= 0 {
		return entities.CompetitorPrice{}, ErrInvalidCompetitorPrice
	}
	product, err := findProduct(ctx, u.products, in.ProductID)
	if err != nil {
		return entities.CompetitorPrice{}, err
	}

	scrapedAt := in.ScrapedAt
	if scrapedAt.IsZero() {
		scrapedAt = time.Now()
	}
	obs := entities.CompetitorPrice{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Source:    source,
		Price:     in.Price,
		URL:       strings.TrimSpace(in.URL),
		ScrapedAt: scrapedAt.UTC(),
	}

	created, err := u.prices.Create(ctx, obs)
	if err != nil {
		log.Printf("[market][usecase] record failed product_id=%s source=%s err=%v", product.ID, source, err)
		return entities.CompetitorPrice{}, err
	}
	if u.cache != nil {
		if err := u.cache.Invalidate(ctx, product.ID); err != nil {
			log.Printf("[market][usecase] cache invalidate failed product_id=%s err=%v", product.ID, err)
		}
	}
	log.Printf("[market][usecase] recorded observation product_id=%s source=%s price=%.2f", product.ID, source, created.Price)
	return created, nil
}

func (u *MarketUseCase) ListCompetitorPrices(ctx context.Context, productID string) ([]entities.CompetitorPrice, error) {
	product, err := findProduct(ctx, u.products, productID)
	if err != nil {
		return nil, err
	}
	return u.prices.ListByProductID(ctx, product.ID)
}

// Summary returns the market summary of a product, served from the cache when possible.
// Cache failures never fail the call.
func (u *MarketUseCase) Summary(ctx context.Context, productID string) (entities.MarketSummary, error) {
	fill := false
	var generation int64
	if u.cache != nil {
		cached, found, err := u.cache.Get(ctx, productID)
		switch {
		case err != nil:
			metrics.MarketCacheLookups.WithLabelValues("error").Inc()
			log.Printf("[market][usecase] cache get failed product_id=%s err=%v", productID, err)
		case found:
			metrics.MarketCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.MarketCacheLookups.WithLabelValues("miss").Inc()
		}

		// read before the repository so a concurrent record makes the fill stale
		generation, err = u.cache.Generation(ctx, productID)
		if err != nil {
			log.Printf("[market][usecase] cache generation failed product_id=%s err=%v", productID, err)
		} else {
			fill = true
		}
	}

	observations, err := u.prices.ListByProductID(ctx, productID)
	if err != nil {
		return entities.MarketSummary{}, err
	}
	summary := pricing.Summarize(observations)

	if fill {
		stored, err := u.cache.SetIfGeneration(ctx, productID, generation, summary)
		switch {
		case err != nil:
			log.Printf("[market][usecase] cache set failed product_id=%s err=%v", productID, err)
		case !stored:
			log.Printf("[market][usecase] cache fill skipped, newer observations product_id=%s", productID)
		}
	}
	return summary, nil
}
