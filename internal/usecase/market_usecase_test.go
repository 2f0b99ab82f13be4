package usecase

import (
	"context"
	"errors"
	"testing"

	"pricing_agent/internal/domain/entities"
	mock_interfaces "pricing_agent/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMarketUseCase_RecordCompetitorPrice(t *testing.T) {
	t.Run("invalid observation", func(t *testing.T) {
		uc := NewMarketUseCase(nil, nil, nil)
		for _, in := range []RecordCompetitorPriceInput{
			{ProductID: "p-1", Source: " ", Price: 100},
			{ProductID: "p-1", Source: "Jiji", Price: 0},
		} {
			if _, err := uc.RecordCompetitorPrice(context.Background(), in); !errors.Is(err, ErrInvalidCompetitorPrice) {
				t.Fatalf("expected ErrInvalidCompetitorPrice for %+v, got %v", in, err)
			}
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewMarketUseCase(products, nil, nil)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{}, nil)

		_, err := uc.RecordCompetitorPrice(context.Background(), RecordCompetitorPriceInput{ProductID: "p-1", Source: "Jiji", Price: 14500})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		prices := mock_interfaces.NewMockICompetitorPriceRepository(ctrl)
		cache := mock_interfaces.NewMockIMarketSummaryCache(ctrl)
		uc := NewMarketUseCase(products, prices, cache)

		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1"}, nil)
		prices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.CompetitorPrice) (entities.CompetitorPrice, error) {
			if o.ID == "" || o.ProductID != "p-1" || o.Source != "Jiji" || o.Price != 14500 || o.ScrapedAt.IsZero() {
				t.Fatalf("unexpected observation: %+v", o)
			}
			return o, nil
		})
		cache.EXPECT().Invalidate(gomock.Any(), "p-1").Return(errors.New("redis down"))

		if _, err := uc.RecordCompetitorPrice(context.Background(), RecordCompetitorPriceInput{ProductID: "p-1", Source: " Jiji ", Price: 14500}); err != nil {
			t.Fatalf("cache failure must not fail the call: %v", err)
		}
	})
}

func TestMarketUseCase_Summary(t *testing.T) {
	observations := []entities.CompetitorPrice{{Price: 13200}, {Price: 13800}}

	t.Run("without cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockICompetitorPriceRepository(ctrl)
		uc := NewMarketUseCase(nil, prices, nil)
		prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return(observations, nil)

		got, err := uc.Summary(context.Background(), "p-1")
		if err != nil || got.Average != 13500 || got.Lowest != 13200 {
			t.Fatalf("unexpected summary %+v err=%v", got, err)
		}
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockICompetitorPriceRepository(ctrl)
		cache := mock_interfaces.NewMockIMarketSummaryCache(ctrl)
		uc := NewMarketUseCase(nil, prices, cache)
		cache.EXPECT().Get(gomock.Any(), "p-1").Return(entities.MarketSummary{Average: 1, Lowest: 1, Count: 1}, true, nil)

		got, err := uc.Summary(context.Background(), "p-1")
		if err != nil || got.Average != 1 {
			t.Fatalf("unexpected summary %+v err=%v", got, err)
		}
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockICompetitorPriceRepository(ctrl)
		cache := mock_interfaces.NewMockIMarketSummaryCache(ctrl)
		uc := NewMarketUseCase(nil, prices, cache)
		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any(), "p-1").Return(entities.MarketSummary{}, false, nil),
			cache.EXPECT().Generation(gomock.Any(), "p-1").Return(int64(3), nil),
			prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return(observations, nil),
			cache.EXPECT().SetIfGeneration(gomock.Any(), "p-1", int64(3), entities.MarketSummary{Average: 13500, Lowest: 13200, Count: 2}).Return(true, nil),
		)

		if _, err := uc.Summary(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cache error falls through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockICompetitorPriceRepository(ctrl)
		cache := mock_interfaces.NewMockIMarketSummaryCache(ctrl)
		uc := NewMarketUseCase(nil, prices, cache)
		cache.EXPECT().Get(gomock.Any(), "p-1").Return(entities.MarketSummary{}, false, errors.New("redis down"))
		cache.EXPECT().Generation(gomock.Any(), "p-1").Return(int64(0), errors.New("redis down"))
		prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return(nil, nil)

		got, err := uc.Summary(context.Background(), "p-1")
		if err != nil || got.HasData() {
			t.Fatalf("unexpected summary %+v err=%v", got, err)
		}
	})

	t.Run("stale fill is not stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockICompetitorPriceRepository(ctrl)
		cache := mock_interfaces.NewMockIMarketSummaryCache(ctrl)
		uc := NewMarketUseCase(nil, prices, cache)
		cache.EXPECT().Get(gomock.Any(), "p-1").Return(entities.MarketSummary{}, false, nil)
		cache.EXPECT().Generation(gomock.Any(), "p-1").Return(int64(1), nil)
		prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return(observations, nil)
		cache.EXPECT().SetIfGeneration(gomock.Any(), "p-1", int64(1), gomock.Any()).Return(false, nil)

		got, err := uc.Summary(context.Background(), "p-1")
		if err != nil || got.Count != 2 {
			t.Fatalf("unexpected summary %+v err=%v", got, err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockICompetitorPriceRepository(ctrl)
		uc := NewMarketUseCase(nil, prices, nil)
		prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return(nil, errors.New("db"))

		if _, err := uc.Summary(context.Background(), "p-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

// memPriceRepo is an in-memory price store. beforeReturn runs once, after
// ListByProductID has taken its snapshot.
type memPriceRepo struct {
	items        []entities.CompetitorPrice
	beforeReturn func()
}

func (r *memPriceRepo) Create(_ context.Context, p entities.CompetitorPrice) (entities.CompetitorPrice, error) {
	r.items = append(r.items, p)
	return p, nil
}

func (r *memPriceRepo) ListByProductID(_ context.Context, productID string) ([]entities.CompetitorPrice, error) {
	var out []entities.CompetitorPrice
	for _, p := range r.items {
		if p.ProductID == productID {
			out = append(out, p)
		}
	}
	if hook := r.beforeReturn; hook != nil {
		r.beforeReturn = nil
		hook()
	}
	return out, nil
}

// memSummaryCache mirrors the generation-guarded Redis cache.
type memSummaryCache struct {
	summaries   map[string]entities.MarketSummary
	generations map[string]int64
}

func newMemSummaryCache() *memSummaryCache {
	return &memSummaryCache{summaries: map[string]entities.MarketSummary{}, generations: map[string]int64{}}
}

func (c *memSummaryCache) Get(_ context.Context, productID string) (entities.MarketSummary, bool, error) {
	s, ok := c.summaries[productID]
	return s, ok, nil
}

func (c *memSummaryCache) Generation(_ context.Context, productID string) (int64, error) {
	return c.generations[productID], nil
}

func (c *memSummaryCache) SetIfGeneration(_ context.Context, productID string, generation int64, summary entities.MarketSummary) (bool, error) {
	if c.generations[productID] != generation {
		return false, nil
	}
	c.summaries[productID] = summary
	return true, nil
}

func (c *memSummaryCache) Invalidate(_ context.Context, productID string) error {
	c.generations[productID]++
	delete(c.summaries, productID)
	return nil
}

func TestMarketUseCase_SummaryWithConcurrentRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1"}, nil).AnyTimes()

	repo := &memPriceRepo{items: []entities.CompetitorPrice{{ID: "o-1", ProductID: "p-1", Source: "Jiji", Price: 14000}}}
	uc := NewMarketUseCase(products, repo, newMemSummaryCache())
	ctx := context.Background()

	repo.beforeReturn = func() {
		if _, err := uc.RecordCompetitorPrice(ctx, RecordCompetitorPriceInput{ProductID: "p-1", Source: "Konga", Price: 13000}); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}
	first, err := uc.Summary(ctx, "p-1")
	if err != nil || first.Count != 1 {
		t.Fatalf("unexpected first summary %+v err=%v", first, err)
	}

	second, err := uc.Summary(ctx, "p-1")
	want := entities.MarketSummary{Average: 13500, Lowest: 13000, Count: 2}
	if err != nil || second != want {
		t.Fatalf("expected %+v after the concurrent record, got %+v err=%v", want, second, err)
	}
}
