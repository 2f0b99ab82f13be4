package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/usecase/interfaces"
	mock_interfaces "pricing_agent/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type pricingFixture struct {
	products  *mock_interfaces.MockIProductRepository
	customers *mock_interfaces.MockICustomerRepository
	prices    *mock_interfaces.MockICompetitorPriceRepository
	decisions *mock_interfaces.MockIPricingDecisionRepository
	uc        *PricingUseCase
}

func newPricingFixture(ctrl *gomock.Controller, gateway interfaces.ISuggestionGateway) pricingFixture {
	f := pricingFixture{
		products:  mock_interfaces.NewMockIProductRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		prices:    mock_interfaces.NewMockICompetitorPriceRepository(ctrl),
		decisions: mock_interfaces.NewMockIPricingDecisionRepository(ctrl),
	}
	market := NewMarketUseCase(f.products, f.prices, nil)
	f.uc = NewPricingUseCase(f.products, f.customers, f.decisions, market, newTestResolver(gateway))
	return f
}

func echoDecision(_ context.Context, d entities.PricingDecision) (entities.PricingDecision, error) {
	return d, nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPricingUseCase_Decide(t *testing.T) {
	t.Run("no market data unknown customer suggestion unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockISuggestionGateway(ctrl)
		f := newPricingFixture(ctrl, gw)

		f.prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return(nil, nil)
		gw.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))
		f.decisions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoDecision)

		out, err := f.uc.Decide(context.Background(), powerBank(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d := out.Decision
		if d.Strategy != entities.StrategyValueReinforcement || d.NewPrice != 15000 || d.OldPrice != 15000 {
			t.Fatalf("unexpected decision: %+v", d)
		}
		if !almostEqual(d.ConversionProbability, 0.24) {
			t.Fatalf("expected probability 0.24, got %v", d.ConversionProbability)
		}
		if d.MarketAvgPrice != 0 || d.LowestCompetitorPrice != 0 || d.CustomerID != "" {
			t.Fatalf("expected sentinel market fields and no customer, got %+v", d)
		}
		if d.ID == "" || d.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamp, got %+v", d)
		}
		if out.MessageAngle != "Original product with warranty" || out.Market.HasData() {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("price sensitive customer with market data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPricingFixture(ctrl, nil)

		f.prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return([]entities.CompetitorPrice{
			{ProductID: "p-1", Source: "Jiji", Price: 13200},
			{ProductID: "p-1", Source: "Jumia", Price: 13800},
		}, nil)
		f.decisions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoDecision)

		customer := &entities.Customer{ID: "c-1", CustomerType: entities.CustomerTypePriceSensitive, Confidence: 0.9}
		out, err := f.uc.Decide(context.Background(), powerBank(), customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d := out.Decision
		if d.Strategy != entities.StrategyPriceDrop || d.NewPrice != 13100 || d.CustomerID != "c-1" {
			t.Fatalf("unexpected decision: %+v", d)
		}
		if d.MarketAvgPrice != 13500 || d.LowestCompetitorPrice != 13200 {
			t.Fatalf("unexpected market fields: %+v", d)
		}
		want := 0.30 + (1900.0/15000.0)*0.4 + (400.0/13500.0)*0.3 + 0.2
		if !almostEqual(d.ConversionProbability, want) {
			t.Fatalf("expected probability %v, got %v", want, d.ConversionProbability)
		}
	})

	t.Run("suggestion below floor is lifted to floor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockISuggestionGateway(ctrl)
		f := newPricingFixture(ctrl, gw)

		f.prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return([]entities.CompetitorPrice{{Price: 12500}}, nil)
		gw.EXPECT().Complete(gomock.Any(), gomock.Any()).
			Return(`{"strategy":"price_drop","recommended_price":12000,"reasoning":"Match the cheapest seller","message_angle":"Lowest price"}`, nil)
		f.decisions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoDecision)

		out, err := f.uc.Decide(context.Background(), powerBank(), &entities.Customer{ID: "c-1", CustomerType: entities.CustomerTypePriceSensitive})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d := out.Decision
		if d.NewPrice != 13000 {
			t.Fatalf("expected floor price 13000, got %v", d.NewPrice)
		}
		if d.Reasoning != "Match the cheapest seller (adjusted to floor price)" {
			t.Fatalf("unexpected reasoning: %q", d.Reasoning)
		}
		if out.MessageAngle != "Lowest price" {
			t.Fatalf("unexpected message angle: %q", out.MessageAngle)
		}
	})

	t.Run("same inputs give the same decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPricingFixture(ctrl, nil)

		f.prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return([]entities.CompetitorPrice{{Price: 14000}}, nil).Times(2)
		f.decisions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoDecision).Times(2)

		customer := &entities.Customer{ID: "c-1", CustomerType: entities.CustomerTypeQualitySensitive}
		first, err := f.uc.Decide(context.Background(), powerBank(), customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := f.uc.Decide(context.Background(), powerBank(), customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		a, b := first.Decision, second.Decision
		if a.ID == b.ID {
			t.Fatalf("expected two distinct decision records")
		}
		if a.Strategy != b.Strategy || a.NewPrice != b.NewPrice || a.Reasoning != b.Reasoning || a.ConversionProbability != b.ConversionProbability {
			t.Fatalf("decisions differ: %+v vs %+v", a, b)
		}
	})

	t.Run("invalid customer type is treated as unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPricingFixture(ctrl, nil)

		f.prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return([]entities.CompetitorPrice{{Price: 13000}}, nil)
		f.decisions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoDecision)

		out, err := f.uc.Decide(context.Background(), powerBank(), &entities.Customer{ID: "c-1", CustomerType: "haggler"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Decision.Strategy != entities.StrategyValueReinforcement {
			t.Fatalf("unexpected decision: %+v", out.Decision)
		}
	})

	t.Run("market error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPricingFixture(ctrl, nil)
		f.prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return(nil, errors.New("db"))

		if _, err := f.uc.Decide(context.Background(), powerBank(), nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("persist error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPricingFixture(ctrl, nil)
		f.prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return(nil, nil)
		f.decisions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PricingDecision{}, errors.New("conditional check failed"))

		_, err := f.uc.Decide(context.Background(), powerBank(), nil)
		if err == nil || !strings.Contains(err.Error(), "conditional check failed") {
			t.Fatalf("expected persist error, got %v", err)
		}
	})

	t.Run("empty product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPricingFixture(ctrl, nil)
		if _, err := f.uc.Decide(context.Background(), entities.Product{}, nil); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})
}

func TestPricingUseCase_Analyze(t *testing.T) {
	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPricingFixture(ctrl, nil)
		f.products.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		if _, err := f.uc.Analyze(context.Background(), "missing", ""); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPricingFixture(ctrl, nil)
		f.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(powerBank(), nil)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Customer{}, nil)

		if _, err := f.uc.Analyze(context.Background(), "p-1", "c-404"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success with customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPricingFixture(ctrl, nil)
		f.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(powerBank(), nil)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", CustomerType: entities.CustomerTypePriceSensitive}, nil)
		f.prices.EXPECT().ListByProductID(gomock.Any(), "p-1").Return([]entities.CompetitorPrice{{Price: 14000}}, nil)
		f.decisions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoDecision)

		out, err := f.uc.Analyze(context.Background(), "p-1", "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Decision.Strategy != entities.StrategyPriceDrop || out.Decision.NewPrice != 13900 {
			t.Fatalf("unexpected decision: %+v", out.Decision)
		}
	})
}

func TestPricingUseCase_ListDecisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPricingFixture(ctrl, nil)

	now := time.Now().UTC()
	f.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(powerBank(), nil)
	f.decisions.EXPECT().ListByProductID(gomock.Any(), "p-1").Return([]entities.PricingDecision{
		{ID: "old", CreatedAt: now.Add(-time.Hour)},
		{ID: "new", CreatedAt: now},
		{ID: "mid", CreatedAt: now.Add(-time.Minute)},
	}, nil)

	got, err := f.uc.ListDecisions(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ID != "new" || got[1].ID != "mid" || got[2].ID != "old" {
		t.Fatalf("unexpected order: %+v", got)
	}
}
