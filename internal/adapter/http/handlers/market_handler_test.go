package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pricing_agent/internal/adapter/http/handlers/mocks"
	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type marketMocks struct {
	market   *mocks.MockIMarketUseCase
	pricing  *mocks.MockIPricingUseCase
	products *mocks.MockIProductUseCase
	router   *gin.Engine
}

func newMarketRouter(ctrl *gomock.Controller) marketMocks {
	m := marketMocks{
		market:   mocks.NewMockIMarketUseCase(ctrl),
		pricing:  mocks.NewMockIPricingUseCase(ctrl),
		products: mocks.NewMockIProductUseCase(ctrl),
		router:   gin.New(),
	}
	h := NewMarketHandler(m.market, m.pricing, m.products)
	m.router.POST("/v1/market/:product_id/prices", h.RecordCompetitorPrice)
	m.router.GET("/v1/market/:product_id/prices", h.ListCompetitorPrices)
	m.router.GET("/v1/market/analysis/:product_id", h.GetMarketAnalysis)
	m.router.GET("/v1/market/decisions/:product_id", h.ListDecisions)
	m.router.GET("/v1/market/decisions/:product_id/export", h.ExportDecisions)
	return m
}

func TestMarketHandler_RecordCompetitorPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non positive price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMarketRouter(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/market/p-1/prices", bytes.NewBufferString(`{"source":"Jiji","price":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMarketRouter(ctrl)

		m.market.EXPECT().RecordCompetitorPrice(gomock.Any(), gomock.Any()).Return(entities.CompetitorPrice{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/market/p-404/prices", bytes.NewBufferString(`{"source":"Jiji","price":13200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMarketRouter(ctrl)

		m.market.EXPECT().RecordCompetitorPrice(gomock.Any(), usecase.RecordCompetitorPriceInput{ProductID: "p-1", Source: "Jiji", Price: 13200}).
			Return(entities.CompetitorPrice{ID: "o-1", ProductID: "p-1", Source: "Jiji", Price: 13200}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/market/p-1/prices", bytes.NewBufferString(`{"source":"Jiji","price":13200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMarketHandler_GetMarketAnalysis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMarketRouter(ctrl)

		m.pricing.EXPECT().Analyze(gomock.Any(), "p-1", "c-404").Return(usecase.PricingOutcome{}, usecase.ErrCustomerNotFound)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/market/analysis/p-1?customer_id=c-404", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "CUSTOMER_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("persistence failure is internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMarketRouter(ctrl)

		m.pricing.EXPECT().Analyze(gomock.Any(), "p-1", "").Return(usecase.PricingOutcome{}, errors.New("conditional check failed"))

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/market/analysis/p-1", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMarketRouter(ctrl)

		m.pricing.EXPECT().Analyze(gomock.Any(), "p-1", "c-1").Return(usecase.PricingOutcome{
			Product:      entities.Product{ID: "p-1", Name: "Oraimo Power Bank 20000mAh", CurrentPrice: 15000, FloorPrice: 13000},
			Decision:     entities.PricingDecision{ID: "d-1", ProductID: "p-1", CustomerID: "c-1", NewPrice: 13100, Strategy: entities.StrategyPriceDrop},
			Market:       entities.MarketSummary{Average: 13500, Lowest: 13200, Count: 2},
			MessageAngle: "Best price in the market right now",
		}, nil)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/market/analysis/p-1?customer_id=c-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["recommended_strategy"] != "price_drop" || body["recommended_price"] != 13100.0 || body["decision_id"] != "d-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMarketHandler_Decisions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMarketRouter(ctrl)

		m.pricing.EXPECT().ListDecisions(gomock.Any(), "p-1").Return([]entities.PricingDecision{{ID: "d-2"}, {ID: "d-1"}}, nil)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/market/decisions/p-1", nil))

		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 || body[0]["id"] != "d-2" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("export unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMarketRouter(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Product{}, usecase.ErrProductNotFound)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/market/decisions/p-404/export", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("export xlsx", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMarketRouter(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "Power bank"}, nil)
		m.pricing.EXPECT().ListDecisions(gomock.Any(), "p-1").Return([]entities.PricingDecision{
			{ID: "d-1", ProductID: "p-1", Strategy: entities.StrategyValueReinforcement, NewPrice: 15000, CreatedAt: time.Now().UTC()},
		}, nil)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/market/decisions/p-1/export", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != xlsxContentType {
			t.Fatalf("unexpected content type: %q", w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "pricing_decisions_p-1.xlsx") {
			t.Fatalf("unexpected disposition: %q", w.Header().Get("Content-Disposition"))
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
			t.Fatalf("expected a zip-based workbook")
		}
	})
}
