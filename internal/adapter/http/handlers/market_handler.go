package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	request "pricing_agent/internal/adapter/http/dto/request"
	response "pricing_agent/internal/adapter/http/dto/response"
	"pricing_agent/internal/infrastructure/report"
	"pricing_agent/internal/usecase"
	"pricing_agent/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidCompetitorPricePayload = pkg.NewDomainErrorSimple("INVALID_COMPETITOR_PRICE", "Invalid competitor price payload", http.StatusBadRequest)
)

// MarketHandler handles competitor observations, market analysis and the
// decision audit trail.

type MarketHandler struct {
	market   usecase.IMarketUseCase
	pricing  usecase.IPricingUseCase
	products usecase.IProductUseCase
}

func NewMarketHandler(market usecase.IMarketUseCase, pricing usecase.IPricingUseCase, products usecase.IProductUseCase) *MarketHandler {
	return &MarketHandler{market: market, pricing: pricing, products: products}
}

// RecordCompetitorPrice appends one competitor observation for a product.
//
// @Summary      Record competitor price
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        product_id  path      string                          true  "Product ID"
// @Param        payload     body      request.CompetitorPriceRequest  true  "Observation"
// @Success      201         {object}  response.CompetitorPriceResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /market/{product_id}/prices [post]
func (h *MarketHandler) RecordCompetitorPrice(c *gin.Context) {
	productID := c.Param("product_id")

	var payload request.CompetitorPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompetitorPricePayload.HTTPStatus, errInvalidCompetitorPricePayload.ToHTTPError())
		return
	}

	created, err := h.market.RecordCompetitorPrice(c.Request.Context(), payload.ToInput(productID))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCompetitorPrice(created))
}

func (h *MarketHandler) ListCompetitorPrices(c *gin.Context) {
	prices, err := h.market.ListCompetitorPrices(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompetitorPrices(prices))
}

// GetMarketAnalysis runs a pricing decision for the product and optional customer.
// Each call persists a new decision.
//
// @Summary      Market analysis and price recommendation
// @Tags         market
// @Produce      json
// @Param        product_id   path      string  true   "Product ID"
// @Param        customer_id  query     string  false  "Customer ID"
// @Success      200          {object}  response.MarketAnalysisResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      500          {object}  pkg.HTTPError
// @Router       /market/analysis/{product_id} [get]
func (h *MarketHandler) GetMarketAnalysis(c *gin.Context) {
	productID := c.Param("product_id")
	customerID := c.Query("customer_id")
	log.Printf("[pricing][handler] analysis start product_id=%s customer_id=%s", productID, customerID)

	outcome, err := h.pricing.Analyze(c.Request.Context(), productID, customerID)
	if err != nil {
		log.Printf("[pricing][handler] analysis failed product_id=%s err=%v", productID, err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingOutcome(outcome))
}

func (h *MarketHandler) ListDecisions(c *gin.Context) {
	decisions, err := h.pricing.ListDecisions(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingDecisions(decisions))
}

// ExportDecisions downloads the decision audit trail of a product as XLSX.
//
// @Summary      Export pricing decisions
// @Tags         market
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        product_id  path  string  true  "Product ID"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /market/decisions/{product_id}/export [get]
func (h *MarketHandler) ExportDecisions(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("product_id")

	product, err := h.products.GetByID(ctx, productID)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	decisions, err := h.pricing.ListDecisions(ctx, product.ID)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var buf bytes.Buffer
	if err := report.WriteDecisionsXLSX(&buf, product, decisions); err != nil {
		log.Printf("[pricing][handler] export failed product_id=%s err=%v", product.ID, err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="pricing_decisions_%s.xlsx"`, product.ID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidCompetitorPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
