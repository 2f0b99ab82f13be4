package handlers

import (
	"errors"
	"log"
	"net/http"
	request "pricing_agent/internal/adapter/http/dto/request"
	response "pricing_agent/internal/adapter/http/dto/response"
	"pricing_agent/internal/usecase"
	"pricing_agent/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
)

// ProductHandler handles HTTP requests for the product catalog.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// CreateProduct registers a product with its current and floor price.
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateProductRequest  true  "Product"
// @Success      201      {object}  response.ProductResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[product][handler] invalid payload err=%v", err)
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.CreateProduct(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(product))
}

// GetProduct returns one product.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidProductInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFloorAboveCurrent):
		return pkg.NewDomainErrorSimple("FLOOR_ABOVE_CURRENT_PRICE", "Floor price cannot exceed current price", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
