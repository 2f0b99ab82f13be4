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
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
)

// CustomerHandler handles HTTP requests for customers and their sensitivity class.
//
// The class itself is produced upstream; this service only stores it.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// RegisterCustomer creates a customer, or returns the existing one for the same phone.
//
// @Summary      Register customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body      request.RegisterCustomerRequest  true  "Customer"
// @Success      200      {object}  response.CustomerResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) RegisterCustomer(c *gin.Context) {
	var payload request.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Register(c.Request.Context(), payload.Phone, payload.Name)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// ClassifyCustomer stores the sensitivity class reported by the upstream classifier.
//
// @Summary      Set customer sensitivity
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Customer ID"
// @Param        payload  body      request.ClassifyCustomerRequest  true  "Classification"
// @Success      200      {object}  response.CustomerResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /customers/{id}/type [put]
func (h *CustomerHandler) ClassifyCustomer(c *gin.Context) {
	id := c.Param("id")

	var payload request.ClassifyCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[customer][handler] invalid classification customer_id=%s err=%v", id, err)
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Classify(c.Request.Context(), id, payload.CustomerType, *payload.Confidence)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidCustomerInput), errors.Is(err, usecase.ErrInvalidCustomerType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
