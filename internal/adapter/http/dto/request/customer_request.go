package request

import (
	"sync"

	"pricing_agent/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type RegisterCustomerRequest struct {
	Phone string `json:"phone" binding:"required"`
	Name  string `json:"name"`
}

// ClassifyCustomerRequest carries the output of the upstream sensitivity classifier.
type ClassifyCustomerRequest struct {
	CustomerType string   `json:"customer_type" binding:"required,customer_type"`
	Confidence   *float64 `json:"confidence" binding:"required,gte=0,lte=1"`
}

var registerOnce sync.Once

// RegisterValidations installs the custom binding tags used by the request DTOs
// on gin's validator engine.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("customer_type", validateCustomerType)
	})
}

func validateCustomerType(fl validator.FieldLevel) bool {
	_, ok := entities.ParseCustomerType(fl.Field().String())
	return ok
}
