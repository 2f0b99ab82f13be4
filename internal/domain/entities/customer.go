package entities

import (
	"strings"
	"time"
)

// CustomerType is the sensitivity class assigned to a customer by the upstream classifier.
type CustomerType string

const (
	CustomerTypePriceSensitive   CustomerType = "price_sensitive"
	CustomerTypeQualitySensitive CustomerType = "quality_sensitive"
	CustomerTypeUnknown          CustomerType = "unknown"
)

func (t CustomerType) Valid() bool {
	switch t {
	case CustomerTypePriceSensitive, CustomerTypeQualitySensitive, CustomerTypeUnknown:
		return true
	}
	return false
}

// ParseCustomerType accepts the wire value case-insensitively.
func ParseCustomerType(v string) (CustomerType, bool) {
	t := CustomerType(strings.ToLower(strings.TrimSpace(v)))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// Customer is a buyer known to the business.
//
// Storage model (DynamoDB):
//   - customers PK: id
//   - customer_phones PK: phone, holding the owning customer_id
//
// CustomerType and Confidence are written by the upstream classifier; the
// pricing core only reads them.
type Customer struct {
	ID              string       `json:"id"`
	Phone           string       `json:"phone"`
	Name            string       `json:"name,omitempty"`
	CustomerType    CustomerType `json:"customer_type"`
	Confidence      float64      `json:"confidence"`
	CreatedAt       time.Time    `json:"created_at"`
	LastInteraction time.Time    `json:"last_interaction"`
}
