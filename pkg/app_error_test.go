package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
		if e.Error() != "PRODUCT_NOT_FOUND: Product not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "PRODUCT_NOT_FOUND" || body.Status != http.StatusNotFound {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
	})
}
