package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	if appErr.Error() != "INTERNAL_ERROR: dynamodb timeout" {
		t.Fatalf("unexpected error string %q", appErr.Error())
	}
	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	if simple.Error() != "QUOTE_NOT_FOUND: Quote not found" || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %v", simple)
	}

	got, ok := AsAppError(fmt.Errorf("handler: %w", simple))
	if !ok || got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected to extract app error, got %v", got)
	}
	if _, ok := AsAppError(cause); ok {
		t.Fatalf("plain errors are not app errors")
	}
}
