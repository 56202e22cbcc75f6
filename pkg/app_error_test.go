package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb: connection refused")
	err := NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno.", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if err.Error() != "INTERNAL_ERROR: Ocorreu um erro interno.: dynamodb: connection refused" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	httpErr := err.ToHTTPError()
	if httpErr.Code != "INTERNAL_ERROR" || httpErr.Message != "Ocorreu um erro interno." {
		t.Fatalf("unexpected http error %+v", httpErr)
	}

	simple := NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Pedido não encontrado.", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error %+v", simple)
	}
	if simple.Error() != "QUOTE_REQUEST_NOT_FOUND: Pedido não encontrado." {
		t.Fatalf("unexpected message %q", simple.Error())
	}
}
