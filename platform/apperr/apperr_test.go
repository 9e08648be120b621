package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetKind_FindsWrappedError(t *testing.T) {
	base := Application("Unknown location", http.StatusBadRequest)
	wrapped := fmt.Errorf("submit: %w", base)

	if got := GetKind(wrapped); got != KindApplication {
		t.Fatalf("expected KindApplication, got %v", got)
	}
	if got := MessageOf(wrapped); got != "Unknown location" {
		t.Fatalf("expected message %q, got %q", "Unknown location", got)
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("expected plain errors to be KindUnknown")
	}
}

func TestTransport_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Transport("execute request", cause).WithOp("predict")

	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the cause")
	}
	if got := err.Error(); got != "predict: execute request: connection refused" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("empty"), http.StatusBadRequest},
		{Application("Location not found", http.StatusNotFound), http.StatusNotFound},
		{Application("weird", http.StatusMultipleChoices), http.StatusBadGateway},
		{Transport("boom", nil), http.StatusBadGateway},
		{Internal("bug"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.err.Kind, tc.want, got)
		}
	}
}
