package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"
)

func TestNewCarriesStatusAndMessage(t *testing.T) {
	e := New(http.StatusNotFound, "job not found")
	if e.StatusCode() != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", e.StatusCode())
	}
	if e.Error() != "job not found" {
		t.Fatalf("message = %q", e.Error())
	}
	if got := e.Payload(); got != "job not found" {
		t.Fatalf("payload = %v, want plain string", got)
	}
}

func TestValidationKeepsMessageList(t *testing.T) {
	e := Validation([]string{"email is required"})
	if e.StatusCode() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", e.StatusCode())
	}
	got, ok := e.Payload().([]string)
	if !ok {
		t.Fatalf("payload should stay a list even with one entry, got %T", e.Payload())
	}
	if !reflect.DeepEqual(got, []string{"email is required"}) {
		t.Fatalf("payload = %v", got)
	}
}

func TestFromDefaultsToInternal(t *testing.T) {
	e := From(errors.New("boom"))
	if e.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", e.StatusCode())
	}
}

func TestFromUnwrapsClassifiedErrors(t *testing.T) {
	orig := New(http.StatusConflict, "email already exists")
	wrapped := fmt.Errorf("create user: %w", orig)
	e := From(wrapped)
	if e.StatusCode() != http.StatusConflict {
		t.Fatalf("status = %d, want 409", e.StatusCode())
	}
}

func TestFromNil(t *testing.T) {
	if From(nil) != nil {
		t.Fatal("From(nil) should be nil")
	}
}

func TestZeroStatusDefaultsTo500(t *testing.T) {
	e := &Error{Messages: []string{"x"}}
	if e.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", e.StatusCode())
	}
}
