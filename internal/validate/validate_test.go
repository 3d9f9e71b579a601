package validate

import (
	"net/http"
	"strings"
	"testing"
)

type sampleBody struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required,oneof=User Company_HR"`
	Mobile    string `json:"mobileNumber" validate:"omitempty,e164"`
}

func TestCheckPassesValidSection(t *testing.T) {
	body := sampleBody{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Role:      "User",
		Mobile:    "+201234567890",
	}
	if err := Check(body); err != nil {
		t.Fatalf("valid section rejected: %v", err)
	}
}

func TestCheckCollectsAllViolations(t *testing.T) {
	err := Check(sampleBody{})
	if err == nil {
		t.Fatal("empty section should fail validation")
	}
	if err.StatusCode() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", err.StatusCode())
	}
	msgs, ok := err.Payload().([]string)
	if !ok {
		t.Fatalf("payload should be a message list, got %T", err.Payload())
	}
	// Three required fields are missing; all must be reported, in field order.
	if len(msgs) != 3 {
		t.Fatalf("got %d messages %v, want 3", len(msgs), msgs)
	}
	if msgs[0] != "firstName is required" {
		t.Fatalf("first message = %q", msgs[0])
	}
	if msgs[1] != "email is required" {
		t.Fatalf("second message = %q", msgs[1])
	}
	if msgs[2] != "role is required" {
		t.Fatalf("third message = %q", msgs[2])
	}
}

func TestCheckUsesWireFieldNames(t *testing.T) {
	err := Check(sampleBody{FirstName: "Jane", Email: "nope", Role: "Admin", Mobile: "12345"})
	if err == nil {
		t.Fatal("expected violations")
	}
	msgs := err.Payload().([]string)
	joined := strings.Join(msgs, "\n")
	for _, want := range []string{
		"email must be a valid email address",
		"role must be one of: User, Company_HR",
		"mobileNumber must be a phone number in international format",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing message %q in %v", want, msgs)
		}
	}
}
