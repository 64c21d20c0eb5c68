package utils

import "testing"

type sampleForm struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Method  string `json:"method" validate:"omitempty,oneof=phone email text"`
	Message string `json:"message" validate:"required,min=10"`
}

func TestValidateReportsEveryViolatedField(t *testing.T) {
	errs := Validate(&sampleForm{
		Name:    "A",
		Email:   "not-an-email",
		Method:  "fax",
		Message: "too short",
	})

	if len(errs) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(errs), errs)
	}

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}

	// Errors are keyed by the JSON field names
	for _, field := range []string{"name", "email", "method", "message"} {
		if byField[field] == "" {
			t.Errorf("expected an error for field %q, got %v", field, byField)
		}
	}

	if byField["name"] != "name must be at least 2 characters" {
		t.Errorf("unexpected message for name: %q", byField["name"])
	}
	if byField["email"] != "email must be a valid email address" {
		t.Errorf("unexpected message for email: %q", byField["email"])
	}
}

func TestValidatePasses(t *testing.T) {
	errs := Validate(&sampleForm{
		Name:    "Maria Lopez",
		Email:   "maria@example.com",
		Method:  "email",
		Message: "I would like a quote for dental implants.",
	})
	if errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateRequired(t *testing.T) {
	errs := Validate(&sampleForm{})
	if len(errs) == 0 {
		t.Fatal("expected errors for empty form")
	}
	for _, e := range errs {
		if e.Message == "" {
			t.Errorf("field %q has an empty message", e.Field)
		}
	}
}
