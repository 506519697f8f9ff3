package utils

import (
	"strings"
	"testing"
)

type sampleInput struct {
	Email string `validate:"required,email"`
	Role  string `validate:"required,oneof=guest host admin"`
	Count int    `validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	if errs := ValidateStruct(&sampleInput{Email: "a@example.com", Role: "guest", Count: 2}); errs != nil {
		t.Fatalf("valid input rejected: %v", errs)
	}

	errs := ValidateStruct(&sampleInput{Email: "not-an-email", Role: "superuser"})
	if len(errs) != 3 {
		t.Fatalf("errs = %v, want 3 entries", errs)
	}
	if errs["Email"] != "Invalid email format" {
		t.Errorf("Email message = %q", errs["Email"])
	}
	if !strings.Contains(errs["Role"], "guest, host, admin") {
		t.Errorf("Role message = %q, want allowed values listed", errs["Role"])
	}
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	if out != "Email: Invalid email format" {
		t.Errorf("FormatValidationErrors = %q", out)
	}
}
