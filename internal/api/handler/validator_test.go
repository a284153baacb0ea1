package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/emsp/platform/internal/core/domain"
)

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{Username: "al", Email: "bad", Password: "pw1234"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "username must be at least 3 characters") {
		t.Fatalf("missing username message: %s", msg)
	}
	if !strings.Contains(msg, "email must be a valid email") {
		t.Fatalf("missing email message: %s", msg)
	}
}

func TestValidator_Accepts(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&registerRequest{Username: "alice", Email: "a@x.com", Password: "pw1234"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
