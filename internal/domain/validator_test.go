package domain

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"10.0.0.1":     "10.0.0.1",
		"10.0.0.1x":    "10.0.0.1",
		" 10.0.0.1 ":   "10.0.0.1",
		"10.0.0":       "",
		"10.0.0.1.":    "",
		"ip=10.a0.0.1": "10.0.0.1",
		"":             "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateAcceptsDottedQuad(t *testing.T) {
	v, err := NewIPValidator("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	ip, err := v.Validate("10.0.0.1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ip != "10.0.0.1" {
		t.Fatalf("unexpected ip: %q", ip)
	}
}

func TestValidateRejectsWrongDotCount(t *testing.T) {
	v, _ := NewIPValidator("")

	_, err := v.Validate("10.0.0")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateChecksPatternAfterSanitizing(t *testing.T) {
	v, _ := NewIPValidator("")

	ip, err := v.Validate("10.0.0.1x")
	if err != nil {
		t.Fatalf("expected sanitized ip to pass, got %v", err)
	}
	if ip != "10.0.0.1" {
		t.Fatalf("unexpected ip: %q", ip)
	}

	_, err = v.Validate("10.0.0.300")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected out of range octet to fail the pattern, got %v", err)
	}
}

func TestValidatorAnchorsConfiguredPattern(t *testing.T) {
	v, err := NewIPValidator(`10\.\d+\.\d+\.\d+`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v.Matches("110.0.0.1") {
		t.Fatal("expected pattern to match the whole input only")
	}
	if !v.Matches("10.1.2.3") {
		t.Fatal("expected 10.1.2.3 to match")
	}
}

func TestNewIPValidatorRejectsBadPattern(t *testing.T) {
	if _, err := NewIPValidator("("); err == nil {
		t.Fatal("expected compile error")
	}
}
