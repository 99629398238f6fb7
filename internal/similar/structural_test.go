package similar

import (
	"strings"
	"testing"
)

func TestStructural_Valid(t *testing.T) {
	v := &StructuralValidator{}
	q := &Question{Text: "What is 14 + 23?"}
	if err := v.Validate(q, GenerateInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructural_Empty(t *testing.T) {
	v := &StructuralValidator{}
	q := &Question{Text: "   "}
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for empty text")
	}
	if !err.Retryable {
		t.Error("empty text should be retryable")
	}
}

func TestStructural_TooLong(t *testing.T) {
	v := &StructuralValidator{}
	q := &Question{Text: "What is " + strings.Repeat("7", 500) + "?"}
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for over-length text")
	}
	if !strings.Contains(err.Message, "500") {
		t.Errorf("message should name the bound, got %q", err.Message)
	}
}

func TestStructural_NoNumbers(t *testing.T) {
	v := &StructuralValidator{}
	q := &Question{Text: "What is addition?"}
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for text without numbers")
	}
	if !err.Retryable {
		t.Error("missing numbers should be retryable")
	}
}
