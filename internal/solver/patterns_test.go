package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestPatternsSolver_ArithmeticIncreasing(t *testing.T) {
	s := &PatternsSolver{}
	r := s.Attempt("What comes next: 2, 4, 6, 8, ___?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Patterns {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Patterns)
	}
	if r.Answer != "10" {
		t.Errorf("got answer %q, want %q", r.Answer, "10")
	}
	if r.Steps[1].Text != "Each number increases by 2." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}

func TestPatternsSolver_ArithmeticDecreasing(t *testing.T) {
	s := &PatternsSolver{}
	r := s.Attempt("20, 17, 14, 11, ?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "8" {
		t.Errorf("got answer %q, want %q", r.Answer, "8")
	}
	if r.Steps[2].Text != "After 11, we decrease by 3: 11 - 3 = 8." {
		t.Errorf("got step text %q", r.Steps[2].Text)
	}
}

func TestPatternsSolver_Geometric(t *testing.T) {
	s := &PatternsSolver{}
	r := s.Attempt("2, 4, 8, 16, ___")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "32" {
		t.Errorf("got answer %q, want %q", r.Answer, "32")
	}
	if r.Steps[1].Text != "Each number is multiplied by 2." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}

func TestPatternsSolver_NoPattern(t *testing.T) {
	s := &PatternsSolver{}
	if r := s.Attempt("1, 4, 9, 16"); r != nil {
		t.Errorf("got %+v for a square sequence, want nil", r)
	}
}

func TestPatternsSolver_TooFewNumbers(t *testing.T) {
	s := &PatternsSolver{}
	if r := s.Attempt("2, 4"); r != nil {
		t.Errorf("got %+v for two numbers, want nil", r)
	}
}

func TestFindPattern(t *testing.T) {
	kind, value, ok := findPattern([]int{3, 6, 9, 12})
	if !ok || kind != "arithmetic" || value != 3 {
		t.Errorf("got (%q, %v, %v), want (arithmetic, 3, true)", kind, value, ok)
	}
	kind, value, ok = findPattern([]int{3, 9, 27})
	if !ok || kind != "geometric" || value != 3 {
		t.Errorf("got (%q, %v, %v), want (geometric, 3, true)", kind, value, ok)
	}
	if _, _, ok := findPattern([]int{1, 2, 4, 7}); ok {
		t.Error("got ok for irregular sequence, want false")
	}
}
