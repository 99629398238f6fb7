package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestFractionsSolver_FractionOfWhole(t *testing.T) {
	s := &FractionsSolver{}
	r := s.Attempt("What is 1/2 of 8?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Fractions {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Fractions)
	}
	if r.Answer != "4" {
		t.Errorf("got answer %q, want %q", r.Answer, "4")
	}
	if r.Steps[0].Text != "1/2 means 1 out of 2 equal parts." {
		t.Errorf("got step text %q", r.Steps[0].Text)
	}
}

func TestFractionsSolver_FractionOfNotDivisible(t *testing.T) {
	s := &FractionsSolver{}
	r := s.Attempt("3/4 of 10")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "7.5" {
		t.Errorf("got answer %q, want %q", r.Answer, "7.5")
	}
}

func TestFractionsSolver_ZeroDenominator(t *testing.T) {
	s := &FractionsSolver{}
	if r := s.Attempt("1/0 of 8"); r != nil {
		t.Errorf("got %+v for zero denominator, want nil", r)
	}
}

func TestFractionsSolver_SameDenominatorAdd(t *testing.T) {
	s := &FractionsSolver{}
	r := s.Attempt("1/4 + 2/4")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3/4" {
		t.Errorf("got answer %q, want %q", r.Answer, "3/4")
	}
	if r.Steps[1].Title != "Add numerators" {
		t.Errorf("got step title %q, want %q", r.Steps[1].Title, "Add numerators")
	}
}

func TestFractionsSolver_AddSimplifiesToWhole(t *testing.T) {
	s := &FractionsSolver{}
	r := s.Attempt("1/2 + 1/2")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "1" {
		t.Errorf("got answer %q, want %q", r.Answer, "1")
	}
}

func TestFractionsSolver_SubtractSameDenominator(t *testing.T) {
	s := &FractionsSolver{}
	r := s.Attempt("3/4 - 1/4")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "1/2" {
		t.Errorf("got answer %q, want %q", r.Answer, "1/2")
	}
	if r.Steps[1].Title != "Subtract numerators" {
		t.Errorf("got step title %q, want %q", r.Steps[1].Title, "Subtract numerators")
	}
}

func TestFractionsSolver_DifferentDenominatorsDecline(t *testing.T) {
	// Unlike denominators are out of range for this rule.
	s := &FractionsSolver{}
	if r := s.Attempt("1/2 + 1/4"); r != nil {
		t.Errorf("got %+v for unlike denominators, want nil", r)
	}
}

func TestFractionsSolver_Compare(t *testing.T) {
	s := &FractionsSolver{}
	r := s.Attempt("Which is bigger, 3/4 or 1/2?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3/4 is greater than 1/2." {
		t.Errorf("got answer %q", r.Answer)
	}
	if r.Steps[0].Title != "Convert to decimals" {
		t.Errorf("got step title %q, want %q", r.Steps[0].Title, "Convert to decimals")
	}
}

func TestFractionsSolver_CompareEqual(t *testing.T) {
	s := &FractionsSolver{}
	r := s.Attempt("compare 2/4 and 1/2")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "2/4 and 1/2 are equal." {
		t.Errorf("got answer %q", r.Answer)
	}
}

func TestFractionsSolver_CompareNeedsKeyword(t *testing.T) {
	s := &FractionsSolver{}
	if r := s.Attempt("3/4 and 1/2"); r != nil {
		t.Errorf("got %+v without a comparison keyword, want nil", r)
	}
}

func TestSimplifyFraction(t *testing.T) {
	cases := []struct {
		num, den     int
		wantN, wantD int
	}{
		{2, 4, 1, 2},
		{3, 4, 3, 4},
		{4, 4, 1, 1},
		{6, 8, 3, 4},
		{0, 5, 0, 1},
	}
	for _, c := range cases {
		n, d := simplifyFraction(c.num, c.den)
		if n != c.wantN || d != c.wantD {
			t.Errorf("simplifyFraction(%d, %d) = %d/%d, want %d/%d", c.num, c.den, n, d, c.wantN, c.wantD)
		}
	}
}
