package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestFactorsMultiplesSolver_Factors(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	r := s.Attempt("What are the factors of 12?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.MultiplesFactors {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.MultiplesFactors)
	}
	if r.Answer != "1, 2, 3, 4, 6, 12" {
		t.Errorf("got answer %q, want %q", r.Answer, "1, 2, 3, 4, 6, 12")
	}
}

func TestFactorsMultiplesSolver_MultiplesDefaultCount(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	r := s.Attempt("multiples of 3")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3, 6, 9, 12, 15, 18, 21, 24, 27, 30" {
		t.Errorf("got answer %q", r.Answer)
	}
}

func TestFactorsMultiplesSolver_FirstNMultiples(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	r := s.Attempt("first 5 multiples of 4")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "4, 8, 12, 16, 20" {
		t.Errorf("got answer %q, want %q", r.Answer, "4, 8, 12, 16, 20")
	}
}

func TestFactorsMultiplesSolver_MultiplesCapped(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	r := s.Attempt("first 99 multiples of 2")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if got := r.Steps[2].Text; got != "First 20 multiples of 2: "+r.Answer+"." {
		t.Errorf("got step text %q, count should cap at 20", got)
	}
}

func TestFactorsMultiplesSolver_LCM(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	r := s.Attempt("LCM of 4 and 6")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "12" {
		t.Errorf("got answer %q, want %q", r.Answer, "12")
	}
}

func TestFactorsMultiplesSolver_LCMSpelled(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	r := s.Attempt("least common multiple of 3 and 5")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "15" {
		t.Errorf("got answer %q, want %q", r.Answer, "15")
	}
}

func TestFactorsMultiplesSolver_LCMBothZero(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	if r := s.Attempt("LCM of 0 and 0"); r != nil {
		t.Errorf("got %+v for LCM of 0 and 0, want nil", r)
	}
}

func TestFactorsMultiplesSolver_HCF(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	r := s.Attempt("HCF of 12 and 8")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "4" {
		t.Errorf("got answer %q, want %q", r.Answer, "4")
	}
}

func TestFactorsMultiplesSolver_PrimeYes(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	r := s.Attempt("Is 7 a prime number?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "Yes, 7 is a prime number." {
		t.Errorf("got answer %q", r.Answer)
	}
}

func TestFactorsMultiplesSolver_PrimeNo(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	r := s.Attempt("is 15 prime")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "No, 15 is not a prime number." {
		t.Errorf("got answer %q", r.Answer)
	}
	if r.Steps[2].Text != "No, 15 is not a prime. It divides by 3, so it's not prime." {
		t.Errorf("got step text %q", r.Steps[2].Text)
	}
}

func TestFactorsMultiplesSolver_NoMatch(t *testing.T) {
	s := &FactorsMultiplesSolver{}
	if r := s.Attempt("what is 2 + 2"); r != nil {
		t.Errorf("got %+v, want nil", r)
	}
}

func TestIsPrime(t *testing.T) {
	cases := []struct {
		n    int
		want bool
	}{
		{0, false}, {1, false}, {2, true}, {3, true}, {4, false},
		{17, true}, {25, false}, {29, true}, {91, false},
	}
	for _, c := range cases {
		if got := isPrime(c.n); got != c.want {
			t.Errorf("isPrime(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestGCDAndLCM(t *testing.T) {
	if got := gcd(12, 8); got != 4 {
		t.Errorf("gcd(12, 8) = %d, want 4", got)
	}
	if got := gcd(0, 5); got != 5 {
		t.Errorf("gcd(0, 5) = %d, want 5", got)
	}
	if got := lcm(4, 6); got != 12 {
		t.Errorf("lcm(4, 6) = %d, want 12", got)
	}
	if got := lcm(0, 3); got != 0 {
		t.Errorf("lcm(0, 3) = %d, want 0", got)
	}
}
