package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestComparisonSolver_OperatorTrue(t *testing.T) {
	s := &ComparisonSolver{}
	r := s.Attempt("Is 7 > 4?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Comparison {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Comparison)
	}
	if r.Answer != "7 > 4 is True. 7 is greater than 4." {
		t.Errorf("got answer %q", r.Answer)
	}
}

func TestComparisonSolver_OperatorFalse(t *testing.T) {
	s := &ComparisonSolver{}
	r := s.Attempt("3 > 9")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3 > 9 is False. 3 is not greater than 9." {
		t.Errorf("got answer %q", r.Answer)
	}
	if r.Steps[1].Text != "9 is bigger than 3." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}

func TestComparisonSolver_Equals(t *testing.T) {
	s := &ComparisonSolver{}
	r := s.Attempt("5 = 5")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "5 equals 5." {
		t.Errorf("got answer %q", r.Answer)
	}
}

func TestComparisonSolver_NotEquals(t *testing.T) {
	s := &ComparisonSolver{}
	r := s.Attempt("5 == 6")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "5 does not equal 6." {
		t.Errorf("got answer %q", r.Answer)
	}
}

func TestComparisonSolver_Keyword(t *testing.T) {
	s := &ComparisonSolver{}
	r := s.Attempt("Which is bigger, 45 or 54?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "54 is greater than 45." {
		t.Errorf("got answer %q", r.Answer)
	}
	if r.Steps[1].Text != "Count up: 45 comes before 54 on the number line." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}

func TestComparisonSolver_Versus(t *testing.T) {
	s := &ComparisonSolver{}
	r := s.Attempt("12 vs 21")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "21 is greater than 12." {
		t.Errorf("got answer %q", r.Answer)
	}
	if len(r.Steps) != 1 {
		t.Errorf("got %d steps, want 1", len(r.Steps))
	}
}

func TestComparisonSolver_Between(t *testing.T) {
	s := &ComparisonSolver{}
	r := s.Attempt("What numbers are between 3 and 7?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "4, 5, 6" {
		t.Errorf("got answer %q, want %q", r.Answer, "4, 5, 6")
	}
}

func TestComparisonSolver_BetweenAdjacent(t *testing.T) {
	s := &ComparisonSolver{}
	r := s.Attempt("numbers between 4 and 5")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "no whole numbers" {
		t.Errorf("got answer %q, want %q", r.Answer, "no whole numbers")
	}
}

func TestComparisonSolver_NoMatch(t *testing.T) {
	s := &ComparisonSolver{}
	if r := s.Attempt("tell me a story"); r != nil {
		t.Errorf("got %+v, want nil", r)
	}
}
