package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestAddSubSolver_BareExpression(t *testing.T) {
	s := &AddSubSolver{}
	r := s.Attempt("34 + 27")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Addition {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Addition)
	}
	if r.Answer != "61" {
		t.Errorf("got answer %q, want %q", r.Answer, "61")
	}
	if len(r.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(r.Steps))
	}
	if r.Steps[1].Title != "Count on" {
		t.Errorf("got step title %q, want %q", r.Steps[1].Title, "Count on")
	}
}

func TestAddSubSolver_WrappedQuestion(t *testing.T) {
	s := &AddSubSolver{}
	r := s.Attempt("What is 90 - 45?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Subtraction {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Subtraction)
	}
	if r.Answer != "45" {
		t.Errorf("got answer %q, want %q", r.Answer, "45")
	}
	if r.SmallerExample != "Smaller example: 7 - 2 = 5" {
		t.Errorf("got smaller example %q", r.SmallerExample)
	}
}

func TestAddSubSolver_TrailingEquals(t *testing.T) {
	s := &AddSubSolver{}
	r := s.Attempt("12 + 5 = ?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "17" {
		t.Errorf("got answer %q, want %q", r.Answer, "17")
	}
}

func TestAddSubSolver_NegativeResult(t *testing.T) {
	s := &AddSubSolver{}
	r := s.Attempt("5 - 9")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "-4" {
		t.Errorf("got answer %q, want %q", r.Answer, "-4")
	}
}

func TestAddSubSolver_DeclinesFractionContext(t *testing.T) {
	s := &AddSubSolver{}
	if r := s.Attempt("1/2 + 1/4"); r != nil {
		t.Errorf("got %+v for fraction expression, want nil", r)
	}
	if r := s.Attempt("add half of 10 + 2"); r != nil {
		t.Errorf("got %+v for fraction wording, want nil", r)
	}
}

func TestAddSubSolver_DeclinesDecimals(t *testing.T) {
	s := &AddSubSolver{}
	if r := s.Attempt("3.5 + 1.2"); r != nil {
		t.Errorf("got %+v for decimal expression, want nil", r)
	}
}

func TestAddSubSolver_DeclinesMixedMulDiv(t *testing.T) {
	s := &AddSubSolver{}
	if r := s.Attempt("2 + 3 x 4"); r != nil {
		t.Errorf("got %+v with multiplication present, want nil", r)
	}
}

func TestMulDivSolver_Multiplication(t *testing.T) {
	s := &MulDivSolver{}
	r := s.Attempt("What is 6 x 7?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Multiplication {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Multiplication)
	}
	if r.Answer != "42" {
		t.Errorf("got answer %q, want %q", r.Answer, "42")
	}
	if r.Steps[0].Text != "6 × 7 means 6 groups of 7." {
		t.Errorf("got step text %q", r.Steps[0].Text)
	}
}

func TestMulDivSolver_ExactDivision(t *testing.T) {
	s := &MulDivSolver{}
	r := s.Attempt("56 ÷ 8")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Division {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Division)
	}
	if r.Answer != "7" {
		t.Errorf("got answer %q, want %q", r.Answer, "7")
	}
}

func TestMulDivSolver_RemainderDivision(t *testing.T) {
	s := &MulDivSolver{}
	r := s.Attempt("17 / 5")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3 remainder 2" {
		t.Errorf("got answer %q, want %q", r.Answer, "3 remainder 2")
	}
	if r.Steps[2].Text != "Quotient: 3, Remainder: 2." {
		t.Errorf("got step text %q", r.Steps[2].Text)
	}
}

func TestMulDivSolver_DivisionByZero(t *testing.T) {
	s := &MulDivSolver{}
	r := s.Attempt("9 ÷ 0")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "Cannot divide by zero." {
		t.Errorf("got answer %q, want %q", r.Answer, "Cannot divide by zero.")
	}
	if r.Steps[0].Title != "Error" {
		t.Errorf("got step title %q, want %q", r.Steps[0].Title, "Error")
	}
}

func TestMulDivSolver_DeclinesFractionCompare(t *testing.T) {
	s := &MulDivSolver{}
	if r := s.Attempt("compare 3/4 and 1/2"); r != nil {
		t.Errorf("got %+v for fraction comparison, want nil", r)
	}
}

func TestMulDivSolver_NoExpression(t *testing.T) {
	s := &MulDivSolver{}
	if r := s.Attempt("what shape has three sides"); r != nil {
		t.Errorf("got %+v, want nil", r)
	}
}
