package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestRatioSolver_DivideInRatio(t *testing.T) {
	s := &RatioSolver{}
	r := s.Attempt("Divide 20 in ratio 2:3")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Ratio {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Ratio)
	}
	if r.Answer != "8 and 12" {
		t.Errorf("got answer %q, want %q", r.Answer, "8 and 12")
	}
	if r.Steps[0].Text != "Ratio 2:3 means 5 equal parts in total." {
		t.Errorf("got step text %q", r.Steps[0].Text)
	}
}

func TestRatioSolver_DivideUnevenShares(t *testing.T) {
	s := &RatioSolver{}
	r := s.Attempt("divide 10 into ratio 1:3")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "2.5 and 7.5" {
		t.Errorf("got answer %q, want %q", r.Answer, "2.5 and 7.5")
	}
}

func TestRatioSolver_SimplifyColonForm(t *testing.T) {
	s := &RatioSolver{}
	r := s.Attempt("Simplify 4:6")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "2:3" {
		t.Errorf("got answer %q, want %q", r.Answer, "2:3")
	}
}

func TestRatioSolver_SimplifySpelledForm(t *testing.T) {
	s := &RatioSolver{}
	r := s.Attempt("What is the ratio of 12 to 8?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3:2" {
		t.Errorf("got answer %q, want %q", r.Answer, "3:2")
	}
}

func TestRatioSolver_Unitary(t *testing.T) {
	s := &RatioSolver{}
	r := s.Attempt("If 3 pens cost 12, what does 7 cost?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "28" {
		t.Errorf("got answer %q, want %q", r.Answer, "28")
	}
	if r.Steps[0].Text != "If 3 items cost 12, then 1 item costs 12 ÷ 3 = 4." {
		t.Errorf("got step text %q", r.Steps[0].Text)
	}
}

func TestRatioSolver_ZeroParts(t *testing.T) {
	s := &RatioSolver{}
	if r := s.Attempt("divide 20 in ratio 0:0"); r != nil {
		t.Errorf("got %+v for 0:0 ratio, want nil", r)
	}
}

func TestRatioSolver_NoMatch(t *testing.T) {
	s := &RatioSolver{}
	if r := s.Attempt("what is 5 plus 5"); r != nil {
		t.Errorf("got %+v, want nil", r)
	}
}
