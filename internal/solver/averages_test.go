package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestAveragesSolver_WholeResult(t *testing.T) {
	s := &AveragesSolver{}
	r := s.Attempt("What is the average of 4, 6, 8?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Averages {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Averages)
	}
	if r.Answer != "6" {
		t.Errorf("got answer %q, want %q", r.Answer, "6")
	}
	if r.Steps[0].Text != "Add: 4 + 6 + 8 = 18." {
		t.Errorf("got step text %q", r.Steps[0].Text)
	}
}

func TestAveragesSolver_FractionalResult(t *testing.T) {
	s := &AveragesSolver{}
	r := s.Attempt("mean of 1, 2")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "1.5" {
		t.Errorf("got answer %q, want %q", r.Answer, "1.5")
	}
}

func TestAveragesSolver_SingleNumberDeclines(t *testing.T) {
	s := &AveragesSolver{}
	if r := s.Attempt("average of 5"); r != nil {
		t.Errorf("got %+v for one number, want nil", r)
	}
}

func TestAveragesSolver_NoKeyword(t *testing.T) {
	s := &AveragesSolver{}
	if r := s.Attempt("4, 6, 8"); r != nil {
		t.Errorf("got %+v without average keyword, want nil", r)
	}
}
