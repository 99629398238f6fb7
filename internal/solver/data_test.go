package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestDataSolver_Mode(t *testing.T) {
	s := &DataSolver{}
	r := s.Attempt("What is the mode of 2, 4, 4, 6, 4, 8?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Data {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Data)
	}
	if r.Answer != "4" {
		t.Errorf("got answer %q, want %q", r.Answer, "4")
	}
	if r.Steps[2].Text != "The mode is 4 (appears 3 times)." {
		t.Errorf("got step text %q", r.Steps[2].Text)
	}
}

func TestDataSolver_MultiMode(t *testing.T) {
	// Ties list every mode in ascending order.
	s := &DataSolver{}
	r := s.Attempt("mode of 1, 1, 2, 2, 3")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "1, 2" {
		t.Errorf("got answer %q, want %q", r.Answer, "1, 2")
	}
}

func TestDataSolver_Range(t *testing.T) {
	s := &DataSolver{}
	r := s.Attempt("Find the range of 3, 7, 2, 9, 5")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "7" {
		t.Errorf("got answer %q, want %q", r.Answer, "7")
	}
	if r.Steps[1].Text != "Highest: 9. Lowest: 2." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}

func TestDataSolver_TooFewNumbers(t *testing.T) {
	s := &DataSolver{}
	if r := s.Attempt("mode of 5"); r != nil {
		t.Errorf("got %+v for one number, want nil", r)
	}
}

func TestDataSolver_NoMatch(t *testing.T) {
	s := &DataSolver{}
	if r := s.Attempt("what is the sum of 3 and 4"); r != nil {
		t.Errorf("got %+v, want nil", r)
	}
}
