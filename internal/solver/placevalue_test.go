package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestPlaceValueSolver_DigitValue(t *testing.T) {
	s := &PlaceValueSolver{}
	r := s.Attempt("What is the value of 7 in 472?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.PlaceValue {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.PlaceValue)
	}
	if r.Answer != "70" {
		t.Errorf("got answer %q, want %q", r.Answer, "70")
	}
	if r.Steps[1].Text != "Counting from the right: 7 is in the tens place." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
	if r.Steps[2].Text != "7 × 10 = 70." {
		t.Errorf("got step text %q", r.Steps[2].Text)
	}
}

func TestPlaceValueSolver_RepeatedDigitUsesRightmost(t *testing.T) {
	s := &PlaceValueSolver{}
	r := s.Attempt("value of 5 in 5511")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "500" {
		t.Errorf("got answer %q, want %q", r.Answer, "500")
	}
}

func TestPlaceValueSolver_DigitAbsent(t *testing.T) {
	s := &PlaceValueSolver{}
	if r := s.Attempt("value of 9 in 472"); r != nil {
		t.Errorf("got %+v for absent digit, want nil", r)
	}
}

func TestPlaceValueSolver_ExpandedForm(t *testing.T) {
	s := &PlaceValueSolver{}
	r := s.Attempt("Write 345 in expanded form")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "300 + 40 + 5" {
		t.Errorf("got answer %q, want %q", r.Answer, "300 + 40 + 5")
	}
	if r.Steps[2].Text != "345 = 300 + 40 + 5." {
		t.Errorf("got step text %q", r.Steps[2].Text)
	}
}

func TestPlaceValueSolver_ExpandVerbForm(t *testing.T) {
	s := &PlaceValueSolver{}
	r := s.Attempt("expand 507")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "500 + 7" {
		t.Errorf("got answer %q, want %q", r.Answer, "500 + 7")
	}
}

func TestExpandedForm(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{345, "300 + 40 + 5"},
		{507, "500 + 7"},
		{1000, "1000"},
		{0, "0"},
		{45, "40 + 5"},
	}
	for _, c := range cases {
		if got := expandedForm(c.n); got != c.want {
			t.Errorf("expandedForm(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestPlaceValueSolver_BeyondNamedPlaces(t *testing.T) {
	// Positions beyond the named places read "unknown" but still compute.
	s := &PlaceValueSolver{}
	r := s.Attempt("value of 7 in 7000000")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "7000000" {
		t.Errorf("got answer %q, want %q", r.Answer, "7000000")
	}
	if r.Steps[1].Text != "Counting from the right: 7 is in the unknown place." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}
