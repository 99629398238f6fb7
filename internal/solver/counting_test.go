package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestCountingSolver_SkipCountWithRange(t *testing.T) {
	s := &CountingSolver{}
	r := s.Attempt("count by 2s from 0 to 20")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Counting {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Counting)
	}
	if r.Answer != "0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20" {
		t.Errorf("got answer %q", r.Answer)
	}
	if r.Steps[0].Title != "Skip counting by 2" {
		t.Errorf("got step title %q, want %q", r.Steps[0].Title, "Skip counting by 2")
	}
}

func TestCountingSolver_SkipCountDefaultRange(t *testing.T) {
	// No range given: ten terms starting at zero.
	s := &CountingSolver{}
	r := s.Attempt("skip count by 5")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "0, 5, 10, 15, 20, 25, 30, 35, 40, 45" {
		t.Errorf("got answer %q", r.Answer)
	}
}

func TestCountingSolver_SkipCountTooLong(t *testing.T) {
	s := &CountingSolver{}
	if r := s.Attempt("count by 1 from 0 to 100"); r != nil {
		t.Errorf("got %+v for a 100-term sequence, want nil", r)
	}
}

func TestCountingSolver_OrdinalWord(t *testing.T) {
	s := &CountingSolver{}
	r := s.Attempt("what does third mean")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3rd" {
		t.Errorf("got answer %q, want %q", r.Answer, "3rd")
	}
	if r.Steps[1].Text != "Third means position number 3." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}

func TestCountingSolver_OrdinalWordAsQuantifier(t *testing.T) {
	// "first 5 multiples" is a factors question, not an ordinal one.
	s := &CountingSolver{}
	if r := s.Attempt("first 5 multiples of 4"); r != nil {
		t.Errorf("got %+v for quantifier use, want nil", r)
	}
}

func TestCountingSolver_NumericOrdinal(t *testing.T) {
	s := &CountingSolver{}
	r := s.Attempt("what is the 4th position")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "4th" {
		t.Errorf("got answer %q, want %q", r.Answer, "4th")
	}
}

func TestCountingSolver_NumericOrdinalOutOfRange(t *testing.T) {
	s := &CountingSolver{}
	if r := s.Attempt("what is the 500th item"); r != nil {
		t.Errorf("got %+v for out-of-range ordinal, want nil", r)
	}
}

func TestOrdinalSuffix(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"},
		{100, "100th"}, {111, "111th"},
	}
	for _, c := range cases {
		if got := ordinalSuffix(c.n); got != c.want {
			t.Errorf("ordinalSuffix(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
