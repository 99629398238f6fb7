package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestPercentagesSolver_PercentOf(t *testing.T) {
	s := &PercentagesSolver{}
	r := s.Attempt("What is 25% of 80?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Percentages {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Percentages)
	}
	if r.Answer != "20" {
		t.Errorf("got answer %q, want %q", r.Answer, "20")
	}
	if r.Steps[0].Text != "25% means 25 out of 100." {
		t.Errorf("got step text %q", r.Steps[0].Text)
	}
}

func TestPercentagesSolver_PercentSpelled(t *testing.T) {
	s := &PercentagesSolver{}
	r := s.Attempt("Find 10 percent of 50")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "5" {
		t.Errorf("got answer %q, want %q", r.Answer, "5")
	}
}

func TestPercentagesSolver_FractionalResult(t *testing.T) {
	s := &PercentagesSolver{}
	r := s.Attempt("15% of 90")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "13.5" {
		t.Errorf("got answer %q, want %q", r.Answer, "13.5")
	}
}

func TestPercentagesSolver_WhatPercent(t *testing.T) {
	s := &PercentagesSolver{}
	r := s.Attempt("20 is what % of 80")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "25%" {
		t.Errorf("got answer %q, want %q", r.Answer, "25%")
	}
}

func TestPercentagesSolver_WhatPercentZeroWhole(t *testing.T) {
	s := &PercentagesSolver{}
	if r := s.Attempt("20 is what % of 0"); r != nil {
		t.Errorf("got %+v for zero whole, want nil", r)
	}
}

func TestPercentagesSolver_Increase(t *testing.T) {
	s := &PercentagesSolver{}
	r := s.Attempt("80 increased by 25%")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "100" {
		t.Errorf("got answer %q, want %q", r.Answer, "100")
	}
	if r.Steps[1].Title != "Apply the increased change" {
		t.Errorf("got step title %q", r.Steps[1].Title)
	}
}

func TestPercentagesSolver_Discount(t *testing.T) {
	s := &PercentagesSolver{}
	r := s.Attempt("100 taka discount by 20%")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "80" {
		t.Errorf("got answer %q, want %q", r.Answer, "80")
	}
	if r.Steps[1].Title != "Apply the discounted / decreased change" {
		t.Errorf("got step title %q", r.Steps[1].Title)
	}
}

func TestPercentagesSolver_NoMatch(t *testing.T) {
	s := &PercentagesSolver{}
	if r := s.Attempt("what is half of 10"); r != nil {
		t.Errorf("got %+v, want nil", r)
	}
}
