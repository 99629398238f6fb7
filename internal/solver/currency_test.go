package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestCurrencySolver_HasBuysChange(t *testing.T) {
	s := &CurrencySolver{}
	r := s.Attempt("Sadia has 50 taka. She buys a pen for 15 taka. How much is left?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Currency {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Currency)
	}
	if r.Answer != "35 taka" {
		t.Errorf("got answer %q, want %q", r.Answer, "35 taka")
	}
	if r.Steps[2].Text != "50 - 15 = 35 taka." {
		t.Errorf("got step text %q", r.Steps[2].Text)
	}
}

func TestCurrencySolver_TwoAmountsAdd(t *testing.T) {
	s := &CurrencySolver{}
	r := s.Attempt("Rafi got 30 taka and 20 taka. What is the total?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "50 taka" {
		t.Errorf("got answer %q, want %q", r.Answer, "50 taka")
	}
	if r.Steps[0].Text != "We have 30 taka and 20 taka." {
		t.Errorf("got step text %q", r.Steps[0].Text)
	}
}

func TestCurrencySolver_SubtractClue(t *testing.T) {
	// Two marked amounts plus a remainder clue subtracts smaller from bigger.
	s := &CurrencySolver{}
	r := s.Attempt("I paid with 100 taka for a 65 taka book. How much change?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "35 taka" {
		t.Errorf("got answer %q, want %q", r.Answer, "35 taka")
	}
	if r.Steps[0].Title != "Starting amount" {
		t.Errorf("got step title %q, want %q", r.Steps[0].Title, "Starting amount")
	}
}

func TestCurrencySolver_DollarDetection(t *testing.T) {
	s := &CurrencySolver{}
	r := s.Attempt("Tom has 9 dollars and gets 6 dollars more. Total?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "15 dollar" {
		t.Errorf("got answer %q, want %q", r.Answer, "15 dollar")
	}
}

func TestCurrencySolver_SpentMoreThanOwned(t *testing.T) {
	// Spending more than the total cannot be a change question; without a
	// second marked amount the rule declines entirely.
	s := &CurrencySolver{}
	if r := s.Attempt("He had 10 taka and spent 25."); r != nil {
		t.Errorf("got %+v, want nil", r)
	}
}

func TestCurrencySolver_NoMatch(t *testing.T) {
	s := &CurrencySolver{}
	if r := s.Attempt("what is 5 plus 5"); r != nil {
		t.Errorf("got %+v, want nil", r)
	}
}
