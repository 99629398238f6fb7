package solver

import "testing"

func TestParseWordProblem_Addition(t *testing.T) {
	p := ParseWordProblem("Rafi has 12 mangoes and gets 5 more. How many does he have altogether?")
	if p == nil {
		t.Fatal("got nil, want a parse")
	}
	if p.Operation != "+" {
		t.Errorf("got operation %q, want %q", p.Operation, "+")
	}
	if p.Expression != "12 + 5" {
		t.Errorf("got expression %q, want %q", p.Expression, "12 + 5")
	}
	if p.Answer != "17" {
		t.Errorf("got answer %q, want %q", p.Answer, "17")
	}
	if p.Confidence != "high" {
		t.Errorf("got confidence %q, want %q", p.Confidence, "high")
	}
}

func TestParseWordProblem_SubtractionOrdersOperands(t *testing.T) {
	// The smaller number is always taken away from the larger one.
	p := ParseWordProblem("Mina had 8 pencils and lost 15 of them... wait, lost 3 of them.")
	if p == nil {
		t.Fatal("got nil, want a parse")
	}
	if p.Operation != "-" {
		t.Errorf("got operation %q, want %q", p.Operation, "-")
	}
	if p.Expression != "15 - 8" {
		t.Errorf("got expression %q, want %q", p.Expression, "15 - 8")
	}
}

func TestParseWordProblem_EachAsksRateIsDivision(t *testing.T) {
	p := ParseWordProblem("24 students split into 4 teams. How many students in each team?")
	if p == nil {
		t.Fatal("got nil, want a parse")
	}
	if p.Operation != "÷" {
		t.Errorf("got operation %q, want %q", p.Operation, "÷")
	}
	if p.Answer != "6" {
		t.Errorf("got answer %q, want %q", p.Answer, "6")
	}
}

func TestParseWordProblem_EachGivesRateIsMultiplication(t *testing.T) {
	p := ParseWordProblem("Each packet has 12 biscuits. There are 3 packets.")
	if p == nil {
		t.Fatal("got nil, want a parse")
	}
	if p.Operation != "×" {
		t.Errorf("got operation %q, want %q", p.Operation, "×")
	}
	if p.Answer != "36" {
		t.Errorf("got answer %q, want %q", p.Answer, "36")
	}
}

func TestParseWordProblem_DivisionByZero(t *testing.T) {
	if p := ParseWordProblem("10 sweets shared equally among 0 children"); p != nil {
		t.Errorf("got %+v for division by zero, want nil", p)
	}
}

func TestParseWordProblem_TooFewNumbers(t *testing.T) {
	if p := ParseWordProblem("Rafi has 12 mangoes and gets more."); p != nil {
		t.Errorf("got %+v for one number, want nil", p)
	}
}

func TestParseWordProblem_NoOperation(t *testing.T) {
	if p := ParseWordProblem("There are 4 cats and 3 dogs."); p != nil {
		t.Errorf("got %+v with no operation keyword, want nil", p)
	}
}

func TestParseWordProblem_ThreeNumbersMediumConfidence(t *testing.T) {
	p := ParseWordProblem("12 plus 5 plus 2")
	if p == nil {
		t.Fatal("got nil, want a parse")
	}
	if p.Confidence != "medium" {
		t.Errorf("got confidence %q, want %q", p.Confidence, "medium")
	}
	if p.Answer != "17" {
		t.Errorf("got answer %q, want %q", p.Answer, "17")
	}
}
