package curriculum

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/engine"
)

func mustPolicy(t *testing.T, classLevel int) *Policy {
	t.Helper()
	p, err := Load("nctb", classLevel)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p == nil {
		t.Fatalf("no nctb profile for class %d", classLevel)
	}
	return p
}

func solveCheck(t *testing.T, question string, grade int) Check {
	t.Helper()
	result := engine.Solve(engine.Question{Text: question, Grade: grade})
	return CheckFromResult(question, result)
}

func TestAdviseNilPolicy(t *testing.T) {
	c := Check{Question: "What is 1/2 of 8?", Topic: "fractions"}
	if note := Advise(nil, c); note != "" {
		t.Errorf("nil policy should advise nothing, got %q", note)
	}
}

func TestAdviseInScopeQuestion(t *testing.T) {
	cases := []struct {
		question string
		grade    int
	}{
		{"What is 7 + 5?", 1},
		{"What is 4000 + 2500?", 5},
		{"What is 6 x 7?", 3},
	}
	for _, c := range cases {
		p := mustPolicy(t, c.grade)
		if note := Advise(p, solveCheck(t, c.question, c.grade)); note != "" {
			t.Errorf("%q class %d: expected no note, got %q", c.question, c.grade, note)
		}
	}
}

func TestAdviseFractionsOutOfScope(t *testing.T) {
	p := mustPolicy(t, 1)
	note := Advise(p, solveCheck(t, "What is 1/2 of 8?", 1))
	if note != "Fractions are out of scope for this class." {
		t.Errorf("got %q", note)
	}
}

func TestAdviseVisualFractionList(t *testing.T) {
	p := mustPolicy(t, 3)

	note := Advise(p, solveCheck(t, "What is 5/7 of 14?", 3))
	if note != "Class 3 uses simple visual fractions only." {
		t.Errorf("got %q", note)
	}

	if note := Advise(p, solveCheck(t, "What is 1/2 of 8?", 3)); note != "" {
		t.Errorf("allowed visual fraction should pass, got %q", note)
	}
}

func TestAdviseDecimalsOutOfScope(t *testing.T) {
	p := mustPolicy(t, 2)
	note := Advise(p, solveCheck(t, "What is 3.5 + 1.2?", 2))
	if note != "Decimals are out of scope for this class." {
		t.Errorf("got %q", note)
	}
}

func TestAdviseDecimalsAllowedForCurrency(t *testing.T) {
	p := mustPolicy(t, 2)
	c := Check{Question: "Add 3.50 taka and 1.20 taka.", Topic: "currency"}
	if note := Advise(p, c); note != "" {
		t.Errorf("currency questions may use decimals, got %q", note)
	}
}

func TestAdviseTopicOutOfScope(t *testing.T) {
	p := mustPolicy(t, 1)
	note := Advise(p, solveCheck(t, "What is 6 x 7?", 1))
	if note != "This topic is outside the current class syllabus." {
		t.Errorf("got %q", note)
	}
}

func TestAdviseMaxNumberExceeded(t *testing.T) {
	p := mustPolicy(t, 1)

	// Operands stay under 100 but the sum crosses it, so the limit is
	// caught through the answer, not the literals.
	note := Advise(p, solveCheck(t, "What is 90 + 30?", 1))
	want := "Numbers above 100 come later. This is advanced for class 1."
	if note != want {
		t.Errorf("got %q, want %q", note, want)
	}
}

func TestAdviseNegativeSubtraction(t *testing.T) {
	p := mustPolicy(t, 1)
	note := Advise(p, solveCheck(t, "What is 5 - 8?", 1))
	want := "We cannot subtract to get a negative result. Try taking the smaller number from the bigger one."
	if note != want {
		t.Errorf("got %q, want %q", note, want)
	}
}

func TestAdviseAdditionEnforcedGlobally(t *testing.T) {
	p := mustPolicy(t, 1)
	note := Advise(p, solveCheck(t, "What is 18 + 9?", 1))
	if note != "This sum is above the current topic limit." {
		t.Errorf("got %q", note)
	}
}

func TestAdviseAdditionLimitNotGlobal(t *testing.T) {
	// Class 2 sets max_sum 100 without global enforcement, so a bigger
	// sum passes.
	p := mustPolicy(t, 2)
	if note := Advise(p, solveCheck(t, "What is 80 + 90?", 2)); note != "" {
		t.Errorf("expected no note, got %q", note)
	}
}

func TestAdviseCountingRange(t *testing.T) {
	p := mustPolicy(t, 2)
	note := Advise(p, solveCheck(t, "Count by 100s from 100 to 500.", 2))
	if note != "Counting is out of allowed range." {
		t.Errorf("got %q", note)
	}
}

func TestAdviseOrdinalRange(t *testing.T) {
	p := mustPolicy(t, 1)

	c := Check{Question: "Who is 15th in a line of 20 children?", Topic: "ordinal_numbers"}
	if note := Advise(p, c); note != "Ordinal position is out of allowed range." {
		t.Errorf("got %q", note)
	}

	// Only the position itself is range checked, not the line length.
	c = Check{Question: "Who is 5th in a line of 20 children?", Topic: "ordinal_numbers"}
	if note := Advise(p, c); note != "" {
		t.Errorf("expected no note for position 5, got %q", note)
	}
}

func TestAdviseTimesTableRange(t *testing.T) {
	p := mustPolicy(t, 2)
	note := Advise(p, solveCheck(t, "What is 15 x 3?", 2))
	want := "Class 2 practises the times tables from 1 to 10."
	if note != want {
		t.Errorf("got %q, want %q", note, want)
	}
}

func TestAdviseDivisionByZero(t *testing.T) {
	p := mustPolicy(t, 2)
	note := Advise(p, solveCheck(t, "What is 8 / 0?", 2))
	if note != "Division by zero is impossible." {
		t.Errorf("got %q", note)
	}
}

func TestAdviseMaxNumberBeatsAdditionLimit(t *testing.T) {
	// 90 + 30 breaks both the class 1 number cap and the addition sum
	// cap; the number cap is reported because it is checked first.
	p := mustPolicy(t, 1)
	note := Advise(p, solveCheck(t, "What is 90 + 30?", 1))
	if note == "This sum is above the current topic limit." {
		t.Error("number cap should be reported ahead of the sum cap")
	}
}

func TestCheckFromResult(t *testing.T) {
	c := solveCheck(t, "What is 34 + 27?", 2)
	if c.Topic != "addition" || c.Op != "+" {
		t.Errorf("got topic %q op %q, want addition +", c.Topic, c.Op)
	}
	if c.A == nil || c.B == nil || *c.A != 34 || *c.B != 27 {
		t.Errorf("got operands %v %v, want 34 27", c.A, c.B)
	}
	if c.Answer == nil || *c.Answer != 61 {
		t.Errorf("got answer %v, want 61", c.Answer)
	}
}

func TestCheckFromResultNormalizesOperators(t *testing.T) {
	cases := []struct {
		question string
		wantOp   string
	}{
		{"What is 6 x 7?", "x"},
		{"What is 6 * 7?", "x"},
		{"What is 20 ÷ 4?", "/"},
		{"What is 20 / 4?", "/"},
	}
	for _, c := range cases {
		check := solveCheck(t, c.question, 3)
		if check.Op != c.wantOp {
			t.Errorf("%q: got op %q, want %q", c.question, check.Op, c.wantOp)
		}
	}
}

func TestCheckFromResultNonIntegerAnswer(t *testing.T) {
	c := solveCheck(t, "What is 8 / 0?", 2)
	if c.Answer != nil {
		t.Errorf("divide-by-zero answer should not parse as an integer, got %v", c.Answer)
	}
	if c.Op != "/" || c.B == nil || *c.B != 0 {
		t.Errorf("got op %q b %v, want / 0", c.Op, c.B)
	}
}
