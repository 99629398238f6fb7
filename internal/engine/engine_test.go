package engine

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/classify"
	"github.com/kaisuddinahmed/mymath/internal/solver"
	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestSolve_FastPathAddition(t *testing.T) {
	res := Solve(Question{Text: "What is 12 + 5?", Grade: 1})
	if res.Topic != topicgraph.Addition {
		t.Errorf("got topic %q, want %q", res.Topic, topicgraph.Addition)
	}
	if res.Answer != "17" {
		t.Errorf("got answer %q, want %q", res.Answer, "17")
	}
	if res.SolverUsed != Deterministic {
		t.Errorf("got solver_used %q, want %q", res.SolverUsed, Deterministic)
	}
	if len(res.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(res.Steps))
	}
	if res.Steps[0].Title != "What we need to do" {
		t.Errorf("got first step title %q", res.Steps[0].Title)
	}
	if res.SmallerExample != "Smaller example: 5 + 2 = 7" {
		t.Errorf("got smaller example %q", res.SmallerExample)
	}
	if res.MinGradeForTopic != 1 || res.IsAboveGrade {
		t.Errorf("got min_grade=%d above=%v, want 1/false", res.MinGradeForTopic, res.IsAboveGrade)
	}
	if res.Template == "" {
		t.Error("template should never be empty")
	}
}

func TestSolve_TrimsInput(t *testing.T) {
	res := Solve(Question{Text: "   12 + 5   ", Grade: 2})
	if res.Answer != "17" {
		t.Errorf("got %q, want %q", res.Answer, "17")
	}
}

func TestSolve_DivisionByZeroIsAnAnswer(t *testing.T) {
	res := Solve(Question{Text: "12 ÷ 0", Grade: 3})
	if res.Topic != topicgraph.Division {
		t.Errorf("got topic %q, want %q", res.Topic, topicgraph.Division)
	}
	if res.Answer != "Cannot divide by zero." {
		t.Errorf("got answer %q", res.Answer)
	}
	if res.SolverUsed != Deterministic {
		t.Errorf("got solver_used %q, want %q", res.SolverUsed, Deterministic)
	}
	if len(res.Steps) != 1 || res.Steps[0].Title != "Error" {
		t.Errorf("got steps %+v, want single Error step", res.Steps)
	}
}

func TestSolve_RemainderDivision(t *testing.T) {
	res := Solve(Question{Text: "17 / 5", Grade: 3})
	if res.Answer != "3 remainder 2" {
		t.Errorf("got %q, want %q", res.Answer, "3 remainder 2")
	}
}

func TestSolve_FractionOfReachesFractions(t *testing.T) {
	res := Solve(Question{Text: "What is 1/2 of 8?", Grade: 3})
	if res.Topic != topicgraph.Fractions {
		t.Errorf("got topic %q, want %q", res.Topic, topicgraph.Fractions)
	}
	if res.Answer != "4" {
		t.Errorf("got answer %q, want %q", res.Answer, "4")
	}
	if res.SolverUsed != Deterministic {
		t.Errorf("got solver_used %q, want %q", res.SolverUsed, Deterministic)
	}
}

func TestSolve_AboveGradeStillAnswers(t *testing.T) {
	res := Solve(Question{Text: "What is 25% of 200?", Grade: 2})
	if res.Topic != topicgraph.Percentages {
		t.Fatalf("got topic %q, want %q", res.Topic, topicgraph.Percentages)
	}
	if res.Answer != "50" {
		t.Errorf("got answer %q, want %q", res.Answer, "50")
	}
	if !res.IsAboveGrade {
		t.Error("grade 2 percentages should be flagged above grade")
	}
	if res.MinGradeForTopic != 5 {
		t.Errorf("got min_grade %d, want 5", res.MinGradeForTopic)
	}
}

func TestSolve_WordProblemFallback(t *testing.T) {
	res := Solve(Question{Text: "Rima has 4 pens and 3 pencils. How many altogether?", Grade: 1})
	if res.SolverUsed != WordProblem {
		t.Fatalf("got solver_used %q, want %q", res.SolverUsed, WordProblem)
	}
	if res.Topic != topicgraph.Addition {
		t.Errorf("got topic %q, want %q", res.Topic, topicgraph.Addition)
	}
	if res.Answer != "7" {
		t.Errorf("got answer %q, want %q", res.Answer, "7")
	}
	if len(res.Steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(res.Steps))
	}
	if res.Steps[1].Text != "Numbers: 4, 3." {
		t.Errorf("got numbers step %q", res.Steps[1].Text)
	}
	if res.Steps[2].Text != "Operation: + (addition)." {
		t.Errorf("got operation step %q", res.Steps[2].Text)
	}
	if res.Steps[3].Text != "4 + 3 = 7." {
		t.Errorf("got calculate step %q", res.Steps[3].Text)
	}
	if res.SmallerExample != "Expression: 4 + 3 = 7" {
		t.Errorf("got smaller example %q", res.SmallerExample)
	}
	if res.MinGradeForTopic != 1 || res.IsAboveGrade {
		t.Errorf("word problems report min_grade 1, got %d/%v", res.MinGradeForTopic, res.IsAboveGrade)
	}
}

func TestSolve_UnsupportedKeepsTopicLabel(t *testing.T) {
	res := Solve(Question{Text: "What shape has six equal sides?", Grade: 2})
	if res.SolverUsed != Unsupported {
		t.Fatalf("got solver_used %q, want %q", res.SolverUsed, Unsupported)
	}
	if res.Topic != topicgraph.Geometry {
		t.Errorf("got topic %q, want %q", res.Topic, topicgraph.Geometry)
	}
	if res.Answer != "This question will be handled by our AI assistant." {
		t.Errorf("got answer %q", res.Answer)
	}
	if len(res.Steps) != 1 || res.Steps[0].Title != "AI-assisted explanation" {
		t.Errorf("got steps %+v", res.Steps)
	}
	if res.SmallerExample != "" {
		t.Errorf("got smaller example %q, want empty", res.SmallerExample)
	}
	if res.MinGradeForTopic != 3 || !res.IsAboveGrade {
		t.Errorf("geometry at grade 2: got min_grade=%d above=%v", res.MinGradeForTopic, res.IsAboveGrade)
	}
}

func TestSolve_UnknownLabelsGeneral(t *testing.T) {
	res := Solve(Question{Text: "hello there friend", Grade: 3})
	if res.Topic != topicgraph.General {
		t.Errorf("got topic %q, want %q", res.Topic, topicgraph.General)
	}
	if res.SolverUsed != Unsupported {
		t.Errorf("got solver_used %q, want %q", res.SolverUsed, Unsupported)
	}
	if res.MinGradeForTopic != 1 || res.IsAboveGrade {
		t.Errorf("got min_grade=%d above=%v, want 1/false", res.MinGradeForTopic, res.IsAboveGrade)
	}
	if res.Template == "" {
		t.Error("unknown questions still get a display template")
	}
}

func TestSolve_NumericFieldsAreDeterministic(t *testing.T) {
	// Template is random cosmetic variety; everything else must repeat
	// exactly.
	q := Question{Text: "What is 25% of 200?", Grade: 4}
	first := Solve(q)
	for i := 0; i < 5; i++ {
		got := Solve(q)
		if got.Answer != first.Answer || got.Topic != first.Topic {
			t.Fatalf("call %d: got %q/%q, want %q/%q", i, got.Topic, got.Answer, first.Topic, first.Answer)
		}
		if len(got.Steps) != len(first.Steps) {
			t.Fatalf("call %d: got %d steps, want %d", i, len(got.Steps), len(first.Steps))
		}
		for j := range got.Steps {
			if got.Steps[j] != first.Steps[j] {
				t.Fatalf("call %d step %d: got %+v, want %+v", i, j, got.Steps[j], first.Steps[j])
			}
		}
	}
}

type panicSolver struct{}

func (panicSolver) Name() string { return "boom" }

func (panicSolver) Attempt(string) *solver.TopicResult { panic("bad index") }

type recordSink struct {
	solverName string
	question   string
	recovered  any
	calls      int
}

func (s *recordSink) SolverFault(solverName, question string, recovered any) {
	s.solverName, s.question, s.recovered = solverName, question, recovered
	s.calls++
}

func TestSolve_RecoversSolverPanic(t *testing.T) {
	sink := &recordSink{}
	e := &Engine{
		solvers: []solver.Solver{panicSolver{}, &solver.FractionsSolver{}},
		rules:   classify.DefaultRules(),
		faults:  sink,
	}

	res := e.Solve(Question{Text: "What is 1/2 of 8?", Grade: 3})
	if res.Answer != "4" {
		t.Errorf("chain should continue past the fault: got %q, want %q", res.Answer, "4")
	}
	if sink.calls != 1 {
		t.Fatalf("got %d fault reports, want 1", sink.calls)
	}
	if sink.solverName != "boom" {
		t.Errorf("got fault from %q, want %q", sink.solverName, "boom")
	}
}

func TestSolve_PanicOnlyChainEndsUnsupported(t *testing.T) {
	sink := &recordSink{}
	e := &Engine{
		solvers: []solver.Solver{panicSolver{}},
		rules:   classify.DefaultRules(),
		faults:  sink,
	}

	res := e.Solve(Question{Text: "a mystery with no numbers", Grade: 2})
	if res.SolverUsed != Unsupported {
		t.Errorf("got solver_used %q, want %q", res.SolverUsed, Unsupported)
	}
	if sink.calls != 1 {
		t.Errorf("got %d fault reports, want 1", sink.calls)
	}
}
