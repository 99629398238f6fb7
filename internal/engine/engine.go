// Package engine resolves a primary-school math question into an exact
// answer with ordered explanation steps. Resolution is a fixed dispatch
// chain: arithmetic fast path, topic rule modules in priority order,
// word-problem fallback, then a classifier-labelled unsupported terminal.
// The engine holds no mutable state and is safe for concurrent use.
package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kaisuddinahmed/mymath/internal/classify"
	"github.com/kaisuddinahmed/mymath/internal/solver"
	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// SolverKind identifies which stage of the dispatch chain produced a result.
type SolverKind string

const (
	// Deterministic means an exact rule module answered.
	Deterministic SolverKind = "deterministic"
	// WordProblem means the sentence fallback parser answered.
	WordProblem SolverKind = "word_problem"
	// Unsupported means no stage could answer; the result carries a fixed
	// advisory string and a best-effort topic label, never an invented
	// number.
	Unsupported SolverKind = "unsupported"
)

// Question is one immutable resolution request. Callers keep Text under
// ~500 characters; the engine itself only trims it.
type Question struct {
	Text  string
	Grade int
	// CurriculumHints are style cues from the curriculum layer, passed
	// through for downstream renderers. They never restrict which
	// questions get answered.
	CurriculumHints []string
}

// SolveResult is the complete outcome of resolving one question.
type SolveResult struct {
	Topic          topicgraph.Topic `json:"topic"`
	Answer         string           `json:"answer"`
	Steps          []solver.Step    `json:"steps"`
	SmallerExample string           `json:"smaller_example"`
	// Template is a cosmetic display-template name chosen at random from
	// the topic's template list. It varies between calls; every numeric
	// field is still fully deterministic.
	Template         string     `json:"template"`
	SolverUsed       SolverKind `json:"solver_used"`
	MinGradeForTopic int        `json:"min_grade_for_topic"`
	IsAboveGrade     bool       `json:"is_above_grade"`
}

// Engine runs the dispatch chain. All fields are fixed at construction,
// so one Engine may serve any number of goroutines.
type Engine struct {
	fastPath []solver.Solver
	solvers  []solver.Solver
	rules    []classify.Rule
	faults   FaultSink
}

// New creates an engine with the default solver chain. A nil sink reports
// recovered solver panics as stderr warnings.
func New(sink FaultSink) *Engine {
	if sink == nil {
		sink = stderrSink{}
	}
	return &Engine{
		fastPath: solver.FastPathSolvers(),
		solvers:  solver.DefaultSolvers(),
		rules:    classify.DefaultRules(),
		faults:   sink,
	}
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the shared process-wide engine with the stderr fault sink.
func Default() *Engine {
	defaultOnce.Do(func() { defaultEngine = New(nil) })
	return defaultEngine
}

// Solve resolves a question with the default engine.
func Solve(q Question) SolveResult {
	return Default().Solve(q)
}

// Solve resolves one question. Every stage either fully answers or
// declines; a division by zero is a well-formed answer, not an error, and
// the final stage always produces a result, so Solve never fails.
func (e *Engine) Solve(q Question) SolveResult {
	text := strings.TrimSpace(q.Text)

	// Bare and thinly wrapped arithmetic is by far the most common input,
	// and its regexes cannot misfire on anything else.
	for _, s := range e.fastPath {
		if r := e.attempt(s, text); r != nil {
			return e.deterministic(r, q.Grade)
		}
	}

	for _, s := range e.solvers {
		if r := e.attempt(s, text); r != nil {
			return e.deterministic(r, q.Grade)
		}
	}

	if wp := solver.ParseWordProblem(text); wp != nil {
		return e.wordProblem(text, wp)
	}

	return e.unsupported(text, q.Grade)
}

// attempt runs one rule module, converting a panic into "not mine". A
// fault in one module must never abort resolution; the chain reports it
// and moves on.
func (e *Engine) attempt(s solver.Solver, text string) (result *solver.TopicResult) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			e.faults.SolverFault(s.Name(), text, r)
		}
	}()
	return s.Attempt(text)
}

func (e *Engine) deterministic(r *solver.TopicResult, grade int) SolveResult {
	minGrade := topicgraph.MinGrade(r.Topic)
	return SolveResult{
		Topic:            r.Topic,
		Answer:           r.Answer,
		Steps:            r.Steps,
		SmallerExample:   r.SmallerExample,
		Template:         topicgraph.ChooseTemplate(r.Topic),
		SolverUsed:       Deterministic,
		MinGradeForTopic: minGrade,
		IsAboveGrade:     grade < minGrade,
	}
}

func (e *Engine) wordProblem(text string, wp *solver.WordProblem) SolveResult {
	topic := operationTopic(wp.Operation)
	steps := []solver.Step{
		{Title: "Read the problem", Text: text},
		{Title: "Identify the numbers", Text: fmt.Sprintf("Numbers: %s.", wp.NumberList())},
		{Title: "Choose the operation", Text: fmt.Sprintf("Operation: %s (%s).", wp.Operation, topic)},
		{Title: "Calculate", Text: fmt.Sprintf("%s = %s.", wp.Expression, wp.Answer)},
	}
	return SolveResult{
		Topic:            topic,
		Answer:           wp.Answer,
		Steps:            steps,
		SmallerExample:   fmt.Sprintf("Expression: %s = %s", wp.Expression, wp.Answer),
		Template:         topicgraph.ChooseTemplate(topic),
		SolverUsed:       WordProblem,
		MinGradeForTopic: 1,
		IsAboveGrade:     false,
	}
}

// unsupported still labels the question by topic so downstream consumers
// get grade metadata and a sensible template, even without an answer.
func (e *Engine) unsupported(text string, grade int) SolveResult {
	detected, _ := classify.RunRules(e.rules, text)
	topic := detected
	if topic == "" {
		topic = topicgraph.General
	}
	templateTopic := detected
	if templateTopic == "" {
		templateTopic = topicgraph.Addition
	}
	minGrade := topicgraph.MinGrade(detected)
	return SolveResult{
		Topic:  topic,
		Answer: "This question will be handled by our AI assistant.",
		Steps: []solver.Step{{
			Title: "AI-assisted explanation",
			Text:  "Our solver is being expanded. The AI will explain this concept.",
		}},
		SmallerExample:   "",
		Template:         topicgraph.ChooseTemplate(templateTopic),
		SolverUsed:       Unsupported,
		MinGradeForTopic: minGrade,
		IsAboveGrade:     grade < minGrade,
	}
}

func operationTopic(op string) topicgraph.Topic {
	switch op {
	case "+":
		return topicgraph.Addition
	case "-":
		return topicgraph.Subtraction
	case "×":
		return topicgraph.Multiplication
	case "÷":
		return topicgraph.Division
	}
	return topicgraph.Addition
}
