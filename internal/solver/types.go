package solver

import "github.com/kaisuddinahmed/mymath/internal/topicgraph"

// Step is one ordered explanation step. Order is pedagogical
// (setup → operation → result) and must never be rearranged.
type Step struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// TopicResult is a fully solved question from one rule module.
// Answer is always a formatted string, never a raw float, so every
// consumer sees the identical rendering.
type TopicResult struct {
	Topic          topicgraph.Topic `json:"topic"`
	Answer         string           `json:"answer"`
	Steps          []Step           `json:"steps"`
	SmallerExample string           `json:"smaller_example"`
}

// Solver is one topic rule module. Attempt returns the solved result, or
// nil when the question is not this rule's to answer. Given identical
// input text a solver must always return the identical result.
type Solver interface {
	Name() string
	Attempt(text string) *TopicResult
}

// DefaultSolvers returns the topic solvers in dispatch priority order.
// High-specificity patterns run first so that a broad comparison or
// counting rule never swallows a question a specific rule fully solves.
func DefaultSolvers() []Solver {
	return []Solver{
		&FractionsSolver{},
		&FactorsMultiplesSolver{},
		&PercentagesSolver{},
		&DecimalsSolver{},
		&RatioSolver{},
		&AveragesSolver{},
		&MeasurementSolver{},
		&GeometrySolver{},
		&DataSolver{},
		&CurrencySolver{},
		&PatternsSolver{},
		&PlaceValueSolver{},
		// Lower-specificity rules run after everything else.
		&ComparisonSolver{},
		&CountingSolver{},
	}
}
