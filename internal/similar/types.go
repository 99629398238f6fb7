package similar

import "github.com/kaisuddinahmed/mymath/internal/topicgraph"

// Question is a generated practice question, verified against the solve
// engine before being returned.
type Question struct {
	// Text is the question prompt, e.g. "What is 14 + 23?".
	Text string

	// Grade is the grade the question was generated for.
	Grade int

	// Topic is the topic the engine resolved the generated question to.
	Topic topicgraph.Topic

	// Answer is the engine's exact answer to the generated question.
	// Shown alongside the question so an adult can check the child's work.
	Answer string

	// SolverUsed reports which engine stage answered ("deterministic"
	// or "word_problem").
	SolverUsed string
}

// GenerateInput holds all context needed to generate a similar question.
type GenerateInput struct {
	// Original is the question the child just asked.
	Original string

	// Topic is the topic the engine resolved the original question to.
	// General when the original could not be labelled.
	Topic topicgraph.Topic

	// Grade selects number depth and vocabulary for the new question.
	Grade int
}
