// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// SolveEvent is the predicate function for solveevent builders.
type SolveEvent func(*sql.Selector)

// SolverFaultEvent is the predicate function for solverfaultevent builders.
type SolverFaultEvent func(*sql.Selector)
