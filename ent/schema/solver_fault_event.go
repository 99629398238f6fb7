package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SolverFaultEvent records a solver panic recovered by the dispatch chain.
// The question still resolved (by a later stage); the fault is kept so a
// misbehaving rule module can be found and fixed.
type SolverFaultEvent struct {
	ent.Schema
}

func (SolverFaultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SolverFaultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("solver_name").
			NotEmpty().
			Comment("Name of the rule module that panicked"),
		field.String("question").
			NotEmpty().
			Comment("Input that triggered the fault"),
		field.String("panic_text").
			Default("").
			Comment("Recovered panic value, stringified"),
	}
}

func (SolverFaultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("solver_name"),
	}
}
