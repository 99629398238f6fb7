package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SolveEvent records one engine resolution requested by a user.
type SolveEvent struct {
	ent.Schema
}

func (SolveEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SolveEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			NotEmpty().
			Comment("UUID for this resolution request"),
		field.String("question").
			NotEmpty().
			Comment("The question as asked"),
		field.Int("grade").
			Comment("Learner grade the question was asked for, 1-5"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the engine settled on"),
		field.String("answer").
			Comment("Formatted answer string"),
		field.String("solver_used").
			NotEmpty().
			Comment("deterministic, word_problem, or unsupported"),
		field.Bool("is_above_grade").
			Default(false).
			Comment("Topic usually taught above the asked grade"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Resolution wall-clock time"),
	}
}

func (SolveEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("solver_used"),
	}
}
