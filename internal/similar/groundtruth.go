package similar

import (
	"fmt"

	"github.com/kaisuddinahmed/mymath/internal/engine"
	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// GroundTruthValidator runs the generated question through the solve
// engine. A similar question the engine cannot answer exactly is useless
// for practice, and one that lands on a different topic drifted from the
// original.
type GroundTruthValidator struct{}

func (v *GroundTruthValidator) Name() string { return "ground-truth" }

func (v *GroundTruthValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	result := engine.Solve(engine.Question{Text: q.Text, Grade: q.Grade})

	if result.SolverUsed == engine.Unsupported {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "engine cannot answer the generated question exactly",
			Retryable: true,
		}
	}

	// Topic drift check only when the original had a known label.
	if input.Topic != topicgraph.General && input.Topic != "" && result.Topic != input.Topic {
		return &ValidationError{
			Validator: v.Name(),
			Message: fmt.Sprintf("generated question resolved to topic %q, want %q",
				result.Topic, input.Topic),
			Retryable: true,
		}
	}

	return nil
}
