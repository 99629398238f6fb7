package similar

import "context"

// Generator produces practice questions similar to one already solved.
type Generator interface {
	// Generate produces a single verified question for the given input.
	// All configured validators are run before returning; retryable
	// validation failures are regenerated up to the configured budget.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}
