package similar

import "strings"

// StructuralValidator checks the generated text before the engine is
// asked to verify it: non-empty, within the question length bound, and
// actually containing numbers to work with.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}
	if !strings.ContainsAny(text, "0123456789") {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text contains no numbers",
			Retryable: true,
		}
	}
	return nil
}
