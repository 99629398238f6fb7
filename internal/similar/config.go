package similar

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the chain.
	Validators []Validator

	// MaxAttempts is how many generations to try before giving up on
	// retryable validation failures.
	MaxAttempts int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Similar
	// questions want variety, so the default is well above zero.
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&GroundTruthValidator{},
		},
		MaxAttempts: 3,
		MaxTokens:   256,
		Temperature: 0.7,
	}
}
