package similar

import "github.com/kaisuddinahmed/mymath/internal/llm"

// QuestionSchema defines the JSON schema for similar-question responses.
var QuestionSchema = &llm.Schema{
	Name:        "similar-question",
	Description: "A single math practice question similar to the one given",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The new question, in plain text. No explanation, no answer, just the question.",
			},
		},
		"required":             []any{"question_text"},
		"additionalProperties": false,
	},
}
