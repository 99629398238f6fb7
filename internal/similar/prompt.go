package similar

import (
	"fmt"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

const systemPrompt = `You are a primary school math teacher. Return ONLY a single math question similar to the one given. No explanation. No answer. Just the question.

Rules:
- Keep the same topic and operation as the original; change the numbers or the objects.
- Keep the numbers appropriate for the given grade and use the given vocabulary level.
- The question must have exactly one correct answer a child can compute.
- Use plain text. No LaTeX, no markup.`

// buildUserMessage constructs the user message from the input and the
// grade style snapshot.
func buildUserMessage(input GenerateInput) string {
	style := topicgraph.StyleFor(input.Grade)

	topicLabel := string(input.Topic)
	if input.Topic == topicgraph.General || topicLabel == "" {
		topicLabel = "general"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Grade: %d, Topic: %s, Vocab: %s.\n", input.Grade, topicLabel, style.Vocab)
	fmt.Fprintf(&b, "Original question: %s\n", input.Original)
	b.WriteString("Generate ONE similar question.")
	return b.String()
}
