package similar

import (
	"strings"
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Original: "What is 2 + 3?",
		Topic:    topicgraph.Addition,
		Grade:    2,
	})

	if !strings.Contains(msg, "Grade: 2") {
		t.Error("missing grade")
	}
	if !strings.Contains(msg, "Topic: addition") {
		t.Error("missing topic")
	}
	if !strings.Contains(msg, "Vocab: simple") {
		t.Error("missing grade-2 vocabulary level")
	}
	if !strings.Contains(msg, "Original question: What is 2 + 3?") {
		t.Error("missing original question")
	}
	if !strings.Contains(msg, "Generate ONE similar question.") {
		t.Error("missing generation instruction")
	}
}

func TestBuildUserMessage_GeneralTopic(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Original: "a puzzle with 3 parts",
		Topic:    topicgraph.General,
		Grade:    4,
	})

	if !strings.Contains(msg, "Topic: general") {
		t.Errorf("expected general topic label, got:\n%s", msg)
	}
	if !strings.Contains(msg, "Vocab: standard") {
		t.Error("missing grade-4 vocabulary level")
	}
}

func TestBuildUserMessage_OutOfRangeGradeFallsBack(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Original: "What is 9 - 4?",
		Topic:    topicgraph.Subtraction,
		Grade:    9,
	})

	// Style falls back to grade 3; the stated grade stays as asked.
	if !strings.Contains(msg, "Grade: 9") {
		t.Error("grade should pass through unchanged")
	}
	if !strings.Contains(msg, "Vocab: simple") {
		t.Error("expected grade-3 fallback vocabulary")
	}
}
