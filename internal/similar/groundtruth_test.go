package similar

import (
	"strings"
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestGroundTruth_SameTopicPasses(t *testing.T) {
	v := &GroundTruthValidator{}
	q := &Question{Text: "What is 4 + 5?", Grade: 1}
	input := GenerateInput{Original: "What is 2 + 3?", Topic: topicgraph.Addition, Grade: 1}

	if err := v.Validate(q, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGroundTruth_UnsupportedFails(t *testing.T) {
	v := &GroundTruthValidator{}
	q := &Question{Text: "What shape has six equal sides?", Grade: 3}
	input := GenerateInput{Original: "How many sides does a triangle have?", Topic: topicgraph.Geometry, Grade: 3}

	err := v.Validate(q, input)
	if err == nil {
		t.Fatal("expected error for question the engine cannot answer")
	}
	if !err.Retryable {
		t.Error("unsupported resolution should be retryable")
	}
}

func TestGroundTruth_TopicDriftFails(t *testing.T) {
	v := &GroundTruthValidator{}
	q := &Question{Text: "What is 1/2 of 8?", Grade: 3}
	input := GenerateInput{Original: "What is 2 + 3?", Topic: topicgraph.Addition, Grade: 3}

	err := v.Validate(q, input)
	if err == nil {
		t.Fatal("expected error for topic drift")
	}
	if !strings.Contains(err.Message, "fractions") {
		t.Errorf("message should name the drifted topic, got %q", err.Message)
	}
}

func TestGroundTruth_GeneralOriginalAcceptsAnyTopic(t *testing.T) {
	v := &GroundTruthValidator{}
	q := &Question{Text: "What is 1/2 of 8?", Grade: 3}
	input := GenerateInput{Original: "a number puzzle", Topic: topicgraph.General, Grade: 3}

	if err := v.Validate(q, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGroundTruth_WordProblemCounts(t *testing.T) {
	v := &GroundTruthValidator{}
	q := &Question{Text: "Rima has 4 pens and 3 pencils. How many altogether?", Grade: 2}
	input := GenerateInput{Original: "Tom has 2 apples and 3 oranges. How many altogether?", Topic: topicgraph.Addition, Grade: 2}

	if err := v.Validate(q, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
