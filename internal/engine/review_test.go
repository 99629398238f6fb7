package engine

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestBuildReview_KnownTopicAndTemplate(t *testing.T) {
	rv := BuildReview(topicgraph.Addition, "counters_add", false, nil)
	if rv.Concept != "Adding means putting groups together." {
		t.Errorf("got concept %q", rv.Concept)
	}
	if rv.ObjectsUsed != "counters/blocks" {
		t.Errorf("got objects %q", rv.ObjectsUsed)
	}
	if rv.PrerequisiteUsed != "none" {
		t.Errorf("got prerequisites %q, want %q", rv.PrerequisiteUsed, "none")
	}
	if rv.CommonMistake != "Counting too many or skipping a number." {
		t.Errorf("got mistake %q", rv.CommonMistake)
	}
}

func TestBuildReview_PrerequisitesOnlyWhenAboveGrade(t *testing.T) {
	prereqs := []topicgraph.Topic{topicgraph.Fractions, topicgraph.Decimals}

	rv := BuildReview(topicgraph.Percentages, "fraction_bar", true, prereqs)
	if rv.PrerequisiteUsed != "fractions, decimals" {
		t.Errorf("got prerequisites %q, want %q", rv.PrerequisiteUsed, "fractions, decimals")
	}
	if rv.CommonMistake != "Forgetting to divide by 100 first." {
		t.Errorf("got mistake %q", rv.CommonMistake)
	}

	rv = BuildReview(topicgraph.Percentages, "fraction_bar", false, prereqs)
	if rv.PrerequisiteUsed != "none" {
		t.Errorf("at grade level: got prerequisites %q, want %q", rv.PrerequisiteUsed, "none")
	}
}

func TestBuildReview_UnknownFallsBack(t *testing.T) {
	rv := BuildReview(topicgraph.General, "no_such_template", false, nil)
	if rv.Concept != "Explain the main idea simply." {
		t.Errorf("got concept %q", rv.Concept)
	}
	if rv.ObjectsUsed != "simple objects" {
		t.Errorf("got objects %q", rv.ObjectsUsed)
	}
	if rv.CommonMistake != "Mixing up steps." {
		t.Errorf("got mistake %q", rv.CommonMistake)
	}
}

func TestReviewFor_UsesResultTopic(t *testing.T) {
	res := Solve(Question{Text: "What is 25% of 200?", Grade: 2})
	rv := ReviewFor(res)
	if rv.Concept != "Percent means out of 100." {
		t.Errorf("got concept %q", rv.Concept)
	}
	// Above grade, so the topic table's prerequisites are named.
	if rv.PrerequisiteUsed != "fractions, decimals" {
		t.Errorf("got prerequisites %q, want %q", rv.PrerequisiteUsed, "fractions, decimals")
	}
}
