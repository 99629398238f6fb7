package engine

import (
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// Review is a one-paragraph recap of the concept behind an answer, for
// display after the steps.
type Review struct {
	Concept          string `json:"concept"`
	ObjectsUsed      string `json:"objects_used"`
	PrerequisiteUsed string `json:"prerequisite_used"`
	CommonMistake    string `json:"common_mistake"`
}

var conceptByTopic = map[topicgraph.Topic]string{
	topicgraph.Addition:         "Adding means putting groups together.",
	topicgraph.Subtraction:      "Subtracting means taking away.",
	topicgraph.Multiplication:   "Multiplication means equal groups.",
	topicgraph.Division:         "Division means sharing equally.",
	topicgraph.Fractions:        "Fractions mean equal parts of a whole.",
	topicgraph.PlaceValue:       "Digits have values based on their position.",
	topicgraph.Comparison:       "Comparing tells us which number is greater or smaller.",
	topicgraph.Counting:         "Counting (and ordinals) tells us how many and in what position.",
	topicgraph.Patterns:         "Patterns follow a rule that repeats or grows.",
	topicgraph.Measurement:      "Measurement tells us how long, heavy, or how much.",
	topicgraph.Currency:         "Money problems use adding and subtracting.",
	topicgraph.Geometry:         "Geometry is about shapes, sizes, and space.",
	topicgraph.Averages:         "Average means sharing the total out equally.",
	topicgraph.MultiplesFactors: "Factors and multiples are all about multiplication.",
	topicgraph.Decimals:         "Decimals are another way to write parts of a whole.",
	topicgraph.Percentages:      "Percent means out of 100.",
	topicgraph.Ratio:            "Ratio compares two quantities.",
	topicgraph.Data:             "Data means collecting and organizing information.",
}

var objectsByTemplate = map[string]string{
	"counters_add":    "counters/blocks",
	"counters_remove": "counters/blocks",
	"group_boxes":     "group boxes + counters",
	"sharing_groups":  "shared counters into groups",
	"fraction_pie":    "fraction pie (equal slices)",
	"fraction_bar":    "fraction bar (equal parts)",
}

var mistakeByTopic = map[topicgraph.Topic]string{
	topicgraph.Addition:       "Counting too many or skipping a number.",
	topicgraph.Subtraction:    "Counting back the wrong number of steps.",
	topicgraph.Multiplication: "Making unequal groups.",
	topicgraph.Division:       "Not sharing equally across groups.",
	topicgraph.Fractions:      "Making parts that are not equal.",
	topicgraph.Decimals:       "Not aligning decimal points when adding/subtracting.",
	topicgraph.Percentages:    "Forgetting to divide by 100 first.",
}

// BuildReview assembles the recap for a solved topic. Prerequisites are
// only named when the question sat above the learner's grade; otherwise
// the recap says "none".
func BuildReview(topic topicgraph.Topic, template string, isAbove bool, prereqs []topicgraph.Topic) Review {
	concept, ok := conceptByTopic[topic]
	if !ok {
		concept = "Explain the main idea simply."
	}
	objects, ok := objectsByTemplate[template]
	if !ok {
		objects = "simple objects"
	}
	mistake, ok := mistakeByTopic[topic]
	if !ok {
		mistake = "Mixing up steps."
	}
	prereqText := "none"
	if isAbove && len(prereqs) > 0 {
		names := make([]string, len(prereqs))
		for i, p := range prereqs {
			names[i] = string(p)
		}
		prereqText = strings.Join(names, ", ")
	}
	return Review{
		Concept:          concept,
		ObjectsUsed:      objects,
		PrerequisiteUsed: prereqText,
		CommonMistake:    mistake,
	}
}

// ReviewFor builds the recap for a finished result, naming prerequisites
// from the topic table.
func ReviewFor(r SolveResult) Review {
	return BuildReview(r.Topic, r.Template, r.IsAboveGrade, topicgraph.Prerequisites(r.Topic))
}
