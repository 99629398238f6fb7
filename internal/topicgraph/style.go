package topicgraph

import (
	"fmt"
	"strings"
)

// GradeStyle holds advisory pacing and vocabulary hints for one grade.
// Grade shapes HOW things are explained, never WHETHER they are answered;
// nothing in the solving path reads these values.
type GradeStyle struct {
	MaxSeconds     int
	SentenceLength string
	Pace           string
	Vocab          string
}

var gradeStyles = map[int]GradeStyle{
	1: {MaxSeconds: 45, SentenceLength: "very short", Pace: "slow", Vocab: "very simple"},
	2: {MaxSeconds: 50, SentenceLength: "short", Pace: "slow", Vocab: "simple"},
	3: {MaxSeconds: 60, SentenceLength: "short", Pace: "medium", Vocab: "simple"},
	4: {MaxSeconds: 75, SentenceLength: "medium", Pace: "medium", Vocab: "standard"},
	5: {MaxSeconds: 90, SentenceLength: "medium", Pace: "brisk", Vocab: "standard"},
}

// StyleFor returns the advisory style for a grade. Grades outside 1-5 get
// the grade 3 style.
func StyleFor(grade int) GradeStyle {
	if s, ok := gradeStyles[grade]; ok {
		return s
	}
	return gradeStyles[3]
}

// LevelNote returns a gentle-explanation note when a topic is usually
// taught above the learner's grade, or "" when it is not. The note is a
// style hint only; it never blocks answering.
func LevelNote(t Topic, grade int) string {
	info, ok := Lookup(t)
	if !ok {
		return ""
	}
	if grade >= info.MinGrade {
		return ""
	}
	prereq := "basics"
	if len(info.Prerequisites) > 0 {
		names := make([]string, len(info.Prerequisites))
		for i, p := range info.Prerequisites {
			names[i] = string(p)
		}
		prereq = strings.Join(names, ", ")
	}
	return fmt.Sprintf(
		"This topic is usually taught in grade %d. Explain gently for grade %d by first teaching prerequisites: %s. Use a smaller-number example first.",
		info.MinGrade, grade, prereq)
}
