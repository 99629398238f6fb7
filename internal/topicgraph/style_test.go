package topicgraph

import (
	"strings"
	"testing"
)

func TestStyleFor_KnownGrades(t *testing.T) {
	for grade := 1; grade <= 5; grade++ {
		s := StyleFor(grade)
		if s.MaxSeconds <= 0 {
			t.Errorf("grade %d: MaxSeconds must be positive, got %d", grade, s.MaxSeconds)
		}
		if s.Vocab == "" || s.Pace == "" || s.SentenceLength == "" {
			t.Errorf("grade %d: incomplete style %+v", grade, s)
		}
	}
}

func TestStyleFor_OutOfRangeFallsBackToGradeThree(t *testing.T) {
	want := StyleFor(3)
	for _, grade := range []int{0, 6, -1, 99} {
		if got := StyleFor(grade); got != want {
			t.Errorf("StyleFor(%d): got %+v, want grade-3 style %+v", grade, got, want)
		}
	}
}

func TestLevelNote_AboveGrade(t *testing.T) {
	note := LevelNote(Percentages, 2)
	if note == "" {
		t.Fatal("expected a level note for percentages at grade 2")
	}
	if !strings.Contains(note, "grade 5") {
		t.Errorf("note should mention the topic's grade, got: %q", note)
	}
	if !strings.Contains(note, "prerequisites") {
		t.Errorf("note should mention prerequisites, got: %q", note)
	}
}

func TestLevelNote_AtOrBelowGrade(t *testing.T) {
	if note := LevelNote(Addition, 3); note != "" {
		t.Errorf("no note expected for addition at grade 3, got: %q", note)
	}
}

func TestLevelNote_UnknownTopic(t *testing.T) {
	if note := LevelNote(General, 1); note != "" {
		t.Errorf("no note expected for general, got: %q", note)
	}
}
