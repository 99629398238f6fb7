package topicgraph

import (
	"strings"
	"testing"
)

func TestValidate_SeedTablePasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("built-in topic table validation failed: %v", err)
	}
}

func TestValidateTopics_DetectsCycle(t *testing.T) {
	topics := []TopicInfo{
		{Name: "a", MinGrade: 1, Prerequisites: []Topic{"b"}, Templates: []string{"generic"}},
		{Name: "b", MinGrade: 1, Prerequisites: []Topic{"a"}, Templates: []string{"generic"}},
	}
	err := validateTopics(topics)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateTopics_DetectsDanglingPrereq(t *testing.T) {
	topics := []TopicInfo{
		{Name: "a", MinGrade: 1, Templates: []string{"generic"}},
		{Name: "b", MinGrade: 1, Prerequisites: []Topic{"ghost"}, Templates: []string{"generic"}},
	}
	err := validateTopics(topics)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should mention the missing topic, got: %v", err)
	}
}

func TestValidateTopics_DetectsDuplicate(t *testing.T) {
	topics := []TopicInfo{
		{Name: "a", MinGrade: 1, Templates: []string{"generic"}},
		{Name: "a", MinGrade: 1, Templates: []string{"generic"}},
	}
	err := validateTopics(topics)
	if err == nil {
		t.Fatal("expected error for duplicate, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateTopics_GradeRange(t *testing.T) {
	topics := []TopicInfo{
		{Name: "a", MinGrade: 7, Templates: []string{"generic"}},
	}
	err := validateTopics(topics)
	if err == nil {
		t.Fatal("expected error for out-of-range grade, got nil")
	}
}

func TestValidateTopics_KeywordsLowercase(t *testing.T) {
	topics := []TopicInfo{
		{Name: "a", MinGrade: 1, Templates: []string{"generic"}, Keywords: []string{"Add"}},
	}
	err := validateTopics(topics)
	if err == nil {
		t.Fatal("expected error for uppercase keyword, got nil")
	}
	if !strings.Contains(err.Error(), "lowercase") {
		t.Errorf("error should mention lowercase, got: %v", err)
	}
}
