package topicgraph

import (
	"fmt"
	"strings"
)

// validateTopics performs all structural checks on a topic table.
// Returns a combined error describing every problem found, or nil.
func validateTopics(topics []TopicInfo) error {
	var errs []string

	nameSet := make(map[Topic]bool, len(topics))
	for _, t := range topics {
		if nameSet[t.Name] {
			errs = append(errs, fmt.Sprintf("duplicate topic: %q", t.Name))
		}
		nameSet[t.Name] = true
	}

	for _, t := range topics {
		for _, p := range t.Prerequisites {
			if !nameSet[p] {
				errs = append(errs, fmt.Sprintf("topic %q references nonexistent prerequisite %q", t.Name, p))
			}
		}
	}

	// Cycle check via Kahn's algorithm over prerequisite edges.
	inDegree := make(map[Topic]int, len(topics))
	dependents := make(map[Topic][]Topic)
	for _, t := range topics {
		inDegree[t.Name] = len(t.Prerequisites)
		for _, p := range t.Prerequisites {
			dependents[p] = append(dependents[p], t.Name)
		}
	}
	var queue []Topic
	for _, t := range topics {
		if inDegree[t.Name] == 0 {
			queue = append(queue, t.Name)
		}
	}
	visited := 0
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		visited++
		for _, d := range dependents[name] {
			inDegree[d]--
			if inDegree[d] == 0 {
				queue = append(queue, d)
			}
		}
	}
	if visited < len(topics) {
		var cycleNodes []string
		for _, t := range topics {
			if inDegree[t.Name] > 0 {
				cycleNodes = append(cycleNodes, string(t.Name))
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving: %s", strings.Join(cycleNodes, ", ")))
	}

	hasRoot := false
	for _, t := range topics {
		if len(t.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root topics found (at least one topic must have no prerequisites)")
	}

	for _, t := range topics {
		if t.MinGrade < 1 || t.MinGrade > 5 {
			errs = append(errs, fmt.Sprintf("topic %q: MinGrade must be 1-5, got %d", t.Name, t.MinGrade))
		}
		if len(t.Templates) == 0 {
			errs = append(errs, fmt.Sprintf("topic %q: at least one display template required", t.Name))
		}
		for _, k := range t.Keywords {
			if strings.TrimSpace(k) == "" {
				errs = append(errs, fmt.Sprintf("topic %q: blank keyword", t.Name))
			}
			if k != strings.ToLower(k) {
				errs = append(errs, fmt.Sprintf("topic %q: keyword %q must be lowercase", t.Name, k))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("topic table validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
