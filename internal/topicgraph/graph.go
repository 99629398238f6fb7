package topicgraph

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
)

// graph holds the topic table with precomputed indices.
type graph struct {
	topics     []TopicInfo
	byName     map[Topic]*TopicInfo
	tableIndex map[Topic]int
	roots      []Topic
	ordered    []TopicInfo
}

// g is the package-level singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the lookup indices from the topic table.
func buildGraph(topics []TopicInfo) *graph {
	gr := &graph{
		topics:     topics,
		byName:     make(map[Topic]*TopicInfo, len(topics)),
		tableIndex: make(map[Topic]int, len(topics)),
	}

	for i := range gr.topics {
		t := &gr.topics[i]
		gr.byName[t.Name] = t
		gr.tableIndex[t.Name] = i
		if len(t.Prerequisites) == 0 {
			gr.roots = append(gr.roots, t.Name)
		}
	}

	// Curriculum order: earliest grade first, alphabetical within a grade.
	gr.ordered = slices.Clone(gr.topics)
	sort.Slice(gr.ordered, func(i, j int) bool {
		if gr.ordered[i].MinGrade != gr.ordered[j].MinGrade {
			return gr.ordered[i].MinGrade < gr.ordered[j].MinGrade
		}
		return gr.ordered[i].Name < gr.ordered[j].Name
	})

	return gr
}

// Lookup returns the metadata for a topic. The boolean is false for topics
// outside the table (for example "general"), in which case callers should
// fall back to MinGrade's default of 1.
func Lookup(t Topic) (TopicInfo, bool) {
	info, ok := g.byName[t]
	if !ok {
		return TopicInfo{}, false
	}
	return *info, true
}

// Get returns the metadata for a topic, or an error if it is not in the table.
func Get(t Topic) (TopicInfo, error) {
	info, ok := g.byName[t]
	if !ok {
		return TopicInfo{}, fmt.Errorf("topic not found: %q", t)
	}
	return *info, nil
}

// AllTopics returns the full table in declaration order.
func AllTopics() []TopicInfo {
	return slices.Clone(g.topics)
}

// InCurriculumOrder returns the table sorted by (min grade, name).
func InCurriculumOrder() []TopicInfo {
	return slices.Clone(g.ordered)
}

// TableIndex returns a topic's position in the declared table, used as the
// deterministic tie-break when keyword scores are equal. Topics outside the
// table sort last.
func TableIndex(t Topic) int {
	idx, ok := g.tableIndex[t]
	if !ok {
		return len(g.topics)
	}
	return idx
}

// MinGrade returns the earliest grade a topic is taught in, defaulting to 1
// for topics outside the table.
func MinGrade(t Topic) int {
	info, ok := g.byName[t]
	if !ok {
		return 1
	}
	return info.MinGrade
}

// Prerequisites returns the direct prerequisite topics, or nil for topics
// outside the table.
func Prerequisites(t Topic) []Topic {
	info, ok := g.byName[t]
	if !ok {
		return nil
	}
	return slices.Clone(info.Prerequisites)
}

// RootTopics returns the topics with no prerequisites.
func RootTopics() []Topic {
	return slices.Clone(g.roots)
}

// ChooseTemplate picks one of the topic's display templates at random.
// Template choice is cosmetic variety for downstream renderers; it never
// affects numeric content. Topics with no templates get "generic".
func ChooseTemplate(t Topic) string {
	info, ok := g.byName[t]
	if !ok || len(info.Templates) == 0 {
		return "generic"
	}
	return info.Templates[rand.IntN(len(info.Templates))]
}

// Validate checks the built-in table for structural issues.
func Validate() error {
	return validateTopics(g.topics)
}
