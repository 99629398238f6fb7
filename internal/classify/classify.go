// Package classify labels a question with its most likely topic. It is
// used only when no solver produced an answer; it never computes one.
package classify

import (
	"regexp"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// Rule is one labeling rule.
// Returns the detected topic, or "" if the rule doesn't apply.
type Rule interface {
	Name() string
	Detect(question string) topicgraph.Topic
}

// DefaultRules returns labeling rules in priority order. Exact arithmetic
// expressions are unambiguous, so they outrank every keyword score.
func DefaultRules() []Rule {
	return []Rule{
		&ExpressionRule{},
		&FractionOfRule{},
		&KeywordRule{},
	}
}

// RunRules executes labeling rules in order.
// Returns the first match, or ("", "") if no rules apply.
func RunRules(rules []Rule, question string) (topicgraph.Topic, string) {
	for _, r := range rules {
		if t := r.Detect(question); t != "" {
			return t, r.Name()
		}
	}
	return "", ""
}

// Detect runs the default rules. Returns "" for an unrecognized question.
func Detect(question string) topicgraph.Topic {
	t, _ := RunRules(DefaultRules(), question)
	return t
}

var (
	bareAddSubRe = regexp.MustCompile(`^\s*(\d{1,5})\s*([+\-])\s*(\d{1,5})(?:\s*=\s*[?_]*)?\s*$`)
	bareMulDivRe = regexp.MustCompile(`^\s*(\d{1,5})\s*([xX*÷/])\s*(\d{1,5})(?:\s*=\s*[?_]*)?\s*$`)
	fractionOfRe = regexp.MustCompile(`(?i)(\d+)/(\d+)\s+of\s+(\d+)`)
)

// ExpressionRule labels text that is exactly a bare two-operand
// arithmetic expression, optionally with a trailing "= ?".
type ExpressionRule struct{}

func (r *ExpressionRule) Name() string { return "expression" }

func (r *ExpressionRule) Detect(question string) topicgraph.Topic {
	if m := bareAddSubRe.FindStringSubmatch(question); m != nil {
		if m[2] == "+" {
			return topicgraph.Addition
		}
		return topicgraph.Subtraction
	}
	if m := bareMulDivRe.FindStringSubmatch(question); m != nil {
		switch m[2] {
		case "x", "X", "*":
			return topicgraph.Multiplication
		}
		return topicgraph.Division
	}
	return ""
}

// FractionOfRule labels the "a/b of c" pattern.
type FractionOfRule struct{}

func (r *FractionOfRule) Name() string { return "fraction-of" }

func (r *FractionOfRule) Detect(question string) topicgraph.Topic {
	if fractionOfRe.MatchString(question) {
		return topicgraph.Fractions
	}
	return ""
}

// KeywordRule scores every topic by keyword hits. A multi-word phrase hit
// counts double a single-word hit, since phrases are far more specific.
// Ties go to the topic declared first in the topic table.
type KeywordRule struct{}

func (r *KeywordRule) Name() string { return "keyword" }

func (r *KeywordRule) Detect(question string) topicgraph.Topic {
	q := strings.ToLower(question)
	var best topicgraph.Topic
	bestScore := 0
	for _, info := range topicgraph.AllTopics() {
		score := 0
		for _, k := range info.Keywords {
			if !strings.Contains(q, k) {
				continue
			}
			if strings.Contains(k, " ") {
				score += 2
			} else {
				score++
			}
		}
		if score > bestScore {
			best = info.Name
			bestScore = score
		}
	}
	return best
}
