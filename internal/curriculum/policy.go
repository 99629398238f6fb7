// Package curriculum layers class-level syllabus policies over solve
// results. Policies are advisory: they never change an answer, they only
// produce a note when a question sits outside what the class has covered.
package curriculum

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed profiles
var profilesFS embed.FS

// DefaultCurriculum is used when no curriculum is named and as the
// fallback when a named one has no profile for the class.
const DefaultCurriculum = "nctb"

// Policy describes what one class level of one curriculum allows.
type Policy struct {
	Curriculum       string            `json:"curriculum"`
	ClassLevel       int               `json:"class_level"`
	Messages         map[string]string `json:"messages"`
	Constraints      Constraints       `json:"constraints"`
	TopicConstraints TopicConstraints  `json:"topic_constraints"`
	TopicsInScope    []string          `json:"topics_in_scope"`

	// FallbackFrom names the curriculum that was asked for when this
	// policy was resolved through the default instead.
	FallbackFrom string `json:"-"`
}

// Constraints are curriculum-wide limits. Nil pointers mean "allowed"
// or "no limit".
type Constraints struct {
	AllowFractions *bool `json:"allow_fractions"`
	AllowDecimals  *bool `json:"allow_decimals"`
	AllowNegative  *bool `json:"allow_negative"`
	MaxNumber      *int  `json:"max_number"`
}

// TopicConstraints are per-topic limits.
type TopicConstraints struct {
	Fractions      FractionRules    `json:"fractions"`
	Subtraction    SubtractionRules `json:"subtraction"`
	Addition       AdditionRules    `json:"addition"`
	Counting       RangeRules       `json:"counting"`
	OrdinalNumbers RangeRules       `json:"ordinal_numbers"`
	Multiplication TableRules       `json:"multiplication"`
	Division       DivisionRules    `json:"division"`
}

// FractionRules limits which fraction literals a class works with.
type FractionRules struct {
	AllowedVisualFractions []string `json:"allowed_visual_fractions"`
}

// SubtractionRules bounds subtraction results.
type SubtractionRules struct {
	MinResult *int `json:"min_result"`
}

// AdditionRules bounds sums. EnforceGlobally applies MaxSum to every
// addition, not just addition-topic drills.
type AdditionRules struct {
	MaxSum          *int `json:"max_sum"`
	EnforceGlobally bool `json:"enforce_globally"`
}

// RangeRules is an inclusive numeric range.
type RangeRules struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// TableRules bounds which times tables are in scope.
type TableRules struct {
	TableMin *int `json:"table_min"`
	TableMax *int `json:"table_max"`
}

// DivisionRules controls division edge cases.
type DivisionRules struct {
	AllowDivisionByZero *bool `json:"allow_division_by_zero"`
}

// Load reads the embedded profile for one curriculum and class level.
// Returns (nil, nil) when no such profile exists.
func Load(curriculum string, classLevel int) (*Policy, error) {
	key := strings.ToLower(strings.TrimSpace(curriculum))
	if key == "" {
		return nil, nil
	}

	path := fmt.Sprintf("profiles/%s/class_%d.json", key, classLevel)
	raw, err := profilesFS.ReadFile(path)
	if err != nil {
		return nil, nil
	}

	var p Policy
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse policy %s: %w", path, err)
	}
	return &p, nil
}

// Resolve returns the policy for the curriculum and class, falling back
// to the default curriculum when the named one has no profile. Returns
// nil when nothing matches.
func Resolve(curriculum string, classLevel int) *Policy {
	target := strings.ToLower(strings.TrimSpace(curriculum))
	if target == "" {
		target = DefaultCurriculum
	}

	p, err := Load(target, classLevel)
	if err == nil && p != nil {
		return p
	}

	if target != DefaultCurriculum {
		fallback, err := Load(DefaultCurriculum, classLevel)
		if err == nil && fallback != nil {
			fallback.FallbackFrom = target
			return fallback
		}
	}
	return nil
}

// PolicyRef identifies one available profile.
type PolicyRef struct {
	Curriculum string
	ClassLevel int
}

// List returns every embedded profile, sorted by curriculum then class.
func List() []PolicyRef {
	var refs []PolicyRef

	matches, err := fs.Glob(profilesFS, "profiles/*/class_*.json")
	if err != nil {
		return refs
	}
	for _, m := range matches {
		parts := strings.Split(m, "/")
		if len(parts) != 3 {
			continue
		}
		var level int
		if _, err := fmt.Sscanf(parts[2], "class_%d.json", &level); err != nil {
			continue
		}
		refs = append(refs, PolicyRef{Curriculum: parts[1], ClassLevel: level})
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Curriculum != refs[j].Curriculum {
			return refs[i].Curriculum < refs[j].Curriculum
		}
		return refs[i].ClassLevel < refs[j].ClassLevel
	})
	return refs
}
