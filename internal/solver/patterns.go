package solver

import (
	"fmt"
	"math"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// PatternsSolver continues arithmetic and geometric number sequences.
type PatternsSolver struct{}

func (s *PatternsSolver) Name() string { return "patterns" }

func (s *PatternsSolver) Attempt(text string) *TopicResult {
	nums := extractInts(text)
	if len(nums) < 3 {
		return nil
	}

	kind, value, ok := findPattern(nums)
	if !ok {
		return nil
	}
	last := nums[len(nums)-1]

	switch kind {
	case "arithmetic":
		diff := int(value)
		next := last + diff
		verb, direction, sign := "increases", "increase", "+"
		if value <= 0 {
			verb, direction, sign = "decreases", "decrease", "-"
		}
		abs := diff
		if abs < 0 {
			abs = -abs
		}
		return &TopicResult{
			Topic:  topicgraph.Patterns,
			Answer: fmt.Sprintf("%d", next),
			Steps: []Step{
				{Title: "Look at the pattern", Text: fmt.Sprintf("The numbers are: %s.", joinInts(nums))},
				{Title: "Find the rule", Text: fmt.Sprintf("Each number %s by %d.", verb, abs)},
				{Title: "Apply the rule", Text: fmt.Sprintf("After %d, we %s by %d: %d %s %d = %d.", last, direction, abs, last, sign, abs, next)},
			},
			SmallerExample: "Smaller example: 2, 4, 6, 8, ___ → 10 (add 2 each time)",
		}
	case "geometric":
		next := int(float64(last) * value)
		return &TopicResult{
			Topic:  topicgraph.Patterns,
			Answer: fmt.Sprintf("%d", next),
			Steps: []Step{
				{Title: "Look at the pattern", Text: fmt.Sprintf("The numbers are: %s.", joinInts(nums))},
				{Title: "Find the rule", Text: fmt.Sprintf("Each number is multiplied by %s.", formatNumber(value, 4))},
				{Title: "Apply the rule", Text: fmt.Sprintf("%d × %s = %d.", last, formatNumber(value, 4), next)},
			},
			SmallerExample: "Smaller example: 2, 4, 8, 16, ___ → 32 (multiply by 2 each time)",
		}
	}
	return nil
}

// findPattern detects a constant difference or constant ratio. Ratios are
// compared at four decimal places so 1/3 sequences still line up.
func findPattern(nums []int) (kind string, value float64, ok bool) {
	if len(nums) < 2 {
		return "", 0, false
	}

	diff := nums[1] - nums[0]
	constantDiff := true
	for i := 1; i < len(nums)-1; i++ {
		if nums[i+1]-nums[i] != diff {
			constantDiff = false
			break
		}
	}
	if constantDiff {
		return "arithmetic", float64(diff), true
	}

	for i := 0; i < len(nums)-1; i++ {
		if nums[i] == 0 {
			return "", 0, false
		}
	}
	ratio := math.Round(float64(nums[1])/float64(nums[0])*10000) / 10000
	for i := 1; i < len(nums)-1; i++ {
		r := math.Round(float64(nums[i+1])/float64(nums[i])*10000) / 10000
		if r != ratio {
			return "", 0, false
		}
	}
	return "geometric", ratio, true
}
