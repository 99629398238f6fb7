package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// "find the average of 10, 20, 30" — the keyword is required so a bare
// number list is never claimed.
var avgRe = regexp.MustCompile(`(?i)(?:average|mean)\s+of\s+([\d,\s]+)`)

// AveragesSolver handles the arithmetic mean of an explicit number list.
type AveragesSolver struct{}

func (s *AveragesSolver) Name() string { return "averages" }

func (s *AveragesSolver) Attempt(text string) *TopicResult {
	m := avgRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	nums := extractInts(m[1])
	if len(nums) < 2 {
		return nil
	}
	total := 0
	for _, n := range nums {
		total += n
	}
	count := len(nums)
	avg := float64(total) / float64(count)
	avgStr := formatNumber(avg, 2)

	parts := make([]string, count)
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return &TopicResult{
		Topic:  topicgraph.Averages,
		Answer: avgStr,
		Steps: []Step{
			{Title: "Add all numbers", Text: fmt.Sprintf("Add: %s = %d.", strings.Join(parts, " + "), total)},
			{Title: "Count the numbers", Text: fmt.Sprintf("There are %d numbers.", count)},
			{Title: "Divide", Text: fmt.Sprintf("Average = %d ÷ %d = %s.", total, count, avgStr)},
		},
		SmallerExample: "Smaller example: average of 4, 6, 8 → (4+6+8)÷3 = 6",
	}
}
