package solver

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var (
	// "mode of 2, 4, 4, 6, 4, 8"
	modeRe = regexp.MustCompile(`(?i)mode\s+of\s+([\d,\s]+)`)
	// "range of 3, 7, 2, 9, 5"
	rangeRe = regexp.MustCompile(`(?i)range\s+of\s+([\d,\s]+)`)
)

// DataSolver handles mode and range over a list of numbers.
type DataSolver struct{}

func (s *DataSolver) Name() string { return "data" }

func (s *DataSolver) Attempt(text string) *TopicResult {
	q := strings.TrimSpace(text)

	if m := modeRe.FindStringSubmatch(q); m != nil {
		nums := extractInts(m[1])
		if len(nums) < 2 {
			return nil
		}
		counts := make(map[int]int)
		for _, n := range nums {
			counts[n]++
		}
		maxCount := 0
		for _, c := range counts {
			if c > maxCount {
				maxCount = c
			}
		}
		var modes []int
		for n, c := range counts {
			if c == maxCount {
				modes = append(modes, n)
			}
		}
		sort.Ints(modes)
		modesStr := joinInts(modes)
		return &TopicResult{
			Topic:  topicgraph.Data,
			Answer: modesStr,
			Steps: []Step{
				{Title: "What is the mode?", Text: "The mode is the number that appears most often."},
				{Title: "Count each number", Text: fmt.Sprintf("Numbers: %s. Count how many times each appears.", joinInts(nums))},
				{Title: "Answer", Text: fmt.Sprintf("The mode is %s (appears %d times).", modesStr, maxCount)},
			},
			SmallerExample: "Smaller example: mode of 2, 4, 4, 6 → 4 (appears most)",
		}
	}

	if m := rangeRe.FindStringSubmatch(q); m != nil {
		nums := extractInts(m[1])
		if len(nums) < 2 {
			return nil
		}
		hi, lo := nums[0], nums[0]
		for _, n := range nums[1:] {
			if n > hi {
				hi = n
			}
			if n < lo {
				lo = n
			}
		}
		return &TopicResult{
			Topic:  topicgraph.Data,
			Answer: fmt.Sprintf("%d", hi-lo),
			Steps: []Step{
				{Title: "What is the range?", Text: "Range = highest number − lowest number."},
				{Title: "Find highest and lowest", Text: fmt.Sprintf("Highest: %d. Lowest: %d.", hi, lo)},
				{Title: "Subtract", Text: fmt.Sprintf("%d − %d = %d.", hi, lo, hi-lo)},
			},
			SmallerExample: "Smaller example: range of 3, 7, 2, 9 → 9 − 2 = 7",
		}
	}

	return nil
}
