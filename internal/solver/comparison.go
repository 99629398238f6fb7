package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var (
	comparisonKeywordRe = regexp.MustCompile(`(?i)\b(?:bigger|smaller|greater|less|compare|which is larger|which is more|largest|smallest)\b`)
	compareOpRe         = regexp.MustCompile(`(\d+)\s*([><]=?|==?)\s*(\d+)`)
	compareTwoRe        = regexp.MustCompile(`(?i)(\d+)\s*(?:vs\.?)\s*(\d+)`)
	betweenRe           = regexp.MustCompile(`(?i)between\s+(\d+)\s+and\s+(\d+)`)
)

// ComparisonSolver handles >, <, =, "which is bigger" and between questions.
type ComparisonSolver struct{}

func (s *ComparisonSolver) Name() string { return "comparison" }

func (s *ComparisonSolver) Attempt(text string) *TopicResult {
	q := strings.TrimSpace(text)

	if m := compareOpRe.FindStringSubmatch(q); m != nil {
		a, op, b := mustInt(m[1]), m[2], mustInt(m[3])
		var ans string
		switch op {
		case ">", "<", ">=":
			word := "greater or equal"
			result := a >= b
			switch op {
			case ">":
				word, result = "greater", a > b
			case "<":
				word, result = "less", a < b
			}
			verdict, neg := "True", ""
			if !result {
				verdict, neg = "False", "not "
			}
			ans = fmt.Sprintf("%d %s %d is %s. %d is %s%s than %d.", a, op, b, verdict, a, neg, word, b)
		default:
			eq := "does not equal"
			if a == b {
				eq = "equals"
			}
			ans = fmt.Sprintf("%d %s %d.", a, eq, b)
		}
		hi, lo := maxMin(a, b)
		return &TopicResult{
			Topic:  topicgraph.Comparison,
			Answer: ans,
			Steps: []Step{
				{Title: "Look at the numbers", Text: fmt.Sprintf("We are comparing %d and %d.", a, b)},
				{Title: "Which is bigger?", Text: fmt.Sprintf("%d is bigger than %d.", hi, lo)},
				{Title: "Answer", Text: ans},
			},
			SmallerExample: "Smaller example: 7 > 4 means 7 is greater than 4.",
		}
	}

	if comparisonKeywordRe.MatchString(q) {
		nums := extractInts(q)
		if len(nums) >= 2 {
			a, b := nums[0], nums[1]
			desc := compareDesc(a, b)
			hi, lo := maxMin(a, b)
			return &TopicResult{
				Topic:  topicgraph.Comparison,
				Answer: desc,
				Steps: []Step{
					{Title: "Compare the numbers", Text: fmt.Sprintf("We look at %d and %d.", a, b)},
					{Title: "Find the bigger one", Text: fmt.Sprintf("Count up: %d comes before %d on the number line.", lo, hi)},
					{Title: "Answer", Text: desc},
				},
				SmallerExample: "Smaller example: 9 is greater than 6.",
			}
		}
	}

	if m := compareTwoRe.FindStringSubmatch(q); m != nil {
		a, b := mustInt(m[1]), mustInt(m[2])
		desc := compareDesc(a, b)
		return &TopicResult{
			Topic:          topicgraph.Comparison,
			Answer:         desc,
			Steps:          []Step{{Title: "Compare", Text: desc}},
			SmallerExample: "Smaller example: 9 is greater than 6.",
		}
	}

	if m := betweenRe.FindStringSubmatch(q); m != nil {
		a, b := mustInt(m[1]), mustInt(m[2])
		hi, lo := maxMin(a, b)
		var between []int
		for n := lo + 1; n < hi; n++ {
			between = append(between, n)
		}
		ans := "no whole numbers"
		if len(between) > 0 {
			ans = joinInts(between)
		}
		return &TopicResult{
			Topic:  topicgraph.Comparison,
			Answer: ans,
			Steps: []Step{
				{Title: "Find the range", Text: fmt.Sprintf("We want whole numbers between %d and %d (not including them).", a, b)},
				{Title: "Count up", Text: fmt.Sprintf("Start at %d, stop before %d.", lo+1, hi)},
				{Title: "Answer", Text: fmt.Sprintf("Numbers between %d and %d: %s.", a, b, ans)},
			},
			SmallerExample: "Smaller example: numbers between 3 and 7 are 4, 5, 6.",
		}
	}

	return nil
}

func compareDesc(a, b int) string {
	switch {
	case a > b:
		return fmt.Sprintf("%d is greater than %d.", a, b)
	case b > a:
		return fmt.Sprintf("%d is greater than %d.", b, a)
	default:
		return fmt.Sprintf("%d and %d are equal.", a, b)
	}
}

func maxMin(a, b int) (hi, lo int) {
	if a >= b {
		return a, b
	}
	return b, a
}
