package solver

import (
	"fmt"
	"regexp"
	"strings"
)

// Operation keyword groups, checked top to bottom; first match wins.
// "total", "bought" and "received" stay out: they show up in
// multiplication questions too and must not signal addition.
var (
	addWords = []string{"more", "together", "sum", "combined", "plus", "added", "add", "increased by"}
	subWords = []string{"less", "fewer", "left", "remain", "difference", "minus", "subtract", "took", "gave away", "spent", "lost", "removed", "decreased by", "how many more"}

	// Compound phrases containing "each" must be checked before the bare
	// "each" in mulWords, so "how many in each team" resolves as division.
	divWords = []string{
		"divided", "shared equally", "share equally", "equally among", "equally between",
		"split equally", "split into", "distribute", "how many in each", "how many does each",
		"how many per", "per person", "per team", "per group", "per student",
		"in each team", "in each group", "in each row", "in each box",
		"each team gets", "each group gets", "each person gets", "each student gets",
		"into equal", "into groups of", "make equal groups", "teams of equal",
		"how many each", "each get", "each share",
	}
	divPatterns = []*regexp.Regexp{
		regexp.MustCompile(`makes.*teams`),
		regexp.MustCompile(`makes.*groups`),
	}
	mulWords = []string{
		"times", "groups of", "multiplied", "product", "double", "triple",
		"rows of", "arrays of",
		// bare "each" is the last resort; the compound division phrases
		// above take priority
		"each",
	}

	wordNumberRe = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\b`)

	// "how many students are there in each team?" asks for a per-group
	// quantity; "each packet has 12" gives one as a fact
	eachAsksRate  = regexp.MustCompile(`(how many|how much).{0,30}(in each|per|each\s+\w+\?)`)
	eachGivesRate = regexp.MustCompile(`each\s+\w+\s+(has|have|had|contains|holds|cost|costs|hold)`)
)

// WordProblem is the parsed form of a one-step word problem.
type WordProblem struct {
	Numbers    []float64
	Operation  string
	Expression string
	Answer     string
	Confidence string
}

// NumberList renders every extracted number for display, whole values
// collapsed (5 rather than 5.0).
func (w *WordProblem) NumberList() string {
	parts := make([]string, len(w.Numbers))
	for i, n := range w.Numbers {
		parts[i] = wpNum(n)
	}
	return strings.Join(parts, ", ")
}

// ParseWordProblem extracts the numbers and operation from a word problem
// and computes a best-effort answer from the first two numbers. Returns
// nil when fewer than two numbers appear or no operation keyword matches.
func ParseWordProblem(text string) *WordProblem {
	q := strings.ToLower(strings.TrimSpace(text))
	raw := wordNumberRe.FindAllString(q, -1)
	if len(raw) < 2 {
		return nil
	}
	nums := make([]float64, len(raw))
	for i, r := range raw {
		nums[i] = mustFloat(r)
	}

	op := ""
	for _, w := range addWords {
		if strings.Contains(q, w) {
			op = "+"
			break
		}
	}
	if op == "" {
		for _, w := range subWords {
			if strings.Contains(q, w) {
				op = "-"
				break
			}
		}
	}
	if op == "" {
		for _, w := range divWords {
			if strings.Contains(q, w) {
				op = "÷"
				break
			}
		}
		if op == "" {
			for _, re := range divPatterns {
				if re.MatchString(q) {
					op = "÷"
					break
				}
			}
		}
	}
	if op == "" && strings.Contains(q, "each") {
		if eachAsksRate.MatchString(q) {
			op = "÷"
		} else if eachGivesRate.MatchString(q) {
			op = "×"
		}
	}
	if op == "" {
		for _, w := range mulWords {
			if strings.Contains(q, w) {
				op = "×"
				break
			}
		}
	}
	if op == "" {
		return nil
	}

	a, b := nums[0], nums[1]
	var expr string
	var ans float64
	switch op {
	case "+":
		expr = fmt.Sprintf("%s + %s", wpNum(a), wpNum(b))
		ans = a + b
	case "-":
		large, small := a, b
		if b > a {
			large, small = b, a
		}
		expr = fmt.Sprintf("%s - %s", wpNum(large), wpNum(small))
		ans = large - small
	case "×":
		expr = fmt.Sprintf("%s × %s", wpNum(a), wpNum(b))
		ans = a * b
	case "÷":
		if b == 0 {
			return nil
		}
		expr = fmt.Sprintf("%s ÷ %s", wpNum(a), wpNum(b))
		ans = a / b
	}

	confidence := "medium"
	if len(raw) == 2 {
		confidence = "high"
	}
	return &WordProblem{
		Numbers:    nums,
		Operation:  op,
		Expression: expr,
		Answer:     formatNumber(ans, 4),
		Confidence: confidence,
	}
}

// wpNum renders a parsed number, collapsing whole values.
func wpNum(v float64) string { return formatNumber(v, 4) }
