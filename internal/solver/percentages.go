package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var (
	// "what is 25% of 80"
	percentOfRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*%\s+of\s+(\d+(?:\.\d+)?)`)
	// "25 percent of 80"
	percentWordRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s+percent\s+of\s+(\d+(?:\.\d+)?)`)
	// "20 is what % of 80"
	whatPercentRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s+is\s+what\s+(?:percent|%)\s+of\s+(\d+(?:\.\d+)?)`)
	// "80 increased by 25%", "100 taka discounted by 20%"
	percentChangeRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:taka|£|\$|₹|€)?\s+(?:increased?|decreased?|discount|off)\s+by\s+(\d+(?:\.\d+)?)\s*%`)
)

// PercentagesSolver handles percent-of, reverse percent and percent-change
// questions.
type PercentagesSolver struct{}

func (s *PercentagesSolver) Name() string { return "percentages" }

func (s *PercentagesSolver) Attempt(text string) *TopicResult {
	m := percentOfRe.FindStringSubmatch(text)
	if m == nil {
		m = percentWordRe.FindStringSubmatch(text)
	}
	if m != nil {
		return s.percentOf(mustFloat(m[1]), mustFloat(m[2]))
	}
	if m := whatPercentRe.FindStringSubmatch(text); m != nil {
		return s.whatPercent(mustFloat(m[1]), mustFloat(m[2]))
	}
	if m := percentChangeRe.FindStringSubmatch(text); m != nil {
		return s.percentChange(text, mustFloat(m[1]), mustFloat(m[2]))
	}
	return nil
}

func (s *PercentagesSolver) percentOf(pct, whole float64) *TopicResult {
	ans := pct / 100 * whole
	return &TopicResult{
		Topic:  topicgraph.Percentages,
		Answer: fmtPct(ans),
		Steps: []Step{
			{Title: "Percent means per hundred", Text: fmt.Sprintf("%s%% means %s out of 100.", fmtPct(pct), fmtPct(pct))},
			{Title: "Set up the calculation", Text: fmt.Sprintf("%s%% of %s = (%s ÷ 100) × %s.", fmtPct(pct), fmtPct(whole), fmtPct(pct), fmtPct(whole))},
			{Title: "Calculate", Text: fmt.Sprintf("%s × %s = %s.", formatNumber(pct/100, 4), fmtPct(whole), fmtPct(ans))},
		},
		SmallerExample: "Smaller example: 10% of 50 = 5",
	}
}

func (s *PercentagesSolver) whatPercent(part, whole float64) *TopicResult {
	if whole == 0 {
		return nil
	}
	pct := part / whole * 100
	return &TopicResult{
		Topic:  topicgraph.Percentages,
		Answer: fmtPct(pct) + "%",
		Steps: []Step{
			{Title: "Fraction first", Text: fmt.Sprintf("%s out of %s = %s/%s.", fmtPct(part), fmtPct(whole), fmtPct(part), fmtPct(whole))},
			{Title: "Convert to percent", Text: fmt.Sprintf("(%s ÷ %s) × 100 = %s%%.", fmtPct(part), fmtPct(whole), fmtPct(pct))},
			{Title: "Answer", Text: fmt.Sprintf("%s is %s%% of %s.", fmtPct(part), fmtPct(pct), fmtPct(whole))},
		},
		SmallerExample: "Smaller example: 25 is what % of 100 → 25%",
	}
}

func (s *PercentagesSolver) percentChange(text string, amount, pct float64) *TopicResult {
	change := pct / 100 * amount
	increase := strings.Contains(strings.ToLower(text), "increas")
	result := amount - change
	verb := "discounted / decreased"
	sign := "-"
	if increase {
		result = amount + change
		verb = "increased"
		sign = "+"
	}
	return &TopicResult{
		Topic:  topicgraph.Percentages,
		Answer: fmtPct(result),
		Steps: []Step{
			{Title: "Find the change amount", Text: fmt.Sprintf("%s%% of %s = %s.", fmtPct(pct), fmtPct(amount), fmtPct(change))},
			{Title: fmt.Sprintf("Apply the %s change", verb), Text: fmt.Sprintf("%s %s %s = %s.", fmtPct(amount), sign, fmtPct(change), fmtPct(result))},
			{Title: "Answer", Text: fmt.Sprintf("Result: %s.", fmtPct(result))},
		},
		SmallerExample: "Smaller example: 20% off 100 taka → save 20, pay 80 taka",
	}
}

// fmtPct collapses whole values to integers and trims the rest to two
// decimals.
func fmtPct(v float64) string {
	return formatNumber(v, 2)
}
