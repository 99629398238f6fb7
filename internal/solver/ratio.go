package solver

import (
	"fmt"
	"regexp"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var (
	// "ratio of 4 to 6" / "4:6"
	ratioRe = regexp.MustCompile(`(?i)ratio\s+(?:of\s+)?(\d+)\s+(?:to\s+|:)(\d+)|(\d+)\s*:\s*(\d+)`)
	// "divide 20 in ratio 2:3"
	divideRatioRe = regexp.MustCompile(`(?i)divide\s+(\d+)\s+(?:in|into)\s+(?:ratio\s+)?(\d+)\s*:\s*(\d+)`)
	// "if 3 pens cost 12, what does 7 cost?" — unitary method
	unitaryRe = regexp.MustCompile(`(?i)if\s+(\d+)\s+\S+\s+(?:cost|weigh|measure|is|are)\s+(\d+(?:\.\d+)?),?\s+(?:what|how much)\s+(?:does?\s+)?(\d+)`)
)

// RatioSolver handles dividing a quantity in a ratio, simplifying a ratio
// and the unitary method.
type RatioSolver struct{}

func (s *RatioSolver) Name() string { return "ratio" }

func (s *RatioSolver) Attempt(text string) *TopicResult {
	if m := divideRatioRe.FindStringSubmatch(text); m != nil {
		return s.divideInRatio(mustInt(m[1]), mustInt(m[2]), mustInt(m[3]))
	}
	if m := ratioRe.FindStringSubmatch(text); m != nil {
		a := firstGroup(m[1], m[3])
		b := firstGroup(m[2], m[4])
		return s.simplify(a, b)
	}
	if m := unitaryRe.FindStringSubmatch(text); m != nil {
		return s.unitary(mustInt(m[1]), mustFloat(m[2]), mustInt(m[3]))
	}
	return nil
}

func (s *RatioSolver) divideInRatio(total, r1, r2 int) *TopicResult {
	parts := r1 + r2
	if parts == 0 {
		return nil
	}
	share1 := float64(r1) / float64(parts) * float64(total)
	share2 := float64(r2) / float64(parts) * float64(total)
	s1 := formatNumber(share1, 2)
	s2 := formatNumber(share2, 2)
	perPart := formatNumber(float64(total)/float64(parts), 2)
	return &TopicResult{
		Topic:  topicgraph.Ratio,
		Answer: fmt.Sprintf("%s and %s", s1, s2),
		Steps: []Step{
			{Title: "Total parts", Text: fmt.Sprintf("Ratio %d:%d means %d equal parts in total.", r1, r2, parts)},
			{Title: "Value of each part", Text: fmt.Sprintf("%d ÷ %d = %s per part.", total, parts, perPart)},
			{Title: "Share out", Text: fmt.Sprintf("First share: %d × %s = %s. Second share: %s.", r1, perPart, s1, s2)},
		},
		SmallerExample: "Smaller example: divide 10 in ratio 2:3 → 4 and 6",
	}
}

func (s *RatioSolver) simplify(a, b int) *TopicResult {
	g := gcd(a, b)
	if g == 0 {
		return nil
	}
	sa, sb := a/g, b/g
	return &TopicResult{
		Topic:  topicgraph.Ratio,
		Answer: fmt.Sprintf("%d:%d", sa, sb),
		Steps: []Step{
			{Title: "Write the ratio", Text: fmt.Sprintf("The ratio is %d:%d.", a, b)},
			{Title: "Simplify", Text: fmt.Sprintf("Find GCD of %d and %d: GCD = %d.", a, b, g)},
			{Title: "Simplest form", Text: fmt.Sprintf("%d÷%d : %d÷%d = %d:%d.", a, g, b, g, sa, sb)},
		},
		SmallerExample: "Smaller example: 4:6 = 2:3",
	}
}

func (s *RatioSolver) unitary(qty1 int, cost1 float64, qty2 int) *TopicResult {
	if qty1 == 0 {
		return nil
	}
	unitCost := cost1 / float64(qty1)
	totalCost := unitCost * float64(qty2)
	unitStr := formatNumber(unitCost, 4)
	totalStr := formatNumber(totalCost, 2)
	return &TopicResult{
		Topic:  topicgraph.Ratio,
		Answer: totalStr,
		Steps: []Step{
			{Title: "Find unit cost", Text: fmt.Sprintf("If %d items cost %s, then 1 item costs %s ÷ %d = %s.", qty1, formatNumber(cost1, 2), formatNumber(cost1, 2), qty1, unitStr)},
			{Title: "Scale up", Text: fmt.Sprintf("%d items cost %d × %s = %s.", qty2, qty2, unitStr, totalStr)},
			{Title: "Answer", Text: fmt.Sprintf("Cost for %d: %s.", qty2, totalStr)},
		},
		SmallerExample: "Smaller example: 3 pens cost 12, so 1 pen costs 4, and 5 pens cost 20.",
	}
}
