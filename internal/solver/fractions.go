package solver

import (
	"fmt"
	"regexp"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var (
	// "1/2 of 8", "3/4 of 20"
	fractionOfRe = regexp.MustCompile(`(?i)(\d+)\s*/\s*(\d+)\s+of\s+(\d+)`)
	// "1/2 + 1/2", "3/4 - 1/4"
	fractionAddSubRe = regexp.MustCompile(`(\d+)\s*/\s*(\d+)\s*([+\-])\s*(\d+)\s*/\s*(\d+)`)
	fractionPairRe   = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)
	compareWordRe    = regexp.MustCompile(`(?i)\b(compare|bigger|smaller|greater|less|which|vs)\b`)
)

// FractionsSolver handles fraction-of-a-whole, same-denominator addition
// and subtraction, and comparison of two fractions.
type FractionsSolver struct{}

func (s *FractionsSolver) Name() string { return "fractions" }

func (s *FractionsSolver) Attempt(text string) *TopicResult {
	if r := s.fractionOf(text); r != nil {
		return r
	}
	if r := s.addSub(text); r != nil {
		return r
	}
	return s.compare(text)
}

func (s *FractionsSolver) fractionOf(text string) *TopicResult {
	m := fractionOfRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	numer, denom, whole := mustInt(m[1]), mustInt(m[2]), mustInt(m[3])
	if denom == 0 {
		return nil
	}
	var answer, product string
	if whole%denom == 0 {
		part := whole / denom
		answer = fmt.Sprintf("%d", part*numer)
		product = fmt.Sprintf("%d × %d", numer, part)
	} else {
		v := float64(whole) / float64(denom) * float64(numer)
		answer = formatNumber(v, 2)
		product = fmt.Sprintf("%d × %.1f", numer, float64(whole)/float64(denom))
	}
	return &TopicResult{
		Topic:  topicgraph.Fractions,
		Answer: answer,
		Steps: []Step{
			{Title: "Understand the fraction", Text: fmt.Sprintf("%d/%d means %d out of %d equal parts.", numer, denom, numer, denom)},
			{Title: "Divide into equal parts", Text: fmt.Sprintf("Divide %d into %d equal parts. Each part = %d/%d.", whole, denom, whole, denom)},
			{Title: "Take the parts", Text: fmt.Sprintf("Take %d part(s). %s = %s.", numer, product, answer)},
		},
		SmallerExample: "Smaller example: 1/2 of 10 = 5",
	}
}

func (s *FractionsSolver) addSub(text string) *TopicResult {
	m := fractionAddSubRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n1, d1, op, n2, d2 := mustInt(m[1]), mustInt(m[2]), m[3], mustInt(m[4]), mustInt(m[5])
	if d1 != d2 || d1 == 0 {
		return nil
	}
	resultN := n1 + n2
	verb := "add"
	if op == "-" {
		resultN = n1 - n2
		verb = "subtract"
	}
	sn, sd := simplifyFraction(resultN, d1)
	answer := fmt.Sprintf("%d/%d", sn, sd)
	if sd == 1 {
		answer = fmt.Sprintf("%d", sn)
	}
	title := "Add numerators"
	if op == "-" {
		title = "Subtract numerators"
	}
	return &TopicResult{
		Topic:  topicgraph.Fractions,
		Answer: answer,
		Steps: []Step{
			{Title: "Same denominator", Text: fmt.Sprintf("Both fractions have denominator %d, so we %s just the top numbers.", d1, verb)},
			{Title: title, Text: fmt.Sprintf("%d %s %d = %d.", n1, op, n2, resultN)},
			{Title: "Result", Text: fmt.Sprintf("Answer: %s. Each part is 1/%d of the whole.", answer, d1)},
		},
		SmallerExample: "Smaller example: 1/4 + 2/4 = 3/4",
	}
}

// compare must run before the comparison solver would intercept phrasings
// like "compare 3/4 and 1/2".
func (s *FractionsSolver) compare(text string) *TopicResult {
	fracs := fractionPairRe.FindAllStringSubmatch(text, -1)
	if len(fracs) < 2 || !compareWordRe.MatchString(text) {
		return nil
	}
	n1, d1 := mustInt(fracs[0][1]), mustInt(fracs[0][2])
	n2, d2 := mustInt(fracs[1][1]), mustInt(fracs[1][2])
	if d1 <= 0 || d2 <= 0 {
		return nil
	}
	v1 := float64(n1) / float64(d1)
	v2 := float64(n2) / float64(d2)
	var desc, sign string
	switch {
	case v1 > v2:
		desc = fmt.Sprintf("%d/%d is greater than %d/%d.", n1, d1, n2, d2)
		sign = ">"
	case v2 > v1:
		desc = fmt.Sprintf("%d/%d is greater than %d/%d.", n2, d2, n1, d1)
		sign = "<"
	default:
		desc = fmt.Sprintf("%d/%d and %d/%d are equal.", n1, d1, n2, d2)
		sign = "="
	}
	return &TopicResult{
		Topic:  topicgraph.Fractions,
		Answer: desc,
		Steps: []Step{
			{Title: "Convert to decimals", Text: fmt.Sprintf("%d/%d = %.3f,  %d/%d = %.3f.", n1, d1, v1, n2, d2, v2)},
			{Title: "Compare", Text: fmt.Sprintf("%.3f %s %.3f.", v1, sign, v2)},
			{Title: "Answer", Text: desc},
		},
		SmallerExample: "Smaller example: 3/4 > 1/2 because 0.75 > 0.5",
	}
}

// simplifyFraction reduces num/den by their GCD. den 1 means the fraction
// reduced to a whole number.
func simplifyFraction(num, den int) (int, int) {
	if den == 0 {
		return num, den
	}
	common := gcd(num, den)
	if common == 0 {
		return num, den
	}
	return num / common, den / common
}
