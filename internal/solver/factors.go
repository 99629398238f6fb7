package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var (
	factorsRe   = regexp.MustCompile(`(?i)factors?\s+of\s+(\d+)`)
	multiplesRe = regexp.MustCompile(`(?i)(?:first\s+(\d+)\s+)?multiples?\s+of\s+(\d+)`)
	lcmRe       = regexp.MustCompile(`(?i)lcm\s+of\s+(\d+)\s+and\s+(\d+)|least common multiple\s+of\s+(\d+)\s+and\s+(\d+)`)
	gcdRe       = regexp.MustCompile(`(?i)(?:gcd|hcf|highest common factor|greatest common)\s+of\s+(\d+)\s+and\s+(\d+)`)
	primeRe     = regexp.MustCompile(`(?i)is\s+(\d+)\s+(?:a\s+)?prime`)
)

// FactorsMultiplesSolver handles factor listing, multiples, LCM, GCD/HCF
// and primality questions.
type FactorsMultiplesSolver struct{}

func (s *FactorsMultiplesSolver) Name() string { return "multiples_factors" }

func (s *FactorsMultiplesSolver) Attempt(text string) *TopicResult {
	if m := factorsRe.FindStringSubmatch(text); m != nil {
		return s.factors(mustInt(m[1]))
	}
	// LCM before multiples: "least common multiple of 3 and 5" also
	// matches the multiples pattern.
	if m := lcmRe.FindStringSubmatch(text); m != nil {
		a, b := firstGroup(m[1], m[3]), firstGroup(m[2], m[4])
		return s.lcm(a, b)
	}
	if m := multiplesRe.FindStringSubmatch(text); m != nil {
		count := 10
		if m[1] != "" {
			count = mustInt(m[1])
		}
		return s.multiples(count, mustInt(m[2]))
	}
	if m := gcdRe.FindStringSubmatch(text); m != nil {
		return s.gcd(mustInt(m[1]), mustInt(m[2]))
	}
	if m := primeRe.FindStringSubmatch(text); m != nil {
		return s.prime(mustInt(m[1]))
	}
	return nil
}

func (s *FactorsMultiplesSolver) factors(n int) *TopicResult {
	fstr := joinInts(factorsOf(n))
	return &TopicResult{
		Topic:  topicgraph.MultiplesFactors,
		Answer: fstr,
		Steps: []Step{
			{Title: "What are factors?", Text: fmt.Sprintf("Factors of %d are numbers that divide %d exactly with no remainder.", n, n)},
			{Title: "Check each number", Text: fmt.Sprintf("Check 1 to %d: which ones divide %d evenly?", n, n)},
			{Title: "Answer", Text: fmt.Sprintf("Factors of %d: %s.", n, fstr)},
		},
		SmallerExample: "Smaller example: factors of 12 are 1, 2, 3, 4, 6, 12.",
	}
}

func (s *FactorsMultiplesSolver) multiples(count, n int) *TopicResult {
	if count > 20 {
		count = 20
	}
	vals := make([]int, count)
	for i := 1; i <= count; i++ {
		vals[i-1] = n * i
	}
	mstr := joinInts(vals)
	return &TopicResult{
		Topic:  topicgraph.MultiplesFactors,
		Answer: mstr,
		Steps: []Step{
			{Title: "What are multiples?", Text: fmt.Sprintf("Multiples of %d are the results of multiplying %d by 1, 2, 3, 4...", n, n)},
			{Title: "List them", Text: fmt.Sprintf("%d×1=%d, %d×2=%d, %d×3=%d...", n, n, n, n*2, n, n*3)},
			{Title: "Answer", Text: fmt.Sprintf("First %d multiples of %d: %s.", count, n, mstr)},
		},
		SmallerExample: "Smaller example: multiples of 5 → 5, 10, 15, 20, 25...",
	}
}

func (s *FactorsMultiplesSolver) lcm(a, b int) *TopicResult {
	if a == 0 && b == 0 {
		return nil
	}
	v := lcm(a, b)
	return &TopicResult{
		Topic:  topicgraph.MultiplesFactors,
		Answer: fmt.Sprintf("%d", v),
		Steps: []Step{
			{Title: "Find LCM", Text: fmt.Sprintf("LCM is the smallest number that is a multiple of both %d and %d.", a, b)},
			{Title: "Formula", Text: fmt.Sprintf("LCM = (%d × %d) ÷ GCD(%d,%d) = %d ÷ %d.", a, b, a, b, a*b, gcd(a, b))},
			{Title: "Answer", Text: fmt.Sprintf("LCM of %d and %d = %d.", a, b, v)},
		},
		SmallerExample: "Smaller example: LCM of 4 and 6 = 12",
	}
}

func (s *FactorsMultiplesSolver) gcd(a, b int) *TopicResult {
	g := gcd(a, b)
	return &TopicResult{
		Topic:  topicgraph.MultiplesFactors,
		Answer: fmt.Sprintf("%d", g),
		Steps: []Step{
			{Title: "Find HCF/GCD", Text: fmt.Sprintf("HCF is the largest number that divides both %d and %d exactly.", a, b)},
			{Title: "List common factors", Text: fmt.Sprintf("Factors of %d: %s. Factors of %d: %s.", a, joinInts(factorsOf(a)), b, joinInts(factorsOf(b)))},
			{Title: "Answer", Text: fmt.Sprintf("HCF of %d and %d = %d.", a, b, g)},
		},
		SmallerExample: "Smaller example: HCF of 12 and 8 = 4",
	}
}

func (s *FactorsMultiplesSolver) prime(n int) *TopicResult {
	prime := isPrime(n)
	var answer, detail string
	if prime {
		answer = fmt.Sprintf("Yes, %d is a prime number.", n)
		detail = fmt.Sprintf("Yes, %d is a prime. Its factors are only 1 and %d.", n, n)
	} else {
		answer = fmt.Sprintf("No, %d is not a prime number.", n)
		detail = fmt.Sprintf("No, %d is not a prime. It divides by %d, so it's not prime.", n, smallestDivisor(n))
	}
	return &TopicResult{
		Topic:  topicgraph.MultiplesFactors,
		Answer: answer,
		Steps: []Step{
			{Title: "What is a prime?", Text: "A prime number has exactly 2 factors: 1 and itself."},
			{Title: fmt.Sprintf("Check %d", n), Text: fmt.Sprintf("Does %d divide evenly by any number other than 1 and %d?", n, n)},
			{Title: "Answer", Text: detail},
		},
		SmallerExample: "Smaller example: 7 is prime (factors: 1, 7). 6 is not prime (factors: 1, 2, 3, 6).",
	}
}

// factorsOf returns every divisor of n from 1 to n by exhaustive scan.
func factorsOf(n int) []int {
	var out []int
	for i := 1; i <= n; i++ {
		if n%i == 0 {
			out = append(out, i)
		}
	}
	return out
}

// isPrime uses trial division up to √n.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// smallestDivisor returns the smallest divisor of n greater than 1, or n
// itself when n is prime or below 2.
func smallestDivisor(n int) int {
	for i := 2; i < n; i++ {
		if n%i == 0 {
			return i
		}
	}
	return n
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

// firstText returns the first non-empty capture. Alternation regexes fill
// only one side's groups.
func firstText(groups ...string) string {
	for _, s := range groups {
		if s != "" {
			return s
		}
	}
	return ""
}

// firstGroup is firstText for integer captures.
func firstGroup(groups ...string) int {
	return mustInt(firstText(groups...))
}
