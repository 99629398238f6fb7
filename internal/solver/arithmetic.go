package solver

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// Matches both bare "34 + 27" and wrapped "What is 34 + 27?" forms; the
// optional trailing "= ?" keeps "12 + 5 = ?" on the fast path.
var (
	addSubRe        = regexp.MustCompile(`(?i)(?:^|\b)(\d{1,6})\s*([+\-])\s*(\d{1,6})(?:\s*=\s*[?_]*)?\s*$`)
	mulDivRe        = regexp.MustCompile(`(?i)(?:^|\b)(\d{1,6})\s*([xX*÷/])\s*(\d{1,6})(?:\s*=\s*[?_]*)?\s*$`)
	wrapperAddSubRe = regexp.MustCompile(`\b(\d{1,6})\s*([+\-])\s*(\d{1,6})\b`)
	wrapperMulDivRe = regexp.MustCompile(`\b(\d{1,6})\s*([xX*÷/])\s*(\d{1,6})\b`)

	fractionContextRe = regexp.MustCompile(`(?i)\b(fraction|half|quarter|third|of the|\d+/\d+)\b`)
	fractionWordRe    = regexp.MustCompile(`(?i)\b(fraction|half|quarter|third|of the)\b`)
	mulDivPresentRe   = regexp.MustCompile(`\b\d+\s*[xX*÷/]\s*\d+`)
	smallFractionRe   = regexp.MustCompile(`\b(\d)\s*/\s*(\d)\b`)
	fractionVerbRe    = regexp.MustCompile(`(?i)\b(of|fraction|compare|bigger|smaller|add)\b`)
)

// FastPathSolvers returns the arithmetic rules attempted before the topic
// family. Both decline fraction and decimal contexts so "1/2 + 1/4" and
// "3.5 + 1.2" reach their own solvers.
func FastPathSolvers() []Solver {
	return []Solver{
		&AddSubSolver{},
		&MulDivSolver{},
	}
}

// AddSubSolver handles integer addition and subtraction expressions.
type AddSubSolver struct{}

func (s *AddSubSolver) Name() string { return "arithmetic_add_sub" }

func (s *AddSubSolver) Attempt(text string) *TopicResult {
	if fractionContextRe.MatchString(text) {
		return nil
	}
	if hasDecimalLiteral(text) {
		return nil
	}
	m := addSubRe.FindStringSubmatch(text)
	if m == nil {
		m = wrapperAddSubRe.FindStringSubmatch(text)
	}
	if m == nil {
		return nil
	}
	// A multiplication or division expression alongside means this is not
	// a plain add/subtract question.
	if mulDivPresentRe.MatchString(text) {
		return nil
	}
	a, b := mustInt(m[1]), mustInt(m[3])
	op := m[2]
	var ans int
	topic := topicgraph.Addition
	if op == "+" {
		ans = a + b
	} else {
		ans = a - b
		topic = topicgraph.Subtraction
	}
	return &TopicResult{
		Topic:          topic,
		Answer:         fmt.Sprintf("%d", ans),
		Steps:          stepsForAddSub(a, op, b, ans),
		SmallerExample: smallerExample(op),
	}
}

// MulDivSolver handles integer multiplication and division expressions,
// including remainder division and the explicit divide-by-zero result.
type MulDivSolver struct{}

func (s *MulDivSolver) Name() string { return "arithmetic_mul_div" }

func (s *MulDivSolver) Attempt(text string) *TopicResult {
	if fractionWordRe.MatchString(text) {
		return nil
	}
	// A single-digit a/b next to fraction-ish words is a fraction, not a
	// division: "compare 3/4 and 1/2".
	if smallFractionRe.MatchString(text) && fractionVerbRe.MatchString(text) {
		return nil
	}
	m := mulDivRe.FindStringSubmatch(text)
	if m == nil {
		m = wrapperMulDivRe.FindStringSubmatch(text)
	}
	if m == nil {
		return nil
	}
	a, b := mustInt(m[1]), mustInt(m[3])
	op := m[2]
	if op == "x" || op == "X" || op == "*" {
		ans := a * b
		return &TopicResult{
			Topic:          topicgraph.Multiplication,
			Answer:         fmt.Sprintf("%d", ans),
			Steps:          stepsForMul(a, b, ans),
			SmallerExample: smallerExample(op),
		}
	}
	if b == 0 {
		return &TopicResult{
			Topic:          topicgraph.Division,
			Answer:         "Cannot divide by zero.",
			Steps:          []Step{{Title: "Error", Text: "Division by zero is not allowed."}},
			SmallerExample: "Example: 8 ÷ 2 = 4",
		}
	}
	quotient, remainder := a/b, a%b
	answer := fmt.Sprintf("%d", quotient)
	if remainder > 0 {
		answer = fmt.Sprintf("%d remainder %d", quotient, remainder)
	}
	return &TopicResult{
		Topic:          topicgraph.Division,
		Answer:         answer,
		Steps:          stepsForDiv(a, b, quotient, remainder),
		SmallerExample: smallerExample(op),
	}
}

func stepsForAddSub(a int, op string, b, ans int) []Step {
	if op == "+" {
		return []Step{
			{Title: "What we need to do", Text: fmt.Sprintf("We add %d and %d.", a, b)},
			{Title: "Count on", Text: fmt.Sprintf("Start at %d. Count up %d times.", a, b)},
			{Title: "Result", Text: fmt.Sprintf("After counting up %d times, we get %d.", b, ans)},
		}
	}
	return []Step{
		{Title: "What we need to do", Text: fmt.Sprintf("We subtract %d from %d.", b, a)},
		{Title: "Count back", Text: fmt.Sprintf("Start at %d. Count back %d times.", a, b)},
		{Title: "Result", Text: fmt.Sprintf("After counting back %d times, we get %d.", b, ans)},
	}
}

func stepsForMul(a, b, ans int) []Step {
	return []Step{
		{Title: "What it means", Text: fmt.Sprintf("%d × %d means %d groups of %d.", a, b, a, b)},
		{Title: "Make groups", Text: fmt.Sprintf("Make %d groups. Put %d counters in each group.", a, b)},
		{Title: "Count all", Text: fmt.Sprintf("Count all counters. Total is %d.", ans)},
	}
}

func stepsForDiv(a, b, quotient, remainder int) []Step {
	if remainder == 0 {
		return []Step{
			{Title: "What it means", Text: fmt.Sprintf("%d ÷ %d means sharing %d equally into %d groups.", a, b, a, b)},
			{Title: "Share equally", Text: fmt.Sprintf("Put the %d items into %d groups.", a, b)},
			{Title: "Result", Text: fmt.Sprintf("Each group gets %d.", quotient)},
		}
	}
	return []Step{
		{Title: "What it means", Text: fmt.Sprintf("%d ÷ %d means sharing %d into groups of %d.", a, b, a, b)},
		{Title: "Share equally", Text: fmt.Sprintf("Each group gets %d, with %d left over.", quotient, remainder)},
		{Title: "Result", Text: fmt.Sprintf("Quotient: %d, Remainder: %d.", quotient, remainder)},
	}
}

func smallerExample(op string) string {
	switch op {
	case "+":
		return "Smaller example: 5 + 2 = 7"
	case "-":
		return "Smaller example: 7 - 2 = 5"
	case "x", "X", "*":
		return "Smaller example: 3 x 2 = 6"
	case "÷", "/":
		return "Smaller example: 8 ÷ 2 = 4"
	}
	return "Smaller example: 5 + 2 = 7"
}

// mustInt converts digits already matched by a \d+ group.
func mustInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
