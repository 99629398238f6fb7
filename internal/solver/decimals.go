package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var (
	// "3.5 + 2.4", "7.8 - 3.2"
	decimalArithRe = regexp.MustCompile(`(\d+\.\d+)\s*([+\-])\s*(\d+\.\d+)`)
	// "round 3.456 to 2 decimal places"
	roundRe = regexp.MustCompile(`(?i)round\s+(\d+\.\d+)\s+to\s+(\d+)\s+decimal`)
)

// DecimalsSolver handles decimal addition/subtraction and rounding.
// Arithmetic runs in exact fixed point over scaled integers, never binary
// floating point, so 0.1 + 0.2 is exactly 0.3.
type DecimalsSolver struct{}

func (s *DecimalsSolver) Name() string { return "decimals" }

func (s *DecimalsSolver) Attempt(text string) *TopicResult {
	if m := decimalArithRe.FindStringSubmatch(text); m != nil {
		return s.arithmetic(m[1], m[2], m[3])
	}
	if m := roundRe.FindStringSubmatch(text); m != nil {
		return s.round(m[1], mustInt(m[2]))
	}
	return nil
}

func (s *DecimalsSolver) arithmetic(aStr, op, bStr string) *TopicResult {
	a := parseFixed(aStr)
	b := parseFixed(bStr)
	var result fixed
	title := "Add"
	if op == "+" {
		result = a.add(b)
	} else {
		result = a.sub(b)
		title = "Subtract"
	}
	answer := result.trimmed()
	return &TopicResult{
		Topic:  topicgraph.Decimals,
		Answer: answer,
		Steps: []Step{
			{Title: "Line up decimal points", Text: fmt.Sprintf("Write %s and %s with decimal points aligned.", aStr, bStr)},
			{Title: title, Text: fmt.Sprintf("%s %s %s.", aStr, op, bStr)},
			{Title: "Answer", Text: answer + "."},
		},
		SmallerExample: "Smaller example: 1.5 + 2.3 = 3.8",
	}
}

func (s *DecimalsSolver) round(valStr string, places int) *TopicResult {
	v := parseFixed(valStr)
	rounded := v.roundHalfUp(places).String()
	return &TopicResult{
		Topic:  topicgraph.Decimals,
		Answer: rounded,
		Steps: []Step{
			{Title: "Identify rounding place", Text: fmt.Sprintf("We round %s to %d decimal place(s).", valStr, places)},
			{Title: "Look at the next digit", Text: fmt.Sprintf("The digit after the %dth decimal place determines rounding.", places)},
			{Title: "Answer", Text: fmt.Sprintf("%s rounded to %d decimal place(s) = %s.", valStr, places, rounded)},
		},
		SmallerExample: "Smaller example: 3.456 rounded to 2 decimal places = 3.46",
	}
}

// fixed is an exact decimal: value × 10^-scale.
type fixed struct {
	value int64
	scale int
}

func parseFixed(s string) fixed {
	whole, frac, _ := strings.Cut(s, ".")
	var v int64
	for _, c := range whole + frac {
		v = v*10 + int64(c-'0')
	}
	return fixed{value: v, scale: len(frac)}
}

func (f fixed) rescale(scale int) fixed {
	for f.scale < scale {
		f.value *= 10
		f.scale++
	}
	return f
}

func (f fixed) add(o fixed) fixed {
	s := max(f.scale, o.scale)
	return fixed{value: f.rescale(s).value + o.rescale(s).value, scale: s}
}

func (f fixed) sub(o fixed) fixed {
	s := max(f.scale, o.scale)
	return fixed{value: f.rescale(s).value - o.rescale(s).value, scale: s}
}

// roundHalfUp rounds away from the decimal point at the given number of
// places using round-half-up semantics: 3.455 → 3.46 at two places.
func (f fixed) roundHalfUp(places int) fixed {
	if places >= f.scale {
		return f.rescale(places)
	}
	div := int64(1)
	for i := 0; i < f.scale-places; i++ {
		div *= 10
	}
	neg := f.value < 0
	v := f.value
	if neg {
		v = -v
	}
	q, r := v/div, v%div
	if r*2 >= div {
		q++
	}
	if neg {
		q = -q
	}
	return fixed{value: q, scale: places}
}

// String renders with the full scale, keeping trailing zeros: a value
// rounded to 2 places prints "3.40", not "3.4".
func (f fixed) String() string {
	v := f.value
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := fmt.Sprintf("%d", v)
	if f.scale == 0 {
		return sign + digits
	}
	for len(digits) <= f.scale {
		digits = "0" + digits
	}
	cut := len(digits) - f.scale
	return sign + digits[:cut] + "." + digits[cut:]
}

// trimmed renders with trailing fractional zeros removed: 5.90 → 5.9,
// 6.00 → 6.
func (f fixed) trimmed() string {
	s := f.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
