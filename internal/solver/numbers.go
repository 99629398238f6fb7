package solver

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intRe     = regexp.MustCompile(`\d+`)
	decimalRe = regexp.MustCompile(`\b\d+\.\d+\b`)
	numberRe  = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// extractInts returns every integer literal in text order.
func extractInts(text string) []int {
	var out []int
	for _, m := range intRe.FindAllString(text, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// extractNumbers returns every integer or decimal literal in text order.
func extractNumbers(text string) []float64 {
	var out []float64
	for _, m := range numberRe.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// hasDecimalLiteral reports whether text contains a decimal number.
func hasDecimalLiteral(text string) bool {
	return decimalRe.MatchString(text)
}

// formatNumber renders v as an integer string when it is whole, otherwise
// as a fixed-point string with up to places decimals, trailing zeros
// trimmed. All solvers format through here so "15", never "15.0".
func formatNumber(v float64, places int) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', places, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// mustFloat converts a literal already matched by a number group.
func mustFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// gcd returns the greatest common divisor of a and b.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns the least common multiple of a and b.
func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p < 0 {
		p = -p
	}
	return p / gcd(a, b)
}
