package curriculum

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/engine"
	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// Check is the input for one advisory pass: the question as asked plus
// what the engine concluded about it. Nil pointer fields mean "unknown".
type Check struct {
	Question string
	Topic    string
	Op       string // "+", "-", "x", "/" or "" when no expression was found
	Answer   *int   // integer answer when the result was a plain integer
	A, B     *int   // operands when an expression was found
}

var checkExprRe = regexp.MustCompile(`(\d+)\s*([+\-xX*/÷])\s*(\d+)`)

// CheckFromResult derives a Check from a question and its solve result.
func CheckFromResult(question string, r engine.SolveResult) Check {
	c := Check{Question: question, Topic: string(r.Topic)}

	if m := checkExprRe.FindStringSubmatch(question); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[3])
		c.A, c.B = &a, &b
		c.Op = normalizeCheckOp(m[2])
	}

	if n, err := strconv.Atoi(strings.TrimSpace(r.Answer)); err == nil {
		c.Answer = &n
	}
	return c
}

func normalizeCheckOp(op string) string {
	switch op {
	case "x", "X", "*":
		return "x"
	case "/", "÷":
		return "/"
	default:
		return op
	}
}

var (
	numberLitRe   = regexp.MustCompile(`\d+`)
	decimalLitRe  = regexp.MustCompile(`\b\d+\.\d+\b`)
	fractionLitRe = regexp.MustCompile(`\b(\d+)\s*/\s*(\d+)\b`)
)

func numberLiterals(q string) []int {
	var vals []int
	for _, m := range numberLitRe.FindAllString(q, -1) {
		if n, err := strconv.Atoi(m); err == nil {
			vals = append(vals, n)
		}
	}
	return vals
}

func decimalLiterals(q string) []string {
	return decimalLitRe.FindAllString(q, -1)
}

func fractionLiterals(q string) []string {
	var lits []string
	for _, m := range fractionLitRe.FindAllStringSubmatch(q, -1) {
		lits = append(lits, m[1]+"/"+m[2])
	}
	return lits
}

// Advise checks one solved question against the policy and returns a
// syllabus note, or "" when the question is within scope. Checks run in
// a fixed order; the first hit wins.
func Advise(p *Policy, c Check) string {
	if p == nil {
		return ""
	}

	vars := map[string]string{
		"topic":       c.Topic,
		"class_level": strconv.Itoa(p.ClassLevel),
		"curriculum":  p.Curriculum,
	}

	if note := p.adviseFractions(c, vars); note != "" {
		return note
	}

	if !boolOr(p.Constraints.AllowDecimals, true) {
		if len(decimalLiterals(c.Question)) > 0 && c.Topic != "currency" {
			return p.message("decimal_out_of_scope",
				"Decimals are out of scope for this class.", vars)
		}
	}

	if p.TopicsInScope != nil && c.Topic != "" && c.Topic != string(topicgraph.General) {
		if !contains(p.TopicsInScope, c.Topic) {
			return p.message("out_of_scope_topic",
				"This topic is outside the current class syllabus.", vars)
		}
	}

	if max := p.Constraints.MaxNumber; max != nil {
		values := numberLiterals(c.Question)
		if c.Answer != nil {
			values = append(values, abs(*c.Answer))
		}
		for _, v := range values {
			if v > *max {
				vars["max_number"] = strconv.Itoa(*max)
				return p.message("max_number_exceeded",
					"This is advanced for this class level.", vars)
			}
		}
	}

	if note := p.adviseSubtraction(c); note != "" {
		return note
	}

	add := p.TopicConstraints.Addition
	if add.EnforceGlobally && c.Op == "+" && c.Answer != nil && add.MaxSum != nil {
		if *c.Answer > *add.MaxSum {
			return p.message("addition_too_large",
				"This sum is above the current topic limit.", map[string]string{
					"max_sum": strconv.Itoa(*add.MaxSum),
					"result":  strconv.Itoa(*c.Answer),
				})
		}
	}

	if note := p.adviseRange(c.Topic, "counting", p.TopicConstraints.Counting,
		numberLiterals(c.Question), "counting_range", "Counting is out of allowed range."); note != "" {
		return note
	}

	ordVals := numberLiterals(c.Question)
	if len(ordVals) > 1 {
		ordVals = ordVals[:1] // ordinal checks look at the position only
	}
	if note := p.adviseRange(c.Topic, "ordinal_numbers", p.TopicConstraints.OrdinalNumbers,
		ordVals, "ordinal_range", "Ordinal position is out of allowed range."); note != "" {
		return note
	}

	if note := p.adviseTimesTable(c); note != "" {
		return note
	}

	div := p.TopicConstraints.Division
	if c.Op == "/" && c.B != nil && *c.B == 0 && !boolOr(div.AllowDivisionByZero, true) {
		return p.message("division_by_zero", "Division by zero is impossible.", nil)
	}

	return ""
}

func (p *Policy) adviseFractions(c Check, vars map[string]string) string {
	allowed := boolOr(p.Constraints.AllowFractions, true)

	if !allowed && c.Topic == "fractions" {
		return p.message("fraction_out_of_scope",
			"Fractions are out of scope for this class.", vars)
	}

	if allowed && c.Topic == "fractions" {
		visual := p.TopicConstraints.Fractions.AllowedVisualFractions
		if len(visual) > 0 {
			lits := fractionLiterals(c.Question)
			if len(lits) > 0 && !allIn(lits, visual) {
				return p.message("fraction_out_of_scope",
					"Please use allowed class fractions.", vars)
			}
		}
	}
	return ""
}

func (p *Policy) adviseSubtraction(c Check) string {
	if c.Op != "-" || c.Answer == nil {
		return ""
	}
	allowNegative := boolOr(p.Constraints.AllowNegative, true)
	minResult := p.TopicConstraints.Subtraction.MinResult

	if (!allowNegative && *c.Answer < 0) || (minResult != nil && *c.Answer < *minResult) {
		vars := map[string]string{"result": strconv.Itoa(*c.Answer)}
		if c.A != nil {
			vars["a"] = strconv.Itoa(*c.A)
		}
		if c.B != nil {
			vars["b"] = strconv.Itoa(*c.B)
		}
		return p.message("negative_subtraction",
			"We cannot subtract to get a negative result.", vars)
	}
	return ""
}

func (p *Policy) adviseRange(topic, want string, rules RangeRules, vals []int, key, fallback string) string {
	if topic != want || (rules.Min == nil && rules.Max == nil) {
		return ""
	}
	vars := map[string]string{}
	if rules.Min != nil {
		vars["min_value"] = strconv.Itoa(*rules.Min)
	}
	if rules.Max != nil {
		vars["max_value"] = strconv.Itoa(*rules.Max)
	}
	for _, v := range vals {
		if rules.Min != nil && v < *rules.Min {
			return p.message(key, fallback, vars)
		}
		if rules.Max != nil && v > *rules.Max {
			return p.message(key, fallback, vars)
		}
	}
	return ""
}

func (p *Policy) adviseTimesTable(c Check) string {
	rules := p.TopicConstraints.Multiplication
	if c.Op != "x" || (rules.TableMin == nil && rules.TableMax == nil) {
		return ""
	}
	vars := map[string]string{}
	if rules.TableMin != nil {
		vars["min_value"] = strconv.Itoa(*rules.TableMin)
	}
	if rules.TableMax != nil {
		vars["max_value"] = strconv.Itoa(*rules.TableMax)
	}
	for _, f := range []*int{c.A, c.B} {
		if f == nil {
			continue
		}
		if rules.TableMin != nil && *f < *rules.TableMin {
			return p.message("times_table_range",
				"Multiplication table is out of allowed range.", vars)
		}
		if rules.TableMax != nil && *f > *rules.TableMax {
			return p.message("times_table_range",
				"Multiplication table is out of allowed range.", vars)
		}
	}
	return ""
}

// message looks up a template by key, falling back to the default, and
// substitutes {name} placeholders. Unknown placeholders are left alone.
func (p *Policy) message(key, fallback string, vars map[string]string) string {
	template := fallback
	if p.Messages != nil {
		if t, ok := p.Messages[key]; ok && t != "" {
			template = t
		}
	}
	for name, val := range vars {
		template = strings.ReplaceAll(template, "{"+name+"}", val)
	}
	return template
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func allIn(items, allowed []string) bool {
	for _, it := range items {
		if !contains(allowed, it) {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
