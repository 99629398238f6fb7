package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var (
	// "count by 2s from 0 to 20", "skip count by 5 starting at 0"
	skipCountRe = regexp.MustCompile(`(?i)(?:skip.?count|count by)\s+(\d+)(?:s)?(?:\s+from\s+(\d+))?(?:\s+to\s+(\d+))?`)
	// "what is the 4th ordinal", "3rd, 4th..."
	ordinalRe = regexp.MustCompile(`(?i)(\d+)(st|nd|rd|th)(?:\s+(?:number|item|place|object|position))?`)
)

var ordinalWords = []string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth"}

// Contexts where an ordinal word is a quantifier for another noun
// ("first 5 multiples"), not an ordinal question.
var ordinalSkipContexts = []string{"multiples", "factors", "prime", "number", "question", "step", "chapter"}

// CountingSolver handles skip counting and ordinal numbers.
type CountingSolver struct{}

func (s *CountingSolver) Name() string { return "counting" }

func (s *CountingSolver) Attempt(text string) *TopicResult {
	q := strings.TrimSpace(text)
	ql := strings.ToLower(q)

	if m := skipCountRe.FindStringSubmatch(q); m != nil {
		step := mustInt(m[1])
		start := 0
		if m[2] != "" {
			start = mustInt(m[2])
		}
		end := start + step*9
		if m[3] != "" {
			end = mustInt(m[3])
		}
		if step == 0 || float64(end-start)/float64(step) > 50 {
			return nil
		}
		var sequence []int
		for n := start; n <= end; n += step {
			sequence = append(sequence, n)
		}
		seqStr := joinInts(sequence)
		return &TopicResult{
			Topic:  topicgraph.Counting,
			Answer: seqStr,
			Steps: []Step{
				{Title: fmt.Sprintf("Skip counting by %d", step), Text: fmt.Sprintf("Start at %d. Jump forward by %d each time.", start, step)},
				{Title: "List the numbers", Text: fmt.Sprintf("The sequence is: %s.", seqStr)},
				{Title: "Pattern", Text: fmt.Sprintf("Each number is %d more than the one before.", step)},
			},
			SmallerExample: fmt.Sprintf("Smaller example: count by %ds from 0: 0, %d, %d, %d...", step, step, step*2, step*3),
		}
	}

	for i, word := range ordinalWords {
		idx := strings.Index(ql, word)
		if idx < 0 {
			continue
		}
		after := ql[idx+len(word):]
		if len(after) > 40 {
			after = after[:40]
		}
		quantifier := false
		for _, ctx := range ordinalSkipContexts {
			if strings.Contains(after, ctx) {
				quantifier = true
				break
			}
		}
		if quantifier {
			continue
		}
		n := i + 1
		return &TopicResult{
			Topic:  topicgraph.Counting,
			Answer: ordinalSuffix(n),
			Steps: []Step{
				{Title: "Ordinal numbers", Text: "Ordinal numbers tell position: 1st, 2nd, 3rd, 4th..."},
				{Title: fmt.Sprintf("What is %s?", word), Text: fmt.Sprintf("%s means position number %d.", capitalize(word), n)},
				{Title: "Answer", Text: fmt.Sprintf("The %s position is %s.", word, ordinalSuffix(n))},
			},
			SmallerExample: "Smaller example: 1st = first, 2nd = second, 3rd = third.",
		}
	}

	if m := ordinalRe.FindStringSubmatch(q); m != nil {
		n := mustInt(m[1])
		if n >= 1 && n <= 100 {
			return &TopicResult{
				Topic:  topicgraph.Counting,
				Answer: ordinalSuffix(n),
				Steps: []Step{
					{Title: "Ordinal numbers", Text: "Ordinal numbers show position in a line or sequence."},
					{Title: fmt.Sprintf("What is ordinal %d?", n), Text: fmt.Sprintf("We write position %d as %s.", n, ordinalSuffix(n))},
					{Title: "Answer", Text: fmt.Sprintf("%s is the ordinal for number %d.", ordinalSuffix(n), n)},
				},
				SmallerExample: "Smaller example: 4 → 4th",
			}
		}
	}

	return nil
}

// ordinalSuffix writes n as an ordinal: 1st, 2nd, 3rd, 4th, with the
// 11th-13th exception.
func ordinalSuffix(n int) string {
	if m := n % 100; m >= 11 && m <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
