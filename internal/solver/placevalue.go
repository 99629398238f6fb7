package solver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var (
	// "What is the value of 7 in 472?", "value of digit 7 in 472"
	digitValueRe = regexp.MustCompile(`(?i)value of (?:digit\s+)?(\d+)\s+in\s+(\d+)`)
	// "expand 345", "expanded form of 345", "write 567 in expanded form"
	expandRe = regexp.MustCompile(`(?i)(?:(?:expand|expanded\s+form\s+of)\s+(\d+)|(\d+)\s+in\s+expanded\s+form)`)
)

var placeNames = []string{"ones", "tens", "hundreds", "thousands", "ten-thousands"}

// PlaceValueSolver handles digit-value and expanded-form questions.
type PlaceValueSolver struct{}

func (s *PlaceValueSolver) Name() string { return "place_value" }

func (s *PlaceValueSolver) Attempt(text string) *TopicResult {
	q := strings.TrimSpace(text)

	if m := digitValueRe.FindStringSubmatch(q); m != nil {
		digit, number := m[1], m[2]
		if pos, found := digitPosition(digit, number); found {
			placeName := "unknown"
			if pos < len(placeNames) {
				placeName = placeNames[pos]
			}
			place := pow10(pos)
			val := mustInt(digit) * place
			return &TopicResult{
				Topic:  topicgraph.PlaceValue,
				Answer: fmt.Sprintf("%d", val),
				Steps: []Step{
					{Title: "Identify the digit", Text: fmt.Sprintf("The digit %s is in the number %s.", digit, number)},
					{Title: "Find its place", Text: fmt.Sprintf("Counting from the right: %s is in the %s place.", digit, placeName)},
					{Title: "Calculate its value", Text: fmt.Sprintf("%s × %d = %d.", digit, place, val)},
				},
				SmallerExample: "Smaller example: value of 4 in 45 → 40",
			}
		}
	}

	if m := expandRe.FindStringSubmatch(q); m != nil {
		n := mustInt(firstText(m[1], m[2]))
		expanded := expandedForm(n)
		return &TopicResult{
			Topic:  topicgraph.PlaceValue,
			Answer: expanded,
			Steps: []Step{
				{Title: "Break the number", Text: fmt.Sprintf("Write each digit of %d separately.", n)},
				{Title: "Multiply by place value", Text: "Multiply each digit by its place value (ones=1, tens=10, hundreds=100...)."},
				{Title: "Write expanded form", Text: fmt.Sprintf("%d = %s.", n, expanded)},
			},
			SmallerExample: "Smaller example: 45 = 40 + 5",
		}
	}

	return nil
}

// digitPosition finds the first occurrence of digit counting from the
// right of number. Multi-character "digits" never match.
func digitPosition(digit, number string) (int, bool) {
	for i := 0; i < len(number); i++ {
		if string(number[len(number)-1-i]) == digit {
			return i, true
		}
	}
	return 0, false
}

func expandedForm(n int) string {
	digits := strconv.Itoa(n)
	var parts []string
	for i, d := range digits {
		place := len(digits) - 1 - i
		val := int(d-'0') * pow10(place)
		if val > 0 {
			parts = append(parts, strconv.Itoa(val))
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " + ")
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
