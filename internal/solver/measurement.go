package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// Conversion rates into each category's base unit: length→metres,
// weight→grams, volume→millilitres, time→minutes. Conversion across
// categories fails closed: "convert 3 kg to metres" is nobody's question.
var unitTables = map[string]map[string]float64{
	"length": {
		"km": 1000, "m": 1, "cm": 0.01, "mm": 0.001,
		"kilometre": 1000, "metre": 1, "centimetre": 0.01, "millimetre": 0.001,
		"kilometres": 1000, "metres": 1, "centimetres": 0.01, "millimetres": 0.001,
	},
	"weight": {
		"kg": 1000, "g": 1,
		"kilogram": 1000, "gram": 1, "kilograms": 1000, "grams": 1,
	},
	"volume": {
		"l": 1000, "ml": 1, "litre": 1000, "millilitre": 1,
		"litres": 1000, "millilitres": 1,
	},
	"time": {
		"hour": 60, "hours": 60, "hr": 60, "h": 60,
		"minute": 1, "minutes": 1, "min": 1,
		"second": 1.0 / 60, "seconds": 1.0 / 60, "sec": 1.0 / 60, "s": 1.0 / 60,
		"day": 1440, "days": 1440,
		"week": 10080, "weeks": 10080,
	},
}

var baseUnitNames = map[string]string{
	"length": "metres",
	"weight": "grams",
	"volume": "millilitres",
	"time":   "minutes",
}

const unitsPat = `km|m|cm|mm|kg|g|l|ml|hour|hours|hr|minute|minutes|min|second|seconds|sec|day|days|week|weeks|kilometre|metre|centimetre|millimetre|kilogram|gram|litre|millilitre|kilometres|metres|centimetres|millimetres|kilograms|grams|litres|millilitres`

var (
	// "convert 3 km to metres", "change 500 cm to m". The trailing \b stops
	// a prefix alternative from swallowing a longer unit ("m" out of "mm").
	convertRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(` + unitsPat + `)\s+(?:to|into|in)\s+(` + unitsPat + `)\b`)
	// "how many grams in 3 kg" — reversed order
	howManyRe = regexp.MustCompile(`(?i)how many\s+(` + unitsPat + `)\s+(?:are\s+)?(?:in|is|there\s+in)\s+(\d+(?:\.\d+)?)\s+(` + unitsPat + `)\b`)
)

// MeasurementSolver handles unit conversion within one category.
type MeasurementSolver struct{}

func (s *MeasurementSolver) Name() string { return "measurement" }

func (s *MeasurementSolver) Attempt(text string) *TopicResult {
	var value float64
	var fromUnit, toUnit string
	if m := convertRe.FindStringSubmatch(text); m != nil {
		value = mustFloat(m[1])
		fromUnit = strings.ToLower(m[2])
		toUnit = strings.ToLower(m[3])
	} else if m := howManyRe.FindStringSubmatch(text); m != nil {
		toUnit = strings.ToLower(m[1])
		value = mustFloat(m[2])
		fromUnit = strings.ToLower(m[3])
	} else {
		return nil
	}

	fromCat, fromRate, ok := lookupUnit(fromUnit)
	if !ok {
		return nil
	}
	toCat, toRate, ok := lookupUnit(toUnit)
	if !ok || fromCat != toCat {
		return nil
	}

	inBase := value * fromRate
	result := inBase / toRate
	resultStr := formatNumber(result, 4)
	baseName := baseUnitNames[fromCat]

	return &TopicResult{
		Topic:  topicgraph.Measurement,
		Answer: fmt.Sprintf("%s %s", resultStr, toUnit),
		Steps: []Step{
			{Title: "Identify the conversion", Text: fmt.Sprintf("We need to convert %s %s to %s.", formatNumber(value, 4), fromUnit, toUnit)},
			{Title: "Convert to base unit", Text: fmt.Sprintf("%s %s = %s %s.", formatNumber(value, 4), fromUnit, formatNumber(inBase, 4), baseName)},
			{Title: "Convert to target unit", Text: fmt.Sprintf("%s %s ÷ %s = %s %s.", formatNumber(inBase, 4), baseName, formatNumber(toRate, 4), resultStr, toUnit)},
		},
		SmallerExample: "Smaller example: 1 km = 1000 m",
	}
}

// lookupUnit returns the category and base-unit rate for a unit spelling.
func lookupUnit(unit string) (category string, rate float64, ok bool) {
	for cat, table := range unitTables {
		if r, found := table[unit]; found {
			return cat, r, true
		}
	}
	return "", 0, false
}
