package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

const currencySymbols = `(?:taka|৳|tk|pound|£|dollar|\$|rupee|₹|euro|€|BDT|GBP|USD)`

var (
	// "30 taka ... 20 taka" — two currency-marked amounts
	simpleMoneyRe = regexp.MustCompile(`(?i)(\d+(?:\.\d{1,2})?)\s*` + currencySymbols + `.*?(\d+(?:\.\d{1,2})?)\s*` + currencySymbols)
	// "had 250 taka ... spent ... 85"
	hasMoneyRe = regexp.MustCompile(`(?i)(?:has|had|have|earned|received|given|saved)\s+([\d,]+(?:\.\d{1,2})?)`)
	buyMoneyRe = regexp.MustCompile(`(?i)(?:buy|buys|cost|costs|price|pays?|paid|spends?|spent)\s+.*?([\d,]+(?:\.\d{1,2})?)`)
	// clues that the question wants a remainder rather than a total
	subtractClueRe = regexp.MustCompile(`(?i)\b(left|remaining|change|how much left|how much remain|how much does he have|how much money|left over|leftover)\b`)
)

// currencyNames maps any spelling or symbol to the display name. Checked
// in a fixed order so detection is deterministic.
var currencyNames = []struct{ match, name string }{
	{"taka", "taka"}, {"৳", "taka"},
	{"pound", "pound"}, {"£", "pound"},
	{"dollar", "dollar"}, {"$", "dollar"},
	{"rupee", "rupee"}, {"₹", "rupee"},
	{"euro", "euro"}, {"€", "euro"},
}

// CurrencySolver handles money totals and change.
type CurrencySolver struct{}

func (s *CurrencySolver) Name() string { return "currency" }

func (s *CurrencySolver) Attempt(text string) *TopicResult {
	q := strings.TrimSpace(text)
	currency := detectCurrencyName(q)

	// "has X, buys Y, how much left" → subtraction
	hasM := hasMoneyRe.FindStringSubmatch(q)
	buyM := buyMoneyRe.FindStringSubmatch(q)
	if hasM != nil && buyM != nil {
		total := mustFloat(strings.ReplaceAll(hasM[1], ",", ""))
		spent := mustFloat(strings.ReplaceAll(buyM[1], ",", ""))
		if spent <= total {
			changeStr := fmtMoney(total - spent)
			return &TopicResult{
				Topic:  topicgraph.Currency,
				Answer: fmt.Sprintf("%s %s", changeStr, currency),
				Steps: []Step{
					{Title: "What we have", Text: fmt.Sprintf("Total money: %s %s.", fmtMoney(total), currency)},
					{Title: "What we spend", Text: fmt.Sprintf("We spend %s %s.", fmtMoney(spent), currency)},
					{Title: "Find the change", Text: fmt.Sprintf("%s - %s = %s %s.", fmtMoney(total), fmtMoney(spent), changeStr, currency)},
				},
				SmallerExample: "Smaller example: 50 taka - 15 taka = 35 taka",
			}
		}
	}

	// Two marked amounts: add, or subtract when the question asks what is left.
	if m := simpleMoneyRe.FindStringSubmatch(q); m != nil {
		a := mustFloat(m[1])
		b := mustFloat(m[2])
		if subtractClueRe.MatchString(q) {
			bigger, smaller := a, b
			if b > a {
				bigger, smaller = b, a
			}
			resultStr := fmtMoney(bigger - smaller)
			return &TopicResult{
				Topic:  topicgraph.Currency,
				Answer: fmt.Sprintf("%s %s", resultStr, currency),
				Steps: []Step{
					{Title: "Starting amount", Text: fmt.Sprintf("We start with %s %s.", fmtMoney(bigger), currency)},
					{Title: "Amount spent", Text: fmt.Sprintf("We spend %s %s.", fmtMoney(smaller), currency)},
					{Title: "Find the remainder", Text: fmt.Sprintf("%s - %s = %s %s.", fmtMoney(bigger), fmtMoney(smaller), resultStr, currency)},
				},
				SmallerExample: "Smaller example: 50 taka - 15 taka = 35 taka",
			}
		}
		totalStr := fmtMoney(a + b)
		return &TopicResult{
			Topic:  topicgraph.Currency,
			Answer: fmt.Sprintf("%s %s", totalStr, currency),
			Steps: []Step{
				{Title: "Two amounts", Text: fmt.Sprintf("We have %s %s and %s %s.", fmtMoney(a), currency, fmtMoney(b), currency)},
				{Title: "Add them", Text: fmt.Sprintf("%s + %s = %s %s.", fmtMoney(a), fmtMoney(b), totalStr, currency)},
				{Title: "Answer", Text: fmt.Sprintf("Total: %s %s.", totalStr, currency)},
			},
			SmallerExample: "Smaller example: 30 taka + 20 taka = 50 taka",
		}
	}

	return nil
}

func detectCurrencyName(q string) string {
	ql := strings.ToLower(q)
	for _, c := range currencyNames {
		if strings.Contains(ql, c.match) {
			return c.name
		}
	}
	return "taka"
}

// fmtMoney renders an amount at most two decimal places, whole when possible.
func fmtMoney(v float64) string { return formatNumber(v, 2) }
