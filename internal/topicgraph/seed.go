package topicgraph

// defaultTopics returns the built-in topic table. Order matters: the
// classifier breaks keyword-score ties by first position in this table,
// so broader topics are listed after the specific ones they overlap with.
func defaultTopics() []TopicInfo {
	return []TopicInfo{
		{
			Name:     Counting,
			MinGrade: 1,
			Templates: []string{
				"counters_add",
			},
			Keywords: []string{
				"count", "skip count", "count by", "how many", "ordinal", "position",
			},
		},
		{
			Name:          OrdinalNumbers,
			MinGrade:      1,
			Prerequisites: []Topic{Counting},
			Templates:     []string{"counters_add"},
			Keywords: []string{
				"first", "second", "third place", "ordinal number", "what position",
			},
		},
		{
			Name:          Addition,
			MinGrade:      1,
			Prerequisites: []Topic{Counting},
			Templates:     []string{"counters_add"},
			Keywords: []string{
				"add", "plus", "sum of", "total", "altogether", "in all", "combined",
			},
		},
		{
			Name:          Subtraction,
			MinGrade:      1,
			Prerequisites: []Topic{Counting, Addition},
			Templates:     []string{"counters_remove"},
			Keywords: []string{
				"subtract", "minus", "take away", "difference", "how many are left", "fewer",
			},
		},
		{
			Name:          Comparison,
			MinGrade:      1,
			Prerequisites: []Topic{Counting},
			Templates:     []string{"counters_add"},
			Keywords: []string{
				"bigger", "smaller", "greater", "less than", "compare", "largest",
				"smallest", "which is more", "between",
			},
		},
		{
			Name:          PlaceValue,
			MinGrade:      2,
			Prerequisites: []Topic{Counting},
			Templates:     []string{"generic"},
			Keywords: []string{
				"place value", "digit", "ones place", "tens", "hundreds", "expanded form",
			},
		},
		{
			Name:          Multiplication,
			MinGrade:      2,
			Prerequisites: []Topic{Addition},
			Templates:     []string{"group_boxes"},
			Keywords: []string{
				"multiply", "times", "product", "groups of", "double", "triple",
			},
		},
		{
			Name:          Division,
			MinGrade:      2,
			Prerequisites: []Topic{Multiplication, Subtraction},
			Templates:     []string{"sharing_groups"},
			Keywords: []string{
				"divide", "divided by", "share", "split", "quotient", "in each",
			},
		},
		{
			Name:          Patterns,
			MinGrade:      2,
			Prerequisites: []Topic{Counting, Addition},
			Templates:     []string{"generic"},
			Keywords: []string{
				"pattern", "sequence", "comes next", "next number", "what rule",
			},
		},
		{
			Name:          Measurement,
			MinGrade:      2,
			Prerequisites: []Topic{Counting},
			Templates:     []string{"generic"},
			Keywords: []string{
				"measure", "centimetre", "cm", "metre", "km", "kg", "gram", "litre",
				"ml", "convert", "length", "weight", "minutes", "hours",
			},
		},
		{
			Name:          Currency,
			MinGrade:      2,
			Prerequisites: []Topic{Addition, Subtraction},
			Templates:     []string{"counters_add", "counters_remove"},
			Keywords: []string{
				"taka", "tk", "money", "cost", "price", "buys", "spends", "change",
				"dollar", "rupee", "pound",
			},
		},
		{
			Name:          WordProblem,
			MinGrade:      2,
			Prerequisites: []Topic{Addition, Subtraction},
			Templates:     []string{"generic"},
			// No keywords: word problems are recognised by the fallback
			// parser, never by classifier scoring.
		},
		{
			Name:          Data,
			MinGrade:      3,
			Prerequisites: []Topic{Counting, Comparison},
			Templates:     []string{"generic"},
			Keywords: []string{
				"mode", "range of", "data", "graph", "chart", "tally",
			},
		},
		{
			Name:          Fractions,
			MinGrade:      3,
			Prerequisites: []Topic{Division},
			Templates:     []string{"fraction_pie", "fraction_bar"},
			Keywords: []string{
				"fraction", "half", "quarter", "third of", "numerator", "denominator",
				"equal parts", "/",
			},
		},
		{
			Name:          Geometry,
			MinGrade:      3,
			Prerequisites: []Topic{Measurement},
			Templates:     []string{"generic"},
			Keywords: []string{
				"shape", "perimeter", "area", "rectangle", "square", "triangle",
				"circle", "sides", "corners",
			},
		},
		{
			Name:          MultiplesFactors,
			MinGrade:      4,
			Prerequisites: []Topic{Multiplication, Division},
			Templates:     []string{"group_boxes"},
			Keywords: []string{
				"factor", "multiple", "lcm", "gcd", "hcf", "prime",
			},
		},
		{
			Name:          Averages,
			MinGrade:      4,
			Prerequisites: []Topic{Addition, Division},
			Templates:     []string{"sharing_groups"},
			Keywords: []string{
				"average", "mean of",
			},
		},
		{
			Name:          Decimals,
			MinGrade:      4,
			Prerequisites: []Topic{Fractions, PlaceValue},
			Templates:     []string{"generic"},
			Keywords: []string{
				"decimal", "decimal places", "round", "tenths", "hundredths",
			},
		},
		{
			Name:          Percentages,
			MinGrade:      5,
			Prerequisites: []Topic{Fractions, Decimals},
			Templates:     []string{"fraction_bar"},
			Keywords: []string{
				"percent", "%", "percentage", "discount", "increased by", "decreased by",
			},
		},
		{
			Name:          Ratio,
			MinGrade:      5,
			Prerequisites: []Topic{Fractions, Division},
			Templates:     []string{"fraction_bar"},
			Keywords: []string{
				"ratio", "proportion", "in the ratio",
			},
		},
	}
}

func init() {
	g = buildGraph(defaultTopics())
}
