package topicgraph

// Topic is one category from the closed set the engine can assign.
type Topic string

const (
	Addition         Topic = "addition"
	Subtraction      Topic = "subtraction"
	Multiplication   Topic = "multiplication"
	Division         Topic = "division"
	Fractions        Topic = "fractions"
	PlaceValue       Topic = "place_value"
	Comparison       Topic = "comparison"
	Counting         Topic = "counting"
	OrdinalNumbers   Topic = "ordinal_numbers"
	Patterns         Topic = "patterns"
	Measurement      Topic = "measurement"
	Currency         Topic = "currency"
	Geometry         Topic = "geometry"
	Averages         Topic = "averages"
	MultiplesFactors Topic = "multiples_factors"
	Decimals         Topic = "decimals"
	Percentages      Topic = "percentages"
	Ratio            Topic = "ratio"
	Data             Topic = "data"
	WordProblem      Topic = "word_problem"
	// General is the label for questions no rule could place.
	General Topic = "general"
)

// DisplayName returns a human-readable name for a topic.
func DisplayName(t Topic) string {
	switch t {
	case PlaceValue:
		return "Place Value"
	case OrdinalNumbers:
		return "Ordinal Numbers"
	case MultiplesFactors:
		return "Multiples & Factors"
	case WordProblem:
		return "Word Problems"
	case General:
		return "General"
	default:
		if t == "" {
			return "Unknown"
		}
		return string(t[0]-'a'+'A') + string(t[1:])
	}
}

// TopicInfo is one topic's curriculum metadata: the earliest grade it is
// taught in, the topics a learner should already know, the visual template
// names downstream renderers may pick from, and the trigger phrases the
// classifier scores.
type TopicInfo struct {
	Name          Topic
	MinGrade      int
	Prerequisites []Topic
	Templates     []string
	Keywords      []string
}
