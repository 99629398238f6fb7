package engine

import (
	"math"
	"sort"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// solverReady reflects the deterministic rule modules currently shipped.
// Update when a new topic module lands in internal/solver.
var solverReady = map[topicgraph.Topic]bool{
	topicgraph.Addition:         true, // arithmetic.go
	topicgraph.Subtraction:      true, // arithmetic.go
	topicgraph.Multiplication:   true, // arithmetic.go
	topicgraph.Division:         true, // arithmetic.go, exact + remainder
	topicgraph.Fractions:        true, // fractions.go
	topicgraph.PlaceValue:       true, // placevalue.go
	topicgraph.Comparison:       true, // comparison.go
	topicgraph.Counting:         true, // counting.go, includes ordinals
	topicgraph.OrdinalNumbers:   true, // counting.go
	topicgraph.Patterns:         true, // patterns.go
	topicgraph.Measurement:      true, // measurement.go, length/weight/volume/time
	topicgraph.Currency:         true, // currency.go
	topicgraph.Geometry:         true, // geometry.go, facts + perimeter/area
	topicgraph.Averages:         true, // averages.go
	topicgraph.MultiplesFactors: true, // factors.go, factors/LCM/GCD/prime
	topicgraph.Decimals:         true, // decimals.go, add/sub/round
	topicgraph.Percentages:      true, // percentages.go, %of/what%/change
	topicgraph.Ratio:            true, // ratio.go, simplify/divide/unitary
	topicgraph.Data:             true, // data.go, mode/range
	topicgraph.WordProblem:      true, // wordproblem.go, sentence fallback
}

// TopicCoverage is one topic's solver-readiness row.
type TopicCoverage struct {
	Topic         topicgraph.Topic   `json:"topic"`
	MinGrade      int                `json:"min_grade"`
	Templates     []string           `json:"templates"`
	Prerequisites []topicgraph.Topic `json:"prerequisites"`
	SolverReady   bool               `json:"solver_ready"`
}

// CoverageReport summarizes how much of the topic table resolves without
// any AI assistance.
type CoverageReport struct {
	TotalTopics      int             `json:"total_topics"`
	SolverReadyCount int             `json:"solver_ready_count"`
	CoveragePct      int             `json:"coverage_pct"`
	Topics           []TopicCoverage `json:"topics"`
}

// Coverage reports per-topic solver readiness, sorted by earliest grade
// then topic name.
func Coverage() CoverageReport {
	infos := topicgraph.AllTopics()
	topics := make([]TopicCoverage, 0, len(infos))
	ready := 0
	for _, info := range infos {
		tc := TopicCoverage{
			Topic:         info.Name,
			MinGrade:      info.MinGrade,
			Templates:     info.Templates,
			Prerequisites: info.Prerequisites,
			SolverReady:   solverReady[info.Name],
		}
		if tc.SolverReady {
			ready++
		}
		topics = append(topics, tc)
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].MinGrade != topics[j].MinGrade {
			return topics[i].MinGrade < topics[j].MinGrade
		}
		return topics[i].Topic < topics[j].Topic
	})
	pct := 0
	if len(topics) > 0 {
		pct = int(math.Round(float64(ready) / float64(len(topics)) * 100))
	}
	return CoverageReport{
		TotalTopics:      len(topics),
		SolverReadyCount: ready,
		CoveragePct:      pct,
		Topics:           topics,
	}
}
