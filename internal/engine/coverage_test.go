package engine

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestCoverage_AllTopicsReady(t *testing.T) {
	report := Coverage()
	if report.TotalTopics != 20 {
		t.Errorf("got %d topics, want 20", report.TotalTopics)
	}
	if report.SolverReadyCount != report.TotalTopics {
		t.Errorf("got %d ready of %d, want all", report.SolverReadyCount, report.TotalTopics)
	}
	if report.CoveragePct != 100 {
		t.Errorf("got %d%%, want 100%%", report.CoveragePct)
	}
	for _, tc := range report.Topics {
		if !tc.SolverReady {
			t.Errorf("topic %q not marked solver-ready", tc.Topic)
		}
	}
}

func TestCoverage_SortedByGradeThenName(t *testing.T) {
	report := Coverage()
	if len(report.Topics) == 0 {
		t.Fatal("empty report")
	}
	if report.Topics[0].Topic != topicgraph.Addition {
		t.Errorf("got first topic %q, want %q", report.Topics[0].Topic, topicgraph.Addition)
	}
	prev := report.Topics[0]
	for _, tc := range report.Topics[1:] {
		if tc.MinGrade < prev.MinGrade {
			t.Fatalf("%q (grade %d) sorted after %q (grade %d)", tc.Topic, tc.MinGrade, prev.Topic, prev.MinGrade)
		}
		if tc.MinGrade == prev.MinGrade && tc.Topic < prev.Topic {
			t.Fatalf("%q sorted after %q within grade %d", tc.Topic, prev.Topic, tc.MinGrade)
		}
		prev = tc
	}
}
