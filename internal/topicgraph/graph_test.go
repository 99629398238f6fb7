package topicgraph

import (
	"testing"
)

func TestGet_Exists(t *testing.T) {
	info, err := Get(Fractions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.MinGrade != 3 {
		t.Errorf("got min grade %d, want 3", info.MinGrade)
	}
	if len(info.Prerequisites) == 0 {
		t.Error("fractions should have prerequisites")
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get(Topic("algebra"))
	if err == nil {
		t.Fatal("expected error for unknown topic, got nil")
	}
}

func TestLookup_GeneralOutsideTable(t *testing.T) {
	_, ok := Lookup(General)
	if ok {
		t.Error("general must not be a table entry; it is the no-match label")
	}
}

func TestMinGrade_DefaultsToOne(t *testing.T) {
	if got := MinGrade(General); got != 1 {
		t.Errorf("MinGrade(general): got %d, want 1", got)
	}
	if got := MinGrade(Percentages); got != 5 {
		t.Errorf("MinGrade(percentages): got %d, want 5", got)
	}
}

func TestInCurriculumOrder_Sorted(t *testing.T) {
	ordered := InCurriculumOrder()
	if len(ordered) == 0 {
		t.Fatal("empty curriculum order")
	}
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if cur.MinGrade < prev.MinGrade {
			t.Errorf("topic %q (grade %d) appears after %q (grade %d)",
				cur.Name, cur.MinGrade, prev.Name, prev.MinGrade)
		}
		if cur.MinGrade == prev.MinGrade && cur.Name < prev.Name {
			t.Errorf("within grade %d, %q should sort before %q", cur.MinGrade, cur.Name, prev.Name)
		}
	}
}

func TestTableIndex_UnknownSortsLast(t *testing.T) {
	n := len(AllTopics())
	if got := TableIndex(Topic("algebra")); got != n {
		t.Errorf("unknown topic index: got %d, want %d", got, n)
	}
	if got := TableIndex(Counting); got != 0 {
		t.Errorf("counting should be first in the table, got index %d", got)
	}
}

func TestChooseTemplate_FromTable(t *testing.T) {
	info, err := Get(Fractions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	allowed := make(map[string]bool, len(info.Templates))
	for _, tmpl := range info.Templates {
		allowed[tmpl] = true
	}
	for i := 0; i < 20; i++ {
		got := ChooseTemplate(Fractions)
		if !allowed[got] {
			t.Fatalf("ChooseTemplate(fractions) = %q, not in table %v", got, info.Templates)
		}
	}
}

func TestChooseTemplate_UnknownTopicGeneric(t *testing.T) {
	if got := ChooseTemplate(Topic("algebra")); got != "generic" {
		t.Errorf("got %q, want generic", got)
	}
}

func TestRootTopics(t *testing.T) {
	roots := RootTopics()
	foundCounting := false
	for _, r := range roots {
		if r == Counting {
			foundCounting = true
		}
	}
	if !foundCounting {
		t.Errorf("counting should be a root topic, roots: %v", roots)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		topic Topic
		want  string
	}{
		{Addition, "Addition"},
		{PlaceValue, "Place Value"},
		{MultiplesFactors, "Multiples & Factors"},
		{WordProblem, "Word Problems"},
		{General, "General"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.topic); got != tt.want {
			t.Errorf("DisplayName(%q): got %q, want %q", tt.topic, got, tt.want)
		}
	}
}
