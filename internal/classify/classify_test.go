package classify

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestExpressionRule_Addition(t *testing.T) {
	r := &ExpressionRule{}
	if got := r.Detect("12 + 5"); got != topicgraph.Addition {
		t.Errorf("got %q, want %q", got, topicgraph.Addition)
	}
	if got := r.Detect("12 + 5 = ?"); got != topicgraph.Addition {
		t.Errorf("got %q with trailing equals, want %q", got, topicgraph.Addition)
	}
}

func TestExpressionRule_Subtraction(t *testing.T) {
	r := &ExpressionRule{}
	if got := r.Detect("9 - 4"); got != topicgraph.Subtraction {
		t.Errorf("got %q, want %q", got, topicgraph.Subtraction)
	}
}

func TestExpressionRule_MulDiv(t *testing.T) {
	r := &ExpressionRule{}
	if got := r.Detect("3 x 4"); got != topicgraph.Multiplication {
		t.Errorf("got %q, want %q", got, topicgraph.Multiplication)
	}
	if got := r.Detect("8 ÷ 2"); got != topicgraph.Division {
		t.Errorf("got %q, want %q", got, topicgraph.Division)
	}
}

func TestExpressionRule_WrappedSentenceDoesNotLabel(t *testing.T) {
	// Only exact bare expressions; sentences go to keyword scoring.
	r := &ExpressionRule{}
	if got := r.Detect("What is 12 + 5?"); got != "" {
		t.Errorf("got %q for wrapped sentence, want empty", got)
	}
}

func TestFractionOfRule(t *testing.T) {
	r := &FractionOfRule{}
	if got := r.Detect("what is 1/2 of 8"); got != topicgraph.Fractions {
		t.Errorf("got %q, want %q", got, topicgraph.Fractions)
	}
	if got := r.Detect("what is half of 8"); got != "" {
		t.Errorf("got %q without a/b literal, want empty", got)
	}
}

func TestKeywordRule_SingleTopic(t *testing.T) {
	r := &KeywordRule{}
	if got := r.Detect("What is the perimeter of the shape?"); got != topicgraph.Geometry {
		t.Errorf("got %q, want %q", got, topicgraph.Geometry)
	}
}

func TestKeywordRule_PhraseOutscoresWord(t *testing.T) {
	// "skip count" and "count by" are phrases and outweigh single words
	// from any other topic.
	r := &KeywordRule{}
	if got := r.Detect("skip count by 2 from 0 to 10"); got != topicgraph.Counting {
		t.Errorf("got %q, want %q", got, topicgraph.Counting)
	}
}

func TestKeywordRule_NoHits(t *testing.T) {
	r := &KeywordRule{}
	if got := r.Detect("tell me a story about a fox"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestKeywordRule_TieIsDeterministic(t *testing.T) {
	// "count" (counting) and "money" (currency) both score one. The winner
	// is fixed by topic-table order, whichever it is; the same text must
	// label identically on every call.
	r := &KeywordRule{}
	first := r.Detect("count the money")
	if first == "" {
		t.Fatal("got empty, want a topic")
	}
	for i := 0; i < 5; i++ {
		if got := r.Detect("count the money"); got != first {
			t.Fatalf("got %q on repeat call, want %q", got, first)
		}
	}
}

func TestDetect_PriorityOrder(t *testing.T) {
	// A bare expression also containing keyword-ish digits must label by
	// the expression rule, not keyword scoring.
	if got := Detect("21 x 2"); got != topicgraph.Multiplication {
		t.Errorf("got %q, want %q", got, topicgraph.Multiplication)
	}
	if got := Detect("What fraction is shaded?"); got != topicgraph.Fractions {
		t.Errorf("got %q, want %q", got, topicgraph.Fractions)
	}
	if got := Detect("gibberish with no numbers"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRunRules_ReportsRuleName(t *testing.T) {
	topic, name := RunRules(DefaultRules(), "12 + 5")
	if topic != topicgraph.Addition {
		t.Errorf("got topic %q, want %q", topic, topicgraph.Addition)
	}
	if name != "expression" {
		t.Errorf("got rule %q, want %q", name, "expression")
	}
}
