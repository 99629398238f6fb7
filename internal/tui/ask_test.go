package tui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kaisuddinahmed/mymath/internal/curriculum"
	"github.com/kaisuddinahmed/mymath/internal/store"
	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// recordingEventRepo captures solve events; all other EventRepo methods
// come from the embedded interface and are never called.
type recordingEventRepo struct {
	store.EventRepo
	solves []store.SolveEventData
}

func (r *recordingEventRepo) AppendSolve(_ context.Context, data store.SolveEventData) error {
	r.solves = append(r.solves, data)
	return nil
}

type recordingSnapshotRepo struct {
	saved []*store.Snapshot
}

func (r *recordingSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	r.saved = append(r.saved, snap)
	return nil
}

func (r *recordingSnapshotRepo) Latest(context.Context, string) (*store.Snapshot, error) {
	return nil, nil
}

func (r *recordingSnapshotRepo) Prune(context.Context, string, int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// askQuestion types a question, submits it, and runs the solve command
// through the update loop.
func askQuestion(t *testing.T, m AskModel, text string) AskModel {
	t.Helper()
	m.input.SetValue(text)

	model, cmd := m.Update(specialKey(tea.KeyEnter))
	m = model.(AskModel)
	if cmd == nil {
		t.Fatal("expected a solve command from enter")
	}

	msg := cmd()
	solved, ok := msg.(solvedMsg)
	if !ok {
		t.Fatalf("expected solvedMsg, got %T", msg)
	}

	model, _ = m.Update(solved)
	return model.(AskModel)
}

func TestAskSubmitSolvesQuestion(t *testing.T) {
	events := &recordingEventRepo{}
	m := NewAsk(3, nil, events, nil)

	m = askQuestion(t, m, "What is 34 + 27?")

	if len(m.history) != 1 {
		t.Fatalf("got %d history entries, want 1", len(m.history))
	}
	e := m.history[0]
	if e.result.Answer != "61" {
		t.Errorf("got answer %q, want 61", e.result.Answer)
	}
	if e.result.Topic != topicgraph.Addition {
		t.Errorf("got topic %q, want addition", e.result.Topic)
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared after solve, got %q", m.input.Value())
	}

	if len(events.solves) != 1 {
		t.Fatalf("got %d recorded solves, want 1", len(events.solves))
	}
	rec := events.solves[0]
	if rec.Grade != 3 || rec.Answer != "61" || rec.RequestID == "" {
		t.Errorf("recorded event incomplete: %+v", rec)
	}
}

func TestAskContentShowsAnswerAndSteps(t *testing.T) {
	m := NewAsk(2, nil, nil, nil)
	m = askQuestion(t, m, "What is 34 + 27?")

	content := m.content()
	for _, want := range []string{"What is 34 + 27?", "Answer: 61", "addition", "Enter ask"} {
		if !strings.Contains(content, want) {
			t.Errorf("content missing %q", want)
		}
	}
}

func TestAskGreetingBeforeFirstQuestion(t *testing.T) {
	m := NewAsk(3, nil, nil, nil)
	if !strings.Contains(m.content(), "Ask me a math question") {
		t.Error("expected greeting before the first question")
	}
}

func TestAskEmptySubmitIgnored(t *testing.T) {
	m := NewAsk(3, nil, nil, nil)

	model, cmd := m.Update(specialKey(tea.KeyEnter))
	m = model.(AskModel)
	if cmd != nil {
		t.Error("empty input should not produce a solve command")
	}
	if len(m.history) != 0 {
		t.Error("empty input should not add history")
	}
}

func TestAskBareQQuits(t *testing.T) {
	m := NewAsk(3, nil, nil, nil)

	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command from bare q")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestAskQInsideQuestionIsTyped(t *testing.T) {
	m := NewAsk(3, nil, nil, nil)
	m.input.SetValue("What is the s")

	model, _ := m.Update(keyPress('q'))
	m = model.(AskModel)
	if got := m.input.Value(); got != "What is the sq" {
		t.Errorf("got input %q, want the q appended", got)
	}
}

func TestAskSessionSnapshotOnQuit(t *testing.T) {
	snaps := &recordingSnapshotRepo{}
	m := NewAsk(3, nil, nil, snaps)

	m = askQuestion(t, m, "What is 2 + 3?")
	m = askQuestion(t, m, "What is 1/2 of 8?")

	_, cmd := m.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected quit command from esc")
	}

	if len(snaps.saved) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(snaps.saved))
	}
	snap := snaps.saved[0]
	if snap.Kind != "ask_session" {
		t.Errorf("got kind %q, want ask_session", snap.Kind)
	}
	if snap.Data["questions"] != 2 {
		t.Errorf("got questions %v, want 2", snap.Data["questions"])
	}
	if snap.Data["session_id"] == "" {
		t.Error("snapshot should carry the session id")
	}
	topics, ok := snap.Data["topics"].([]string)
	if !ok || len(topics) != 2 {
		t.Fatalf("got topics %v, want two distinct topics", snap.Data["topics"])
	}
}

func TestAskNoSnapshotWithoutQuestions(t *testing.T) {
	snaps := &recordingSnapshotRepo{}
	m := NewAsk(3, nil, nil, snaps)

	if _, cmd := m.Update(specialKey(tea.KeyEscape)); cmd == nil {
		t.Fatal("expected quit command")
	}
	if len(snaps.saved) != 0 {
		t.Error("empty session should not save a snapshot")
	}
}

func TestAskCurriculumNoteShown(t *testing.T) {
	policy, err := curriculum.Load("nctb", 1)
	if err != nil || policy == nil {
		t.Fatalf("load policy: %v", err)
	}
	m := NewAsk(1, policy, nil, nil)
	m = askQuestion(t, m, "What is 18 + 9?")

	if m.history[0].note == "" {
		t.Fatal("expected a curriculum note for a sum above the class limit")
	}
	if !strings.Contains(m.content(), "Class note:") {
		t.Error("content should show the curriculum note")
	}
}

func TestAskAboveGradeMarker(t *testing.T) {
	m := NewAsk(1, nil, nil, nil)
	m = askQuestion(t, m, "What is 1/2 of 8?")

	if !m.history[0].result.IsAboveGrade {
		t.Fatal("fractions should be above grade 1")
	}
	if !strings.Contains(m.content(), "usually grade") {
		t.Error("content should mark above-grade topics")
	}
}
