// Package tui implements the interactive ask screen: type a question,
// read the exact answer with its steps, ask another.
package tui

import (
	"context"
	"sort"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/kaisuddinahmed/mymath/internal/curriculum"
	"github.com/kaisuddinahmed/mymath/internal/engine"
	"github.com/kaisuddinahmed/mymath/internal/store"
)

// answered is one resolved question in the session history.
type answered struct {
	question string
	result   engine.SolveResult
	note     string
	duration time.Duration
}

// solvedMsg delivers a resolved question back to the update loop.
type solvedMsg struct {
	entry answered
}

// AskModel is the Bubble Tea model for the interactive ask session.
type AskModel struct {
	grade     int
	policy    *curriculum.Policy
	events    store.EventRepo
	snapshots store.SnapshotRepo
	sessionID string
	started   time.Time

	input   textinput.Model
	history []answered
	solving bool
	width   int
	height  int
}

// NewAsk builds the ask model. Both repos may be nil: a nil events repo
// disables activity recording, a nil snapshots repo disables the
// end-of-session summary.
func NewAsk(grade int, policy *curriculum.Policy, events store.EventRepo, snapshots store.SnapshotRepo) AskModel {
	return AskModel{
		grade:     grade,
		policy:    policy,
		events:    events,
		snapshots: snapshots,
		sessionID: uuid.New().String(),
		started:   time.Now(),
		input:     newQuestionInput(),
	}
}

func newQuestionInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Type a math question..."
	ti.CharLimit = 500
	ti.Focus()
	return ti
}

func (m AskModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m AskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case solvedMsg:
		m.history = append(m.history, msg.entry)
		m.solving = false
		m.input = newQuestionInput()
		return m, m.input.Focus()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m.finish()
		case "q":
			// A bare q quits; inside a question it is just a letter.
			if strings.TrimSpace(m.input.Value()) == "" {
				return m.finish()
			}
		case "enter":
			return m.submit()
		}
	}

	if !m.solving {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AskModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.solving {
		return m, nil
	}
	m.solving = true
	return m, m.solveCmd(text)
}

func (m AskModel) solveCmd(text string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result := engine.Solve(engine.Question{Text: text, Grade: m.grade})
		elapsed := time.Since(start)

		entry := answered{
			question: text,
			result:   result,
			note:     curriculum.Advise(m.policy, curriculum.CheckFromResult(text, result)),
			duration: elapsed,
		}

		if m.events != nil {
			_ = m.events.AppendSolve(context.Background(), store.SolveEventData{
				RequestID:    uuid.New().String(),
				Question:     text,
				Grade:        m.grade,
				Topic:        string(result.Topic),
				Answer:       result.Answer,
				SolverUsed:   string(result.SolverUsed),
				IsAboveGrade: result.IsAboveGrade,
				DurationMs:   elapsed.Milliseconds(),
			})
		}
		return solvedMsg{entry: entry}
	}
}

// finish saves the session summary snapshot and quits.
func (m AskModel) finish() (tea.Model, tea.Cmd) {
	if m.snapshots != nil && len(m.history) > 0 {
		seen := make(map[string]bool)
		for _, e := range m.history {
			seen[string(e.result.Topic)] = true
		}
		topics := make([]string, 0, len(seen))
		for t := range seen {
			topics = append(topics, t)
		}
		sort.Strings(topics)

		_ = m.snapshots.Save(context.Background(), &store.Snapshot{
			Kind: "ask_session",
			Data: map[string]any{
				"session_id": m.sessionID,
				"questions":  len(m.history),
				"topics":     topics,
				"started_at": m.started.Format(time.RFC3339),
			},
		})
	}
	return m, tea.Quit
}

// Run starts the interactive ask program and blocks until it exits.
func Run(grade int, policy *curriculum.Policy, events store.EventRepo, snapshots store.SnapshotRepo) error {
	p := tea.NewProgram(NewAsk(grade, policy, events, snapshots))
	_, err := p.Run()
	return err
}
