package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	tea "charm.land/bubbletea/v2"

	"github.com/kaisuddinahmed/mymath/internal/engine"
)

func (m AskModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.content())
	return v
}

// content renders the whole screen body. Split out from View so tests
// can inspect the rendered text directly.
func (m AskModel) content() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.solving:
		b.WriteString(dimStyle.Render("  Working it out..."))
	case len(m.history) == 0:
		b.WriteString(m.renderGreeting())
	default:
		b.WriteString(m.renderAnswer(m.history[len(m.history)-1]))
	}

	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  Enter ask · Esc quit"))

	return b.String()
}

func (m AskModel) renderHeader() string {
	left := "  " + titleStyle.Render("mymath")

	status := fmt.Sprintf("grade %d", m.grade)
	if n := len(m.history); n == 1 {
		status += " · 1 answered"
	} else if n > 1 {
		status += fmt.Sprintf(" · %d answered", n)
	}
	right := dimStyle.Render(status)

	line := left
	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	rule := dividerStyle.Render(strings.Repeat("─", max(m.width-4, 0)))
	return line + "\n  " + rule
}

func (m AskModel) renderGreeting() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render("  Ask me a math question!"))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  Try: What is 34 + 27?"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Or:  Ali has 5 mangoes and buys 3 more. How many now?"))
	return b.String()
}

func (m AskModel) renderAnswer(e answered) string {
	var b strings.Builder

	b.WriteString("  " + dimStyle.Render("Q:") + " " + questionStyle.Render(e.question))
	b.WriteString("\n\n")

	badge := topicBadgeStyle.Render(string(e.result.Topic))
	meta := solverLabel(e.result.SolverUsed)
	if e.result.IsAboveGrade {
		meta += noteStyle.Render(fmt.Sprintf("  usually grade %d+", e.result.MinGradeForTopic))
	}
	b.WriteString("  " + badge + "  " + dimStyle.Render(meta))
	b.WriteString("\n\n")

	b.WriteString("  " + answerStyle.Render("Answer: "+e.result.Answer))
	b.WriteString("\n")

	if len(e.result.Steps) > 0 {
		b.WriteString("\n")
		for i, step := range e.result.Steps {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, stepTitleStyle.Render(step.Title)))
			b.WriteString("     " + stepTextStyle.Render(step.Text) + "\n")
		}
	}

	if e.result.SmallerExample != "" {
		b.WriteString("\n  " + dimStyle.Render(e.result.SmallerExample))
		b.WriteString("\n")
	}

	if e.note != "" {
		b.WriteString("\n  " + noteStyle.Render("Class note: "+e.note))
		b.WriteString("\n")
	}

	return b.String()
}

func solverLabel(kind engine.SolverKind) string {
	switch kind {
	case engine.Deterministic:
		return "exact answer"
	case engine.WordProblem:
		return "word problem"
	default:
		return "no exact solver yet"
	}
}
