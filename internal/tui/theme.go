package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette shared across the ask screen.
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Vivid Purple
	colorAccent  = lipgloss.Color("#F97316") // Orange
	colorGood    = lipgloss.Color("#22C55E") // Green
	colorWarn    = lipgloss.Color("#FACC15") // Amber
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	questionStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	topicBadgeStyle = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorText).
			Bold(true).
			Padding(0, 1)

	answerStyle = lipgloss.NewStyle().
			Foreground(colorGood).
			Bold(true)

	stepTitleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	stepTextStyle = lipgloss.NewStyle().
			Foreground(colorText)

	noteStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Italic(true)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorBorder)
)
