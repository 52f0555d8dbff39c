package theme

import "github.com/charmbracelet/lipgloss"

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	DraftTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Faint(true)
)

// Status marker styles
var (
	CheckStyle = lipgloss.NewStyle().
			Foreground(ColorClean)

	ClosedMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorClosed)

	MergedMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorMerged)
)

// Highlight styles
var (
	MutedStyle = lipgloss.NewStyle().
			Faint(true)

	SelfStyle = lipgloss.NewStyle().
			Foreground(ColorSelf)
)

// Diff stat styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)
)
