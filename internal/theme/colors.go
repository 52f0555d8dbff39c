package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Pull request status colors
const (
	ColorClean  Color = "10" // Bright green - mergeable check
	ColorMerged Color = "5"  // Magenta - merged marker
	ColorClosed Color = "1"  // Red - closed marker
)

// Highlight colors
const (
	ColorSelf Color = "3" // Yellow - the viewing user (author or reviewer)
)

// Diff stat colors
const (
	ColorAdditions Color = "10" // Bright green
	ColorDeletions Color = "9"  // Bright red
)
