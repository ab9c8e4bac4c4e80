// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Forge   = lipgloss.Color("#E8590C")
	Steel   = lipgloss.Color("#6C7A91")
	White   = lipgloss.Color("#FFFFFF")
	Coal    = lipgloss.Color("#11151C")
	Emerald = lipgloss.Color("#2F9E44")
	Crimson = lipgloss.Color("#C92A2A")
	Amber   = lipgloss.Color("#F08C00")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Styles shared by plan rendering.
var (
	// Heading styles the per-target plan header.
	Heading = lipgloss.NewStyle().Bold(true).Foreground(Forge)
	// Subtle styles secondary metadata such as fingerprints.
	Subtle = lipgloss.NewStyle().Foreground(Steel)
	// ActionName styles action kind labels.
	ActionName = lipgloss.NewStyle().Bold(true)
)
