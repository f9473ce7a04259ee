package formatter

import (
	"github.com/EzequielOmarArraygada/backoffice/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StateStyle returns the lipgloss style for a task state.
func StateStyle(state domain.TaskState) lipgloss.Style {
	switch state {
	case domain.StateInProgress:
		return StyleGreen
	case domain.StatePaused:
		return StyleYellow
	case domain.StateFinished:
		return StyleDim
	default:
		return StyleRed
	}
}

// StateIndicator returns a colored state marker such as "● Paused".
func StateIndicator(state domain.TaskState) string {
	label := string(state)
	if label == "" {
		label = "Unknown"
	}
	return StateStyle(state).Render("● " + label)
}

// Warn renders text in the warning color.
func Warn(text string) string {
	return StyleYellow.Render(text)
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}
