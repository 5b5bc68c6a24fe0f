package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/drgmb/revisa/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RelevanceStyle maps a topic's relevance color to its terminal style.
func RelevanceStyle(c domain.Color) lipgloss.Style {
	switch c {
	case domain.ColorGreen:
		return StyleGreen
	case domain.ColorYellow:
		return StyleYellow
	case domain.ColorRed:
		return StyleRed
	case domain.ColorPurple:
		return StylePurple
	default:
		return StyleDim
	}
}

// RelevanceDot returns a colored bullet for a topic.
func RelevanceDot(c domain.Color) string {
	return RelevanceStyle(c).Render("●")
}

// StatusLabel returns a colored label for an activity status.
func StatusLabel(s domain.ActivityStatus) string {
	switch s {
	case domain.StatusCompleted:
		return StyleGreen.Render("DONE")
	case domain.StatusPending:
		return StyleYellow.Render("PENDING")
	case domain.StatusOverdue:
		return StyleRed.Render("OVERDUE")
	case domain.StatusOffPlan:
		return StylePurple.Render("OFF-PLAN")
	default:
		return StyleDim.Render("UNKNOWN")
	}
}

// Dim renders text in the muted foreground color.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Header renders a section header.
func Header(s string) string {
	return StyleHeader.Render(s)
}
