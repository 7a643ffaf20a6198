package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kitedesk/kitedesk/internal/table"
)

// Styles.
var (
	headerBarStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	termBarStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1"))
	footerBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tabActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	colHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	colActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	symbolStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	plainStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	gainStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	neutralStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	promptStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	highlightBG     = lipgloss.Color("236")
)

// toneStyle maps a value tone to its display style. Absent values render
// dim, uncolored.
func toneStyle(t table.Tone) lipgloss.Style {
	switch t {
	case table.TonePositive:
		return gainStyle
	case table.ToneNegative:
		return lossStyle
	case table.ToneNeutral:
		return neutralStyle
	default:
		return dimStyle
	}
}

// hlStyle returns a copy of s with the row highlight background applied when
// hl is true.
func hlStyle(s lipgloss.Style, hl bool) lipgloss.Style {
	if hl {
		return s.Background(highlightBG)
	}
	return s
}
