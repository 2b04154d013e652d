package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#1F6F4A", Dark: "#7EE2A8"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#F28B82"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#A15C00", Dark: "#F6C177"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#C8C8C8", Dark: "#3C3C3C"}
	ColorButton  = lipgloss.AdaptiveColor{Light: "#E6E6E6", Dark: "#313244"}
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	TitleStyle  = lipgloss.NewStyle().Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ValueStyle  = lipgloss.NewStyle().Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	IconStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	TotalStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)

	// TableCellStyle has no selection highlight; the summary table is read-only.
	TableCellStyle = lipgloss.NewStyle().Padding(0, 1)
)
