package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorAccent   = lipgloss.Color("39")
	ColorMuted    = lipgloss.Color("241")
	ColorDisabled = lipgloss.Color("238")
	ColorWarning  = lipgloss.Color("214")
)

// Shared styles.
//
//nolint:gochecknoglobals // Style definitions are immutable after init.
var (
	TextStyle     = lipgloss.NewStyle()
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	DisabledStyle = lipgloss.NewStyle().Foreground(ColorDisabled).Faint(true)
	ButtonStyle   = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	CursorStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	MenuStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted).Padding(0, 1)
	BarStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(ColorMuted)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
)

// Glyphs used by the navigation bar.
const (
	IconBackward  = "‹"
	IconForward   = "›"
	SeparatorText = "|"
)
