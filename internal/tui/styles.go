package tui

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	MutedStyle  lipgloss.Style

	DayCellStyle      lipgloss.Style
	DayCellTodayStyle lipgloss.Style
	CenterStyle       lipgloss.Style

	LoadNormalStyle lipgloss.Style
	LoadHighStyle   lipgloss.Style
	LoadOverStyle   lipgloss.Style

	BarStyle      lipgloss.Style
	BarLabelStyle lipgloss.Style

	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	PromptStyle            lipgloss.Style
	PromptTextStyle        lipgloss.Style
	PromptPlaceholderStyle lipgloss.Style

	// barCache memoizes per-stage bar styles. View runs on every
	// frame; building a style per cell is measurable churn.
	barCache map[string]lipgloss.Style
}

// NewStyles creates the style set.
func NewStyles() *Styles {
	muted := lipgloss.Color("243")
	accent := lipgloss.Color("81")

	return &Styles{
		TitleStyle:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		HeaderStyle: lipgloss.NewStyle().Bold(true),
		MutedStyle:  lipgloss.NewStyle().Foreground(muted),

		DayCellStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DayCellTodayStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		CenterStyle:       lipgloss.NewStyle().Bold(true).Reverse(true),

		LoadNormalStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		LoadHighStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		LoadOverStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),

		BarStyle:      lipgloss.NewStyle().Foreground(accent),
		BarLabelStyle: lipgloss.NewStyle().Bold(true),

		StatusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")),
		HelpStyle:   lipgloss.NewStyle().Foreground(muted),

		PromptStyle:            lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		PromptTextStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PromptPlaceholderStyle: lipgloss.NewStyle().Foreground(muted),

		barCache: make(map[string]lipgloss.Style),
	}
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// barStyleFor returns a bar style for the given stage color. Colors
// that are not #rrggbb hex fall back to the accent bar style.
func (s *Styles) barStyleFor(color string) lipgloss.Style {
	if !hexColorRe.MatchString(color) {
		return s.BarStyle
	}
	if st, ok := s.barCache[color]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	s.barCache[color] = st
	return st
}
