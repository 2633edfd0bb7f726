package term

import (
	"roundtimer/internal/core/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the terminal styles.
type Theme struct {
	Name   string
	Base   lipgloss.Style
	Header lipgloss.Style
	Timer  lipgloss.Style
	Flash  lipgloss.Style
	Dim    lipgloss.Style
	Error  lipgloss.Style
	Phases map[model.Phase]lipgloss.Style
}

// Themes are the built-in terminal themes.
var Themes = map[string]Theme{
	"default": {
		Name:   "Default",
		Base:   lipgloss.NewStyle().Margin(1, 2),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Timer:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Flash:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Bold(true),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Phases: map[model.Phase]lipgloss.Style{
			model.PhaseIdle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1),
			model.PhasePrepare: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1),
			model.PhaseWork:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Padding(0, 1),
			model.PhaseRest:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("28")).Padding(0, 1),
		},
	},
	"mono": {
		Name:   "Mono",
		Base:   lipgloss.NewStyle().Margin(1, 2),
		Header: lipgloss.NewStyle().Bold(true),
		Timer:  lipgloss.NewStyle().Bold(true),
		Flash:  lipgloss.NewStyle().Reverse(true).Bold(true),
		Dim:    lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Underline(true),
		Phases: map[model.Phase]lipgloss.Style{
			model.PhaseIdle:    lipgloss.NewStyle().Padding(0, 1),
			model.PhasePrepare: lipgloss.NewStyle().Reverse(true).Padding(0, 1),
			model.PhaseWork:    lipgloss.NewStyle().Reverse(true).Bold(true).Padding(0, 1),
			model.PhaseRest:    lipgloss.NewStyle().Padding(0, 1),
		},
	},
}

// ThemeByName returns the named theme, or the default one.
func ThemeByName(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return Themes["default"]
}

func (theme Theme) phase(phase model.Phase) lipgloss.Style {
	if style, ok := theme.Phases[phase]; ok {
		return style
	}
	return theme.Phases[model.PhaseIdle]
}
