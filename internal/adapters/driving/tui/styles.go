package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the editor.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(14),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).MarginTop(1),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).MarginTop(1),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}
