package dialog

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by the dialogs
type Styles struct {
	Title  lipgloss.Style
	Prompt lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultStyles returns the dialog styles
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
