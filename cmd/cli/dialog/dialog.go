// Package dialog holds the terminal dialogs of the interactive filter:
// a column picker and single line prompts for the value and save path.
package dialog

import (
	"fmt"

	"xlfilter/domain/core"

	tea "github.com/charmbracelet/bubbletea"
)

// PickColumn shows the column picker. Cancelling returns core.ErrNoSelection.
func PickColumn(title string, columns []string, opts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(NewColumnModel(title, columns), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("column dialog: %w", err)
	}
	chosen, cancelled := final.(ColumnModel).Chosen()
	if cancelled || chosen == "" {
		return "", core.ErrNoSelection
	}
	return chosen, nil
}

// Ask shows a text prompt. Cancelling or a blank answer returns
// core.ErrNoSelection.
func Ask(title, initial, problem string, opts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(NewInputModel(title, initial, problem), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("input dialog: %w", err)
	}
	value, cancelled := final.(InputModel).Value()
	if cancelled {
		return "", core.ErrNoSelection
	}
	return value, nil
}
