package dialog

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// columnItem adapts a header name to list.Item
type columnItem string

func (i columnItem) Title() string       { return string(i) }
func (i columnItem) Description() string { return "" }
func (i columnItem) FilterValue() string { return string(i) }

// ColumnModel lets the user pick one header name from the detected row
type ColumnModel struct {
	list      list.Model
	chosen    string
	cancelled bool
}

// NewColumnModel creates a picker over columns
func NewColumnModel(title string, columns []string) ColumnModel {
	items := make([]list.Item, len(columns))
	for i, c := range columns {
		items[i] = columnItem(c)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	height := len(columns) + 6
	if height > 20 {
		height = 20
	}

	styles := DefaultStyles()
	l := list.New(items, delegate, 40, height)
	l.Title = title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = styles.Title

	return ColumnModel{list: l}
}

// Init initializes the model.
func (m ColumnModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ColumnModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if item, ok := m.list.SelectedItem().(columnItem); ok {
				m.chosen = string(item)
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m ColumnModel) View() string {
	if m.chosen != "" || m.cancelled {
		return ""
	}
	return m.list.View() + "\n" + DefaultStyles().Muted.Render("enter select • esc cancel") + "\n"
}

// Chosen returns the selected column and whether the dialog was cancelled
func (m ColumnModel) Chosen() (string, bool) {
	return m.chosen, m.cancelled
}
