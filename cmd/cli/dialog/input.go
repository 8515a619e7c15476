package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputModel asks for a single line of text. Submitting a blank line
// counts as cancelling.
type InputModel struct {
	title     string
	problem   string
	input     textinput.Model
	value     string
	submitted bool
	cancelled bool
	styles    Styles
}

// NewInputModel creates a prompt prefilled with initial. A non-empty
// problem is shown above the field, e.g. why the previous attempt failed.
func NewInputModel(title, initial, problem string) InputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Width = 60
	ti.SetValue(initial)
	ti.Focus()

	return InputModel{
		title:   title,
		problem: problem,
		input:   ti,
		styles:  DefaultStyles(),
	}
}

// Init initializes the model.
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.value = strings.TrimSpace(m.input.Value())
			if m.value == "" {
				m.cancelled = true
			} else {
				m.submitted = true
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m InputModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.title) + "\n")
	if m.problem != "" {
		sb.WriteString(m.styles.Error.Render(m.problem) + "\n")
	}
	sb.WriteString(m.styles.Prompt.Render(m.input.View()) + "\n")
	sb.WriteString(m.styles.Muted.Render("enter confirm • esc cancel") + "\n")
	return sb.String()
}

// Value returns the submitted text and whether the prompt was cancelled
func (m InputModel) Value() (string, bool) {
	return m.value, m.cancelled
}
