package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vishwaszadte/math-expression-generator/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typing numeric answers. It
// accepts digits plus a leading minus and one decimal point, since
// results can be negative or decimal depending on the generator config.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewAnswerInput creates a focused, styled answer input.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages, filtering out keys that cannot appear in a
// numeric answer.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !a.acceptsRune(key[0]) {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// acceptsRune reports whether a single-rune key press is a legal next
// character for the current value.
func (a AnswerInput) acceptsRune(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '-':
		return a.Model.Value() == ""
	case c == '.':
		return !strings.Contains(a.Model.Value(), ".")
	}
	return false
}

// View renders the input, with a verdict mark after submission.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Submit marks the input as submitted with a verdict.
func (a *AnswerInput) Submit(valid bool) {
	a.submitted = true
	a.valid = valid
}
