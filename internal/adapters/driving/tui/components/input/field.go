// Package input provides the form field components of the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/styles"
)

// Field is one focusable form input.
type Field interface {
	Label() string
	Value() string
	SetValue(value string)
	Focus() tea.Cmd
	Blur()
	Focused() bool
	// Reset restores the field's initial value.
	Reset()
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetWidth(width int)
}

// Ensure the fields implement Field.
var (
	_ Field = (*TextField)(nil)
	_ Field = (*AreaField)(nil)
	_ Field = (*ChoiceField)(nil)
)

// labelWidth aligns the field boxes.
const labelWidth = 16

func renderField(s *styles.Styles, label string, focused bool, body string) string {
	box := s.InputField
	if focused {
		box = s.FocusedField
	}
	title := s.Normal.Width(labelWidth).Render(label)
	if focused {
		title = s.Title.Width(labelWidth).Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, box.Render(body))
}

func inputWidth(width int) int {
	w := width - labelWidth - 6
	if w < 20 {
		w = 20
	}
	return w
}

// TextField wraps a bubbles textinput with a label.
type TextField struct {
	label     string
	initial   string
	textinput textinput.Model
	styles    *styles.Styles
}

// NewTextField creates a single line field.
func NewTextField(s *styles.Styles, label, placeholder, initial string) *TextField {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.Width = 50
	ti.SetValue(initial)

	return &TextField{
		label:     label,
		initial:   initial,
		textinput: ti,
		styles:    s,
	}
}

// Label returns the field label.
func (f *TextField) Label() string { return f.label }

// Value returns the current input value.
func (f *TextField) Value() string { return f.textinput.Value() }

// SetValue sets the input value.
func (f *TextField) SetValue(value string) { f.textinput.SetValue(value) }

// Focus sets focus on the input.
func (f *TextField) Focus() tea.Cmd { return f.textinput.Focus() }

// Blur removes focus from the input.
func (f *TextField) Blur() { f.textinput.Blur() }

// Focused returns whether the input is focused.
func (f *TextField) Focused() bool { return f.textinput.Focused() }

// Reset restores the initial value.
func (f *TextField) Reset() {
	f.textinput.Reset()
	f.textinput.SetValue(f.initial)
}

// Update handles input messages.
func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return cmd
}

// View renders the field.
func (f *TextField) View() string {
	return renderField(f.styles, f.label, f.Focused(), f.textinput.View())
}

// SetWidth sets the width of the field.
func (f *TextField) SetWidth(width int) {
	f.textinput.Width = inputWidth(width)
}

// AreaField wraps a bubbles textarea with a label.
type AreaField struct {
	label    string
	textarea textarea.Model
	styles   *styles.Styles
}

// NewAreaField creates a multi line field.
func NewAreaField(s *styles.Styles, label, placeholder string, height int) *AreaField {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 5000
	ta.SetHeight(height)
	ta.SetWidth(50)

	return &AreaField{
		label:    label,
		textarea: ta,
		styles:   s,
	}
}

// Label returns the field label.
func (f *AreaField) Label() string { return f.label }

// Value returns the current text.
func (f *AreaField) Value() string { return f.textarea.Value() }

// SetValue sets the text.
func (f *AreaField) SetValue(value string) { f.textarea.SetValue(value) }

// Focus sets focus on the textarea.
func (f *AreaField) Focus() tea.Cmd { return f.textarea.Focus() }

// Blur removes focus from the textarea.
func (f *AreaField) Blur() { f.textarea.Blur() }

// Focused returns whether the textarea is focused.
func (f *AreaField) Focused() bool { return f.textarea.Focused() }

// Reset clears the text.
func (f *AreaField) Reset() { f.textarea.Reset() }

// Update handles input messages.
func (f *AreaField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.textarea, cmd = f.textarea.Update(msg)
	return cmd
}

// View renders the field.
func (f *AreaField) View() string {
	return renderField(f.styles, f.label, f.Focused(), f.textarea.View())
}

// SetWidth sets the width of the field.
func (f *AreaField) SetWidth(width int) {
	f.textarea.SetWidth(inputWidth(width))
}

// ChoiceField selects one of a fixed set of options with left and right.
type ChoiceField struct {
	label    string
	options  []string
	initial  int
	selected int
	focused  bool
	styles   *styles.Styles
}

// NewChoiceField creates a choice field preselecting initial.
func NewChoiceField(s *styles.Styles, label string, options []string, initial string) *ChoiceField {
	if s == nil {
		s = styles.DefaultStyles()
	}

	f := &ChoiceField{
		label:   label,
		options: options,
		styles:  s,
	}
	for i, opt := range options {
		if opt == initial {
			f.initial = i
		}
	}
	f.selected = f.initial
	return f
}

// Label returns the field label.
func (f *ChoiceField) Label() string { return f.label }

// Value returns the selected option.
func (f *ChoiceField) Value() string {
	if len(f.options) == 0 {
		return ""
	}
	return f.options[f.selected]
}

// SetValue selects value if it is one of the options.
func (f *ChoiceField) SetValue(value string) {
	for i, opt := range f.options {
		if opt == value {
			f.selected = i
			return
		}
	}
}

// Focus sets focus on the field.
func (f *ChoiceField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

// Blur removes focus from the field.
func (f *ChoiceField) Blur() { f.focused = false }

// Focused returns whether the field is focused.
func (f *ChoiceField) Focused() bool { return f.focused }

// Reset restores the initial option.
func (f *ChoiceField) Reset() { f.selected = f.initial }

// Update cycles the options while focused.
func (f *ChoiceField) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !f.focused || len(f.options) == 0 {
		return nil
	}
	switch keyMsg.String() {
	case "left", "h":
		f.selected = (f.selected + len(f.options) - 1) % len(f.options)
	case "right", "l", " ":
		f.selected = (f.selected + 1) % len(f.options)
	}
	return nil
}

// View renders the field.
func (f *ChoiceField) View() string {
	parts := make([]string, 0, len(f.options))
	for i, opt := range f.options {
		if i == f.selected {
			parts = append(parts, f.styles.Selected.Render(" "+opt+" "))
		} else {
			parts = append(parts, f.styles.Muted.Render(" "+opt+" "))
		}
	}
	return renderField(f.styles, f.label, f.focused, strings.Join(parts, " "))
}

// SetWidth is a no-op; options render at their natural width.
func (f *ChoiceField) SetWidth(int) {}
