// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ictam/agmsite/internal/adapters/driving/tui/styles"
)

// SearchInput wraps a bubbles textinput with search-specific styling and
// an optional filter label shown after the field.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
	filter    string
}

// NewSearchInput returns a focused, empty input.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search speakers, sponsors, sessions..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &SearchInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init starts the cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders "Search: [field]" followed by the filter, if any.
func (s *SearchInput) View() string {
	label := s.styles.Title.Render("Search: ")
	field := s.styles.InputField.Render(s.textinput.View())
	if s.filter == "" {
		return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field, s.styles.Muted.Render(" in "+s.filter))
}

func (s *SearchInput) Value() string         { return s.textinput.Value() }
func (s *SearchInput) SetValue(value string) { s.textinput.SetValue(value) }
func (s *SearchInput) Filter() string        { return s.filter }
func (s *SearchInput) Focus() tea.Cmd        { return s.textinput.Focus() }
func (s *SearchInput) Blur()                 { s.textinput.Blur() }
func (s *SearchInput) Focused() bool         { return s.textinput.Focused() }
func (s *SearchInput) Width() int            { return s.width }
func (s *SearchInput) Reset()                { s.textinput.Reset() }

// SetFilter names the kind filter shown after the field. Empty hides it.
func (s *SearchInput) SetFilter(label string) { s.filter = label }

// SetWidth sizes the field to width, leaving room for the label and filter.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.textinput.Width = max(width-24, 20)
}
