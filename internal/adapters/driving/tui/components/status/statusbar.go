// Package status renders the one-line bar under the search and programme views.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ictam/agmsite/internal/adapters/driving/tui/keymap"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/styles"
)

// State selects what the left side of the bar shows.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
	StateHelp      State = "help"
	StateResults   State = "results"
	StateProgramme State = "programme"
	StateInfo      State = "info"
)

const defaultWidth = 80

// Bar shows a status message on the left and key hints on the right.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	resultCount int
	width       int
}

// NewBar creates a bar in the ready state. Nil arguments use the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, width: defaultWidth}
}

// View renders the bar padded to its width.
func (s *Bar) View() string {
	left, right := s.status(), s.hints()
	gap := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) status() string {
	st := s.styles
	switch s.state {
	case StateSearching:
		return st.Muted.Render("Searching...")
	case StateInfo:
		return st.Success.Render(s.message)
	case StateHelp:
		return st.Normal.Render("Help")
	case StateError:
		if s.message == "" {
			return st.Error.Render("Error")
		}
		return st.Error.Render("Error: " + s.message)
	}

	switch {
	case s.message != "":
		return st.Normal.Render(s.message)
	case s.resultCount == 1:
		return st.Normal.Render("1 result")
	case s.resultCount > 1:
		return st.Normal.Render(fmt.Sprintf("%d results", s.resultCount))
	default:
		return st.Muted.Render("Ready")
	}
}

func (s *Bar) hints() string {
	var bindings []key.Binding
	switch {
	case s.state == StateResults && s.resultCount > 0:
		bindings = s.keymap.ResultsHelp()
	case s.state == StateProgramme:
		bindings = s.keymap.ProgrammeHelp()
	default:
		bindings = s.keymap.ShortHelp()
	}

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Help().Key + ": " + b.Help().Desc
	}
	return s.styles.Muted.Render(strings.Join(parts, " | "))
}

func (s *Bar) SetState(state State)      { s.state = state }
func (s *Bar) State() State              { return s.state }
func (s *Bar) SetMessage(message string) { s.message = message }
func (s *Bar) Message() string           { return s.message }
func (s *Bar) SetResultCount(count int)  { s.resultCount = count }
func (s *Bar) ResultCount() int          { return s.resultCount }
func (s *Bar) SetWidth(width int)        { s.width = width }
func (s *Bar) Width() int                { return s.width }

// Clear returns the bar to the ready state.
func (s *Bar) Clear() {
	s.state, s.message, s.resultCount = StateReady, "", 0
}
