// Package search provides the live search view for the TUI.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ictam/agmsite/internal/adapters/driving/tui/components/input"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/components/list"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/components/status"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/keymap"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/messages"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/styles"
	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driving"
)

// kindCycle is the order tab steps through. The empty kind means all.
var kindCycle = append([]domain.RecordKind{""}, domain.RecordKinds...)

// View is the search view: a query field re-matched on every keystroke,
// a results list, and a status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context
	title         string

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing, false = navigating results
	kind       int  // index into kindCycle
	lastQuery  string
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		title:         "Search",
		width:         80,
		height:        24,
		focusInput:    true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithTitle sets the header text.
func (v *View) WithTitle(title string) *View {
	if title != "" {
		v.title = title
	}
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.Opened:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage("open: " + msg.Err.Error())
		} else {
			v.statusbar.SetState(status.StateInfo)
			v.statusbar.SetMessage("Opened " + msg.Target)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if keymap.Matches(msg.String(), v.keymap.Kind) {
		v.kind = (v.kind + 1) % len(kindCycle)
		v.input.SetFilter(kindCycle[v.kind].String())
		return v, v.performSearch(v.input.Value())
	}

	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			if !v.list.IsEmpty() {
				v.focusInput = false
				v.input.Blur()
				v.statusbar.SetState(status.StateResults)
			}
			return v, nil
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		if q := v.input.Value(); q != v.lastQuery {
			return v, tea.Batch(cmd, v.performSearch(q))
		}
		return v, cmd
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Open):
		if rec := v.list.SelectedResult(); rec != nil {
			target := rec.Target
			return v, func() tea.Msg {
				return messages.OpenRequested{Target: target}
			}
		}
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.Reset()
		return v, nil
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// performSearch matches query against the index. A blank query clears
// the results without calling the service.
func (v *View) performSearch(query string) tea.Cmd {
	v.lastQuery = query

	var opts domain.SearchOptions
	if k := kindCycle[v.kind]; k != "" {
		opts.Kinds = []domain.RecordKind{k}
	}

	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}
		if query == "" {
			return messages.SearchCompleted{Query: query}
		}

		results, err := v.searchService.Search(v.ctx, query, opts)
		return messages.SearchCompleted{Query: query, Results: results, Err: err}
	}
}

// handleSearchCompleted applies results unless the query has changed
// since they were requested.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Query != v.lastQuery {
		return
	}
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetResults(msg.Results)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(len(msg.Results))
	if v.focusInput {
		v.statusbar.SetState(status.StateReady)
	} else {
		v.statusbar.SetState(status.StateResults)
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render(v.title), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	switch {
	case v.input.Value() == "":
		sections = append(sections, v.styles.Muted.Render("Start typing to search speakers, sponsors, sessions and links"))
	default:
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the query and returns the command that matches it.
func (v *View) SetQuery(query string) tea.Cmd {
	v.input.SetValue(query)
	return v.performSearch(query)
}

// Kind returns the active kind filter. Empty means all kinds.
func (v *View) Kind() domain.RecordKind {
	return kindCycle[v.kind]
}

// Results returns the current search results.
func (v *View) Results() []domain.SearchableRecord {
	return v.list.Results()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.SearchableRecord {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears the query and results and returns focus to the input.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.lastQuery = ""
	v.list.SetResults(nil)
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
