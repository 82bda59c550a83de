// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ictam/agmsite/internal/adapters/driving/tui/styles"
	"github.com/ictam/agmsite/internal/core/domain"
)

// ResultList displays search results in a navigable list.
type ResultList struct {
	results  []domain.SearchableRecord
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.selected = 0
		case "end", "G":
			if len(r.results) > 0 {
				r.selected = len(r.results) - 1
			}
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results found")
	}

	lines := make([]string, 0, len(r.results)*2+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results))), "")

	// Each result takes two lines.
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(r.results))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *ResultList) renderResult(index int, rec *domain.SearchableRecord) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := Truncate(rec.Title, max(r.width-24, 10))
	if rec.IsExternal() {
		title += " ↗"
	}

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(indicator+title) + " " + r.styles.KindBadge(rec.Kind)
	} else {
		titleLine = r.styles.Normal.Render(indicator+title) + " " + r.styles.KindBadge(rec.Kind)
	}

	detail := rec.Description
	if rec.Category != "" {
		detail = rec.Category + " · " + detail
	}
	return titleLine + "\n" + r.styles.Muted.Render("    "+Truncate(detail, max(r.width-6, 20)))
}

// SetResults replaces the results and resets the selection.
func (r *ResultList) SetResults(results []domain.SearchableRecord) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchableRecord {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index. Out of range values are ignored.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchableRecord {
	if r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}

// Truncate shortens s to at most n runes, ending with "..." when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
