// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ictam/agmsite/internal/adapters/driving/tui/messages"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// DefaultItems returns every menu entry.
func DefaultItems() []Item {
	return []Item{
		{Label: "Search", View: messages.ViewSearch},
		{Label: "Speakers", View: messages.ViewSpeakers},
		{Label: "Sponsors", View: messages.ViewSponsors},
		{Label: "Programme", View: messages.ViewProgramme},
		{Label: "Help", View: messages.ViewHelp},
		{Label: "Quit", Quit: true},
	}
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	title    string
	subtitle string
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view. A nil items slice uses DefaultItems.
func NewView(s *styles.Styles, title string, items []Item) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if items == nil {
		items = DefaultItems()
	}

	return &View{
		styles: s,
		title:  title,
		items:  items,
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			if len(v.items) == 0 {
				return v, nil
			}
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.title))
	b.WriteString("\n\n")
	if v.subtitle != "" {
		b.WriteString(v.styles.Muted.Render(v.subtitle))
		b.WriteString("\n\n")
	}

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString("> " + v.styles.Subtitle.Render(item.Label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(item.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetSubtitle sets the line shown under the title, such as a countdown.
func (v *View) SetSubtitle(subtitle string) {
	v.subtitle = subtitle
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu entries.
func (v *View) Items() []Item {
	return v.items
}
