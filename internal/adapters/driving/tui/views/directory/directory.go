// Package directory provides the speaker and sponsor listing views for the TUI.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ictam/agmsite/internal/adapters/driving/tui/components/list"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/messages"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/styles"
	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driving"
)

// ErrNoDirectoryService indicates that no directory service was provided.
var ErrNoDirectoryService = errors.New("directory service not available")

// View lists either speakers or sponsors.
type View struct {
	styles    *styles.Styles
	directory driving.DirectoryService
	kind      messages.ViewType

	entries  []messages.Entry
	selected int
	width    int
	height   int
	ready    bool
	err      error
	loading  bool
}

// NewView creates a listing for kind, which must be ViewSpeakers or
// ViewSponsors.
func NewView(s *styles.Styles, kind messages.ViewType, directory driving.DirectoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		directory: directory,
		kind:      kind,
		width:     80,
		height:    24,
	}
}

// Init loads the entries.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.load()
}

func (v *View) load() tea.Cmd {
	kind := v.kind
	return func() tea.Msg {
		if v.directory == nil {
			return messages.EntriesLoaded{View: kind, Err: ErrNoDirectoryService}
		}

		ctx := context.Background()
		var (
			entries []messages.Entry
			err     error
		)
		if kind == messages.ViewSponsors {
			entries, err = sponsorEntries(ctx, v.directory)
		} else {
			entries, err = speakerEntries(ctx, v.directory)
		}
		return messages.EntriesLoaded{View: kind, Entries: entries, Err: err}
	}
}

func speakerEntries(ctx context.Context, dir driving.DirectoryService) ([]messages.Entry, error) {
	speakers, err := dir.Speakers(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]messages.Entry, 0, len(speakers))
	for i := range speakers {
		sp := &speakers[i]
		detail := sp.Title
		if sp.Topic != "" {
			detail += " · " + sp.Topic
		}
		entries = append(entries, messages.Entry{
			Title:  sp.Name,
			Detail: detail,
			Target: domain.SpeakerRoute(sp.Name),
		})
	}
	return entries, nil
}

// sponsorEntries lists sponsors grouped by tier, highest tier first.
func sponsorEntries(ctx context.Context, dir driving.DirectoryService) ([]messages.Entry, error) {
	byTier, err := dir.SponsorsByTier(ctx)
	if err != nil {
		return nil, err
	}
	var entries []messages.Entry
	for _, tier := range domain.SponsorTiers {
		for i := range byTier[tier] {
			sp := &byTier[tier][i]
			detail := sp.Category
			if detail == "" {
				detail = sp.Description
			}
			entries = append(entries, messages.Entry{
				Title:  sp.DisplayName(),
				Detail: detail,
				Group:  string(tier),
				Target: domain.SponsorRoute(sp.Name),
			})
		}
	}
	return entries, nil
}

// Update handles messages for the listing.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.EntriesLoaded:
		if msg.View != v.kind {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.entries = msg.Entries
		v.err = nil
		if v.selected >= len(v.entries) {
			v.selected = 0
		}
		return v, nil

	case messages.Opened:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.entries)-1 {
			v.selected++
		}
	case "enter", "o":
		if v.selected < len(v.entries) {
			target := v.entries[v.selected].Target
			return v, func() tea.Msg {
				return messages.OpenRequested{Target: target}
			}
		}
	case "r":
		v.loading = true
		return v, v.load()
	}

	return v, nil
}

// View renders the listing.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.title()))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case len(v.entries) == 0:
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("No %s yet.", strings.ToLower(v.title()))))
	default:
		group := ""
		for i := range v.entries {
			e := &v.entries[i]
			if e.Group != group {
				if group != "" {
					b.WriteString("\n")
				}
				group = e.Group
				b.WriteString(v.styles.TierHeading(domain.SponsorTier(group)))
				b.WriteString("\n")
			}
			b.WriteString(v.renderEntry(i, e))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] open  [r] reload  [esc] back"))

	return b.String()
}

func (v *View) renderEntry(index int, e *messages.Entry) string {
	title := list.Truncate(e.Title, max(v.width/2, 10))
	detail := list.Truncate(e.Detail, max(v.width-len([]rune(title))-8, 10))

	if index == v.selected {
		return v.styles.Selected.Render("> "+title) + "  " + v.styles.Muted.Render(detail)
	}
	return v.styles.Normal.Render("  "+title) + "  " + v.styles.Muted.Render(detail)
}

func (v *View) title() string {
	if v.kind == messages.ViewSponsors {
		return "Sponsors"
	}
	return "Speakers"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Entries returns the loaded entries.
func (v *View) Entries() []messages.Entry {
	return v.entries
}

// SelectedIndex returns the currently selected entry index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
