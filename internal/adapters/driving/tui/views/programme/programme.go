// Package programme provides the day-by-day schedule view for the TUI.
package programme

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ictam/agmsite/internal/adapters/driving/tui/components/list"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/components/status"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/keymap"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/messages"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/styles"
	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driving"
)

// ErrNoProgrammeService indicates that no programme service was provided.
var ErrNoProgrammeService = errors.New("programme service not available")

// View shows one programme day at a time.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar
	service   driving.ProgrammeService

	programme    *domain.Programme
	day          int
	selected     int
	scrollOffset int
	width        int
	height       int
	err          error
	loading      bool
}

// NewView creates a new programme view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.ProgrammeService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km),
		service:   service,
		width:     80,
		height:    24,
	}
}

// Init loads the schedule.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		if v.service == nil {
			return messages.ProgrammeLoaded{Err: ErrNoProgrammeService}
		}
		p, err := v.service.Programme(context.Background())
		return messages.ProgrammeLoaded{Programme: p, Err: err}
	}
}

// Update handles messages for the programme view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ProgrammeLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.programme = msg.Programme
		v.setDay(min(v.day, max(v.dayCount()-1, 0)))
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
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.NextDay):
		if v.day < v.dayCount()-1 {
			v.setDay(v.day + 1)
		}
	case keymap.Matches(key, v.keymap.PrevDay):
		if v.day > 0 {
			v.setDay(v.day - 1)
		}
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.sessions())-1 {
			v.selected++
			v.adjustScroll()
		}
	case keymap.Matches(key, v.keymap.Open):
		if s := v.SelectedSession(); s != nil {
			target := domain.SessionRoute(s.Title)
			return v, func() tea.Msg {
				return messages.OpenRequested{Target: target}
			}
		}
	}
	return v, nil
}

func (v *View) setDay(day int) {
	v.day = day
	v.selected = 0
	v.scrollOffset = 0
	v.statusbar.SetState(status.StateProgramme)
	if n := v.dayCount(); n > 0 {
		v.statusbar.SetMessage(fmt.Sprintf("Day %d of %d", day+1, n))
	} else {
		v.statusbar.SetMessage("")
	}
}

func (v *View) dayCount() int {
	if v.programme == nil {
		return 0
	}
	return len(v.programme.Schedule)
}

func (v *View) sessions() []domain.Session {
	if v.day >= v.dayCount() {
		return nil
	}
	return v.programme.Schedule[v.day].Sessions
}

// adjustScroll keeps the selected session visible.
func (v *View) adjustScroll() {
	visible := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visible {
		v.scrollOffset = v.selected - visible + 1
	}
}

// visibleItemCount is the number of sessions that fit. Each takes two lines.
func (v *View) visibleItemCount() int {
	return max((v.height-10)/2, 1)
}

// View renders the programme view.
func (v *View) View() string {
	var b strings.Builder

	title := "Programme"
	if v.programme != nil && v.programme.Event != "" {
		title = v.programme.Event
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString("\n" + v.styles.Muted.Render("Loading programme..."))
	case v.err != nil:
		b.WriteString("\n" + v.styles.Error.Render("Error: "+v.err.Error()))
	case v.dayCount() == 0:
		b.WriteString("\n" + v.styles.Muted.Render("The programme has not been published yet."))
	default:
		v.renderDay(&b)
	}

	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) renderDay(b *strings.Builder) {
	if v.programme.Venue != "" {
		b.WriteString(v.styles.Muted.Render(v.programme.Venue))
		b.WriteString("\n")
	}

	tabs := make([]string, 0, v.dayCount())
	for i := range v.programme.Schedule {
		label := domain.FormatDayLabel(v.programme.Schedule[i].Day)
		if i == v.day {
			tabs = append(tabs, v.styles.Selected.Render(" "+label+" "))
		} else {
			tabs = append(tabs, v.styles.Muted.Render(" "+label+" "))
		}
	}
	b.WriteString("\n" + strings.Join(tabs, " ") + "\n\n")

	day := &v.programme.Schedule[v.day]
	b.WriteString(v.styles.Subtitle.Render(day.Day))
	if day.Subtitle != "" {
		b.WriteString(v.styles.Muted.Render("  " + day.Subtitle))
	}
	b.WriteString("\n\n")

	sessions := day.Sessions
	if len(sessions) == 0 {
		b.WriteString(v.styles.Muted.Render("No sessions scheduled."))
		return
	}

	end := min(v.scrollOffset+v.visibleItemCount(), len(sessions))
	for i := v.scrollOffset; i < end; i++ {
		b.WriteString(v.renderSession(i, &sessions[i]))
		b.WriteString("\n")
	}
	if len(sessions) > end-v.scrollOffset {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]", v.scrollOffset+1, end, len(sessions))))
	}
}

func (v *View) renderSession(index int, s *domain.Session) string {
	title := list.Truncate(s.Title, max(v.width-24, 10))
	line := fmt.Sprintf("%-8s %s", s.Time, title)
	if index == v.selected {
		line = v.styles.Selected.Render("> " + line)
	} else {
		line = v.styles.Normal.Render("  " + line)
	}
	if s.Type != "" {
		line += " " + v.styles.Muted.Render("["+s.Type+"]")
	}

	var detail []string
	if s.Speaker != "" {
		detail = append(detail, s.Speaker)
	}
	if s.Venue != "" {
		detail = append(detail, s.Venue)
	}
	if s.DressCode != "" {
		detail = append(detail, "Dress: "+s.DressCode)
	}
	return line + "\n" + v.styles.Muted.Render("           "+strings.Join(detail, " · "))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)
}

// Day returns the zero-based index of the day shown.
func (v *View) Day() int {
	return v.day
}

// SelectedSession returns the highlighted session, or nil.
func (v *View) SelectedSession() *domain.Session {
	sessions := v.sessions()
	if v.selected < 0 || v.selected >= len(sessions) {
		return nil
	}
	return &sessions[v.selected]
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
