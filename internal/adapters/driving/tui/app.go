package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ictam/agmsite/internal/adapters/driving/tui/messages"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/styles"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/views/directory"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/views/menu"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/views/programme"
	"github.com/ictam/agmsite/internal/adapters/driving/tui/views/search"
	"github.com/ictam/agmsite/internal/logger"
)

const defaultTitle = "ICTAM AGM"

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles

	menuView      *menu.View
	searchView    *search.View
	speakersView  *directory.View
	sponsorsView  *directory.View
	programmeView *programme.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	title := ports.Title
	if title == "" {
		title = defaultTitle
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s, title, menuItems(ports))
	menuView.SetSubtitle(ports.Tagline)

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		menuView:      menuView,
		searchView:    search.NewView(s, nil, ports.Search).WithTitle(title),
		speakersView:  directory.NewView(s, messages.ViewSpeakers, ports.Directory),
		sponsorsView:  directory.NewView(s, messages.ViewSponsors, ports.Directory),
		programmeView: programme.NewView(s, nil, ports.Programme),
		currentView:   messages.ViewMenu,
	}, nil
}

// menuItems drops entries whose service is missing.
func menuItems(ports *Ports) []menu.Item {
	all := menu.DefaultItems()
	items := make([]menu.Item, 0, len(all))
	for _, item := range all {
		switch item.View {
		case messages.ViewSpeakers, messages.ViewSponsors:
			if ports.Directory == nil {
				continue
			}
		case messages.ViewProgramme:
			if ports.Programme == nil {
				continue
			}
		}
		items = append(items, item)
	}
	return items
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle(a.menuTitle()),
	)
}

func (a *App) menuTitle() string {
	if a.ports.Title != "" {
		return a.ports.Title
	}
	return defaultTitle
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewSpeakers, messages.ViewSponsors, messages.ViewProgramme, messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, a.updateCurrent(msg)
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewSpeakers:
			return a, a.speakersView.Init()
		case messages.ViewSponsors:
			return a, a.sponsorsView.Init()
		case messages.ViewProgramme:
			return a, a.programmeView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.EntriesLoaded:
		if msg.View == messages.ViewSponsors {
			a.sponsorsView, cmd = a.sponsorsView.Update(msg)
		} else {
			a.speakersView, cmd = a.speakersView.Update(msg)
		}
		a.err = msg.Err
		return a, cmd

	case messages.ProgrammeLoaded:
		a.programmeView, cmd = a.programmeView.Update(msg)
		a.err = msg.Err
		return a, cmd

	case messages.OpenRequested:
		return a, a.open(msg.Target)

	case messages.Opened:
		if msg.Err != nil {
			logger.Warn("opening %s: %v", msg.Target, msg.Err)
		}
		a.err = msg.Err
		return a, a.updateCurrent(msg)

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewSearch {
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.updateCurrent(msg)
}

// updateCurrent forwards msg to the active view.
func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewSpeakers:
		a.speakersView, cmd = a.speakersView.Update(msg)
	case messages.ViewSponsors:
		a.sponsorsView, cmd = a.sponsorsView.Update(msg)
	case messages.ViewProgramme:
		a.programmeView, cmd = a.programmeView.Update(msg)
	case messages.ViewHelp:
	}
	return cmd
}

// open resolves target through the opener off the update loop.
func (a *App) open(target string) tea.Cmd {
	opener := a.ports.Opener
	return func() tea.Msg {
		if opener == nil {
			return messages.Opened{Target: target, Err: ErrNoOpener}
		}
		return messages.Opened{Target: target, Err: opener.Open(target)}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewSpeakers:
		return a.speakersView.View()
	case messages.ViewSponsors:
		return a.sponsorsView.View()
	case messages.ViewProgramme:
		return a.programmeView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
		return a.menuView.View()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Results update as you type
  tab         Cycle kind filter (speaker, sponsor, session, link, day)
  enter       Move to results

Results:
  j/k, ↑/↓    Navigate results
  enter/o     Open in browser
  n           New search

Speakers / Sponsors:
  enter       Open detail page
  r           Reload

Programme:
  h/l, ←/→    Previous / next day
  enter       Open session

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.speakersView.SetDimensions(width, height)
	a.sponsorsView.SetDimensions(width, height)
	a.programmeView.SetDimensions(width, height)
}
