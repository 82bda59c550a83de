package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ictam/agmsite/internal/adapters/driving/browser"
	"github.com/ictam/agmsite/internal/adapters/driving/tui"
)

// errNotInteractive is returned when the TUI is started without a terminal.
var errNotInteractive = errors.New("the TUI needs an interactive terminal; try 'agmsite search' instead")

// isInteractive is swapped in tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal interface.

Search results update as you type. Browse speakers, sponsors and the
programme, and open any entry in your browser.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / open
  Tab      - Filter search by kind
  ←/h, →/l - Change programme day
  Esc      - Back
  ctrl+c   - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts assembles the TUI's services from the shared globals.
func tuiPorts() *tui.Ports {
	ports := tui.NewPorts(searchService, directoryService, programmeService, nil)
	if settingsService != nil {
		settings := settingsService.Get()
		base := settings.Site.BaseURL
		if base == "" {
			base = localURL(settings.Server.Addr)
		}
		ports.Opener = browser.NewOpener(base)
		ports.Title = settings.Site.Title
		ports.Tagline = timeLeftLine(settings.Site)
	}
	return ports
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isInteractive() {
		return errNotInteractive
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tuiPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
