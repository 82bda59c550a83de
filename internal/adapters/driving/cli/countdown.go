package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ictam/agmsite/internal/core/domain"
)

// wideLayoutMin is the terminal width needed for the spelled-out countdown.
const wideLayoutMin = 60

// now is swapped in tests.
var now = time.Now

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Show the time left until the event starts",
	Long: `Shows days, hours, minutes and seconds until site.event_start.
Output is a single compact line when not writing to a wide terminal.`,
	Args: cobra.NoArgs,
	RunE: runCountdown,
}

func init() {
	rootCmd.AddCommand(countdownCmd)
}

func runCountdown(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	site := settingsService.Get().Site
	left := domain.Remaining(site.EventStart, now())

	w := cmd.OutOrStdout()
	switch {
	case left.IsZero():
		fmt.Fprintf(w, "%s is under way.\n", site.Title)
	case isWideTerminal(w):
		fmt.Fprintf(w, "%s starts in\n\n", site.Title)
		fmt.Fprintf(w, "  %s  %s  %s  %s\n",
			plural(left.Days, "day"), plural(left.Hours, "hour"),
			plural(left.Mins, "minute"), plural(left.Secs, "second"))
		fmt.Fprintf(w, "\n  %s\n", site.EventStart.Local().Format("Monday 2 January 2006, 15:04 MST"))
	default:
		fmt.Fprintf(w, "%s: %dd %02dh %02dm %02ds\n", site.Title, left.Days, left.Hours, left.Mins, left.Secs)
	}
	return nil
}

// timeLeftLine is the one-line countdown shown in the TUI menu.
func timeLeftLine(site domain.SiteInfo) string {
	left := domain.Remaining(site.EventStart, now())
	if left.IsZero() {
		return "The event is under way"
	}
	return fmt.Sprintf("%s, %s to go", plural(left.Days, "day"), plural(left.Hours, "hour"))
}

func isWideTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	return err == nil && width >= wideLayoutMin
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
