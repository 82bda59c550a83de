package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage site settings",
	Long: `View and change the site settings stored in config.toml.

Run without a subcommand to list every setting with its effective value.`,
	Args: cobra.NoArgs,
	RunE: runSettingsList,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every setting",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the effective value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Example: `  agmsite settings set site.title "ICTAM AGM 2025"
  agmsite settings set site.event_start 2025-11-19T08:00:00Z
  agmsite settings set contact.rate 0.5`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Step through every setting interactively",
	Long: `Prompts for each setting in turn. Press enter to keep the value shown
in brackets.`,
	Args: cobra.NoArgs,
	RunE: runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	out := cmd.OutOrStdout()
	keys := settingsService.Keys()
	width := 0
	for _, key := range keys {
		width = max(width, len(key))
	}
	for _, key := range keys {
		value, err := settingsService.Value(key)
		if err != nil {
			return err
		}
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(out, "%-*s  %s\n", width, key, value)
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	value, err := settingsService.Value(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "Site Settings Wizard")
	fmt.Fprintln(out, "====================")
	fmt.Fprintln(out)

	changed := 0
	for _, key := range settingsService.Keys() {
		current, err := settingsService.Value(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s [%s]: ", key, current)
		input, eof := readLine(reader)
		if input != "" && input != current {
			if err := settingsService.Set(key, input); err != nil {
				return err
			}
			changed++
		}
		if eof {
			fmt.Fprintln(out)
			break
		}
	}

	fmt.Fprintf(out, "%d setting(s) changed.\n", changed)
	return nil
}

// readLine reads one trimmed line and reports whether input is exhausted.
func readLine(reader *bufio.Reader) (string, bool) {
	input, err := reader.ReadString('\n')
	return strings.TrimSpace(input), err == io.EOF
}
