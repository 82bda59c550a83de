package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ictam/agmsite/internal/core/domain"
)

var (
	programmeDay   int
	programmeTypes []string
	programmeQuery string
	programmeJSON  bool
)

var programmeCmd = &cobra.Command{
	Use:     "programme",
	Aliases: []string{"program", "schedule"},
	Short:   "Show the event schedule",
	Long: `Shows the programme day by day. Narrow it with --day (1 for the
first day), --type to keep only some session types, and --query for a
case-insensitive match on title, speaker, type or venue.`,
	Example: `  agmsite programme --day 2
  agmsite programme --type Keynote --type Panel
  agmsite programme -q "main hall"`,
	Args: cobra.NoArgs,
	RunE: runProgramme,
}

func init() {
	programmeCmd.Flags().IntVarP(&programmeDay, "day", "d", 0, "show only this day, counting from 1 (0 = all days)")
	programmeCmd.Flags().StringSliceVarP(&programmeTypes, "type", "t", nil, "keep only these session types")
	programmeCmd.Flags().StringVarP(&programmeQuery, "query", "q", "", "filter sessions by text")
	programmeCmd.Flags().BoolVar(&programmeJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(programmeCmd)
}

func runProgramme(cmd *cobra.Command, _ []string) error {
	if programmeService == nil {
		return errNotConfigured("programme")
	}

	programme, err := programmeService.Programme(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load programme: %w", err)
	}
	if programmeDay < 0 || programmeDay > len(programme.Schedule) {
		return fmt.Errorf("day must be between 1 and %d: %w", len(programme.Schedule), domain.ErrInvalidInput)
	}

	filter := domain.ProgrammeFilter{
		Day:   programmeDay - 1,
		Types: programmeTypes,
		Query: programmeQuery,
	}
	days, err := programmeService.Filter(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("failed to filter programme: %w", err)
	}

	w := cmd.OutOrStdout()
	if programmeJSON {
		return writeJSON(w, days)
	}

	if programme.Event != "" {
		fmt.Fprintln(w, programme.Event)
		header := strings.TrimSpace(programme.Dates + "  " + programme.Venue)
		if header != "" {
			fmt.Fprintln(w, header)
		}
		fmt.Fprintln(w)
	}
	if len(days) == 0 {
		fmt.Fprintln(w, "No sessions match.")
		return nil
	}
	for i := range days {
		printDay(w, &days[i])
	}
	return nil
}

func printDay(w io.Writer, day *domain.ProgrammeDay) {
	fmt.Fprint(w, day.Day)
	if day.Subtitle != "" {
		fmt.Fprintf(w, " · %s", day.Subtitle)
	}
	fmt.Fprintln(w)

	for i := range day.Sessions {
		s := &day.Sessions[i]
		line := fmt.Sprintf("  %-13s %s", s.Time, s.Title)
		if s.Type != "" {
			line += fmt.Sprintf(" [%s]", s.Type)
		}
		fmt.Fprintln(w, line)

		var detail []string
		if s.Speaker != "" {
			speaker := s.Speaker
			if s.SpeakerTitle != "" {
				speaker += ", " + s.SpeakerTitle
			}
			detail = append(detail, speaker)
		}
		if s.Venue != "" {
			detail = append(detail, s.Venue)
		}
		if s.DressCode != "" {
			detail = append(detail, "Dress code: "+s.DressCode)
		}
		if len(detail) > 0 {
			fmt.Fprintf(w, "  %-13s %s\n", "", strings.Join(detail, " · "))
		}
		for _, item := range s.Agenda {
			fmt.Fprintf(w, "  %-13s - %s\n", "", item)
		}
	}
	fmt.Fprintln(w)
}
