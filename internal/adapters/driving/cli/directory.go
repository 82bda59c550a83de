package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ictam/agmsite/internal/core/domain"
)

var directoryJSON bool

var speakersCmd = &cobra.Command{
	Use:   "speakers [slug]",
	Short: "List speakers or show one speaker",
	Long: `Without arguments, lists every speaker. With a slug such as
"ama-mensah", shows that speaker's profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSpeakers,
}

var sponsorsCmd = &cobra.Command{
	Use:   "sponsors [id]",
	Short: "List sponsors by tier or show one sponsor",
	Long: `Without arguments, lists sponsors grouped by tier (platinum, gold,
silver). With an id or name slug, shows that sponsor.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSponsors,
}

func init() {
	speakersCmd.Flags().BoolVar(&directoryJSON, "json", false, "output as JSON")
	sponsorsCmd.Flags().BoolVar(&directoryJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(speakersCmd)
	rootCmd.AddCommand(sponsorsCmd)
}

func runSpeakers(cmd *cobra.Command, args []string) error {
	if directoryService == nil {
		return errNotConfigured("directory")
	}
	w := cmd.OutOrStdout()

	if len(args) == 1 {
		speaker, err := directoryService.SpeakerBySlug(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("speaker %q: %w", args[0], err)
		}
		if directoryJSON {
			return writeJSON(w, speaker)
		}
		printSpeaker(w, speaker)
		return nil
	}

	speakers, err := directoryService.Speakers(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list speakers: %w", err)
	}
	if directoryJSON {
		return writeJSON(w, speakers)
	}
	if len(speakers) == 0 {
		fmt.Fprintln(w, "No speakers announced yet.")
		return nil
	}

	fmt.Fprintf(w, "Speakers (%d):\n\n", len(speakers))
	for i := range speakers {
		sp := &speakers[i]
		fmt.Fprintf(w, "  %-28s %s\n", sp.Name, sp.Title)
		if sp.Topic != "" {
			fmt.Fprintf(w, "  %-28s Topic: %s\n", "", sp.Topic)
		}
		fmt.Fprintf(w, "  %-28s %s\n", "", domain.SpeakerRoute(sp.Name))
	}
	return nil
}

func printSpeaker(w io.Writer, sp *domain.Speaker) {
	fmt.Fprintln(w, sp.Name)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(sp.Name))))
	if sp.Title != "" {
		fmt.Fprintln(w, sp.Title)
	}
	if sp.Topic != "" {
		fmt.Fprintf(w, "Topic: %s\n", sp.Topic)
	}
	if sp.Biography != "" {
		fmt.Fprintf(w, "\n%s\n", sp.Biography)
	}
	printSocial(w, sp.SocialMedia)
	fmt.Fprintf(w, "\n%s\n", siteURL(domain.SpeakerRoute(sp.Name)))
}

func runSponsors(cmd *cobra.Command, args []string) error {
	if directoryService == nil {
		return errNotConfigured("directory")
	}
	w := cmd.OutOrStdout()

	if len(args) == 1 {
		sponsor, err := directoryService.SponsorByID(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("sponsor %q: %w", args[0], err)
		}
		if directoryJSON {
			return writeJSON(w, sponsor)
		}
		printSponsor(w, sponsor)
		return nil
	}

	byTier, err := directoryService.SponsorsByTier(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list sponsors: %w", err)
	}
	if directoryJSON {
		return writeJSON(w, byTier)
	}
	if len(byTier) == 0 {
		fmt.Fprintln(w, "No sponsors announced yet.")
		return nil
	}

	for _, tier := range domain.SponsorTiers {
		sponsors := byTier[tier]
		if len(sponsors) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%d):\n", tier.Label(), len(sponsors))
		for i := range sponsors {
			sp := &sponsors[i]
			fmt.Fprintf(w, "  %-10s %-30s %s\n", sp.ID, sp.DisplayName(), sp.Category)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printSponsor(w io.Writer, sp *domain.Sponsor) {
	name := sp.DisplayName()
	fmt.Fprintln(w, name)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(name))))
	fmt.Fprintln(w, sp.Tier.Label())
	if sp.Category != "" {
		fmt.Fprintf(w, "Category: %s\n", sp.Category)
	}
	if sp.Description != "" {
		fmt.Fprintf(w, "\n%s\n", sp.Description)
	}
	if sp.About != "" {
		fmt.Fprintf(w, "\n%s\n", sp.About)
	}
	if len(sp.Services) > 0 {
		fmt.Fprintln(w, "\nServices:")
		for _, s := range sp.Services {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	if sp.Website != "" {
		fmt.Fprintf(w, "\nWebsite: %s\n", sp.Website)
	}
	printSocial(w, sp.SocialMedia)
}

func printSocial(w io.Writer, s domain.SocialMedia) {
	if s.IsEmpty() {
		return
	}
	fmt.Fprintln(w)
	for _, p := range []struct{ label, url string }{
		{"LinkedIn", s.LinkedIn},
		{"Twitter", s.Twitter},
		{"Facebook", s.Facebook},
	} {
		if p.url != "" {
			fmt.Fprintf(w, "%-9s %s\n", p.label+":", p.url)
		}
	}
}
