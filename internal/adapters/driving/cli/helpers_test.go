package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ictam/agmsite/internal/adapters/driven/notify"
	"github.com/ictam/agmsite/internal/adapters/driven/storage/memory"
	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/services"
)

func testContent() *domain.Content {
	return &domain.Content{
		Speakers: []domain.Speaker{
			{
				Name:        "Dr. Jane Ansah SC.",
				Title:       "Legal Counsel",
				Topic:       "Digital Regulation",
				Biography:   "Jane advises on **technology law**.",
				SocialMedia: domain.SocialMedia{LinkedIn: "https://linkedin.com/in/jane"},
			},
			{Name: "Kwame Boateng", Title: "CTO, Hubtel", Topic: "AI in Public Services"},
		},
		Sponsors: []domain.Sponsor{
			{ID: "acme", Name: "Acme Corp", Tier: domain.TierGold, Category: "Cloud", Services: []string{"Hosting"}},
			{ID: "mtn", Name: "MTN Ghana", Tier: domain.TierPlatinum, Category: "Telecoms"},
		},
		Programme: domain.Programme{
			Event: "ICTAM AGM 2025",
			Dates: "19-20 November 2025",
			Venue: "Accra",
			Schedule: []domain.ProgrammeDay{
				{
					Day:      "Wednesday, 19 November 2025",
					Subtitle: "Opening Day",
					Sessions: []domain.Session{
						{Title: "Opening Ceremony", Time: "08:00", Type: "Ceremony", Venue: "Main Hall", DressCode: "Formal"},
						{Title: "AI & Digital Innovation Keynotes", Time: "10:00", Type: "Keynote", Speaker: "Kwame Boateng"},
						{Title: "Networking Lunch", Time: "13:00", Type: "Break"},
					},
				},
				{
					Day: "Thursday, 20 November 2025",
					Sessions: []domain.Session{
						{Title: "Keynote: Sustainable Development", Time: "09:00", Type: "Keynote", Speaker: "Dr. Jane Ansah SC."},
						{Title: "Panel: Cyber Security", Time: "11:00", Type: "Panel", Venue: "Room B", Agenda: []string{"Threat landscape"}},
					},
				},
			},
		},
		Links: []domain.Link{
			{Title: "ICTAM Website", Description: "Official association site", URL: "https://ictam.org", Category: "Association"},
			{Title: "Contact Us", Description: "Get in touch", URL: "/#contact", Category: "Site"},
		},
	}
}

// setupTestServices replaces the shared services with in-memory ones and
// restores the previous values when the test ends.
func setupTestServices(t *testing.T) *memory.ContentSource {
	t.Helper()

	oldSettings, oldSearch := settingsService, searchService
	oldDirectory, oldProgramme := directoryService, programmeService
	oldContact, oldSource, oldMetrics := contactService, contentSource, metricsObserver
	oldNow, oldInteractive := now, isInteractive

	source := memory.NewContentSource(testContent())
	cache := services.NewContentCache(source)

	settingsService = services.NewSettingsService(memory.NewConfigStore())
	searchService = services.NewSearchService(cache)
	directoryService = services.NewDirectoryService(cache)
	programmeService = services.NewProgrammeService(cache)
	contactService = services.NewContactService(notify.NewLogSink(io.Discard))
	contentSource = source
	metricsObserver = nil

	t.Cleanup(func() {
		settingsService, searchService = oldSettings, oldSearch
		directoryService, programmeService = oldDirectory, oldProgramme
		contactService, contentSource, metricsObserver = oldContact, oldSource, oldMetrics
		now, isInteractive = oldNow, oldInteractive
	})
	return source
}

// resetFlags puts every flag back to its default so values set by one
// test do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs rootCmd with args and returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeContext(context.Background(), t, "", args...)
}

func executeContext(ctx context.Context, t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
