// Package cli implements the agmsite command line: the site server, the
// interactive terminal UI, the MCP server and one-shot query commands over
// the same core services.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ictam/agmsite/internal/adapters/driven/config/file"
	"github.com/ictam/agmsite/internal/adapters/driven/content/jsonfile"
	"github.com/ictam/agmsite/internal/adapters/driven/metrics"
	"github.com/ictam/agmsite/internal/adapters/driven/notify"
	"github.com/ictam/agmsite/internal/adapters/driven/storage/sqlite"
	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driven"
	"github.com/ictam/agmsite/internal/core/ports/driving"
	"github.com/ictam/agmsite/internal/core/services"
	"github.com/ictam/agmsite/internal/logger"
)

// annotationStandalone marks commands that run without services.
const annotationStandalone = "standalone"

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Persistent flags.
var (
	verbose    bool
	configDir  string
	contentDir string
)

// Services shared by commands. bootstrap fills any left nil, so tests can
// inject their own before executing rootCmd.
var (
	settingsService  driving.SettingsService
	searchService    driving.SearchService
	directoryService driving.DirectoryService
	programmeService driving.ProgrammeService
	contactService   driving.ContactService
	contentSource    driven.ContentSource
	metricsObserver  *metrics.Observer

	closers []io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "agmsite",
	Short: "ICTAM AGM 2025 conference site",
	Long: `agmsite serves the ICTAM AGM 2025 conference site and lets you query
its speakers, sponsors and programme from the terminal.

Content comes from the bundled data set, a directory of JSON files
(--content-dir or content.dir) or a SQLite catalogue (content.database).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd.Annotations[annotationStandalone] != "" {
			return nil
		}
		return bootstrap()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.agmsite)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content-dir", "", "load content from this directory of JSON files")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	closeAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap wires the core services from configuration.
func bootstrap() error {
	if settingsService == nil {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("failed to open config: %w", err)
		}
		settingsService = services.NewSettingsService(store)
	}

	if searchService != nil {
		return nil
	}

	settings := settingsService.Get()
	source, err := openContentSource(settings.Content)
	if err != nil {
		return err
	}
	logger.Debug("Content source: %s", source.Describe())

	metricsObserver = metrics.NewObserver()
	cache := services.NewContentCache(source)

	search := services.NewSearchService(cache)
	search.SetObserver(metricsObserver)
	search.SetDefaultLimit(settings.Search.Limit)

	contentSource = source
	searchService = search
	directoryService = services.NewDirectoryService(cache)
	programmeService = services.NewProgrammeService(cache)
	contactService = services.NewContactService(notify.NewLogSink(os.Stderr))
	return nil
}

// openContentSource picks the content source. The --content-dir flag wins,
// then the SQLite catalogue, then the configured directory, then bundled data.
func openContentSource(cfg domain.ContentSettings) (driven.ContentSource, error) {
	switch {
	case contentDir != "":
		return jsonfile.NewDirSource(contentDir), nil
	case cfg.Database != "":
		store, err := sqlite.NewStore(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to open content database: %w", err)
		}
		closers = append(closers, store)
		return store, nil
	case cfg.Dir != "":
		return jsonfile.NewDirSource(cfg.Dir), nil
	default:
		return jsonfile.NewBundledSource(), nil
	}
}

// effectiveContentDir returns the JSON directory in use, or "".
func effectiveContentDir() string {
	if contentDir != "" {
		return contentDir
	}
	if settingsService == nil {
		return ""
	}
	cfg := settingsService.Get().Content
	if cfg.Database != "" {
		return ""
	}
	return cfg.Dir
}

func closeAll() {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			logger.Warn("close: %v", err)
		}
	}
	closers = nil
}

// errNotConfigured reports a service that bootstrap could not provide.
func errNotConfigured(name string) error {
	return errors.New(name + " service not configured")
}
