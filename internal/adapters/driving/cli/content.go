package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ictam/agmsite/internal/adapters/driven/content/jsonfile"
	"github.com/ictam/agmsite/internal/adapters/driven/storage/sqlite"
	"github.com/ictam/agmsite/internal/core/domain"
)

var (
	exportDB  string
	exportDir string
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect and export site content",
}

var contentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Copy the current content into a SQLite catalogue or a JSON directory",
	Long: `Reads the active content source and writes it to a SQLite catalogue
(--db) or a directory of JSON collections (--dir).

Point content.database at the catalogue to serve from it.`,
	Example: `  agmsite content export --db ~/.agmsite/data/content.db
  agmsite content export --dir ./content`,
	Args: cobra.NoArgs,
	RunE: runContentExport,
}

var contentInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the active content source",
	Args:  cobra.NoArgs,
	RunE:  runContentInfo,
}

func init() {
	contentExportCmd.Flags().StringVar(&exportDB, "db", "", "SQLite catalogue to write")
	contentExportCmd.Flags().StringVar(&exportDir, "dir", "", "directory to write JSON collections to")
	contentExportCmd.MarkFlagsMutuallyExclusive("db", "dir")
	contentExportCmd.MarkFlagsOneRequired("db", "dir")
	contentCmd.AddCommand(contentExportCmd)
	contentCmd.AddCommand(contentInfoCmd)
	rootCmd.AddCommand(contentCmd)
}

func runContentExport(cmd *cobra.Command, _ []string) error {
	if contentSource == nil {
		return errNotConfigured("content")
	}

	content, err := contentSource.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	var dest string
	if exportDB != "" {
		store, err := sqlite.NewStore(exportDB)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", exportDB, err)
		}
		defer store.Close()
		if err := store.Import(cmd.Context(), content, contentSource.Describe()); err != nil {
			return err
		}
		dest = store.Path()
	} else {
		if err := jsonfile.WriteDir(exportDir, content); err != nil {
			return err
		}
		dest = exportDir
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", summarise(content), dest)
	return nil
}

func runContentInfo(cmd *cobra.Command, _ []string) error {
	if contentSource == nil || searchService == nil {
		return errNotConfigured("content")
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	content, err := contentSource.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	index, err := searchService.Index(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Source:    %s\n", contentSource.Describe())
	fmt.Fprintf(out, "Speakers:  %d\n", len(content.Speakers))
	fmt.Fprintf(out, "Sponsors:  %d\n", len(content.Sponsors))
	fmt.Fprintf(out, "Days:      %d\n", len(content.Programme.Schedule))
	fmt.Fprintf(out, "Sessions:  %d\n", content.Programme.SessionCount())
	fmt.Fprintf(out, "Links:     %d\n", len(content.Links))
	fmt.Fprintf(out, "Index:     %d records\n", len(index))

	if store, ok := contentSource.(*sqlite.Store); ok {
		info, err := store.LastImport(ctx)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			fmt.Fprintln(out, "Imported:  never")
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "Imported:  %s from %s\n", info.ImportedAt.Format(time.RFC3339), info.Source)
		}
	}
	return nil
}

func summarise(content *domain.Content) string {
	return fmt.Sprintf("%d speakers, %d sponsors, %d sessions, %d links",
		len(content.Speakers), len(content.Sponsors),
		content.Programme.SessionCount(), len(content.Links))
}
