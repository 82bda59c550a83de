package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ictam/agmsite/internal/core/domain"
)

var (
	searchKinds  []string
	searchLimit  int
	searchOffset int
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search speakers, sponsors, sessions and links",
	Long: `Searches the site index the same way the site's search box does.

Every word of the query must appear, in any order and any case, in a
record's title, description or category. Results keep index order:
speakers, sponsors, sessions, links, then programme days.`,
	Example: `  agmsite search keynote
  agmsite search ama mensah --kind speaker
  agmsite search bank --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchKinds, "kind", "k", nil,
		"only return these kinds (speaker, sponsor, session, link, day)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = search.limit setting)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "skip this many results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errNotConfigured("search")
	}

	opts := domain.SearchOptions{Limit: searchLimit, Offset: searchOffset}
	if searchLimit < 0 || searchOffset < 0 {
		return fmt.Errorf("limit and offset must not be negative: %w", domain.ErrInvalidInput)
	}
	for _, name := range searchKinds {
		kind, err := domain.ParseRecordKind(name)
		if err != nil {
			return fmt.Errorf("unknown kind %q: %w", name, err)
		}
		opts.Kinds = append(opts.Kinds, kind)
	}

	query := strings.Join(args, " ")
	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	return outputSearchTable(cmd.OutOrStdout(), query, results)
}

func outputSearchTable(w io.Writer, query string, results []domain.SearchableRecord) error {
	if len(results) == 0 {
		fmt.Fprintf(w, "No results found for %q.\n", query)
		return nil
	}

	noun := "results"
	if len(results) == 1 {
		noun = "result"
	}
	fmt.Fprintf(w, "%d %s for %q:\n\n", len(results), noun, query)
	for i := range results {
		r := &results[i]
		fmt.Fprintf(w, "[%d] %-9s %s\n", i+1, r.Kind, r.Title)
		if r.Description != "" {
			fmt.Fprintf(w, "    %s\n", r.Description)
		}
		fmt.Fprintf(w, "    %s\n", siteURL(r.Target))
	}
	return nil
}

// siteURL prefixes internal targets with site.base_url when one is set.
func siteURL(target string) string {
	if domain.IsExternalTarget(target) || settingsService == nil {
		return target
	}
	return settingsService.Get().Site.BaseURL + target
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
