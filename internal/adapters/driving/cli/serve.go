package cli

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ictam/agmsite/internal/adapters/driven/content/watch"
	"github.com/ictam/agmsite/internal/adapters/driving/browser"
	"github.com/ictam/agmsite/internal/adapters/driving/web"
	"github.com/ictam/agmsite/internal/logger"
)

var (
	serveAddr  string
	serveWatch bool
	serveOpen  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conference site over HTTP",
	Long: `Serves the site pages, the JSON API, the contact and registration
forms, /healthz and /metrics.

With --watch, edits to the content directory rebuild the search index
without a restart.`,
	Example: `  agmsite serve
  agmsite serve --addr 127.0.0.1:3000 --open
  agmsite serve --content-dir ./content --watch`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default server.addr setting)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "reload content when the content directory changes")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the site in a browser once listening")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil || settingsService == nil {
		return errNotConfigured("search")
	}

	settings := settingsService.Get()
	if serveAddr != "" {
		settings.Server.Addr = serveAddr
	}

	watchDir := ""
	if serveWatch {
		watchDir = effectiveContentDir()
		if watchDir == "" {
			return errors.New("--watch needs a content directory (--content-dir or content.dir)")
		}
	}

	var m web.Metrics
	if metricsObserver != nil {
		m = metricsObserver
	}
	server, err := web.NewServer(web.Services{
		Search:    searchService,
		Directory: directoryService,
		Programme: programmeService,
		Contact:   contactService,
	}, settings, m)
	if err != nil {
		return fmt.Errorf("failed to build site: %w", err)
	}
	if err := server.Listen(settings.Server.Addr); err != nil {
		return err
	}

	url := localURL(server.Addr())
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s at %s\n", settings.Site.Title, url)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(gctx)
	})
	if watchDir != "" {
		w := watch.New(watchDir, searchService.Reload)
		g.Go(func() error {
			return w.Run(gctx)
		})
		logger.Info("Watching %s for content changes", watchDir)
	}
	if serveOpen {
		if err := browser.NewOpener(url).Open("/"); err != nil {
			logger.Warn("could not open browser: %v", err)
		}
	}

	return g.Wait()
}

// localURL turns a listen address into a URL a local browser can reach.
func localURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	switch host {
	case "", "::", "0.0.0.0":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
