package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"a11y-analyzer/internal/fetcher"
	"a11y-analyzer/internal/web"
)

const shutdownTimeout = 5 * time.Second

// RunOptionsServe holds the arguments of the serve command.
type RunOptionsServe struct {
	Listen string
}

var (
	serveOptions      RunOptionsServe
	exampleServeUsage = `  # Serve the web UI on the configured address
  a11y-analyzer serve

  # Serve the web UI on a custom address
  a11y-analyzer serve --listen :9090`
)

var serveCmd = &cobra.Command{
	Use:                   "serve [--listen/-l ADDRESS]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleServeUsage,
	Short:                 "Serve the web UI for interactive analysis",
	RunE:                  runServeCommand,
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	if serveOptions.Listen != "" {
		appConfig.Web.Listen = serveOptions.Listen
	}

	logger := newLogger(os.Stdout)
	pageFetcher := fetcher.New(appConfig.Fetcher, logger)
	server := web.NewServer(appConfig.Web, pageFetcher, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("web server failed: %w", err)
	case <-sig:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Stop(ctx)
}

func init() {
	serveCmd.Flags().StringVarP(&serveOptions.Listen, "listen", "l", "", "Address for the web UI to listen on, overriding the config.")
	rootCmd.AddCommand(serveCmd)
}
