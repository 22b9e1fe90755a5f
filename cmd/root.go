// Package cmd contains the command line interface of the analyzer.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"a11y-analyzer/cmd/version"
	"a11y-analyzer/internal/config"
)

var (
	cfgFile   string
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:                   "a11y-analyzer [command]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "a11y-analyzer checks web pages for accessibility issues",
	Long: `a11y-analyzer fetches web pages and inspects their HTML for common
accessibility problems: missing alt text, broken heading structure,
unlabeled form controls, clickable elements that keyboards cannot reach,
inline color contrast risks, empty links and tables without headers.

Findings can be printed as a table, exported as CSV or SARIF, or browsed
through the built-in web UI.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file with analyzer settings.")
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command.
func Execute() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	appConfig = config.Defaults()

	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		appConfig = loaded
	}

	if err := appConfig.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger from the logger config.
func newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(appConfig.Logger.Level)}
	if appConfig.Logger.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
