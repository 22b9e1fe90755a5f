package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"a11y-analyzer/internal/analyzer"
	"a11y-analyzer/internal/fetcher"
	"a11y-analyzer/internal/report"
)

// RunOptionsAnalyze holds the arguments of the analyze command.
type RunOptionsAnalyze struct {
	Format     string
	OutputPath string
	FailOnHigh bool
}

var (
	analyzeOptions      RunOptionsAnalyze
	exampleAnalyzeUsage = `  # Analyze a page and print the findings as a table
  a11y-analyzer analyze https://example.com

  # URLs entered without a scheme default to https
  a11y-analyzer analyze example.com

  # Write the findings to a CSV file
  a11y-analyzer analyze --format csv --output report.csv https://example.com

  # Produce a SARIF report for code scanning pipelines
  a11y-analyzer analyze --format sarif --output report.sarif https://example.com

  # Fail the pipeline when high severity issues are found
  a11y-analyzer analyze --fail-on-high https://example.com`
)

var analyzeCmd = &cobra.Command{
	Use:                   "analyze [--format/-f FORMAT] [--output/-o PATH] [--fail-on-high] URL",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleAnalyzeUsage,
	Short:                 "Fetch a web page and report its accessibility issues",
	RunE:                  runAnalyzeCommand,
}

func runAnalyzeCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !hasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	if err := validateAnalyzeArgs(&analyzeOptions, args); err != nil {
		return err
	}

	ctx := context.Background()
	logger := newLogger(os.Stderr)

	pageURL, markup, err := fetcher.New(appConfig.Fetcher, logger).Fetch(ctx, args[0])
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(ctx, logger, pageURL, markup)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if analyzeOptions.OutputPath != "" {
		file, err := os.Create(analyzeOptions.OutputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	switch analyzeOptions.Format {
	case "csv":
		err = report.WriteCSV(out, result)
	case "sarif":
		err = report.WriteSARIF(out, result)
	default:
		err = writeTable(out, report.Summarize(result))
	}
	if err != nil {
		return err
	}

	if high := result.CountBySeverity(analyzer.SeverityHigh); analyzeOptions.FailOnHigh && high > 0 {
		fmt.Fprintf(os.Stderr, "Found %d high severity issues\n", high)
		os.Exit(2)
	}
	return nil
}

// validateAnalyzeArgs checks the arguments of the analyze command.
func validateAnalyzeArgs(options *RunOptionsAnalyze, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("analyze expects exactly one URL argument")
	}

	switch options.Format {
	case "table", "csv", "sarif":
	default:
		return fmt.Errorf("unknown format %q: use table, csv or sarif", options.Format)
	}
	return nil
}

// hasFlags reports whether any flag was set on the command line.
func hasFlags(flags *pflag.FlagSet) bool {
	set := false
	flags.Visit(func(*pflag.Flag) {
		set = true
	})
	return set
}

// writeTable prints the findings grouped by severity as plain text.
func writeTable(w io.Writer, summary report.Summary) error {
	fmt.Fprintf(w, "Analysis completed for: %s\n", summary.SourceURL)
	fmt.Fprintf(w, "Total issues: %d (%d high, %d medium, %d low)\n",
		summary.Total, len(summary.High), len(summary.Medium), len(summary.Low))

	if summary.Total == 0 {
		fmt.Fprintln(w, "No accessibility issues found.")
		return nil
	}

	sections := []struct {
		title    string
		findings []analyzer.Finding
	}{
		{title: "High Priority Issues", findings: summary.High},
		{title: "Medium Priority Issues", findings: summary.Medium},
		{title: "Low Priority Issues", findings: summary.Low},
	}
	for _, section := range sections {
		if len(section.findings) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", section.title)
		for _, finding := range section.findings {
			fmt.Fprintf(w, "  [%s] %s - %s\n", finding.Severity(), finding.Type(), finding.Location)
			fmt.Fprintf(w, "      %s\n", finding.Description)
			if finding.Element != "" {
				fmt.Fprintf(w, "      Element: %s\n", finding.Element)
			}
			fmt.Fprintf(w, "      Solution: %s\n", finding.Solution())
		}
	}
	return nil
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOptions.Format, "format", "f", "table", "Output format for the findings: table, csv or sarif.")
	analyzeCmd.Flags().StringVarP(&analyzeOptions.OutputPath, "output", "o", "", "Path to the file where the report will be written instead of stdout.")
	analyzeCmd.Flags().BoolVar(&analyzeOptions.FailOnHigh, "fail-on-high", false, "Exit with code 2 when high severity issues are found.")
	rootCmd.AddCommand(analyzeCmd)
}
