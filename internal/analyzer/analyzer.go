package analyzer

import (
	"context"
	"log/slog"
)

// check is one named accessibility check. Checks are pure functions of the
// document; they never depend on the clock, randomness, or map iteration
// order, so analyzing the same markup twice yields identical findings.
type check struct {
	name string
	run  func(ctx context.Context, logger *slog.Logger, doc *Document) []Finding
}

// checkRegistry fixes the order checks run in and therefore the order
// findings appear in. New checks are appended here.
var checkRegistry = []check{
	{name: "images", run: checkImages},
	{name: "headings", run: checkHeadings},
	{name: "form-labels", run: checkFormLabels},
	{name: "clickable-elements", run: checkClickableElements},
	{name: "color-contrast", run: checkColorContrast},
	{name: "links", run: checkLinks},
	{name: "tables", run: checkTables},
}

// Analyze parses the markup and runs every registered check against it.
// sourceURL is carried through for reporting and is never fetched here.
func Analyze(ctx context.Context, logger *slog.Logger, sourceURL, markup string) (*AnalysisResult, error) {
	logger = logger.With(slog.String("source_url", sourceURL))
	logger.DebugContext(ctx, "Starting page analysis")

	doc, err := ParseDocument(markup)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to parse HTML document", slog.Any("error", err))
		return nil, err
	}

	result := &AnalysisResult{SourceURL: sourceURL}
	for _, c := range checkRegistry {
		checkLogger := logger.With(slog.String("check", c.name))
		result.Findings = append(result.Findings, c.run(ctx, checkLogger, doc)...)
	}

	logger.InfoContext(ctx, "Page analysis complete",
		slog.Group("results",
			slog.Int("total", result.Total()),
			slog.Int("high", result.CountBySeverity(SeverityHigh)),
			slog.Int("medium", result.CountBySeverity(SeverityMedium)),
			slog.Int("low", result.CountBySeverity(SeverityLow)),
		),
	)
	return result, nil
}
