// Package report renders analysis results for people and machines: severity
// summaries for the web UI and CLI, CSV rows for spreadsheets, and SARIF for
// code scanning pipelines.
package report

import (
	"fmt"
	"net/url"
	"time"

	"a11y-analyzer/internal/analyzer"
)

// Summary groups one analysis by severity for presentation.
type Summary struct {
	SourceURL string
	Total     int
	High      []analyzer.Finding
	Medium    []analyzer.Finding
	Low       []analyzer.Finding
}

// Summarize buckets the findings by severity, preserving their order within
// each bucket.
func Summarize(result *analyzer.AnalysisResult) Summary {
	return Summary{
		SourceURL: result.SourceURL,
		Total:     result.Total(),
		High:      result.BySeverity(analyzer.SeverityHigh),
		Medium:    result.BySeverity(analyzer.SeverityMedium),
		Low:       result.BySeverity(analyzer.SeverityLow),
	}
}

// Filename builds a download name like
// accessibility_report_example.com_1716822000.csv. When sourceURL has no
// parseable host the whole URL stands in for it.
func Filename(sourceURL, ext string, now time.Time) string {
	host := sourceURL
	if u, err := url.Parse(sourceURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return fmt.Sprintf("accessibility_report_%s_%d.%s", host, now.Unix(), ext)
}
