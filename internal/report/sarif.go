package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"a11y-analyzer/internal/analyzer"
)

const (
	toolName           = "a11y-analyzer"
	toolInformationURI = "https://www.w3.org/WAI/standards-guidelines/wcag/"
)

// WriteSARIF renders the findings as a SARIF 2.1.0 report with one rule per
// finding kind and one result per finding, so code scanning UIs can ingest
// accessibility scans like any other static analysis.
func WriteSARIF(w io.Writer, result *analyzer.AnalysisResult) error {
	sarifReport, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("creating sarif report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)
	seen := make(map[analyzer.Kind]bool)
	for _, f := range result.Findings {
		if !seen[f.Kind] {
			seen[f.Kind] = true
			run.AddRule(f.Kind.RuleID()).
				WithDescription(f.Type()).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: severityLevel(f.Severity()),
				})
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(result.SourceURL)),
		)

		sarifResult := sarif.NewRuleResult(f.Kind.RuleID()).
			WithMessage(sarif.NewTextMessage(f.Description)).
			WithLevel(severityLevel(f.Severity())).
			WithLocations([]*sarif.Location{location})
		sarifResult.Properties = map[string]interface{}{
			"location": f.Location,
			"element":  f.Element,
			"impact":   f.Impact(),
			"solution": f.Solution(),
		}
		run.AddResult(sarifResult)
	}
	sarifReport.AddRun(run)

	if err := sarifReport.PrettyWrite(w); err != nil {
		return fmt.Errorf("writing sarif report: %w", err)
	}
	return nil
}

// severityLevel maps finding severities onto the SARIF level vocabulary.
func severityLevel(s analyzer.Severity) string {
	switch s {
	case analyzer.SeverityHigh:
		return "error"
	case analyzer.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
