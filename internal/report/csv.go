package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"a11y-analyzer/internal/analyzer"
)

var csvHeader = []string{"Type", "Severity", "Location", "Description", "Impact", "Solution"}

// WriteCSV writes a header row followed by one row per finding, in the order
// the analysis produced them.
func WriteCSV(w io.Writer, result *analyzer.AnalysisResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, f := range result.Findings {
		row := []string{f.Type(), f.Severity().String(), f.Location, f.Description, f.Impact(), f.Solution()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
