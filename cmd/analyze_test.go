package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11y-analyzer/internal/analyzer"
	"a11y-analyzer/internal/report"
)

func TestValidateAnalyzeArgs(t *testing.T) {
	tests := []struct {
		name    string
		options RunOptionsAnalyze
		args    []string
		wantErr string
	}{
		{
			// valid: a11y-analyzer analyze https://example.com
			name:    "Valid URL with default format",
			options: RunOptionsAnalyze{Format: "table"},
			args:    []string{"https://example.com"},
			wantErr: "",
		},
		{
			// valid: a11y-analyzer analyze --format csv example.com
			name:    "Valid CSV format",
			options: RunOptionsAnalyze{Format: "csv"},
			args:    []string{"example.com"},
			wantErr: "",
		},
		{
			// valid: a11y-analyzer analyze --format sarif example.com
			name:    "Valid SARIF format",
			options: RunOptionsAnalyze{Format: "sarif"},
			args:    []string{"example.com"},
			wantErr: "",
		},
		{
			// fail: a11y-analyzer analyze --format csv
			name:    "Missing URL",
			options: RunOptionsAnalyze{Format: "csv"},
			args:    []string{},
			wantErr: "analyze expects exactly one URL argument",
		},
		{
			// fail: a11y-analyzer analyze a.com b.com
			name:    "Too many URLs",
			options: RunOptionsAnalyze{Format: "table"},
			args:    []string{"a.com", "b.com"},
			wantErr: "analyze expects exactly one URL argument",
		},
		{
			// fail: a11y-analyzer analyze --format xml example.com
			name:    "Unknown format",
			options: RunOptionsAnalyze{Format: "xml"},
			args:    []string{"example.com"},
			wantErr: `unknown format "xml": use table, csv or sarif`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAnalyzeArgs(&tt.options, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestHasFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "table", "")

	assert.False(t, hasFlags(flags))

	require.NoError(t, flags.Set("format", "csv"))
	assert.True(t, hasFlags(flags))
}

func TestWriteTable(t *testing.T) {
	result := &analyzer.AnalysisResult{
		SourceURL: "https://example.com",
		Findings: []analyzer.Finding{
			{Kind: analyzer.MissingAltText, Location: "Image 1", Element: `<img src="a.png">`, Description: "Image missing alt attribute"},
			{Kind: analyzer.TableWithoutCaption, Location: "Table 1", Element: "<table>...</table>", Description: "Table missing caption element"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, report.Summarize(result)))

	out := buf.String()
	assert.Contains(t, out, "Analysis completed for: https://example.com")
	assert.Contains(t, out, "Total issues: 2 (1 high, 0 medium, 1 low)")
	assert.Contains(t, out, "High Priority Issues")
	assert.Contains(t, out, "[High] Missing Alt Text - Image 1")
	assert.Contains(t, out, "Low Priority Issues")
	assert.NotContains(t, out, "Medium Priority Issues")
}

func TestWriteTableNoIssues(t *testing.T) {
	result := &analyzer.AnalysisResult{SourceURL: "https://example.com"}

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, report.Summarize(result)))

	assert.Contains(t, buf.String(), "No accessibility issues found.")
}
