package analyzer

import (
	"reflect"
	"testing"
)

func TestSeverityString(t *testing.T) {
	testCases := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "Low"},
		{SeverityMedium, "Medium"},
		{SeverityHigh, "High"},
	}

	for _, tc := range testCases {
		if got := tc.severity.String(); got != tc.want {
			t.Errorf("Severity.String() got = %v, want %v", got, tc.want)
		}
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityLow < SeverityMedium && SeverityMedium < SeverityHigh) {
		t.Errorf("severity constants are not ordered Low < Medium < High")
	}
}

func TestKindMetadata(t *testing.T) {
	testCases := []struct {
		kind         Kind
		wantString   string
		wantRuleID   string
		wantSeverity Severity
	}{
		{MissingAltText, "Missing Alt Text", "missing-alt-text", SeverityHigh},
		{EmptyAltText, "Empty Alt Text", "empty-alt-text", SeverityLow},
		{NoHeadings, "No Headings", "no-headings", SeverityHigh},
		{MissingH1, "Missing H1", "missing-h1", SeverityHigh},
		{MultipleH1, "Multiple H1", "multiple-h1", SeverityMedium},
		{HeadingLevelSkip, "Heading Level Skip", "heading-level-skip", SeverityMedium},
		{UnlabeledInput, "Unlabeled Input", "unlabeled-input", SeverityHigh},
		{NonSemanticClickable, "Non-semantic Clickable", "non-semantic-clickable", SeverityHigh},
		{PotentialContrastIssue, "Potential Contrast Issue", "potential-contrast-issue", SeverityMedium},
		{LinkWithoutHref, "Link Without Href", "link-without-href", SeverityMedium},
		{EmptyLinkText, "Empty Link Text", "empty-link-text", SeverityHigh},
		{TableWithoutHeaders, "Table Without Headers", "table-without-headers", SeverityMedium},
		{TableWithoutCaption, "Table Without Caption", "table-without-caption", SeverityLow},
	}

	for _, tc := range testCases {
		t.Run(tc.wantString, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.wantString {
				t.Errorf("Kind.String() got = %v, want %v", got, tc.wantString)
			}
			if got := tc.kind.RuleID(); got != tc.wantRuleID {
				t.Errorf("Kind.RuleID() got = %v, want %v", got, tc.wantRuleID)
			}
			if got := tc.kind.Severity(); got != tc.wantSeverity {
				t.Errorf("Kind.Severity() got = %v, want %v", got, tc.wantSeverity)
			}
			if tc.kind.Impact() == "" {
				t.Errorf("Kind.Impact() is empty for %v", tc.kind)
			}
			if tc.kind.Solution() == "" {
				t.Errorf("Kind.Solution() is empty for %v", tc.kind)
			}
		})
	}
}

func TestFindingDelegation(t *testing.T) {
	f := Finding{Kind: MissingAltText, Location: "Image 1"}

	if got := f.Type(); got != "Missing Alt Text" {
		t.Errorf("Finding.Type() got = %v, want Missing Alt Text", got)
	}
	if got := f.Severity(); got != SeverityHigh {
		t.Errorf("Finding.Severity() got = %v, want %v", got, SeverityHigh)
	}
	if f.Impact() != MissingAltText.Impact() {
		t.Errorf("Finding.Impact() does not match its kind")
	}
	if f.Solution() != MissingAltText.Solution() {
		t.Errorf("Finding.Solution() does not match its kind")
	}
}

func TestAnalysisResultBySeverity(t *testing.T) {
	result := &AnalysisResult{
		SourceURL: "https://example.com",
		Findings: []Finding{
			{Kind: MissingAltText, Location: "Image 1"},
			{Kind: TableWithoutCaption, Location: "Table 1"},
			{Kind: EmptyLinkText, Location: "Link 1"},
			{Kind: MultipleH1, Location: "Multiple locations"},
		},
	}

	high := result.BySeverity(SeverityHigh)
	wantHigh := []string{"Image 1", "Link 1"}
	var gotHigh []string
	for _, f := range high {
		gotHigh = append(gotHigh, f.Location)
	}
	if !reflect.DeepEqual(gotHigh, wantHigh) {
		t.Errorf("BySeverity(High) locations got = %v, want %v", gotHigh, wantHigh)
	}

	if got := result.CountBySeverity(SeverityMedium); got != 1 {
		t.Errorf("CountBySeverity(Medium) got = %d, want 1", got)
	}
	if got := result.CountBySeverity(SeverityLow); got != 1 {
		t.Errorf("CountBySeverity(Low) got = %d, want 1", got)
	}
	if got := result.Total(); got != 4 {
		t.Errorf("Total() got = %d, want 4", got)
	}
}
