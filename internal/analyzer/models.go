package analyzer

import "fmt"

// Severity ranks how badly a finding impairs users of assistive technology.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	case SeverityLow:
		return "Low"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Kind identifies one of the closed set of issues the checks can raise.
// Severity, impact and remediation text are fixed per kind, so a check can
// never emit a finding with those fields missing.
type Kind int

const (
	MissingAltText Kind = iota
	EmptyAltText
	NoHeadings
	MissingH1
	MultipleH1
	HeadingLevelSkip
	UnlabeledInput
	NonSemanticClickable
	PotentialContrastIssue
	LinkWithoutHref
	EmptyLinkText
	TableWithoutHeaders
	TableWithoutCaption
)

func (k Kind) String() string {
	switch k {
	case MissingAltText:
		return "Missing Alt Text"
	case EmptyAltText:
		return "Empty Alt Text"
	case NoHeadings:
		return "No Headings"
	case MissingH1:
		return "Missing H1"
	case MultipleH1:
		return "Multiple H1"
	case HeadingLevelSkip:
		return "Heading Level Skip"
	case UnlabeledInput:
		return "Unlabeled Input"
	case NonSemanticClickable:
		return "Non-semantic Clickable"
	case PotentialContrastIssue:
		return "Potential Contrast Issue"
	case LinkWithoutHref:
		return "Link Without Href"
	case EmptyLinkText:
		return "Empty Link Text"
	case TableWithoutHeaders:
		return "Table Without Headers"
	case TableWithoutCaption:
		return "Table Without Caption"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// RuleID returns the stable machine-readable identifier used in exports.
func (k Kind) RuleID() string {
	switch k {
	case MissingAltText:
		return "missing-alt-text"
	case EmptyAltText:
		return "empty-alt-text"
	case NoHeadings:
		return "no-headings"
	case MissingH1:
		return "missing-h1"
	case MultipleH1:
		return "multiple-h1"
	case HeadingLevelSkip:
		return "heading-level-skip"
	case UnlabeledInput:
		return "unlabeled-input"
	case NonSemanticClickable:
		return "non-semantic-clickable"
	case PotentialContrastIssue:
		return "potential-contrast-issue"
	case LinkWithoutHref:
		return "link-without-href"
	case EmptyLinkText:
		return "empty-link-text"
	case TableWithoutHeaders:
		return "table-without-headers"
	case TableWithoutCaption:
		return "table-without-caption"
	default:
		return fmt.Sprintf("kind-%d", int(k))
	}
}

func (k Kind) Severity() Severity {
	switch k {
	case MissingAltText, NoHeadings, MissingH1, UnlabeledInput, NonSemanticClickable, EmptyLinkText:
		return SeverityHigh
	case MultipleH1, HeadingLevelSkip, PotentialContrastIssue, LinkWithoutHref, TableWithoutHeaders:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Impact describes who is affected by findings of this kind and how.
func (k Kind) Impact() string {
	switch k {
	case MissingAltText:
		return "Screen readers cannot describe this image to users"
	case EmptyAltText:
		return "Marked as decorative - ensure this is intentional"
	case NoHeadings:
		return "Users cannot navigate page structure with assistive technology"
	case MissingH1:
		return "Page lacks main heading for screen readers"
	case MultipleH1:
		return "Multiple main headings can confuse navigation"
	case HeadingLevelSkip:
		return "Breaks logical heading hierarchy"
	case UnlabeledInput:
		return "Users cannot understand the purpose of this input"
	case NonSemanticClickable:
		return "Element not accessible via keyboard or screen readers"
	case PotentialContrastIssue:
		return "Text may be difficult to read for visually impaired users"
	case LinkWithoutHref:
		return "Link is not functional for keyboard users"
	case EmptyLinkText:
		return "Screen readers cannot describe the link purpose"
	case TableWithoutHeaders:
		return "Screen readers cannot properly navigate table data"
	case TableWithoutCaption:
		return "Users may not understand table purpose"
	default:
		return ""
	}
}

// Solution describes how to fix findings of this kind.
func (k Kind) Solution() string {
	switch k {
	case MissingAltText:
		return `Add descriptive alt text or alt="" for decorative images`
	case EmptyAltText:
		return "Verify if image is truly decorative or needs description"
	case NoHeadings:
		return "Add proper heading hierarchy starting with h1"
	case MissingH1:
		return "Add one h1 element as the main page heading"
	case MultipleH1:
		return "Use only one h1 per page"
	case HeadingLevelSkip:
		return "Use sequential heading levels (h1, h2, h3, etc.)"
	case UnlabeledInput:
		return "Add a label element, aria-label, or aria-labelledby attribute"
	case NonSemanticClickable:
		return `Use button/a elements or add role="button" and tabindex="0"`
	case PotentialContrastIssue:
		return "Verify color contrast ratio meets WCAG standards (4.5:1 for normal text)"
	case LinkWithoutHref:
		return "Add href attribute or use button element instead"
	case EmptyLinkText:
		return "Add descriptive text or aria-label attribute"
	case TableWithoutHeaders:
		return "Add th elements for column/row headers"
	case TableWithoutCaption:
		return "Add caption element describing table content"
	default:
		return ""
	}
}

// Finding is a single accessibility issue located in an analyzed document.
// Element holds a truncated snippet of the offending markup and Location a
// human-readable label such as "Image 3" or "Entire document".
type Finding struct {
	Kind        Kind
	Location    string
	Element     string
	Description string
}

func (f Finding) Type() string       { return f.Kind.String() }
func (f Finding) Severity() Severity { return f.Kind.Severity() }
func (f Finding) Impact() string     { return f.Kind.Impact() }
func (f Finding) Solution() string   { return f.Kind.Solution() }

// AnalysisResult is the ordered outcome of analyzing one document. Findings
// appear in check registry order, and within a check in document order.
type AnalysisResult struct {
	SourceURL string
	Findings  []Finding
}

// BySeverity returns the findings of the given severity, preserving their
// aggregate order.
func (r *AnalysisResult) BySeverity(sev Severity) []Finding {
	var matched []Finding
	for _, f := range r.Findings {
		if f.Severity() == sev {
			matched = append(matched, f)
		}
	}
	return matched
}

func (r *AnalysisResult) CountBySeverity(sev Severity) int {
	return len(r.BySeverity(sev))
}

func (r *AnalysisResult) Total() int {
	return len(r.Findings)
}
