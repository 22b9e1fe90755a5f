package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// checkImages flags img elements with a missing alt attribute (High) and img
// elements whose alt is present but effectively empty (Low, decorative).
func checkImages(ctx context.Context, logger *slog.Logger, doc *Document) []Finding {
	logger.DebugContext(ctx, "Checking images")

	var findings []Finding
	images := doc.FindAll("img")
	for i, img := range images {
		src, hasSrc := img.Attr("src")
		if !hasSrc {
			src = fmt.Sprintf("Image #%d", i+1)
		}

		alt, hasAlt := img.Attr("alt")
		if !hasAlt {
			findings = append(findings, Finding{
				Kind:        MissingAltText,
				Location:    fmt.Sprintf("Image %d", i+1),
				Element:     fmt.Sprintf(`<img src="%s">`, truncate(src, 50)),
				Description: "Image missing alt attribute",
			})
			continue
		}
		if strings.TrimSpace(alt) == "" {
			findings = append(findings, Finding{
				Kind:        EmptyAltText,
				Location:    fmt.Sprintf("Image %d", i+1),
				Element:     fmt.Sprintf(`<img src="%s" alt="">`, truncate(src, 50)),
				Description: "Image has empty alt attribute",
			})
		}
	}

	logger.DebugContext(ctx, "Finished checking images",
		slog.Int("images", len(images)),
		slog.Int("findings", len(findings)),
	)
	return findings
}

// checkHeadings verifies the document has headings at all, exactly one h1,
// and no skipped levels between consecutive headings.
func checkHeadings(ctx context.Context, logger *slog.Logger, doc *Document) []Finding {
	logger.DebugContext(ctx, "Checking heading structure")

	headings := doc.FindAll("h1", "h2", "h3", "h4", "h5", "h6")
	if len(headings) == 0 {
		logger.DebugContext(ctx, "Finished checking heading structure", slog.Int("headings", 0))
		return []Finding{{
			Kind:        NoHeadings,
			Location:    "Entire document",
			Element:     "Document",
			Description: "No heading elements found",
		}}
	}

	var findings []Finding
	h1Count := 0
	for _, h := range headings {
		if h.Tag() == "h1" {
			h1Count++
		}
	}
	switch {
	case h1Count == 0:
		findings = append(findings, Finding{
			Kind:        MissingH1,
			Location:    "Document head",
			Element:     "Document",
			Description: "No h1 element found",
		})
	case h1Count > 1:
		findings = append(findings, Finding{
			Kind:        MultipleH1,
			Location:    "Multiple locations",
			Element:     "Document",
			Description: fmt.Sprintf("Found %d h1 elements", h1Count),
		})
	}

	prevLevel := 0
	for i, h := range headings {
		level := int(h.Tag()[1] - '0')
		if prevLevel > 0 && level > prevLevel+1 {
			tag := h.Tag()
			findings = append(findings, Finding{
				Kind:        HeadingLevelSkip,
				Location:    fmt.Sprintf("Heading %d", i+1),
				Element:     fmt.Sprintf("<%s>%s</%s>", tag, truncate(h.Text(), 30), tag),
				Description: fmt.Sprintf("Heading jumps from h%d to h%d", prevLevel, level),
			})
		}
		prevLevel = level
	}

	logger.DebugContext(ctx, "Finished checking heading structure",
		slog.Int("headings", len(headings)),
		slog.Int("findings", len(findings)),
	)
	return findings
}

// checkFormLabels flags form controls that have no accessible label. A
// control counts as labeled if it is nested inside a label element, carries
// an aria-label or aria-labelledby attribute, or is referenced by a label's
// for attribute. Hidden, submit and button inputs are exempt.
func checkFormLabels(ctx context.Context, logger *slog.Logger, doc *Document) []Finding {
	logger.DebugContext(ctx, "Checking form labels")

	labelFor := make(map[string]bool)
	for _, label := range doc.FindAll("label") {
		if forID, ok := label.Attr("for"); ok && forID != "" {
			labelFor[forID] = true
		}
	}

	var findings []Finding
	controls := doc.FindAll("input", "textarea", "select")
	for i, control := range controls {
		if control.Tag() == "input" {
			inputType, ok := control.Attr("type")
			if !ok {
				inputType = "text"
			}
			if inputType == "hidden" || inputType == "submit" || inputType == "button" {
				continue
			}
		}

		labeled := control.HasAncestor("label") ||
			control.HasAttr("aria-label") ||
			control.HasAttr("aria-labelledby")
		if !labeled {
			if id, ok := control.Attr("id"); ok && labelFor[id] {
				labeled = true
			}
		}
		if labeled {
			continue
		}

		findings = append(findings, Finding{
			Kind:        UnlabeledInput,
			Location:    fmt.Sprintf("Form input %d", i+1),
			Element:     truncate(control.OuterHTML(), 80),
			Description: fmt.Sprintf("%s element lacks proper labeling", control.Tag()),
		})
	}

	logger.DebugContext(ctx, "Finished checking form labels",
		slog.Int("controls", len(controls)),
		slog.Int("findings", len(findings)),
	)
	return findings
}

// checkClickableElements flags divs and spans with onclick handlers that lack
// a button or link role, keyboard focusability, or both. All divs are
// reported before any spans.
func checkClickableElements(ctx context.Context, logger *slog.Logger, doc *Document) []Finding {
	logger.DebugContext(ctx, "Checking clickable elements")

	var clickable []Element
	for _, tag := range []string{"div", "span"} {
		for _, el := range doc.FindAll(tag) {
			if el.HasAttr("onclick") {
				clickable = append(clickable, el)
			}
		}
	}

	var findings []Finding
	for i, el := range clickable {
		var problems []string
		if role, ok := el.Attr("role"); !ok || (role != "button" && role != "link") {
			problems = append(problems, "missing appropriate role")
		}
		if tabindex, ok := el.Attr("tabindex"); !ok || tabindex == "-1" {
			problems = append(problems, "not keyboard accessible")
		}
		if len(problems) == 0 {
			continue
		}

		tag := el.Tag()
		findings = append(findings, Finding{
			Kind:        NonSemanticClickable,
			Location:    fmt.Sprintf("Clickable element %d", i+1),
			Element:     fmt.Sprintf("<%s>%s</%s>", tag, truncate(el.Text(), 30), tag),
			Description: fmt.Sprintf("Clickable %s element with issues: %s", tag, strings.Join(problems, ", ")),
		})
	}

	logger.DebugContext(ctx, "Finished checking clickable elements",
		slog.Int("clickable", len(clickable)),
		slog.Int("findings", len(findings)),
	)
	return findings
}

// checkColorContrast flags elements whose inline style sets both a text color
// and a background, since hardcoded pairs are where contrast failures hide.
// It does not compute actual contrast ratios.
func checkColorContrast(ctx context.Context, logger *slog.Logger, doc *Document) []Finding {
	logger.DebugContext(ctx, "Checking color contrast hints")

	var findings []Finding
	styled := doc.WithAttribute("style")
	for i, el := range styled {
		style, _ := el.Attr("style")
		if !strings.Contains(style, "color:") || !strings.Contains(style, "background") {
			continue
		}
		findings = append(findings, Finding{
			Kind:        PotentialContrastIssue,
			Location:    fmt.Sprintf("Styled element %d", i+1),
			Element:     fmt.Sprintf(`<%s style="%s">`, el.Tag(), truncate(style, 40)),
			Description: "Element has custom colors that may have contrast issues",
		})
	}

	logger.DebugContext(ctx, "Finished checking color contrast hints",
		slog.Int("styled", len(styled)),
		slog.Int("findings", len(findings)),
	)
	return findings
}

// checkLinks flags anchors with no href attribute and anchors with no
// accessible text. The two conditions are independent, so one anchor can
// yield both findings.
func checkLinks(ctx context.Context, logger *slog.Logger, doc *Document) []Finding {
	logger.DebugContext(ctx, "Checking links")

	var findings []Finding
	links := doc.FindAll("a")
	for i, link := range links {
		href, hasHref := link.Attr("href")
		if !hasHref {
			findings = append(findings, Finding{
				Kind:        LinkWithoutHref,
				Location:    fmt.Sprintf("Link %d", i+1),
				Element:     fmt.Sprintf("<a>%s</a>", truncate(link.Text(), 30)),
				Description: "Link element missing href attribute",
			})
		}
		if link.Text() == "" && !link.HasAttr("aria-label") {
			findings = append(findings, Finding{
				Kind:        EmptyLinkText,
				Location:    fmt.Sprintf("Link %d", i+1),
				Element:     fmt.Sprintf(`<a href="%s"></a>`, href),
				Description: "Link has no accessible text",
			})
		}
	}

	logger.DebugContext(ctx, "Finished checking links",
		slog.Int("links", len(links)),
		slog.Int("findings", len(findings)),
	)
	return findings
}

// checkTables flags tables with no th cells anywhere inside them and tables
// with no caption as a direct child.
func checkTables(ctx context.Context, logger *slog.Logger, doc *Document) []Finding {
	logger.DebugContext(ctx, "Checking tables")

	var findings []Finding
	tables := doc.FindAll("table")
	for i, table := range tables {
		if !table.HasDescendant("th") {
			findings = append(findings, Finding{
				Kind:        TableWithoutHeaders,
				Location:    fmt.Sprintf("Table %d", i+1),
				Element:     "<table>...</table>",
				Description: "Table missing header cells (th elements)",
			})
		}
		if !table.HasDirectChild("caption") {
			findings = append(findings, Finding{
				Kind:        TableWithoutCaption,
				Location:    fmt.Sprintf("Table %d", i+1),
				Element:     "<table>...</table>",
				Description: "Table missing caption element",
			})
		}
	}

	logger.DebugContext(ctx, "Finished checking tables",
		slog.Int("tables", len(tables)),
		slog.Int("findings", len(findings)),
	)
	return findings
}
