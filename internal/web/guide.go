package web

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
)

// guideMarkdown is the sidebar explainer shown next to the analyzer form.
const guideMarkdown = `## What We Check

**Images**
- Missing alt text
- Empty alt attributes

**Headings**
- Proper hierarchy
- Missing H1 tags
- Level skipping

**Forms**
- Unlabeled inputs
- Missing form labels

**Interactive Elements**
- Non-semantic clickables
- Keyboard accessibility

**Links**
- Empty link text
- Missing href attributes

**Tables**
- Missing headers
- No captions

**Colors**
- Potential contrast issues

## Severity Levels

- **High:** Critical accessibility barriers
- **Medium:** Important usability issues
- **Low:** Minor improvements needed
`

// renderGuide converts the guide to HTML once at startup.
func renderGuide() template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(guideMarkdown), &buf); err != nil {
		panic(err)
	}
	return template.HTML(buf.String())
}
