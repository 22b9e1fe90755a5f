package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// ParseError indicates the supplied markup could not be turned into a
// document.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing document: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Document wraps a parsed HTML tree and exposes the traversal primitives the
// checks are written against.
type Document struct {
	doc *goquery.Document
}

// ParseDocument parses UTF-8 HTML markup. Malformed HTML is repaired the way
// browsers repair it; markup that is not valid UTF-8 is rejected.
func ParseDocument(markup string) (*Document, error) {
	if !utf8.ValidString(markup) {
		return nil, &ParseError{Reason: "markup is not valid UTF-8"}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, &ParseError{Reason: "invalid markup", Err: err}
	}
	return &Document{doc: doc}, nil
}

// FindAll returns all elements with any of the given tag names, in document
// order.
func (d *Document) FindAll(tags ...string) []Element {
	return collect(d.doc.Find(strings.Join(tags, ", ")))
}

// WithAttribute returns all elements carrying the named attribute, in
// document order. Elements with the attribute present but empty are included.
func (d *Document) WithAttribute(name string) []Element {
	return collect(d.doc.Find("[" + name + "]"))
}

// ByID returns the first element whose id attribute equals id exactly, or
// false when no such element exists.
func (d *Document) ByID(id string) (Element, bool) {
	var found Element
	var ok bool
	d.doc.Find("[id]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if v, _ := sel.Attr("id"); v == id {
			found = Element{sel: sel}
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

func collect(sel *goquery.Selection) []Element {
	elems := make([]Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elems = append(elems, Element{sel: s})
	})
	return elems
}

// Element is a single element node in a Document.
type Element struct {
	sel *goquery.Selection
}

// Tag returns the lowercase tag name.
func (e Element) Tag() string {
	if len(e.sel.Nodes) == 0 {
		return ""
	}
	return e.sel.Nodes[0].Data
}

// Attr returns the value of the named attribute and whether the attribute is
// present at all. A present-but-empty attribute yields ("", true), which is
// distinct from an absent one.
func (e Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// HasAttr reports whether the named attribute is present, regardless of its
// value.
func (e Element) HasAttr(name string) bool {
	_, ok := e.sel.Attr(name)
	return ok
}

// Text returns the element's visible text content, including descendant text,
// with surrounding whitespace trimmed.
func (e Element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

// HasAncestor reports whether any proper ancestor has the given tag name. The
// element itself is never considered.
func (e Element) HasAncestor(tag string) bool {
	return e.sel.ParentsFiltered(tag).Length() > 0
}

// HasDescendant reports whether any descendant, at any depth, has the given
// tag name.
func (e Element) HasDescendant(tag string) bool {
	return e.sel.Find(tag).Length() > 0
}

// HasDirectChild reports whether an immediate child has the given tag name.
func (e Element) HasDirectChild(tag string) bool {
	return e.sel.ChildrenFiltered(tag).Length() > 0
}

// OuterHTML renders the element back to markup, trimmed. Returns "" if the
// element cannot be rendered.
func (e Element) OuterHTML() string {
	h, err := goquery.OuterHtml(e.sel)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(h)
}

// truncate shortens s to at most maxLen characters, replacing the tail with
// an ellipsis marker when anything was cut off.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
