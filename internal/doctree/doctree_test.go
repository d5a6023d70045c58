package doctree

import (
	"strings"
	"testing"
)

type spec struct {
	level int
	text  string
}

// build lays out headings by hand so offsets match src.
func build(src string, specs ...spec) *Document {
	doc := &Document{Source: src}
	pos := 0
	for i, s := range specs {
		line := strings.Repeat("#", s.level) + " " + s.text
		start := pos + strings.Index(src[pos:], line)
		h := &Heading{Level: s.level, Text: s.text, LineStart: start, BodyStart: start + len(line) + 1, Index: i}
		if h.BodyStart > len(src) {
			h.BodyStart = len(src)
		}
		doc.Headings = append(doc.Headings, h)
		pos = h.BodyStart
	}
	return doc
}

const sample = "# Title\nintro\n## A\nalpha\n### A1\nnested\n## B\nbeta\n"

func sampleDoc() *Document {
	return build(sample, spec{1, "Title"}, spec{2, "A"}, spec{3, "A1"}, spec{2, "B"})
}

func TestBody_StopsAtSameOrHigherLevel(t *testing.T) {
	doc := sampleDoc()

	if got := doc.Body(doc.Section(2, "A")); got != "alpha\n### A1\nnested" {
		t.Errorf("expected A body to include nested heading, got %q", got)
	}
	if got := doc.Body(doc.Section(2, "B")); got != "beta" {
		t.Errorf("expected %q, got %q", "beta", got)
	}
	if got := doc.Body(nil); got != "" {
		t.Errorf("expected empty body for nil heading, got %q", got)
	}
}

func TestSection_ExactMatch(t *testing.T) {
	doc := sampleDoc()
	if doc.Section(2, "a") != nil {
		t.Error("expected case-sensitive match")
	}
	if doc.Section(3, "A") != nil {
		t.Error("expected level to be respected")
	}
}

func TestChildrenAndHeadingsAt(t *testing.T) {
	doc := sampleDoc()

	kids := doc.Children(doc.Section(2, "A"), 3)
	if len(kids) != 1 || kids[0].Text != "A1" {
		t.Fatalf("expected [A1], got %d children", len(kids))
	}
	if n := len(doc.Children(doc.Section(2, "B"), 3)); n != 0 {
		t.Errorf("expected no children under B, got %d", n)
	}
	if n := len(doc.HeadingsAt(2)); n != 2 {
		t.Errorf("expected 2 level-2 headings, got %d", n)
	}
	if got := doc.FirstTitle(1); got != "Title" {
		t.Errorf("expected %q, got %q", "Title", got)
	}
	if got := doc.FirstTitle(4); got != "" {
		t.Errorf("expected empty title, got %q", got)
	}
}
