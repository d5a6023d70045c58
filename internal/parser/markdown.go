package parser

import (
	"strings"

	"github.com/dgallion1/planview/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// ParseDocument normalizes line endings and builds the heading index for
// a markdown source using goldmark's block parser. Only top-level "#"
// headings count; setext headings and "#" lines inside code blocks are
// treated as body text.
func ParseDocument(source string) *doctree.Document {
	src := normalizeNewlines(source)
	raw := []byte(src)
	root := md.Parser().Parse(text.NewReader(raw))

	doc := &doctree.Document{Source: src}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Lines().Len() == 0 {
			continue
		}
		seg := heading.Lines().At(0)
		lineStart := strings.LastIndexByte(src[:seg.Start], '\n') + 1
		if !strings.HasPrefix(strings.TrimLeft(src[lineStart:seg.Start], " "), "#") {
			continue
		}
		bodyStart := len(src)
		if i := strings.IndexByte(src[seg.Stop:], '\n'); i >= 0 {
			bodyStart = seg.Stop + i + 1
		}
		doc.Headings = append(doc.Headings, &doctree.Heading{
			Level:     heading.Level,
			Text:      strings.TrimSpace(string(seg.Value(raw))),
			LineStart: lineStart,
			BodyStart: bodyStart,
			Index:     len(doc.Headings),
		})
	}
	return doc
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// isBlank reports whether a document has no meaningful content.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
