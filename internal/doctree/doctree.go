package doctree

import "strings"

// Document is a parsed markdown file reduced to its heading structure.
// Bodies are kept as raw source so line-oriented extraction (bullets,
// configuration flags) sees exactly what the author wrote.
type Document struct {
	Source   string     // Normalized source (LF line endings)
	Headings []*Heading // ATX headings in document order
}

// Heading is a single "#"-style heading and the span it owns.
type Heading struct {
	Level     int    // 1-6
	Text      string // Raw heading text without markers
	LineStart int    // Byte offset of the heading line
	BodyStart int    // Byte offset just past the heading line
	Index     int    // Position in Document.Headings
}

// FirstTitle returns the text of the first heading at level, or "".
func (d *Document) FirstTitle(level int) string {
	for _, h := range d.Headings {
		if h.Level == level && h.Text != "" {
			return h.Text
		}
	}
	return ""
}

// Section finds the first heading at level whose text equals name exactly.
func (d *Document) Section(level int, name string) *Heading {
	for _, h := range d.Headings {
		if h.Level == level && h.Text == name {
			return h
		}
	}
	return nil
}

// HeadingsAt returns every heading at level across the whole document.
func (d *Document) HeadingsAt(level int) []*Heading {
	var out []*Heading
	for _, h := range d.Headings {
		if h.Level == level {
			out = append(out, h)
		}
	}
	return out
}

// Children returns the headings at level that fall inside h's span.
func (d *Document) Children(h *Heading, level int) []*Heading {
	var out []*Heading
	end := d.end(h)
	for _, c := range d.Headings[h.Index+1:] {
		if c.LineStart >= end {
			break
		}
		if c.Level == level {
			out = append(out, c)
		}
	}
	return out
}

// Body returns the text between h and the next heading of equal or
// higher level (or end of document), trimmed of surrounding blank lines.
func (d *Document) Body(h *Heading) string {
	if h == nil {
		return ""
	}
	return strings.TrimSpace(d.Source[h.BodyStart:d.end(h)])
}

// end is the offset of the next heading at h.Level or above.
func (d *Document) end(h *Heading) int {
	for _, c := range d.Headings[h.Index+1:] {
		if c.Level <= h.Level {
			return c.LineStart
		}
	}
	return len(d.Source)
}
