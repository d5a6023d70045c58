package parser

import (
	"regexp"
	"strings"
)

// ExtractSection returns the body under "## heading" up to the next level
// 1 or 2 heading. It returns "" when the heading is absent.
func ExtractSection(markdown, heading string) string {
	doc := ParseDocument(markdown)
	return doc.Body(doc.Section(2, heading))
}

// ExtractBullets returns the "- " items of a section body in order.
// Every other line is skipped.
func ExtractBullets(section string) []string {
	items := []string{}
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") {
			items = append(items, strings.TrimSpace(trimmed[2:]))
		}
	}
	return items
}

var (
	ampersandRe   = regexp.MustCompile(`\s+&\s+`)
	nonAlphanumRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a roadmap section id from its title:
// "Billing & Invoices" -> "billing-and-invoices".
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = ampersandRe.ReplaceAllString(s, "-and-")
	s = nonAlphanumRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
