package parser

import (
	"regexp"

	"github.com/dgallion1/planview/internal/product"
)

const defaultSpecTitle = "Section Specification"

// shellDisabledRe matches a "shell: false" configuration line, optionally
// written as a bullet.
var shellDisabledRe = regexp.MustCompile(`(?im)^[ \t]*(?:-[ \t]*)?shell[ \t]*:[ \t]*false\b`)

// ParseSpec parses a section spec.md. Any non-blank input yields a record,
// even when every subsection is missing: the file existing is what marks
// the section as specified.
func ParseSpec(markdown string) *product.Spec {
	if isBlank(markdown) {
		return nil
	}
	return guard(func() *product.Spec {
		doc := ParseDocument(markdown)

		title := doc.FirstTitle(1)
		if title == "" {
			title = defaultSpecTitle
		}

		return &product.Spec{
			Title:          title,
			Overview:       doc.Body(doc.Section(2, "Overview")),
			UserFlows:      ExtractBullets(doc.Body(doc.Section(2, "User Flows"))),
			UIRequirements: ExtractBullets(doc.Body(doc.Section(2, "UI Requirements"))),
			UseShell:       !shellDisabledRe.MatchString(doc.Source),
		}
	})
}

// ParseShellSpec parses product/shell/spec.md.
func ParseShellSpec(markdown string) *product.ShellSpec {
	if isBlank(markdown) {
		return nil
	}
	return guard(func() *product.ShellSpec {
		doc := ParseDocument(markdown)
		return &product.ShellSpec{
			Raw:             markdown,
			Overview:        doc.Body(doc.Section(2, "Overview")),
			NavigationItems: ExtractBullets(doc.Body(doc.Section(2, "Navigation Structure"))),
			LayoutPattern:   doc.Body(doc.Section(2, "Layout Pattern")),
		}
	})
}
