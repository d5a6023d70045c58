package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dgallion1/planview/internal/product"
)

var roadmapHeadingRe = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)

// ParseRoadmap collects every "### N. Title" block in the document,
// regardless of which "##" section holds it, and sorts them by N.
func ParseRoadmap(markdown string) *product.Roadmap {
	if isBlank(markdown) {
		return nil
	}
	return guard(func() *product.Roadmap {
		doc := ParseDocument(markdown)

		var sections []product.Section
		for _, h := range doc.HeadingsAt(3) {
			m := roadmapHeadingRe.FindStringSubmatch(h.Text)
			if m == nil {
				continue
			}
			order, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			title := strings.TrimSpace(m[2])
			sections = append(sections, product.Section{
				ID:          Slugify(title),
				Title:       title,
				Description: doc.Body(h),
				Order:       order,
			})
		}
		if len(sections) == 0 {
			return nil
		}

		sort.SliceStable(sections, func(i, j int) bool {
			return sections[i].Order < sections[j].Order
		})
		return &product.Roadmap{Sections: sections}
	})
}
