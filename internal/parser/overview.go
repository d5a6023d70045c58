package parser

import (
	"regexp"
	"strings"

	"github.com/dgallion1/planview/internal/product"
)

const defaultOverviewName = "Product Overview"

var problemHeadingRe = regexp.MustCompile(`^Problem \d+:\s*(.+)$`)

// ParseOverview parses product-overview.md:
//
//	# Product Name
//	## Description
//	## Problems & Solutions
//	### Problem 1: Title
//	## Key Features
//	- Feature
//
// It returns nil when description, problems and features are all empty.
func ParseOverview(markdown string) *product.Overview {
	if isBlank(markdown) {
		return nil
	}
	return guard(func() *product.Overview {
		doc := ParseDocument(markdown)

		name := doc.FirstTitle(1)
		if name == "" {
			name = defaultOverviewName
		}

		description := doc.Body(doc.Section(2, "Description"))

		problems := []product.Problem{}
		if sec := doc.Section(2, "Problems & Solutions"); sec != nil {
			for _, h := range doc.Children(sec, 3) {
				m := problemHeadingRe.FindStringSubmatch(h.Text)
				if m == nil {
					continue
				}
				problems = append(problems, product.Problem{
					Title:    strings.TrimSpace(m[1]),
					Solution: doc.Body(h),
				})
			}
		}

		features := ExtractBullets(doc.Body(doc.Section(2, "Key Features")))

		if description == "" && len(problems) == 0 && len(features) == 0 {
			return nil
		}
		return &product.Overview{
			Name:        name,
			Description: description,
			Problems:    problems,
			Features:    features,
		}
	})
}
