package parser

import "github.com/dgallion1/planview/internal/product"

// ParseDataShape parses data-shape.md: "### Name" blocks under
// "## Entities" and a bullet list under "## Relationships".
func ParseDataShape(markdown string) *product.DataShape {
	if isBlank(markdown) {
		return nil
	}
	return guard(func() *product.DataShape {
		doc := ParseDocument(markdown)

		entities := []product.Entity{}
		if sec := doc.Section(2, "Entities"); sec != nil {
			for _, h := range doc.Children(sec, 3) {
				entities = append(entities, product.Entity{
					Name:        h.Text,
					Description: doc.Body(h),
				})
			}
		}

		relationships := ExtractBullets(doc.Body(doc.Section(2, "Relationships")))

		if len(entities) == 0 && len(relationships) == 0 {
			return nil
		}
		return &product.DataShape{
			Entities:      entities,
			Relationships: relationships,
		}
	})
}
