// Package product holds the typed read-model records produced from a
// product plan directory. Records are plain values built fresh on every
// parse; nothing here is shared or mutated after construction.
package product

// Problem is one "### Problem N: Title" block of the overview.
type Problem struct {
	Title    string `json:"title"`
	Solution string `json:"solution"`
}

// Overview is the parsed product-overview.md.
type Overview struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Problems    []Problem `json:"problems"`
	Features    []string  `json:"features"`
}

// Section is one numbered entry of the roadmap.
type Section struct {
	ID          string `json:"id"` // Slug derived from Title, not guaranteed unique
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// Roadmap is the parsed product-roadmap.md, sorted by Order.
type Roadmap struct {
	Sections []Section `json:"sections"`
}

// Entity is one "### Name" block under "## Entities".
type Entity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DataShape is the parsed data-shape.md.
type DataShape struct {
	Entities      []Entity `json:"entities"`
	Relationships []string `json:"relationships"`
}

type ColorTokens struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Neutral   string `json:"neutral"`
}

type TypographyTokens struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Mono    string `json:"mono"`
}

// DesignSystem combines the color and typography token files. Either may
// be nil when its file is missing or unreadable.
type DesignSystem struct {
	Colors     *ColorTokens      `json:"colors"`
	Typography *TypographyTokens `json:"typography"`
}

// ShellSpec is the parsed product/shell/spec.md.
type ShellSpec struct {
	Raw             string   `json:"raw"`
	Overview        string   `json:"overview"`
	NavigationItems []string `json:"navigationItems"`
	LayoutPattern   string   `json:"layoutPattern"`
}

type ShellInfo struct {
	Spec          *ShellSpec `json:"spec"`
	HasComponents bool       `json:"hasComponents"`
}

// Data is the whole-product snapshot. Every part is independently optional.
type Data struct {
	Overview     *Overview     `json:"overview"`
	Roadmap      *Roadmap      `json:"roadmap"`
	DataShape    *DataShape    `json:"dataShape"`
	DesignSystem *DesignSystem `json:"designSystem"`
	Shell        *ShellInfo    `json:"shell"`
}
