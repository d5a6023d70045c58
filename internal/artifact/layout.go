package artifact

import "strings"

// Logical paths of the product plan layout, relative to the project root.
const (
	OverviewPath       = "product/product-overview.md"
	RoadmapPath        = "product/product-roadmap.md"
	DataShapePath      = "product/data-shape/data-shape.md"
	ColorsPath         = "product/design-system/colors.json"
	TypographyPath     = "product/design-system/typography.json"
	ShellSpecPath      = "product/shell/spec.md"
	ShellComponentPath = "src/shell/components/AppShell.tsx"
	ExportArchivePath  = "product-plan.zip"

	SectionsRoot      = "product/sections/"
	ScreenDesignsRoot = "src/sections/"
)

// Glob patterns for every artifact kind the read model consumes.
const (
	SectionSpecGlob  = "product/sections/*/spec.md"
	SectionDataGlob  = "product/sections/*/data.json"
	ScreenshotGlob   = "product/sections/*/*.png"
	ScreenDesignGlob = "src/sections/*/*.tsx"
)

// Patterns selects the files Load keeps from the project tree.
var Patterns = []string{
	"product/*.md",
	"product/data-shape/*.md",
	"product/design-system/*.json",
	"product/shell/*.md",
	SectionSpecGlob,
	SectionDataGlob,
	ScreenshotGlob,
	ScreenDesignGlob,
	"src/shell/components/*.tsx",
	ExportArchivePath,
}

// walkRoots are the subtrees Load descends into.
var walkRoots = []string{"product", "src/sections", "src/shell", ExportArchivePath}

func SectionSpecPath(id string) string { return SectionsRoot + id + "/spec.md" }

func SectionDataPath(id string) string { return SectionsRoot + id + "/data.json" }

func ScreenDesignPath(id, name string) string { return ScreenDesignsRoot + id + "/" + name + ".tsx" }

// SectionIDFromProduct extracts <id> from "product/sections/<id>/...".
func SectionIDFromProduct(p string) (string, bool) {
	return segmentAfter(p, SectionsRoot)
}

// SectionIDFromSource extracts <id> from "src/sections/<id>/...".
func SectionIDFromSource(p string) (string, bool) {
	return segmentAfter(p, ScreenDesignsRoot)
}

func segmentAfter(p, root string) (string, bool) {
	rest, ok := strings.CutPrefix(p, root)
	if !ok {
		return "", false
	}
	id, _, ok := strings.Cut(rest, "/")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ValidSegment reports whether s can be used as a single path segment
// (a section id or screen design name) without escaping its directory.
func ValidSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}
