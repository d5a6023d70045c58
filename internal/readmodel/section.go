package readmodel

import (
	"sort"

	"github.com/dgallion1/planview/internal/artifact"
	"github.com/dgallion1/planview/internal/parser"
	"github.com/dgallion1/planview/internal/product"
)

func (m *Model) HasSectionSpec(id string) bool {
	return artifact.ValidSegment(id) && m.idx.Has(artifact.SectionSpecPath(id))
}

func (m *Model) HasSectionData(id string) bool {
	return artifact.ValidSegment(id) && m.idx.Has(artifact.SectionDataPath(id))
}

// SectionSpec parses the section's spec.md.
func (m *Model) SectionSpec(id string) *product.Spec {
	md, ok := m.sectionSpecText(id)
	if !ok {
		return nil
	}
	return parser.ParseSpec(md)
}

// SectionUsesShell reports whether the section's screen designs render
// inside the app shell. Sections without a spec use the shell.
func (m *Model) SectionUsesShell(id string) bool {
	spec := m.SectionSpec(id)
	if spec == nil {
		return true
	}
	return spec.UseShell
}

// SectionPayload decodes the section's data.json. A malformed file is
// logged and reported as absent.
func (m *Model) SectionPayload(id string) *product.Payload {
	if !artifact.ValidSegment(id) {
		return nil
	}
	p := artifact.SectionDataPath(id)
	data, ok := m.idx.Get(p)
	if !ok {
		return nil
	}
	payload, err := parser.ParseSectionPayload(data)
	if err != nil {
		m.log.Warn("ignoring section data", "path", p, "error", err)
		return nil
	}
	return payload
}

// ScreenDesigns lists src/sections/<id>/*.tsx.
func (m *Model) ScreenDesigns(id string) []product.ScreenDesign {
	designs := []product.ScreenDesign{}
	if !artifact.ValidSegment(id) {
		return designs
	}
	for _, p := range m.idx.Under(artifact.ScreenDesignGlob, artifact.ScreenDesignsRoot+id) {
		name := baseName(p, ".tsx")
		designs = append(designs, product.ScreenDesign{Name: name, Path: p, ComponentName: name})
	}
	return designs
}

// ScreenDesign looks up one screen design by component name.
func (m *Model) ScreenDesign(id, name string) *product.ScreenDesign {
	if !artifact.ValidSegment(id) || !artifact.ValidSegment(name) {
		return nil
	}
	p := artifact.ScreenDesignPath(id, name)
	if !m.idx.Has(p) {
		return nil
	}
	return &product.ScreenDesign{Name: name, Path: p, ComponentName: name}
}

// Screenshots lists product/sections/<id>/*.png.
func (m *Model) Screenshots(id string) []product.Screenshot {
	shots := []product.Screenshot{}
	if !artifact.ValidSegment(id) {
		return shots
	}
	for _, p := range m.idx.Under(artifact.ScreenshotGlob, artifact.SectionsRoot+id) {
		shots = append(shots, product.Screenshot{Name: baseName(p, ".png"), Path: p, URL: m.URL(p)})
	}
	return shots
}

// SectionIDs is the sorted union of ids that have a spec, a data payload
// or a screen design, whether or not the roadmap mentions them.
func (m *Model) SectionIDs() []string {
	seen := make(map[string]struct{})
	collect := func(pattern string, extract func(string) (string, bool)) {
		for _, p := range m.idx.Glob(pattern) {
			if id, ok := extract(p); ok {
				seen[id] = struct{}{}
			}
		}
	}
	collect(artifact.SectionSpecGlob, artifact.SectionIDFromProduct)
	collect(artifact.SectionDataGlob, artifact.SectionIDFromProduct)
	collect(artifact.ScreenDesignGlob, artifact.SectionIDFromSource)

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SectionData assembles every artifact of one section.
func (m *Model) SectionData(id string) product.SectionData {
	sd := product.SectionData{
		SectionID:     id,
		Data:          m.SectionPayload(id),
		ScreenDesigns: m.ScreenDesigns(id),
		Screenshots:   m.Screenshots(id),
	}
	if md, ok := m.sectionSpecText(id); ok {
		sd.Spec = &md
		sd.SpecParsed = parser.ParseSpec(md)
	}
	return sd
}

// SectionProgress summarizes which artifacts exist for a section.
func (m *Model) SectionProgress(id string) product.SectionProgress {
	return product.SectionProgress{
		SectionID:         id,
		HasSpec:           m.HasSectionSpec(id),
		HasData:           m.HasSectionData(id),
		ScreenDesignCount: len(m.ScreenDesigns(id)),
		ScreenshotCount:   len(m.Screenshots(id)),
	}
}

func (m *Model) sectionSpecText(id string) (string, bool) {
	if !artifact.ValidSegment(id) {
		return "", false
	}
	return m.idx.Text(artifact.SectionSpecPath(id))
}

// Listing is one row of the section index.
type Listing struct {
	product.SectionProgress
	Title     string `json:"title,omitempty"`
	Order     int    `json:"order"`
	InRoadmap bool   `json:"inRoadmap"`
	Complete  bool   `json:"complete"`
}

// Sections lists roadmap sections in roadmap order, then every section
// that only exists on disk. Duplicate roadmap slugs are listed once.
func (m *Model) Sections() []Listing {
	out := []Listing{}
	listed := make(map[string]bool)
	add := func(id, title string, order int, inRoadmap bool) {
		if listed[id] {
			return
		}
		listed[id] = true
		progress := m.SectionProgress(id)
		out = append(out, Listing{
			SectionProgress: progress,
			Title:           title,
			Order:           order,
			InRoadmap:       inRoadmap,
			Complete:        progress.IsComplete(),
		})
	}

	if roadmap := m.Roadmap(); roadmap != nil {
		for _, sec := range roadmap.Sections {
			add(sec.ID, sec.Title, sec.Order, true)
		}
	}
	for _, id := range m.SectionIDs() {
		add(id, "", 0, false)
	}
	return out
}
