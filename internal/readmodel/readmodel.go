// Package readmodel assembles the product and per-section snapshots the
// UI consumes. It adds no parsing of its own: every call re-derives its
// records from the artifact index, so a Model is safe for concurrent use.
package readmodel

import (
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/dgallion1/planview/internal/artifact"
	"github.com/dgallion1/planview/internal/parser"
	"github.com/dgallion1/planview/internal/product"
)

// Model answers read-model queries over one artifact index.
type Model struct {
	idx         *artifact.Index
	log         *slog.Logger
	assetPrefix string
}

// New creates a Model. assetPrefix is prepended to artifact paths to form
// displayable URLs, e.g. "/assets" -> "/assets/product-plan.zip".
func New(idx *artifact.Index, assetPrefix string, log *slog.Logger) *Model {
	return &Model{
		idx:         idx,
		log:         log,
		assetPrefix: strings.TrimSuffix(assetPrefix, "/"),
	}
}

// Index exposes the underlying artifact index.
func (m *Model) Index() *artifact.Index {
	return m.idx
}

// URL returns the displayable reference for an artifact path. Each segment
// is escaped so names like "a?b.png" or "100%.png" stay routable.
func (m *Model) URL(p string) string {
	segments := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return m.assetPrefix + "/" + strings.Join(segments, "/")
}

func (m *Model) HasProductOverview() bool { return m.idx.Has(artifact.OverviewPath) }

func (m *Model) HasProductRoadmap() bool { return m.idx.Has(artifact.RoadmapPath) }

func (m *Model) HasDataShape() bool { return m.idx.Has(artifact.DataShapePath) }

func (m *Model) HasDesignSystem() bool {
	return m.idx.Has(artifact.ColorsPath) || m.idx.Has(artifact.TypographyPath)
}

func (m *Model) HasShell() bool {
	return m.idx.Has(artifact.ShellSpecPath) || m.HasShellComponents()
}

func (m *Model) HasShellComponents() bool { return m.idx.Has(artifact.ShellComponentPath) }

func (m *Model) HasExportArchive() bool { return m.idx.Has(artifact.ExportArchivePath) }

// ExportArchiveURL returns the archive's URL, or "" when there is none.
func (m *Model) ExportArchiveURL() string {
	if !m.HasExportArchive() {
		return ""
	}
	return m.URL(artifact.ExportArchivePath)
}

// Overview parses product-overview.md.
func (m *Model) Overview() *product.Overview {
	md, ok := m.idx.Text(artifact.OverviewPath)
	if !ok {
		return nil
	}
	return parser.ParseOverview(md)
}

// Roadmap parses product-roadmap.md.
func (m *Model) Roadmap() *product.Roadmap {
	md, ok := m.idx.Text(artifact.RoadmapPath)
	if !ok {
		return nil
	}
	return parser.ParseRoadmap(md)
}

// DataShape parses data-shape.md.
func (m *Model) DataShape() *product.DataShape {
	md, ok := m.idx.Text(artifact.DataShapePath)
	if !ok {
		return nil
	}
	return parser.ParseDataShape(md)
}

// DesignSystem decodes the token files. It is nil when neither decodes.
func (m *Model) DesignSystem() *product.DesignSystem {
	var ds product.DesignSystem
	if data, ok := m.idx.Get(artifact.ColorsPath); ok {
		colors, err := parser.ParseColors(data)
		if err != nil {
			m.log.Warn("ignoring design tokens", "path", artifact.ColorsPath, "error", err)
		}
		ds.Colors = colors
	}
	if data, ok := m.idx.Get(artifact.TypographyPath); ok {
		typography, err := parser.ParseTypography(data)
		if err != nil {
			m.log.Warn("ignoring design tokens", "path", artifact.TypographyPath, "error", err)
		}
		ds.Typography = typography
	}
	if ds.Colors == nil && ds.Typography == nil {
		return nil
	}
	return &ds
}

// Shell returns the shell spec and component presence, or nil when
// neither exists.
func (m *Model) Shell() *product.ShellInfo {
	var spec *product.ShellSpec
	if md, ok := m.idx.Text(artifact.ShellSpecPath); ok {
		spec = parser.ParseShellSpec(md)
	}
	hasComponents := m.HasShellComponents()
	if spec == nil && !hasComponents {
		return nil
	}
	return &product.ShellInfo{Spec: spec, HasComponents: hasComponents}
}

// ProductData assembles the whole-product snapshot.
func (m *Model) ProductData() product.Data {
	return product.Data{
		Overview:     m.Overview(),
		Roadmap:      m.Roadmap(),
		DataShape:    m.DataShape(),
		DesignSystem: m.DesignSystem(),
		Shell:        m.Shell(),
	}
}

// Phases reports completion of each workflow step, in workflow order.
func (m *Model) Phases() []product.Phase {
	data := m.ProductData()

	hasSections := false
	for _, id := range m.SectionIDs() {
		if len(m.ScreenDesigns(id)) > 0 {
			hasSections = true
			break
		}
	}

	return []product.Phase{
		{ID: product.PhaseProduct, Label: "Product", Complete: data.Overview != nil && data.Roadmap != nil},
		{ID: product.PhaseDataShape, Label: "Data Shape", Complete: data.DataShape != nil},
		{ID: product.PhaseDesign, Label: "Design", Complete: data.DesignSystem != nil || data.Shell != nil},
		{ID: product.PhaseSections, Label: "Sections", Complete: hasSections},
		{ID: product.PhaseExport, Label: "Export", Complete: m.HasExportArchive()},
	}
}

func baseName(p, ext string) string {
	return strings.TrimSuffix(path.Base(p), ext)
}
