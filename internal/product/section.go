package product

// Spec is the parsed product/sections/<id>/spec.md.
type Spec struct {
	Title          string   `json:"title"`
	Overview       string   `json:"overview"`
	UserFlows      []string `json:"userFlows"`
	UIRequirements []string `json:"uiRequirements"`
	// UseShell reports whether screen designs render inside the app shell.
	UseShell bool `json:"useShell"`
}

// DataMeta is the reserved "_meta" entry of a data.json payload.
type DataMeta struct {
	Models        map[string]string `json:"models"`
	Relationships []string          `json:"relationships"`
}

// Payload is a decoded data.json split into sample records and metadata.
type Payload struct {
	Records map[string]any `json:"records"`
	Meta    *DataMeta      `json:"meta"`
}

// RecordCount counts the elements of every top-level array in the payload.
func (p *Payload) RecordCount() int {
	if p == nil {
		return 0
	}
	count := 0
	for _, v := range p.Records {
		if list, ok := v.([]any); ok {
			count += len(list)
		}
	}
	return count
}

// ScreenDesign is a discovered screen-design source module.
type ScreenDesign struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	ComponentName string `json:"componentName"`
}

// Screenshot is a discovered section image with a displayable URL.
type Screenshot struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// SectionData aggregates every artifact found for one section id.
type SectionData struct {
	SectionID     string         `json:"sectionId"`
	Spec          *string        `json:"spec"`
	SpecParsed    *Spec          `json:"specParsed"`
	Data          *Payload       `json:"data"`
	ScreenDesigns []ScreenDesign `json:"screenDesigns"`
	Screenshots   []Screenshot   `json:"screenshots"`
}

// SectionProgress summarizes which artifacts a section has.
type SectionProgress struct {
	SectionID         string `json:"sectionId"`
	HasSpec           bool   `json:"hasSpec"`
	HasData           bool   `json:"hasData"`
	ScreenDesignCount int    `json:"screenDesignCount"`
	ScreenshotCount   int    `json:"screenshotCount"`
}

// IsComplete is true once spec, data and at least one screen design exist.
func (p SectionProgress) IsComplete() bool {
	return p.HasSpec && p.HasData && p.ScreenDesignCount > 0
}

// PhaseID names one step of the planning workflow.
type PhaseID string

const (
	PhaseProduct   PhaseID = "product"
	PhaseDataShape PhaseID = "data-shape"
	PhaseDesign    PhaseID = "design"
	PhaseSections  PhaseID = "sections"
	PhaseExport    PhaseID = "export"
)

// Phase is a workflow step and whether its artifacts exist.
type Phase struct {
	ID       PhaseID `json:"id"`
	Label    string  `json:"label"`
	Complete bool    `json:"complete"`
}
