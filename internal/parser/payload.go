package parser

import (
	"encoding/json"
	"fmt"

	"github.com/dgallion1/planview/internal/product"
)

// metaKey is the reserved data.json entry describing the sample data.
const metaKey = "_meta"

// ParseSectionPayload decodes a section's data.json. The "_meta" entry is
// lifted out of the records into Payload.Meta when it carries both models
// and relationships; otherwise it is dropped from the records and Meta is
// nil.
func ParseSectionPayload(data []byte) (*product.Payload, error) {
	var records map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode data.json: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("decode data.json: expected an object")
	}

	payload := &product.Payload{Records: records}
	if raw, ok := records[metaKey]; ok {
		delete(records, metaKey)
		payload.Meta = decodeMeta(raw)
	}
	return payload, nil
}

func decodeMeta(raw any) *product.DataMeta {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	models, ok := obj["models"].(map[string]any)
	if !ok {
		return nil
	}
	relationships, ok := obj["relationships"].([]any)
	if !ok {
		return nil
	}

	meta := &product.DataMeta{
		Models:        make(map[string]string, len(models)),
		Relationships: make([]string, 0, len(relationships)),
	}
	for name, desc := range models {
		if s, ok := desc.(string); ok {
			meta.Models[name] = s
		}
	}
	for _, rel := range relationships {
		if s, ok := rel.(string); ok {
			meta.Relationships = append(meta.Relationships, s)
		}
	}
	return meta
}
