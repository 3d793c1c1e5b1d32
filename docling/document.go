package docling

import (
	"encoding/json"

	"github.com/paperext/paperext"
)

// Wire representation of a Docling export. Only the fields the extraction
// pipeline consumes are decoded.
type document struct {
	SchemaName string `json:"schema_name"`
	Name       string `json:"name"`
	Texts      []text `json:"texts"`
}

type text struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Level      int     `json:"level"`
	FontSize   float64 `json:"font_size"`
	PageNumber int     `json:"page_number"`
	Prov       []prov  `json:"prov"`
}

type prov struct {
	PageNo int `json:"page_no"`
}

// ParseDocument decodes a Docling JSON export into a domain document. Page
// numbers come from the first provenance entry when present, falling back to
// the item-level page number. Schema validation is left to the extraction
// layer so callers can inspect documents with unexpected tags.
func ParseDocument(data []byte) (*paperext.Document, error) {
	var wire document
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, paperext.Errorf(paperext.EINVALIDFORMAT, "cannot decode document: %s", err)
	}

	doc := &paperext.Document{
		Schema: wire.SchemaName,
		Name:   wire.Name,
		Blocks: make([]paperext.TextBlock, 0, len(wire.Texts)),
	}

	for _, t := range wire.Texts {
		page := t.PageNumber
		if len(t.Prov) > 0 && t.Prov[0].PageNo > 0 {
			page = t.Prov[0].PageNo
		}
		doc.Blocks = append(doc.Blocks, paperext.TextBlock{
			Text:     t.Text,
			Label:    t.Label,
			Level:    t.Level,
			PageNo:   page,
			FontSize: t.FontSize,
		})
	}

	return doc, nil
}
