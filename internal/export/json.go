package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"
)

// Document is the JSON shape shared by `export --format json` and the HTTP API.
type Document struct {
	Runs  []model.Run         `json:"runs"`
	Delta *model.SummaryDelta `json:"delta,omitempty"`
}

// NewDocument builds the export document for a pipeline result.
func NewDocument(res *pipeline.Result) Document {
	doc := Document{Runs: res.Runs}
	if d, ok := res.Compare(); ok {
		doc.Delta = &d
	}
	return doc
}

// WriteJSON writes runs (and the B-A delta, when present) as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
