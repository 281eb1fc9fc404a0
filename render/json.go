package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/adpos/compare"
)

// JSONRenderer writes the comparison rows as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the comparison rows as a JSON array. An undefined
// ratio or p-value is null.
func (r *JSONRenderer) Render(rep Report) error {
	rows := rep.Rows
	if rows == nil {
		rows = []compare.Row{}
	}
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
