package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter writes a q/I(q) curve as a single JSON object with
// parallel "q" and "intensity" arrays.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter wraps w for JSON output.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{out: w}
}

type curveDoc struct {
	Q         []float64 `json:"q"`
	Intensity []float64 `json:"intensity"`
}

// Write implements Writer.
func (j *JSONWriter) Write(q, iq []float64) error {
	if len(q) != len(iq) {
		return fmt.Errorf("report: q and I(q) length mismatch: %d vs %d", len(q), len(iq))
	}
	enc := json.NewEncoder(j.out)
	return enc.Encode(curveDoc{Q: q, Intensity: iq})
}
