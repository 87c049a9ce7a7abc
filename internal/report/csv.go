package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVWriter writes q,I(q) pairs as two-column CSV with a header row.
type CSVWriter struct {
	out *csv.Writer
}

// NewCSVWriter wraps w for CSV output.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{out: csv.NewWriter(w)}
}

// Write implements Writer.
func (c *CSVWriter) Write(q, iq []float64) error {
	if len(q) != len(iq) {
		return fmt.Errorf("report: q and I(q) length mismatch: %d vs %d", len(q), len(iq))
	}
	if err := c.out.Write([]string{"q", "intensity"}); err != nil {
		return err
	}
	for i := range q {
		row := []string{fmt.Sprintf("%g", q[i]), fmt.Sprintf("%g", iq[i])}
		if err := c.out.Write(row); err != nil {
			return err
		}
	}
	c.out.Flush()
	return c.out.Error()
}
