package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestCSVWriterWritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	if err := w.Write([]float64{0, 0.1}, []float64{1.0, 0.9}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 rows): %q", len(lines), buf.String())
	}
	if lines[0] != "q,intensity" {
		t.Errorf("header = %q, want %q", lines[0], "q,intensity")
	}
}

func TestCSVWriterRejectsLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	if err := w.Write([]float64{0, 1}, []float64{1.0}); err == nil {
		t.Fatal("expected error for mismatched q/I(q) lengths")
	}
}

func TestJSONWriterRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	q := []float64{0, 0.5, 1.0}
	iq := []float64{10, 5, 1}
	if err := w.Write(q, iq); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	var doc curveDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	for i := range q {
		if doc.Q[i] != q[i] || doc.Intensity[i] != iq[i] {
			t.Errorf("index %d: got (%v,%v), want (%v,%v)", i, doc.Q[i], doc.Intensity[i], q[i], iq[i])
		}
	}
}

func TestJSONWriterRejectsLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	if err := w.Write([]float64{0}, []float64{}); err == nil {
		t.Fatal("expected error for mismatched q/I(q) lengths")
	}
}
