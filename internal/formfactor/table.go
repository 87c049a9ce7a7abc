package formfactor

import "github.com/cwbudde/scatterhist/internal/axis"

// Table holds one scattering curve per Index (physical atom type plus
// the two reserved water/excluded-volume slots), each sampled across
// the same q-axis. It is built once per run and treated as read-only
// afterward; composite.Histogram looks curves up by Index when turning
// a distance histogram into I(q).
type Table struct {
	qaxis         axis.QAxis
	curves        map[Index][]float64
	gridSensitive bool
}

// NewTable builds a Table by evaluating the analytic curve for every
// physical AtomType and installing the water and excluded-volume
// curves supplied separately (water has no Cromer-Mann curve of its
// own in this model; callers pass the water oxygen curve directly).
func NewTable(q axis.QAxis, waterCurve []float64, exv ExvStrategy) *Table {
	t := &Table{qaxis: q, curves: make(map[Index][]float64, NumIndices()), gridSensitive: exv.GridSensitive()}
	for at := AtomType(0); int(at) < NumPhysicalTypes(); at++ {
		if per := exv.PerType(at, q); per != nil {
			curve := Evaluate(at, q)
			blended := make([]float64, len(curve))
			for i := range curve {
				blended[i] = curve[i] - per[i]
			}
			t.curves[Index(at)] = blended
		} else {
			t.curves[Index(at)] = Evaluate(at, q)
		}
	}
	t.curves[Water] = waterCurve
	t.curves[ExcludedVolume] = exv.Curve(q)
	return t
}

// Curve returns the scattering curve for idx, or nil if idx is out of
// range.
func (t *Table) Curve(idx Index) []float64 {
	return t.curves[idx]
}

// QAxis returns the axis every curve in the table is sampled on.
func (t *Table) QAxis() axis.QAxis {
	return t.qaxis
}

// GridSensitive reports whether this table's excluded-volume curve was
// sourced from a grid-based ExvStrategy, per ExvStrategy.GridSensitive.
func (t *Table) GridSensitive() bool {
	return t.gridSensitive
}
