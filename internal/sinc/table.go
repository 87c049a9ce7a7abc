// Package sinc precomputes sin(q*r)/(q*r) lookup tables, the kernel of
// the Debye transform. Building a table is O(Q*R); the composite
// package calls it once per distinct (QAxis, RAxis) pair and reuses the
// result across every subsequent evaluation.
package sinc

import (
	"math"
	"sync"

	"github.com/cwbudde/scatterhist/internal/axis"
)

// Table holds sinc(q_i * r_j) for every q/r pair on a fixed grid, laid
// out as Q rows of R float64s so a row is contiguous for the inner loop
// of a Debye-transform accumulation.
type Table struct {
	q    axis.QAxis
	r    axis.RAxis
	rows [][]float64
}

// Lookup returns sinc(q_qi * r_ri).
func (t *Table) Lookup(qi, ri int) float64 {
	return t.rows[qi][ri]
}

// QAxis and RAxis report the axes this table was built for.
func (t *Table) QAxis() axis.QAxis { return t.q }
func (t *Table) RAxis() axis.RAxis { return t.r }

func build(q axis.QAxis, r axis.RAxis) *Table {
	t := &Table{q: q, r: r, rows: make([][]float64, q.N)}
	rw := r.Width()
	for qi := 0; qi < q.N; qi++ {
		qv := q.At(qi)
		row := make([]float64, r.Bins)
		for ri := 0; ri < r.Bins; ri++ {
			// Bin ri represents the distance the kernel's round-to-nearest-even
			// binning (internal/kernel.roundBin) maps to ri, i.e. values in
			// [(ri-0.5)*rw, (ri+0.5)*rw); its representative distance is
			// exactly ri*rw, not a floor-style bin start.
			rv := float64(ri) * rw
			x := qv * rv
			if x == 0 {
				row[ri] = 1
			} else {
				row[ri] = math.Sin(x) / x
			}
		}
		t.rows[qi] = row
	}
	return t
}

type cacheKey struct {
	q axis.QAxis
	r axis.RAxis
}

var cache sync.Map // cacheKey -> *Table

// New returns the sinc table for (q, r), building it on first use and
// sharing the same read-only table across every later caller with an
// identical axis pair. QAxis and RAxis are plain comparable structs, so
// they work directly as a map key.
func New(q axis.QAxis, r axis.RAxis) *Table {
	key := cacheKey{q: q, r: r}
	if v, ok := cache.Load(key); ok {
		return v.(*Table)
	}
	t := build(q, r)
	actual, _ := cache.LoadOrStore(key, t)
	return actual.(*Table)
}
