package composite

import (
	"math"
	"testing"

	"github.com/cwbudde/scatterhist/internal/axis"
	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/histogram"
	"github.com/cwbudde/scatterhist/internal/sinc"
)

func testTableAndHistogram() (*histogram.Partitioned, *formfactor.Table) {
	q := axis.QAxis{Min: 0, Max: 0.5, N: 10}
	r := axis.RAxis{Max: 10, Bins: 10}
	p := histogram.NewPartitioned(formfactor.NumPhysicalTypes(), r)
	p.AA[0][0].Add(3, 1.0)
	p.AW[0].Add(2, 0.5)
	p.WW.Add(1, 0.25)

	waterCurve := formfactor.Evaluate(formfactor.OxygenHydroxyl, q)
	table := formfactor.NewTable(q, waterCurve, formfactor.AverageExv{})
	return p, table
}

func TestValidateAcceptsMatchingTableAndHistogram(t *testing.T) {
	p, table := testTableAndHistogram()
	h := New(p, table)
	if err := h.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsMissingReservedCurves(t *testing.T) {
	p, _ := testTableAndHistogram()
	q := axis.QAxis{Min: 0, Max: 0.5, N: 10}
	// A table built with a nil water curve and an exv strategy whose
	// Curve is nil has no water or excluded-volume column.
	badTable := &emptyTable{q: q}
	h := New(p, badTable.asFormfactorTable())
	if err := h.Validate(); err == nil {
		t.Fatal("expected AxisMismatchError for an incomplete table")
	}
}

// emptyTable builds a formfactor.Table whose water and excluded-volume
// curves are nil (the physical-type curves are still installed by
// NewTable), to exercise Validate's missing-curve path without
// fabricating a second implementation of formfactor.Table.
type emptyTable struct {
	q axis.QAxis
}

func (e *emptyTable) asFormfactorTable() *formfactor.Table {
	return formfactor.NewTable(e.q, nil, nilExv{})
}

type nilExv struct{}

func (nilExv) Curve(axis.QAxis) []float64                       { return nil }
func (nilExv) PerType(formfactor.AtomType, axis.QAxis) []float64 { return nil }
func (nilExv) GridSensitive() bool                               { return false }

func TestApplyScalingRejectsNegativeValues(t *testing.T) {
	p, table := testTableAndHistogram()
	h := New(p, table)
	if err := h.ApplyWaterScaling(-1); err == nil {
		t.Error("expected error for negative water scaling")
	}
	if err := h.ApplyExvScaling(-1); err == nil {
		t.Error("expected error for negative excluded-volume scaling")
	}
}

func TestDebyeTransformAtDefaultScalingMatchesAAPlusAWPlusWW(t *testing.T) {
	p, table := testTableAndHistogram()
	h := New(p, table)
	iq := h.DebyeTransform()

	aa := h.ProfileAA()
	aw := h.ProfileAW()
	ww := h.ProfileWW()
	for i := range iq {
		want := aa[i] + 2*aw[i] + ww[i]
		if diff := iq[i] - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("q[%d]: I(q)=%v, want aa+2*aw+ww=%v", i, iq[i], want)
		}
	}
}

func TestMarkDirtyForcesCacheRebuild(t *testing.T) {
	p, table := testTableAndHistogram()
	h := New(p, table)
	first := h.DebyeTransform()

	p.AA[0][0].Add(3, 10.0)
	h.MarkDirty()
	second := h.DebyeTransform()

	if first[0] == second[0] && second[0] == 0 {
		return
	}
	allEqual := true
	for i := range first {
		if first[i] != second[i] {
			allEqual = false
			break
		}
	}
	if allEqual {
		t.Error("DebyeTransform() unchanged after MarkDirty and histogram mutation")
	}
}

func TestCacheReusedWithoutMarkDirty(t *testing.T) {
	p, table := testTableAndHistogram()
	h := New(p, table)
	first := h.DebyeTransform()
	p.AA[0][0].Add(3, 100.0)
	second := h.DebyeTransform()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("q[%d]: cache was rebuilt without MarkDirty: %v != %v", i, first[i], second[i])
		}
	}
}

// directDebyeTransform recomputes I(q) straight from the partitioned
// histogram and form-factor table, bypassing IntensityCache entirely,
// so it can be checked against the cached path for equivalence.
func directDebyeTransform(p *histogram.Partitioned, table *formfactor.Table, cw, cx float64) []float64 {
	q := table.QAxis()
	raxis := p.WW.Axis()
	sincTable := sinc.New(q, raxis)

	fw := table.Curve(formfactor.Water)
	fx := table.Curve(formfactor.ExcludedVolume)
	fTypes := make([][]float64, p.T)
	for t := 0; t < p.T; t++ {
		fTypes[t] = table.Curve(formfactor.Index(t))
	}

	out := make([]float64, q.N)
	for qi := 0; qi < q.N; qi++ {
		var sum float64
		for ri := 0; ri < len(p.WW.Bins); ri++ {
			s := sincTable.Lookup(qi, ri)
			if s == 0 {
				continue
			}
			sum += s * cw * cw * fw[qi] * fw[qi] * p.WW.Bins[ri]
			sum += s * cx * cx * fx[qi] * fx[qi] * p.XX.Bins[ri]
			sum -= 2 * s * cw * cx * fw[qi] * fx[qi] * p.WX.Bins[ri]
			for i := 0; i < p.T; i++ {
				sum += 2 * s * cw * fTypes[i][qi] * fw[qi] * p.AW[i].Bins[ri]
				sum -= 2 * s * cx * fTypes[i][qi] * fx[qi] * p.AX[i].Bins[ri]
				for j := 0; j < p.T; j++ {
					sum += s * fTypes[i][qi] * fTypes[j][qi] * p.AA[i][j].Bins[ri]
				}
			}
		}
		out[qi] = sum
	}
	return out
}

func TestCachedEvaluationMatchesDirectDebyeTransform(t *testing.T) {
	p, table := testTableAndHistogram()
	h := New(p, table)

	for _, pair := range [][2]float64{{1, 0}, {0.5, 0.2}, {2.0, 1.5}, {0, 0}} {
		cw, cx := pair[0], pair[1]
		if err := h.ApplyWaterScaling(cw); err != nil {
			t.Fatalf("ApplyWaterScaling(%v): %v", cw, err)
		}
		if err := h.ApplyExvScaling(cx); err != nil {
			t.Fatalf("ApplyExvScaling(%v): %v", cx, err)
		}
		cached := h.DebyeTransform()
		direct := directDebyeTransform(p, table, cw, cx)
		for i := range cached {
			diff := cached[i] - direct[i]
			if diff < 0 {
				diff = -diff
			}
			tol := 1e-5 * (1 + absf(direct[i]))
			if diff > tol {
				t.Errorf("cw=%v cx=%v q[%d]: cached=%v direct=%v, diff=%v exceeds tolerance %v", cw, cx, i, cached[i], direct[i], diff, tol)
			}
		}
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TestIntensityIsDegreeTwoPolynomialInScalingFactors checks the
// documented closed form I(q; cw, cx) = aa + 2*cw*aw + cw^2*ww -
// 2*cx*ax - 2*cw*cx*wx + cx^2*xx against DebyeTransform's actual
// output for several (cw, cx) pairs, for a non-grid excluded-volume
// variant where the raw profiles don't themselves depend on cx.
func TestIntensityIsDegreeTwoPolynomialInScalingFactors(t *testing.T) {
	p, table := testTableAndHistogram()
	h := New(p, table)

	aa := h.ProfileAA()
	aw := h.ProfileAW()
	ww := h.ProfileWW()
	ax := h.ProfileAX()
	wx := h.ProfileWX()
	xx := h.ProfileXX()

	for _, pair := range [][2]float64{{1, 0}, {0.3, 0.7}, {1.5, 0.4}, {0, 1.2}} {
		cw, cx := pair[0], pair[1]
		if err := h.ApplyWaterScaling(cw); err != nil {
			t.Fatalf("ApplyWaterScaling(%v): %v", cw, err)
		}
		if err := h.ApplyExvScaling(cx); err != nil {
			t.Fatalf("ApplyExvScaling(%v): %v", cx, err)
		}
		iq := h.DebyeTransform()
		for i := range iq {
			want := aa[i] + 2*cw*aw[i] + cw*cw*ww[i] - 2*cx*ax[i] - 2*cw*cx*wx[i] + cx*cx*xx[i]
			if diff := iq[i] - want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cw=%v cx=%v q[%d]: I(q)=%v, want polynomial form %v", cw, cx, i, iq[i], want)
			}
		}
	}
}

func TestApplyExvScalingForcesCacheRebuildWhenGridSensitive(t *testing.T) {
	q := axis.QAxis{Min: 0, Max: 0.5, N: 10}
	r := axis.RAxis{Max: 10, Bins: 10}
	p := histogram.NewPartitioned(formfactor.NumPhysicalTypes(), r)
	p.AA[0][0].Add(3, 1.0)

	waterCurve := formfactor.Evaluate(formfactor.OxygenHydroxyl, q)
	table := formfactor.NewTable(q, waterCurve, gridSensitiveExv{})
	h := New(p, table)

	first := h.DebyeTransform()
	// Mutate the histogram directly, bypassing MarkDirty: only the
	// grid-sensitive ApplyExvScaling path should notice.
	p.AA[0][0].Add(3, 10.0)
	if err := h.ApplyExvScaling(0.5); err != nil {
		t.Fatalf("ApplyExvScaling: %v", err)
	}
	second := h.DebyeTransform()

	allEqual := true
	for i := range first {
		if first[i] != second[i] {
			allEqual = false
			break
		}
	}
	if allEqual {
		t.Error("ApplyExvScaling on a grid-sensitive table did not force a cache rebuild")
	}
}

func TestApplyScalingRejectsNaN(t *testing.T) {
	p, table := testTableAndHistogram()
	h := New(p, table)
	if err := h.ApplyWaterScaling(math.NaN()); err == nil {
		t.Error("expected error for NaN water scaling")
	}
	if err := h.ApplyExvScaling(math.NaN()); err == nil {
		t.Error("expected error for NaN excluded-volume scaling")
	}
}

// gridSensitiveExv is a minimal ExvStrategy whose GridSensitive is
// true, to exercise the ApplyExvScaling cache-invalidation path
// without depending on internal/hydrate's actual voxel grid.
type gridSensitiveExv struct{}

func (gridSensitiveExv) Curve(q axis.QAxis) []float64                     { return make([]float64, q.N) }
func (gridSensitiveExv) PerType(formfactor.AtomType, axis.QAxis) []float64 { return nil }
func (gridSensitiveExv) GridSensitive() bool                               { return true }
