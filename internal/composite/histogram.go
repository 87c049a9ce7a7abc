// Package composite turns a form-factor-partitioned distance histogram
// into a scattering intensity curve via the Debye transform, applying
// water-contrast and excluded-volume scaling factors and caching the
// expensive part of the recombination across repeated evaluations.
package composite

import (
	"math"

	"github.com/cwbudde/scatterhist/internal/axis"
	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/histogram"
	"github.com/cwbudde/scatterhist/internal/sinc"
)

// Histogram wraps a partitioned distance histogram and the form-factor
// table needed to turn it into I(q), along with the current water and
// excluded-volume scaling factors.
type Histogram struct {
	partitioned *histogram.Partitioned
	table       *formfactor.Table
	qaxis       axis.QAxis

	cw, cx  float64
	version uint64
	cache   *IntensityCache
}

// New builds a composite histogram from a partitioned distance
// histogram and a form-factor table built on the same q-axis.
func New(p *histogram.Partitioned, table *formfactor.Table) *Histogram {
	return &Histogram{
		partitioned: p,
		table:       table,
		qaxis:       table.QAxis(),
		cw:          1,
		cx:          0,
	}
}

// Validate checks that the partitioned histogram and form-factor table
// this composite histogram was built from actually agree on type
// count, returning AxisMismatchError if not.
func (h *Histogram) Validate() error {
	if h.table.Curve(formfactor.Water) == nil {
		return &AxisMismatchError{Reason: "form-factor table has no water curve"}
	}
	if h.table.Curve(formfactor.ExcludedVolume) == nil {
		return &AxisMismatchError{Reason: "form-factor table has no excluded-volume curve"}
	}
	for t := 0; t < h.partitioned.T; t++ {
		if h.table.Curve(formfactor.Index(t)) == nil {
			return &AxisMismatchError{Reason: "form-factor table is missing a curve for a physical atom type present in the histogram"}
		}
	}
	return nil
}

// MarkDirty invalidates the intensity cache, forcing the next
// DebyeTransform or Profile* call to rebuild it from the current
// partitioned histogram.
func (h *Histogram) MarkDirty() {
	h.version++
}

// ApplyWaterScaling sets c_w, the hydration-shell contrast scaling
// factor. A negative or NaN value is rejected since neither has a
// physical meaning for a contrast multiplier on electron density.
func (h *Histogram) ApplyWaterScaling(cw float64) error {
	if math.IsNaN(cw) || cw < 0 {
		return &InvalidScalingError{Field: "water", Value: cw}
	}
	h.cw = cw
	return nil
}

// ApplyExvScaling sets c_x, the excluded-volume scaling factor. For a
// grid-sensitive excluded-volume table (Table.GridSensitive), every
// call here marks the cache dirty, so the next evaluation rebuilds
// ax/wx/xx from scratch instead of taking the cheap cw/cx-only
// recombination non-grid variants get. The rebuild reads the same
// table, whose excluded-volume curves do not themselves change with c_x.
func (h *Histogram) ApplyExvScaling(cx float64) error {
	if math.IsNaN(cx) || cx < 0 {
		return &InvalidScalingError{Field: "excluded-volume", Value: cx}
	}
	h.cx = cx
	if h.table.GridSensitive() {
		h.MarkDirty()
	}
	return nil
}

func (h *Histogram) ensureCache() *IntensityCache {
	if h.cache.valid(h.version) {
		return h.cache
	}
	raxis := h.partitioned.WW.Axis()
	sincTable := sinc.New(h.qaxis, raxis)
	h.cache = build(h.partitioned, h.table, sincTable, h.version)
	return h.cache
}

// DebyeTransform returns I(q) for the currently applied cw/cx scaling.
func (h *Histogram) DebyeTransform() []float64 {
	return h.ensureCache().Evaluate(h.cw, h.cx)
}

// ProfileAA returns the atom/atom-only contribution to I(q), ignoring
// water and excluded-volume scaling - useful for diagnosing how much
// of the signal comes from the bare protein.
func (h *Histogram) ProfileAA() []float64 { return append([]float64(nil), h.ensureCache().aa...) }

// ProfileAW returns the raw (unscaled by cw) atom/water cross curve.
func (h *Histogram) ProfileAW() []float64 { return append([]float64(nil), h.ensureCache().aw...) }

// ProfileWW returns the raw (unscaled by cw^2) water/water curve.
func (h *Histogram) ProfileWW() []float64 { return append([]float64(nil), h.ensureCache().ww...) }

// ProfileAX returns the raw (unscaled by cx) atom/excluded-volume curve.
func (h *Histogram) ProfileAX() []float64 { return append([]float64(nil), h.ensureCache().ax...) }

// ProfileWX returns the raw (unscaled by cw*cx) water/excluded-volume curve.
func (h *Histogram) ProfileWX() []float64 { return append([]float64(nil), h.ensureCache().wx...) }

// ProfileXX returns the raw (unscaled by cx^2) excluded-volume/excluded-volume curve.
func (h *Histogram) ProfileXX() []float64 { return append([]float64(nil), h.ensureCache().xx...) }

// QAxis returns the q-axis I(q) is sampled on.
func (h *Histogram) QAxis() axis.QAxis { return h.qaxis }
