// Package histogram implements the one-dimensional distance histogram
// and its form-factor-partitioned variant. Neither type knows anything
// about form factors or the Debye transform - they are pure counters,
// accumulated by internal/manager and consumed by internal/composite.
package histogram

import "github.com/cwbudde/scatterhist/internal/axis"

// Histogram is a flat, non-negative bin array indexed by distance bin.
type Histogram struct {
	Bins []float64
	axis axis.RAxis
}

// New allocates an empty histogram sized for the given r-axis.
func New(a axis.RAxis) *Histogram {
	return &Histogram{Bins: make([]float64, a.Bins), axis: a}
}

// Axis returns the r-axis this histogram was built for.
func (h *Histogram) Axis() axis.RAxis {
	return h.axis
}

// Add accumulates weight into bin, saturating into the last bin when
// the axis is non-dynamic and bin overflows, or growing the backing
// slice when the axis is dynamic.
func (h *Histogram) Add(bin int32, weight float64) {
	if bin < 0 {
		bin = 0
	}
	n := int32(len(h.Bins))
	if bin >= n {
		if !h.axis.Dynamic {
			bin = n - 1
		} else {
			grown := make([]float64, bin+1)
			copy(grown, h.Bins)
			h.Bins = grown
		}
	}
	h.Bins[bin] += weight
}

// Sum returns the total weight recorded across all bins.
func (h *Histogram) Sum() float64 {
	var s float64
	for _, v := range h.Bins {
		s += v
	}
	return s
}

// AddFrom adds another histogram of the same length into h, used by the
// manager's per-worker reduction pass.
func (h *Histogram) AddFrom(other *Histogram) {
	if len(other.Bins) > len(h.Bins) {
		grown := make([]float64, len(other.Bins))
		copy(grown, h.Bins)
		h.Bins = grown
	}
	for i, v := range other.Bins {
		h.Bins[i] += v
	}
}

// Clone returns a deep copy, bins included, that shares no storage
// with h.
func (h *Histogram) Clone() *Histogram {
	out := &Histogram{Bins: make([]float64, len(h.Bins)), axis: h.axis}
	copy(out.Bins, h.Bins)
	return out
}
