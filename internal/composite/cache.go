package composite

import (
	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/histogram"
	"github.com/cwbudde/scatterhist/internal/sinc"
)

// IntensityCache holds the six pre-multiplied sub-curves the Debye
// transform of a partitioned histogram decomposes into:
//
//	I(q) = aa + 2*cw*aw + cw^2*ww - 2*cx*ax - 2*cw*cx*wx + cx^2*xx
//
// Building the six curves costs one O(Q*R*T^2) pass; recombining them
// for a new (cw, cx) pair costs O(Q). A parameter sweep over many
// (cw, cx) values therefore pays the expensive pass once.
type IntensityCache struct {
	version uint64
	aa, aw, ww, ax, wx, xx []float64
}

// valid reports whether the cache was built against the histogram
// version currently in effect.
func (c *IntensityCache) valid(version uint64) bool {
	return c != nil && c.aa != nil && c.version == version
}

// build computes the six sub-curves from scratch.
func build(p *histogram.Partitioned, table *formfactor.Table, sincTable *sinc.Table, version uint64) *IntensityCache {
	q := table.QAxis()
	c := &IntensityCache{
		version: version,
		aa:      make([]float64, q.N),
		aw:      make([]float64, q.N),
		ww:      make([]float64, q.N),
		ax:      make([]float64, q.N),
		wx:      make([]float64, q.N),
		xx:      make([]float64, q.N),
	}

	fw := table.Curve(formfactor.Water)
	fx := table.Curve(formfactor.ExcludedVolume)
	fTypes := make([][]float64, p.T)
	for t := 0; t < p.T; t++ {
		fTypes[t] = table.Curve(formfactor.Index(t))
	}

	for qi := 0; qi < q.N; qi++ {
		var aa, aw, ww, ax, wx, xx float64
		for ri := 0; ri < len(p.WW.Bins); ri++ {
			s := sincTable.Lookup(qi, ri)
			if s == 0 {
				continue
			}
			ww += s * p.WW.Bins[ri]
			xx += s * p.XX.Bins[ri]
			wx += s * p.WX.Bins[ri]
			for i := 0; i < p.T; i++ {
				aw += s * fTypes[i][qi] * p.AW[i].Bins[ri]
				ax += s * fTypes[i][qi] * p.AX[i].Bins[ri]
				for j := 0; j < p.T; j++ {
					aa += s * fTypes[i][qi] * fTypes[j][qi] * p.AA[i][j].Bins[ri]
				}
			}
		}
		c.aa[qi] = aa
		c.aw[qi] = fw[qi] * aw
		c.ww[qi] = fw[qi] * fw[qi] * ww
		c.ax[qi] = fx[qi] * ax
		c.wx[qi] = fw[qi] * fx[qi] * wx
		c.xx[qi] = fx[qi] * fx[qi] * xx
	}
	return c
}

// Evaluate recombines the six cached curves for a given water and
// excluded-volume scaling pair.
func (c *IntensityCache) Evaluate(cw, cx float64) []float64 {
	out := make([]float64, len(c.aa))
	for i := range out {
		out[i] = c.aa[i] + 2*cw*c.aw[i] + cw*cw*c.ww[i] -
			2*cx*c.ax[i] - 2*cw*cx*c.wx[i] + cx*cx*c.xx[i]
	}
	return out
}
