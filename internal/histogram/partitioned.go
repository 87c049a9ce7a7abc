package histogram

import "github.com/cwbudde/scatterhist/internal/axis"

// Partitioned is the distance histogram further split by form-factor
// type pair. Water and excluded-volume are reserved form-factor slots
// scaled by a single scalar apiece rather than appearing as ordinary
// rows/columns of the atom/atom matrix, so they are stored as their own
// vectors and scalars instead of widening AA to (T+2)x(T+2): this is
// the layout the Debye sum over h_aa, h_aw, h_ww, h_ax, h_wx, h_xx
// consumes, and the layout the cached intensity evaluator pre-multiplies,
// so the two agree on shape by construction.
type Partitioned struct {
	// AA[i][j] is the atom/atom histogram for form-factor types i, j.
	// Symmetric: AA[i][j] and AA[j][i] are accumulated independently by
	// the manager but must be bit-identical by construction (each
	// unordered pair is only ever evaluated once and mirrored).
	AA [][]*Histogram
	// AW[i] is the atom/water histogram for form-factor type i.
	AW []*Histogram
	// AX[i] is the atom/excluded-volume histogram for form-factor type i.
	AX []*Histogram
	WW *Histogram
	WX *Histogram
	XX *Histogram

	T    int
	axis axis.RAxis
}

// NewPartitioned allocates a zeroed partitioned histogram for t atom
// form-factor types over the given r-axis.
func NewPartitioned(t int, a axis.RAxis) *Partitioned {
	p := &Partitioned{T: t, axis: a}
	p.AA = make([][]*Histogram, t)
	for i := range p.AA {
		p.AA[i] = make([]*Histogram, t)
		for j := range p.AA[i] {
			p.AA[i][j] = New(a)
		}
	}
	p.AW = make([]*Histogram, t)
	p.AX = make([]*Histogram, t)
	for i := 0; i < t; i++ {
		p.AW[i] = New(a)
		p.AX[i] = New(a)
	}
	p.WW = New(a)
	p.WX = New(a)
	p.XX = New(a)
	return p
}

// AddFrom sums another partitioned histogram of identical shape into p,
// the reduction step the manager runs once per worker.
func (p *Partitioned) AddFrom(other *Partitioned) {
	for i := range p.AA {
		for j := range p.AA[i] {
			p.AA[i][j].AddFrom(other.AA[i][j])
		}
	}
	for i := range p.AW {
		p.AW[i].AddFrom(other.AW[i])
		p.AX[i].AddFrom(other.AX[i])
	}
	p.WW.AddFrom(other.WW)
	p.WX.AddFrom(other.WX)
	p.XX.AddFrom(other.XX)
}

// Clone returns a deep, independently-mutable copy of p, bins included.
func (p *Partitioned) Clone() *Partitioned {
	out := NewPartitioned(p.T, p.axis)
	out.AddFrom(p)
	return out
}

// CheckSymmetric verifies AA[i][j] == AA[j][i] for all i, j; intended
// for tests, not the hot path.
func (p *Partitioned) CheckSymmetric() bool {
	for i := range p.AA {
		for j := range p.AA[i] {
			a, b := p.AA[i][j].Bins, p.AA[j][i].Bins
			if len(a) != len(b) {
				return false
			}
			for k := range a {
				if a[k] != b[k] {
					return false
				}
			}
		}
	}
	return true
}

// Sum returns the total weight recorded across every component
// histogram, used by the pair-count invariant checked in tests.
func (p *Partitioned) Sum() float64 {
	var s float64
	for i := range p.AA {
		for j := range p.AA[i] {
			s += p.AA[i][j].Sum()
		}
	}
	for i := range p.AW {
		s += p.AW[i].Sum()
		s += p.AX[i].Sum()
	}
	s += p.WW.Sum() + p.WX.Sum() + p.XX.Sum()
	return s
}
