// Package manager drives the pairwise kernel across a molecule's bodies
// and hydration shell, accumulating a form-factor-partitioned distance
// histogram and supporting incremental recomputation when only some
// bodies have moved.
package manager

import (
	"context"
	"sync"

	"github.com/cwbudde/scatterhist/internal/axis"
	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/histogram"
	"github.com/cwbudde/scatterhist/internal/kernel"
	"github.com/cwbudde/scatterhist/internal/molecule"
	"github.com/cwbudde/scatterhist/internal/point"
)

// Manager evaluates a Molecule's pairwise distances into a partitioned
// histogram, caching per-body-pair partial histograms so a later
// EvaluateIncremental call only redoes the work touching bodies marked
// dirty by MarkBodyDirty.
type Manager struct {
	qaxis    axis.QAxis
	raxis    axis.RAxis
	settings axis.Settings
	numTypes int

	bodies []*point.Buffer
	// bodySymmetry[i] holds body i's symmetry transforms when
	// settings.UseSymmetry is set; nil otherwise, in which case
	// symmetry-equivalent copies are simply not evaluated.
	bodySymmetry [][]molecule.Transform
	water        *point.Buffer

	// partial[i][j] for i<=j holds the body-i/body-j cross histogram
	// (i==j holds the body's self histogram); partial[i][j] for i>j is
	// left nil and mirrors partial[j][i] at read time.
	partial    [][]*histogram.Partitioned
	bodyWater  []*histogram.Partitioned
	waterWater *histogram.Partitioned

	dirty     []bool
	waterDone bool

	mu sync.Mutex
}

// New builds a Manager for m over the given axes and settings. It packs
// every body and the hydration shell into kernel-ready point buffers
// once; subsequent evaluation calls reuse those buffers. m may have
// zero bodies and no waters; Evaluate then returns an all-zero
// histogram rather than an error.
func New(m *molecule.Molecule, q axis.QAxis, r axis.RAxis, s axis.Settings) (*Manager, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	mgr := &Manager{
		qaxis:    q,
		raxis:    r,
		settings: s,
		numTypes: formfactor.NumPhysicalTypes(),
	}
	mgr.bodies = make([]*point.Buffer, len(m.Bodies))
	mgr.bodySymmetry = make([][]molecule.Transform, len(m.Bodies))
	for i, b := range m.Bodies {
		mgr.bodies[i] = packBody(b)
		if s.UseSymmetry {
			mgr.bodySymmetry[i] = b.Symmetry
		}
	}
	mgr.water = packWaters(m.Waters)

	k := len(mgr.bodies)
	mgr.partial = make([][]*histogram.Partitioned, k)
	for i := range mgr.partial {
		mgr.partial[i] = make([]*histogram.Partitioned, k)
	}
	mgr.bodyWater = make([]*histogram.Partitioned, k)
	mgr.dirty = make([]bool, k)
	for i := range mgr.dirty {
		mgr.dirty[i] = true
	}
	return mgr, nil
}

// MarkBodyDirty flags body id for recomputation on the next
// EvaluateIncremental call.
func (m *Manager) MarkBodyDirty(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 0 || id >= len(m.dirty) {
		return
	}
	m.dirty[id] = true
}

func (m *Manager) cfg() kernel.Config {
	return kernel.Config{
		Mode:            kernel.PairFormFactor,
		FormFactorCount: int32(m.numTypes),
		InvBinWidth:     float32(m.raxis.InvWidth()),
	}
}

// Evaluate marks every body dirty and fully recomputes the histogram.
func (m *Manager) Evaluate(ctx context.Context) (*histogram.Partitioned, error) {
	m.mu.Lock()
	for i := range m.dirty {
		m.dirty[i] = true
	}
	m.waterDone = false
	m.mu.Unlock()
	return m.EvaluateIncremental(ctx)
}

// EvaluateIncremental recomputes only the rows/columns touched by a
// body marked dirty since the last call, reusing every other cached
// partial histogram, then reduces everything into one combined
// partitioned histogram.
func (m *Manager) EvaluateIncremental(ctx context.Context) (*histogram.Partitioned, error) {
	m.mu.Lock()
	k := len(m.bodies)
	dirtyIDs := make([]int, 0, k)
	for i, d := range m.dirty {
		if d {
			dirtyIDs = append(dirtyIDs, i)
		}
	}
	needWater := !m.waterDone
	m.mu.Unlock()

	for _, i := range dirtyIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := 0; j < k; j++ {
			var h *histogram.Partitioned
			var err error
			if i == j {
				h, err = m.selfBody(ctx, i)
			} else if i < j {
				h, err = m.crossBodies(ctx, i, j)
			} else {
				continue // filled when the (j, i) pair is processed
			}
			if err != nil {
				return nil, err
			}
			m.mu.Lock()
			m.partial[i][j] = h
			m.mu.Unlock()
		}
		bw, err := m.crossBodyWater(ctx, i)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.bodyWater[i] = bw
		m.dirty[i] = false
		m.mu.Unlock()
	}

	if needWater {
		ww, err := m.selfWater(ctx)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.waterWater = ww
		m.waterDone = true
		m.mu.Unlock()
	}

	return m.reduce(), nil
}

// reduce sums every cached partial histogram into one combined
// partitioned histogram and fills in the excluded-volume marginals,
// since excluded volume is modeled as occupying the same positions as
// the protein atoms rather than as an independently evaluated point
// set (see DESIGN.md).
func (m *Manager) reduce() *histogram.Partitioned {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := histogram.NewPartitioned(m.numTypes, m.raxis)
	k := len(m.bodies)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			if m.partial[i][j] != nil {
				out.AddFrom(m.partial[i][j])
			}
		}
		if m.bodyWater[i] != nil {
			out.AddFrom(m.bodyWater[i])
		}
	}
	if m.waterWater != nil {
		out.AddFrom(m.waterWater)
	}
	m.addSelfTerms(out)
	finalizeExv(out)
	return out
}

// addSelfTerms adds the Debye sum's diagonal (i==i) contribution:
// every scatterer pairs with itself at r=0, contributing its
// form-factor squared once - not mirrored twice like an i!=j cross
// pair - so it is tracked as its own pass over the packed buffers
// rather than folded into crossEvaluate/selfEvaluate's i<j loops. A
// symmetry-evaluated body contributes once per copy, since each copy
// is a distinct physical atom.
func (m *Manager) addSelfTerms(out *histogram.Partitioned) {
	for i, buf := range m.bodies {
		copies := float64(1 + len(m.bodySymmetry[i]))
		for k := 0; k < buf.Len(); k++ {
			ff := point.DecodeFFIndex(buf.W[k])
			out.AA[ff][ff].Add(0, copies)
		}
	}
	for k := 0; k < m.water.Len(); k++ {
		out.WW.Add(0, 1)
	}
}

// finalizeExv fills AX, WX, and XX from the AA/AW marginals: every
// excluded-volume "scatterer" sits at an atom's position, so its
// pairwise distance distribution against anything else is exactly that
// atom's AA/AW row summed across type, not a separately evaluated
// geometry.
func finalizeExv(p *histogram.Partitioned) {
	for i := range p.AX {
		for j := range p.AA[i] {
			p.AX[i].AddFrom(p.AA[i][j])
		}
		p.XX.AddFrom(p.AX[i])
		p.WX.AddFrom(p.AW[i])
	}
}
