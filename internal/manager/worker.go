package manager

import (
	"context"
	"runtime"
	"sync"

	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/histogram"
	"github.com/cwbudde/scatterhist/internal/kernel"
	"github.com/cwbudde/scatterhist/internal/molecule"
	"github.com/cwbudde/scatterhist/internal/point"
)

// workerCount returns the goroutine count for a chunked evaluation:
// settings.ThreadCount when positive, else runtime.GOMAXPROCS(0).
func (m *Manager) workerCount() int {
	if m.settings.ThreadCount > 0 {
		return m.settings.ThreadCount
	}
	return runtime.GOMAXPROCS(0)
}

// accumulate routes one (ffA, ffB, bin, weight) triple into the right
// sub-histogram of h. Atom/atom pairs are mirrored into both AA[a][b]
// and AA[b][a] so the matrix is symmetric by construction (and a
// same-type pair naturally lands twice in one cell); atom/water pairs
// go into the one-directional AW row; water/water pairs are mirrored
// into WW the same way same-type atom pairs are, for the same reason.
func accumulate(h *histogram.Partitioned, ffA, ffB int32, bin int32, weight float64) {
	water := int32(formfactor.Water)
	switch {
	case ffA == water && ffB == water:
		h.WW.Add(bin, weight)
		h.WW.Add(bin, weight)
	case ffA == water:
		h.AW[ffB].Add(bin, weight)
	case ffB == water:
		h.AW[ffA].Add(bin, weight)
	default:
		h.AA[ffA][ffB].Add(bin, weight)
		h.AA[ffB][ffA].Add(bin, weight)
	}
}

// crossEvaluate computes every (a, b) pair with a in anchors and b in
// others, chunking the anchor index range across goroutines and
// reducing their private histograms in worker-index order.
func (m *Manager) crossEvaluate(ctx context.Context, anchors, others *point.Buffer) (*histogram.Partitioned, error) {
	cfg := m.cfg()
	n := anchors.Len()
	if n == 0 || others.Len() == 0 {
		return histogram.NewPartitioned(m.numTypes, m.raxis), nil
	}

	workers := m.workerCount()
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	partials := make([]*histogram.Partitioned, workers)
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[w] = err
				return
			}
			local := histogram.NewPartitioned(m.numTypes, m.raxis)
			for i := start; i < end; i++ {
				anchor := anchors.At(i)
				ffA := point.DecodeFFIndex(anchor.W)
				evalAgainstAll(local, anchor, ffA, others, cfg)
			}
			partials[w] = local
		}(w, start, end)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := histogram.NewPartitioned(m.numTypes, m.raxis)
	for _, p := range partials {
		if p != nil {
			out.AddFrom(p)
		}
	}
	return out, nil
}

// selfEvaluate computes every (i, j) pair with i < j within buf.
func (m *Manager) selfEvaluate(ctx context.Context, buf *point.Buffer) (*histogram.Partitioned, error) {
	cfg := m.cfg()
	n := buf.Len()
	if n < 2 {
		return histogram.NewPartitioned(m.numTypes, m.raxis), nil
	}

	workers := m.workerCount()
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	partials := make([]*histogram.Partitioned, workers)
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[w] = err
				return
			}
			local := histogram.NewPartitioned(m.numTypes, m.raxis)
			for i := start; i < end; i++ {
				anchor := buf.At(i)
				ffA := point.DecodeFFIndex(anchor.W)
				evalAgainstTail(local, anchor, ffA, buf, i+1, cfg)
			}
			partials[w] = local
		}(w, start, end)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := histogram.NewPartitioned(m.numTypes, m.raxis)
	for _, p := range partials {
		if p != nil {
			out.AddFrom(p)
		}
	}
	return out, nil
}

// evalAgainstAll evaluates anchor against every point in others,
// batching eight-at-a-time and then four-at-a-time through the kernel
// before falling back to single evaluation for the remainder.
func evalAgainstAll(local *histogram.Partitioned, anchor point.Point, ffA int32, others *point.Buffer, cfg kernel.Config) {
	n := others.Len()
	i := 0
	for ; i+8 <= n; i += 8 {
		var batch [8]point.Point
		for k := 0; k < 8; k++ {
			batch[k] = others.At(i + k)
		}
		r := kernel.EvalOctoRounded(anchor, batch, cfg)
		for k := 0; k < 8; k++ {
			ffB := point.DecodeFFIndex(batch[k].W)
			accumulate(local, ffA, ffB, r.Bins[k], float64(r.Weights[k]))
		}
	}
	for ; i+4 <= n; i += 4 {
		var batch [4]point.Point
		for k := 0; k < 4; k++ {
			batch[k] = others.At(i + k)
		}
		r := kernel.EvalQuadRounded(anchor, batch, cfg)
		for k := 0; k < 4; k++ {
			ffB := point.DecodeFFIndex(batch[k].W)
			accumulate(local, ffA, ffB, r.Bins[k], float64(r.Weights[k]))
		}
	}
	for ; i < n; i++ {
		other := others.At(i)
		r := kernel.EvalOneRounded(anchor, other, cfg)
		ffB := point.DecodeFFIndex(other.W)
		accumulate(local, ffA, ffB, r.Bin, float64(r.Weight))
	}
}

// evalAgainstTail is evalAgainstAll restricted to indices [from, buf.Len()),
// the shape a self-evaluation's i<j loop needs.
func evalAgainstTail(local *histogram.Partitioned, anchor point.Point, ffA int32, buf *point.Buffer, from int, cfg kernel.Config) {
	n := buf.Len()
	i := from
	for ; i+8 <= n; i += 8 {
		var batch [8]point.Point
		for k := 0; k < 8; k++ {
			batch[k] = buf.At(i + k)
		}
		r := kernel.EvalOctoRounded(anchor, batch, cfg)
		for k := 0; k < 8; k++ {
			ffB := point.DecodeFFIndex(batch[k].W)
			accumulate(local, ffA, ffB, r.Bins[k], float64(r.Weights[k]))
		}
	}
	for ; i+4 <= n; i += 4 {
		var batch [4]point.Point
		for k := 0; k < 4; k++ {
			batch[k] = buf.At(i + k)
		}
		r := kernel.EvalQuadRounded(anchor, batch, cfg)
		for k := 0; k < 4; k++ {
			ffB := point.DecodeFFIndex(batch[k].W)
			accumulate(local, ffA, ffB, r.Bins[k], float64(r.Weights[k]))
		}
	}
	for ; i < n; i++ {
		other := buf.At(i)
		r := kernel.EvalOneRounded(anchor, other, cfg)
		ffB := point.DecodeFFIndex(other.W)
		accumulate(local, ffA, ffB, r.Bin, float64(r.Weight))
	}
}

func (m *Manager) selfBody(ctx context.Context, i int) (*histogram.Partitioned, error) {
	base, err := m.selfEvaluate(ctx, m.bodies[i])
	if err != nil {
		return nil, err
	}
	transforms := m.bodySymmetry[i]
	if len(transforms) == 0 {
		return base, nil
	}
	return m.symmetryEvaluate(ctx, m.bodies[i], transforms, base)
}

// symmetryEvaluate combines a body's K=1+len(transforms) symmetry
// copies combinatorially rather than materializing all K of them into
// one buffer. A rigid transform preserves distance, so every copy's
// internal self-pairs sum to exactly baseSelf regardless of which
// transform generated it - baseSelf is reused K times instead of
// recomputed per copy. What genuinely differs copy-to-copy is the
// cross term between two distinct copies, so those are the only pairs
// actually evaluated: one small two-buffer crossEvaluate per
// (copy i, copy j) pair, materializing at most two transformed copies
// at a time instead of all K at once.
func (m *Manager) symmetryEvaluate(ctx context.Context, base *point.Buffer, transforms []molecule.Transform, baseSelf *histogram.Partitioned) (*histogram.Partitioned, error) {
	copies := make([]*point.Buffer, 1+len(transforms))
	copies[0] = base
	for i, tr := range transforms {
		copies[i+1] = transformBuffer(base, tr)
	}

	out := histogram.NewPartitioned(m.numTypes, m.raxis)
	for range copies {
		out.AddFrom(baseSelf)
	}
	for i := 0; i < len(copies); i++ {
		for j := i + 1; j < len(copies); j++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			cross, err := m.crossEvaluate(ctx, copies[i], copies[j])
			if err != nil {
				return nil, err
			}
			out.AddFrom(cross)
		}
	}
	return out, nil
}

func (m *Manager) crossBodies(ctx context.Context, i, j int) (*histogram.Partitioned, error) {
	return m.crossEvaluate(ctx, m.bodies[i], m.bodies[j])
}

func (m *Manager) crossBodyWater(ctx context.Context, i int) (*histogram.Partitioned, error) {
	return m.crossEvaluate(ctx, m.bodies[i], m.water)
}

func (m *Manager) selfWater(ctx context.Context) (*histogram.Partitioned, error) {
	return m.selfEvaluate(ctx, m.water)
}
