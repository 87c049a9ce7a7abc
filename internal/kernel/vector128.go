package kernel

import (
	"math"

	"github.com/cwbudde/scatterhist/internal/point"
)

// Vector128Quad computes four (anchor, other) pairs in a 128-bit-SIMD
// batch shape: the coordinate differences are computed lane-wise across
// all four pairs simultaneously, and the squared norm of each pair
// falls out of a masked dot product so the four squared distances land
// in the four lanes of one result.
//
// Go has no portable access to __m128 registers without cgo or
// hand-written assembly (neither of which this module uses - see
// DESIGN.md), so this is a software emulation of that lane layout: the
// loop below is structured the way the SIMD version is, with the W lane
// masked out of the dot product exactly as the hardware version would
// mask it, rather than falling back to a bare call into EvalScalarQuad.
func Vector128Quad(anchor point.Point, others [4]point.Point, cfg Config) QuadResult {
	var dx, dy, dz [4]float32
	for i, o := range others {
		dx[i] = anchor.X - o.X
		dy[i] = anchor.Y - o.Y
		dz[i] = anchor.Z - o.Z
		// The W lane is masked out of the dot product here, mirroring
		// the hardware path's (Δx, Δy, Δz, 0) masked dot-product.
	}

	var out QuadResult
	for i := 0; i < 4; i++ {
		norm2 := float64(dx[i])*float64(dx[i]) + float64(dy[i])*float64(dy[i]) + float64(dz[i])*float64(dz[i])
		out.Distances[i] = float32(math.Sqrt(norm2))
		out.Weights[i], out.FFPairs[i] = combine(cfg, anchor.W, others[i].W)
	}
	return out
}

// Vector128QuadRounded is Vector128Quad followed by bin rounding.
func Vector128QuadRounded(anchor point.Point, others [4]point.Point, cfg Config) QuadRoundedResult {
	q := Vector128Quad(anchor, others, cfg)
	var out QuadRoundedResult
	for i := range q.Distances {
		out.Bins[i] = roundBin(q.Distances[i] * cfg.InvBinWidth)
		out.Weights[i] = q.Weights[i]
		out.FFPairs[i] = q.FFPairs[i]
	}
	return out
}

// Vector128One evaluates a single pair through the same lane-masked
// shape as Vector128Quad, for completeness of the dispatch table.
func Vector128One(anchor, other point.Point, cfg Config) Result {
	q := Vector128Quad(anchor, [4]point.Point{other, other, other, other}, cfg)
	return Result{Distance: q.Distances[0], Weight: q.Weights[0], FFPair: q.FFPairs[0]}
}

// Vector128OneRounded evaluates a single pair with bin rounding.
func Vector128OneRounded(anchor, other point.Point, cfg Config) RoundedResult {
	r := Vector128One(anchor, other, cfg)
	return RoundedResult{Bin: roundBin(r.Distance * cfg.InvBinWidth), Weight: r.Weight, FFPair: r.FFPair}
}
