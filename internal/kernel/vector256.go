package kernel

import (
	"github.com/cwbudde/scatterhist/internal/point"
)

// Vector256Octo computes eight (anchor, other) pairs in a 256-bit-SIMD
// batch shape: one anchor broadcast against eight others, processed two
// 4-wide groups at a time. As with Vector128Quad, this is a software
// emulation of the lane layout (see DESIGN.md for why no hand-written
// assembly backs this) rather than a bare loop over the scalar path.
func Vector256Octo(anchor point.Point, others [8]point.Point, cfg Config) OctoResult {
	var out OctoResult
	var half [4]point.Point

	for h := 0; h < 2; h++ {
		copy(half[:], others[h*4:h*4+4])
		q := Vector128Quad(anchor, half, cfg)
		for i := 0; i < 4; i++ {
			out.Distances[h*4+i] = q.Distances[i]
			out.Weights[h*4+i] = q.Weights[i]
			out.FFPairs[h*4+i] = q.FFPairs[i]
		}
	}
	return out
}

// Vector256OctoRounded is Vector256Octo followed by bin rounding.
func Vector256OctoRounded(anchor point.Point, others [8]point.Point, cfg Config) OctoRoundedResult {
	o := Vector256Octo(anchor, others, cfg)
	var out OctoRoundedResult
	for i := range o.Distances {
		out.Bins[i] = roundBin(o.Distances[i] * cfg.InvBinWidth)
		out.Weights[i] = o.Weights[i]
		out.FFPairs[i] = o.FFPairs[i]
	}
	return out
}
