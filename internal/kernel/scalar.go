package kernel

import (
	"math"

	"github.com/cwbudde/scatterhist/internal/point"
)

// scalarDistance computes the Euclidean distance between two points'
// X/Y/Z lanes, zeroing out the W lane's contribution entirely - the W
// lane is never a spatial coordinate, so it never enters the squared
// norm, independent of whether it holds a weight or a form-factor index.
func scalarDistance(a, b point.Point) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

func combine(cfg Config, wa, wb float32) (weight float32, ffPair int32) {
	switch cfg.Mode {
	case PairFormFactor:
		ffa := point.DecodeFFIndex(wa)
		ffb := point.DecodeFFIndex(wb)
		return 1.0, ffb + ffa*cfg.FormFactorCount
	default:
		return wa * wb, 0
	}
}

// EvalScalarOne evaluates one pair with the portable scalar reference
// implementation. Every other variant must agree with this one to
// within 1 ULP in single precision.
func EvalScalarOne(anchor, other point.Point, cfg Config) Result {
	d := scalarDistance(anchor, other)
	w, ff := combine(cfg, anchor.W, other.W)
	return Result{Distance: d, Weight: w, FFPair: ff}
}

// EvalScalarOneRounded evaluates one pair and rounds the distance to a
// bin index.
func EvalScalarOneRounded(anchor, other point.Point, cfg Config) RoundedResult {
	r := EvalScalarOne(anchor, other, cfg)
	return RoundedResult{Bin: roundBin(r.Distance * cfg.InvBinWidth), Weight: r.Weight, FFPair: r.FFPair}
}

// EvalScalarQuad evaluates four pairs by looping the scalar path. This
// is the reference batch shape the SSE-equivalent variant must match.
func EvalScalarQuad(anchor point.Point, others [4]point.Point, cfg Config) QuadResult {
	var out QuadResult
	for i, o := range others {
		r := EvalScalarOne(anchor, o, cfg)
		out.Distances[i] = r.Distance
		out.Weights[i] = r.Weight
		out.FFPairs[i] = r.FFPair
	}
	return out
}

// EvalScalarQuadRounded evaluates four pairs with bin rounding.
func EvalScalarQuadRounded(anchor point.Point, others [4]point.Point, cfg Config) QuadRoundedResult {
	q := EvalScalarQuad(anchor, others, cfg)
	var out QuadRoundedResult
	for i := range q.Distances {
		out.Bins[i] = roundBin(q.Distances[i] * cfg.InvBinWidth)
		out.Weights[i] = q.Weights[i]
		out.FFPairs[i] = q.FFPairs[i]
	}
	return out
}

// EvalScalarOcto evaluates eight pairs by looping the scalar path. This
// is the reference batch shape the AVX-equivalent variant must match.
func EvalScalarOcto(anchor point.Point, others [8]point.Point, cfg Config) OctoResult {
	var out OctoResult
	for i, o := range others {
		r := EvalScalarOne(anchor, o, cfg)
		out.Distances[i] = r.Distance
		out.Weights[i] = r.Weight
		out.FFPairs[i] = r.FFPair
	}
	return out
}

// EvalScalarOctoRounded evaluates eight pairs with bin rounding.
func EvalScalarOctoRounded(anchor point.Point, others [8]point.Point, cfg Config) OctoRoundedResult {
	o := EvalScalarOcto(anchor, others, cfg)
	var out OctoRoundedResult
	for i := range o.Distances {
		out.Bins[i] = roundBin(o.Distances[i] * cfg.InvBinWidth)
		out.Weights[i] = o.Weights[i]
		out.FFPairs[i] = o.FFPairs[i]
	}
	return out
}
