// Package kernel implements the pairwise distance/weight evaluator:
// given a packed anchor point and 1, 4, or 8 other points, it computes
// Euclidean distances and a combined weight plus form-factor-pair
// index, with scalar and batched (SSE-equivalent, AVX-equivalent)
// implementations chosen at runtime by CPU feature detection.
//
// The kernel never writes into a histogram; it only produces results.
// Accumulation is the caller's job (internal/manager): for each (bin,
// weight, ffPair) result, the caller does h[ffPair][bin] += weight.
package kernel

// PairMode selects how two points' fourth lanes are combined.
type PairMode int

const (
	// PairWeight multiplies the two points' weights; FFPair in every
	// result is always 0 (callers accumulate into a plain 1-D
	// histogram, not a partitioned one).
	PairWeight PairMode = iota
	// PairFormFactor combines two form-factor indices into a single
	// pair index (ffPair = ffJ + ffI*FormFactorCount) and leaves Weight
	// at 1.0.
	PairFormFactor
)

// Config carries the per-evaluation parameters the kernel needs. It is
// passed explicitly rather than read from package state, so callers
// running concurrent evaluations with different settings never collide.
type Config struct {
	Mode PairMode
	// FormFactorCount is T, the number of non-reserved form-factor
	// types; only used when Mode == PairFormFactor.
	FormFactorCount int32
	// InvBinWidth is the inverse bin width used to convert a raw
	// distance into a bin index. The manager derives it from its
	// axis.RAxis (RAxis.InvWidth) each time it builds a Config; every
	// kernel variant reads it from this one field.
	InvBinWidth float32
}

// Result is a single raw (distance, weight, form-factor-pair) triple.
type Result struct {
	Distance float32
	Weight   float32
	FFPair   int32
}

// RoundedResult is a single (bin, weight, form-factor-pair) triple.
type RoundedResult struct {
	Bin    int32
	Weight float32
	FFPair int32
}

// QuadResult holds four raw results, laid out as parallel arrays so a
// caller can feed them straight into a histogram accumulation loop.
type QuadResult struct {
	Distances [4]float32
	Weights   [4]float32
	FFPairs   [4]int32
}

// QuadRoundedResult holds four rounded results.
type QuadRoundedResult struct {
	Bins    [4]int32
	Weights [4]float32
	FFPairs [4]int32
}

// OctoResult holds eight raw results.
type OctoResult struct {
	Distances [8]float32
	Weights   [8]float32
	FFPairs   [8]int32
}

// OctoRoundedResult holds eight rounded results.
type OctoRoundedResult struct {
	Bins    [8]int32
	Weights [8]float32
	FFPairs [8]int32
}
