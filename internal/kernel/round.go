package kernel

import "math"

// roundBin converts a raw distance already scaled by the inverse bin
// width into a bin index using round-to-nearest, ties-to-even -
// math.RoundToEven is IEEE-754 banker's rounding, adopted as the single
// authoritative rounding rule for every kernel variant. Scalar,
// SSE-equivalent, and AVX-equivalent all route through this one
// function so none of them can silently diverge at exact half-integer
// distances.
func roundBin(scaled float32) int32 {
	return int32(math.RoundToEven(float64(scaled)))
}
