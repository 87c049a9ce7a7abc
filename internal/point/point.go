// Package point defines the packed 16-byte point record the pairwise
// kernel operates on, and the structure-of-arrays buffer used to batch
// points for SIMD-shaped evaluation.
//
// A Point is four contiguous float32 lanes: (X, Y, Z, W). Whether the
// fourth lane holds a scattering weight or a form-factor index is a
// property of the Buffer it came from, not of the Point itself: a flat
// slice decoded according to the caller's knowledge of its layout,
// rather than a tagged union per element.
package point

// Kind records how a Buffer's W lane is to be read. The kernel does not
// consult it; it combines W lanes according to kernel.Config.Mode.
type Kind int

const (
	// KindWeight means W holds a non-negative scattering weight; the
	// kernel combines two points' weights by multiplication.
	KindWeight Kind = iota
	// KindFormFactor means W holds a form-factor index (stored as a
	// float32-encoded int32); the kernel combines two points' indices
	// into a single form-factor-pair index instead of multiplying them.
	KindFormFactor
)

// Point is a single packed record. Its size is exactly 16 bytes (four
// float32 lanes), which is the unit the kernel loads for both the
// scalar and the batched (4-wide / 8-wide) evaluators.
type Point struct {
	X, Y, Z, W float32
}

// New builds a Point from float64 coordinates and a raw payload lane
// already encoded as float32 (a weight, or an int32 form-factor index
// reinterpreted through EncodeFFIndex).
func New(x, y, z float64, w float32) Point {
	return Point{X: float32(x), Y: float32(y), Z: float32(z), W: w}
}

// EncodeFFIndex packs a form-factor index into the W lane's bit pattern
// so a Buffer of KindFormFactor points can still be stored as a flat
// []float32 alongside X/Y/Z, reinterpreting the fourth lane between a
// float and an int32 rather than widening the record.
func EncodeFFIndex(idx int32) float32 {
	return int32BitsToFloat32(idx)
}

// DecodeFFIndex reverses EncodeFFIndex.
func DecodeFFIndex(w float32) int32 {
	return float32BitsToInt32(w)
}
