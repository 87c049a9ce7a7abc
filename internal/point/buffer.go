package point

// Buffer holds N packed points in structure-of-arrays layout: four
// parallel []float32 slices rather than a []Point. This is the layout
// the pairwise kernel actually consumes, since it lets the 4-wide and
// 8-wide evaluators gather contiguous lanes without re-striding through
// an array-of-structures.
type Buffer struct {
	X, Y, Z, W []float32
	Kind       Kind
}

// NewBuffer allocates a Buffer with capacity n, ready for Append.
func NewBuffer(kind Kind, n int) *Buffer {
	return &Buffer{
		X:    make([]float32, 0, n),
		Y:    make([]float32, 0, n),
		Z:    make([]float32, 0, n),
		W:    make([]float32, 0, n),
		Kind: kind,
	}
}

// Append adds one point to the buffer.
func (b *Buffer) Append(p Point) {
	b.X = append(b.X, p.X)
	b.Y = append(b.Y, p.Y)
	b.Z = append(b.Z, p.Z)
	b.W = append(b.W, p.W)
}

// Len returns the number of points currently stored.
func (b *Buffer) Len() int {
	return len(b.X)
}

// At reconstructs the Point stored at index i.
func (b *Buffer) At(i int) Point {
	return Point{X: b.X[i], Y: b.Y[i], Z: b.Z[i], W: b.W[i]}
}
