package manager

import (
	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/molecule"
	"github.com/cwbudde/scatterhist/internal/point"
)

// packBody converts a Body's atoms into a structure-of-arrays point
// buffer with each atom's form-factor index encoded into the W lane.
// Symmetry copies are never materialized here: when a Body carries
// symmetry transforms, the Manager evaluates them combinatorially (see
// symmetryEvaluate in worker.go) instead of widening this buffer.
func packBody(b molecule.Body) *point.Buffer {
	buf := point.NewBuffer(point.KindFormFactor, len(b.Atoms))
	for _, a := range b.Atoms {
		buf.Append(point.New(a.X, a.Y, a.Z, point.EncodeFFIndex(int32(a.Type))))
	}
	return buf
}

// transformBuffer applies tr to every point in buf, returning a new
// buffer of the same size. Used to materialize one symmetry copy at a
// time for a cross-histogram evaluation, never all copies at once.
func transformBuffer(buf *point.Buffer, tr molecule.Transform) *point.Buffer {
	out := point.NewBuffer(buf.Kind, buf.Len())
	for i := 0; i < buf.Len(); i++ {
		p := buf.At(i)
		x, y, z := tr.Apply(float64(p.X), float64(p.Y), float64(p.Z))
		out.Append(point.New(x, y, z, p.W))
	}
	return out
}

func packWaters(ws []molecule.Water) *point.Buffer {
	buf := point.NewBuffer(point.KindFormFactor, len(ws))
	idx := point.EncodeFFIndex(int32(formfactor.Water))
	for _, w := range ws {
		buf.Append(point.New(w.X, w.Y, w.Z, idx))
	}
	return buf
}
