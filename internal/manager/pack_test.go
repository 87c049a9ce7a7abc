package manager

import (
	"testing"

	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/molecule"
	"github.com/cwbudde/scatterhist/internal/point"
)

func TestPackBodyLeavesSymmetryToTransformBuffer(t *testing.T) {
	b := molecule.Body{
		Atoms: []molecule.Atom{{X: 1, Y: 0, Z: 0, Type: formfactor.Hydrogen}},
		Symmetry: []molecule.Transform{
			{Rotation: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Translation: [3]float64{10, 0, 0}},
		},
	}
	buf := packBody(b)
	if buf.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (symmetry copies are not packed inline)", buf.Len())
	}
	copyBuf := transformBuffer(buf, b.Symmetry[0])
	p0 := buf.At(0)
	p1 := copyBuf.At(0)
	if p0.X != 1 || p1.X != 11 {
		t.Errorf("symmetry copy not translated: p0.X=%v p1.X=%v", p0.X, p1.X)
	}
	if point.DecodeFFIndex(p1.W) != int32(formfactor.Hydrogen) {
		t.Errorf("form-factor index not preserved across symmetry copy")
	}
}

func TestPackWatersEncodesWaterIndex(t *testing.T) {
	buf := packWaters([]molecule.Water{{X: 1, Y: 2, Z: 3}})
	if buf.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", buf.Len())
	}
	if got := point.DecodeFFIndex(buf.At(0).W); got != int32(formfactor.Water) {
		t.Errorf("DecodeFFIndex(W) = %d, want %d", got, int32(formfactor.Water))
	}
}
