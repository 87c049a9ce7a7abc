package hydrate

import (
	"testing"

	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/molecule"
)

func TestMarkAtomFillsASphereAndExpandsBounds(t *testing.T) {
	g := newVoxelGrid(Settings{VoxelWidth: 1.0, AtomRadius: 2.0, WaterRadius: 1.5})
	g.markAtom(molecule.Atom{X: 0, Y: 0, Z: 0, Type: formfactor.CarbonAliphatic})

	center := g.voxelOf(0, 0, 0)
	if _, ok := g.occupied[center]; !ok {
		t.Fatal("center voxel not marked occupied")
	}
	if g.maxX < 2 || g.minX > -2 {
		t.Errorf("bounds not expanded to radius: minX=%d maxX=%d", g.minX, g.maxX)
	}
}

func TestIsSurfaceDetectsBoundaryVoxel(t *testing.T) {
	g := newVoxelGrid(Settings{VoxelWidth: 1.0, AtomRadius: 0.4, WaterRadius: 1.5})
	g.markAtom(molecule.Atom{X: 0, Y: 0, Z: 0})
	center := g.voxelOf(0, 0, 0)
	if !g.isSurface(center) {
		t.Error("lone atom's voxel should be classified as surface")
	}
}

func TestSnapshotEmptyGridReturnsZeroValue(t *testing.T) {
	g := newVoxelGrid(DefaultSettings())
	snap := g.Snapshot()
	if snap.OccupiedFraction != 0 {
		t.Errorf("OccupiedFraction = %v, want 0 for an empty grid", snap.OccupiedFraction)
	}
}

func TestSnapshotFractionIsWithinBounds(t *testing.T) {
	g := newVoxelGrid(Settings{VoxelWidth: 1.0, AtomRadius: 1.5, WaterRadius: 1.5})
	g.markAtom(molecule.Atom{X: 0, Y: 0, Z: 0, Type: formfactor.Hydrogen})
	g.markAtom(molecule.Atom{X: 5, Y: 5, Z: 5, Type: formfactor.Sulfur})

	snap := g.Snapshot()
	if snap.OccupiedFraction <= 0 || snap.OccupiedFraction > 1 {
		t.Errorf("OccupiedFraction = %v, want in (0, 1]", snap.OccupiedFraction)
	}
	if len(snap.OccupiedFractionByType) == 0 {
		t.Error("expected per-type occupancy for a grid with marked atoms")
	}
}
