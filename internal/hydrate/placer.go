package hydrate

import (
	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/molecule"
)

// Placer generates a hydration shell for a molecule. It is kept narrow
// on purpose: callers only ever need the resulting water list, not any
// of the grid machinery used to produce it.
type Placer interface {
	Place(m *molecule.Molecule, s Settings) ([]molecule.Water, error)
}

// GridPlacer builds a voxel occupancy grid from the molecule's atoms
// and places one water at the centre of every occupied surface voxel
// (an occupied voxel with at least one empty face neighbour). Waters
// are not moved along an outward normal and are not culled against
// nearby atoms; Settings.WaterRadius is not used.
type GridPlacer struct{}

// Place implements Placer.
func (GridPlacer) Place(m *molecule.Molecule, s Settings) ([]molecule.Water, error) {
	grid := newVoxelGrid(s)
	for _, body := range m.Bodies {
		for _, a := range body.Atoms {
			grid.markAtom(a)
		}
	}

	var waters []molecule.Water
	w := s.VoxelWidth
	for k := range grid.occupied {
		if !grid.isSurface(k) {
			continue
		}
		waters = append(waters, molecule.Water{
			X: (float64(k.x) + 0.5) * w,
			Y: (float64(k.y) + 0.5) * w,
			Z: (float64(k.z) + 0.5) * w,
		})
	}
	return waters, nil
}

// Snapshot builds the grid for m and returns its occupancy snapshot
// without placing any water, the entry point the grid-based
// excluded-volume strategies use.
func Snapshot(m *molecule.Molecule, s Settings) formfactor.GridSnapshot {
	grid := newVoxelGrid(s)
	for _, body := range m.Bodies {
		for _, a := range body.Atoms {
			grid.markAtom(a)
		}
	}
	return grid.Snapshot()
}
