// Package hydrate places a hydration shell of water pseudo-atoms
// around a molecule using a voxelized occupancy grid, and exposes the
// same grid's occupancy fraction for the grid-based excluded-volume
// strategies in internal/formfactor.
package hydrate

import (
	"math"

	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/molecule"
)

// Settings configures grid placement: voxel width, atom and hydration
// radii in Å, mirroring setting::grid::width/ra/rh.
type Settings struct {
	VoxelWidth   float64
	AtomRadius   float64
	WaterRadius  float64
}

// DefaultSettings returns a reasonable 1 Å voxel grid.
func DefaultSettings() Settings {
	return Settings{VoxelWidth: 1.0, AtomRadius: 2.4, WaterRadius: 1.5}
}

type voxelKey struct{ x, y, z int }

// VoxelGrid is a sparse 3-D occupancy grid built from a molecule's
// atoms, expanded by AtomRadius into filled spheres the same way
// Grid::expand_volume rasterizes each atom.
type VoxelGrid struct {
	settings Settings
	occupied map[voxelKey]formfactor.AtomType
	minX, minY, minZ int
	maxX, maxY, maxZ int
}

func newVoxelGrid(s Settings) *VoxelGrid {
	return &VoxelGrid{settings: s, occupied: make(map[voxelKey]formfactor.AtomType)}
}

func (g *VoxelGrid) voxelOf(x, y, z float64) voxelKey {
	w := g.settings.VoxelWidth
	return voxelKey{
		x: int(math.Floor(x / w)),
		y: int(math.Floor(y / w)),
		z: int(math.Floor(z / w)),
	}
}

func (g *VoxelGrid) markAtom(a molecule.Atom) {
	radius := g.settings.AtomRadius / g.settings.VoxelWidth
	radiusVoxels := int(math.Ceil(radius))
	center := g.voxelOf(a.X, a.Y, a.Z)
	for dx := -radiusVoxels; dx <= radiusVoxels; dx++ {
		for dy := -radiusVoxels; dy <= radiusVoxels; dy++ {
			for dz := -radiusVoxels; dz <= radiusVoxels; dz++ {
				if float64(dx*dx+dy*dy+dz*dz) > radius*radius {
					continue
				}
				k := voxelKey{center.x + dx, center.y + dy, center.z + dz}
				g.occupied[k] = a.Type
				g.expandBounds(k)
			}
		}
	}
}

func (g *VoxelGrid) expandBounds(k voxelKey) {
	if len(g.occupied) == 1 {
		g.minX, g.maxX = k.x, k.x
		g.minY, g.maxY = k.y, k.y
		g.minZ, g.maxZ = k.z, k.z
		return
	}
	g.minX, g.maxX = min(g.minX, k.x), max(g.maxX, k.x)
	g.minY, g.maxY = min(g.minY, k.y), max(g.maxY, k.y)
	g.minZ, g.maxZ = min(g.minZ, k.z), max(g.maxZ, k.z)
}

// isSurface reports whether the occupied voxel at k has at least one
// unoccupied face-neighbor, the same test expand_volume's surface pass
// uses to decide where a water molecule may dock.
func (g *VoxelGrid) isSurface(k voxelKey) bool {
	neighbors := []voxelKey{
		{k.x + 1, k.y, k.z}, {k.x - 1, k.y, k.z},
		{k.x, k.y + 1, k.z}, {k.x, k.y - 1, k.z},
		{k.x, k.y, k.z + 1}, {k.x, k.y, k.z - 1},
	}
	for _, n := range neighbors {
		if _, ok := g.occupied[n]; !ok {
			return true
		}
	}
	return false
}

// Snapshot summarizes the grid's occupancy for the grid-based
// excluded-volume strategies: the fraction of the bounding box's
// voxels that are occupied, overall and per atom type.
func (g *VoxelGrid) Snapshot() formfactor.GridSnapshot {
	total := (g.maxX - g.minX + 1) * (g.maxY - g.minY + 1) * (g.maxZ - g.minZ + 1)
	if total <= 0 {
		return formfactor.GridSnapshot{}
	}
	byType := make(map[formfactor.AtomType]int)
	for _, t := range g.occupied {
		byType[t]++
	}
	perType := make(map[formfactor.AtomType]float64, len(byType))
	for t, n := range byType {
		perType[t] = float64(n) / float64(total)
	}
	return formfactor.GridSnapshot{
		OccupiedFraction:       float64(len(g.occupied)) / float64(total),
		OccupiedFractionByType: perType,
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
