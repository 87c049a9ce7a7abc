package hydrate

import (
	"testing"

	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/molecule"
)

func singleAtomMolecule() *molecule.Molecule {
	return &molecule.Molecule{
		Bodies: []molecule.Body{
			{Name: "A", Atoms: []molecule.Atom{
				{X: 0, Y: 0, Z: 0, Type: formfactor.CarbonAliphatic},
			}},
		},
	}
}

func TestGridPlacerPlacesWaterAroundLoneAtom(t *testing.T) {
	m := singleAtomMolecule()
	waters, err := (GridPlacer{}).Place(m, Settings{VoxelWidth: 1.0, AtomRadius: 1.0, WaterRadius: 1.5})
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}
	if len(waters) == 0 {
		t.Fatal("expected at least one water placed around a lone atom")
	}
}

func TestSnapshotMatchesGridOccupancy(t *testing.T) {
	m := singleAtomMolecule()
	s := DefaultSettings()
	snap := Snapshot(m, s)
	if snap.OccupiedFraction <= 0 {
		t.Errorf("OccupiedFraction = %v, want > 0", snap.OccupiedFraction)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.VoxelWidth != 1.0 || s.AtomRadius != 2.4 || s.WaterRadius != 1.5 {
		t.Errorf("DefaultSettings() = %+v, unexpected values", s)
	}
}
