package molecule

import (
	"strings"

	"github.com/cwbudde/scatterhist/internal/formfactor"
)

// aromaticResidues lists residues whose ring carbons classify as
// CarbonAromatic; every other carbon in a recognized residue is
// CarbonAliphatic.
var aromaticResidues = map[string]bool{
	"PHE": true, "TYR": true, "TRP": true, "HIS": true,
}

// carbonylAtomNames lists the PDB atom names that are backbone or
// side-chain carbonyl oxygens; every other oxygen is a hydroxyl oxygen.
var carbonylAtomNames = map[string]bool{
	"O": true, "OXT": true, "OD1": true, "OE1": true,
}

// knownResidues is the twenty standard amino acids, by three-letter
// code, the same vocabulary as property::name_3symbol_map.
var knownResidues = map[string]bool{
	"GLY": true, "ALA": true, "VAL": true, "LEU": true, "ILE": true,
	"PHE": true, "TYR": true, "TRP": true, "ASP": true, "GLU": true,
	"SER": true, "THR": true, "ASN": true, "GLN": true, "LYS": true,
	"ARG": true, "HIS": true, "MET": true, "CYS": true, "PRO": true,
}

// Classify maps an (element, residue, atom name) triple onto an
// AtomType. Element is matched case-insensitively against the H/C/N/O/S
// elements this model distinguishes; anything else falls back by
// residue membership or, failing that, returns UnknownFormFactorError.
func Classify(element, residue, atomName string) (formfactor.AtomType, error) {
	el := strings.ToUpper(strings.TrimSpace(element))
	res := strings.ToUpper(strings.TrimSpace(residue))
	name := strings.ToUpper(strings.TrimSpace(atomName))

	switch el {
	case "H", "D":
		return formfactor.Hydrogen, nil
	case "S":
		return formfactor.Sulfur, nil
	case "C":
		if aromaticResidues[res] && isRingCarbon(name) {
			return formfactor.CarbonAromatic, nil
		}
		return formfactor.CarbonAliphatic, nil
	case "N":
		return formfactor.Nitrogen, nil
	case "O":
		if carbonylAtomNames[name] {
			return formfactor.OxygenCarbonyl, nil
		}
		return formfactor.OxygenHydroxyl, nil
	}

	if !knownResidues[res] {
		return 0, &formfactor.UnknownFormFactorError{Element: element, Residue: residue, Atom: atomName}
	}
	return formfactor.Other, nil
}

// isRingCarbon approximates ring membership by atom-name suffix: CG,
// CD1/CD2, CE1/CE2, CZ and friends are the side-chain ring carbons in
// the aromatic residues this package recognizes; CA/CB/C are backbone
// or linker carbons and stay aliphatic even in an aromatic residue.
func isRingCarbon(name string) bool {
	switch name {
	case "CG", "CD1", "CD2", "CE1", "CE2", "CZ", "CH2", "NE1", "CE3", "CZ2", "CZ3":
		return true
	default:
		return false
	}
}
