package molecule

import (
	"errors"
	"testing"

	"github.com/cwbudde/scatterhist/internal/formfactor"
)

func TestClassifyByElement(t *testing.T) {
	cases := []struct {
		element, residue, atom string
		want                   formfactor.AtomType
	}{
		{"H", "ALA", "HA", formfactor.Hydrogen},
		{"S", "CYS", "SG", formfactor.Sulfur},
		{"N", "GLY", "N", formfactor.Nitrogen},
		{"O", "ALA", "O", formfactor.OxygenCarbonyl},
		{"O", "SER", "OG", formfactor.OxygenHydroxyl},
		{"C", "ALA", "CA", formfactor.CarbonAliphatic},
	}
	for _, c := range cases {
		got, err := Classify(c.element, c.residue, c.atom)
		if err != nil {
			t.Errorf("Classify(%q,%q,%q) error: %v", c.element, c.residue, c.atom, err)
			continue
		}
		if got != c.want {
			t.Errorf("Classify(%q,%q,%q) = %v, want %v", c.element, c.residue, c.atom, got, c.want)
		}
	}
}

func TestClassifyRingCarbonInAromaticResidue(t *testing.T) {
	got, err := Classify("C", "PHE", "CZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != formfactor.CarbonAromatic {
		t.Errorf("Classify ring carbon in PHE = %v, want CarbonAromatic", got)
	}
}

func TestClassifyBackboneCarbonInAromaticResidueStaysAliphatic(t *testing.T) {
	got, err := Classify("C", "PHE", "CA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != formfactor.CarbonAliphatic {
		t.Errorf("Classify backbone carbon in PHE = %v, want CarbonAliphatic", got)
	}
}

func TestClassifyUnknownElementFallsBackToKnownResidue(t *testing.T) {
	got, err := Classify("P", "SER", "P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != formfactor.Other {
		t.Errorf("Classify unknown element in known residue = %v, want Other", got)
	}
}

func TestClassifyUnknownElementAndResidueReturnsError(t *testing.T) {
	_, err := Classify("P", "HEM", "FE1")
	if err == nil {
		t.Fatal("expected error for unknown element and residue")
	}
	var uerr *formfactor.UnknownFormFactorError
	if !errors.As(err, &uerr) {
		t.Errorf("error is not *formfactor.UnknownFormFactorError: %v", err)
	}
}

func TestClassifyCaseInsensitiveAndTrimmed(t *testing.T) {
	got, err := Classify(" h ", " ala ", " ha ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != formfactor.Hydrogen {
		t.Errorf("Classify with whitespace/lowercase = %v, want Hydrogen", got)
	}
}
