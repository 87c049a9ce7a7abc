// Package molecule holds the in-memory atomic model the histogram
// manager evaluates: bodies of classified atoms, optional symmetry
// copies, and a separate hydration-shell water list.
package molecule

import "github.com/cwbudde/scatterhist/internal/formfactor"

// Atom is a single classified point in a Body. Weight is carried but
// not read by the histogram manager, which counts every pair with
// weight 1.
type Atom struct {
	X, Y, Z float64
	Type    formfactor.AtomType
	Weight  float64
	BodyID  int
}

// Water is a hydration-shell pseudo-atom; it always uses the reserved
// Water form-factor index, so it carries no AtomType of its own.
type Water struct {
	X, Y, Z float64
}

// Transform is a rigid-body symmetry operation (rotation + translation)
// applied to a Body to generate a symmetry-equivalent copy without
// materializing its atoms.
type Transform struct {
	Rotation    [3][3]float64
	Translation [3]float64
}

// Apply maps (x, y, z) through the transform.
func (t Transform) Apply(x, y, z float64) (float64, float64, float64) {
	rx := t.Rotation[0][0]*x + t.Rotation[0][1]*y + t.Rotation[0][2]*z + t.Translation[0]
	ry := t.Rotation[1][0]*x + t.Rotation[1][1]*y + t.Rotation[1][2]*z + t.Translation[1]
	rz := t.Rotation[2][0]*x + t.Rotation[2][1]*y + t.Rotation[2][2]*z + t.Translation[2]
	return rx, ry, rz
}

// Identity returns a no-op Transform.
func Identity() Transform {
	var t Transform
	t.Rotation[0][0], t.Rotation[1][1], t.Rotation[2][2] = 1, 1, 1
	return t
}

// Body is one independently movable chain or domain. Symmetry holds
// additional copies generated by the listed transforms; an empty
// Symmetry means the body appears exactly once.
type Body struct {
	Name     string
	Atoms    []Atom
	Symmetry []Transform
}

// Molecule is the complete evaluation input: every body plus the
// hydration shell.
type Molecule struct {
	Bodies []Body
	Waters []Water
}

// AtomCount returns the total number of atoms across every body,
// ignoring symmetry copies.
func (m *Molecule) AtomCount() int {
	n := 0
	for _, b := range m.Bodies {
		n += len(b.Atoms)
	}
	return n
}
