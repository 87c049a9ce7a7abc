package formfactor

import "fmt"

// UnknownFormFactorError is returned by Classify when an
// (element, residue, atom name) triple does not map to any known
// AtomType.
type UnknownFormFactorError struct {
	Element string
	Residue string
	Atom    string
}

func (e *UnknownFormFactorError) Error() string {
	return fmt.Sprintf("formfactor: unknown element/residue/atom combination: %q/%q/%q", e.Element, e.Residue, e.Atom)
}

// SurfaceNotImplementedError is returned by a SurfaceConverter that has
// no working implementation yet.
type SurfaceNotImplementedError struct {
	Variant string
}

func (e *SurfaceNotImplementedError) Error() string {
	return fmt.Sprintf("formfactor: surface conversion not implemented for %s", e.Variant)
}

// ErrSurfaceNotImplemented is the sentinel GridSurfaceExv returns until
// a real surface-area-weighted excluded-volume estimator is written.
var ErrSurfaceNotImplemented = &SurfaceNotImplementedError{Variant: "grid-surface"}
