// Package axis defines the explicit q-axis and r-axis specifications the
// rest of the module builds against, plus the settings bundle the
// histogram manager is constructed with. Nothing here is a package-level
// mutable flag: all configuration is passed by value at construction.
package axis

import "fmt"

// QAxis describes a linearly spaced scattering-vector axis (Å⁻¹).
type QAxis struct {
	Min float64
	Max float64
	N   int
}

// DefaultQAxis returns the default 0.0-1.0 Å⁻¹ axis with 1000 points.
func DefaultQAxis() QAxis {
	return QAxis{Min: 0, Max: 1.0, N: 1000}
}

// Width returns the spacing between adjacent q points.
func (a QAxis) Width() float64 {
	if a.N <= 1 {
		return 0
	}
	return (a.Max - a.Min) / float64(a.N-1)
}

// At returns the q value of the i-th axis point.
func (a QAxis) At(i int) float64 {
	return a.Min + float64(i)*a.Width()
}

// Validate checks that the axis describes a usable, non-degenerate range.
func (a QAxis) Validate() error {
	if a.N <= 0 {
		return fmt.Errorf("axis: q-axis N must be positive, got %d", a.N)
	}
	if a.Max <= a.Min {
		return fmt.Errorf("axis: q-axis max (%g) must exceed min (%g)", a.Max, a.Min)
	}
	return nil
}

// RAxis describes the real-space distance histogram axis: Bins bins of
// width Max/Bins Å, starting at r=0. Dynamic controls the overflow
// policy: when false, distances beyond Max saturate into the last bin;
// when true, the histogram grows to accommodate them.
type RAxis struct {
	Max     float64
	Bins    int
	Dynamic bool
}

// DefaultRAxis returns the default 0-1000 Å axis at 1 Å bin width.
func DefaultRAxis() RAxis {
	return RAxis{Max: 1000, Bins: 1000}
}

// Width returns the bin width in Å.
func (a RAxis) Width() float64 {
	if a.Bins <= 0 {
		return 0
	}
	return a.Max / float64(a.Bins)
}

// InvWidth returns the inverse bin width, the value the pairwise kernel
// multiplies raw distances by before rounding to a bin index.
func (a RAxis) InvWidth() float64 {
	w := a.Width()
	if w == 0 {
		return 0
	}
	return 1.0 / w
}

// Validate checks that the axis describes a usable, non-degenerate range.
func (a RAxis) Validate() error {
	if a.Bins <= 0 {
		return fmt.Errorf("axis: r-axis Bins must be positive, got %d", a.Bins)
	}
	if a.Max <= 0 {
		return fmt.Errorf("axis: r-axis Max must be positive, got %g", a.Max)
	}
	return nil
}

// ExvVariant selects the excluded-volume form-factor strategy.
type ExvVariant int

const (
	ExvNone ExvVariant = iota
	ExvAverage
	ExvExplicit
	ExvGrid
	ExvGridSurface
)

func (v ExvVariant) String() string {
	switch v {
	case ExvNone:
		return "none"
	case ExvAverage:
		return "average"
	case ExvExplicit:
		return "explicit"
	case ExvGrid:
		return "grid"
	case ExvGridSurface:
		return "grid-surface"
	default:
		return "unknown"
	}
}

// Settings bundles the run-time configuration the histogram manager is
// constructed with, so no package anywhere holds mutable global flags.
type Settings struct {
	Exv              ExvVariant
	HydrationEnabled bool
	UseSymmetry      bool
	// ThreadCount overrides runtime.GOMAXPROCS(0) for the worker pool when
	// positive; zero or negative means "use GOMAXPROCS".
	ThreadCount int
}

// DefaultSettings returns a reasonable default configuration.
func DefaultSettings() Settings {
	return Settings{
		Exv:              ExvAverage,
		HydrationEnabled: true,
		UseSymmetry:      false,
	}
}
