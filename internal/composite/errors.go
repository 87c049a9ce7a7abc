package composite

import "fmt"

// AxisMismatchError is returned when a Histogram is asked to combine
// data built against two different q- or r-axes.
type AxisMismatchError struct {
	Reason string
}

func (e *AxisMismatchError) Error() string {
	return "composite: axis mismatch: " + e.Reason
}

// InvalidScalingError is returned by ApplyWaterScaling/ApplyExvScaling
// for a scaling factor outside the physically sensible range.
type InvalidScalingError struct {
	Field string
	Value float64
}

func (e *InvalidScalingError) Error() string {
	return fmt.Sprintf("composite: invalid %s scaling factor %g", e.Field, e.Value)
}
