package formfactor

import (
	"testing"

	"github.com/cwbudde/scatterhist/internal/axis"
)

func TestAverageExvMatchesAliphaticCarbonCurve(t *testing.T) {
	q := axis.QAxis{Min: 0, Max: 1, N: 10}
	got := AverageExv{}.Curve(q)
	want := Evaluate(CarbonAliphatic, q)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if (AverageExv{}).PerType(Hydrogen, q) != nil {
		t.Error("AverageExv.PerType should always be nil")
	}
}

func TestExplicitExvScalesByVolumeRatio(t *testing.T) {
	q := axis.QAxis{Min: 0, Max: 1, N: 5}
	e := ExplicitExv{VolumeByType: map[AtomType]float64{Sulfur: dummyAtomVolume * 2}}
	per := e.PerType(Sulfur, q)
	base := Evaluate(Sulfur, q)
	for i := range base {
		if per[i] != base[i]*2 {
			t.Errorf("index %d: got %v, want %v", i, per[i], base[i]*2)
		}
	}
}

func TestExplicitExvUnknownTypeFallsBackToDummyVolume(t *testing.T) {
	q := axis.QAxis{Min: 0, Max: 1, N: 5}
	e := ExplicitExv{VolumeByType: map[AtomType]float64{}}
	per := e.PerType(Nitrogen, q)
	base := Evaluate(Nitrogen, q)
	for i := range base {
		if per[i] != base[i] {
			t.Errorf("index %d: got %v, want %v (ratio 1.0 at fallback volume)", i, per[i], base[i])
		}
	}
}

func TestGridExvScalesByOccupiedFraction(t *testing.T) {
	q := axis.QAxis{Min: 0, Max: 1, N: 5}
	g := GridExv{Snapshot: GridSnapshot{OccupiedFraction: 0.5}}
	got := g.Curve(q)
	want := AverageExv{}.Curve(q)
	for i := range want {
		if got[i] != want[i]*0.5 {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i]*0.5)
		}
	}
}

func TestGridExvPerTypeMissingReturnsNil(t *testing.T) {
	q := axis.QAxis{Min: 0, Max: 1, N: 5}
	g := GridExv{Snapshot: GridSnapshot{}}
	if g.PerType(Hydrogen, q) != nil {
		t.Error("expected nil when OccupiedFractionByType has no entry")
	}
}

func TestUnimplementedSurfaceConverterReturnsSentinel(t *testing.T) {
	c := UnimplementedSurfaceConverter{}
	_, err := c.Classify(GridSnapshot{})
	if err != ErrSurfaceNotImplemented {
		t.Errorf("err = %v, want %v", err, ErrSurfaceNotImplemented)
	}
}
