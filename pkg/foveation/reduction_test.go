package foveation

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-12

func TestReduction_Golden(t *testing.T) {
	g := DefaultConfig().Display
	lag := 100.0 / 30

	tests := []struct {
		name   string
		angles RegionAngles
		radial float64
		band   float64
	}{
		{"ideal", RegionAngles{6, 12}, 0.7092423008541019, 0.5900389666397277},
		{"spatial error", RegionAngles{7, 13}, 0.6887420101540425, 0.564937670254432},
		{"latency", RegionAngles{6 + lag, 12 + lag}, 0.6317563214653255, 0.5062207234984287},
		{"combined", RegionAngles{7 + lag, 13 + lag}, 0.6033753330862117, 0.48098372356838937},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			radial, err := RadialReduction(g, tt.angles)
			if err != nil {
				t.Fatalf("RadialReduction: %v", err)
			}
			band, err := BandReduction(g, tt.angles)
			if err != nil {
				t.Fatalf("BandReduction: %v", err)
			}
			if math.Abs(radial-tt.radial) > tolerance {
				t.Errorf("radial = %v, want %v", radial, tt.radial)
			}
			if math.Abs(band-tt.band) > tolerance {
				t.Errorf("band = %v, want %v", band, tt.band)
			}
		})
	}
}

// The low-density term subtracts only the mid region from the display, so
// the full region is weighted twice. Pin that formula.
func TestRadialReduction_RestKeepsFullRegion(t *testing.T) {
	g := DefaultConfig().Display
	a := RegionAngles{6, 12}

	fullR, _ := Radius(a.FullAngle, g.Distance)
	halfR, _ := Radius(a.HalfAngle, g.Distance)
	display := g.Area()
	full := math.Pi * fullR * fullR
	mid := math.Pi * (halfR*halfR - fullR*fullR)

	reference := 1 - (full+0.6*mid+0.2*(display-mid))/display
	corrected := 1 - (full+0.6*mid+0.2*(display-mid-full))/display

	got, err := RadialReduction(g, a)
	if err != nil {
		t.Fatalf("RadialReduction: %v", err)
	}
	if math.Abs(got-reference) > tolerance {
		t.Errorf("got %v, want reference formula %v", got, reference)
	}
	if math.Abs(got-corrected) < 1e-6 {
		t.Errorf("got %v, matches the corrected formula", got)
	}
}

func TestBandReduction_RestKeepsFullRegion(t *testing.T) {
	g := DefaultConfig().Display
	a := RegionAngles{6, 12}

	fullR, _ := Radius(a.FullAngle, g.Distance)
	halfR, _ := Radius(a.HalfAngle, g.Distance)
	display := g.Area()
	full := fullR * g.Width
	mid := (halfR - fullR) * g.Width
	reference := 1 - (full+0.6*mid+0.2*(display-mid))/display

	got, err := BandReduction(g, a)
	if err != nil {
		t.Fatalf("BandReduction: %v", err)
	}
	if math.Abs(got-reference) > tolerance {
		t.Errorf("got %v, want %v", got, reference)
	}
}

func TestRadialReduction_EqualAngles(t *testing.T) {
	g := DefaultConfig().Display
	fullR, _ := Radius(6, g.Distance)
	fullArea := math.Pi * fullR * fullR

	got, err := RadialReduction(g, RegionAngles{6, 6})
	if err != nil {
		t.Fatalf("RadialReduction: %v", err)
	}
	// No mid annulus: the rest term is the whole display at 20%.
	want := 1 - fullArea/g.Area() - 0.2
	if math.Abs(got-want) > tolerance {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReduction_Idempotent(t *testing.T) {
	g := DefaultConfig().Display
	a := RegionAngles{6.5, 14.25}

	first, err := Reduce(g, a)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, _ := Reduce(g, a)
		if again != first {
			t.Fatalf("call %d: %+v != %+v", i, again, first)
		}
	}
}

func TestReduction_NotClamped(t *testing.T) {
	// A small display seen from far away with wide regions: the regions do
	// not fit and the ratio leaves [0, 1).
	g := DisplayGeometry{Width: 0.1, Height: 0.05, Distance: 2}
	res, err := Reduce(g, RegionAngles{20, 60})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if res.Radial >= 0 || res.Band >= 0 {
		t.Errorf("expected negative ratios, got %+v", res)
	}
}

func TestReduction_WideningLowersRatio(t *testing.T) {
	g := DefaultConfig().Display
	base := RegionAngles{6, 12}
	prev, _ := Reduce(g, base)

	for delta := 0.5; delta <= 5; delta += 0.5 {
		res, err := Reduce(g, base.Widen(delta))
		if err != nil {
			t.Fatalf("Reduce: %v", err)
		}
		if res.Radial >= prev.Radial || res.Band >= prev.Band {
			t.Errorf("delta %v: %+v not below %+v", delta, res, prev)
		}
		prev = res
	}
}

func TestReduction_InvalidGeometry(t *testing.T) {
	tests := []struct {
		name string
		g    DisplayGeometry
		a    RegionAngles
	}{
		{"zero distance", DisplayGeometry{0.6, 0.35, 0}, RegionAngles{6, 12}},
		{"zero width", DisplayGeometry{0, 0.35, 0.5}, RegionAngles{6, 12}},
		{"negative height", DisplayGeometry{0.6, -1, 0.5}, RegionAngles{6, 12}},
		{"half angle at 180", DisplayGeometry{0.6, 0.35, 0.5}, RegionAngles{6, 180}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RadialReduction(tt.g, tt.a); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("radial: expected ErrInvalidGeometry, got %v", err)
			}
			if _, err := BandReduction(tt.g, tt.a); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("band: expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}
