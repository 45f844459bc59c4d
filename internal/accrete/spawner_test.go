package accrete

import (
	"math"
	"math/rand"
	"testing"

	"pebbledisk/internal/disk"
)

// overloaded returns a disk whose annulus i carries excessMass [Earth
// masses] above the conversion threshold.
func overloaded(t *testing.T, numAnnuli int, excess map[int]float64) *disk.Disk {
	t.Helper()
	d, err := disk.New(1, 10, numAnnuli, 50)
	if err != nil {
		t.Fatalf("disk.New: %v", err)
	}
	d.Embryos = nil
	for i, mass := range excess {
		d.SurfaceDensity[i] = d.MaxSurfaceDensity + disk.MassToSurfaceDensity(mass, d.Bounds[i])
	}
	return d
}

func TestSpawnBelowThreshold(t *testing.T) {
	d := overloaded(t, 4, map[int]float64{1: 0.009})
	s := NewStepper(DefaultParams(), nil, nil)

	if n := s.Spawn(d); n != 0 {
		t.Errorf("Spawn = %d, want 0 below threshold", n)
	}
	if len(d.Embryos) != 0 {
		t.Errorf("embryos created below threshold: %d", len(d.Embryos))
	}
	// Undrained: the excess stays put for the next step.
	if d.SurfaceDensity[1] <= d.MaxSurfaceDensity {
		t.Errorf("surface density drained without a spawn: %g", d.SurfaceDensity[1])
	}
}

func TestSpawnAboveThreshold(t *testing.T) {
	const excess = 0.02
	d := overloaded(t, 4, map[int]float64{1: excess})
	s := NewStepper(DefaultParams(), nil, nil)

	if n := s.Spawn(d); n != 1 {
		t.Fatalf("Spawn = %d, want 1", n)
	}
	e := d.Embryos[0]
	if math.Abs(e.Mass-excess) > 1e-12*excess {
		t.Errorf("spawned mass = %g, want %g", e.Mass, excess)
	}
	if e.A < d.InnerEdge() || e.A > d.Bounds[1].Outer {
		t.Errorf("spawned at %g, want within [%g, %g]", e.A, d.InnerEdge(), d.Bounds[1].Outer)
	}
	if d.SurfaceDensity[1] != d.MaxSurfaceDensity {
		t.Errorf("contributor not drained to threshold: %g", d.SurfaceDensity[1])
	}
}

func TestSpawnSplitsIntoQuanta(t *testing.T) {
	const excess = 0.25 // ceil(0.25 / 0.1) = 3 bodies
	d := overloaded(t, 4, map[int]float64{0: excess})
	s := NewStepper(DefaultParams(), nil, nil)

	if n := s.Spawn(d); n != 3 {
		t.Fatalf("Spawn = %d, want 3", n)
	}
	total := 0.0
	for _, e := range d.Embryos {
		if math.Abs(e.Mass-excess/3) > 1e-12 {
			t.Errorf("spawned mass = %g, want %g", e.Mass, excess/3)
		}
		total += e.Mass
	}
	if math.Abs(total-excess) > 1e-12 {
		t.Errorf("total spawned mass = %g, want %g", total, excess)
	}
}

func TestSpawnAccumulatesAcrossAnnuli(t *testing.T) {
	// Each annulus alone is below threshold; together they cross it at
	// annulus 2.
	d := overloaded(t, 4, map[int]float64{0: 0.004, 1: 0.004, 2: 0.004})
	s := NewStepper(DefaultParams(), nil, nil)

	if n := s.Spawn(d); n != 1 {
		t.Fatalf("Spawn = %d, want 1", n)
	}
	if got := d.Embryos[0].Mass; math.Abs(got-0.012) > 1e-12 {
		t.Errorf("spawned mass = %g, want 0.012", got)
	}
	if e := d.Embryos[0]; e.A < d.InnerEdge() || e.A > d.Bounds[2].Outer {
		t.Errorf("spawned at %g, want within [%g, %g]", e.A, d.InnerEdge(), d.Bounds[2].Outer)
	}
	for _, i := range []int{0, 1, 2} {
		if d.SurfaceDensity[i] != d.MaxSurfaceDensity {
			t.Errorf("contributor %d not drained: %g", i, d.SurfaceDensity[i])
		}
	}
}

func TestSpawnAnchorAdvances(t *testing.T) {
	// Two independent spawns in one sweep: the second is confined to
	// radii beyond the annulus that closed the first.
	d := overloaded(t, 4, map[int]float64{0: 0.02, 3: 0.02})
	s := NewStepper(DefaultParams(), nil, nil)

	if n := s.Spawn(d); n != 2 {
		t.Fatalf("Spawn = %d, want 2", n)
	}
	first, second := d.Embryos[0], d.Embryos[1]
	if first.A < d.InnerEdge() || first.A > d.Bounds[0].Outer {
		t.Errorf("first spawn at %g, want within annulus 0", first.A)
	}
	if second.A < d.Bounds[0].Outer || second.A > d.Bounds[3].Outer {
		t.Errorf("second spawn at %g, want within [%g, %g]",
			second.A, d.Bounds[0].Outer, d.Bounds[3].Outer)
	}
}

func TestSpawnReproducible(t *testing.T) {
	place := func() []float64 {
		d := overloaded(t, 4, map[int]float64{0: 0.35})
		s := NewStepper(DefaultParams(), nil, rand.New(rand.NewSource(42)))
		s.Spawn(d)
		out := make([]float64, len(d.Embryos))
		for i, e := range d.Embryos {
			out[i] = e.A
		}
		return out
	}

	a, b := place(), place()
	if len(a) != len(b) {
		t.Fatalf("spawn counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("placement %d differs: %g vs %g", i, a[i], b[i])
		}
	}
}
