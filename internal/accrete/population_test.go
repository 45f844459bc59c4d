package accrete

import (
	"errors"
	"math"
	"testing"

	"pebbledisk/internal/flux"
	"pebbledisk/internal/physics"
)

func TestTotalAccretionRateSizing(t *testing.T) {
	p := DefaultParams()
	_, err := TotalAccretionRate(1, 5, 1e5, 1e-4, Sizing{}, p, flux.PebbleSurfaceDensity)
	if !errors.Is(err, ErrSizing) {
		t.Errorf("no sizing: err = %v, want ErrSizing", err)
	}

	_, err = TotalAccretionRate(1, 5, 1e5, 1e-4,
		Sizing{BodyCount: 10, BodyRadiusKm: 100}, p, flux.PebbleSurfaceDensity)
	if !errors.Is(err, ErrSizing) {
		t.Errorf("both sizings: err = %v, want ErrSizing", err)
	}
}

func TestTotalAccretionRateEmptyPopulation(t *testing.T) {
	p := DefaultParams()
	rate, err := TotalAccretionRate(0, 5, 1e5, 1e-4,
		Sizing{BodyRadiusKm: 100}, p, flux.PebbleSurfaceDensity)
	if err != nil {
		t.Fatalf("TotalAccretionRate: %v", err)
	}
	if rate != 0 {
		t.Errorf("rate = %g, want 0 for zero mass", rate)
	}
}

// The two sizing modes agree when they describe the same population.
func TestTotalAccretionRateSizingModesAgree(t *testing.T) {
	p := DefaultParams()
	bodyMass := physics.SphereMass(100*1e5, p.PlanetDensity) / physics.EarthMassG
	totalMass := 7 * bodyMass

	byRadius, err := TotalAccretionRate(totalMass, 5, 1e5, 1e-4,
		Sizing{BodyRadiusKm: 100}, p, flux.PebbleSurfaceDensity)
	if err != nil {
		t.Fatalf("radius sizing: %v", err)
	}
	byCount, err := TotalAccretionRate(totalMass, 5, 1e5, 1e-4,
		Sizing{BodyCount: 7}, p, flux.PebbleSurfaceDensity)
	if err != nil {
		t.Fatalf("count sizing: %v", err)
	}

	if math.Abs(byRadius-byCount) > 1e-9*math.Abs(byRadius) {
		t.Errorf("radius sizing %g != count sizing %g", byRadius, byCount)
	}
}

func TestTotalAccretionRateScalesWithMass(t *testing.T) {
	p := DefaultParams()
	base, err := TotalAccretionRate(1e-4, 5, 1e5, 1e-4,
		Sizing{BodyRadiusKm: 100}, p, flux.PebbleSurfaceDensity)
	if err != nil {
		t.Fatalf("TotalAccretionRate: %v", err)
	}
	double, err := TotalAccretionRate(2e-4, 5, 1e5, 1e-4,
		Sizing{BodyRadiusKm: 100}, p, flux.PebbleSurfaceDensity)
	if err != nil {
		t.Fatalf("TotalAccretionRate: %v", err)
	}

	// Fixed body size: twice the mass is twice the bodies.
	if math.Abs(double-2*base) > 1e-12*math.Abs(base) {
		t.Errorf("rate not linear in population mass: %g vs %g", double, 2*base)
	}
}
