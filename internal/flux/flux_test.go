package flux

import (
	"fmt"
	"math"
	"testing"
)

// recordingLogger captures notices for assertions.
type recordingLogger struct {
	notices []string
}

func (r *recordingLogger) Debugf(format string, v ...any) {}
func (r *recordingLogger) Infof(format string, v ...any) {
	r.notices = append(r.notices, fmt.Sprintf(format, v...))
}
func (r *recordingLogger) Warnf(format string, v ...any)  {}
func (r *recordingLogger) Errorf(format string, v ...any) {}

func TestProductionRateClampsEarlyTimes(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	early := ProductionRate(1e3)
	floor := ProductionRate(MinValidTime)

	if math.Abs(early-floor) > 1e-15*floor {
		t.Errorf("clamped rate %g should equal floor rate %g", early, floor)
	}
	if len(rec.notices) != 1 {
		t.Errorf("expected one clamp notice, got %d", len(rec.notices))
	}
}

func TestProductionRateDecays(t *testing.T) {
	prev := math.Inf(1)
	for _, tYr := range []float64{1e5, 5e5, 1e6, 3e6, 1e7} {
		rate := ProductionRate(tYr)
		if rate <= 0 || rate >= prev {
			t.Errorf("ProductionRate(%g) = %g, want positive and decreasing", tYr, rate)
		}
		prev = rate
	}
}

func TestProductionRateScalesWithMetallicity(t *testing.T) {
	base := ProductionRateWith(1e5, DefaultBeta0, DefaultStarMass, 0.01)
	rich := ProductionRateWith(1e5, DefaultBeta0, DefaultStarMass, 0.02)
	if math.Abs(rich-2*base) > 1e-12*base {
		t.Errorf("doubling dust-to-gas should double the rate: %g vs %g", rich, base)
	}
}

func TestDominantPebbleSizePositive(t *testing.T) {
	for _, a := range []float64{0.5, 1, 5, 30} {
		size := DominantPebbleSize(a, 1e5)
		if size <= 0 || math.IsNaN(size) {
			t.Errorf("DominantPebbleSize(%g) = %g, want positive", a, size)
		}
	}
}

func TestPebbleSurfaceDensity(t *testing.T) {
	a, tYr := 5.0, 1e5
	fluxIn := ProductionRate(tYr)

	sigma := PebbleSurfaceDensity(a, tYr, 1.0, 1.0, fluxIn)
	if sigma <= 0 {
		t.Fatalf("surface density = %g, want positive for positive flux", sigma)
	}

	// Linear in the inbound flux.
	double := PebbleSurfaceDensity(a, tYr, 1.0, 1.0, 2*fluxIn)
	if math.Abs(double-2*sigma) > 1e-12*sigma {
		t.Errorf("surface density not linear in flux: %g vs %g", double, 2*sigma)
	}
}

// Upstream depletion is carried through as-is: a negative inbound flux
// maps to a negative local column.
func TestPebbleSurfaceDensityNegativeFluxNotClamped(t *testing.T) {
	sigma := PebbleSurfaceDensity(5.0, 1e5, 1.0, 1.0, -1e-5)
	if sigma >= 0 {
		t.Errorf("surface density = %g, want negative for negative flux", sigma)
	}
}
