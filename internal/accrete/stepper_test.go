package accrete

import (
	"math"
	"testing"

	"pebbledisk/internal/disk"
)

func fiducialDisk(t *testing.T) *disk.Disk {
	t.Helper()
	d, err := disk.New(0.1, 30, 20, 100)
	if err != nil {
		t.Fatalf("disk.New: %v", err)
	}
	return d
}

func TestAdvanceFluxAccounting(t *testing.T) {
	d := fiducialDisk(t)
	s := NewStepper(DefaultParams(), nil, nil)

	report, err := s.Advance(d, 1e5, 100)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}

	// Every unit of flux is either accreted by a sink or passes the
	// innermost annulus.
	got := report.ProductionRate - report.TotalSink()
	if math.Abs(got-report.FinalFlux) > 1e-12*report.ProductionRate {
		t.Errorf("production - sinks = %g, final flux = %g", got, report.FinalFlux)
	}

	// The cascade hands each annulus what its outer neighbor left over.
	n := d.NumAnnuli()
	if report.IncomingFlux[n-1] != report.ProductionRate-report.OuterSink {
		t.Errorf("outermost annulus sees %g, want %g",
			report.IncomingFlux[n-1], report.ProductionRate-report.OuterSink)
	}
	for i := n - 1; i > 0; i-- {
		want := report.IncomingFlux[i] - report.EmbryoSink[i] - report.PlanetesimalSink[i]
		if math.Abs(report.IncomingFlux[i-1]-want) > 1e-15 {
			t.Errorf("annulus %d sees %g, want %g", i-1, report.IncomingFlux[i-1], want)
		}
	}
}

func TestAdvanceGrowsBodies(t *testing.T) {
	d := fiducialDisk(t)
	s := NewStepper(DefaultParams(), nil, nil)

	before := make([]float64, len(d.Embryos))
	for i, e := range d.Embryos {
		before[i] = e.Mass
	}
	sigmaBefore := append([]float64(nil), d.SurfaceDensity...)

	time := 1e5
	for step := 0; step < 5; step++ {
		report, err := s.Advance(d, time, 10)
		if err != nil {
			t.Fatalf("Advance at t=%g: %v", time, err)
		}
		if len(report.EmbryoSigma) != d.NumAnnuli() {
			t.Fatalf("len(EmbryoSigma) = %d, want %d", len(report.EmbryoSigma), d.NumAnnuli())
		}
		if report.FinalFlux <= 0 {
			t.Errorf("flux exhausted at t=%g: %g", time, report.FinalFlux)
		}
		time += 10
	}

	for i := range before {
		if d.Embryos[i].Mass <= before[i] {
			t.Errorf("embryo %d mass %g did not grow from %g", i, d.Embryos[i].Mass, before[i])
		}
	}
	for i := range sigmaBefore {
		if d.SurfaceDensity[i] <= sigmaBefore[i] {
			t.Errorf("annulus %d surface density %g did not grow from %g",
				i, d.SurfaceDensity[i], sigmaBefore[i])
		}
	}
}

func TestAdvanceEmptyPopulation(t *testing.T) {
	d := fiducialDisk(t)
	d.Embryos = nil
	s := NewStepper(DefaultParams(), nil, nil)

	report, err := s.Advance(d, 1e5, 100)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if report.OuterSink != 0 {
		t.Errorf("OuterSink = %g, want 0 with no embryos", report.OuterSink)
	}
	for i, sink := range report.EmbryoSink {
		if sink != 0 {
			t.Errorf("EmbryoSink[%d] = %g, want 0", i, sink)
		}
	}
	for i, sink := range report.PlanetesimalSink {
		if sink <= 0 {
			t.Errorf("PlanetesimalSink[%d] = %g, want positive", i, sink)
		}
	}
}

func TestAdvanceRejectsInvalidDisk(t *testing.T) {
	d := fiducialDisk(t)
	d.SurfaceDensity = d.SurfaceDensity[:3]
	s := NewStepper(DefaultParams(), nil, nil)

	if _, err := s.Advance(d, 1e5, 100); err == nil {
		t.Error("Advance accepted a disk with mismatched arrays")
	}
}

func TestOuterEmbryosInterceptFirst(t *testing.T) {
	d := fiducialDisk(t)
	// One massive body beyond the grid.
	d.Embryos = append(d.Embryos, &disk.Embryo{A: 50, Mass: 1})
	s := NewStepper(DefaultParams(), nil, nil)

	report, err := s.Advance(d, 1e5, 100)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if report.OuterSink <= 0 {
		t.Errorf("OuterSink = %g, want positive", report.OuterSink)
	}
	n := d.NumAnnuli()
	if report.IncomingFlux[n-1] >= report.ProductionRate {
		t.Errorf("outermost annulus sees %g, want less than production %g",
			report.IncomingFlux[n-1], report.ProductionRate)
	}
}
