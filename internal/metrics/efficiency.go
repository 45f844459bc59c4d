package metrics

import (
	"pebbledisk/internal/accrete"
	"pebbledisk/internal/disk"
)

// AccretionEfficiency is the fraction of produced pebble mass consumed
// by the disk over the observed steps. Values above 1 indicate the
// over-demand condition the stepper warns about.
type AccretionEfficiency struct {
	name     string
	produced float64
	consumed float64
}

func NewAccretionEfficiency() *AccretionEfficiency {
	return &AccretionEfficiency{name: "accretion_efficiency"}
}

func (m *AccretionEfficiency) Name() string { return m.name }

func (m *AccretionEfficiency) Observe(d *disk.Disk, r *accrete.StepReport) {
	m.produced += r.ProductionRate * r.Dt
	m.consumed += (r.ProductionRate - r.FinalFlux) * r.Dt
}

func (m *AccretionEfficiency) Value() float64 {
	if m.produced == 0 {
		return 0
	}
	return m.consumed / m.produced
}

func (m *AccretionEfficiency) Reset() {
	m.produced = 0
	m.consumed = 0
}

// SpawnCount sums the embryos created across observed steps.
type SpawnCount struct {
	name  string
	count int
}

func NewSpawnCount() *SpawnCount {
	return &SpawnCount{name: "spawned_embryos"}
}

func (m *SpawnCount) Name() string { return m.name }

func (m *SpawnCount) Observe(d *disk.Disk, r *accrete.StepReport) {
	m.count += r.Spawned
}

func (m *SpawnCount) Value() float64 { return float64(m.count) }

func (m *SpawnCount) Reset() { m.count = 0 }
