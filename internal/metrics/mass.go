// Package metrics provides per-run observables computed over the disk
// as it steps.
package metrics

import (
	"pebbledisk/internal/accrete"
	"pebbledisk/internal/disk"
)

// TotalEmbryoMass tracks the combined embryo mass [Earth masses] at the
// last observed step.
type TotalEmbryoMass struct {
	name  string
	total float64
}

func NewTotalEmbryoMass() *TotalEmbryoMass {
	return &TotalEmbryoMass{name: "total_embryo_mass"}
}

func (m *TotalEmbryoMass) Name() string { return m.name }

func (m *TotalEmbryoMass) Observe(d *disk.Disk, r *accrete.StepReport) {
	total := 0.0
	for _, e := range d.Embryos {
		total += e.Mass
	}
	m.total = total
}

func (m *TotalEmbryoMass) Value() float64 { return m.total }

func (m *TotalEmbryoMass) Reset() { m.total = 0 }
