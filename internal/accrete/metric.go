package accrete

import "pebbledisk/internal/disk"

// Metric observes the disk after each step and reduces it to a single
// number reported at the end of a run.
type Metric interface {
	Name() string
	Observe(d *disk.Disk, r *StepReport)
	Value() float64
	Reset()
}
