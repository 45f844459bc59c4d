package accrete

import (
	"math"

	"pebbledisk/internal/disk"
)

const (
	// SpawnThreshold is the accumulated excess mass [Earth masses]
	// above which new embryos are created.
	SpawnThreshold = 1e-2
	// SpawnQuantum sets how many bodies the accumulated mass is split
	// into: ceil(mass / SpawnQuantum) equal-mass embryos.
	SpawnQuantum = 1e-1
)

// Spawn scans annuli innermost to outermost, accumulating solid surface
// density in excess of the disk threshold. Whenever the accumulated
// excess mass exceeds SpawnThreshold it is converted into new embryos
// of equal mass, placed uniformly at random between the anchor (the
// outer bound of the annulus that ended the previous spawn, initially
// the disk inner edge) and the current annulus's outer bound. The
// contributing annuli are drained back to the threshold. Returns the
// number of embryos created.
func (s *Stepper) Spawn(d *disk.Disk) int {
	anchor := d.InnerEdge()
	accumulated := 0.0
	var contributors []int
	spawned := 0

	for i := 0; i < d.NumAnnuli(); i++ {
		if d.SurfaceDensity[i] > d.MaxSurfaceDensity {
			excess := d.SurfaceDensity[i] - d.MaxSurfaceDensity
			accumulated += disk.SurfaceDensityToMass(excess, d.Bounds[i])
			contributors = append(contributors, i)
		}

		if accumulated > SpawnThreshold {
			numBodies := int(math.Ceil(accumulated / SpawnQuantum))
			each := accumulated / float64(numBodies)
			outer := d.Bounds[i].Outer
			for k := 0; k < numBodies; k++ {
				a := anchor + s.rng.Float64()*(outer-anchor)
				d.Embryos = append(d.Embryos, &disk.Embryo{A: a, Mass: each})
			}
			spawned += numBodies

			for _, j := range contributors {
				d.SurfaceDensity[j] = d.MaxSurfaceDensity
			}
			accumulated = 0
			contributors = contributors[:0]
			anchor = outer
		}
	}
	return spawned
}
