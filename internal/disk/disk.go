// Package disk holds the mutable simulation state: the radial annulus
// grid, the aggregate planetesimal surface density per annulus, and the
// live embryo population.
//
// A Disk exclusively owns its grid, density array and embryo slice. The
// stepper and spawner receive it by pointer and mutate it in place;
// they must not retain references across steps.
package disk

import (
	"fmt"
	"math"
	"sort"

	"pebbledisk/internal/physics"
)

// Embryo is a growing body. Eccentricity is carried but not evolved.
type Embryo struct {
	A    float64 // semi-major axis [AU]
	Mass float64 // [Earth masses]
	Ecc  float64
}

// Bounds is the radial extent of one annulus in AU.
type Bounds struct {
	Inner float64
	Outer float64
}

// Seed surface densities used by New: the aggregate planetesimal
// population and the initial embryo per annulus, both in g/cm^2.
const (
	InitialSurfaceDensity = 1.0
	SeedEmbryoDensity     = 1e-4
)

// Disk is the full simulation state for one protoplanetary disk.
type Disk struct {
	// Annuli holds N+1 logarithmically spaced radii [AU]; the first N
	// double as annulus centers.
	Annuli []float64
	// Bounds pairs Annuli into N (inner, outer) annulus extents.
	Bounds []Bounds
	// SurfaceDensity is the aggregate planetesimal surface density per
	// annulus [g/cm^2].
	SurfaceDensity []float64
	// MaxSurfaceDensity is the threshold above which excess solid mass
	// converts into new embryos.
	MaxSurfaceDensity float64
	// Embryos is the live body population, unordered.
	Embryos []*Embryo
}

// New builds a disk with numAnnuli logarithmically spaced annuli between
// innerAU and outerAU. Each annulus starts at InitialSurfaceDensity and
// is seeded with one embryo at its center, with the mass a uniform
// SeedEmbryoDensity column would hold there.
func New(innerAU, outerAU float64, numAnnuli int, maxSurfaceDensity float64) (*Disk, error) {
	if numAnnuli < 1 {
		return nil, ErrEmptyGrid
	}
	if innerAU <= 0 || innerAU >= outerAU {
		return nil, fmt.Errorf("%w: inner=%g outer=%g", ErrBadEdges, innerAU, outerAU)
	}

	annuli := make([]float64, numAnnuli+1)
	ratio := outerAU / innerAU
	for i := range annuli {
		annuli[i] = innerAU * math.Pow(ratio, float64(i)/float64(numAnnuli))
	}
	annuli[numAnnuli] = outerAU

	bounds := make([]Bounds, numAnnuli)
	sigma := make([]float64, numAnnuli)
	embryos := make([]*Embryo, 0, numAnnuli)
	for i := range bounds {
		bounds[i] = Bounds{Inner: annuli[i], Outer: annuli[i+1]}
		sigma[i] = InitialSurfaceDensity
		embryos = append(embryos, &Embryo{
			A:    annuli[i],
			Mass: SurfaceDensityToMass(SeedEmbryoDensity, bounds[i]),
		})
	}

	return &Disk{
		Annuli:            annuli,
		Bounds:            bounds,
		SurfaceDensity:    sigma,
		MaxSurfaceDensity: maxSurfaceDensity,
		Embryos:           embryos,
	}, nil
}

// NumAnnuli returns the number of annuli N.
func (d *Disk) NumAnnuli() int {
	return len(d.Bounds)
}

// InnerEdge returns the innermost grid radius [AU].
func (d *Disk) InnerEdge() float64 {
	return d.Annuli[0]
}

// OuterEdge returns the outermost grid radius [AU].
func (d *Disk) OuterEdge() float64 {
	return d.Annuli[len(d.Annuli)-1]
}

// Validate fails fast on structural invariant violations.
func (d *Disk) Validate() error {
	n := len(d.Bounds)
	if n == 0 {
		return ErrEmptyGrid
	}
	if len(d.Annuli) != n+1 {
		return fmt.Errorf("%w: %d annuli radii for %d bounds", ErrLengthMismatch, len(d.Annuli), n)
	}
	if len(d.SurfaceDensity) != n {
		return fmt.Errorf("%w: %d surface densities for %d bounds", ErrLengthMismatch, len(d.SurfaceDensity), n)
	}
	for i := 1; i < len(d.Annuli); i++ {
		if d.Annuli[i] <= d.Annuli[i-1] {
			return fmt.Errorf("%w: annuli[%d]=%g <= annuli[%d]=%g", ErrGridOrder, i, d.Annuli[i], i-1, d.Annuli[i-1])
		}
	}
	return nil
}

// BinEmbryos partitions embryo indices into N+1 buckets: bucket i < N
// holds embryos with Annuli[i] <= a < Annuli[i+1], bucket N holds
// embryos orbiting at or beyond the outer edge. Every bucket exists
// even when empty. Embryos inside the inner edge land in bucket 0.
func (d *Disk) BinEmbryos() [][]int {
	n := d.NumAnnuli()
	buckets := make([][]int, n+1)
	for i := range buckets {
		buckets[i] = []int{}
	}

	order := make([]int, len(d.Embryos))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return d.Embryos[order[i]].A < d.Embryos[order[j]].A
	})

	// Single left-to-right sweep: the boundary cursor only advances.
	slot := 0
	for _, idx := range order {
		a := d.Embryos[idx].A
		for slot < n && a >= d.Annuli[slot+1] {
			slot++
		}
		buckets[slot] = append(buckets[slot], idx)
	}
	return buckets
}

// annulusAreaCm2 returns the annulus area in cm^2.
func annulusAreaCm2(b Bounds) float64 {
	inner := b.Inner * physics.AUCm
	outer := b.Outer * physics.AUCm
	return math.Pi * (outer*outer - inner*inner)
}

// MassToSurfaceDensity spreads a mass [Earth masses] over an annulus,
// returning g/cm^2.
func MassToSurfaceDensity(massEarth float64, b Bounds) float64 {
	return massEarth * physics.EarthMassG / annulusAreaCm2(b)
}

// SurfaceDensityToMass converts a surface density [g/cm^2] over an
// annulus back into Earth masses. Exact inverse of MassToSurfaceDensity.
func SurfaceDensityToMass(sigma float64, b Bounds) float64 {
	return sigma * annulusAreaCm2(b) / physics.EarthMassG
}
