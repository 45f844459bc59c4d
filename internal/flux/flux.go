// Package flux models the pebble mass budget of the disk: the global
// pebble production rate at the growth front, the dominant pebble size,
// and the local pebble surface density implied by an inbound mass flux.
package flux

import (
	"math"

	"pebbledisk/internal/diag"
	"pebbledisk/internal/physics"
)

const (
	// DefaultBeta0 is the gas surface density normalization [g/cm^2].
	DefaultBeta0 = 500.0
	// DefaultStarMass is the stellar mass in solar masses.
	DefaultStarMass = 1.0
	// DefaultDustToGas is the disk metallicity.
	DefaultDustToGas = 0.01

	// MinValidTime is the floor [yr] below which the production-rate
	// power law is not considered valid. Earlier times are clamped,
	// not rejected.
	MinValidTime = 1e4

	// PebbleDensity is the assumed pebble material density [g/cm^3].
	PebbleDensity = 1.0

	// coagulationEfficiency enters the drift-limited pebble size
	// estimate.
	coagulationEfficiency = 0.5
)

var logger diag.Logger = diag.NewNoOp()

// SetLogger installs the diagnostic sink for model-validity notices.
// The zero value discards them.
func SetLogger(l diag.Logger) {
	if l == nil {
		l = diag.NewNoOp()
	}
	logger = l
}

// ProductionRate returns the disk-wide pebble production rate
// [Earth masses/yr] at time t [yr] with the default disk parameters.
func ProductionRate(t float64) float64 {
	return ProductionRateWith(t, DefaultBeta0, DefaultStarMass, DefaultDustToGas)
}

// ProductionRateWith returns the pebble production rate [Earth
// masses/yr] at t [yr] for surface density normalization beta0, stellar
// mass starMass [solar masses] and dust-to-gas ratio z. Times below
// MinValidTime are clamped with a logged notice; this is a model
// validity floor, not a fault.
func ProductionRateWith(t, beta0, starMass, z float64) float64 {
	if t < MinValidTime {
		logger.Infof("flux: production rate time %g yr below validity floor, clamped to %g yr", t, MinValidTime)
		t = MinValidTime
	}
	tMyr := t / 1e6
	return 9.5e-5 * (beta0 / 500) * math.Pow(starMass, 2.0/3.0) * (z / 0.01) *
		math.Pow(tMyr, -1.0/3.0) * math.Exp(-t/physics.DiskDecayYears)
}

// DominantPebbleSize estimates the size [cm] of the pebbles dominating
// the mass flux at a [AU] and t [yr], from the drift-limited Stokes
// number and the gas column. The growth-front surface density estimate
// feeding it is internal; callers cap the result against the size they
// actually accrete.
func DominantPebbleSize(a, t float64) float64 {
	fluxCgs := ProductionRate(t) * physics.EarthMassG / physics.SecondsPerYear
	sigmaGas := physics.GasSurfaceDensity(a, t)
	vk := physics.KeplerVelocity(a) * 100

	sigmaDrift := math.Sqrt(2 * fluxCgs * sigmaGas /
		(math.Sqrt(3) * math.Pi * coagulationEfficiency * a * physics.AUCm * vk))
	stDom := math.Sqrt(3) / 8 * (coagulationEfficiency / physics.Eta(a)) * sigmaDrift / sigmaGas

	return stDom * sigmaGas / (2 * PebbleDensity)
}

// PebbleSurfaceDensity inverts an inbound pebble mass flux
// [Earth masses/yr] into the local pebble surface density [g/cm^2] at
// a [AU] and t [yr], assuming the pebbles drift at their equilibrium
// radial speed. The pebble size is the dominant size capped at
// sizeCapCm; rhoPeb is the pebble material density.
//
// A negative flux yields a negative surface density: upstream depletion
// is deliberately not clamped here (see Advance).
func PebbleSurfaceDensity(a, t, sizeCapCm, rhoPeb, pebbleFlux float64) float64 {
	size := math.Min(DominantPebbleSize(a, t), sizeCapCm)
	st := physics.StokesNumber(size, a, t, rhoPeb)
	headwindCgs := physics.HeadwindVelocity(a) * 100
	fluxCgs := pebbleFlux * physics.EarthMassG / physics.SecondsPerYear

	return fluxCgs / (4 * math.Pi * a * physics.AUCm * st * headwindCgs)
}
