package physics

// Drag law applied to a particle, selected from its size relative to
// the gas mean free path and the headwind speed.
type DragLaw int

const (
	DragEpstein DragLaw = iota
	DragStokes
	DragQuadratic
)

func (d DragLaw) String() string {
	switch d {
	case DragEpstein:
		return "epstein"
	case DragStokes:
		return "stokes"
	case DragQuadratic:
		return "quadratic"
	default:
		return "unknown"
	}
}

// EpsteinTransitionSize returns the particle size [cm] below which the
// Epstein free-molecular drag law applies, for a mean free path lambda [cm].
func EpsteinTransitionSize(lambda float64) float64 {
	return 9 * lambda / 4
}

// quadraticTransitionSize is the size [cm] at which the Stokes and
// quadratic stopping times coincide, so the piecewise law stays
// continuous across the switch.
func quadraticTransitionSize(soundSpeed, lambda, headwindCgs float64) float64 {
	return 13.5 * soundSpeed * lambda / headwindCgs
}

// SelectDragLaw classifies a particle of sizeCm at a [AU], t [yr].
func SelectDragLaw(sizeCm, a, t float64) DragLaw {
	rhoG := GasDensity(a, t)
	lambda := MeanFreePath(rhoG)
	headwindCgs := HeadwindVelocity(a) * 100

	switch {
	case sizeCm < EpsteinTransitionSize(lambda):
		return DragEpstein
	case sizeCm < quadraticTransitionSize(SoundSpeed(a), lambda, headwindCgs):
		return DragStokes
	default:
		return DragQuadratic
	}
}

// StokesNumber returns the dimensionless stopping time of a particle of
// sizeCm [cm] and material density rhoParticle [g/cm^3] at a [AU] and
// t [yr]: the drag stopping time times the orbital angular frequency.
func StokesNumber(sizeCm, a, t, rhoParticle float64) float64 {
	rhoG := GasDensity(a, t)
	c := SoundSpeed(a)
	lambda := MeanFreePath(rhoG)
	headwindCgs := HeadwindVelocity(a) * 100

	var ts float64
	switch {
	case sizeCm < EpsteinTransitionSize(lambda):
		ts = rhoParticle * sizeCm / (rhoG * c)
	case sizeCm < quadraticTransitionSize(c, lambda, headwindCgs):
		ts = 4 * rhoParticle * sizeCm * sizeCm / (9 * rhoG * c * lambda)
	default:
		ts = 6 * rhoParticle * sizeCm / (rhoG * headwindCgs)
	}

	return ts * OrbitalFrequency(a)
}
