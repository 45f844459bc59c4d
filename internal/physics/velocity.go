package physics

import "math"

// RelativeVelocity returns the encounter speed [m/s] between a body and
// pebbles of pebbleSizeCm [cm], density rhoPeb [g/cm^3] at a [AU] and
// t [yr]. bMeters is the capture impact parameter, alphaTurb the
// turbulence strength and ecc the body's eccentricity. The result is
// the largest of the turbulent, radial-drift, eccentric and Keplerian
// shear contributions.
func RelativeVelocity(a, bMeters, pebbleSizeCm, t, alphaTurb, ecc, rhoPeb float64) float64 {
	st := StokesNumber(pebbleSizeCm, a, t, rhoPeb)
	vk := KeplerVelocity(a)
	cMs := SoundSpeed(a) / 100

	vTurb := math.Sqrt(alphaTurb * cMs * cMs * math.Min(2*st, 1/(1+st)))
	vDrift := Eta(a) * vk
	vEcc := ecc * vk
	vShear := bMeters * OrbitalFrequency(a)

	return math.Max(math.Max(vTurb, vDrift), math.Max(vEcc, vShear))
}
