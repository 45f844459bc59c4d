package physics

import "math"

// PebbleDensityFunc supplies the local pebble surface density [g/cm^2]
// for a given inbound pebble mass flux [Earth masses/yr]. The flux
// model provides the production implementation; tests can stub it.
type PebbleDensityFunc func(a, t, sizeCapCm, rhoPeb, pebbleFlux float64) float64

// GrowthRate returns the pebble accretion rate [Earth masses/yr] of a
// body of radius rKm [km] and density rhoPlanet at a [AU] and t [yr].
//
// The capture cross section comes from ImpactParameter. When the
// capture radius is small compared to the pebble layer thickness the
// accretion is three-dimensional (pi b^2 rho v); when the body eats
// through the whole layer it degrades to the two-dimensional form
// (2 b sigma v). The pebble layer thins relative to the gas as
// sqrt(alphaTurb/(alphaTurb+St)).
func GrowthRate(a, t, rKm, pebbleSizeCm, ecc, alphaTurb, rhoPlanet, rhoPeb, pebbleFlux float64, sigmaPeb PebbleDensityFunc) (float64, error) {
	b, err := ImpactParameter(a, t, rKm, pebbleSizeCm, rhoPlanet, rhoPeb)
	if err != nil {
		return 0, err
	}
	vRel := RelativeVelocity(a, b, pebbleSizeCm, t, alphaTurb, ecc, rhoPeb)

	st := StokesNumber(pebbleSizeCm, a, t, rhoPeb)
	hSolid := ScaleHeight(a) * math.Sqrt(alphaTurb/(alphaTurb+st))

	sigma := sigmaPeb(a, t, pebbleSizeCm, rhoPeb, pebbleFlux)

	bCm := b * 100
	vRelCgs := vRel * 100

	var mdot float64 // g/s
	if bCm < hSolid {
		rhoLocal := sigma / (2 * hSolid)
		mdot = math.Pi * bCm * bCm * rhoLocal * vRelCgs
	} else {
		mdot = 2 * bCm * sigma * vRelCgs
	}

	return mdot * SecondsPerYear / EarthMassG, nil
}
