package accrete

// Params are the physical knobs of the accretion step.
type Params struct {
	// PebbleSizeCm is the pebble size used for embryo growth rates.
	PebbleSizeCm float64
	// PlanetesimalRadiusKm is the reference body radius representing
	// the aggregate planetesimal population of an annulus.
	PlanetesimalRadiusKm float64
	// AlphaTurbulence is the disk turbulence strength.
	AlphaTurbulence float64
	// PlanetDensity is the embryo/planetesimal material density [g/cm^3].
	PlanetDensity float64
	// PebbleDensity is the pebble material density [g/cm^3].
	PebbleDensity float64
}

// DefaultParams returns the conventional parameter set: centimeter
// pebbles, 100 km reference planetesimals, rocky body density.
func DefaultParams() Params {
	return Params{
		PebbleSizeCm:         1.0,
		PlanetesimalRadiusKm: 100.0,
		AlphaTurbulence:      1e-3,
		PlanetDensity:        3.0,
		PebbleDensity:        1.0,
	}
}
