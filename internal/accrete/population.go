package accrete

import (
	"fmt"

	"pebbledisk/internal/physics"
)

// Sizing selects how a planetesimal population of known total mass is
// resolved into individual bodies. Exactly one field must be set.
type Sizing struct {
	// BodyCount splits the total mass into this many equal bodies.
	BodyCount int
	// BodyRadiusKm treats the population as bodies of this radius.
	BodyRadiusKm float64
}

// TotalAccretionRate returns the combined pebble accretion rate
// [Earth masses/yr] of a planetesimal population of totalMass [Earth
// masses] at a [AU] and t [yr], exposed to an inbound pebbleFlux.
// The population accretes as count-many copies of one representative
// body.
func TotalAccretionRate(totalMass, a, t, pebbleFlux float64, sizing Sizing, p Params, sigmaPeb physics.PebbleDensityFunc) (float64, error) {
	hasCount := sizing.BodyCount > 0
	hasRadius := sizing.BodyRadiusKm > 0
	if hasCount == hasRadius {
		return 0, fmt.Errorf("%w: count=%d radius=%g km", ErrSizing, sizing.BodyCount, sizing.BodyRadiusKm)
	}
	if totalMass <= 0 {
		return 0, nil
	}

	var rKm, count float64
	if hasRadius {
		rKm = sizing.BodyRadiusKm
		bodyMass := physics.SphereMass(rKm*1e5, p.PlanetDensity) / physics.EarthMassG
		count = totalMass / bodyMass
	} else {
		count = float64(sizing.BodyCount)
		rKm = physics.BodyRadiusKm(totalMass/count, p.PlanetDensity)
	}

	rate, err := physics.GrowthRate(a, t, rKm, p.PebbleSizeCm, 0, p.AlphaTurbulence,
		p.PlanetDensity, p.PebbleDensity, pebbleFlux, sigmaPeb)
	if err != nil {
		return 0, err
	}
	return count * rate, nil
}
