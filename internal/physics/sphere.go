package physics

import "math"

// SphereMass returns the mass [g] of a uniform sphere of radius
// radiusCm [cm] and density rho [g/cm^3].
func SphereMass(radiusCm, rho float64) float64 {
	return 4.0 / 3.0 * math.Pi * radiusCm * radiusCm * radiusCm * rho
}

// SphereRadius returns the radius [cm] of a uniform sphere of mass
// massG [g] and density rho [g/cm^3].
func SphereRadius(massG, rho float64) float64 {
	return math.Cbrt(3 * massG / (4 * math.Pi * rho))
}

// BodyRadiusKm returns the radius [km] of a body of massEarth [Earth
// masses] at density rho [g/cm^3].
func BodyRadiusKm(massEarth, rho float64) float64 {
	return SphereRadius(massEarth*EarthMassG, rho) / 1e5
}

// HillRadius returns the Hill radius [m] of a body at a [AU] with
// radius rKm [km] and density rhoPlanet [g/cm^3], orbiting a solar-mass
// star.
func HillRadius(a, rKm, rhoPlanet float64) float64 {
	m := SphereMass(rKm*1e5, rhoPlanet)
	return a * AUMeters * math.Cbrt(m/(3*SolarMassG))
}
