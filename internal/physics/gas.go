package physics

import "math"

// KeplerVelocity returns the circular Keplerian velocity at a [AU] in m/s.
func KeplerVelocity(a float64) float64 {
	return keplerVelocityCgs(a) / 100
}

// keplerVelocityCgs returns the Keplerian velocity in cm/s.
func keplerVelocityCgs(a float64) float64 {
	return math.Sqrt(GravConstCgs * SolarMassG / (a * AUCm))
}

// OrbitalFrequency returns the orbital angular frequency at a [AU] in 1/s.
func OrbitalFrequency(a float64) float64 {
	return keplerVelocityCgs(a) / (a * AUCm)
}

// GasSurfaceDensity returns the gas column density at a [AU] and t [yr]
// in g/cm^2. The disk mass decays exponentially on DiskDecayYears.
func GasSurfaceDensity(a, t float64) float64 {
	return Beta0 * math.Exp(-t/DiskDecayYears) / a
}

// ScaleHeight returns the gas scale height at a [AU] in cm.
func ScaleHeight(a float64) float64 {
	return AspectCoeff * math.Pow(a, 1.25) * AUCm
}

// GasDensity returns the midplane gas density at a [AU] and t [yr] in
// g/cm^3, spreading the column over twice the scale height.
func GasDensity(a, t float64) float64 {
	return GasSurfaceDensity(a, t) / (2 * ScaleHeight(a))
}

// SoundSpeed returns the local sound speed at a [AU] in cm/s.
func SoundSpeed(a float64) float64 {
	return AspectCoeff * math.Pow(a, 0.25) * keplerVelocityCgs(a)
}

// Eta is the dimensionless sub-Keplerian lag of the gas at a [AU].
func Eta(a float64) float64 {
	return HeadwindCoeff * math.Sqrt(a)
}

// HeadwindVelocity returns the gas headwind felt by a circular orbiter
// at a [AU] in m/s.
func HeadwindVelocity(a float64) float64 {
	return Eta(a) * KeplerVelocity(a)
}

// MeanFreePath returns the gas molecular mean free path in cm for a
// midplane gas density rhoG [g/cm^3].
func MeanFreePath(rhoG float64) float64 {
	return 2e-9 / rhoG
}
