package physics

import "math"

// Regime classifies how a drifting pebble is captured by a body.
type Regime int

const (
	// RegimeSettling: the pebble sediments onto the body against gas drag.
	RegimeSettling Regime = iota
	// RegimeHyperbolic: gravitational focusing of a fast flyby.
	RegimeHyperbolic
	// RegimeThreeBody: capture mediated by the stellar tide.
	RegimeThreeBody
)

func (r Regime) String() string {
	switch r {
	case RegimeSettling:
		return "settling"
	case RegimeHyperbolic:
		return "hyperbolic"
	case RegimeThreeBody:
		return "three body"
	default:
		return "unknown"
	}
}

// solver parameters for the settling-regime cubic.
const (
	settlingBracketHi = 1e5
	settlingTol       = 1e-10
)

// Alpha is the body radius in units of its Hill radius, for a body of
// density rhoPlanet [g/cm^3] at a [AU]. For a uniform sphere the ratio
// depends only on density and distance.
func Alpha(a, rhoPlanet float64) float64 {
	return 5.7e-3 * math.Pow(rhoPlanet/3, -1.0/3.0) / a
}

// Zeta is the headwind speed in Hill units for a body of radius
// rKm [km] and density rhoPlanet [g/cm^3] at a [AU].
func Zeta(a, rKm, rhoPlanet float64) float64 {
	return 12.5 * math.Pow(rhoPlanet, -1.0/3.0) * (HeadwindVelocity(a) / 30) * (100 / rKm) * math.Sqrt(a)
}

// ClassifyRegime selects the capture regime from the nondimensional
// body size alpha, headwind zeta and Stokes number st. The impact
// parameter computation shares this single classification so the
// regime boundaries cannot drift apart.
func ClassifyRegime(alpha, zeta, st float64) Regime {
	stCrit := 12 / (zeta * zeta * zeta)
	switch {
	case st < math.Min(1, stCrit):
		return RegimeSettling
	case st > math.Max(zeta, 1):
		return RegimeThreeBody
	default:
		return RegimeHyperbolic
	}
}

// settlingImpact solves x^3 + x^2*(2zeta/3) - 8*st = 0 for its unique
// positive root and applies the exponential cutoff above the critical
// Stokes number.
func settlingImpact(zeta, st float64) (float64, error) {
	f := func(x float64) float64 {
		return x*x*x + x*x*(2*zeta/3) - 8*st
	}
	x, err := SolvePositiveRoot(f, 0, settlingBracketHi, settlingTol)
	if err != nil {
		return 0, err
	}
	stCrit := 12 / (zeta * zeta * zeta)
	return x * math.Exp(-math.Pow(st/stCrit, 0.65)), nil
}

// ImpactParameterNondim returns the capture impact parameter in Hill
// units for nondimensional body size alpha, headwind zeta and Stokes
// number st. The result never falls below the physical body size alpha.
func ImpactParameterNondim(alpha, zeta, st float64) (float64, error) {
	var b float64
	switch ClassifyRegime(alpha, zeta, st) {
	case RegimeSettling:
		bSet, err := settlingImpact(zeta, st)
		if err != nil {
			return 0, err
		}
		b = bSet
	case RegimeHyperbolic:
		bSet, err := settlingImpact(zeta, st)
		if err != nil {
			return 0, err
		}
		va := zeta * math.Sqrt(1+4*st*st) / (1 + st*st)
		bHyp := alpha * math.Sqrt(1+6/(alpha*va*va))
		b = math.Max(bSet, bHyp)
	case RegimeThreeBody:
		b = 1.7*math.Sqrt(alpha) + 1/st
	}
	return math.Max(b, alpha), nil
}

// ImpactParameter returns the dimensional capture radius [m] of a body
// of radius rKm [km] and density rhoPlanet, for pebbles of size
// pebbleSizeCm and density rhoPeb, at a [AU] and t [yr].
func ImpactParameter(a, t, rKm, pebbleSizeCm, rhoPlanet, rhoPeb float64) (float64, error) {
	st := StokesNumber(pebbleSizeCm, a, t, rhoPeb)
	alpha := Alpha(a, rhoPlanet)
	zeta := Zeta(a, rKm, rhoPlanet)
	b, err := ImpactParameterNondim(alpha, zeta, st)
	if err != nil {
		return 0, err
	}
	return b * HillRadius(a, rKm, rhoPlanet), nil
}
