package physics

// Physical constants and unit conversions. Disk-local quantities are
// computed in cgs; conversions below keep the cross-package units (AU,
// years, Earth masses, m/s) consistent.
const (
	// AUCm is one astronomical unit in centimeters.
	AUCm = 1.495978707e13
	// AUMeters is one astronomical unit in meters.
	AUMeters = 1.495978707e11

	// EarthMassG is one Earth mass in grams.
	EarthMassG = 5.9722e27
	// SolarMassG is one solar mass in grams.
	SolarMassG = 1.98892e33

	// GravConstCgs is the gravitational constant in cm^3 g^-1 s^-2.
	GravConstCgs = 6.674e-8

	// SecondsPerYear converts years to seconds.
	SecondsPerYear = 3.156e7

	// DiskDecayYears is the e-folding time of the gas disk mass.
	DiskDecayYears = 3e6

	// Beta0 is the gas surface density normalization in g/cm^2 at 1 AU
	// for a freshly formed disk.
	Beta0 = 500.0

	// AspectCoeff sets the disk aspect ratio: H/a = AspectCoeff * a^0.25.
	AspectCoeff = 0.033

	// HeadwindCoeff sets the sub-Keplerian gas lag: eta = HeadwindCoeff * sqrt(a).
	HeadwindCoeff = 0.0015
)
