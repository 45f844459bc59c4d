package config

var Presets = map[string]*Config{
	"fiducial": {
		Disk: DiskConfig{InnerAU: 0.1, OuterAU: 30, Annuli: 20, MaxSurfaceDensity: 5},
		Sim:  SimConfig{StartTime: 1e5, Duration: 1e5, Dt: 100},
		Physics: PhysicsConfig{
			PebbleSizeCm: 1, PlanetesimalRadiusKm: 100,
			AlphaTurbulence: 1e-3, PlanetDensity: 3, PebbleDensity: 1,
		},
	},
	"compact": {
		Disk: DiskConfig{InnerAU: 0.05, OuterAU: 5, Annuli: 30, MaxSurfaceDensity: 10},
		Sim:  SimConfig{StartTime: 5e4, Duration: 5e5, Dt: 50},
		Physics: PhysicsConfig{
			PebbleSizeCm: 1, PlanetesimalRadiusKm: 100,
			AlphaTurbulence: 1e-3, PlanetDensity: 3, PebbleDensity: 1,
		},
	},
	"extended": {
		Disk: DiskConfig{InnerAU: 0.5, OuterAU: 100, Annuli: 40, MaxSurfaceDensity: 2},
		Sim:  SimConfig{StartTime: 1e5, Duration: 1e6, Dt: 500},
		Physics: PhysicsConfig{
			PebbleSizeCm: 1, PlanetesimalRadiusKm: 100,
			AlphaTurbulence: 1e-4, PlanetDensity: 3, PebbleDensity: 1,
		},
	},
	"quiet": {
		Disk: DiskConfig{InnerAU: 0.1, OuterAU: 30, Annuli: 20, MaxSurfaceDensity: 5},
		Sim:  SimConfig{StartTime: 1e6, Duration: 1e6, Dt: 1000},
		Physics: PhysicsConfig{
			PebbleSizeCm: 1, PlanetesimalRadiusKm: 100,
			AlphaTurbulence: 1e-5, PlanetDensity: 3, PebbleDensity: 1,
		},
	},
}

// GetPreset returns the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
