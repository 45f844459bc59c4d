package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInnerAU     = 0.1
	DefaultOuterAU     = 30.0
	DefaultAnnuli      = 20
	DefaultMaxSigma    = 5.0
	DefaultStartTime   = 1e5
	DefaultDuration    = 1e5
	DefaultDt          = 100.0
	DefaultPebbleSize  = 1.0
	DefaultPlanRadius  = 100.0
	DefaultAlphaTurb   = 1e-3
	DefaultPlanDensity = 3.0
	DefaultPebDensity  = 1.0
)

type Config struct {
	Disk    DiskConfig    `yaml:"disk"`
	Sim     SimConfig     `yaml:"sim"`
	Physics PhysicsConfig `yaml:"physics"`
}

type DiskConfig struct {
	InnerAU           float64 `yaml:"inner_au"`
	OuterAU           float64 `yaml:"outer_au"`
	Annuli            int     `yaml:"annuli"`
	MaxSurfaceDensity float64 `yaml:"max_surface_density"`
}

type SimConfig struct {
	StartTime float64 `yaml:"start_time"`
	Duration  float64 `yaml:"duration"`
	Dt        float64 `yaml:"dt"`
	Seed      int64   `yaml:"seed"`
}

type PhysicsConfig struct {
	PebbleSizeCm         float64 `yaml:"pebble_size_cm"`
	PlanetesimalRadiusKm float64 `yaml:"planetesimal_radius_km"`
	AlphaTurbulence      float64 `yaml:"alpha_turbulence"`
	PlanetDensity        float64 `yaml:"planet_density"`
	PebbleDensity        float64 `yaml:"pebble_density"`
}

func DefaultConfig() *Config {
	return &Config{
		Disk: DiskConfig{
			InnerAU:           DefaultInnerAU,
			OuterAU:           DefaultOuterAU,
			Annuli:            DefaultAnnuli,
			MaxSurfaceDensity: DefaultMaxSigma,
		},
		Sim: SimConfig{
			StartTime: DefaultStartTime,
			Duration:  DefaultDuration,
			Dt:        DefaultDt,
		},
		Physics: PhysicsConfig{
			PebbleSizeCm:         DefaultPebbleSize,
			PlanetesimalRadiusKm: DefaultPlanRadius,
			AlphaTurbulence:      DefaultAlphaTurb,
			PlanetDensity:        DefaultPlanDensity,
			PebbleDensity:        DefaultPebDensity,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Disk.InnerAU <= 0 || c.Disk.InnerAU >= c.Disk.OuterAU {
		return fmt.Errorf("disk edges must satisfy 0 < inner < outer, got %g and %g", c.Disk.InnerAU, c.Disk.OuterAU)
	}
	if c.Disk.Annuli < 1 {
		return fmt.Errorf("annuli must be positive, got %d", c.Disk.Annuli)
	}
	if c.Sim.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Sim.Dt)
	}
	if c.Sim.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", c.Sim.Duration)
	}
	return nil
}
