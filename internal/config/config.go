package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 0.02
	DefaultDuration  = 10.0
	DefaultWidth     = 10.0
	DefaultHeight    = 8.0
	DefaultBodies    = 12
	DefaultRadiusMin = 0.2
	DefaultRadiusMax = 0.5
	DefaultMaxSpeed  = 2.0
)

type Config struct {
	Scenario string       `yaml:"scenario"`
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	Seed     int64        `yaml:"seed"`
	World    WorldConfig  `yaml:"world"`
	Bodies   BodiesConfig `yaml:"bodies"`
}

type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BodiesConfig struct {
	Count     int     `yaml:"count"`
	RadiusMin float64 `yaml:"radius_min"`
	RadiusMax float64 `yaml:"radius_max"`
	MaxSpeed  float64 `yaml:"max_speed"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "random",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		World: WorldConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Bodies: BodiesConfig{
			Count:     DefaultBodies,
			RadiusMin: DefaultRadiusMin,
			RadiusMax: DefaultRadiusMax,
			MaxSpeed:  DefaultMaxSpeed,
		},
	}
}

// Load reads a YAML config, overlaying it on the defaults so partial
// files work.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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
