package config

import "sort"

var Presets = map[string]*Config{
	"demo": {
		Scenario: "random", Dt: 0.02, Duration: 12.0,
		World:  WorldConfig{Width: 10, Height: 8},
		Bodies: BodiesConfig{Count: 12, RadiusMin: 0.2, RadiusMax: 0.5, MaxSpeed: 2.0},
	},
	"gas": {
		Scenario: "random", Dt: 0.02, Duration: 30.0,
		World:  WorldConfig{Width: 16, Height: 9},
		Bodies: BodiesConfig{Count: 40, RadiusMin: 0.12, RadiusMax: 0.2, MaxSpeed: 3.5},
	},
	"billiards": {
		Scenario: "billiards", Dt: 0.02, Duration: 15.0,
		World:  WorldConfig{Width: 14, Height: 7},
		Bodies: BodiesConfig{Count: 11, RadiusMin: 0.3, RadiusMax: 0.3, MaxSpeed: 6.0},
	},
	"headon": {
		Scenario: "headon", Dt: 0.05, Duration: 6.0,
		World:  WorldConfig{Width: 10, Height: 8},
		Bodies: BodiesConfig{Count: 2, RadiusMin: 0.5, RadiusMax: 0.5, MaxSpeed: 1.0},
	},
	"shower": {
		Scenario: "shower", Dt: 0.02, Duration: 20.0,
		World:  WorldConfig{Width: 12, Height: 10},
		Bodies: BodiesConfig{Count: 15, RadiusMin: 0.15, RadiusMax: 0.25, MaxSpeed: 3.0},
	},
	"crowded": {
		Scenario: "lattice", Dt: 0.02, Duration: 25.0,
		World:  WorldConfig{Width: 12, Height: 9},
		Bodies: BodiesConfig{Count: 30, RadiusMin: 0.35, RadiusMax: 0.45, MaxSpeed: 1.5},
	},
}

// GetPreset returns a copy of the named preset, or nil if there is no
// such preset. Callers may mutate the copy freely.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
