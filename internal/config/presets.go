package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset is a named, bundled race setup.
type Preset struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	RaceConfig `yaml:",inline"`
}

type presetFile struct {
	Tracks []Preset `yaml:"tracks"`
}

// ParsePresets decodes a presets YAML document and validates every preset.
// Presets are returned sorted by ID.
func ParsePresets(data []byte) ([]Preset, error) {
	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	seen := make(map[string]bool, len(pf.Tracks))
	for _, p := range pf.Tracks {
		if p.ID == "" {
			return nil, fmt.Errorf("config: preset %q has no id", p.Name)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("config: duplicate preset %q", p.ID)
		}
		seen[p.ID] = true
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("config: preset %q: %w", p.ID, err)
		}
	}

	sort.Slice(pf.Tracks, func(i, j int) bool {
		return pf.Tracks[i].ID < pf.Tracks[j].ID
	})
	return pf.Tracks, nil
}

// Presets returns the embedded track presets.
func Presets() ([]Preset, error) {
	return ParsePresets(defaultTracksYAML)
}

// LoadPreset returns the race config of the embedded preset with the given ID.
func LoadPreset(id string) (RaceConfig, error) {
	presets, err := Presets()
	if err != nil {
		return RaceConfig{}, err
	}
	for _, p := range presets {
		if p.ID == id {
			return p.RaceConfig, nil
		}
	}
	return RaceConfig{}, fmt.Errorf("config: %w %q", ErrUnknownTrack, id)
}
