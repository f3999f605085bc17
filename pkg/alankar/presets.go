package alankar

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/james-see/alankar/pkg/swaram"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by LookupPreset for a name with no preset
var ErrUnknownPreset = errors.New("unknown preset")

//go:embed presets.yaml
var presetsYAML []byte

// Preset is a named scale
type Preset struct {
	Name        string `yaml:"name" json:"name"`
	Scale       string `yaml:"scale" json:"scale"`
	Description string `yaml:"description" json:"description"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// ParsePresets decodes a YAML preset list and checks every scale
func ParsePresets(data []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	seen := make(map[string]bool, len(f.Presets))
	for _, p := range f.Presets {
		key := strings.ToLower(p.Name)
		if key == "" {
			return nil, fmt.Errorf("preset with scale %q has no name", p.Scale)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[key] = true
		if _, err := swaram.NewScale(p.Scale); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return f.Presets, nil
}

// Presets returns the built-in raag presets
func Presets() []Preset {
	presets, err := ParsePresets(presetsYAML)
	if err != nil {
		panic(err)
	}
	return presets
}

// LookupPreset finds a built-in preset by case-insensitive name
func LookupPreset(name string) (Preset, error) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
}
