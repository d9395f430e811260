// SPDX-License-Identifier: MIT
package style

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// presetEntry is one preset as written in a preset file. Icons are given as a
// library key or inline SVG markup.
type presetEntry struct {
	Name  string `yaml:"name" toml:"name"`
	Icon  string `yaml:"icon" toml:"icon"`
	Patch `yaml:",inline"`
}

type presetDocument struct {
	Presets []presetEntry `yaml:"presets" toml:"presets"`
}

// LoadPresetFile reads custom presets from a .yaml/.yml or .toml file.
func LoadPresetFile(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	return ParsePresets(data, filepath.Ext(path))
}

// ParsePresets decodes preset definitions; format is a file extension.
func ParsePresets(data []byte, format string) ([]Preset, error) {
	var doc presetDocument
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml presets: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse toml presets: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported preset format: %q", format)
	}

	presets := make([]Preset, 0, len(doc.Presets))
	for i, entry := range doc.Presets {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("preset #%d has no name", i+1)
		}
		patch := entry.Patch
		if entry.Icon != "" {
			icon := IconFromString(entry.Icon)
			patch.Icon = &icon
		}
		presets = append(presets, Preset{Name: entry.Name, Patch: patch})
	}
	return presets, nil
}
