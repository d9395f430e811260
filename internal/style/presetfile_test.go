// SPDX-License-Identifier: MIT
package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePresetsYAML(t *testing.T) {
	doc := `
presets:
  - name: brand
    text: Join
    bgType: solid
    bg1: "#123456"
    radius: 4
    pill: true
    icon: star
  - name: custom-icon
    icon: "<svg><rect/></svg>"
`
	presets, err := ParsePresets([]byte(doc), ".yaml")
	require.NoError(t, err)
	require.Len(t, presets, 2)

	brand := presets[0]
	assert.Equal(t, "brand", brand.Name)
	out := brand.Patch.Apply(Default())
	assert.Equal(t, "Join", out.Text)
	assert.Equal(t, BackgroundSolid, out.BgType)
	assert.Equal(t, "#123456", out.Bg1)
	assert.Equal(t, 4.0, out.Radius)
	assert.True(t, out.Pill)
	assert.Equal(t, LibraryIcon("star"), out.Icon)

	assert.Equal(t, CustomIcon("<svg><rect/></svg>"), *presets[1].Patch.Icon)
}

func TestParsePresetsTOML(t *testing.T) {
	doc := `
[[presets]]
name = "mono"
bgType = "solid"
bg1 = "#000000"
textColor = "#ffffff"
radius = 2.0
animation = "glow"
`
	presets, err := ParsePresets([]byte(doc), "toml")
	require.NoError(t, err)
	require.Len(t, presets, 1)

	out := presets[0].Patch.Apply(Default())
	assert.Equal(t, "#000000", out.Bg1)
	assert.Equal(t, AnimationGlow, out.Animation)
	assert.Equal(t, 2.0, out.Radius)
	assert.Nil(t, presets[0].Patch.Icon)
}

func TestParsePresetsRejectsNameless(t *testing.T) {
	_, err := ParsePresets([]byte("presets:\n  - bg1: \"#fff\"\n"), "yml")
	assert.Error(t, err)
}

func TestParsePresetsUnknownFormat(t *testing.T) {
	_, err := ParsePresets([]byte("{}"), ".json")
	assert.Error(t, err)
}

func TestLoadPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - name: x\n    text: X\n"), 0644))

	presets, err := LoadPresetFile(path)
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, "X", *presets[0].Patch.Text)

	_, err = LoadPresetFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
