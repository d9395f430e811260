// SPDX-License-Identifier: MIT
package style

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModel(t *testing.T) {
	m := Default()

	assert.Equal(t, "Like", m.Text)
	assert.Equal(t, IconLeft, m.IconPos)
	assert.Equal(t, BackgroundGradient, m.BgType)
	assert.Equal(t, "#06b6d4", m.Bg1)
	assert.Equal(t, "#3b82f6", m.Bg2)
	assert.Equal(t, 135.0, m.Angle)
	assert.Equal(t, 12.0, m.Radius)
	assert.Equal(t, AnimationNone, m.Animation)
	assert.True(t, m.Icon.IsEmpty())
	assert.Equal(t, Default(), m, "Default must be deterministic")
}

func TestResolveFallbacks(t *testing.T) {
	m := Default()
	m.IconPos = "diagonal"
	m.BgType = "plaid"
	m.WidthType = "huge"
	m.Animation = "wobble"
	m.PadX = -4
	m.FixedWidth = 0
	m.AnimSpeed = -1
	m.AnimIntensity = 0
	m.HoverShade = 250

	r := m.Resolve()

	assert.Equal(t, IconLeft, r.IconPos)
	assert.Equal(t, BackgroundTransparent, r.BgType)
	assert.Equal(t, WidthAuto, r.WidthType)
	assert.Equal(t, AnimationNone, r.Animation)
	assert.Equal(t, 0.0, r.PadX)
	assert.Equal(t, 160.0, r.FixedWidth)
	assert.Equal(t, 300.0, r.AnimSpeed)
	assert.Equal(t, 3, r.AnimIntensity)
	assert.Equal(t, 100.0, r.HoverShade)

	// the stored model is not touched
	assert.Equal(t, IconPosition("diagonal"), m.IconPos)
	assert.Equal(t, -4.0, m.PadX)
}

func TestPillDoesNotMutateRadius(t *testing.T) {
	m := Default()
	m.Pill = true

	assert.Equal(t, float64(PillRadius), m.EffectiveRadius())
	assert.Equal(t, 12.0, m.Radius)
}

func TestPatchApplyOnlySetFields(t *testing.T) {
	m := Default()
	p := Patch{Text: Ptr("Go"), Pill: Ptr(true), Radius: Ptr(0.0)}

	out := p.Apply(m)

	assert.Equal(t, "Go", out.Text)
	assert.True(t, out.Pill)
	assert.Equal(t, 0.0, out.Radius)
	assert.Equal(t, m.Bg1, out.Bg1)
	assert.Equal(t, []string{"pill", "radius", "text"}, p.Fields())
	assert.False(t, p.IsEmpty())
	assert.True(t, Patch{}.IsEmpty())
}

func TestPatchThenPrecedence(t *testing.T) {
	first := Patch{Bg1: Ptr("#111111"), Text: Ptr("a")}
	second := Patch{Bg1: Ptr("#222222")}

	merged := first.Then(second)

	require.NotNil(t, merged.Bg1)
	assert.Equal(t, "#222222", *merged.Bg1)
	assert.Equal(t, "a", *merged.Text)
}

func TestDiffRoundTrip(t *testing.T) {
	base := Default()
	m := base
	m.Text = "Buy"
	m.Icon = LibraryIcon("star")
	m.AnimIntensity = 7

	p := Diff(base, m)

	assert.Equal(t, []string{"animIntensity", "icon", "text"}, p.Fields())
	assert.Equal(t, m, p.Apply(base))
	assert.True(t, Diff(base, base).IsEmpty())
}

func TestApplyPresetDanger(t *testing.T) {
	m := Default()
	m.Text = "keep me?"
	m.FontSize = 22

	out, err := ApplyPreset(m, "danger")
	require.NoError(t, err)

	assert.Equal(t, BackgroundSolid, out.BgType)
	assert.Equal(t, "#ef4444", out.Bg1)
	assert.Equal(t, "#fff", out.TextColor)
	assert.Equal(t, AnimationShake, out.Animation)
	assert.Equal(t, "Delete", out.Text)
	assert.Equal(t, 22.0, out.FontSize, "unlisted fields keep their prior value")
	assert.Equal(t, LibraryIcon("like"), out.Icon)
}

func TestApplyPresetUnknown(t *testing.T) {
	m := Default()

	out, err := ApplyPreset(m, "dangr")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
	assert.Contains(t, err.Error(), "danger")
	assert.Equal(t, m, out)
}

func TestBuiltinPresetOrder(t *testing.T) {
	names := NewCatalog().Names()
	assert.Equal(t, []string{"like", "neon", "glass", "danger", "ghost", "neumorphic"}, names)
	assert.Len(t, Presets(), 6)
}

func TestCatalogExtraOverridesBuiltin(t *testing.T) {
	c := NewCatalog(
		Preset{Name: "Danger", Patch: Patch{Bg1: Ptr("#000000")}},
		Preset{Name: "brand", Patch: Patch{Bg1: Ptr("#123456")}},
	)

	assert.Equal(t, []string{"like", "neon", "glass", "danger", "ghost", "neumorphic", "brand"}, c.Names())

	out, err := c.Apply(Default(), "danger")
	require.NoError(t, err)
	assert.Equal(t, "#000000", out.Bg1)
	assert.Equal(t, BackgroundGradient, out.BgType, "replaced preset no longer sets bgType")
}

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog(Preset{Name: " Brand ", Patch: Patch{Text: Ptr("Go")}})

	p, ok := c.Lookup("NEON")
	require.True(t, ok)
	assert.Equal(t, "neon", p.Name)

	p, ok = c.Lookup("brand")
	require.True(t, ok)
	assert.Equal(t, "Go", *p.Patch.Text)

	_, ok = c.Lookup("brnad")
	assert.False(t, ok)
}

func TestIconVariants(t *testing.T) {
	heart, ok := IconMarkup("heart")
	require.True(t, ok)

	assert.Equal(t, heart, LibraryIcon("heart").Markup())
	assert.Equal(t, "", LibraryIcon("nope").Markup())
	assert.Equal(t, "<svg/>", CustomIcon("<svg/>").Markup())
	assert.Equal(t, NoIcon(), CustomIcon(""))
	assert.Len(t, Icons(), 7)
}

func TestIconFromString(t *testing.T) {
	star, _ := IconMarkup("star")

	assert.Equal(t, NoIcon(), IconFromString(""))
	assert.Equal(t, LibraryIcon("bell"), IconFromString("bell"))
	assert.Equal(t, LibraryIcon("star"), IconFromString(star))
	assert.Equal(t, CustomIcon("<svg><circle/></svg>"), IconFromString("<svg><circle/></svg>"))
}

func TestIconJSON(t *testing.T) {
	var m Model
	require.NoError(t, json.Unmarshal([]byte(`{"icon":{"kind":"library","key":"plus"}}`), &m))
	assert.Equal(t, LibraryIcon("plus"), m.Icon)

	require.NoError(t, json.Unmarshal([]byte(`{"icon":"chat"}`), &m))
	assert.Equal(t, LibraryIcon("chat"), m.Icon)

	require.NoError(t, json.Unmarshal([]byte(`{"icon":{}}`), &m))
	assert.Equal(t, NoIcon(), m.Icon)
}

func TestCustomIconWireForm(t *testing.T) {
	data, err := json.Marshal(CustomIcon("<svg><rect/></svg>"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"custom","markup":"<svg><rect/></svg>"}`, string(data))

	var icon Icon
	require.NoError(t, json.Unmarshal(data, &icon))
	assert.Equal(t, "<svg><rect/></svg>", icon.SVG)
	assert.Equal(t, icon.SVG, icon.Markup())
}

func TestLintCustomIconWithoutSVG(t *testing.T) {
	m := Default()
	m.Icon = CustomIcon("<b>hi</b>")

	issues := Lint(m)
	require.Len(t, issues, 1)
	assert.Equal(t, "svg", issues[0].Rule)
}

func TestLintReportsBadValues(t *testing.T) {
	m := Default()
	m.Bg1 = "blue-ish"
	m.IconPos = "top"
	m.PadY = -1
	m.Icon = LibraryIcon("unicorn")

	issues := Lint(m)

	fields := map[string]string{}
	for _, is := range issues {
		fields[is.Field] = is.Rule
	}
	assert.Equal(t, "cssColor", fields["bg1"])
	assert.Equal(t, "oneof", fields["iconPos"])
	assert.Equal(t, "gte", fields["padY"])
	assert.Equal(t, "library", fields["icon"])
}

func TestLintCleanDefaults(t *testing.T) {
	assert.Empty(t, Lint(Default()))
	for _, p := range Presets() {
		assert.Empty(t, Lint(p.Patch.Apply(Default())), "preset %s", p.Name)
	}
}
