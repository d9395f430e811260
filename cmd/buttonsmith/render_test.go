package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/style"
)

func TestStyleFlagsLayerTokenPresetPrompt(t *testing.T) {
	start := style.Default()
	start.FontSize = 22
	token, err := codec.Encode(start)
	require.NoError(t, err)

	f := styleFlags{token: token, preset: "danger", prompt: "glossy"}
	m, err := f.model(style.NewCatalog())
	require.NoError(t, err)

	assert.Equal(t, 22.0, m.FontSize, "token is the base")
	assert.Equal(t, "Delete", m.Text, "preset applied over the token")
	assert.Equal(t, "#7dd3fc", m.Bg1, "prompt applied last")
}

func TestStyleFlagsUnknownPreset(t *testing.T) {
	f := styleFlags{preset: "neonn"}
	_, err := f.model(style.NewCatalog())
	require.ErrorIs(t, err, style.ErrUnknownPreset)
	assert.Contains(t, err.Error(), "neon")
}

func TestRenderAsFormats(t *testing.T) {
	m := style.Default()
	m.Animation = style.AnimationPulse

	css, err := renderAs(m, "css", ".cta")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(css, ".cta {"))
	assert.Contains(t, css, "@keyframes pulse")

	html, err := renderAs(m, "html", ".cta")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, `<button class="cta">`))

	token, err := renderAs(m, "TOKEN", "")
	require.NoError(t, err)
	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)

	vue, err := renderAs(m, "vue", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(vue, "<template>"))

	_, err = renderAs(m, "svelte", "")
	assert.Error(t, err)
}

func TestRenderAsTokenRefusesLossyStyle(t *testing.T) {
	m := style.Default()
	m.Text = "caf\xe9"

	_, err := renderAs(m, "token", "")
	assert.ErrorIs(t, err, codec.ErrRoundTrip)
}

func TestSwatchShowsLabel(t *testing.T) {
	m := style.Default()
	m.Text = "Go"
	m.Uppercase = true
	m.BorderW = 1

	out := swatch(m)
	assert.Contains(t, out, "GO")
	// 10px/16 rounds to one padding row each side, plus the border
	assert.Equal(t, 5, lipgloss.Height(out))
}

func TestSwatchIconOnly(t *testing.T) {
	m := style.Default()
	m.IconPos = style.IconOnly
	assert.Contains(t, swatch(m), "●")
}
