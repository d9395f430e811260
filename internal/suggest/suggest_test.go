package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/buttonsmith/internal/style"
)

func TestSuggestNeon(t *testing.T) {
	m, s, err := Apply(style.Default(), "make it neon and futuristic")
	require.NoError(t, err)

	assert.Equal(t, []string{"neon"}, s.Rules)
	assert.Equal(t, style.BackgroundGradient, m.BgType)
	assert.Equal(t, "#ff007f", m.Bg1)
	assert.Equal(t, "#7c3aed", m.Bg2)
	assert.True(t, m.Pill)
	assert.Equal(t, style.AnimationPulse, m.Animation)
	assert.Equal(t, 120.0, m.Angle)
}

func TestSuggestLaterRulesWin(t *testing.T) {
	s, err := Suggest("Neon danger button")
	require.NoError(t, err)
	assert.Equal(t, []string{"neon", "danger"}, s.Rules)

	m := style.Merge(style.Default(), s.Patch)
	assert.Equal(t, style.BackgroundSolid, m.BgType)
	assert.Equal(t, "#ef4444", m.Bg1)
	assert.Equal(t, style.AnimationShake, m.Animation)
	// fields only neon touched survive
	assert.True(t, m.Pill)
	assert.Equal(t, "#7c3aed", m.Bg2)
}

func TestSuggestIcons(t *testing.T) {
	s, err := Suggest("a bell to notify people")
	require.NoError(t, err)
	require.NotNil(t, s.Patch.Icon)
	assert.Equal(t, style.LibraryIcon("bell"), *s.Patch.Icon)
	assert.Equal(t, style.AnimationGlow, *s.Patch.Animation)

	s, err = Suggest("HEART")
	require.NoError(t, err)
	assert.Equal(t, style.LibraryIcon("heart"), *s.Patch.Icon)
}

func TestSuggestNormalizesWidthForms(t *testing.T) {
	// fullwidth letters fold to ASCII under NFKC
	s, err := Suggest("ＧＬＯＳＳＹ")
	require.NoError(t, err)
	assert.Equal(t, []string{"glossy"}, s.Rules)
}

func TestSuggestNoMatchKeepsCurrent(t *testing.T) {
	current := style.Default()
	current.Bg1 = "#123456"
	current.Text = "Buy"

	m, s, err := Apply(current, "something plain")
	require.NoError(t, err)
	assert.False(t, s.Matched())
	assert.True(t, s.Patch.IsEmpty())
	assert.Equal(t, current, m)
}

func TestSuggestMergesOntoCurrent(t *testing.T) {
	current := style.Default()
	current.Text = "Delete account"
	current.PadX = 40

	m, _, err := Apply(current, "danger")
	require.NoError(t, err)
	assert.Equal(t, "Delete account", m.Text)
	assert.Equal(t, 40.0, m.PadX)
	assert.Equal(t, "#ef4444", m.Bg1)
}

func TestSuggestEmptyPrompt(t *testing.T) {
	for _, p := range []string{"", "   ", "\n\t"} {
		_, err := Suggest(p)
		assert.ErrorIs(t, err, ErrEmptyPrompt)

		current := style.Default()
		m, _, err := Apply(current, p)
		assert.ErrorIs(t, err, ErrEmptyPrompt)
		assert.Equal(t, current, m)
	}
}

func TestRulesOrder(t *testing.T) {
	assert.Equal(t, []string{"neon", "danger", "glass", "minimal", "heart", "bell", "glossy"}, Rules())
}
