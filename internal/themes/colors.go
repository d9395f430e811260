package themes

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// parseHex splits a CSS hex color into RGB channels and an optional alpha
// suffix ("#RRGGBBAA" keeps "AA"). Accepts #RGB and #RRGGBB.
func parseHex(color string) (r, g, b uint8, alpha string, ok bool) {
	s := strings.TrimSpace(color)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	switch len(s) {
	case 9:
		alpha = s[7:]
		if _, err := strconv.ParseUint(alpha, 16, 8); err != nil {
			return 0, 0, 0, "", false
		}
		s = s[:7]
	case 4, 7:
	default:
		return 0, 0, 0, "", false
	}
	// colorful.Hex tolerates trailing garbage, so check the digits ourselves
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return 0, 0, 0, "", false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, "", false
	}
	r, g, b = c.RGB255()
	return r, g, b, alpha, true
}

// ParseColor returns the opaque color for a hex string, ignoring any alpha
// suffix.
func ParseColor(color string) (colorful.Color, bool) {
	r, g, b, _, ok := parseHex(color)
	if !ok {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

// Shade darkens (percent < 0) or lightens (percent > 0) a hex color.
// Darkening scales each channel by (1+percent/100); lightening moves each
// channel toward 255 by percent/100. Percent is clamped to [-100,100].
// Colors that do not parse are returned unchanged.
func Shade(color string, percent float64) string {
	if color == "" || percent == 0 {
		return color
	}
	r, g, b, alpha, ok := parseHex(color)
	if !ok {
		return color
	}
	percent = math.Max(-100, math.Min(100, percent))

	channel := func(v uint8) uint8 {
		f := float64(v)
		if percent < 0 {
			f = f * (1 + percent/100)
		} else {
			f = f + (255-f)*(percent/100)
		}
		return clampChannel(math.Round(f))
	}
	return fmt.Sprintf("#%02x%02x%02x%s", channel(r), channel(g), channel(b), alpha)
}

// HexToRGBA renders a hex color as rgba(r,g,b,a). Missing or invalid colors
// are treated as black.
func HexToRGBA(color string, alpha float64) string {
	r, g, b, _, ok := parseHex(color)
	if !ok {
		r, g, b = 0, 0, 0
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatNumber(alpha))
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// formatNumber prints a CSS number without trailing zeros: 12, 0.34, -3.5.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
