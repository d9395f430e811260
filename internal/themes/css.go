// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"math"
	"strings"

	"github.com/thatcatcamp/buttonsmith/internal/style"
)

// DefaultSelector is used when GenerateCSS is called without a selector.
const DefaultSelector = ".btn-like"

const (
	shadowAlpha      = 0.34
	hoverShadowAlpha = 0.56
	transitionEasing = "cubic-bezier(.2,.9,.2,1)"
	transparentHover = "rgba(255,255,255,0.03)"
)

// GenerateCSS renders the stylesheet for one button: an optional :root block
// of custom properties, then the base, :hover, :active and disabled rules for
// selector. Output depends only on its arguments.
func GenerateCSS(m style.Model, selector string) string {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultSelector
	}
	m = m.Resolve()
	anim := Animate(m.Animation, m.AnimSpeed, m.AnimIntensity, m.Bg1)

	var b strings.Builder

	if vars := customProperties(m.CSSVars); len(vars) > 0 {
		b.WriteString(":root{\n")
		for _, decl := range vars {
			b.WriteString("  " + decl + "\n")
		}
		b.WriteString("}\n")
	}

	writeRule(&b, selector,
		widthRule(m),
		"display:inline-flex;",
		"align-items:center;",
		"justify-content:center;",
		"gap: .5rem;",
		fmt.Sprintf("padding: %spx %spx;", formatNumber(m.PadY), formatNumber(m.PadX)),
		fmt.Sprintf("font-size: %spx;", formatNumber(m.FontSize)),
		fmt.Sprintf("border-radius: %spx;", formatNumber(m.EffectiveRadius())),
		fmt.Sprintf("border: %s;", border(m)),
		fmt.Sprintf("color: %s;", m.TextColor),
		fmt.Sprintf("background: %s;", Background(m)),
		fmt.Sprintf("box-shadow: %s;", boxShadow(m, 0, 0, shadowAlpha)),
		"cursor: pointer;",
		fmt.Sprintf("text-transform: %s;", textTransform(m)),
		fmt.Sprintf("transition: all %sms %s;", formatNumber(m.AnimSpeed), transitionEasing),
		anim.Base,
	)

	writeRule(&b, selector+":hover",
		fmt.Sprintf("background: %s;", HoverBackground(m)),
		fmt.Sprintf("transform: translateY(%spx);", formatNumber(m.HoverY)),
		fmt.Sprintf("box-shadow: %s;", boxShadow(m, 4, 6, hoverShadowAlpha)),
		anim.Hover,
	)

	fmt.Fprintf(&b, "%s:active { transform: translateY(%spx) scale(.996) }\n", selector, formatNumber(m.HoverY+2))
	fmt.Fprintf(&b, "%s.disabled, %s[disabled] { opacity: .45; cursor: not-allowed; transform:none; }", selector, selector)

	return b.String()
}

// Background returns the CSS background value for the model's resting state.
func Background(m style.Model) string {
	switch m.BgType {
	case style.BackgroundSolid:
		return m.Bg1
	case style.BackgroundGradient:
		return gradient(m.Angle, m.Bg1, m.Bg2)
	default:
		return "transparent"
	}
}

// HoverBackground shades the background by HoverShade; transparent buttons get
// a faint white overlay instead.
func HoverBackground(m style.Model) string {
	switch m.BgType {
	case style.BackgroundSolid:
		return Shade(m.Bg1, m.HoverShade)
	case style.BackgroundGradient:
		return gradient(m.Angle, Shade(m.Bg1, m.HoverShade), Shade(m.Bg2, m.HoverShade))
	default:
		return transparentHover
	}
}

func gradient(angle float64, from, to string) string {
	return fmt.Sprintf("linear-gradient(%sdeg, %s, %s)", formatNumber(angle), from, to)
}

func border(m style.Model) string {
	if m.BorderW == 0 {
		return "none"
	}
	return fmt.Sprintf("%spx solid %s", formatNumber(m.BorderW), m.BorderColor)
}

func boxShadow(m style.Model, extraY, extraBlur, alpha float64) string {
	return fmt.Sprintf("%spx %spx %spx %s",
		formatNumber(m.ShadowX),
		formatNumber(m.ShadowY+extraY),
		formatNumber(math.Max(0, m.ShadowBlur+extraBlur)),
		HexToRGBA(m.ShadowColor, alpha))
}

func widthRule(m style.Model) string {
	switch m.WidthType {
	case style.WidthFull:
		return "width:100%;"
	case style.WidthFixed:
		return fmt.Sprintf("width:%spx;", formatNumber(m.FixedWidth))
	default:
		return ""
	}
}

func textTransform(m style.Model) string {
	if m.Uppercase {
		return "uppercase"
	}
	return "none"
}

// customProperties splits the raw cssVars text into trimmed, non-empty lines.
// Lines that could close the :root block or an enclosing <style> are dropped.
func customProperties(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsAny(line, "<>{}") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func writeRule(b *strings.Builder, selector string, decls ...string) {
	b.WriteString(selector + " {\n")
	for _, d := range decls {
		if d == "" {
			continue
		}
		b.WriteString("  " + d + "\n")
	}
	b.WriteString("}\n")
}
