// SPDX-License-Identifier: MIT

// Package markup renders button HTML: the snippet, a standalone export page,
// and sanitizing of user-supplied SVG icons.
package markup

import (
	"fmt"
	"html"
	"strings"

	"github.com/thatcatcamp/buttonsmith/internal/style"
)

// DefaultClass is used when GenerateHTML is called without a class name.
const DefaultClass = "btn-like"

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeText escapes &, < and > for use as element text.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// GenerateHTML renders the button element for m with the given class.
// Custom icon markup is sanitized on every render, whatever its source.
func GenerateHTML(m style.Model, className string) string {
	if strings.TrimSpace(className) == "" {
		className = DefaultClass
	}
	m = m.Resolve()

	icon := ""
	if markup := iconMarkup(m.Icon); markup != "" {
		size := formatPx(m.IconSize)
		icon = fmt.Sprintf(`<span class="icon" style="width:%s;height:%s">%s</span>`, size, size, markup)
	}
	label := `<span class="label">` + EscapeText(m.Text) + `</span>`

	var content string
	switch m.IconPos {
	case style.IconOnly:
		content = icon
	case style.IconRight:
		content = label + icon
	default:
		content = icon + label
	}

	disabled := ""
	if m.Disabled {
		disabled = ` disabled aria-disabled="true"`
	}
	return fmt.Sprintf(`<button class="%s"%s>%s</button>`, html.EscapeString(className), disabled, content)
}

// iconMarkup resolves the icon to inline SVG. Custom markup that does not
// sanitize to an <svg> renders as no icon.
func iconMarkup(icon style.Icon) string {
	if icon.Kind != style.IconKindCustom {
		return icon.Markup()
	}
	clean, err := SanitizeIcon(icon.SVG)
	if err != nil {
		return ""
	}
	return clean
}

func formatPx(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".") + "px"
}
