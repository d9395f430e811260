// Package exporters converts a style model into snippets for other front-end
// conventions. The snippets carry background, color, padding and radius only;
// shadow, border and animation are left to the generated stylesheet.
package exporters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/thatcatcamp/buttonsmith/internal/markup"
	"github.com/thatcatcamp/buttonsmith/internal/style"
	"github.com/thatcatcamp/buttonsmith/internal/themes"
)

// ErrUnknownFormat is returned by Export for a format it does not know.
var ErrUnknownFormat = errors.New("unknown export format")

const (
	FormatTailwind  = "tailwind"
	FormatBootstrap = "bootstrap"
	FormatReact     = "react"
	FormatVue       = "vue"
)

// Formats lists the supported export formats.
func Formats() []string {
	return []string{FormatTailwind, FormatBootstrap, FormatReact, FormatVue}
}

// Export renders m in the named format.
func Export(format string, m style.Model) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTailwind:
		return Tailwind(m), nil
	case FormatBootstrap:
		return Bootstrap(m), nil
	case FormatReact:
		return React(m), nil
	case FormatVue:
		return Vue(m), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// declaration is the full set of values every exporter draws from.
type declaration struct {
	Background string
	Color      string
	PadX       string
	PadY       string
	Padding    string
	Radius     string
	Label      string
	Uppercase  bool

	// Tailwind only
	BackgroundClasses string
}

func declare(m style.Model) declaration {
	m = m.Resolve()
	padX, padY := number(m.PadX), number(m.PadY)
	return declaration{
		Background:        themes.Background(m),
		Color:             m.TextColor,
		PadX:              padX,
		PadY:              padY,
		Padding:           padY + "px " + padX + "px",
		Radius:            number(m.EffectiveRadius()),
		Label:             markup.EscapeText(m.Text),
		Uppercase:         m.Uppercase,
		BackgroundClasses: tailwindBackground(m),
	}
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
	jsEscaper   = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	jsxEscaper  = strings.NewReplacer("{", "&#123;", "}", "&#125;")
)

// arbitrary makes a value usable inside a tailwind [arbitrary] token, which
// may not contain whitespace.
func arbitrary(s string) string { return strings.ReplaceAll(s, " ", "_") }

func attr(s string) string { return attrEscaper.Replace(s) }

// jsString escapes s for a single-quoted JS string literal.
func jsString(s string) string { return jsEscaper.Replace(s) }

func jsxText(s string) string { return jsxEscaper.Replace(s) }

var funcs = template.FuncMap{
	"arbitrary": arbitrary,
	"attr":      attr,
	"js":        jsString,
	"jsx":       jsxText,
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

func render(t *template.Template, data any) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		// templates are fixed and every field is a string or bool
		panic(fmt.Sprintf("exporters: %s: %v", t.Name(), err))
	}
	return b.String()
}
