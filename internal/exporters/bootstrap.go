package exporters

import (
	"strings"

	"github.com/thatcatcamp/buttonsmith/internal/style"
)

// contextualClasses maps solid background colors to bootstrap's semantic
// button classes. Keys are lower-case hex without '#'.
var contextualClasses = map[string]string{
	"ef4444": "btn-danger",
	"dc3545": "btn-danger",
	"198754": "btn-success",
	"22c55e": "btn-success",
	"0d6efd": "btn-primary",
	"ffc107": "btn-warning",
}

var (
	bootstrapSemantic = mustParse(FormatBootstrap+"-semantic",
		`<button class="btn {{.Class}}">{{.Label}}</button>`)
	bootstrapInline = mustParse(FormatBootstrap,
		`<button class="btn" style="background:{{attr .Background}}; color:{{attr .Color}}; padding:{{.Padding}}; border-radius:{{.Radius}}px;">{{.Label}}</button>`)
)

// Bootstrap renders a bootstrap button. Solid buttons in a contextual color
// get the semantic class; everything else falls back to inline styles.
func Bootstrap(m style.Model) string {
	d := declare(m)
	if class, ok := semanticClass(m.Resolve()); ok {
		return render(bootstrapSemantic, struct {
			Class string
			declaration
		}{class, d})
	}
	return render(bootstrapInline, d)
}

func semanticClass(m style.Model) (string, bool) {
	if m.BgType != style.BackgroundSolid {
		return "", false
	}
	class, ok := contextualClasses[strings.TrimPrefix(strings.ToLower(strings.TrimSpace(m.Bg1)), "#")]
	return class, ok
}
