package exporters

import (
	"github.com/thatcatcamp/buttonsmith/internal/style"
)

var tailwindTemplate = mustParse(FormatTailwind,
	`<button class="{{.BackgroundClasses}} text-[{{arbitrary .Color | attr}}] px-[{{.PadX}}px] py-[{{.PadY}}px] rounded-[{{.Radius}}px]{{if .Uppercase}} uppercase{{end}}">{{.Label}}</button>`)

// Tailwind renders a button whose utility classes embed the literal values.
// The mapping is heuristic and is not checked against a tailwind build.
func Tailwind(m style.Model) string {
	return render(tailwindTemplate, declare(m))
}

func tailwindBackground(m style.Model) string {
	switch m.BgType {
	case style.BackgroundSolid:
		return attr("bg-[" + arbitrary(m.Bg1) + "]")
	case style.BackgroundGradient:
		return attr("bg-gradient-to-r from-[" + arbitrary(m.Bg1) + "] to-[" + arbitrary(m.Bg2) + "]")
	default:
		return "bg-transparent"
	}
}
