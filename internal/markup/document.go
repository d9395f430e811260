package markup

import (
	"html"
	"strings"

	"github.com/thatcatcamp/buttonsmith/internal/style"
	"github.com/thatcatcamp/buttonsmith/internal/themes"
)

// ExportClass is the class the exported page gives its button.
const ExportClass = "btn-like"

// rippleScript spawns an expanding circle at the click point of every
// .ripple-effect button.
const rippleScript = `
document.querySelectorAll('.ripple-effect').forEach(function (btn) {
  btn.addEventListener('click', function (e) {
    var r = btn.getBoundingClientRect();
    var d = Math.max(r.width, r.height);
    var s = document.createElement('span');
    s.style.cssText = 'position:absolute;border-radius:50%;background:rgba(255,255,255,.45);transform:scale(0);transition:transform .6s,opacity .6s;' +
      'width:' + d + 'px;height:' + d + 'px;left:' + (e.clientX - r.left - d / 2) + 'px;top:' + (e.clientY - r.top - d / 2) + 'px';
    btn.appendChild(s);
    requestAnimationFrame(function () { s.style.transform = 'scale(2.5)'; s.style.opacity = '0'; });
    setTimeout(function () { s.remove(); }, 650);
  });
});
`

// styleEscaper keeps user values inside <style> from closing the element.
// \3c is the CSS escape for '<'.
var styleEscaper = strings.NewReplacer("<", `\3c `)

// GenerateDocument renders a standalone HTML page showing the button, with its
// stylesheet, keyframes and, for ripple, the click handler inlined. A non-empty
// nonce is set on the script so a Content-Security-Policy can allow it.
func GenerateDocument(m style.Model, nonce string) string {
	m = m.Resolve()
	className := ExportClass
	if themes.NeedsRippleHook(m.Animation) {
		className += " ripple-effect"
	}

	var b strings.Builder
	b.WriteString(`<!doctype html><html><head><meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width,initial-scale=1">`)
	b.WriteString(`<title>Exported Button</title><style>`)
	b.WriteString(styleEscaper.Replace(themes.GenerateCSS(m, "."+ExportClass)))
	if kf := themes.Keyframes(m.Animation); kf != "" {
		b.WriteString("\n" + kf)
	}
	b.WriteString("\n.btn-export{margin:40px;}</style></head><body>")
	b.WriteString(`<div class="btn-export">` + GenerateHTML(m, className) + `</div>`)
	if themes.NeedsRippleHook(m.Animation) {
		if nonce != "" {
			b.WriteString(`<script nonce="` + html.EscapeString(nonce) + `">`)
		} else {
			b.WriteString("<script>")
		}
		b.WriteString(rippleScript + "</script>")
	}
	b.WriteString("</body></html>")
	return b.String()
}
