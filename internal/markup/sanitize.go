package markup

import (
	"errors"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ErrNotSVG is returned when custom icon markup has no <svg> root.
	ErrNotSVG = errors.New("icon markup must contain an <svg> element")
	// ErrIconTooLarge is returned for markup over MaxIconBytes.
	ErrIconTooLarge = errors.New("icon markup is too large")
)

// MaxIconBytes bounds custom icon markup accepted over the API.
const MaxIconBytes = 32 << 10

var (
	svgPolicy     *bluemonday.Policy
	svgPolicyOnce sync.Once
)

func iconPolicy() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("svg", "g", "path", "circle", "ellipse", "rect", "line",
			"polyline", "polygon", "title", "desc", "defs", "lineargradient", "stop")
		p.AllowAttrs("viewbox", "width", "height", "xmlns", "fill", "fill-rule",
			"clip-rule", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin",
			"opacity", "transform", "d", "cx", "cy", "r", "rx", "ry", "x", "y",
			"x1", "y1", "x2", "y2", "points", "offset", "stop-color", "id",
			"aria-hidden", "role").Globally()
		svgPolicy = p
	})
	return svgPolicy
}

// SanitizeIcon strips scripts, event handlers and any non-SVG elements from
// custom icon markup.
func SanitizeIcon(raw string) (string, error) {
	if len(raw) > MaxIconBytes {
		return "", ErrIconTooLarge
	}
	if !strings.Contains(strings.ToLower(raw), "<svg") {
		return "", ErrNotSVG
	}
	clean := strings.TrimSpace(iconPolicy().Sanitize(raw))
	if !strings.Contains(clean, "<svg") {
		return "", ErrNotSVG
	}
	return clean, nil
}
