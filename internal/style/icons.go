// SPDX-License-Identifier: MIT
package style

import "encoding/json"

// IconKind tags which variant an Icon holds.
type IconKind string

const (
	IconKindNone    IconKind = "none"
	IconKindLibrary IconKind = "library"
	IconKindCustom  IconKind = "custom"
)

// Icon is either nothing, a key into the icon library, or user-supplied markup.
// The chosen library key is stored rather than its markup so the selection
// survives without reverse lookups.
type Icon struct {
	Kind IconKind `json:"kind"`
	Key  string   `json:"key,omitempty"`
	SVG  string   `json:"markup,omitempty"`
}

// NoIcon returns the empty icon.
func NoIcon() Icon { return Icon{Kind: IconKindNone} }

// LibraryIcon references a built-in icon by key.
func LibraryIcon(key string) Icon { return Icon{Kind: IconKindLibrary, Key: key} }

// CustomIcon wraps raw inline SVG markup.
func CustomIcon(markup string) Icon {
	if markup == "" {
		return NoIcon()
	}
	return Icon{Kind: IconKindCustom, SVG: markup}
}

// Markup resolves the icon to the inline markup that should be rendered.
// Unknown library keys render as no icon.
func (i Icon) Markup() string {
	switch i.Kind {
	case IconKindLibrary:
		markup, _ := IconMarkup(i.Key)
		return markup
	case IconKindCustom:
		return i.SVG
	default:
		return ""
	}
}

// IsEmpty reports whether the icon renders nothing.
func (i Icon) IsEmpty() bool {
	return i.Markup() == ""
}

// UnmarshalJSON accepts the tagged object form and, for older payloads, a bare
// string that is either a library key or raw markup.
func (i *Icon) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*i = IconFromString(raw)
		return nil
	}

	type plain Icon
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Kind == "" {
		p.Kind = IconKindNone
	}
	*i = Icon(p)
	return nil
}

// IconFromString interprets an untagged icon value: empty means none, a library
// key or a library entry's exact markup selects that entry, anything else is
// treated as custom markup.
func IconFromString(s string) Icon {
	if s == "" {
		return NoIcon()
	}
	if _, ok := IconMarkup(s); ok {
		return LibraryIcon(s)
	}
	for _, key := range iconOrder {
		if iconLibrary[key] == s {
			return LibraryIcon(key)
		}
	}
	return CustomIcon(s)
}

const svgOpen = `<svg viewBox="0 0 24 24" width="100%" height="100%" fill="currentColor" aria-hidden="true">`

var iconOrder = []string{"heart", "thumbs", "star", "bell", "plus", "chat", "like"}

var iconLibrary = map[string]string{
	"heart":  svgOpen + `<path d="M12 21s-7-4.35-9-7.2C-1.3 8.6 4 3 7.5 5.5 9 6.8 12 10 12 10s3-3.2 4.5-4.5C20 3 23.3 8.6 21 13.8 19 16.65 12 21 12 21z"/></svg>`,
	"thumbs": svgOpen + `<path d="M2 21h4V9H2v12zm20-11c0-1.1-.9-2-2-2h-6.31l.95-4.57.03-.32c0-.41-.17-.79-.44-1.06L13.17 2 7.59 7.59C7.22 7.95 7 8.45 7 9v9c0 1.1.9 2 2 2h7c.83 0 1.54-.5 1.84-1.22L22 10.5c.09-.23.14-.47.14-.72z"/></svg>`,
	"star":   svgOpen + `<path d="M12 17.3l6.18 3.73-1.64-7.03L21 9.24l-7.19-.61L12 2 10.19 8.63 3 9.24l4.46 4.76L5.82 21z"/></svg>`,
	"bell":   svgOpen + `<path d="M12 22a2 2 0 0 0 2-2H10a2 2 0 0 0 2 2zm6-6V10a6 6 0 1 0-12 0v6l-2 2v1h16v-1l-2-2z"/></svg>`,
	"plus":   svgOpen + `<path d="M19 13H13v6h-2v-6H5v-2h6V5h2v6h6v2z"/></svg>`,
	"chat":   svgOpen + `<path d="M20 2H4a2 2 0 0 0-2 2v14l4-4h14a2 2 0 0 0 2-2V4a2 2 0 0 0-2-2z"/></svg>`,
	"like":   svgOpen + `<path d="M12 21.35l-1.45-1.32C5.4 15.36 2 12.28 2 8.5 2 6 4 4 6.5 4c1.54 0 3.04.99 3.57 2.36h1.87C14.46 4.99 15.96 4 17.5 4 20 4 22 6 22 8.5c0 3.78-3.4 6.86-8.55 11.54L12 21.35z"/></svg>`,
}

// Icons returns the library keys in display order.
func Icons() []string {
	keys := make([]string, len(iconOrder))
	copy(keys, iconOrder)
	return keys
}

// IconMarkup returns the inline SVG for a library key.
func IconMarkup(key string) (string, bool) {
	markup, ok := iconLibrary[key]
	return markup, ok
}
