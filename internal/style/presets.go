// SPDX-License-Identifier: MIT
package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrUnknownPreset is returned when a preset name is not in the catalog.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named partial Style Model used to bulk-initialize a model.
type Preset struct {
	Name  string
	Patch Patch
}

// builtinPresets is the gallery shipped with the editor, in display order.
func builtinPresets() []Preset {
	return []Preset{
		{Name: "like", Patch: Patch{
			Text: Ptr("Like"), BgType: Ptr(BackgroundGradient), Bg1: Ptr("#06b6d4"), Bg2: Ptr("#3b82f6"),
			Angle: Ptr(135.0), TextColor: Ptr("#fff"), Radius: Ptr(14.0), ShadowY: Ptr(10.0),
			Animation: Ptr(AnimationNone), Icon: Ptr(LibraryIcon("heart")),
		}},
		{Name: "neon", Patch: Patch{
			Text: Ptr("Notify"), BgType: Ptr(BackgroundGradient), Bg1: Ptr("#ff007f"), Bg2: Ptr("#7c3aed"),
			Angle: Ptr(120.0), TextColor: Ptr("#fff"), Radius: Ptr(999.0), ShadowY: Ptr(6.0),
			ShadowColor: Ptr("#ff007f"), Animation: Ptr(AnimationPulse), Icon: Ptr(LibraryIcon("star")),
		}},
		{Name: "glass", Patch: Patch{
			Text: Ptr("Subscribe"), BgType: Ptr(BackgroundTransparent), Bg1: Ptr("#ffffff22"),
			TextColor: Ptr("#eaffff"), Radius: Ptr(12.0), BorderW: Ptr(1.0), BorderColor: Ptr("#ffffff55"),
			ShadowY: Ptr(2.0), Animation: Ptr(AnimationNone), Icon: Ptr(LibraryIcon("bell")),
		}},
		{Name: "danger", Patch: Patch{
			Text: Ptr("Delete"), BgType: Ptr(BackgroundSolid), Bg1: Ptr("#ef4444"), TextColor: Ptr("#fff"),
			Radius: Ptr(10.0), ShadowY: Ptr(8.0), Animation: Ptr(AnimationShake), Icon: Ptr(LibraryIcon("like")),
		}},
		{Name: "ghost", Patch: Patch{
			Text: Ptr("More"), BgType: Ptr(BackgroundTransparent), TextColor: Ptr("#cfeffb"),
			BorderW: Ptr(1.0), BorderColor: Ptr("#5b7286"), Radius: Ptr(8.0),
			Animation: Ptr(AnimationNone), Icon: Ptr(NoIcon()),
		}},
		{Name: "neumorphic", Patch: Patch{
			Text: Ptr("Like"), BgType: Ptr(BackgroundSolid), Bg1: Ptr("#e6f3f7"), TextColor: Ptr("#032230"),
			Radius: Ptr(28.0), ShadowX: Ptr(-8.0), ShadowY: Ptr(10.0), ShadowBlur: Ptr(24.0),
			Animation: Ptr(AnimationNone), Pill: Ptr(true), Icon: Ptr(LibraryIcon("thumbs")),
		}},
	}
}

// Catalog is an immutable, ordered set of presets. Build a new one to change it.
type Catalog struct {
	order  []string
	byName map[string]Preset
}

// NewCatalog returns the built-in presets followed by extra. An extra preset
// with a built-in name replaces it in place.
func NewCatalog(extra ...Preset) *Catalog {
	c := &Catalog{byName: make(map[string]Preset)}
	for _, p := range append(builtinPresets(), extra...) {
		name := normalizePresetName(p.Name)
		if name == "" {
			continue
		}
		p.Name = name
		if _, exists := c.byName[name]; !exists {
			c.order = append(c.order, name)
		}
		c.byName[name] = p
	}
	return c
}

var builtinCatalog = NewCatalog()

// Lookup returns the preset with the given name.
func (c *Catalog) Lookup(name string) (Preset, bool) {
	p, ok := c.byName[normalizePresetName(name)]
	return p, ok
}

// List returns every preset in display order.
func (c *Catalog) List() []Preset {
	presets := make([]Preset, 0, len(c.order))
	for _, name := range c.order {
		presets = append(presets, c.byName[name])
	}
	return presets
}

// Names returns preset names in display order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Apply shallow-merges the named preset over model. Preset fields win,
// unlisted fields keep their prior value.
func (c *Catalog) Apply(model Model, name string) (Model, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return model, c.unknown(name)
	}
	return Merge(model, p.Patch), nil
}

// Suggest returns catalog names that fuzzily match name, best first.
func (c *Catalog) Suggest(name string) []string {
	matches := fuzzy.Find(normalizePresetName(name), c.order)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

func (c *Catalog) unknown(name string) error {
	if candidates := c.Suggest(name); len(candidates) > 0 {
		return fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownPreset, name, strings.Join(candidates, ", "))
	}
	return fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// Presets lists the built-in presets.
func Presets() []Preset { return builtinCatalog.List() }

// ApplyPreset merges a built-in preset over model.
func ApplyPreset(model Model, name string) (Model, error) {
	return builtinCatalog.Apply(model, name)
}

func normalizePresetName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
