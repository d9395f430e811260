// SPDX-License-Identifier: MIT
package style

import (
	"reflect"
	"sort"
	"strings"
)

// Patch is a partial Model. A nil field means "leave as is".
type Patch struct {
	Text    *string       `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Icon    *Icon         `json:"icon,omitempty" yaml:"-" toml:"-"`
	IconPos *IconPosition `json:"iconPos,omitempty" yaml:"iconPos,omitempty" toml:"iconPos,omitempty"`

	IconSize *float64 `json:"iconSize,omitempty" yaml:"iconSize,omitempty" toml:"iconSize,omitempty"`
	FontSize *float64 `json:"fontSize,omitempty" yaml:"fontSize,omitempty" toml:"fontSize,omitempty"`
	PadY     *float64 `json:"padY,omitempty" yaml:"padY,omitempty" toml:"padY,omitempty"`
	PadX     *float64 `json:"padX,omitempty" yaml:"padX,omitempty" toml:"padX,omitempty"`
	Radius   *float64 `json:"radius,omitempty" yaml:"radius,omitempty" toml:"radius,omitempty"`
	BorderW  *float64 `json:"borderW,omitempty" yaml:"borderW,omitempty" toml:"borderW,omitempty"`

	BorderColor *string `json:"borderColor,omitempty" yaml:"borderColor,omitempty" toml:"borderColor,omitempty"`
	TextColor   *string `json:"textColor,omitempty" yaml:"textColor,omitempty" toml:"textColor,omitempty"`
	TextAlt     *string `json:"textAlt,omitempty" yaml:"textAlt,omitempty" toml:"textAlt,omitempty"`

	BgType *Background `json:"bgType,omitempty" yaml:"bgType,omitempty" toml:"bgType,omitempty"`
	Bg1    *string     `json:"bg1,omitempty" yaml:"bg1,omitempty" toml:"bg1,omitempty"`
	Bg2    *string     `json:"bg2,omitempty" yaml:"bg2,omitempty" toml:"bg2,omitempty"`
	Angle  *float64    `json:"angle,omitempty" yaml:"angle,omitempty" toml:"angle,omitempty"`

	ShadowX     *float64 `json:"shadowX,omitempty" yaml:"shadowX,omitempty" toml:"shadowX,omitempty"`
	ShadowY     *float64 `json:"shadowY,omitempty" yaml:"shadowY,omitempty" toml:"shadowY,omitempty"`
	ShadowBlur  *float64 `json:"shadowBlur,omitempty" yaml:"shadowBlur,omitempty" toml:"shadowBlur,omitempty"`
	ShadowColor *string  `json:"shadowColor,omitempty" yaml:"shadowColor,omitempty" toml:"shadowColor,omitempty"`

	WidthType  *WidthMode `json:"widthType,omitempty" yaml:"widthType,omitempty" toml:"widthType,omitempty"`
	FixedWidth *float64   `json:"fixedWidth,omitempty" yaml:"fixedWidth,omitempty" toml:"fixedWidth,omitempty"`

	HoverShade *float64 `json:"hoverShade,omitempty" yaml:"hoverShade,omitempty" toml:"hoverShade,omitempty"`
	HoverY     *float64 `json:"hoverY,omitempty" yaml:"hoverY,omitempty" toml:"hoverY,omitempty"`
	Disabled   *bool    `json:"disabled,omitempty" yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Uppercase  *bool    `json:"uppercase,omitempty" yaml:"uppercase,omitempty" toml:"uppercase,omitempty"`
	Pill       *bool    `json:"pill,omitempty" yaml:"pill,omitempty" toml:"pill,omitempty"`

	Animation     *Animation `json:"animation,omitempty" yaml:"animation,omitempty" toml:"animation,omitempty"`
	AnimSpeed     *float64   `json:"animSpeed,omitempty" yaml:"animSpeed,omitempty" toml:"animSpeed,omitempty"`
	AnimIntensity *int       `json:"animIntensity,omitempty" yaml:"animIntensity,omitempty" toml:"animIntensity,omitempty"`

	CSSVars *string `json:"cssVars,omitempty" yaml:"cssVars,omitempty" toml:"cssVars,omitempty"`
}

// Apply returns m with every set field of p copied over it.
func (p Patch) Apply(m Model) Model {
	setString(&m.Text, p.Text)
	if p.Icon != nil {
		m.Icon = *p.Icon
	}
	if p.IconPos != nil {
		m.IconPos = *p.IconPos
	}

	setFloat(&m.IconSize, p.IconSize)
	setFloat(&m.FontSize, p.FontSize)
	setFloat(&m.PadY, p.PadY)
	setFloat(&m.PadX, p.PadX)
	setFloat(&m.Radius, p.Radius)
	setFloat(&m.BorderW, p.BorderW)

	setString(&m.BorderColor, p.BorderColor)
	setString(&m.TextColor, p.TextColor)
	setString(&m.TextAlt, p.TextAlt)

	if p.BgType != nil {
		m.BgType = *p.BgType
	}
	setString(&m.Bg1, p.Bg1)
	setString(&m.Bg2, p.Bg2)
	setFloat(&m.Angle, p.Angle)

	setFloat(&m.ShadowX, p.ShadowX)
	setFloat(&m.ShadowY, p.ShadowY)
	setFloat(&m.ShadowBlur, p.ShadowBlur)
	setString(&m.ShadowColor, p.ShadowColor)

	if p.WidthType != nil {
		m.WidthType = *p.WidthType
	}
	setFloat(&m.FixedWidth, p.FixedWidth)

	setFloat(&m.HoverShade, p.HoverShade)
	setFloat(&m.HoverY, p.HoverY)
	setBool(&m.Disabled, p.Disabled)
	setBool(&m.Uppercase, p.Uppercase)
	setBool(&m.Pill, p.Pill)

	if p.Animation != nil {
		m.Animation = *p.Animation
	}
	setFloat(&m.AnimSpeed, p.AnimSpeed)
	if p.AnimIntensity != nil {
		m.AnimIntensity = *p.AnimIntensity
	}

	setString(&m.CSSVars, p.CSSVars)
	return m
}

// Then layers next over p; fields set in next win.
func (p Patch) Then(next Patch) Patch {
	out := p
	pv := reflect.ValueOf(&out).Elem()
	nv := reflect.ValueOf(next)
	for i := 0; i < nv.NumField(); i++ {
		if f := nv.Field(i); !f.IsNil() {
			pv.Field(i).Set(f)
		}
	}
	return out
}

// IsEmpty reports whether p sets no field.
func (p Patch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields returns the JSON names of the fields p sets, sorted.
func (p Patch) Fields() []string {
	var names []string
	v := reflect.ValueOf(p)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).IsNil() {
			continue
		}
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge applies patch over current. Patch fields take precedence; everything
// else keeps the current value, which itself started from Default.
func Merge(current Model, patch Patch) Model {
	return patch.Apply(current)
}

// Diff returns the patch that turns base into m.
func Diff(base, m Model) Patch {
	var p Patch
	if m == base {
		return p
	}
	bv := reflect.ValueOf(base)
	mv := reflect.ValueOf(m)
	pv := reflect.ValueOf(&p).Elem()
	for i := 0; i < mv.NumField(); i++ {
		if mv.Field(i).Interface() == bv.Field(i).Interface() {
			continue
		}
		ptr := reflect.New(mv.Field(i).Type())
		ptr.Elem().Set(mv.Field(i))
		pv.Field(i).Set(ptr)
	}
	return p
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Ptr returns a pointer to v; handy for building patches literally.
func Ptr[T any](v T) *T { return &v }
