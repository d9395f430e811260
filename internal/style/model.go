// SPDX-License-Identifier: MIT

// Package style holds the button Style Model, its defaults, the icon library,
// presets and the partial-update type used to merge changes into a model.
package style

// IconPosition places the icon relative to the label.
type IconPosition string

const (
	IconLeft  IconPosition = "left"
	IconRight IconPosition = "right"
	IconOnly  IconPosition = "only"
)

// Background selects how the button background is painted.
type Background string

const (
	BackgroundSolid       Background = "solid"
	BackgroundGradient    Background = "gradient"
	BackgroundTransparent Background = "transparent"
)

// WidthMode controls the explicit width rule.
type WidthMode string

const (
	WidthAuto  WidthMode = "auto"
	WidthFull  WidthMode = "full"
	WidthFixed WidthMode = "fixed"
)

// Animation names a hover/click animation.
type Animation string

const (
	AnimationNone   Animation = "none"
	AnimationBounce Animation = "bounce"
	AnimationGlow   Animation = "glow"
	AnimationPulse  Animation = "pulse"
	AnimationFlip   Animation = "flip"
	AnimationShake  Animation = "shake"
	AnimationRotate Animation = "rotate"
	AnimationRipple Animation = "ripple"
)

// Animations lists every known animation in display order.
func Animations() []Animation {
	return []Animation{
		AnimationNone, AnimationBounce, AnimationGlow, AnimationPulse,
		AnimationFlip, AnimationShake, AnimationRotate, AnimationRipple,
	}
}

// Model is the complete visual configuration of one button.
// It is a plain value: copies are independent and two models compare with ==.
type Model struct {
	Text    string       `json:"text"`
	Icon    Icon         `json:"icon"`
	IconPos IconPosition `json:"iconPos" validate:"omitempty,oneof=left right only"`

	IconSize float64 `json:"iconSize" validate:"gte=0"`
	FontSize float64 `json:"fontSize" validate:"gte=0"`
	PadY     float64 `json:"padY" validate:"gte=0"`
	PadX     float64 `json:"padX" validate:"gte=0"`
	Radius   float64 `json:"radius" validate:"gte=0"`
	BorderW  float64 `json:"borderW" validate:"gte=0"`

	BorderColor string `json:"borderColor" validate:"omitempty,cssColor"`
	TextColor   string `json:"textColor" validate:"omitempty,cssColor"`
	TextAlt     string `json:"textAlt" validate:"omitempty,cssColor"`

	BgType Background `json:"bgType" validate:"omitempty,oneof=solid gradient transparent"`
	Bg1    string     `json:"bg1" validate:"omitempty,cssColor"`
	Bg2    string     `json:"bg2" validate:"omitempty,cssColor"`
	Angle  float64    `json:"angle" validate:"gte=0,lte=360"`

	ShadowX     float64 `json:"shadowX"`
	ShadowY     float64 `json:"shadowY"`
	ShadowBlur  float64 `json:"shadowBlur" validate:"gte=0"`
	ShadowColor string  `json:"shadowColor" validate:"omitempty,cssColor"`

	WidthType  WidthMode `json:"widthType" validate:"omitempty,oneof=auto full fixed"`
	FixedWidth float64   `json:"fixedWidth" validate:"gt=0"`

	HoverShade float64 `json:"hoverShade" validate:"gte=-100,lte=100"`
	HoverY     float64 `json:"hoverY"`
	Disabled   bool    `json:"disabled"`
	Uppercase  bool    `json:"uppercase"`
	Pill       bool    `json:"pill"`

	Animation     Animation `json:"animation" validate:"omitempty,oneof=none bounce glow pulse flip shake rotate ripple"`
	AnimSpeed     float64   `json:"animSpeed" validate:"gt=0"`
	AnimIntensity int       `json:"animIntensity" validate:"gt=0"`

	CSSVars string `json:"cssVars"`
}

// Default returns the Default Style Model every session starts from.
func Default() Model {
	return Model{
		Text:          "Like",
		Icon:          NoIcon(),
		IconPos:       IconLeft,
		IconSize:      18,
		FontSize:      16,
		PadY:          10,
		PadX:          18,
		Radius:        12,
		BorderW:       0,
		BorderColor:   "#ffffff",
		TextColor:     "#ffffff",
		TextAlt:       "#022a2f",
		BgType:        BackgroundGradient,
		Bg1:           "#06b6d4",
		Bg2:           "#3b82f6",
		Angle:         135,
		ShadowX:       0,
		ShadowY:       6,
		ShadowBlur:    18,
		ShadowColor:   "#06384a",
		WidthType:     WidthAuto,
		FixedWidth:    160,
		HoverShade:    -10,
		HoverY:        -3,
		Animation:     AnimationNone,
		AnimSpeed:     300,
		AnimIntensity: 3,
	}
}

// PillRadius is the border radius rendered when Pill is set.
const PillRadius = 999

// Resolve returns a render-ready copy of m. Unknown enum values fall back to
// their neutral value and out-of-range numbers are clamped; the receiver is
// left untouched so a stored model round-trips exactly.
func (m Model) Resolve() Model {
	def := Default()
	r := m

	switch r.IconPos {
	case IconLeft, IconRight, IconOnly:
	default:
		r.IconPos = IconLeft
	}
	switch r.BgType {
	case BackgroundSolid, BackgroundGradient, BackgroundTransparent:
	default:
		r.BgType = BackgroundTransparent
	}
	switch r.WidthType {
	case WidthAuto, WidthFull, WidthFixed:
	default:
		r.WidthType = WidthAuto
	}
	if !r.Animation.Known() {
		r.Animation = AnimationNone
	}

	r.IconSize = nonNegative(r.IconSize)
	r.FontSize = nonNegative(r.FontSize)
	r.PadY = nonNegative(r.PadY)
	r.PadX = nonNegative(r.PadX)
	r.Radius = nonNegative(r.Radius)
	r.BorderW = nonNegative(r.BorderW)
	r.ShadowBlur = nonNegative(r.ShadowBlur)

	if r.FixedWidth <= 0 {
		r.FixedWidth = def.FixedWidth
	}
	if r.AnimSpeed <= 0 {
		r.AnimSpeed = def.AnimSpeed
	}
	if r.AnimIntensity <= 0 {
		r.AnimIntensity = def.AnimIntensity
	}
	if r.HoverShade < -100 {
		r.HoverShade = -100
	} else if r.HoverShade > 100 {
		r.HoverShade = 100
	}
	return r
}

// EffectiveRadius is the radius used for rendering; Pill overrides Radius.
func (m Model) EffectiveRadius() float64 {
	if m.Pill {
		return PillRadius
	}
	return m.Radius
}

// Known reports whether a is one of the built-in animations.
func (a Animation) Known() bool {
	for _, known := range Animations() {
		if a == known {
			return true
		}
	}
	return false
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
