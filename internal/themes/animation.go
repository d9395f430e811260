package themes

import (
	"fmt"
	"math"

	"github.com/thatcatcamp/buttonsmith/internal/style"
)

// Fragments are declarations appended to the base and :hover rules.
type Fragments struct {
	Base  string
	Hover string
}

// Animate maps an animation choice to CSS fragments. Speed is in ms and is
// floored per animation so very fast settings stay visible. Intensity only
// affects glow. primary is the color glow radiates (the first background color).
// Unknown animations produce nothing.
func Animate(name style.Animation, speed float64, intensity int, primary string) Fragments {
	switch name {
	case style.AnimationBounce:
		return Fragments{Hover: fmt.Sprintf("animation: bounce %sms;", ms(speed, 200))}
	case style.AnimationGlow:
		return Fragments{
			Base:  fmt.Sprintf("--glow-color: %s;", primary),
			Hover: fmt.Sprintf("box-shadow: 0 6px %dpx var(--glow-color);", 8*intensity),
		}
	case style.AnimationPulse:
		return Fragments{Hover: fmt.Sprintf("animation: pulse %sms infinite;", ms(speed, 400))}
	case style.AnimationFlip:
		return Fragments{Hover: fmt.Sprintf("animation: flip %sms; transform-origin:center;", ms(speed, 400))}
	case style.AnimationShake:
		return Fragments{Hover: fmt.Sprintf("animation: shake %sms;", ms(speed, 300))}
	case style.AnimationRotate:
		return Fragments{Hover: fmt.Sprintf("animation: rotateAnim %sms linear;", ms(speed, 500))}
	case style.AnimationRipple:
		// the ripple itself is spawned on click by the host page
		return Fragments{Base: "position:relative; overflow:hidden;"}
	default:
		return Fragments{}
	}
}

// NeedsRippleHook reports whether the host page must install the click-driven
// ripple handler for this animation.
func NeedsRippleHook(name style.Animation) bool {
	return name == style.AnimationRipple
}

// Keyframes returns the @keyframes block the animation's hover rule refers to.
func Keyframes(name style.Animation) string {
	switch name {
	case style.AnimationBounce:
		return `@keyframes bounce {
  0%, 100% { transform: translateY(0); }
  30% { transform: translateY(-6px); }
  60% { transform: translateY(2px); }
}`
	case style.AnimationPulse:
		return `@keyframes pulse {
  0%, 100% { transform: scale(1); }
  50% { transform: scale(1.05); }
}`
	case style.AnimationFlip:
		return `@keyframes flip {
  from { transform: perspective(400px) rotateY(0); }
  to { transform: perspective(400px) rotateY(360deg); }
}`
	case style.AnimationShake:
		return `@keyframes shake {
  0%, 100% { transform: translateX(0); }
  20%, 60% { transform: translateX(-4px); }
  40%, 80% { transform: translateX(4px); }
}`
	case style.AnimationRotate:
		return `@keyframes rotateAnim {
  from { transform: rotate(0deg); }
  to { transform: rotate(360deg); }
}`
	case style.AnimationRipple:
		return `.ripple-effect span { pointer-events: none; }`
	default:
		return ""
	}
}

func ms(speed, floor float64) string {
	return formatNumber(math.Max(floor, speed))
}
