package misc

import "math"

// Easing maps progress t in [0, 1] to eased progress.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func EaseInQuad(t float64) float64 { return t * t }

func EaseOutQuad(t float64) float64 { return t * (2 - t) }

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func EaseInCubic(t float64) float64 { return t * t * t }

func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return (t-1)*(2*t-2)*(2*t-2) + 1
}

func EaseInQuart(t float64) float64 { return t * t * t * t }

func EaseOutQuart(t float64) float64 {
	t--
	return 1 - t*t*t*t
}

func EaseInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	t--
	return 1 - 8*t*t*t*t
}

func EaseInQuint(t float64) float64 { return t * t * t * t * t }

func EaseOutQuint(t float64) float64 {
	t--
	return 1 + t*t*t*t*t
}

func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	t--
	return 1 + 16*t*t*t*t*t
}

func EaseInSine(t float64) float64 { return 1 + math.Sin(math.Pi/2*t-math.Pi/2) }

func EaseOutSine(t float64) float64 { return math.Sin(math.Pi / 2 * t) }

func EaseInOutSine(t float64) float64 { return (1 + math.Sin(math.Pi*t-math.Pi/2)) / 2 }

// The elastic curves overshoot and are undefined at the exact pole
// (0 for in, 1 for out, 0.5 for in-out), where they return NaN or ±Inf.
func EaseInElastic(t float64) float64 { return (0.04-0.04/t)*math.Sin(25*t) + 1 }

func EaseOutElastic(t float64) float64 {
	t0 := t
	t--
	return 0.04 * t0 / t * math.Sin(25*t)
}

func EaseInOutElastic(t float64) float64 {
	t -= 0.5
	if t < 0 {
		return (0.02 + 0.01/t) * math.Sin(50*t)
	}
	return (0.02-0.01/t)*math.Sin(50*t) + 1
}

// Easings indexes every curve by its conventional name.
var Easings = map[string]Easing{
	"linear":           Linear,
	"easeInQuad":       EaseInQuad,
	"easeOutQuad":      EaseOutQuad,
	"easeInOutQuad":    EaseInOutQuad,
	"easeInCubic":      EaseInCubic,
	"easeOutCubic":     EaseOutCubic,
	"easeInOutCubic":   EaseInOutCubic,
	"easeInQuart":      EaseInQuart,
	"easeOutQuart":     EaseOutQuart,
	"easeInOutQuart":   EaseInOutQuart,
	"easeInQuint":      EaseInQuint,
	"easeOutQuint":     EaseOutQuint,
	"easeInOutQuint":   EaseInOutQuint,
	"easeInSine":       EaseInSine,
	"easeOutSine":      EaseOutSine,
	"easeInOutSine":    EaseInOutSine,
	"easeInElastic":    EaseInElastic,
	"easeOutElastic":   EaseOutElastic,
	"easeInOutElastic": EaseInOutElastic,
}
