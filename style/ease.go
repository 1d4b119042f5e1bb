package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "math"

// EaseFunction names an easing curve with domain [0,1]. The codomain is
// usually [0,1] as well, but elastic and back curves overshoot.
type EaseFunction uint8

// Easing curve keywords.
const (
	EaseLinear EaseFunction = iota
	QuadraticIn
	QuadraticOut
	QuadraticInOut
	CubicIn
	CubicOut
	CubicInOut
	QuarticIn
	QuarticOut
	QuarticInOut
	QuinticIn
	QuinticOut
	QuinticInOut
	SineIn
	SineOut
	SineInOut
	CircularIn
	CircularOut
	CircularInOut
	ExponentialIn
	ExponentialOut
	ExponentialInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut
)

// Sample evaluates the curve at t. The boolean is false for curves this
// package does not know how to sample; callers then fall back to the raw t.
func (e EaseFunction) Sample(t float64) (float64, bool) {
	switch e {
	case EaseLinear:
		return t, true
	case QuadraticIn:
		return t * t, true
	case QuadraticOut:
		return t * (2 - t), true
	case QuadraticInOut:
		return inOut(t, func(u float64) float64 { return u * u }), true
	case CubicIn:
		return t * t * t, true
	case CubicOut:
		return 1 - pow(1-t, 3), true
	case CubicInOut:
		return inOut(t, func(u float64) float64 { return u * u * u }), true
	case QuarticIn:
		return pow(t, 4), true
	case QuarticOut:
		return 1 - pow(1-t, 4), true
	case QuarticInOut:
		return inOut(t, func(u float64) float64 { return pow(u, 4) }), true
	case QuinticIn:
		return pow(t, 5), true
	case QuinticOut:
		return 1 - pow(1-t, 5), true
	case QuinticInOut:
		return inOut(t, func(u float64) float64 { return pow(u, 5) }), true
	case SineIn:
		return 1 - math.Cos(t*math.Pi/2), true
	case SineOut:
		return math.Sin(t * math.Pi / 2), true
	case SineInOut:
		return (1 - math.Cos(t*math.Pi)) / 2, true
	case CircularIn:
		return 1 - math.Sqrt(1-t*t), true
	case CircularOut:
		return math.Sqrt(1 - (t-1)*(t-1)), true
	case CircularInOut:
		return inOut(t, func(u float64) float64 { return 1 - math.Sqrt(1-u*u) }), true
	case ExponentialIn:
		if t == 0 {
			return 0, true
		}
		return math.Pow(2, 10*t-10), true
	case ExponentialOut:
		if t == 1 {
			return 1, true
		}
		return 1 - math.Pow(2, -10*t), true
	case ExponentialInOut:
		switch {
		case t == 0:
			return 0, true
		case t == 1:
			return 1, true
		case t < 0.5:
			return math.Pow(2, 20*t-10) / 2, true
		}
		return 1 - math.Pow(2, -20*t+10)/2, true
	case ElasticIn:
		switch t {
		case 0:
			return 0, true
		case 1:
			return 1, true
		}
		return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*(2*math.Pi/3)), true
	case ElasticOut:
		switch t {
		case 0:
			return 0, true
		case 1:
			return 1, true
		}
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*(2*math.Pi/3)) + 1, true
	case ElasticInOut:
		switch {
		case t == 0:
			return 0, true
		case t == 1:
			return 1, true
		case t < 0.5:
			return -math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*(2*math.Pi/4.5)) / 2, true
		}
		return math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*(2*math.Pi/4.5))/2 + 1, true
	case BackIn:
		const c1, c3 = 1.70158, 2.70158
		return c3*t*t*t - c1*t*t, true
	case BackOut:
		const c1, c3 = 1.70158, 2.70158
		return 1 + c3*pow(t-1, 3) + c1*pow(t-1, 2), true
	case BackInOut:
		const c2 = 1.70158 * 1.525
		if t < 0.5 {
			return (pow(2*t, 2) * ((c2+1)*2*t - c2)) / 2, true
		}
		return (pow(2*t-2, 2)*((c2+1)*(2*t-2)+c2) + 2) / 2, true
	case BounceIn:
		return 1 - bounceOut(1-t), true
	case BounceOut:
		return bounceOut(t), true
	case BounceInOut:
		if t < 0.5 {
			return (1 - bounceOut(1-2*t)) / 2, true
		}
		return (1 + bounceOut(2*t-1)) / 2, true
	}
	return 0, false
}

func pow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}

// inOut mirrors an ease-in function into a symmetric in-out curve.
func inOut(t float64, in func(float64) float64) float64 {
	if t < 0.5 {
		return in(2*t) / 2
	}
	return 1 - in(2*(1-t))/2
}

func bounceOut(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	}
	t -= 2.625 / d1
	return n1*t*t + 0.984375
}

var easeNames = map[string]EaseFunction{
	"linear":             EaseLinear,
	"quadratic_in":       QuadraticIn,
	"quadratic_out":      QuadraticOut,
	"quadratic_in_out":   QuadraticInOut,
	"cubic_in":           CubicIn,
	"cubic_out":          CubicOut,
	"cubic_in_out":       CubicInOut,
	"quartic_in":         QuarticIn,
	"quartic_out":        QuarticOut,
	"quartic_in_out":     QuarticInOut,
	"quintic_in":         QuinticIn,
	"quintic_out":        QuinticOut,
	"quintic_in_out":     QuinticInOut,
	"sine_in":            SineIn,
	"sine_out":           SineOut,
	"sine_in_out":        SineInOut,
	"circular_in":        CircularIn,
	"circular_out":       CircularOut,
	"circular_in_out":    CircularInOut,
	"exponential_in":     ExponentialIn,
	"exponential_out":    ExponentialOut,
	"exponential_in_out": ExponentialInOut,
	"elastic_in":         ElasticIn,
	"elastic_out":        ElasticOut,
	"elastic_in_out":     ElasticInOut,
	"back_in":            BackIn,
	"back_out":           BackOut,
	"back_in_out":        BackInOut,
	"bounce_in":          BounceIn,
	"bounce_out":         BounceOut,
	"bounce_in_out":      BounceInOut,
}

func (e EaseFunction) String() string {
	for name, fn := range easeNames {
		if fn == e {
			return name
		}
	}
	return "?"
}
