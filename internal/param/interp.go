package param

import "github.com/danmuck/meshghost/internal/meshapi"

// Interp returns the t-weighted parametric value between a (t=0) and b
// (t=1) along one axis. Non-periodic axes use a plain linear blend.
// Periodic axes normalize so the lower value leads, detect whether the
// direct span or the wrap-around span is shorter, and blend along whichever
// is shorter so the result never crosses the discontinuity the long way.
//
// Postcondition: for a periodic axis, the result lies in (lo, hi); t=0
// returns a (mod period) and t=1 returns b (mod period).
func Interp(t, a, b float64, axis meshapi.PeriodicRange) float64 {
	if !axis.Periodic {
		return (1-t)*a + t*b
	}

	lo, hi := axis.Lo, axis.Hi
	period := hi - lo

	aa, bb, tt := a, b, t
	if aa > bb {
		aa, bb = bb, aa
		tt = 1 - tt
	}

	span := bb - aa
	if span < period/2 {
		return (1-tt)*aa + tt*bb
	}

	result := (1-tt)*aa + tt*bb - tt*period
	if result < lo {
		result += period
	}
	return result
}

// InterpVertex runs Interp independently for each parametric axis below
// model's dimension, leaving the remaining components of the result zero.
func InterpVertex(t float64, a, b meshapi.Param, model meshapi.ModelEntity) meshapi.Param {
	var out meshapi.Param
	for k := 0; k < model.Dim && k < 3; k++ {
		out[k] = Interp(t, a[k], b[k], model.Axes[k])
	}
	return out
}
