package anneal

import "math"

// overflowGuard bounds the exponent passed to math.Exp. Beyond this
// magnitude the result is indistinguishable from the clamped {0,1} outcome
// in float64, so we short-circuit instead of letting Exp flood to ±Inf or
// (after the division that produced it) NaN. This is the NumericOverflow
// edge case from §7: clamp and continue, never a reportable error.
const overflowGuard = 700.0

// acceptProbability returns the Metropolis acceptance probability for a
// candidate move whose evaluation is worse than the current one by delta
// (delta = currentEval - candidateEval, so delta <= 0 here) at the given
// temperature.
//
// t <= 0 clamps to 0 (never accept a non-improving move with no thermal
// energy left); |delta/t| beyond overflowGuard clamps to {0,1} directly
// rather than evaluating math.Exp on a value that would over/underflow.
func acceptProbability(delta, t float64) float64 {
	if t <= 0 {
		return 0
	}
	x := delta / t
	if x >= 0 {
		// Only called from the "worse move" branch, so x > 0 is not expected
		// in practice, but clamp defensively rather than assume the caller's
		// branch ordering.
		return 1
	}
	if x < -overflowGuard {
		return 0
	}
	return math.Exp(x)
}
