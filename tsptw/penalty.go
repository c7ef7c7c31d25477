package tsptw

import "math"

// tourPenalty implements the §3 penalty definition:
//
//	a0 = departureTime
//	a(i+1) = a(i) + serviceTime(A) + duration(A,B)      // cumulative arrival, edge A->B
//	s(i+1) = max(a(i+1), earliest(B))                    // start-of-service at B
//	penalty(edge) = max(0, s(i+1) + serviceTime(B) - latest(B))
//
// summed over every edge including the closing return to the depot.
//
// Note the recurrence advances a using the *unadjusted* cumulative arrival
// a(i+1), not the waited start-of-service s(i+1) — this is the formula
// §3/§9 specify verbatim, not an oversight: later edges do not inherit an
// earlier stop's wait time. The corrected term this implementation does
// include (per §9's documented source bug) is serviceTime(B) in the
// penalty itself; an implementation that omits it (computing only
// max(0, arrival-latest)) is the buggy variant this corrects.
func tourPenalty[T any](
	depot T,
	visits []T,
	departureTime float64,
	serviceTime func(T) float64,
	duration func(T, T) float64,
	timeWindow func(T) (float64, float64),
) float64 {
	a := departureTime
	prev := depot
	total := 0.0

	advance := func(b T) {
		a = a + serviceTime(prev) + duration(prev, b)
		earliest, latest := timeWindow(b)
		s := math.Max(a, earliest)
		total += math.Max(0, s+serviceTime(b)-latest)
		prev = b
	}

	for _, v := range visits {
		advance(v)
	}
	advance(depot)

	return total
}
