package tsp

// NearestNeighbor builds a visiting order over points by repeatedly
// appending the unvisited point minimizing duration(tail, v), starting
// from depot (§4.5). Ties are broken by first-encountered, matching scan
// order over points.
//
// Service times are order-invariant constants (every point is visited
// exactly once regardless of order) and so do not affect the nearest-
// neighbor decision; only the edge function duration is consulted, per
// the original construction-heuristic signature this is grounded on
// (original_source/include/tsp.hpp's totalCost/nearestNeighbor take only
// a pairwise cost function, no per-point service time).
func NearestNeighbor[T comparable](depot T, points []T, duration func(T, T) float64) []T {
	remaining := append([]T(nil), points...)
	order := make([]T, 0, len(points))
	tail := depot

	for len(remaining) > 0 {
		best := 0
		bestCost := duration(tail, remaining[0])
		for i := 1; i < len(remaining); i++ {
			c := duration(tail, remaining[i])
			if c < bestCost {
				best = i
				bestCost = c
			}
		}
		tail = remaining[best]
		order = append(order, tail)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return order
}

// TwoOptLocalSearch applies deterministic first-improvement 2-opt with
// restart (§4.5): enumerate (i,k) with i<k over visits (0-indexed, depot
// implicit at both ends); the first reversal that strictly reduces total
// edge cost is accepted and the scan restarts from the beginning.
// Terminates when a full scan finds no improving pair (§8 property 5).
func TwoOptLocalSearch[T comparable](depot T, visits []T, duration func(T, T) float64) []T {
	cur := append([]T(nil), visits...)
	n := len(cur)
	if n < 2 {
		return cur
	}

	edgeCost := func(seq []T) float64 {
		total := duration(depot, seq[0])
		for j := 0; j+1 < len(seq); j++ {
			total += duration(seq[j], seq[j+1])
		}
		total += duration(seq[len(seq)-1], depot)
		return total
	}

	for {
		improved := false
		base := edgeCost(cur)

		for i := 0; i < n-1 && !improved; i++ {
			for k := i + 1; k < n && !improved; k++ {
				candidate := ReverseSequence(cur, i, k)
				if edgeCost(candidate) < base {
					cur = candidate
					improved = true
				}
			}
		}

		if !improved {
			return cur
		}
	}
}
