// Package anneal implements the simulated-annealing (SA) and compressed-
// annealing (CA) engines at the center of this library: two nested cooling
// schedules driving a generic local-search loop over an opaque state type S.
//
// Both engines are generic over S so they can run the same algorithm over
// tsp.Tour[T], tsptw.TSPTW[T], or any other state a caller supplies — the
// engine never inspects S, it only calls the neighbor/cost/penalty closures
// the caller hands it (§9 Design Notes: "closures as algorithmic
// parameters"). Closures must be safe to call repeatedly and their captured
// state must outlive the engine call; that lifetime is the caller's
// responsibility.
package anneal

import "github.com/ohlmann-thomas/catsp/rng"

// temperatureFloor is SA's absolute cooling cutoff (§4.2): an arbitrary
// constant rather than a parameter, kept as the original's bare comparison
// against 1.0. At sub-unit cost scales it ends the run early.
const temperatureFloor = 1.0

// SimulatedAnnealing runs classical re-heating SA (§4.2) starting from
// initial and returns the best state observed.
//
// neighbor must return a random perturbation of its argument; cost must be
// non-negative. t0 is the initial temperature (t0 > 0), alpha is the
// cooling coefficient in (0,1) applied as T *= (1-alpha) each iteration, and
// n bounds the number of non-improving iterations before termination
// (counter >= n). Termination also fires unconditionally once T <= 1.0.
//
// stream supplies every uniform draw this call makes, for the Metropolis
// test as well as (typically, via the caller's neighbor closure) for move
// selection. Per §5, a Stream is owned by exactly one engine invocation at
// a time, and per §4.1 it must be seeded exactly once before the call; the
// relative order in which the engine and the neighbor closure consult it is
// itself part of the determinism contract (§5 Ordering guarantees).
//
// Re-heating: every time a move improves on the best-so-far, both the idle
// counter and the temperature reset to their initial values (T <- t0). This
// makes the schedule adaptive rather than monotonic and is the defining
// difference from textbook SA — §9 calls out that it must be preserved.
func SimulatedAnnealing[S any](
	initial S,
	neighbor func(S) S,
	cost func(S) float64,
	t0, alpha float64,
	n int,
	stream *rng.Stream,
) S {
	current := initial
	best := current
	ccost := cost(current)
	bcost := ccost

	t := t0
	counter := 0

	for {
		next := neighbor(current)
		ncost := cost(next)

		if ncost < ccost || acceptProbability(ccost-ncost, t) > stream.Uniform01() {
			current = next
			ccost = ncost
		}

		if ccost < bcost {
			best = current
			bcost = ccost
			counter = 0
			t = t0
		}

		counter++
		t *= 1 - alpha

		if counter >= n || t <= temperatureFloor {
			break
		}
	}

	return best
}
