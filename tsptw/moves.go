package tsptw

import (
	"github.com/ohlmann-thomas/catsp/rng"
	"github.com/ohlmann-thomas/catsp/tsp"
)

// Swap returns a new TSPTW with two randomly chosen visits exchanged.
func (w TSPTW[T]) Swap(stream *rng.Stream) TSPTW[T] {
	return w.withVisits(tsp.SwapSequence(w.visits, stream))
}

// Shift1 returns a new TSPTW with a randomly chosen visit relocated to a
// randomly chosen position — the neighbor operator CA uses over TSPTW
// state (§4.3/§4.4).
func (w TSPTW[T]) Shift1(stream *rng.Stream) TSPTW[T] {
	return w.withVisits(tsp.ShiftOneSequence(w.visits, stream))
}

// TwoOptReversal returns a new TSPTW with a randomly chosen subsequence of
// visits reversed.
func (w TSPTW[T]) TwoOptReversal(stream *rng.Stream) TSPTW[T] {
	return w.withVisits(tsp.RandomReverseSequence(w.visits, stream))
}
