package tsp

import "github.com/ohlmann-thomas/catsp/rng"

// The three sequence-level operators below are pure: each takes ownership
// of nothing and returns a brand-new slice, independent of its input, so a
// caller holding the original sequence never observes a move's effects
// (§3 Lifecycle: "moves are functional"). They are exported and generic
// over the element type so the tsptw package can reuse the exact same
// permutation code instead of re-deriving it for its richer state.

// SwapSequence picks two indices i, j uniformly in [0,n) and exchanges
// seq[i], seq[j] (§4.4 Swap). i==j is a legal no-op draw.
func SwapSequence[T any](seq []T, stream *rng.Stream) []T {
	n := len(seq)
	next := append([]T(nil), seq...)
	i := stream.Bounded(n)
	j := stream.Bounded(n)
	next[i], next[j] = next[j], next[i]
	return next
}

// ShiftOneSequence picks indices i, j uniformly in [0,n), removes seq[i],
// and reinserts it at position j of the resulting (n-1)-length sequence
// (§4.4 Shift-1).
func ShiftOneSequence[T any](seq []T, stream *rng.Stream) []T {
	n := len(seq)
	i := stream.Bounded(n)
	j := stream.Bounded(n)

	elem := seq[i]
	rest := make([]T, 0, n-1)
	rest = append(rest, seq[:i]...)
	rest = append(rest, seq[i+1:]...)

	if j > len(rest) {
		j = len(rest)
	}
	next := make([]T, 0, n)
	next = append(next, rest[:j]...)
	next = append(next, elem)
	next = append(next, rest[j:]...)
	return next
}

// ReverseSequence reverses seq[i..k] inclusive and returns a new slice
// (§4.4 2-opt reversal), used both as a randomized neighbor move and,
// deterministically, as the local-search step in TwoOptLocalSearch.
func ReverseSequence[T any](seq []T, i, k int) []T {
	next := append([]T(nil), seq...)
	for i < k {
		next[i], next[k] = next[k], next[i]
		i++
		k--
	}
	return next
}

// RandomReverseSequence picks a uniformly random subsequence [i..k] with
// i<=k and reverses it, for use as a neighbor move.
func RandomReverseSequence[T any](seq []T, stream *rng.Stream) []T {
	n := len(seq)
	i := stream.Bounded(n)
	k := stream.Bounded(n)
	if i > k {
		i, k = k, i
	}
	return ReverseSequence(seq, i, k)
}

// Swap returns a new Tour with two randomly chosen visits exchanged.
func (t Tour[T]) Swap(stream *rng.Stream) Tour[T] {
	return t.withVisits(SwapSequence(t.visits, stream))
}

// Shift1 returns a new Tour with a randomly chosen visit relocated to a
// randomly chosen position.
func (t Tour[T]) Shift1(stream *rng.Stream) Tour[T] {
	return t.withVisits(ShiftOneSequence(t.visits, stream))
}

// TwoOptReversal returns a new Tour with a randomly chosen subsequence of
// visits reversed.
func (t Tour[T]) TwoOptReversal(stream *rng.Stream) Tour[T] {
	return t.withVisits(RandomReverseSequence(t.visits, stream))
}
