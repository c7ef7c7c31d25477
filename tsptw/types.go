// Package tsptw extends the plain tsp.Tour with time windows (§3 Data
// Model, "Tour with time windows"), for use as the state type of the
// Compressed Annealing engine (§4.3). It reuses tsp's sequence-permutation
// code (SwapSequence/ShiftOneSequence/ReverseSequence) rather than
// re-deriving it, since the Swap/Shift-1/2-opt operators are identical
// bookkeeping over the visit sequence — only the recomputed cached values
// (cost AND penalty here, cost alone in tsp) differ.
package tsptw

import (
	"fmt"
	"strings"

	"github.com/ohlmann-thomas/catsp/tsp"
)

// TSPTW is a closed route like tsp.Tour, plus a departure time from the
// depot and a time-window function governing the latest/earliest
// admissible start-of-service at every point (including the depot, for the
// closing edge's penalty term).
type TSPTW[T comparable] struct {
	depot         T
	visits        []T
	serviceTime   func(T) float64
	duration      func(T, T) float64
	departureTime float64
	timeWindow    func(T) (earliest, latest float64)

	cost    float64
	penalty float64
}

// NewTSPTW constructs a TSPTW, validating the same depot/visits invariant
// as tsp.NewTour and eagerly computing both the cached cost and penalty.
func NewTSPTW[T comparable](
	depot T,
	visits []T,
	serviceTime func(T) float64,
	duration func(T, T) float64,
	departureTime float64,
	timeWindow func(T) (float64, float64),
) (TSPTW[T], error) {
	if len(visits) == 0 {
		return TSPTW[T]{}, tsp.ErrEmptyTour
	}
	for _, v := range visits {
		if v == depot {
			return TSPTW[T]{}, tsp.ErrInvalidTour
		}
	}

	own := append([]T(nil), visits...)
	w := TSPTW[T]{
		depot:         depot,
		visits:        own,
		serviceTime:   serviceTime,
		duration:      duration,
		departureTime: departureTime,
		timeWindow:    timeWindow,
	}
	w.cost = tourCost(depot, own, serviceTime, duration)
	w.penalty = tourPenalty(depot, own, departureTime, serviceTime, duration, timeWindow)
	return w, nil
}

// tourCost is the same invariant as tsp.Tour's (§3): cost is independent of
// time windows.
func tourCost[T any](depot T, visits []T, serviceTime func(T) float64, duration func(T, T) float64) float64 {
	total := serviceTime(depot) + duration(depot, visits[0])
	for j := 0; j < len(visits); j++ {
		total += serviceTime(visits[j])
		if j+1 < len(visits) {
			total += duration(visits[j], visits[j+1])
		}
	}
	total += duration(visits[len(visits)-1], depot)
	return total
}

// Depot returns the tour's fixed start/end point.
func (w TSPTW[T]) Depot() T { return w.depot }

// Visits returns the tour's permutable sequence. Owned by the TSPTW;
// callers must not mutate it.
func (w TSPTW[T]) Visits() []T { return w.visits }

// Cost returns the cached total travel+service cost (time windows ignored).
func (w TSPTW[T]) Cost() float64 { return w.cost }

// Penalty returns the cached total time-window violation (§3 Penalty
// definition); zero iff every window is satisfied.
func (w TSPTW[T]) Penalty() float64 { return w.penalty }

// withVisits returns a new TSPTW sharing every field except visits, with
// cost and penalty recomputed over next.
func (w TSPTW[T]) withVisits(next []T) TSPTW[T] {
	return TSPTW[T]{
		depot:         w.depot,
		visits:        next,
		serviceTime:   w.serviceTime,
		duration:      w.duration,
		departureTime: w.departureTime,
		timeWindow:    w.timeWindow,
		cost:          tourCost(w.depot, next, w.serviceTime, w.duration),
		penalty:       tourPenalty(w.depot, next, w.departureTime, w.serviceTime, w.duration, w.timeWindow),
	}
}

// String renders a labeled dump including penalty, as the CLI demo drivers
// print (§6).
func (w TSPTW[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v ->", w.depot)
	for _, v := range w.visits {
		fmt.Fprintf(&b, " %v", v)
	}
	fmt.Fprintf(&b, " -> %v | cost=%g penalty=%g", w.depot, w.cost, w.penalty)
	return b.String()
}
