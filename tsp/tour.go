package tsp

import (
	"fmt"
	"strings"
)

// Tour is a closed route starting and ending at depot, visiting every point
// in visits exactly once in between (§3 Data Model). It is cheaply
// clonable by value except for the visits slice, which every mutating
// operation (the three moves) replaces rather than edits in place, so a
// Tour handed to a caller is never aliased by a later move.
type Tour[T comparable] struct {
	depot       T
	visits      []T
	serviceTime func(T) float64
	duration    func(T, T) float64
	cost        float64
}

// NewTour constructs a Tour over depot/visits, validating the §3 invariant
// that the depot never appears among the visits, and computing the cached
// cost eagerly so Cost() is always O(1).
//
// serviceTime and duration are held by reference (not copied); their
// captured state must outlive the Tour, per the closures-as-parameters
// contract in §9.
func NewTour[T comparable](
	depot T,
	visits []T,
	serviceTime func(T) float64,
	duration func(T, T) float64,
) (Tour[T], error) {
	if len(visits) == 0 {
		return Tour[T]{}, ErrEmptyTour
	}
	for _, v := range visits {
		if v == depot {
			return Tour[T]{}, ErrInvalidTour
		}
	}

	own := append([]T(nil), visits...)
	t := Tour[T]{depot: depot, visits: own, serviceTime: serviceTime, duration: duration}
	t.cost = tourCost(depot, own, serviceTime, duration)
	return t, nil
}

// tourCost implements the §3 cost invariant:
//
//	serviceTime(d) + duration(d,v1) + Σ(serviceTime(vj)+duration(vj,vj+1)) + serviceTime(vn) + duration(vn,d)
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
func (t Tour[T]) Depot() T { return t.depot }

// Visits returns the tour's permutable sequence. The returned slice is
// owned by the Tour; callers must not mutate it.
func (t Tour[T]) Visits() []T { return t.visits }

// Cost returns the cached total cost (§3 invariant), recomputed by every
// move and never mutated in place.
func (t Tour[T]) Cost() float64 { return t.cost }

// withVisits returns a new Tour sharing depot/serviceTime/duration but with
// a freshly recomputed cost over next. next becomes exclusively owned by
// the returned Tour.
func (t Tour[T]) withVisits(next []T) Tour[T] {
	return Tour[T]{
		depot:       t.depot,
		visits:      next,
		serviceTime: t.serviceTime,
		duration:    t.duration,
		cost:        tourCost(t.depot, next, t.serviceTime, t.duration),
	}
}

// String renders a labeled dump: depot, visit sequence, and cost — the
// textual form the CLI demo drivers print (§6).
func (t Tour[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v ->", t.depot)
	for _, v := range t.visits {
		fmt.Fprintf(&b, " %v", v)
	}
	fmt.Fprintf(&b, " -> %v | cost=%g", t.depot, t.cost)
	return b.String()
}
