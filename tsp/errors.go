// Package tsp implements the plain (no time windows) Traveling Salesman
// tour type consumed by the annealing engines (§3/§4.4), plus the
// construction heuristics that seed them (§4.5): nearest-neighbor and
// first-improvement 2-opt local search.
//
// Strict sentinel errors declared once, no fmt.Errorf where a sentinel
// suffices, deterministic behavior driven entirely by an explicit
// *rng.Stream.
package tsp

import "errors"

var (
	// ErrInvalidTour is returned when the depot appears among the visits —
	// construction fails before any cost is computed (§3 invariant).
	ErrInvalidTour = errors.New("tsp: depot must not appear among visits")

	// ErrEmptyTour is returned when a tour is constructed with zero visits;
	// moves over an empty visit sequence are undefined (§7).
	ErrEmptyTour = errors.New("tsp: tour has no visits")
)
