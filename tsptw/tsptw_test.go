package tsptw_test

import (
	"math"
	"testing"

	"github.com/ohlmann-thomas/catsp/rng"
	"github.com/ohlmann-thomas/catsp/tsp"
	"github.com/ohlmann-thomas/catsp/tsptw"
)

type pt struct{ x, y float64 }

func sqDist(a, b pt) float64 {
	dx := a.x - b.x
	dy := a.y - b.y
	return dx*dx + dy*dy
}

func zeroService(pt) float64 { return 0 }

func unconstrainedWindow(pt) (float64, float64) { return 0, math.Inf(1) }

// TestNewTSPTW_RejectsDepotAmongVisits covers the shared §3 invariant.
func TestNewTSPTW_RejectsDepotAmongVisits(t *testing.T) {
	depot := pt{0, 0}
	visits := []pt{{1, 1}, depot}

	_, err := tsptw.NewTSPTW(depot, visits, zeroService, sqDist, 0, unconstrainedWindow)
	if err != tsp.ErrInvalidTour {
		t.Fatalf("expected ErrInvalidTour, got %v", err)
	}
}

// TestNewTSPTW_UnconstrainedWindowsHaveZeroPenalty covers §8 scenario S3:
// windows of (0, +Inf) on every point collapse TSPTW to plain TSP, so
// penalty must be exactly zero.
func TestNewTSPTW_UnconstrainedWindowsHaveZeroPenalty(t *testing.T) {
	depot := pt{0, 0}
	visits := []pt{{10, 0}, {10, 10}, {0, 10}}

	w, err := tsptw.NewTSPTW(depot, visits, zeroService, sqDist, 0, unconstrainedWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Penalty() != 0 {
		t.Fatalf("expected exact zero penalty, got %v", w.Penalty())
	}
}

// TestNewTSPTW_PenaltyZeroWhenEveryWindowSatisfied covers §8 property 4:
// a hand-constructed instance whose arrival times all fall within their
// windows must have zero penalty.
func TestNewTSPTW_PenaltyZeroWhenEveryWindowSatisfied(t *testing.T) {
	depot := pt{0, 0}
	a := pt{1, 0}
	b := pt{2, 0}

	duration := func(p, q pt) float64 {
		return math.Abs(p.x-q.x) + math.Abs(p.y-q.y)
	}
	serviceTime := func(pt) float64 { return 0 }
	// depot -> a: distance 1 (arrival t=1), window [0,10]
	// a -> b: distance 1 (arrival t=2), window [0,10]
	// b -> depot: distance 2 (arrival t=4), window [0,+Inf)
	window := func(p pt) (float64, float64) {
		if p == depot {
			return 0, math.Inf(1)
		}
		return 0, 10
	}

	w, err := tsptw.NewTSPTW(depot, []pt{a, b}, serviceTime, duration, 0, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Penalty() != 0 {
		t.Fatalf("expected zero penalty, got %v", w.Penalty())
	}
}

// TestNewTSPTW_PenaltyPositiveWhenWindowMissed checks a tight window forces
// a strictly positive penalty.
func TestNewTSPTW_PenaltyPositiveWhenWindowMissed(t *testing.T) {
	depot := pt{0, 0}
	a := pt{100, 0}

	duration := func(p, q pt) float64 {
		return math.Abs(p.x-q.x) + math.Abs(p.y-q.y)
	}
	serviceTime := func(pt) float64 { return 0 }
	window := func(p pt) (float64, float64) {
		if p == depot {
			return 0, math.Inf(1)
		}
		return 0, 1 // arrival at distance 100 will badly miss this window
	}

	w, err := tsptw.NewTSPTW(depot, []pt{a}, serviceTime, duration, 0, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Penalty() <= 0 {
		t.Fatalf("expected strictly positive penalty, got %v", w.Penalty())
	}
}

// TestMoves_PreserveVisitSetAndRecomputeCache covers §8 property 3 on the
// TSPTW moves: visit-set preservation and cache/recompute agreement.
func TestMoves_PreserveVisitSetAndRecomputeCache(t *testing.T) {
	depot := pt{0, 0}
	visits := []pt{{1, 0}, {2, 0}, {3, 0}, {4, 0}}
	w, err := tsptw.NewTSPTW(depot, visits, zeroService, sqDist, 0, unconstrainedWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stream := rng.NewStream(11)
	moves := []func(tsptw.TSPTW[pt]) tsptw.TSPTW[pt]{
		func(tw tsptw.TSPTW[pt]) tsptw.TSPTW[pt] { return tw.Swap(stream) },
		func(tw tsptw.TSPTW[pt]) tsptw.TSPTW[pt] { return tw.Shift1(stream) },
		func(tw tsptw.TSPTW[pt]) tsptw.TSPTW[pt] { return tw.TwoOptReversal(stream) },
	}

	for idx, move := range moves {
		next := move(w)
		if len(next.Visits()) != len(visits) {
			t.Fatalf("move %d changed visit count", idx)
		}
		seen := map[pt]int{}
		for _, v := range next.Visits() {
			if v == depot {
				t.Fatalf("move %d placed depot inside visits", idx)
			}
			seen[v]++
		}
		for _, v := range visits {
			if seen[v] != 1 {
				t.Fatalf("move %d broke visit set: %v appears %d times", idx, v, seen[v])
			}
		}

		recomputed, err := tsptw.NewTSPTW(depot, next.Visits(), zeroService, sqDist, 0, unconstrainedWindow)
		if err != nil {
			t.Fatalf("move %d produced invalid tour: %v", idx, err)
		}
		if math.Abs(next.Cost()-recomputed.Cost()) > 1e-9*math.Max(1, math.Abs(recomputed.Cost())) {
			t.Fatalf("move %d cached cost %v != recomputed %v", idx, next.Cost(), recomputed.Cost())
		}
		if math.Abs(next.Penalty()-recomputed.Penalty()) > 1e-9 {
			t.Fatalf("move %d cached penalty %v != recomputed %v", idx, next.Penalty(), recomputed.Penalty())
		}
	}
}
