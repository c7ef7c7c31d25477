// Command cademo demonstrates the TSPTW + Compressed Annealing pipeline:
// nearest-neighbor construction followed by Compressed Annealing, over a
// randomly generated instance with loosely staggered time windows (§4
// supplemented features, grounded on original_source/src/tsptw.cpp's demo
// generator).
//
// Usage:
//
//	cademo [SIZE]
//
// SIZE is the number of points to visit (depot excluded) and defaults to
// 24.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/ohlmann-thomas/catsp/anneal"
	"github.com/ohlmann-thomas/catsp/clock"
	"github.com/ohlmann-thomas/catsp/geo"
	"github.com/ohlmann-thomas/catsp/rng"
	"github.com/ohlmann-thomas/catsp/tsp"
	"github.com/ohlmann-thomas/catsp/tsptw"
)

const defaultSize = 24

func main() {
	size := defaultSize
	switch len(os.Args) {
	case 1:
	case 2:
		n, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "cademo: invalid SIZE %q: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		size = n
	default:
		fmt.Fprintln(os.Stderr, "usage: cademo [SIZE]")
		os.Exit(1)
	}
	if size <= 0 {
		fmt.Fprintln(os.Stderr, "cademo: require SIZE > 0")
		os.Exit(1)
	}

	seedSrc := rand.New(rand.NewSource(time.Now().UnixNano()))
	depot := geo.New(0, 0)
	points := make([]geo.Point, size)
	windows := make(map[geo.Point][2]clock.Timestamp, size)

	// Stagger windows across two 15-minute slots ([7:15,7:30),
	// [7:45,8:00)), alternated the way tsptw.cpp's demo does,
	// so most points have a genuinely tight window to satisfy.
	slots := [][2][2]int{
		{{7, 15}, {7, 30}},
		{{7, 45}, {8, 0}},
	}

	for i := range points {
		x := seedSrc.Float64()*200 - 100
		y := seedSrc.Float64()*200 - 100
		p := geo.New(x, y)
		points[i] = p

		slot := slots[i%len(slots)]
		earliest, err := clock.NewTimestamp(slot[0][0], slot[0][1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "cademo: %v\n", err)
			os.Exit(1)
		}
		latest, err := clock.NewTimestamp(slot[1][0], slot[1][1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "cademo: %v\n", err)
			os.Exit(1)
		}
		windows[p] = [2]clock.Timestamp{earliest, latest}
	}

	serviceTime := func(geo.Point) float64 { return 0 }
	duration := geo.SquaredEuclidean
	timeWindow := func(p geo.Point) (float64, float64) {
		w, ok := windows[p]
		if !ok {
			return 0, 1e18 // depot: unconstrained
		}
		return w[0].Seconds(), w[1].Seconds()
	}

	midnight, err := clock.NewTimestamp(0, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cademo: %v\n", err)
		os.Exit(1)
	}

	order := tsp.NearestNeighbor(depot, points, duration)
	nn, err := tsptw.NewTSPTW(depot, order, serviceTime, duration, midnight.Seconds(), timeWindow)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cademo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("NN: %s\n", nn.String())

	stream := rng.NewStream(time.Now().UnixNano())
	neighbor := func(w tsptw.TSPTW[geo.Point]) tsptw.TSPTW[geo.Point] {
		switch stream.Bounded(3) {
		case 0:
			return w.Swap(stream)
		case 1:
			return w.Shift1(stream)
		default:
			return w.TwoOptReversal(stream)
		}
	}
	cost := func(w tsptw.TSPTW[geo.Point]) float64 { return w.Cost() }
	penalty := func(w tsptw.TSPTW[geo.Point]) float64 { return w.Penalty() }

	params := anneal.Params{
		Alpha: 0.95,
		Chi0:  0.9,
		P0:    1,
		Beta:  0.05,
		Kappa: 0.9999,
		IPT:   30,
		MTC:   100,
		ITC:   20,
		TLI:   30,
		TNP:   20,
	}

	best, err := anneal.CompressedAnnealing(nn, neighbor, cost, penalty, params, stream)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cademo: calibration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("CA: %s\n", best.String())
}
