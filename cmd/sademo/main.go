// Command sademo is a runnable demonstration of the plain-TSP pipeline:
// nearest-neighbor construction, 2-opt local search, simulated annealing,
// then a second 2-opt pass over the annealed tour (§4 supplemented
// features: the "double 2-opt sandwich" original_source/src/tsp.cpp runs
// around its SA call).
//
// Usage:
//
//	sademo [MIN MAX SIZE]
//
// MIN and MAX bound the square region points are drawn from; SIZE is the
// number of points to visit (depot excluded). All three are optional and
// default to -100, 100, 8. Malformed arguments are reported to stderr with
// a nonzero exit, mirroring original_source/test/saparameters.cpp's
// str2num<T> argument parsing.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/ohlmann-thomas/catsp/anneal"
	"github.com/ohlmann-thomas/catsp/geo"
	"github.com/ohlmann-thomas/catsp/rng"
	"github.com/ohlmann-thomas/catsp/tsp"
)

const (
	defaultMin  = -100
	defaultMax  = 100
	defaultSize = 8
)

func str2num(arg, name string) int {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sademo: invalid %s %q: %v\n", name, arg, err)
		os.Exit(1)
	}
	return n
}

func main() {
	min, max, size := defaultMin, defaultMax, defaultSize
	switch len(os.Args) {
	case 1:
	case 4:
		min = str2num(os.Args[1], "MIN")
		max = str2num(os.Args[2], "MAX")
		size = str2num(os.Args[3], "SIZE")
	default:
		fmt.Fprintln(os.Stderr, "usage: sademo [MIN MAX SIZE]")
		os.Exit(1)
	}
	if max <= min || size <= 0 {
		fmt.Fprintln(os.Stderr, "sademo: require MAX > MIN and SIZE > 0")
		os.Exit(1)
	}

	seedSrc := rand.New(rand.NewSource(time.Now().UnixNano()))
	depot := geo.New(0, 0)
	points := make([]geo.Point, size)
	for i := range points {
		x := float64(min) + seedSrc.Float64()*float64(max-min)
		y := float64(min) + seedSrc.Float64()*float64(max-min)
		points[i] = geo.New(x, y)
	}

	serviceTime := func(geo.Point) float64 { return 0 }
	duration := geo.SquaredEuclidean

	order := tsp.NearestNeighbor(depot, points, duration)
	nn, err := tsp.NewTour(depot, order, serviceTime, duration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sademo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("NN:    %s\n", nn.String())

	opt1, err := tsp.NewTour(depot, tsp.TwoOptLocalSearch(depot, nn.Visits(), duration), serviceTime, duration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sademo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OPT21: %s\n", opt1.String())

	stream := rng.NewStream(time.Now().UnixNano())
	neighbor := func(tour tsp.Tour[geo.Point]) tsp.Tour[geo.Point] {
		switch stream.Bounded(3) {
		case 0:
			return tour.Swap(stream)
		case 1:
			return tour.Shift1(stream)
		default:
			return tour.TwoOptReversal(stream)
		}
	}
	cost := func(tour tsp.Tour[geo.Point]) float64 { return tour.Cost() }

	annealed := anneal.SimulatedAnnealing(opt1, neighbor, cost, 1000.0, 0.01, 500, stream)
	fmt.Printf("SA:    %s\n", annealed.String())

	opt2, err := tsp.NewTour(depot, tsp.TwoOptLocalSearch(depot, annealed.Visits(), duration), serviceTime, duration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sademo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OPT22: %s\n", opt2.String())
}
