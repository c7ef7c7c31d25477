package anneal

import (
	"math"

	"github.com/ohlmann-thomas/catsp/rng"
)

// Params bundles the ten Compressed Annealing parameters from §4.3.
type Params struct {
	Alpha float64 // cooling coefficient, T <- T*Alpha each outer step
	Chi0  float64 // target initial acceptance ratio, in (0,1)
	P0    float64 // initial pressure, P0 >= 0
	Beta  float64 // compression shape parameter, Beta > 0
	Kappa float64 // pressure cap ratio, in (0,1), close to 1 (e.g. 0.9999)

	IPT int // inner iterations per temperature (main loop)
	MTC int // minimum temperature changes before termination is considered
	ITC int // maximum idle temperature changes before termination
	TLI int // warm-up trial-loop iterations
	TNP int // trial neighbor pairs drawn during calibration
}

// evalState tracks (current, cost, penalty) triples so the main loop never
// recomputes cost/penalty for a state it has already evaluated this step.
type evalState[S any] struct {
	s   S
	c   float64
	pen float64
}

// CompressedAnnealing runs the Ohlmann & Thomas (2007) compressed-annealing
// algorithm (§4.3): parameter calibration, warm-up, then the main pressure/
// temperature loop. Returns the best state observed under the lexicographic
// rule (penalty non-increasing AND cost strictly decreasing) or
// ErrCalibrationDegenerate if Phase 1 cannot derive a finite temperature.
//
// Unlike SimulatedAnnealing, CA does not re-heat (§9): pressure only rises,
// temperature only falls, for the life of the main loop.
func CompressedAnnealing[S any](
	initial S,
	neighbor func(S) S,
	cost func(S) float64,
	penalty func(S) float64,
	p Params,
	stream *rng.Stream,
) (S, error) {
	var zero S

	t, pmax, err := calibrate(initial, neighbor, cost, penalty, p, stream)
	if err != nil {
		return zero, err
	}

	t = warmUp(initial, neighbor, cost, penalty, p, stream, t)

	return mainLoop(initial, neighbor, cost, penalty, p, stream, t, pmax), nil
}

// calibrate implements Phase 1 (§4.3.1): draw 2*TNP neighbor pairs from
// initial, accumulate Δv as the sum of |e2-e1| over all pairs, and track the maximum
// candidate pressure Pmax across probes with nonzero penalty.
func calibrate[S any](
	initial S,
	neighbor func(S) S,
	cost func(S) float64,
	penalty func(S) float64,
	p Params,
	stream *rng.Stream,
) (temperature, pmax float64, err error) {
	if p.TNP <= 0 || p.Chi0 <= 0 || p.Chi0 >= 1 {
		return 0, 0, ErrCalibrationDegenerate
	}

	var deltaV float64
	for r := 0; r < 2*p.TNP; r++ {
		n1 := neighbor(initial)
		n2 := neighbor(n1)

		c1, pen1 := cost(n1), penalty(n1)
		c2, pen2 := cost(n2), penalty(n2)
		e1 := c1 + p.P0*pen1
		e2 := c2 + p.P0*pen2
		deltaV += math.Abs(e2 - e1)

		if pen1 > 0 {
			candidate := (c1 * p.Kappa) / (pen1 * (1 - p.Kappa))
			if candidate > pmax {
				pmax = candidate
			}
		}
		if pen2 > 0 {
			candidate := (c2 * p.Kappa) / (pen2 * (1 - p.Kappa))
			if candidate > pmax {
				pmax = candidate
			}
		}
	}

	if deltaV == 0 {
		return 0, 0, ErrCalibrationDegenerate
	}

	temperature = deltaV / math.Log(1/p.Chi0)
	return temperature, pmax, nil
}

// warmUp implements Phase 2 (§4.3.2): inflate temperature by 1.5x until the
// empirical acceptance ratio at pressure=P0 meets chi0.
func warmUp[S any](
	initial S,
	neighbor func(S) S,
	cost func(S) float64,
	penalty func(S) float64,
	p Params,
	stream *rng.Stream,
	t float64,
) float64 {
	current := initial
	ce := cost(current) + p.P0*penalty(current)

	for {
		accepted := 0
		for i := 0; i < p.TLI; i++ {
			next := neighbor(current)
			ne := cost(next) + p.P0*penalty(next)

			if ne < ce || acceptProbability(ce-ne, t) > stream.Uniform01() {
				current = next
				ce = ne
				accepted++
			}
		}

		if float64(accepted)/float64(p.TLI) >= p.Chi0 {
			return t
		}
		t *= 1.5
	}
}

// mainLoop implements Phase 3 (§4.3.3): the coupled temperature/pressure
// schedule with the lexicographic best-tracking rule.
func mainLoop[S any](
	initial S,
	neighbor func(S) S,
	cost func(S) float64,
	penalty func(S) float64,
	p Params,
	stream *rng.Stream,
	t, pmax float64,
) S {
	current := evalState[S]{s: initial, c: cost(initial), pen: penalty(initial)}
	best := current

	pressure := p.P0
	k := 0
	idle := 0

	for {
		for i := 0; i < p.IPT; i++ {
			next := neighbor(current.s)
			ncost := cost(next)
			npen := penalty(next)

			ce := current.c + pressure*current.pen
			ne := ncost + pressure*npen

			if ne < ce || acceptProbability(ce-ne, t) > stream.Uniform01() {
				current = evalState[S]{s: next, c: ncost, pen: npen}
			}

			if current.pen <= best.pen && current.c < best.c {
				best = current
				idle = 0
			}
		}

		k++
		idle++

		if k >= p.MTC && idle >= p.ITC {
			break
		}

		t *= p.Alpha
		// Pressure schedule uses the fixed P0 (not the running pressure) in
		// the exponential approach to Pmax — the canonical Ohlmann & Thomas
		// behavior per §9's Design Notes. A variant using the running
		// pressure instead of P0 produces a multiplicatively stiffening
		// schedule and is explicitly rejected here.
		if pmax > 0 {
			pressure = pmax * (1 - ((pmax-p.P0)/pmax)*math.Exp(-p.Beta*float64(k)))
		}
	}

	return best.s
}
