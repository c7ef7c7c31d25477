// Package geo provides the minimal 2D point collaborator the core spec
// treats as an external interface (§6): equality (for depot/visit
// comparisons and use as a map key), ordering (for deterministic sorting,
// matching the original's std::map<Vector2,Vector2> key requirement), and
// coordinate accessors. Out of scope for the annealing/tour core itself —
// only the CLI demo drivers depend on this package.
package geo

// Point is a comparable 2D coordinate. Being a plain struct of two
// float64s, it satisfies Go's comparable constraint directly, so it can be
// used as tsp.Tour[Point] / tsptw.TSPTW[Point] and as a map key.
type Point struct {
	x, y float64
}

// New returns a Point at (x, y).
func New(x, y float64) Point { return Point{x: x, y: y} }

// X returns the point's x coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the point's y coordinate.
func (p Point) Y() float64 { return p.y }

// Less gives Point a total order (lexicographic on x then y), for
// deterministic iteration/sorting where a caller needs one — mirrors the
// original's use of Vector2 as an ordered std::map key.
func (p Point) Less(other Point) bool {
	if p.x != other.x {
		return p.x < other.x
	}
	return p.y < other.y
}

// SquaredEuclidean returns the squared Euclidean distance between p and q,
// the cost function the demo drivers use (matching original_source's
// `cost` lambda: xdiff*xdiff + ydiff*ydiff, avoiding a sqrt per edge).
func SquaredEuclidean(p, q Point) float64 {
	dx := p.x - q.x
	dy := p.y - q.y
	return dx*dx + dy*dy
}
