// pkg/geom/geom.go
package geom

import "math"

// Point is a position in screen pixels.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Midpoint of segment ab.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// DistanceToSegment returns the distance from p to the closest point of segment ab.
// A degenerate segment (a == b) is treated as a point.
func DistanceToSegment(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Distance(p, Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// DistanceToPath returns the smallest distance from p to any segment of path.
// Paths with fewer than two points are infinitely far away.
func DistanceToPath(p Point, path []Point) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(path); i++ {
		if d := DistanceToSegment(p, path[i], path[i+1]); d < best {
			best = d
		}
	}
	return best
}

// NearestSegment returns the index i of segment (path[i], path[i+1]) whose
// midpoint is closest to p. Ties keep the lower index. Returns 0 for paths
// shorter than two points.
func NearestSegment(p Point, path []Point) int {
	idx := 0
	best := math.Inf(1)
	for i := 0; i+1 < len(path); i++ {
		if d := Distance(p, Midpoint(path[i], path[i+1])); d < best {
			best = d
			idx = i
		}
	}
	return idx
}

// StepToward moves from toward to by at most step pixels. The second result
// reports whether to was reached within the step.
func StepToward(from, to Point, step float64) (Point, bool) {
	d := Distance(from, to)
	if d <= step || d == 0 {
		return to, true
	}
	k := step / d
	return Point{X: from.X + (to.X-from.X)*k, Y: from.Y + (to.Y-from.Y)*k}, false
}
