package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// CapStyle controls how Buffer terminates a line's ends.
type CapStyle int

const (
	CapFlat CapStyle = iota
	CapRound
)

const roundCapSegments = 8

// Buffer returns the polygon formed by offsetting line by distance on
// both sides, with the given end-cap style. Distance is in the same
// metric units as the input CRS.
func Buffer(line orb.LineString, distance float64, cap CapStyle) orb.Polygon {
	if len(line) < 2 || distance <= 0 {
		return orb.Polygon{}
	}

	left := offsetSide(line, distance)
	right := offsetSide(line, -distance)

	ring := make(orb.Ring, 0, len(left)+len(right)+2*roundCapSegments+1)
	ring = append(ring, left...)

	if cap == CapRound {
		ring = append(ring, arcCap(line[len(line)-1], left[len(left)-1], right[len(right)-1])...)
	}

	for i := len(right) - 1; i >= 0; i-- {
		ring = append(ring, right[i])
	}

	if cap == CapRound {
		ring = append(ring, arcCap(line[0], right[0], left[0])...)
	}

	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

// BufferMulti unions the per-part buffers of a MultiLineString into a
// single (possibly disjoint) polygon set. Parts are returned separately;
// callers needing a true union should rely on containment tests against
// each part rather than requiring topological merge.
func BufferMulti(lines orb.MultiLineString, distance float64, cap CapStyle) []orb.Polygon {
	out := make([]orb.Polygon, 0, len(lines))
	for _, l := range lines {
		out = append(out, Buffer(l, distance, cap))
	}
	return out
}

// offsetSide returns the polyline obtained by offsetting line to one
// side (positive distance = left side) by the miter of each segment's
// normal.
func offsetSide(line orb.LineString, distance float64) orb.LineString {
	out := make(orb.LineString, 0, len(line))
	for i := range line {
		var nx, ny float64
		switch {
		case i == 0:
			nx, ny = normal(line[0], line[1])
		case i == len(line)-1:
			nx, ny = normal(line[i-1], line[i])
		default:
			nx1, ny1 := normal(line[i-1], line[i])
			nx2, ny2 := normal(line[i], line[i+1])
			nx, ny = averageNormal(nx1, ny1, nx2, ny2)
		}
		out = append(out, orb.Point{line[i][0] + nx*distance, line[i][1] + ny*distance})
	}
	return out
}

func normal(a, b orb.Point) (nx, ny float64) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return -dy / l, dx / l
}

func averageNormal(nx1, ny1, nx2, ny2 float64) (nx, ny float64) {
	sx, sy := nx1+nx2, ny1+ny2
	l := math.Hypot(sx, sy)
	if l == 0 {
		return nx1, ny1
	}
	// Scale so the miter reaches the same perpendicular offset as a
	// single segment's normal at the bisector.
	cosHalf := l / 2
	if cosHalf < 0.1 {
		cosHalf = 0.1
	}
	return sx / l / cosHalf, sy / l / cosHalf
}

func arcCap(center, from, to orb.Point) []orb.Point {
	r := math.Hypot(from[0]-center[0], from[1]-center[1])
	a0 := math.Atan2(from[1]-center[1], from[0]-center[0])
	a1 := math.Atan2(to[1]-center[1], to[0]-center[0])
	for a1 > a0 {
		a1 -= 2 * math.Pi
	}
	pts := make([]orb.Point, 0, roundCapSegments-1)
	for i := 1; i < roundCapSegments; i++ {
		t := a0 + (a1-a0)*float64(i)/float64(roundCapSegments)
		pts = append(pts, orb.Point{center[0] + r*math.Cos(t), center[1] + r*math.Sin(t)})
	}
	return pts
}

// PolygonContainsPoint is a standard even-odd ray-cast test against the
// outer ring (buffers produced here have no holes).
func PolygonContainsPoint(poly orb.Polygon, p orb.Point) bool {
	if len(poly) == 0 {
		return false
	}
	return ringContains(poly[0], p)
}

func ringContains(ring orb.Ring, p orb.Point) bool {
	inside := false
	n := len(ring)
	if n < 3 {
		return false
	}
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > p[1]) != (yj > p[1]) {
			x := xi + (p[1]-yi)/(yj-yi)*(xj-xi)
			if p[0] < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
