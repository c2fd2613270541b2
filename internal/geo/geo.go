// Package geo provides the low-level geometric primitives the rest of
// the pipeline is built on: bearing/angle math, line splitting and
// merging, buffering, and point-of-containment tests. All operations
// assume a projected metric CRS (default EPSG:25833) — nothing here is
// geodetically correct, by design (see spec §9).
package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Angle returns the bearing in degrees [0,360) from the first vertex of
// the first part of a line to the last vertex of its last part. For a
// plain LineString that's simply start-to-end.
func Angle(line orb.LineString) float64 {
	if len(line) < 2 {
		return 0
	}
	return angleBetween(line[0], line[len(line)-1])
}

// AngleMulti is Angle for a MultiLineString: first vertex of the first
// part to last vertex of the last part.
func AngleMulti(lines orb.MultiLineString) float64 {
	if len(lines) == 0 {
		return 0
	}
	first := lines[0]
	last := lines[len(lines)-1]
	if len(first) == 0 || len(last) == 0 {
		return 0
	}
	return angleBetween(first[0], last[len(last)-1])
}

func angleBetween(a, b orb.Point) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	if dx == 0 && dy == 0 {
		return 0
	}
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleDiff returns the smallest unsigned difference between two
// bearings in degrees, in [0,180].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// IsLeft reports whether point p lies to the left of the directed line
// from line's first to last vertex, using the sign of the 2-D cross
// product of (end-start) and (p-start).
func IsLeft(line orb.LineString, p orb.Point) bool {
	if len(line) < 2 {
		return false
	}
	start := line[0]
	end := line[len(line)-1]
	cross := (end[0]-start[0])*(p[1]-start[1]) - (end[1]-start[1])*(p[0]-start[0])
	return cross > 0
}

// Length returns the planar arc length of a line.
func Length(line orb.LineString) float64 {
	return planar.Length(line)
}

// LengthMulti returns the summed planar arc length of a MultiLineString.
func LengthMulti(lines orb.MultiLineString) float64 {
	var total float64
	for _, l := range lines {
		total += planar.Length(l)
	}
	return total
}

// SplitLine cuts a line into sub-segments of approximately segmentLength
// using equal-interval interpolation along arc length, per spec §4.1:
// n = max(1, ceil(len/segmentLength)) equal pieces.
func SplitLine(line orb.LineString, segmentLength float64) []orb.LineString {
	total := Length(line)
	if total == 0 || len(line) < 2 {
		return []orb.LineString{line}
	}
	n := int(math.Ceil(total / segmentLength))
	if n < 1 {
		n = 1
	}

	out := make([]orb.LineString, 0, n)
	step := total / float64(n)
	for i := 0; i < n; i++ {
		startDist := float64(i) * step
		endDist := startDist + step
		if i == n-1 {
			endDist = total
		}
		out = append(out, sliceByDistance(line, startDist, endDist))
	}
	return out
}

// sliceByDistance returns the portion of line between arc-length
// distances [from,to], interpolating new vertices at the cut points.
func sliceByDistance(line orb.LineString, from, to float64) orb.LineString {
	var out orb.LineString
	var acc float64
	started := false

	for i := 0; i < len(line)-1; i++ {
		a, b := line[i], line[i+1]
		segLen := planar.Distance(a, b)
		segStart := acc
		segEnd := acc + segLen

		if segEnd < from || segStart > to {
			acc = segEnd
			continue
		}

		// Entry point into this segment.
		if !started {
			t := 0.0
			if segLen > 0 {
				t = (from - segStart) / segLen
			}
			out = append(out, interpolate(a, b, clamp01(t)))
			started = true
		}

		// Exit point: either the segment's end (if still inside range)
		// or the cut point within this segment.
		if segEnd <= to {
			out = append(out, b)
		} else {
			t := 0.0
			if segLen > 0 {
				t = (to - segStart) / segLen
			}
			out = append(out, interpolate(a, b, clamp01(t)))
			acc = segEnd
			break
		}
		acc = segEnd
	}

	if len(out) < 2 {
		return orb.LineString{line[0], line[len(line)-1]}
	}
	return out
}

func interpolate(a, b orb.Point, t float64) orb.Point {
	return orb.Point{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Endpoints returns the first and last vertex of a line.
func Endpoints(line orb.LineString) (start, end orb.Point) {
	if len(line) == 0 {
		return orb.Point{}, orb.Point{}
	}
	return line[0], line[len(line)-1]
}

// Midpoint returns the point at half the arc length of the line.
func Midpoint(line orb.LineString) orb.Point {
	total := Length(line)
	if total == 0 {
		s, _ := Endpoints(line)
		return s
	}
	mid := sliceByDistance(line, 0, total/2)
	if len(mid) == 0 {
		s, _ := Endpoints(line)
		return s
	}
	return mid[len(mid)-1]
}

// DistancePointToLine returns the minimum planar distance from p to any
// point on line.
func DistancePointToLine(p orb.Point, line orb.LineString) float64 {
	if len(line) == 0 {
		return math.Inf(1)
	}
	if len(line) == 1 {
		return planar.Distance(p, line[0])
	}
	best := math.Inf(1)
	for i := 0; i < len(line)-1; i++ {
		d, _ := distanceToSegment(p, line[i], line[i+1])
		if d < best {
			best = d
		}
	}
	return best
}

func distanceToSegment(p, a, b orb.Point) (dist float64, ratio float64) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return planar.Distance(p, a), 0
	}
	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / lenSq
	t = clamp01(t)
	closest := orb.Point{a[0] + t*dx, a[1] + t*dy}
	return planar.Distance(p, closest), t
}
