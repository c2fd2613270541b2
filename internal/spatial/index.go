// Package spatial wraps github.com/tidwall/rtree into a bounding-box
// query index. It offers no nearest-neighbour query. The snapper builds
// one index and its worker pool shares it read-only; workers do not
// rebuild it.
package spatial

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
)

// Index is a read-only, bbox-queryable spatial index over geometries
// identified by an opaque int index into a caller-owned slice.
type Index struct {
	tree rtree.RTree
}

// New returns an empty index; boxes are added with Insert. Callers
// typically derive boxes from orb.LineString.Bound() and keep their own parallel
// slice of payload data, looking it up by the ids this index returns.
func New() *Index {
	return &Index{}
}

// Insert adds an item with the given bounding box and opaque id.
func (idx *Index) Insert(bound orb.Bound, id int) {
	min := [2]float64{bound.Min[0], bound.Min[1]}
	max := [2]float64{bound.Max[0], bound.Max[1]}
	idx.tree.Insert(min, max, id)
}

// Query returns the ids of every item whose bounding box intersects
// bound.
func (idx *Index) Query(bound orb.Bound) []int {
	var out []int
	min := [2]float64{bound.Min[0], bound.Min[1]}
	max := [2]float64{bound.Max[0], bound.Max[1]}
	idx.tree.Search(min, max, func(_, _ [2]float64, data interface{}) bool {
		out = append(out, data.(int))
		return true
	})
	return out
}

// Len returns the number of items indexed.
func (idx *Index) Len() int {
	return idx.tree.Len()
}

// BufferBound expands a point into a square bounding box of the given
// radius, for use as a Query argument ("query with bbox(buffer(g,B))"
// in spec §4.6 — a bbox is sufficient here since Query is a coarse
// candidate filter and every caller re-checks exact distance).
func BufferBound(p orb.Point, radius float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{p[0] - radius, p[1] - radius},
		Max: orb.Point{p[0] + radius, p[1] + radius},
	}
}

// LineBound returns a line's bounding box expanded by radius on every
// side.
func LineBound(line orb.LineString, radius float64) orb.Bound {
	b := line.Bound()
	return orb.Bound{
		Min: orb.Point{b.Min[0] - radius, b.Min[1] - radius},
		Max: orb.Point{b.Max[0] + radius, b.Max[1] + radius},
	}
}

// UnionBound returns the smallest bound containing both inputs, or the
// non-empty one if either is the zero value.
func UnionBound(a, b orb.Bound) orb.Bound {
	if a == (orb.Bound{}) {
		return b
	}
	return a.Union(b)
}

// Infinite is a sentinel distance used by callers that want "no limit".
var Infinite = math.Inf(1)
