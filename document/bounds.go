package document

import "math"

// Bounds defines a bounding box, such as a page extent
// or the extent of a document's points.
type Bounds struct{ X, Y, W, H float64 }

// Union returns the smallest bounds containing b and other.
func (b Bounds) Union(other Bounds) Bounds {
	minX := math.Min(b.X, other.X)
	minY := math.Min(b.Y, other.Y)
	maxX := math.Max(b.X+b.W, other.X+other.W)
	maxY := math.Max(b.Y+b.H, other.Y+other.H)
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Bounds returns the bounding box of all the points of all the
// layers. The second return value is false when the document has
// no points at all.
func (f *Flattened) Bounds() (Bounds, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	seen := false
	for _, l := range f.layers {
		for _, p := range l.Paths {
			for _, pt := range p.Data {
				seen = true
				minX = math.Min(pt.X, minX)
				minY = math.Min(pt.Y, minY)
				maxX = math.Max(pt.X, maxX)
				maxY = math.Max(pt.Y, maxY)
			}
		}
	}
	if !seen {
		return Bounds{}, false
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}
