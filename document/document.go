// Provides the data model for flattened vector documents:
// layers of polyline paths, with their colors, stroke widths
// and optional page dimensions.
// Documents are consumed by painting pipelines, see vsvg/plot
// and vsvg/raster.
package document

import "image/color"

// LayerID identifies one layer of a document.
type LayerID int

// Point is a position in document units.
type Point struct {
	X, Y float64
}

// Color is a straight (non premultiplied) alpha RGBA color,
// 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 0xff} }

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Path is a polyline bound to its drawing attributes.
type Path struct {
	Data        []Point
	Color       Color
	StrokeWidth float64 // line thickness, >= 0
}

// Layer is a sequence of paths drawn at the same depth.
type Layer struct {
	Paths []Path
}

// Flattened holds the polylines derived from a document, grouped
// in layers. Layers keep their insertion order: menus and painting
// both walk them in the order they were created, on every frame.
type Flattened struct {
	order  []LayerID
	layers map[LayerID]*Layer
}

// NewFlattened returns an empty document.
func NewFlattened() *Flattened {
	return &Flattened{layers: make(map[LayerID]*Layer)}
}

// Layer returns the layer with the given id, creating an empty
// one at the end of the iteration order if needed.
func (f *Flattened) Layer(id LayerID) *Layer {
	if l, has := f.layers[id]; has {
		return l
	}
	l := new(Layer)
	f.order = append(f.order, id)
	f.layers[id] = l
	return l
}

// NumLayers returns the number of layers.
func (f *Flattened) NumLayers() int { return len(f.order) }

// NumPaths returns the total number of paths across all layers.
func (f *Flattened) NumPaths() int {
	n := 0
	for _, l := range f.layers {
		n += len(l.Paths)
	}
	return n
}

// Walk calls fn once per layer, in insertion order.
func (f *Flattened) Walk(fn func(id LayerID, layer *Layer)) {
	for _, id := range f.order {
		fn(id, f.layers[id])
	}
}

// ScaleNonUniform scales every point of every path by (sx, sy),
// in place. The usual call is ScaleNonUniform(1, -1), flipping a
// y-down document to the y-up convention the renderer assumes.
func (f *Flattened) ScaleNonUniform(sx, sy float64) {
	for _, l := range f.layers {
		for _, p := range l.Paths {
			for i, pt := range p.Data {
				p.Data[i] = Point{X: pt.X * sx, Y: pt.Y * sy}
			}
		}
	}
}

// Source produces flattened content for display.
// The flattening itself (curve subdivision) is the producer's
// concern, not modeled here.
type Source interface {
	// PageSize returns the page dimensions, when the document has them.
	PageSize() (PageSize, bool)

	// Flatten approximates the document's curves with polylines.
	// tolerance is the maximum allowed deviation between a curve and
	// its approximation, in document units.
	Flatten(tolerance float64) *Flattened
}
