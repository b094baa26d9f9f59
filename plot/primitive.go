// Given a flattened document, builds the ordered list of
// primitives to paint for one frame.
// Painting the primitives requires a driver implementing the
// actual draw operations, such as a rasterizer. See vsvg/raster.
package plot

import "github.com/reidab/vsvg/document"

// Primitive groups the different drawable shapes of a scene.
type Primitive interface {
	// send itself to the driver `d`
	drawTo(d Driver)
}

// GridLine is an axis-aligned guide line, at world coordinate At
// on its axis, spanning [Min, Max] on the other axis.
type GridLine struct {
	At       float64
	Min, Max float64
	Vertical bool // constant-x line when true, constant-y otherwise
	Color    document.Color
	Width    float64
}

// Polygon is a closed shape with separate fill and outline styles.
// FillOpacity scales the fill alpha; zero gives an outline only.
type Polygon struct {
	Points      []document.Point
	Fill        document.Color
	FillOpacity float64
	Stroke      document.Color
	StrokeWidth float64
}

// Polyline is an open stroked path.
type Polyline struct {
	Points []document.Point
	Color  document.Color
	Width  float64
}

// Marker is a filled circle centered on one path point.
type Marker struct {
	Center document.Point
	Radius float64
	Color  document.Color
}

func (p GridLine) drawTo(d Driver) { d.GridLine(p) }
func (p Polygon) drawTo(d Driver)  { d.Polygon(p) }
func (p Polyline) drawTo(d Driver) { d.Polyline(p) }
func (p Marker) drawTo(d Driver)   { d.Marker(p) }

// Driver knows how to paint primitives on a concrete surface,
// but doesn't need any document knowledge.
// Stroke widths and marker radii are in screen pixels; all the
// coordinates are in world (document) units, so drivers apply
// their own world-to-screen transform.
type Driver interface {
	GridLine(GridLine)
	Polygon(Polygon)
	Polyline(Polyline)
	Marker(Marker)
}

// Draw sends the scene to the driver, in order. Later primitives
// occlude earlier ones where they overlap.
func Draw(scene []Primitive, d Driver) {
	for _, p := range scene {
		p.drawTo(d)
	}
}
