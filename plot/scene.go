package plot

import (
	"math"

	"github.com/reidab/vsvg/document"
)

// Background is the canvas fill behind the scene.
var Background = document.RGB(242, 242, 242)

var (
	shadowColor = document.RGB(180, 180, 180)
	paperColor  = document.RGB(255, 255, 255)
	frameColor  = document.RGB(128, 128, 128)
	gridColor   = document.RGB(210, 210, 210)
)

// Style holds the cosmetic parameters of the canvas. A zero field
// selects the DefaultStyle value.
type Style struct {
	ShadowOffset float64 // page shadow displacement, applied as (+x, -y)
	MarkerScale  float64 // marker radius as a multiple of the path stroke width
	GridStep     float64 // minimum on-screen grid spacing, in pixels
}

// DefaultStyle is the style used when fields are left zero.
var DefaultStyle = Style{
	ShadowOffset: 10,
	MarkerScale:  2,
	GridStep:     80,
}

func (s Style) withDefaults() Style {
	if s.ShadowOffset == 0 {
		s.ShadowOffset = DefaultStyle.ShadowOffset
	}
	if s.MarkerScale == 0 {
		s.MarkerScale = DefaultStyle.MarkerScale
	}
	if s.GridStep == 0 {
		s.GridStep = DefaultStyle.GridStep
	}
	return s
}

// Options selects what a frame shows.
type Options struct {
	ShowPoints bool
	ShowGrid   bool

	// Visible reports whether a layer should be drawn.
	// A nil function shows every layer.
	Visible func(document.LayerID) bool

	Style Style
}

// View is the world-space region currently on screen, with the
// pixel density needed to pick a grid spacing.
type View struct {
	MinX, MinY, MaxX, MaxY float64
	PixelsPerUnit          float64
}

// Scene assembles the draw list for one frame, in paint order:
// grid lines, page shadow, page background, page frame, then each
// layer's paths in document order, each path followed by its point
// markers when those are shown. A nil page draws no frame at all.
func Scene(doc *document.Flattened, page *document.PageSize, view View, opts Options) []Primitive {
	st := opts.Style.withDefaults()

	var scene []Primitive
	if opts.ShowGrid {
		scene = appendGrid(scene, view, st)
	}
	if page != nil {
		scene = appendPage(scene, *page, st)
	}

	doc.Walk(func(id document.LayerID, layer *document.Layer) {
		if opts.Visible != nil && !opts.Visible(id) {
			return
		}
		for _, path := range layer.Paths {
			scene = append(scene, Polyline{
				Points: path.Data,
				Color:  path.Color,
				Width:  path.StrokeWidth,
			})
			if !opts.ShowPoints {
				continue
			}
			for _, pt := range path.Data {
				scene = append(scene, Marker{
					Center: pt,
					Radius: st.MarkerScale * path.StrokeWidth,
					Color:  path.Color,
				})
			}
		}
	})
	return scene
}

// appendPage emits the three page primitives: drop shadow first,
// then the white sheet covering it, then the outline on top.
// The page rectangle extends in negative y from the origin,
// matching the producer's y-flip.
func appendPage(scene []Primitive, page document.PageSize, st Style) []Primitive {
	rect := []document.Point{
		{X: 0, Y: 0},
		{X: page.W, Y: 0},
		{X: page.W, Y: -page.H},
		{X: 0, Y: -page.H},
	}
	shadow := make([]document.Point, len(rect))
	for i, pt := range rect {
		shadow[i] = document.Point{X: pt.X + st.ShadowOffset, Y: pt.Y - st.ShadowOffset}
	}

	return append(scene,
		Polygon{Points: shadow, Fill: shadowColor, FillOpacity: 1, Stroke: shadowColor, StrokeWidth: 1},
		Polygon{Points: rect, Fill: paperColor, FillOpacity: 1, Stroke: paperColor, StrokeWidth: 1},
		Polygon{Points: rect, Fill: frameColor, FillOpacity: 0, Stroke: frameColor, StrokeWidth: 1},
	)
}

func appendGrid(scene []Primitive, view View, st Style) []Primitive {
	step := gridStep(view.PixelsPerUnit, st.GridStep)
	for x := math.Ceil(view.MinX/step) * step; x <= view.MaxX; x += step {
		scene = append(scene, GridLine{
			At: x, Min: view.MinY, Max: view.MaxY,
			Vertical: true, Color: gridColor, Width: 1,
		})
	}
	for y := math.Ceil(view.MinY/step) * step; y <= view.MaxY; y += step {
		scene = append(scene, GridLine{
			At: y, Min: view.MinX, Max: view.MaxX,
			Color: gridColor, Width: 1,
		})
	}
	return scene
}

// gridStep picks the smallest step from the 1-2-5 ladder whose
// on-screen spacing reaches target pixels.
func gridStep(pixelsPerUnit, target float64) float64 {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	step := math.Pow(10, math.Floor(math.Log10(target/pixelsPerUnit)))
	for _, m := range [...]float64{1, 2, 5} {
		if step*m*pixelsPerUnit >= target {
			return step * m
		}
	}
	return step * 10
}
