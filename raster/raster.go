// Implements the painting backend of the canvas,
// by wrapping rasterx.
package raster

import (
	"image"
	"image/draw"

	"github.com/reidab/vsvg/document"
	"github.com/reidab/vsvg/plot"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ plot.Driver = (*Renderer)(nil) // assert interface conformance

// Projection maps document coordinates to screen pixels.
// The scale must be identical on both axes, so that shapes keep
// their aspect ratio whatever the window size.
type Projection interface {
	// ToScreen returns the pixel position of a document point.
	ToScreen(p document.Point) (x, y float64)

	// Scale returns the number of screen pixels per document unit.
	Scale() float64
}

// Renderer paints scenes into an RGBA image.
// The dasher strokes open paths and outlines, the filler paints
// solid shapes; both share one scanner over the target image.
type Renderer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher
	filler *rasterx.Filler

	proj Projection // valid during Render
}

// NewRenderer returns a renderer painting into img, using a
// rasterx.ScannerGV instance.
func NewRenderer(img *image.RGBA) *Renderer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	scanner := rasterx.NewScannerGV(w, h, img, b)
	return &Renderer{
		img:    img,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
	}
}

// Render clears the image with the canvas background and paints
// the scene through the projection, in order.
func (rd *Renderer) Render(scene []plot.Primitive, proj Projection) {
	rd.proj = proj
	draw.Draw(rd.img, rd.img.Bounds(), image.NewUniform(plot.Background), image.Point{}, draw.Src)
	plot.Draw(scene, rd)
}

func (rd *Renderer) point(p document.Point) fixed.Point26_6 {
	x, y := rd.proj.ToScreen(p)
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// GridLine paints one guide line across the view.
func (rd *Renderer) GridLine(g plot.GridLine) {
	a := document.Point{X: g.Min, Y: g.At}
	b := document.Point{X: g.Max, Y: g.At}
	if g.Vertical {
		a = document.Point{X: g.At, Y: g.Min}
		b = document.Point{X: g.At, Y: g.Max}
	}
	rd.stroke([]document.Point{a, b}, false, g.Color, 1, g.Width)
}

// Polygon fills the shape when its fill opacity is positive, then
// strokes its outline. Both passes walk the same closed contour.
func (rd *Renderer) Polygon(p plot.Polygon) {
	if len(p.Points) < 3 {
		return
	}
	if p.FillOpacity > 0 {
		rd.filler.Clear()
		rd.filler.Start(rd.point(p.Points[0]))
		for _, pt := range p.Points[1:] {
			rd.filler.Line(rd.point(pt))
		}
		rd.filler.Stop(true)
		rd.filler.Scanner.SetColor(rasterx.ApplyOpacity(p.Fill, p.FillOpacity))
		rd.filler.Draw()
	}
	if p.StrokeWidth > 0 {
		rd.stroke(p.Points, true, p.Stroke, 1, p.StrokeWidth)
	}
}

// Polyline strokes an open path. Paths with less than two points
// have no extent and are skipped; markers show them if needed.
func (rd *Renderer) Polyline(l plot.Polyline) {
	rd.stroke(l.Points, false, l.Color, 1, l.Width)
}

// Marker fills a circle of the given radius, in pixels.
func (rd *Renderer) Marker(m plot.Marker) {
	if m.Radius <= 0 {
		return
	}
	cx, cy := rd.proj.ToScreen(m.Center)
	rd.filler.Clear()
	rasterx.AddCircle(cx, cy, m.Radius, rd.filler)
	rd.filler.Scanner.SetColor(rasterx.ApplyOpacity(m.Color, 1))
	rd.filler.Draw()
}

// stroke walks pts into the dasher and draws, with round caps and
// joins. width is in screen pixels.
func (rd *Renderer) stroke(pts []document.Point, closed bool, c document.Color, opacity, width float64) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	rd.dasher.Clear()
	rd.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap,
		rasterx.Round, nil, 0,
	)
	rd.dasher.Start(rd.point(pts[0]))
	for _, pt := range pts[1:] {
		rd.dasher.Line(rd.point(pt))
	}
	rd.dasher.Stop(closed)
	rd.dasher.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
	rd.dasher.Draw()
}
