package viewer

import (
	"math"

	"github.com/reidab/vsvg/document"
	"github.com/reidab/vsvg/plot"
)

const (
	minZoom  = 0.1
	maxZoom  = 100.0
	zoomStep = 1.25
)

// camera maps document coordinates to canvas pixels. One zoom
// factor serves both axes, keeping the aspect ratio locked to 1:1
// whatever the window shape.
type camera struct {
	center document.Point // document point shown at the canvas center
	zoom   float64        // canvas pixels per document unit

	width, height int // canvas size, pixels
}

func (c *camera) setViewport(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.width, c.height = w, h
	if c.zoom == 0 {
		c.zoom = 1
	}
}

// ToScreen implements raster.Projection. The y axis is flipped:
// the document is y-up, the canvas is y-down.
func (c *camera) ToScreen(p document.Point) (x, y float64) {
	x = (p.X-c.center.X)*c.zoom + float64(c.width)/2
	y = float64(c.height)/2 - (p.Y-c.center.Y)*c.zoom
	return x, y
}

// Scale implements raster.Projection.
func (c *camera) Scale() float64 { return c.zoom }

func (c *camera) toWorld(x, y float64) document.Point {
	return document.Point{
		X: (x-float64(c.width)/2)/c.zoom + c.center.X,
		Y: c.center.Y - (y-float64(c.height)/2)/c.zoom,
	}
}

// view returns the visible document region, for grid layout.
func (c *camera) view() plot.View {
	halfW := float64(c.width) / 2 / c.zoom
	halfH := float64(c.height) / 2 / c.zoom
	return plot.View{
		MinX: c.center.X - halfW, MaxX: c.center.X + halfW,
		MinY: c.center.Y - halfH, MaxY: c.center.Y + halfH,
		PixelsPerUnit: c.zoom,
	}
}

// pan shifts the view by a cursor displacement, in pixels.
func (c *camera) pan(dx, dy float64) {
	c.center.X -= dx / c.zoom
	c.center.Y += dy / c.zoom
}

// zoomAt scales the zoom by factor, keeping the document point
// under the cursor (x, y) fixed on screen.
func (c *camera) zoomAt(x, y, factor float64) {
	anchor := c.toWorld(x, y)
	c.zoom = clampZoom(c.zoom * factor)
	c.center.X = anchor.X - (x-float64(c.width)/2)/c.zoom
	c.center.Y = anchor.Y + (y-float64(c.height)/2)/c.zoom
}

// fit centers the given bounds in the canvas, with a small margin
// around them. Degenerate bounds only recenter the view.
func (c *camera) fit(b document.Bounds) {
	c.center = document.Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
	zx, zy := math.Inf(1), math.Inf(1)
	if b.W > 0 {
		zx = float64(c.width) / b.W
	}
	if b.H > 0 {
		zy = float64(c.height) / b.H
	}
	z := math.Min(zx, zy) * 0.9
	if math.IsInf(z, 1) {
		z = 1
	}
	c.zoom = clampZoom(z)
}

func clampZoom(z float64) float64 {
	if z < minZoom {
		return minZoom
	}
	if z > maxZoom {
		return maxZoom
	}
	return z
}
