package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reidab/vsvg/document"
)

// Pen colors for the demo layers.
var (
	spiralPen = document.RGB(200, 60, 40)
	ringPen   = document.RGB(40, 90, 200)
	starPen   = document.RGB(30, 140, 70)
)

// demoSource is a procedural document producer: a spiral, a ring of
// circles and a star, flattened on demand at the requested tolerance.
type demoSource struct {
	page *document.PageSize
}

var _ document.Source = (*demoSource)(nil)

func newDemoSource(page string) (*demoSource, error) {
	p, err := parsePage(page)
	if err != nil {
		return nil, err
	}
	return &demoSource{page: p}, nil
}

// parsePage resolves a page flag value: a named size such as "a4", a
// "WxH" pair in document units, or "none" for no page at all.
func parsePage(s string) (*document.PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return nil, nil
	}
	if p, ok := document.PageSizeByName(s); ok {
		return &p, nil
	}
	if ws, hs, ok := strings.Cut(s, "x"); ok {
		w, errW := strconv.ParseFloat(ws, 64)
		h, errH := strconv.ParseFloat(hs, 64)
		if errW == nil && errH == nil && w > 0 && h > 0 {
			return &document.PageSize{W: w, H: h}, nil
		}
	}
	return nil, fmt.Errorf("unknown page size %q", s)
}

func (s *demoSource) PageSize() (document.PageSize, bool) {
	if s.page == nil {
		return document.PageSize{}, false
	}
	return *s.page, true
}

// Flatten builds the demo content, sized to the page (or to a default
// region when there is none). Coordinates are emitted in document space
// with y pointing down, as an SVG producer would.
func (s *demoSource) Flatten(tolerance float64) *document.Flattened {
	w, h := 400.0, 300.0
	if s.page != nil {
		w, h = s.page.W, s.page.H
	}
	cx, cy := w/2, h/2
	radius := 0.35 * math.Min(w, h)

	flat := document.NewFlattened()

	spiral := flat.Layer(1)
	spiral.Paths = append(spiral.Paths, document.Path{
		Data:        flattenSpiral(cx, cy, radius, 4, tolerance),
		Color:       spiralPen,
		StrokeWidth: 1,
	})

	rings := flat.Layer(2)
	for k := 0; k < 6; k++ {
		a := float64(k) * math.Pi / 3
		rings.Paths = append(rings.Paths, document.Path{
			Data:        flattenArc(cx+2*radius/3*math.Cos(a), cy+2*radius/3*math.Sin(a), radius/3, 0, 2*math.Pi, tolerance),
			Color:       ringPen,
			StrokeWidth: 1.2,
		})
	}

	star := flat.Layer(3)
	star.Paths = append(star.Paths, document.Path{
		Data:        starPolygon(cx, cy, radius, 9, 4),
		Color:       starPen,
		StrokeWidth: 2,
	})

	return flat
}

const minArcSteps = 8

// arcSteps returns the number of chords keeping the sagitta of a
// radius-r arc under tol over the given sweep, in radians.
func arcSteps(r, sweep, tol float64) int {
	if r <= 0 || sweep <= 0 {
		return 1
	}
	if tol <= 0 || tol >= r {
		return minArcSteps
	}
	n := int(math.Ceil(sweep / (2 * math.Acos(1-tol/r))))
	if n < minArcSteps {
		n = minArcSteps
	}
	return n
}

// flattenArc samples a circular arc into a polyline whose chords
// deviate from the true arc by at most tol.
func flattenArc(cx, cy, r, from, sweep, tol float64) []document.Point {
	n := arcSteps(r, math.Abs(sweep), tol)
	pts := make([]document.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := from + sweep*float64(i)/float64(n)
		pts = append(pts, document.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

// flattenSpiral samples an Archimedean spiral out to rMax. The chord
// bound of the outermost turn is conservative for the inner ones.
func flattenSpiral(cx, cy, rMax float64, turns int, tol float64) []document.Point {
	sweep := 2 * math.Pi * float64(turns)
	n := arcSteps(rMax, sweep, tol)
	pts := make([]document.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := sweep * float64(i) / float64(n)
		r := rMax * float64(i) / float64(n)
		pts = append(pts, document.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

// starPolygon connects every step-th vertex of a regular n-gon,
// closing back on the first vertex.
func starPolygon(cx, cy, r float64, n, step int) []document.Point {
	pts := make([]document.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i*step)/float64(n)
		pts = append(pts, document.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}
