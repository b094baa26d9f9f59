package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/reidab/vsvg/document"
	"github.com/reidab/vsvg/plot"
)

// projection used by the tests: 1 document unit = 1 pixel,
// y flipped the way the viewer camera does
type testProj struct{}

func (testProj) ToScreen(p document.Point) (float64, float64) { return p.X, -p.Y }
func (testProj) Scale() float64                               { return 1 }

func renderScene(scene []plot.Primitive) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	NewRenderer(img).Render(scene, testProj{})
	return img
}

func background() color.RGBA {
	return color.RGBA{R: plot.Background.R, G: plot.Background.G, B: plot.Background.B, A: 0xff}
}

func probe(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	if got := img.RGBAAt(x, y); got != want {
		t.Errorf("pixel (%d, %d): expected %v, got %v", x, y, want, got)
	}
}

func countNonBackground(img *image.RGBA) int {
	n, bg := 0, background()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}

func TestEmptyScene(t *testing.T) {
	img := renderScene(nil)
	if n := countNonBackground(img); n != 0 {
		t.Errorf("empty scene: %d pixels are not the background", n)
	}
}

func TestPageFrame(t *testing.T) {
	doc := document.NewFlattened()
	scene := plot.Scene(doc, &document.PageSize{W: 100, H: 50}, plot.View{}, plot.Options{})
	img := renderScene(scene)

	// page interior is white, the shadow shows below and right of
	// it, and the rest of the canvas keeps the background fill
	probe(t, img, 50, 25, color.RGBA{0xff, 0xff, 0xff, 0xff})
	probe(t, img, 105, 55, color.RGBA{180, 180, 180, 0xff})
	probe(t, img, 150, 80, background())
}

func TestOutlineOnlyPolygon(t *testing.T) {
	scene := []plot.Primitive{plot.Polygon{
		Points: []document.Point{
			{X: 20, Y: -20}, {X: 80, Y: -20}, {X: 80, Y: -60}, {X: 20, Y: -60},
		},
		Fill:        document.RGB(10, 10, 10),
		FillOpacity: 0,
		Stroke:      document.RGB(128, 128, 128),
		StrokeWidth: 1,
	}}
	img := renderScene(scene)

	// the outline leaves the interior untouched
	probe(t, img, 50, 40, background())
	if countNonBackground(img) == 0 {
		t.Error("expected the outline to paint some pixels")
	}
}

func TestPolyline(t *testing.T) {
	red := document.RGB(200, 10, 10)
	scene := []plot.Primitive{plot.Polyline{
		Points: []document.Point{{X: 10, Y: -30}, {X: 60, Y: -30}},
		Color:  red,
		Width:  4,
	}}
	img := renderScene(scene)

	probe(t, img, 35, 30, color.RGBA{200, 10, 10, 0xff})
	probe(t, img, 35, 38, background())
}

func TestSinglePointPath(t *testing.T) {
	scene := []plot.Primitive{plot.Polyline{
		Points: []document.Point{{X: 50, Y: -50}},
		Color:  document.RGB(200, 10, 10),
		Width:  2,
	}}
	if n := countNonBackground(renderScene(scene)); n != 0 {
		t.Errorf("a single point polyline has no extent, %d pixels painted", n)
	}
}

func TestMarker(t *testing.T) {
	blue := document.RGB(10, 10, 200)
	scene := []plot.Primitive{plot.Marker{
		Center: document.Point{X: 20, Y: -20},
		Radius: 6,
		Color:  blue,
	}}
	img := renderScene(scene)

	probe(t, img, 20, 20, color.RGBA{10, 10, 200, 0xff})
	probe(t, img, 23, 20, color.RGBA{10, 10, 200, 0xff})
	probe(t, img, 40, 20, background())
}

func TestGridLine(t *testing.T) {
	scene := []plot.Primitive{plot.GridLine{
		At: 150, Min: -80, Max: -5,
		Vertical: true,
		Color:    document.RGB(210, 210, 210),
		Width:    2,
	}}
	img := renderScene(scene)

	probe(t, img, 150, 40, color.RGBA{210, 210, 210, 0xff})
	probe(t, img, 140, 40, background())
}

func TestSceneOcclusion(t *testing.T) {
	// a path drawn after the page shows on top of it
	doc := document.NewFlattened()
	l := doc.Layer(1)
	l.Paths = append(l.Paths, document.Path{
		Data:        []document.Point{{X: 20, Y: -25}, {X: 80, Y: -25}},
		Color:       document.RGB(10, 150, 10),
		StrokeWidth: 3,
	})
	scene := plot.Scene(doc, &document.PageSize{W: 100, H: 50}, plot.View{}, plot.Options{})
	img := renderScene(scene)

	probe(t, img, 50, 25, color.RGBA{10, 150, 10, 0xff})
	probe(t, img, 50, 10, color.RGBA{0xff, 0xff, 0xff, 0xff})
}
