// Displays flattened documents in an interactive window:
// a pan and zoom canvas with a menu bar controlling point
// markers, the background grid and per layer visibility.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/reidab/vsvg/document"
	"github.com/reidab/vsvg/plot"
	"github.com/reidab/vsvg/raster"
)

// Viewer owns one displayed document and its UI state.
// It implements ebiten.Game; all its state is touched from the
// host loop only, one frame at a time.
type Viewer struct {
	doc  *document.Flattened
	page *document.PageSize

	showPoint bool
	showGrid  bool

	// set the first time the Layer menu lists a layer, then
	// updated by its checkbox
	layerVisibility map[document.LayerID]bool

	camera camera
	menus  menuBar
	fonts  fontBank

	title      string
	winW, winH int
	style      plot.Style
	log        *zap.Logger

	// frame bookkeeping
	screenW, screenH int
	fitted           bool
	quit             bool
	dragging         bool
	dragX, dragY     int

	// canvas framebuffer, rebuilt on resize
	framebuffer *image.RGBA
	canvas      *ebiten.Image
	renderer    *raster.Renderer
}

// Option customizes a display session.
type Option func(*Viewer)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(v *Viewer) { v.title = title }
}

// WithWindowSize sets the initial window size, in pixels.
func WithWindowSize(w, h int) Option {
	return func(v *Viewer) { v.winW, v.winH = w, h }
}

// WithStyle overrides the canvas style defaults.
func WithStyle(style plot.Style) Option {
	return func(v *Viewer) { v.style = style }
}

// WithLogger sets the session logger. The default discards
// everything.
func WithLogger(log *zap.Logger) Option {
	return func(v *Viewer) { v.log = log }
}

// New returns a viewer over an already flattened and y-flipped
// document. page may be nil for documents without a page frame.
func New(doc *document.Flattened, page *document.PageSize, opts ...Option) *Viewer {
	v := &Viewer{
		doc:             doc,
		page:            page,
		layerVisibility: make(map[document.LayerID]bool),
		fonts:           newFontBank(),
		title:           "vsvg",
		winW:            800,
		winH:            600,
		log:             zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// layerVisible returns the recorded visibility of a layer.
// A layer never toggled is visible; the map is left untouched,
// so that reading the state has no side effect.
func (v *Viewer) layerVisible(id document.LayerID) bool {
	if vis, has := v.layerVisibility[id]; has {
		return vis
	}
	return true
}

// ensureLayerEntry records the visible-by-default entry for a
// layer the menu lists for the first time.
func (v *Viewer) ensureLayerEntry(id document.LayerID) {
	if _, has := v.layerVisibility[id]; !has {
		v.layerVisibility[id] = true
	}
}

func (v *Viewer) setLayerVisible(id document.LayerID, visible bool) {
	v.layerVisibility[id] = visible
}

// buildScene assembles the frame's draw list from the current
// toggles and camera.
func (v *Viewer) buildScene() []plot.Primitive {
	return plot.Scene(v.doc, v.page, v.camera.view(), plot.Options{
		ShowPoints: v.showPoint,
		ShowGrid:   v.showGrid,
		Visible:    v.layerVisible,
		Style:      v.style,
	})
}

// fitHome resets the camera on the document bounds, or on the
// page when the document is empty.
func (v *Viewer) fitHome() {
	b, ok := v.doc.Bounds()
	if v.page != nil {
		pb := v.page.Bounds()
		if ok {
			b = b.Union(pb)
		} else {
			b, ok = pb, true
		}
	}
	if !ok {
		b = document.Bounds{X: -1, Y: -1, W: 2, H: 2}
	}
	v.camera.fit(b)
}
