package viewer

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/reidab/vsvg/raster"
)

// Run opens the window and blocks until it is closed, either by
// the user or through the File menu. The returned error covers
// window and graphics context creation failures.
func (v *Viewer) Run() error {
	ebiten.SetWindowTitle(v.title)
	ebiten.SetWindowSize(v.winW, v.winH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(320, 240, -1, -1)
	v.log.Info("opening window",
		zap.String("title", v.title),
		zap.Int("layers", v.doc.NumLayers()),
		zap.Int("paths", v.doc.NumPaths()))
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("display session: %w", err)
	}
	v.log.Info("window closed")
	return nil
}

// Update runs the state half of the frame: menu layout and
// interaction first, then canvas input. Toggles changed here are
// picked up by Draw in the same frame.
func (v *Viewer) Update() error {
	if v.quit {
		return ebiten.Termination
	}

	v.camera.setViewport(v.screenW, v.screenH-menuBarHeight)
	if !v.fitted {
		v.fitHome()
		v.fitted = true
	}

	v.layoutMenus()

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !v.handleMenuClick(x, y) {
			v.dragging = true
			v.dragX, v.dragY = x, y
		}
	}
	if v.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		v.camera.pan(float64(x-v.dragX), float64(y-v.dragY))
		v.dragX, v.dragY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.dragging = false
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 && v.menus.open == "" && y >= menuBarHeight {
		factor := math.Pow(zoomStep, wheelY)
		v.camera.zoomAt(float64(x), float64(y-menuBarHeight), factor)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		v.fitHome()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		v.menus.open = ""
	}
	return nil
}

// Draw paints the canvas framebuffer, uploads it under the menu
// bar, then draws the bar chrome on top.
func (v *Viewer) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ch := h - menuBarHeight
	if ch < 1 {
		ch = 1
	}
	if v.framebuffer == nil || v.framebuffer.Bounds().Dx() != w || v.framebuffer.Bounds().Dy() != ch {
		v.framebuffer = image.NewRGBA(image.Rect(0, 0, w, ch))
		v.canvas = ebiten.NewImage(w, ch)
		v.renderer = raster.NewRenderer(v.framebuffer)
	}

	v.camera.setViewport(w, ch)
	if !v.fitted {
		v.fitHome()
		v.fitted = true
	}

	v.renderer.Render(v.buildScene(), &v.camera)
	v.canvas.WritePixels(v.framebuffer.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, menuBarHeight)
	screen.DrawImage(v.canvas, op)

	v.drawMenuBar(screen)
}

// Layout keeps the render size equal to the window size, so one
// texture pixel is one screen pixel.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	v.screenW, v.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
