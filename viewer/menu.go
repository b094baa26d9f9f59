package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/reidab/vsvg/document"
)

const (
	menuBarHeight  = 26
	menuItemHeight = 22
	menuFontSize   = 13
	checkboxSize   = 14
)

// menu bar chrome, light theme
var (
	barFill      = color.RGBA{R: 248, G: 248, B: 248, A: 255}
	barBorder    = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	panelFill    = color.RGBA{R: 252, G: 252, B: 252, A: 255}
	hoverFill    = color.RGBA{R: 222, G: 233, B: 248, A: 255}
	labelColor   = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	checkBorder  = color.RGBA{R: 130, G: 148, B: 176, A: 255}
	checkedColor = color.RGBA{R: 46, G: 102, B: 182, A: 255}
)

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type menuAction uint8

const (
	actionQuit menuAction = iota
	actionTogglePoints
	actionToggleGrid
	actionToggleLayer
)

// menuButton is one entry of the top bar.
type menuButton struct {
	name string
	r    rect
}

// menuItem is one row of the open drop-down.
type menuItem struct {
	action menuAction
	layer  document.LayerID // for actionToggleLayer
	label  string
	check  bool // row carries a checkbox
	r      rect
}

// menuBar holds the immediate-mode menu state. Buttons and item
// rows are laid out again every frame from the document and the
// current font metrics.
type menuBar struct {
	open    string // name of the open menu, "" when all closed
	buttons []menuButton
	items   []menuItem
	panel   rect // drop-down background, when open
}

type fontBank struct {
	regular *opentype.Font
	cache   map[int]font.Face
}

func newFontBank() fontBank {
	bank := fontBank{cache: map[int]font.Face{}}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return bank
	}
	bank.regular = reg
	return bank
}

// face returns a cached UI face, falling back on the basic face
// when parsing failed.
func (b *fontBank) face(size int) font.Face {
	if f, has := b.cache[size]; has {
		return f
	}
	if b.regular == nil {
		return basicfont.Face7x13
	}
	f, err := opentype.NewFace(b.regular, &opentype.FaceOptions{
		Size: float64(size), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	b.cache[size] = f
	return f
}

func textWidth(face font.Face, s string) int {
	adv := font.MeasureString(face, s)
	px := (int(adv) + 32) >> 6
	if px < 0 {
		px = 0
	}
	return px
}

// layoutMenus recomputes the bar buttons and, when a menu is
// open, its drop-down rows. Listing a layer row records its
// visible-by-default entry, so defaults become explicit exactly
// when the user first sees the checkbox.
func (v *Viewer) layoutMenus() {
	face := v.fonts.face(menuFontSize)

	v.menus.buttons = v.menus.buttons[:0]
	x := 4
	for _, name := range []string{"File", "View", "Layer"} {
		w := textWidth(face, name) + 16
		v.menus.buttons = append(v.menus.buttons, menuButton{
			name: name,
			r:    rect{x: x, y: 0, w: w, h: menuBarHeight},
		})
		x += w
	}

	v.menus.items = v.menus.items[:0]
	if v.menus.open == "" {
		v.menus.panel = rect{}
		return
	}

	switch v.menus.open {
	case "File":
		v.menus.items = append(v.menus.items, menuItem{action: actionQuit, label: "Quit"})
	case "View":
		v.menus.items = append(v.menus.items,
			menuItem{action: actionTogglePoints, label: "Show points", check: true},
			menuItem{action: actionToggleGrid, label: "Show grid", check: true},
		)
	case "Layer":
		v.doc.Walk(func(id document.LayerID, _ *document.Layer) {
			v.ensureLayerEntry(id)
			v.menus.items = append(v.menus.items, menuItem{
				action: actionToggleLayer,
				layer:  id,
				label:  fmt.Sprintf("Layer %d", id),
				check:  true,
			})
		})
	}

	panelX := 4
	for _, b := range v.menus.buttons {
		if b.name == v.menus.open {
			panelX = b.r.x
		}
	}
	panelW := 0
	for _, it := range v.menus.items {
		w := textWidth(face, it.label) + checkboxSize + 24
		if w > panelW {
			panelW = w
		}
	}
	v.menus.panel = rect{
		x: panelX, y: menuBarHeight,
		w: panelW, h: len(v.menus.items)*menuItemHeight + 8,
	}
	for i := range v.menus.items {
		v.menus.items[i].r = rect{
			x: v.menus.panel.x,
			y: v.menus.panel.y + 4 + i*menuItemHeight,
			w: v.menus.panel.w,
			h: menuItemHeight,
		}
	}
}

// handleMenuClick routes a press at (x, y) through the menu bar.
// It reports whether the click was consumed; unconsumed clicks
// fall through to the canvas.
func (v *Viewer) handleMenuClick(x, y int) bool {
	if v.menus.open != "" {
		for _, it := range v.menus.items {
			if it.r.contains(x, y) {
				v.invokeMenuItem(it)
				return true
			}
		}
		for _, b := range v.menus.buttons {
			if b.r.contains(x, y) {
				if b.name == v.menus.open {
					v.menus.open = ""
				} else {
					v.menus.open = b.name
				}
				return true
			}
		}
		// clicking anywhere else closes the menu and swallows
		// the click, it must not start a canvas drag
		v.menus.open = ""
		return true
	}

	if y >= menuBarHeight {
		return false
	}
	for _, b := range v.menus.buttons {
		if b.r.contains(x, y) {
			v.menus.open = b.name
			return true
		}
	}
	return true // dead zone of the bar
}

// invokeMenuItem applies one menu row. Toggles mutate the state
// read by this same frame's canvas render; only Quit closes the
// drop-down.
func (v *Viewer) invokeMenuItem(it menuItem) {
	switch it.action {
	case actionQuit:
		v.quit = true
		v.menus.open = ""
		v.log.Debug("quit requested")
	case actionTogglePoints:
		v.showPoint = !v.showPoint
		v.log.Debug("toggled points", zap.Bool("show", v.showPoint))
	case actionToggleGrid:
		v.showGrid = !v.showGrid
		v.log.Debug("toggled grid", zap.Bool("show", v.showGrid))
	case actionToggleLayer:
		vis := !v.layerVisible(it.layer)
		v.setLayerVisible(it.layer, vis)
		v.log.Debug("toggled layer", zap.Int("layer", int(it.layer)), zap.Bool("visible", vis))
	}
}

// itemChecked returns the live value behind a checkbox row.
func (v *Viewer) itemChecked(it menuItem) bool {
	switch it.action {
	case actionTogglePoints:
		return v.showPoint
	case actionToggleGrid:
		return v.showGrid
	case actionToggleLayer:
		return v.layerVisible(it.layer)
	}
	return false
}

func (v *Viewer) drawMenuBar(screen *ebiten.Image) {
	face := v.fonts.face(menuFontSize)
	w := screen.Bounds().Dx()
	mx, my := ebiten.CursorPosition()

	ebitenutil.DrawRect(screen, 0, 0, float64(w), menuBarHeight, barFill)
	ebitenutil.DrawLine(screen, 0, menuBarHeight, float64(w), menuBarHeight, barBorder)

	ascent := face.Metrics().Ascent.Round()
	descent := face.Metrics().Descent.Round()
	for _, b := range v.menus.buttons {
		if b.name == v.menus.open || (v.menus.open == "" && b.r.contains(mx, my)) {
			ebitenutil.DrawRect(screen, float64(b.r.x), float64(b.r.y), float64(b.r.w), float64(b.r.h), hoverFill)
		}
		baseline := b.r.y + (b.r.h+ascent-descent)/2
		text.Draw(screen, b.name, face, b.r.x+8, baseline, labelColor)
	}

	if v.menus.open == "" {
		return
	}

	p := v.menus.panel
	ebitenutil.DrawRect(screen, float64(p.x), float64(p.y), float64(p.w), float64(p.h), panelFill)
	drawBorder(screen, p, barBorder)

	for _, it := range v.menus.items {
		if it.r.contains(mx, my) {
			ebitenutil.DrawRect(screen, float64(it.r.x), float64(it.r.y), float64(it.r.w), float64(it.r.h), hoverFill)
		}
		labelX := it.r.x + 8
		if it.check {
			box := rect{
				x: it.r.x + 6,
				y: it.r.y + (it.r.h-checkboxSize)/2,
				w: checkboxSize,
				h: checkboxSize,
			}
			drawCheckbox(screen, box, v.itemChecked(it))
			labelX = box.x + box.w + 6
		}
		baseline := it.r.y + (it.r.h+ascent-descent)/2
		text.Draw(screen, it.label, face, labelX, baseline, labelColor)
	}
}

func drawCheckbox(screen *ebiten.Image, r rect, checked bool) {
	ebitenutil.DrawRect(screen, float64(r.x), float64(r.y), float64(r.w), float64(r.h), color.RGBA{R: 255, G: 255, B: 255, A: 255})
	drawBorder(screen, r, checkBorder)
	if checked {
		ebitenutil.DrawRect(screen, float64(r.x+3), float64(r.y+3), float64(r.w-6), float64(r.h-6), checkedColor)
	}
}

func drawBorder(screen *ebiten.Image, r rect, c color.Color) {
	x0, y0 := float64(r.x), float64(r.y)
	x1, y1 := float64(r.x+r.w), float64(r.y+r.h)
	ebitenutil.DrawLine(screen, x0, y0, x1, y0, c)
	ebitenutil.DrawLine(screen, x0, y1, x1, y1, c)
	ebitenutil.DrawLine(screen, x0, y0, x0, y1, c)
	ebitenutil.DrawLine(screen, x1, y0, x1, y1, c)
}
