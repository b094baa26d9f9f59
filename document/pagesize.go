package document

import "strings"

// PageSize is the page dimensions of a document, in document units
// (CSS pixels at 96 dpi for the named sizes below).
type PageSize struct {
	W, H float64
}

// Bounds returns the page rectangle as seen by the renderer,
// that is after the producer's y-flip: the page extends from
// (0, -H) to (W, 0).
func (p PageSize) Bounds() Bounds {
	return Bounds{X: 0, Y: -p.H, W: p.W, H: p.H}
}

var pageSizes = map[string]PageSize{
	"a6":     {W: 396.9, H: 559.4},
	"a5":     {W: 559.4, H: 793.7},
	"a4":     {W: 793.7, H: 1122.5},
	"a3":     {W: 1122.5, H: 1587.4},
	"letter": {W: 816, H: 1056},
	"legal":  {W: 816, H: 1344},
}

// PageSizeByName resolves a named page size such as "a4" or
// "letter". Names are matched case-insensitively.
func PageSizeByName(name string) (PageSize, bool) {
	p, has := pageSizes[strings.ToLower(name)]
	return p, has
}
