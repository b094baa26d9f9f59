package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/reidab/vsvg/document"
)

// Show flattens src at the given tolerance and displays it,
// blocking until the window is closed. The flattened document is
// y-flipped before display, converting the usual y-down document
// convention to the y-up one the canvas assumes.
//
// The only failure reported is the display session itself not
// starting; everything past that point is handled frame by frame.
func Show(src document.Source, tolerance float64, opts ...Option) error {
	var page *document.PageSize
	if ps, has := src.PageSize(); has {
		page = &ps
	}

	flat := src.Flatten(tolerance)
	flat.ScaleNonUniform(1, -1)

	v := New(flat, page, opts...)
	v.log.Info("document flattened",
		zap.Float64("tolerance", tolerance),
		zap.Int("layers", flat.NumLayers()),
		zap.Int("paths", flat.NumPaths()),
		zap.Bool("page", page != nil))
	if err := v.Run(); err != nil {
		return fmt.Errorf("show document: %w", err)
	}
	return nil
}
