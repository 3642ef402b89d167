package slicer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// StitchResult is the corner-preview composite together with its resolution.
type StitchResult struct {
	// Image holds the composite. Empty (zero-sized) when both margins on
	// either axis are zero.
	Image *image.NRGBA `json:"-"`

	// Width is left+right, the composite width in pixels.
	Width int `json:"width"`

	// Height is top+bottom, the composite height in pixels.
	Height int `json:"height"`
}

// StitchCorners composes the four corner regions into a single image with
// the center gap removed: top-left at (0,0), top-right at (left,0),
// bottom-left at (0,top), bottom-right at (left,top). Degenerate corners
// contribute nothing on their axis, so the canvas simply shrinks; with all
// margins zero the result is a 0x0 image. Stitching never fails.
func StitchCorners(src image.Image, geo *Geometry) *StitchResult {
	m := geo.Margins()
	w := m.Left + m.Right
	h := m.Top + m.Bottom

	canvas := imaging.New(w, h, color.Transparent)
	ex := NewExtractor(src, geo)
	canvas = imaging.Paste(canvas, ex.Slice(TopLeft), image.Pt(0, 0))
	canvas = imaging.Paste(canvas, ex.Slice(TopRight), image.Pt(m.Left, 0))
	canvas = imaging.Paste(canvas, ex.Slice(BottomLeft), image.Pt(0, m.Top))
	canvas = imaging.Paste(canvas, ex.Slice(BottomRight), image.Pt(m.Left, m.Top))

	return &StitchResult{Image: canvas, Width: w, Height: h}
}
