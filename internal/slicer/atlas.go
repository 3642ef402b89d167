package slicer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrInvalidPadding reports a negative atlas padding value.
var ErrInvalidPadding = errors.New("atlas padding must be non-negative")

// PackAtlas lays out all nine regions in their 3x3 spatial arrangement on a
// single transparent canvas, with padding pixels of gutter around the
// outer border and between adjacent cells. Column widths and row heights are
// the per-column and per-row maxima of the region sizes, so stretchable
// edges that differ in size from the corners still fit. Each region is
// anchored at the top-left of its cell.
//
// The layout is a pure function of the geometry and padding: packing the
// same inputs twice produces byte-identical pixels.
func PackAtlas(src image.Image, geo *Geometry, padding int) (*image.NRGBA, error) {
	if padding < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPadding, padding)
	}

	regions := geo.Regions()

	var colW, rowH [3]int
	for i, r := range regions {
		col, row := i%3, i/3
		if r.Width > colW[col] {
			colW[col] = r.Width
		}
		if r.Height > rowH[row] {
			rowH[row] = r.Height
		}
	}

	// Three columns and three rows leave four gutters on each axis.
	totalW := colW[0] + colW[1] + colW[2] + 4*padding
	totalH := rowH[0] + rowH[1] + rowH[2] + 4*padding

	canvas := imaging.New(totalW, totalH, color.Transparent)
	ex := NewExtractor(src, geo)

	y := padding
	for row := 0; row < 3; row++ {
		x := padding
		for col := 0; col < 3; col++ {
			r := regions[row*3+col]
			if !r.Degenerate() {
				canvas = imaging.Paste(canvas, ex.Slice(r.Name), image.Pt(x, y))
			}
			x += colW[col] + padding
		}
		y += rowH[row] + padding
	}

	return canvas, nil
}
