package slicer

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidDimension reports a source image with non-positive width or height.
var ErrInvalidDimension = errors.New("image dimensions must be positive")

// Side identifies one of the four margins.
type Side string

const (
	SideLeft   Side = "left"
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
)

// RegionName is one of the nine canonical region names. The strings are a
// compatibility surface: downstream tooling keys on them, and they double as
// output filenames for per-slice export.
type RegionName string

const (
	TopLeft      RegionName = "top-left"
	TopCenter    RegionName = "top-center"
	TopRight     RegionName = "top-right"
	MidLeft      RegionName = "mid-left"
	Center       RegionName = "center"
	MidRight     RegionName = "mid-right"
	BottomLeft   RegionName = "bottom-left"
	BottomCenter RegionName = "bottom-center"
	BottomRight  RegionName = "bottom-right"
)

// RegionNames lists the nine regions in canonical row-major order.
var RegionNames = [9]RegionName{
	TopLeft, TopCenter, TopRight,
	MidLeft, Center, MidRight,
	BottomLeft, BottomCenter, BottomRight,
}

// Margins are pixel distances from each image edge inward to the nearest
// slice boundary line.
type Margins struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Region is one cell of the slice grid in source-image pixel space.
type Region struct {
	Name   RegionName `json:"name"`
	X      int        `json:"x"`
	Y      int        `json:"y"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
}

// Rect returns the region as an image.Rectangle anchored at the image origin.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Degenerate reports whether the region has zero width or height.
func (r Region) Degenerate() bool {
	return r.Width == 0 || r.Height == 0
}

// Geometry holds the dimensions of a source image together with a set of
// margins that always satisfy left+right <= width and top+bottom <= height.
// The nine slice rectangles are derived on demand; Geometry keeps no other
// state and no history.
type Geometry struct {
	width   int
	height  int
	margins Margins
}

// New creates a Geometry for a width x height image. It fails with
// ErrInvalidDimension when either dimension is non-positive. Out-of-range
// margins are not an error: each is clamped into the valid range before
// storage, left before right and top before bottom.
func New(width, height int, m Margins) (*Geometry, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	g := &Geometry{width: width, height: height}
	g.SetMargin(SideLeft, m.Left)
	g.SetMargin(SideRight, m.Right)
	g.SetMargin(SideTop, m.Top)
	g.SetMargin(SideBottom, m.Bottom)
	return g, nil
}

// Width returns the source image width in pixels.
func (g *Geometry) Width() int { return g.width }

// Height returns the source image height in pixels.
func (g *Geometry) Height() int { return g.height }

// Margins returns the current margin values.
func (g *Geometry) Margins() Margins { return g.margins }

// SetMargin sets one margin, clamped against the opposite margin and the
// image dimension on that axis, and returns the value actually applied.
// A value already in range is stored unchanged. Unknown sides are ignored
// and return -1.
func (g *Geometry) SetMargin(side Side, value int) int {
	switch side {
	case SideLeft:
		g.margins.Left = clamp(value, 0, g.width-g.margins.Right)
		return g.margins.Left
	case SideRight:
		g.margins.Right = clamp(value, 0, g.width-g.margins.Left)
		return g.margins.Right
	case SideTop:
		g.margins.Top = clamp(value, 0, g.height-g.margins.Bottom)
		return g.margins.Top
	case SideBottom:
		g.margins.Bottom = clamp(value, 0, g.height-g.margins.Top)
		return g.margins.Bottom
	}
	return -1
}

// Regions returns the nine regions in canonical row-major order. The
// rectangles tile the image exactly: every pixel belongs to exactly one
// region, and degenerate regions are included with zero width or height.
func (g *Geometry) Regions() []Region {
	m := g.margins
	xs := [4]int{0, m.Left, g.width - m.Right, g.width}
	ys := [4]int{0, m.Top, g.height - m.Bottom, g.height}

	regions := make([]Region, 0, len(RegionNames))
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			regions = append(regions, Region{
				Name:   RegionNames[row*3+col],
				X:      xs[col],
				Y:      ys[row],
				Width:  xs[col+1] - xs[col],
				Height: ys[row+1] - ys[row],
			})
		}
	}
	return regions
}

// Region returns the named region, or an error for an unknown name.
func (g *Geometry) Region(name RegionName) (Region, error) {
	for _, r := range g.Regions() {
		if r.Name == name {
			return r, nil
		}
	}
	return Region{}, fmt.Errorf("unknown region: %s", name)
}

// IsDegenerate reports whether the named region has zero width or height.
// Unknown names report false.
func (g *Geometry) IsDegenerate(name RegionName) bool {
	r, err := g.Region(name)
	if err != nil {
		return false
	}
	return r.Degenerate()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
