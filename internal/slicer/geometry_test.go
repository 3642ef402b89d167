package slicer

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func newGeometry(t *testing.T, w, h int, m Margins) *Geometry {
	t.Helper()
	g, err := New(w, h, m)
	if err != nil {
		t.Fatalf("New(%d, %d, %+v) failed: %v", w, h, m, err)
	}
	return g
}

func solidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// patternImage creates an image with different colors in each quadrant
func patternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func rgba8(c color.Color) (uint8, uint8, uint8, uint8) {
	r, g, b, a := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}

func TestNew_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 80},
		{"zero height", 100, 0},
		{"negative width", -10, 80},
		{"negative height", 100, -1},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h, Margins{})
			if !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("New(%d, %d): got %v, want ErrInvalidDimension", tt.w, tt.h, err)
			}
		})
	}
}

func TestNew_ClampsMargins(t *testing.T) {
	tests := []struct {
		name      string
		requested Margins
		want      Margins
	}{
		{"in range", Margins{10, 8, 12, 9}, Margins{10, 8, 12, 9}},
		{"negative to zero", Margins{-5, -1, -20, -3}, Margins{0, 0, 0, 0}},
		{"horizontal overflow", Margins{Left: 60, Right: 60}, Margins{Left: 60, Right: 40}},
		{"vertical overflow", Margins{Top: 50, Bottom: 50}, Margins{Top: 50, Bottom: 30}},
		{"left beyond width", Margins{Left: 500}, Margins{Left: 100}},
		{"exact fit", Margins{50, 40, 50, 40}, Margins{50, 40, 50, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGeometry(t, 100, 80, tt.requested)
			if g.Margins() != tt.want {
				t.Errorf("margins: got %+v, want %+v", g.Margins(), tt.want)
			}
		})
	}
}

func TestSetMargin(t *testing.T) {
	tests := []struct {
		name  string
		side  Side
		value int
		want  int
	}{
		{"left in range", SideLeft, 30, 30},
		{"left clamped by right", SideLeft, 95, 88}, // 100 - right(12)
		{"left negative", SideLeft, -4, 0},
		{"right in range", SideRight, 20, 20},
		{"right clamped by left", SideRight, 99, 90}, // 100 - left(10)
		{"top in range", SideTop, 40, 40},
		{"top clamped by bottom", SideTop, 80, 71}, // 80 - bottom(9)
		{"bottom clamped by top", SideBottom, 80, 72}, // 80 - top(8)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGeometry(t, 100, 80, Margins{10, 8, 12, 9})
			got := g.SetMargin(tt.side, tt.value)
			if got != tt.want {
				t.Errorf("SetMargin(%s, %d): got %d, want %d", tt.side, tt.value, got, tt.want)
			}
		})
	}
}

func TestSetMargin_IdempotentForValidValues(t *testing.T) {
	g := newGeometry(t, 100, 80, Margins{10, 8, 12, 9})

	for _, side := range []Side{SideLeft, SideTop, SideRight, SideBottom} {
		m := g.Margins()
		current := map[Side]int{
			SideLeft: m.Left, SideTop: m.Top, SideRight: m.Right, SideBottom: m.Bottom,
		}[side]
		if got := g.SetMargin(side, current); got != current {
			t.Errorf("SetMargin(%s, %d) changed an already-valid value to %d", side, current, got)
		}
	}
}

func TestSetMargin_UnknownSide(t *testing.T) {
	g := newGeometry(t, 100, 80, Margins{})
	if got := g.SetMargin("diagonal", 10); got != -1 {
		t.Errorf("SetMargin(diagonal): got %d, want -1", got)
	}
}

func TestSetMargin_InvariantHolds(t *testing.T) {
	// Hammer the clamp with aggressive values; the margin sums must never
	// exceed the image dimensions.
	g := newGeometry(t, 100, 80, Margins{})
	values := []int{-50, 0, 10, 50, 99, 100, 101, 1000}

	for _, l := range values {
		for _, r := range values {
			g.SetMargin(SideLeft, l)
			g.SetMargin(SideRight, r)
			m := g.Margins()
			if m.Left+m.Right > 100 {
				t.Fatalf("left(%d)+right(%d) exceeds width after SetMargin(%d, %d)",
					m.Left, m.Right, l, r)
			}
			if m.Left < 0 || m.Right < 0 {
				t.Fatalf("negative margin after SetMargin(%d, %d): %+v", l, r, m)
			}
		}
	}
}

func TestRegions_CanonicalOrder(t *testing.T) {
	g := newGeometry(t, 100, 80, Margins{10, 8, 12, 9})
	regions := g.Regions()

	if len(regions) != 9 {
		t.Fatalf("region count: got %d, want 9", len(regions))
	}
	for i, r := range regions {
		if r.Name != RegionNames[i] {
			t.Errorf("region %d: got %s, want %s", i, r.Name, RegionNames[i])
		}
	}
}

func TestRegions_ConcreteScenario(t *testing.T) {
	g := newGeometry(t, 100, 80, Margins{10, 8, 12, 9})

	tests := []struct {
		name RegionName
		want Region
	}{
		{TopLeft, Region{TopLeft, 0, 0, 10, 8}},
		{TopCenter, Region{TopCenter, 10, 0, 78, 8}},
		{TopRight, Region{TopRight, 88, 0, 12, 8}},
		{MidLeft, Region{MidLeft, 0, 8, 10, 63}},
		{Center, Region{Center, 10, 8, 78, 63}},
		{MidRight, Region{MidRight, 88, 8, 12, 63}},
		{BottomLeft, Region{BottomLeft, 0, 71, 10, 9}},
		{BottomCenter, Region{BottomCenter, 10, 71, 78, 9}},
		{BottomRight, Region{BottomRight, 88, 71, 12, 9}},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			got, err := g.Region(tt.name)
			if err != nil {
				t.Fatalf("Region(%s) failed: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRegions_TileImageExactly(t *testing.T) {
	cases := []Margins{
		{10, 8, 12, 9},
		{0, 0, 0, 0},
		{50, 40, 50, 40},
		{100, 0, 0, 80},
		{1, 1, 1, 1},
	}

	for _, m := range cases {
		g := newGeometry(t, 100, 80, m)

		covered := make([]bool, 100*80)
		for _, r := range g.Regions() {
			for y := r.Y; y < r.Y+r.Height; y++ {
				for x := r.X; x < r.X+r.Width; x++ {
					idx := y*100 + x
					if covered[idx] {
						t.Fatalf("margins %+v: pixel (%d,%d) covered twice", m, x, y)
					}
					covered[idx] = true
				}
			}
		}
		for i, ok := range covered {
			if !ok {
				t.Fatalf("margins %+v: pixel (%d,%d) not covered", m, i%100, i/100)
			}
		}
	}
}

func TestRegions_ZeroMargins(t *testing.T) {
	g := newGeometry(t, 10, 10, Margins{})

	center, err := g.Region(Center)
	if err != nil {
		t.Fatalf("Region(center) failed: %v", err)
	}
	if center != (Region{Center, 0, 0, 10, 10}) {
		t.Errorf("center: got %+v, want full image", center)
	}

	zeroArea := 0
	for _, r := range g.Regions() {
		if r.Width*r.Height == 0 {
			zeroArea++
		}
	}
	if zeroArea != 8 {
		t.Errorf("zero-area regions: got %d, want 8", zeroArea)
	}
}

func TestIsDegenerate(t *testing.T) {
	g := newGeometry(t, 100, 80, Margins{Left: 0, Top: 8, Right: 12, Bottom: 9})

	tests := []struct {
		name RegionName
		want bool
	}{
		{TopLeft, true},  // zero width (left margin 0)
		{MidLeft, true},  // zero width
		{TopCenter, false},
		{Center, false},
		{BottomRight, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			if got := g.IsDegenerate(tt.name); got != tt.want {
				t.Errorf("IsDegenerate(%s): got %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if g.IsDegenerate("no-such-region") {
		t.Error("IsDegenerate should report false for unknown names")
	}
}

func TestRegion_UnknownName(t *testing.T) {
	g := newGeometry(t, 100, 80, Margins{})
	if _, err := g.Region("middle"); err == nil {
		t.Error("Region should fail for unknown names")
	}
}
