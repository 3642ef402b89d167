package slicer

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func TestPackAtlas_NegativePadding(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{255, 0, 0, 255})
	g := newGeometry(t, 10, 10, Margins{2, 2, 2, 2})

	_, err := PackAtlas(img, g, -1)
	if !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("got %v, want ErrInvalidPadding", err)
	}
}

func TestPackAtlas_Dimensions(t *testing.T) {
	img := patternImage(100, 80)
	g := newGeometry(t, 100, 80, Margins{10, 8, 12, 9})

	// Three columns plus four gutters: left, between, between, right.
	atlas, err := PackAtlas(img, g, 2)
	if err != nil {
		t.Fatalf("PackAtlas failed: %v", err)
	}

	wantW := (10 + 78 + 12) + 4*2
	wantH := (8 + 63 + 9) + 4*2
	if b := atlas.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("atlas size: got %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}

func TestPackAtlas_ZeroPadding(t *testing.T) {
	img := patternImage(100, 80)
	g := newGeometry(t, 100, 80, Margins{10, 8, 12, 9})

	atlas, err := PackAtlas(img, g, 0)
	if err != nil {
		t.Fatalf("PackAtlas failed: %v", err)
	}

	// With zero padding the cells reassemble the source dimensions exactly.
	if b := atlas.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("atlas size: got %dx%d, want 100x80", b.Dx(), b.Dy())
	}
}

func TestPackAtlas_TransparentGutters(t *testing.T) {
	img := solidImage(100, 80, color.RGBA{255, 0, 0, 255})
	g := newGeometry(t, 100, 80, Margins{10, 8, 12, 9})

	atlas, err := PackAtlas(img, g, 2)
	if err != nil {
		t.Fatalf("PackAtlas failed: %v", err)
	}

	gutters := []struct {
		name string
		x, y int
	}{
		{"outer border corner", 0, 0},
		{"left border", 1, 20},
		{"gutter after first column", 13, 20}, // 2 + 10 + 1
		{"gutter after first row", 20, 11},    // 2 + 8 + 1
	}
	for _, tt := range gutters {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, a := rgba8(atlas.At(tt.x, tt.y))
			if a != 0 {
				t.Errorf("pixel (%d,%d): alpha %d, want fully transparent", tt.x, tt.y, a)
			}
		})
	}

	// Cell interiors carry the source pixels.
	cells := []struct {
		name string
		x, y int
	}{
		{"top-left cell", 2, 2},
		{"center cell", 2 + 10 + 2, 2 + 8 + 2},
		{"bottom-right cell", 2 + 10 + 2 + 78 + 2, 2 + 8 + 2 + 63 + 2},
	}
	for _, tt := range cells {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, a := rgba8(atlas.At(tt.x, tt.y))
			if r != 255 || a != 255 {
				t.Errorf("pixel (%d,%d): got r=%d a=%d, want opaque red", tt.x, tt.y, r, a)
			}
		})
	}
}

func TestPackAtlas_DegenerateRegions(t *testing.T) {
	// All margins zero: only the center cell carries pixels; every other row
	// and column collapses to zero size.
	img := solidImage(10, 10, color.RGBA{0, 255, 0, 255})
	g := newGeometry(t, 10, 10, Margins{})

	atlas, err := PackAtlas(img, g, 3)
	if err != nil {
		t.Fatalf("PackAtlas failed: %v", err)
	}

	if b := atlas.Bounds(); b.Dx() != 10+12 || b.Dy() != 10+12 {
		t.Errorf("atlas size: got %dx%d, want 22x22", b.Dx(), b.Dy())
	}

	// Center cell starts after two collapsed columns and three gutters.
	_, cg, _, a := rgba8(atlas.At(6, 6))
	if cg != 255 || a != 255 {
		t.Errorf("center cell pixel: got g=%d a=%d, want opaque green", cg, a)
	}
}

func TestPackAtlas_Deterministic(t *testing.T) {
	img := patternImage(100, 80)
	g := newGeometry(t, 100, 80, Margins{10, 8, 12, 9})

	first, err := PackAtlas(img, g, 2)
	if err != nil {
		t.Fatalf("first pack failed: %v", err)
	}
	second, err := PackAtlas(img, g, 2)
	if err != nil {
		t.Fatalf("second pack failed: %v", err)
	}

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("packing the same inputs twice produced different pixels")
	}
	if first.Stride != second.Stride || first.Rect != second.Rect {
		t.Error("packing the same inputs twice produced different layouts")
	}
}
