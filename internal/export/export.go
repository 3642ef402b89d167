// Package export writes slicing results to disk: the stitched-corner
// preview, the nine individual slices, the packed atlas, and the coordinate
// description document.
//
// Every export call derives its own images from the source and the geometry
// snapshot it is given; no buffers are shared between calls, so a failing
// export never corrupts the output of another. Write failures surface as
// *IOError naming the export kind and destination. Nothing here retries.
package export

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ironsheep/nineslice-mcp/internal/slicer"
)

// Kind identifies which export operation failed.
type Kind string

const (
	KindStitched    Kind = "stitched-corners"
	KindSlices      Kind = "slices"
	KindAtlas       Kind = "atlas"
	KindCoordinates Kind = "coordinates"
)

// IOError wraps an underlying write failure with the export kind and the
// destination path, so the caller can retry or alert the user.
type IOError struct {
	Kind Kind
	Dest string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("export %s to %s: %v", e.Kind, e.Dest, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Stitched writes the four corners composited into a single PNG at dest.
// It returns the stitched resolution for status display.
func Stitched(src image.Image, geo *slicer.Geometry, dest string) (*slicer.StitchResult, error) {
	res := slicer.StitchCorners(src, geo)
	if err := writePNG(KindStitched, dest, res.Image); err != nil {
		return nil, err
	}
	return res, nil
}

// Slices writes each of the nine regions as <region-name>.png inside dir,
// creating the directory if needed. Files are written in canonical row-major
// order; the returned paths follow that order. A degenerate region is
// written as a 1x1 fully transparent placeholder, since PNG cannot encode a
// zero-sized image.
func Slices(src image.Image, geo *slicer.Geometry, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &IOError{Kind: KindSlices, Dest: dir, Err: err}
	}

	ex := slicer.NewExtractor(src, geo)
	paths := make([]string, 0, len(slicer.RegionNames))
	for _, s := range ex.All() {
		p := filepath.Join(dir, string(s.Name)+".png")
		if err := writePNG(KindSlices, p, s.Image); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Atlas packs all nine regions with the given padding and writes the result
// as a PNG at dest. Negative padding propagates slicer.ErrInvalidPadding
// before any pixel work happens.
func Atlas(src image.Image, geo *slicer.Geometry, padding int, dest string) error {
	atlas, err := slicer.PackAtlas(src, geo, padding)
	if err != nil {
		return err
	}
	return writePNG(KindAtlas, dest, atlas)
}

// Coordinates writes the coordinate description as pretty-printed JSON at
// dest.
func Coordinates(geo *slicer.Geometry, dest string) error {
	doc, err := json.MarshalIndent(slicer.Describe(geo), "", "  ")
	if err != nil {
		return &IOError{Kind: KindCoordinates, Dest: dest, Err: err}
	}
	if err := os.WriteFile(dest, append(doc, '\n'), 0644); err != nil {
		return &IOError{Kind: KindCoordinates, Dest: dest, Err: err}
	}
	return nil
}

// writePNG encodes img to dest. Zero-sized images (degenerate slices, a 0x0
// stitched preview) are replaced with a 1x1 transparent pixel because the
// PNG format requires positive dimensions.
func writePNG(kind Kind, dest string, img image.Image) error {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		placeholder := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		placeholder.SetNRGBA(0, 0, color.NRGBA{})
		img = placeholder
	}

	f, err := os.Create(dest)
	if err != nil {
		return &IOError{Kind: kind, Dest: dest, Err: err}
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return &IOError{Kind: kind, Dest: dest, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Kind: kind, Dest: dest, Err: err}
	}
	return nil
}
