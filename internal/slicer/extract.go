package slicer

import (
	"image"

	"github.com/disintegration/imaging"
)

// Extract copies the pixels of one region out of the source image. The
// result is an independent buffer, never a view: the caller may mutate or
// save it without touching the source. A degenerate region yields an empty
// image rather than an error.
func Extract(src image.Image, r Region) *image.NRGBA {
	if r.Degenerate() {
		return &image.NRGBA{}
	}
	// Regions are expressed relative to the image origin; shift into the
	// source's own coordinate space so sub-images extract correctly.
	return imaging.Crop(src, r.Rect().Add(src.Bounds().Min))
}

// NamedSlice pairs a region name with its extracted pixels.
type NamedSlice struct {
	Name  RegionName
	Image *image.NRGBA
}

// Extractor extracts regions from a single source image on demand,
// memoizing each extracted slice. A live corner preview that only needs the
// four corners never pays for the other five buffers.
type Extractor struct {
	src    image.Image
	geo    *Geometry
	slices map[RegionName]*image.NRGBA
}

// NewExtractor creates an Extractor over src using the slice grid derived
// from geo. The source image is only read, never mutated.
func NewExtractor(src image.Image, geo *Geometry) *Extractor {
	return &Extractor{
		src:    src,
		geo:    geo,
		slices: make(map[RegionName]*image.NRGBA, len(RegionNames)),
	}
}

// Slice returns the extracted image for the named region, extracting it on
// first use. Unknown names yield an empty image.
func (e *Extractor) Slice(name RegionName) *image.NRGBA {
	if img, ok := e.slices[name]; ok {
		return img
	}
	r, err := e.geo.Region(name)
	if err != nil {
		return &image.NRGBA{}
	}
	img := Extract(e.src, r)
	e.slices[name] = img
	return img
}

// All extracts every region and returns the slices in canonical row-major
// order. The order is what keeps export filenames and atlas layout stable.
func (e *Extractor) All() []NamedSlice {
	out := make([]NamedSlice, 0, len(RegionNames))
	for _, name := range RegionNames {
		out = append(out, NamedSlice{Name: name, Image: e.Slice(name)})
	}
	return out
}
