// Package slicer implements the nine-slice geometry and composition engine.
//
// A nine-slice divides a rectangular image into a 3x3 grid of regions using
// four margins measured inward from the image edges:
//
//	top-left    | top-center    | top-right
//	------------+---------------+----------
//	mid-left    | center        | mid-right
//	------------+---------------+----------
//	bottom-left | bottom-center | bottom-right
//
// The four corners stay fixed when the image is stretched; the edges and the
// center scale. This package computes the region rectangles, extracts region
// pixels, stitches the corners into a preview, packs all nine regions into a
// padded atlas, and produces the coordinate description consumed by engine
// tooling.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner.
// Region rectangles use an inclusive origin and exclusive extent, matching
// image.Rectangle.
//
// # Margins and Clamping
//
// Margins are never rejected for being out of range: they are clamped so
// that left+right never exceeds the image width and top+bottom never exceeds
// the image height. Interactive front ends feed raw drag positions straight
// into SetMargin and rely on the clamped return value.
//
// # Degenerate Regions
//
// A margin of zero (or a fully consumed axis) produces regions with zero
// width or height. These are still addressable: extraction yields an empty
// image, stitching shrinks the preview canvas, and the atlas collapses the
// corresponding row or column. Nothing in this package fails on a
// degenerate region.
//
// # Purity
//
// Every function here is a pure computation over its inputs. The source
// image is only ever read; all produced images are fresh buffers the caller
// may mutate or persist independently.
package slicer
