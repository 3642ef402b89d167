// Package imaging provides the image I/O and presentation helpers around
// the slicing core: a thread-safe decode cache, margin guide-line overlays,
// preview scaling and base64 PNG encoding for tool results.
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner.
// Nothing in this package mutates a loaded source image; overlays and scaled
// previews are always fresh buffers.
package imaging
