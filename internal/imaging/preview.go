package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/transform"
)

// EncodeBase64PNG encodes an image as a base64 PNG string for transport in
// tool results.
func EncodeBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Scale resizes img by factor. Factors of 2 and above use nearest-neighbor
// so individual pixels stay inspectable; smaller factors use linear
// resampling. A factor of 1 (or less than or equal to zero) and empty images
// are returned unchanged.
func Scale(img image.Image, factor float64) image.Image {
	b := img.Bounds()
	if factor <= 0 || factor == 1 || b.Dx() == 0 || b.Dy() == 0 {
		return img
	}

	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	filter := transform.Linear
	if factor >= 2 {
		filter = transform.NearestNeighbor
	}
	return transform.Resize(img, w, h, filter)
}
