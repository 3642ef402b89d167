package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/nineslice-mcp/internal/slicer"
)

// GuideOverlayResult contains the source image with margin guide lines drawn
// on top, encoded as base64 PNG.
type GuideOverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	GuideColor  string `json:"guide_color"`
}

// GuideOverlay renders the four slice boundary lines over the source image:
// vertical lines at x=left and x=width-right, horizontal lines at y=top and
// y=height-bottom. The guide color is a hex string like "#ff3333"; thickness
// is in pixels and centered on the boundary. The source image is not
// modified.
func GuideOverlay(src image.Image, geo *slicer.Geometry, colorHex string, thickness int) (*GuideOverlayResult, error) {
	guide, err := colorful.Hex(colorHex)
	if err != nil {
		return nil, fmt.Errorf("invalid guide color %q: %w", colorHex, err)
	}
	gr, gg, gb := guide.RGB255()
	lineColor := color.NRGBA{R: gr, G: gg, B: gb, A: 255}

	if thickness < 1 {
		thickness = 1
	}

	w, h := geo.Width(), geo.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)

	m := geo.Margins()
	for _, gx := range []int{m.Left, w - m.Right} {
		drawVerticalLine(out, gx, thickness, lineColor)
	}
	for _, gy := range []int{m.Top, h - m.Bottom} {
		drawHorizontalLine(out, gy, thickness, lineColor)
	}

	encoded, err := EncodeBase64PNG(out)
	if err != nil {
		return nil, err
	}

	return &GuideOverlayResult{
		Width:       w,
		Height:      h,
		ImageBase64: encoded,
		MimeType:    "image/png",
		GuideColor:  colorHex,
	}, nil
}

func drawVerticalLine(img *image.NRGBA, x, thickness int, c color.NRGBA) {
	b := img.Bounds()
	for t := 0; t < thickness; t++ {
		px := x + t - thickness/2
		if px < b.Min.X || px >= b.Max.X {
			continue
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetNRGBA(px, y, c)
		}
	}
}

func drawHorizontalLine(img *image.NRGBA, y, thickness int, c color.NRGBA) {
	b := img.Bounds()
	for t := 0; t < thickness; t++ {
		py := y + t - thickness/2
		if py < b.Min.Y || py >= b.Max.Y {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, py, c)
		}
	}
}
