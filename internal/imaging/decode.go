package imaging

import (
	"bytes"
	"fmt"
	"image"

	// Register decoders for the formats the viewer accepts
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SVG rasterization defaults for documents without a usable viewBox
const (
	DefaultSVGWidth  = 512
	DefaultSVGHeight = 512

	// svgSniffWindow bounds how far into the payload the SVG sniff looks
	svgSniffWindow = 4096
)

// Decode turns raw image bytes into an in-memory bitmap. Raster formats go
// through the standard image registry (PNG/JPEG/GIF/BMP); SVG documents are
// rasterized. Malformed input returns an error and never a partial bitmap.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	if looksLikeSVG(data) {
		return decodeSVG(data)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("decoded %s image has empty bounds", format)
	}
	return img, nil
}

// looksLikeSVG sniffs for an <svg root element near the start of the payload
func looksLikeSVG(data []byte) bool {
	window := data
	if len(window) > svgSniffWindow {
		window = window[:svgSniffWindow]
	}
	return bytes.Contains(window, []byte("<svg"))
}

// decodeSVG rasterizes an SVG document at its viewBox size
func decodeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	width := int(icon.ViewBox.W)
	height := int(icon.ViewBox.H)
	if width <= 0 || height <= 0 {
		width = DefaultSVGWidth
		height = DefaultSVGHeight
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return rgba, nil
}
