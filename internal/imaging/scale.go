package imaging

import (
	"image"

	"github.com/nfnt/resize"
)

// MaxDimension caps the intermediate bitmap so a very large source is never
// held at full resolution past the decode step
const MaxDimension = 800

// FitWithin computes the largest width/height pair that fits inside the box
// while preserving the source aspect ratio. Dimensions floor to integers but
// never to zero for a non-empty source. Returns 0,0 when either the source
// or the box is empty.
func FitWithin(width, height, boxWidth, boxHeight int) (int, int) {
	if width <= 0 || height <= 0 || boxWidth <= 0 || boxHeight <= 0 {
		return 0, 0
	}

	ratio := float64(width) / float64(height)

	newWidth := boxWidth
	newHeight := int(float64(boxWidth) / ratio)
	if newHeight > boxHeight {
		newHeight = boxHeight
		newWidth = int(float64(boxHeight) * ratio)
	}

	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}
	return newWidth, newHeight
}

// Cap is stage one of the scale-to-fit policy: sources larger than
// MaxDimension on either side are scaled down into the MaxDimension box with
// bilinear smoothing. Smaller sources pass through untouched; this stage
// never scales up.
func Cap(original image.Image) image.Image {
	bounds := original.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width <= MaxDimension && height <= MaxDimension {
		return original
	}

	cappedWidth, cappedHeight := FitWithin(width, height, MaxDimension, MaxDimension)
	return resize.Resize(uint(cappedWidth), uint(cappedHeight), original, resize.Bilinear)
}

// Fit is stage two: the capped bitmap is scaled to the display area with the
// same filter, scaling up when the area is larger. A zero-dimension area
// (widget not laid out yet) skips the stage and returns capped as-is.
func Fit(capped image.Image, areaWidth, areaHeight int) image.Image {
	if areaWidth <= 0 || areaHeight <= 0 {
		return capped
	}

	bounds := capped.Bounds()
	fitWidth, fitHeight := FitWithin(bounds.Dx(), bounds.Dy(), areaWidth, areaHeight)
	if fitWidth == bounds.Dx() && fitHeight == bounds.Dy() {
		return capped
	}
	return resize.Resize(uint(fitWidth), uint(fitHeight), capped, resize.Bilinear)
}

// Refit runs both stages against the original bitmap. It is pure and
// deterministic, so calling it again with the same inputs yields identical
// output; repeated resizes never re-derive from an already-fit bitmap.
func Refit(original image.Image, areaWidth, areaHeight int) image.Image {
	return Fit(Cap(original), areaWidth, areaHeight)
}
