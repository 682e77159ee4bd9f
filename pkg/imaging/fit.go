package imaging

import (
	"fmt"
	"math"
)

// Size is a display size in inches.
type Size struct {
	Width  float64
	Height float64
}

// Fit scales a pixel size so it fills as much of the maxWidth x maxHeight box
// as possible while keeping its aspect ratio:
//
//	scale = min(maxWidth/width, maxHeight/height)
//
// Small images are scaled up as well as large ones down. The result never
// exceeds the box in either axis.
func Fit(width, height int, maxWidth, maxHeight float64) (Size, error) {
	if width <= 0 || height <= 0 {
		return Size{}, fmt.Errorf("invalid pixel size %dx%d", width, height)
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return Size{}, fmt.Errorf("invalid bounding box %gx%g", maxWidth, maxHeight)
	}

	scale := math.Min(maxWidth/float64(width), maxHeight/float64(height))
	size := Size{
		Width:  float64(width) * scale,
		Height: float64(height) * scale,
	}

	// Rounding in the multiplication can overshoot the limiting axis by an ulp.
	size.Width = math.Min(size.Width, maxWidth)
	size.Height = math.Min(size.Height, maxHeight)
	return size, nil
}
