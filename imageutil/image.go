// Package imageutil provides the grayscale image buffer used by the
// character-art pipeline, along with conversion, resampling and file
// helpers.
package imageutil

import (
	"image"
	"image/color"
)

// GrayImage wraps image.Gray with convenience methods for pixel access.
// The origin is always (0, 0).
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
// Negative dimensions are treated as zero.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// NewUniformGray creates a GrayImage filled with a single value.
func NewUniformGray(width, height int, v uint8) *GrayImage {
	img := NewGrayImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// GrayImageFromImage converts any image.Image to GrayImage using the
// color.GrayModel conversion, translating the bounds to the origin.
func GrayImageFromImage(img image.Image) *GrayImage {
	if g, ok := img.(*GrayImage); ok {
		return g.Clone()
	}
	bounds := img.Bounds()
	gray := NewGrayImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return gray
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the grayscale value at (x, y).
func (img *GrayImage) GetGray(x, y int) uint8 {
	return img.GrayAt(x, y).Y
}

// SetGrayValue sets the grayscale value at (x, y).
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	img.Gray.SetGray(x, y, color.Gray{Y: v})
}

// Row returns the samples of row y. The slice aliases the image buffer.
func (img *GrayImage) Row(y int) []uint8 {
	start := y * img.Stride
	return img.Pix[start : start+img.Width()]
}

// Clone creates a deep copy of the image.
func (img *GrayImage) Clone() *GrayImage {
	clone := NewGrayImage(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		copy(clone.Row(y), img.Row(y))
	}
	return clone
}
