package imageutil

import (
	"image"
	"image/color"
)

// CreateGradientGray creates a horizontal gradient test image running
// from black at the left edge to white at the right edge.
func CreateGradientGray(width, height int) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		row := img.Row(y)
		for x := 0; x < width; x++ {
			if width > 1 {
				row[x] = uint8(255 * x / (width - 1))
			}
		}
	}
	return img
}

// CreateCheckerboardGray creates a black and white checkerboard pattern.
func CreateCheckerboardGray(width, height, squareSize int) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetGrayValue(x, y, 255)
			}
		}
	}
	return img
}

// CreateSolidRGBA creates a solid color RGBA image.
func CreateSolidRGBA(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// CalculateMaxDiffGray returns the largest absolute per-pixel difference
// between two grayscale images, or -1 if their sizes differ.
func CalculateMaxDiffGray(img1, img2 *GrayImage) int {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return -1
	}
	maxDiff := 0
	for y := 0; y < img1.Height(); y++ {
		r1, r2 := img1.Row(y), img2.Row(y)
		for x := range r1 {
			maxDiff = max(maxDiff, abs(int(r1[x])-int(r2[x])))
		}
	}
	return maxDiff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
