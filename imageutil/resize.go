package imageutil

import (
	"github.com/disintegration/imaging"
)

// Interpolation specifies the resampling kernel used for resizing.
type Interpolation int

const (
	// InterpolationLanczos uses a Lanczos kernel with three lobes.
	// Sharpest result, and the default.
	InterpolationLanczos Interpolation = iota

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest

	// InterpolationTriangle uses a triangle (bilinear) kernel.
	InterpolationTriangle

	// InterpolationCatmullRom uses the Catmull-Rom cubic kernel.
	InterpolationCatmullRom

	// InterpolationGaussian uses a Gaussian blurring kernel.
	InterpolationGaussian
)

// String returns the command-line name of the interpolation.
func (i Interpolation) String() string {
	switch i {
	case InterpolationNearest:
		return "nearest"
	case InterpolationTriangle:
		return "triangle"
	case InterpolationCatmullRom:
		return "catmull-rom"
	case InterpolationGaussian:
		return "gaussian"
	default:
		return "lanczos3"
	}
}

func (i Interpolation) filter() imaging.ResampleFilter {
	switch i {
	case InterpolationNearest:
		return imaging.NearestNeighbor
	case InterpolationTriangle:
		return imaging.Linear
	case InterpolationCatmullRom:
		return imaging.CatmullRom
	case InterpolationGaussian:
		return imaging.Gaussian
	default:
		return imaging.Lanczos
	}
}

// ResizeGray resizes a grayscale image to exactly width x height.
// If either dimension is zero or negative the result is an empty image;
// imaging would otherwise treat a zero dimension as "keep aspect ratio".
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	if width <= 0 || height <= 0 || img.Width() == 0 || img.Height() == 0 {
		return NewGrayImage(width, height)
	}

	resized := imaging.Resize(img.Gray, width, height, interp.filter())

	// The source is gray, so every channel of the result carries the
	// same value.
	dst := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		row := dst.Row(y)
		src := resized.Pix[y*resized.Stride:]
		for x := 0; x < width; x++ {
			row[x] = src[x*4]
		}
	}
	return dst
}

// ResizeToWidth resizes an image to the specified width while maintaining
// aspect ratio. The height is truncated.
func ResizeToWidth(img *GrayImage, width int, interp Interpolation) *GrayImage {
	if img.Width() == 0 {
		return NewGrayImage(width, 0)
	}
	height := int(float64(width) / float64(img.Width()) * float64(img.Height()))
	return ResizeGray(img, width, height, interp)
}

// ResizeToHeight resizes an image to the specified height while maintaining
// aspect ratio. The width is truncated.
func ResizeToHeight(img *GrayImage, height int, interp Interpolation) *GrayImage {
	if img.Height() == 0 {
		return NewGrayImage(0, height)
	}
	width := int(float64(height) / float64(img.Height()) * float64(img.Width()))
	return ResizeGray(img, width, height, interp)
}
