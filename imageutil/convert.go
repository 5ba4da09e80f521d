package imageutil

import (
	"image"
	"image/color"
)

// ToGrayscale converts an image to grayscale using the standard
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B (BT.601).
// Alpha is ignored; each pixel's un-premultiplied color is used.
// Gray inputs are copied without conversion.
func ToGrayscale(img image.Image) *GrayImage {
	switch src := img.(type) {
	case *GrayImage:
		return src.Clone()
	case *image.Gray:
		return GrayImageFromImage(src)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		row := gray.Row(y)
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			row[x] = luma(c.R, c.G, c.B)
		}
	}

	return gray
}

// luma uses integer math scaled by 1000, rounded to nearest.
func luma(r, g, b uint8) uint8 {
	lum := (299*int(r) + 587*int(g) + 114*int(b) + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}
