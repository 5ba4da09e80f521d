package imageutil

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrImageNotFound is returned by LoadGray when the input file does not
// exist.
var ErrImageNotFound = errors.New("image not found")

// LoadImage loads an image from the specified path, applying any EXIF
// orientation. Supports PNG, JPEG, GIF, TIFF, BMP and WebP.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// LoadGray loads an image from the specified path and converts it to
// grayscale.
func LoadGray(path string) (*GrayImage, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return ToGrayscale(img), nil
}

// SaveImage saves an image to the specified path. The format is
// determined by the file extension (png, jpg/jpeg, gif, tif/tiff, bmp);
// any other extension is an error.
func SaveImage(img image.Image, path string) error {
	if g, ok := img.(*GrayImage); ok {
		img = g.Gray
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}
