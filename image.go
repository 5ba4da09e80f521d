package img2ascii

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/wbrown/img2ascii/imageutil"
)

// AsciiImage pairs a grayscale image with the ramp used to pick one
// character per pixel.
type AsciiImage struct {
	Gray *imageutil.GrayImage
	Ramp Ramp
}

// NewAsciiImage returns an AsciiImage, rejecting an empty ramp.
func NewAsciiImage(gray *imageutil.GrayImage, ramp Ramp) (*AsciiImage, error) {
	if len(ramp) == 0 {
		return nil, ErrEmptyRamp
	}
	return &AsciiImage{Gray: gray, Ramp: ramp}, nil
}

// Width returns the width in cells.
func (a *AsciiImage) Width() int {
	return a.Gray.Width()
}

// Height returns the height in cells.
func (a *AsciiImage) Height() int {
	return a.Gray.Height()
}

// Grid quantizes every pixel independently and returns one row of
// characters per image row.
func (a *AsciiImage) Grid() [][]rune {
	grid := make([][]rune, a.Height())
	for y := range grid {
		src := a.Gray.Row(y)
		row := make([]rune, len(src))
		for x, v := range src {
			row[x] = a.Ramp.Char(v)
		}
		grid[y] = row
	}
	return grid
}

// String renders the image as text; see FormatText.
func (a *AsciiImage) String() string {
	return FormatText(a.Grid())
}

// Rasterize composites the cached glyph of each pixel's character into
// an image of (Width*cell) x (Height*cell), where cell is the cache's
// cell size. Each block is a verbatim copy of the cached bitmap.
func (a *AsciiImage) Rasterize(cache *GlyphCache) (*image.Gray, error) {
	cell := cache.CellSize()
	img := image.NewGray(image.Rect(0, 0, a.Width()*cell, a.Height()*cell))

	for iy := 0; iy < a.Height(); iy++ {
		src := a.Gray.Row(iy)
		for ix, v := range src {
			c := a.Ramp.Char(v)
			glyph, ok := cache.Get(c)
			if !ok {
				return nil, fmt.Errorf("no cached glyph for '%c'", c)
			}
			block := image.Rect(ix*cell, iy*cell, (ix+1)*cell, (iy+1)*cell)
			draw.Draw(img, block, glyph, glyph.Bounds().Min, draw.Src)
		}
	}

	return img, nil
}
