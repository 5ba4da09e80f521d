package img2ascii

import (
	"fmt"
	"image"
)

// DefaultCellSize is the side of a glyph cell in pixels.
const DefaultCellSize = 16

// GlyphCache holds one pre-rendered square bitmap per character. Every
// bitmap is CellSize pixels on a side, with dark ink on white.
type GlyphCache struct {
	cellSize int
	glyphs   *OrderedMap[rune, *image.Gray]
}

// NewGlyphCache creates an empty cache for cells of the given size.
func NewGlyphCache(cellSize int) *GlyphCache {
	return &GlyphCache{
		cellSize: cellSize,
		glyphs:   NewOrderedMap[rune, *image.Gray](),
	}
}

// CellSize returns the side of every cached bitmap.
func (gc *GlyphCache) CellSize() int {
	return gc.cellSize
}

// Get returns the bitmap for a character.
func (gc *GlyphCache) Get(r rune) (*image.Gray, bool) {
	return gc.glyphs.Get(r)
}

// Len returns the number of cached characters.
func (gc *GlyphCache) Len() int {
	return gc.glyphs.Len()
}

// Runes returns the cached characters in insertion order.
func (gc *GlyphCache) Runes() []rune {
	return gc.glyphs.Keys()
}

// Set stores a bitmap for a character, replacing any earlier entry.
func (gc *GlyphCache) Set(r rune, bitmap *image.Gray) error {
	b := bitmap.Bounds()
	if b.Dx() != gc.cellSize || b.Dy() != gc.cellSize {
		return fmt.Errorf("%w: bitmap for '%c' is %dx%d, cell is %d",
			ErrCellSizeMismatch, r, b.Dx(), b.Dy(), gc.cellSize)
	}
	gc.glyphs.Set(r, bitmap)
	return nil
}

// Covers reports whether every character of the ramp has a bitmap.
func (gc *GlyphCache) Covers(ramp Ramp) bool {
	for _, r := range ramp {
		if _, ok := gc.glyphs.Get(r); !ok {
			return false
		}
	}
	return true
}

// BuildGlyphCache renders every character of the ramp once. Duplicate
// ramp characters render to the same entry. The first glyph that does
// not fit its cell aborts the build.
func BuildGlyphCache(ramp Ramp, f Font, cellSize int) (*GlyphCache, error) {
	cache := NewGlyphCache(cellSize)
	for _, r := range ramp {
		bitmap, err := RasterizeGlyph(r, f, cellSize)
		if err != nil {
			return nil, err
		}
		cache.glyphs.Set(r, bitmap)
	}
	return cache, nil
}

// RasterizeGlyph renders a single character into a white square of side
// cellSize.
//
// The glyph is requested at a pixel height of cellSize-1, keeping one
// pixel of margin, and centered in the cell with the offsets rounded
// down. Coverage is inverted so that full ink renders black.
//
// A glyph wider or taller than the cell, or a coverage buffer shorter
// than its metrics describe, yields a *GlyphBoundsError naming the
// character.
func RasterizeGlyph(r rune, f Font, cellSize int) (*image.Gray, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}

	metrics, coverage, err := f.Rasterize(r, float64(cellSize-1))
	if err != nil {
		return nil, fmt.Errorf("rasterize '%c': %w", r, err)
	}

	if metrics.Height > cellSize || metrics.Width > cellSize {
		return nil, &GlyphBoundsError{
			Rune:     r,
			Width:    metrics.Width,
			Height:   metrics.Height,
			CellSize: cellSize,
			Err:      ErrGlyphBounds,
		}
	}
	if len(coverage) < metrics.Width*metrics.Height {
		return nil, &GlyphBoundsError{
			Rune:     r,
			Width:    metrics.Width,
			Height:   metrics.Height,
			CellSize: cellSize,
			Err:      ErrCoverageShort,
		}
	}

	img := image.NewGray(image.Rect(0, 0, cellSize, cellSize))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	dx := (cellSize - metrics.Width) / 2
	dy := (cellSize - metrics.Height) / 2

	for y := 0; y < metrics.Height; y++ {
		row := img.Pix[(y+dy)*img.Stride+dx:]
		src := coverage[y*metrics.Width : (y+1)*metrics.Width]
		for x, c := range src {
			row[x] = 255 - c
		}
	}

	return img, nil
}
