package img2ascii

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"image"
	"io"
)

// GlyphData is the serialized form of a GlyphCache. Pixels holds the
// bitmaps of Runes in order, CellSize*CellSize bytes each.
type GlyphData struct {
	FontName string
	CellSize int
	Runes    []rune
	Pixels   []byte
}

// SaveGlyphData writes a glyph cache as gzip-compressed gob.
func SaveGlyphData(w io.Writer, cache *GlyphCache, fontName string) error {
	cell := cache.CellSize()
	data := GlyphData{
		FontName: fontName,
		CellSize: cell,
		Runes:    cache.Runes(),
		Pixels:   make([]byte, 0, cache.Len()*cell*cell),
	}
	cache.glyphs.Iterate(func(_ rune, glyph *image.Gray) {
		for y := 0; y < cell; y++ {
			data.Pixels = append(data.Pixels, glyph.Pix[y*glyph.Stride:y*glyph.Stride+cell]...)
		}
	})

	gz := gzip.NewWriter(w)
	enc := gob.NewEncoder(gz)
	if err := enc.Encode(&data); err != nil {
		gz.Close()
		return fmt.Errorf("failed to encode glyph data: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to close gzip: %w", err)
	}
	return nil
}

// LoadGlyphData reads a glyph cache written by SaveGlyphData and returns
// it with the name of the font it was rendered from.
func LoadGlyphData(r io.Reader) (*GlyphCache, string, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gr.Close()

	var data GlyphData
	if err := gob.NewDecoder(gr).Decode(&data); err != nil {
		return nil, "", fmt.Errorf("failed to decode glyph data: %w", err)
	}

	cell := data.CellSize
	if cell < 1 || len(data.Pixels) != len(data.Runes)*cell*cell {
		return nil, "", fmt.Errorf("corrupt glyph data: %d runes, %d bytes, cell %d",
			len(data.Runes), len(data.Pixels), cell)
	}

	cache := NewGlyphCache(cell)
	for i, r := range data.Runes {
		glyph := image.NewGray(image.Rect(0, 0, cell, cell))
		copy(glyph.Pix, data.Pixels[i*cell*cell:(i+1)*cell*cell])
		if err := cache.Set(r, glyph); err != nil {
			return nil, "", err
		}
	}
	return cache, data.FontName, nil
}
