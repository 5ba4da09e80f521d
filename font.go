package img2ascii

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// DefaultFontPath is the logical path of the bundled font. FontBytes and
// LoadFont resolve it without touching the filesystem.
const DefaultFontPath = "assets/gomono.ttf"

// bundledFonts maps logical asset paths to font bytes shipped with the
// binary.
var bundledFonts = map[string][]byte{
	DefaultFontPath: gomono.TTF,
}

// GlyphMetrics describes the ink bounds of a rasterized glyph.
type GlyphMetrics struct {
	Width  int
	Height int
}

// Font rasterizes single characters. Rasterize returns the glyph's ink
// bounds at the given pixel height together with a row-major coverage
// bitmap of Width*Height samples, where 0 means no ink.
type Font interface {
	Rasterize(r rune, px float64) (GlyphMetrics, []byte, error)
}

// TrueTypeFont is a Font backed by a parsed TrueType font.
type TrueTypeFont struct {
	Name  string
	ttf   *truetype.Font
	faces map[float64]font.Face
}

// FontBytes returns the bytes of the font at path. The bundled logical
// path DefaultFontPath (or an empty path) resolves to the embedded font;
// anything else is read from disk.
func FontBytes(path string) ([]byte, error) {
	if path == "" {
		path = DefaultFontPath
	}
	if data, ok := bundledFonts[path]; ok {
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFontNotFound, path)
		}
		return nil, fmt.Errorf("can't read font file: %w", err)
	}
	return data, nil
}

// LoadFont loads and parses the TrueType font at path; see FontBytes for
// how the path is resolved.
func LoadFont(path string) (*TrueTypeFont, error) {
	data, err := FontBytes(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = DefaultFontPath
	}
	return ParseFont(path, data)
}

// ParseFont parses TrueType font bytes.
func ParseFont(name string, data []byte) (*TrueTypeFont, error) {
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("can't parse font file %s: %w", name, err)
	}
	return &TrueTypeFont{
		Name:  name,
		ttf:   ttf,
		faces: make(map[float64]font.Face),
	}, nil
}

// face returns a cached face for px. Rendering at 72 DPI makes one point
// equal one pixel, so px is the size of the em square in pixels.
func (f *TrueTypeFont) face(px float64) font.Face {
	if face, ok := f.faces[px]; ok {
		return face
	}
	face := truetype.NewFace(f.ttf, &truetype.Options{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	f.faces[px] = face
	return face
}

// Rasterize implements Font. The coverage bitmap is copied out of the
// face's shared mask buffer. A size of zero or less renders nothing.
func (f *TrueTypeFont) Rasterize(r rune, px float64) (GlyphMetrics, []byte, error) {
	// truetype substitutes its 12pt default for a non-positive size
	if px <= 0 {
		return GlyphMetrics{}, []byte{}, nil
	}

	dr, mask, maskp, _, ok := f.face(px).Glyph(fixed.Point26_6{}, r)
	if !ok {
		return GlyphMetrics{}, nil, fmt.Errorf("font %s has no glyph for '%c'", f.Name, r)
	}

	metrics := GlyphMetrics{Width: dr.Dx(), Height: dr.Dy()}
	coverage := make([]byte, 0, metrics.Width*metrics.Height)
	alpha, isAlpha := mask.(*image.Alpha)
	for y := 0; y < metrics.Height; y++ {
		for x := 0; x < metrics.Width; x++ {
			mx, my := maskp.X+x, maskp.Y+y
			if isAlpha {
				coverage = append(coverage, alpha.AlphaAt(mx, my).A)
				continue
			}
			_, _, _, a := mask.At(mx, my).RGBA()
			coverage = append(coverage, uint8(a>>8))
		}
	}
	return metrics, coverage, nil
}

// Close releases the cached faces.
func (f *TrueTypeFont) Close() error {
	for px, face := range f.faces {
		face.Close()
		delete(f.faces, px)
	}
	return nil
}
