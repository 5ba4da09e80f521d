package img2ascii

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/wbrown/img2ascii/imageutil"
)

// Converter encapsulates the configuration for turning images into
// character art. The glyph cache is built on the first raster
// conversion and reused until Ramp or CellSize no longer match it.
type Converter struct {
	// Configuration options
	Ramp     Ramp
	Filter   Filter
	Scale    ScaleSpec
	CellSize int

	font       Font
	glyphCache *GlyphCache // supplied with WithGlyphCache
	builtCache *GlyphCache // rendered from font
	logger     *slog.Logger
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a new Converter with the given options.
// Default values: Ramp=DefaultRamp, Filter=lanczos3, Scale=none,
// CellSize=16, no font (raster output requires WithFont or
// WithGlyphCache).
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		Ramp:     Ramp(DefaultRamp),
		Filter:   DefaultFilter,
		Scale:    NoScale,
		CellSize: DefaultCellSize,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithRamp sets the character ramp, darkest first.
func WithRamp(ramp Ramp) ConverterOption {
	return func(c *Converter) {
		c.Ramp = ramp
	}
}

// WithFilter sets the resampling filter.
func WithFilter(filter Filter) ConverterOption {
	return func(c *Converter) {
		c.Filter = filter
	}
}

// WithScale sets the target dimensions.
func WithScale(spec ScaleSpec) ConverterOption {
	return func(c *Converter) {
		c.Scale = spec
	}
}

// WithCellSize sets the side of a glyph cell in pixels.
func WithCellSize(size int) ConverterOption {
	return func(c *Converter) {
		c.CellSize = size
	}
}

// WithFont sets the font used to build the glyph cache.
func WithFont(f Font) ConverterOption {
	return func(c *Converter) {
		c.font = f
	}
}

// WithGlyphCache supplies a pre-computed glyph cache, skipping glyph
// rasterization.
func WithGlyphCache(cache *GlyphCache) ConverterOption {
	return func(c *Converter) {
		c.glyphCache = cache
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) ConverterOption {
	return func(c *Converter) {
		c.logger = logger
	}
}

// Prepare converts img to grayscale and scales it.
func (c *Converter) Prepare(img image.Image) (*AsciiImage, error) {
	if len(c.Ramp) == 0 {
		return nil, ErrEmptyRamp
	}

	gray := imageutil.ToGrayscale(img)
	scaled := Scale(gray, c.Scale, c.Filter)
	c.logger.Debug("scaled image",
		"source", fmt.Sprintf("%dx%d", gray.Width(), gray.Height()),
		"scaled", fmt.Sprintf("%dx%d", scaled.Width(), scaled.Height()),
		"scale", c.Scale.String(),
		"filter", c.Filter.String())

	return NewAsciiImage(scaled, c.Ramp)
}

// ToText converts img to character-art text.
func (c *Converter) ToText(img image.Image) (string, error) {
	a, err := c.Prepare(img)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

// ToRaster converts img to a grayscale image made of rendered glyphs.
func (c *Converter) ToRaster(img image.Image) (*image.Gray, error) {
	cache, err := c.GlyphCache()
	if err != nil {
		return nil, err
	}
	a, err := c.Prepare(img)
	if err != nil {
		return nil, err
	}
	return a.Rasterize(cache)
}

// GlyphCache returns the glyph cache for the configured ramp, building
// it from the font if needed. A supplied cache must match the cell size
// and contain every ramp character. A cache built from the font is
// rebuilt when it no longer does.
func (c *Converter) GlyphCache() (*GlyphCache, error) {
	if c.glyphCache != nil {
		if c.glyphCache.CellSize() != c.CellSize {
			return nil, fmt.Errorf("%w: cache has %d, configured %d",
				ErrCellSizeMismatch, c.glyphCache.CellSize(), c.CellSize)
		}
		if !c.glyphCache.Covers(c.Ramp) {
			return nil, fmt.Errorf("glyph cache does not cover ramp %q", c.Ramp.String())
		}
		return c.glyphCache, nil
	}

	if c.builtCache != nil && c.builtCache.CellSize() == c.CellSize && c.builtCache.Covers(c.Ramp) {
		return c.builtCache, nil
	}

	if c.font == nil {
		return nil, fmt.Errorf("raster output requires a font")
	}
	if len(c.Ramp) == 0 {
		return nil, ErrEmptyRamp
	}

	cache, err := BuildGlyphCache(c.Ramp, c.font, c.CellSize)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("built glyph cache", "glyphs", cache.Len(), "cell", c.CellSize)
	c.builtCache = cache
	return cache, nil
}
