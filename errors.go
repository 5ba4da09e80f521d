package img2ascii

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRamp is returned when a character ramp has no characters.
	ErrEmptyRamp = errors.New("character ramp is empty")

	// ErrInvalidScale is returned for a malformed scale expression.
	ErrInvalidScale = errors.New("invalid scale value")

	// ErrInvalidFilter is returned for an unknown resampling filter name.
	ErrInvalidFilter = errors.New("unsupported filter type")

	// ErrGlyphBounds is wrapped by a GlyphBoundsError when a rendered
	// glyph is larger than the cell.
	ErrGlyphBounds = errors.New("rastered glyph won't fit in bounding box")

	// ErrCoverageShort is wrapped by a GlyphBoundsError when a font
	// returns fewer coverage samples than its metrics require.
	ErrCoverageShort = errors.New("rasterized glyph buffer too small")

	// ErrCellSizeMismatch is returned when a pre-computed glyph cache was
	// built for a different cell size than the one configured.
	ErrCellSizeMismatch = errors.New("glyph cache cell size mismatch")

	// ErrFontNotFound is returned when a font file does not exist.
	ErrFontNotFound = errors.New("font not found")
)

// GlyphBoundsError reports a glyph that cannot be placed in its cell.
// It indicates a cell size too small for the font, not a transient
// fault.
type GlyphBoundsError struct {
	Rune     rune
	Width    int
	Height   int
	CellSize int
	Err      error
}

func (e *GlyphBoundsError) Error() string {
	return fmt.Sprintf("%v '%c': glyph %dx%d, cell %d",
		e.Err, e.Rune, e.Width, e.Height, e.CellSize)
}

func (e *GlyphBoundsError) Unwrap() error {
	return e.Err
}
