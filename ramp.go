package img2ascii

// DefaultRamp is the character ramp used when none is configured,
// ordered from darkest to lightest.
const DefaultRamp = "@%#*+=-:. "

// Ramp is an ordered sequence of characters where index 0 is the
// darkest and the last index is the lightest. A Ramp is never empty.
type Ramp []rune

// NewRamp builds a Ramp from a string, one character per rune.
// Repeated characters are kept; they simply widen their bucket.
func NewRamp(chars string) (Ramp, error) {
	r := Ramp(chars)
	if len(r) == 0 {
		return nil, ErrEmptyRamp
	}
	return r, nil
}

// Quantize maps an 8-bit luminance sample to an index into a ramp of
// length n. The result is floor(sample/255 * (n-1)), so 0 maps to 0 and
// 255 maps to n-1. Truncation biases mid-range samples toward the
// darker character.
func Quantize(sample uint8, n int) int {
	if n <= 1 {
		return 0
	}
	return int(float64(sample) / 255.0 * float64(n-1))
}

// Index returns the ramp index for a luminance sample.
func (r Ramp) Index(sample uint8) int {
	return Quantize(sample, len(r))
}

// Char returns the ramp character for a luminance sample.
func (r Ramp) Char(sample uint8) rune {
	return r[r.Index(sample)]
}

// String returns the ramp as a string.
func (r Ramp) String() string {
	return string(r)
}
