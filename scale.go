package img2ascii

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// Filter selects the resampling kernel used when scaling.
type Filter = imageutil.Interpolation

const (
	FilterNearest    = imageutil.InterpolationNearest
	FilterTriangle   = imageutil.InterpolationTriangle
	FilterCatmullRom = imageutil.InterpolationCatmullRom
	FilterGaussian   = imageutil.InterpolationGaussian
	FilterLanczos3   = imageutil.InterpolationLanczos

	// DefaultFilter is used when no filter is configured.
	DefaultFilter = FilterLanczos3
)

// FilterNames lists the accepted filter names in command-line order.
var FilterNames = []string{"nearest", "triangle", "catmull-rom", "gaussian", "lanczos3"}

// ParseFilter maps a filter name to a Filter.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return FilterNearest, nil
	case "triangle":
		return FilterTriangle, nil
	case "catmull-rom":
		return FilterCatmullRom, nil
	case "gaussian":
		return FilterGaussian, nil
	case "lanczos3":
		return FilterLanczos3, nil
	}
	return DefaultFilter, fmt.Errorf("%w: %q", ErrInvalidFilter, name)
}

// ScaleSpec holds an optional target width and height. With both set the
// image is resized exactly, with one set the other is derived from the
// source aspect ratio, and with neither set the image passes through.
type ScaleSpec struct {
	Width     int
	Height    int
	HasWidth  bool
	HasHeight bool
}

// NoScale is the identity ScaleSpec.
var NoScale = ScaleSpec{}

// ExactScale returns a ScaleSpec targeting width x height.
func ExactScale(width, height int) ScaleSpec {
	return ScaleSpec{Width: width, Height: height, HasWidth: true, HasHeight: true}
}

// ScaleToWidth returns a ScaleSpec that derives the height.
func ScaleToWidth(width int) ScaleSpec {
	return ScaleSpec{Width: width, HasWidth: true}
}

// ScaleToHeight returns a ScaleSpec that derives the width.
func ScaleToHeight(height int) ScaleSpec {
	return ScaleSpec{Height: height, HasHeight: true}
}

// ParseScale parses a scale expression of the form "N", "W:H", "W:_",
// "_:H" or "_". A single value applies to both dimensions and "_" leaves
// a dimension unset.
func ParseScale(s string) (ScaleSpec, error) {
	fields := strings.Split(s, ":")
	if len(fields) > 2 {
		return NoScale, fmt.Errorf("%w: %q has more than two fields", ErrInvalidScale, s)
	}

	sizes := make([]int, len(fields))
	set := make([]bool, len(fields))
	for i, f := range fields {
		if f == "_" {
			continue
		}
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return NoScale, fmt.Errorf("%w: couldn't parse %q as an unsigned integer", ErrInvalidScale, f)
		}
		sizes[i], set[i] = int(n), true
	}

	if len(fields) == 1 {
		return ScaleSpec{Width: sizes[0], Height: sizes[0], HasWidth: set[0], HasHeight: set[0]}, nil
	}
	return ScaleSpec{Width: sizes[0], Height: sizes[1], HasWidth: set[0], HasHeight: set[1]}, nil
}

// IsIdentity reports whether the spec leaves the image unscaled.
func (s ScaleSpec) IsIdentity() bool {
	return !s.HasWidth && !s.HasHeight
}

// Dimensions returns the target size for a source of srcW x srcH.
// A derived dimension is truncated toward zero.
func (s ScaleSpec) Dimensions(srcW, srcH int) (int, int) {
	switch {
	case s.HasWidth && s.HasHeight:
		return s.Width, s.Height
	case s.HasWidth:
		if srcW == 0 {
			return s.Width, 0
		}
		return s.Width, int(float64(s.Width) / float64(srcW) * float64(srcH))
	case s.HasHeight:
		if srcH == 0 {
			return 0, s.Height
		}
		return int(float64(s.Height) / float64(srcH) * float64(srcW)), s.Height
	}
	return srcW, srcH
}

// String formats the spec in the form accepted by ParseScale.
func (s ScaleSpec) String() string {
	dim := func(v int, ok bool) string {
		if !ok {
			return "_"
		}
		return strconv.Itoa(v)
	}
	return dim(s.Width, s.HasWidth) + ":" + dim(s.Height, s.HasHeight)
}

// Scale resizes a grayscale image according to spec using filter. An
// identity spec returns a pixel-for-pixel copy without resampling. The
// resulting dimensions are not validated; a derived zero dimension
// yields an empty image.
func Scale(img *imageutil.GrayImage, spec ScaleSpec, filter Filter) *imageutil.GrayImage {
	if spec.IsIdentity() {
		return img.Clone()
	}
	width, height := spec.Dimensions(img.Width(), img.Height())
	return imageutil.ResizeGray(img, width, height, filter)
}
