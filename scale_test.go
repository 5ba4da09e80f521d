package img2ascii

import (
	"errors"
	"math"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestParseScale(t *testing.T) {
	tests := []struct {
		in   string
		want ScaleSpec
	}{
		{"100", ExactScale(100, 100)},
		{"100:_", ScaleToWidth(100)},
		{"_:50", ScaleToHeight(50)},
		{"80:40", ExactScale(80, 40)},
		{"_", NoScale},
		{"_:_", NoScale},
		{"0", ExactScale(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScale(tt.in)
			if err != nil {
				t.Fatalf("ParseScale(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseScale(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseScaleRejects(t *testing.T) {
	for _, in := range []string{"1:2:3", "_:_:_", "abc", "-5", "", "10:", "1.5", "10:x"} {
		if _, err := ParseScale(in); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("ParseScale(%q): expected ErrInvalidScale, got %v", in, err)
		}
	}
}

func TestScaleSpecString(t *testing.T) {
	for _, in := range []string{"100:100", "100:_", "_:50", "_:_"} {
		spec, err := ParseScale(in)
		if err != nil {
			t.Fatal(err)
		}
		if spec.String() != in {
			t.Errorf("String() = %q, want %q", spec.String(), in)
		}
	}
}

func TestParseFilter(t *testing.T) {
	want := []Filter{FilterNearest, FilterTriangle, FilterCatmullRom, FilterGaussian, FilterLanczos3}
	for i, name := range FilterNames {
		got, err := ParseFilter(name)
		if err != nil {
			t.Fatalf("ParseFilter(%q) failed: %v", name, err)
		}
		if got != want[i] {
			t.Errorf("ParseFilter(%q) = %v, want %v", name, got, want[i])
		}
		if got.String() != name {
			t.Errorf("Filter %v prints as %q, want %q", got, got.String(), name)
		}
	}
	if _, err := ParseFilter("bicubic"); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("Expected ErrInvalidFilter, got %v", err)
	}
}

func TestScaleIdentity(t *testing.T) {
	src := imageutil.CreateGradientGray(37, 11)
	out := Scale(src, NoScale, FilterLanczos3)

	if diff := imageutil.CalculateMaxDiffGray(src, out); diff != 0 {
		t.Errorf("Identity scale should copy pixels exactly, max diff %d", diff)
	}
	out.SetGrayValue(0, 0, 77)
	if src.GetGray(0, 0) == 77 {
		t.Error("Identity scale should return a copy")
	}
}

func TestScaleExact(t *testing.T) {
	src := imageutil.CreateGradientGray(40, 30)
	for _, f := range []Filter{FilterNearest, FilterTriangle, FilterCatmullRom, FilterGaussian, FilterLanczos3} {
		out := Scale(src, ExactScale(13, 71), f)
		if out.Width() != 13 || out.Height() != 71 {
			t.Errorf("%v: expected 13x71, got %dx%d", f, out.Width(), out.Height())
		}
	}
}

func TestScaleAspect(t *testing.T) {
	sizes := [][2]int{{640, 480}, {100, 37}, {31, 200}, {1, 1}, {90, 3}}
	targets := []int{1, 7, 50, 133}

	for _, size := range sizes {
		srcW, srcH := size[0], size[1]
		src := imageutil.NewUniformGray(srcW, srcH, 128)
		for _, target := range targets {
			out := Scale(src, ScaleToWidth(target), FilterNearest)
			if out.Width() != target {
				t.Fatalf("Expected width %d, got %d", target, out.Width())
			}
			wantH := float64(target) * float64(srcH) / float64(srcW)
			if math.Abs(float64(out.Height())-wantH) > 1 {
				t.Errorf("%dx%d -> width %d: height %d, want ~%.2f", srcW, srcH, target, out.Height(), wantH)
			}

			out = Scale(src, ScaleToHeight(target), FilterNearest)
			if out.Height() != target {
				t.Fatalf("Expected height %d, got %d", target, out.Height())
			}
			wantW := float64(target) * float64(srcW) / float64(srcH)
			if math.Abs(float64(out.Width())-wantW) > 1 {
				t.Errorf("%dx%d -> height %d: width %d, want ~%.2f", srcW, srcH, target, out.Width(), wantW)
			}
		}
	}
}

func TestScaleDimensionsTruncate(t *testing.T) {
	// 100 * 3/4 = 75, 10 * 3/7 = 4.28
	w, h := ScaleToWidth(100).Dimensions(4, 3)
	if w != 100 || h != 75 {
		t.Errorf("Expected 100x75, got %dx%d", w, h)
	}
	w, h = ScaleToHeight(3).Dimensions(10, 7)
	if w != 4 || h != 3 {
		t.Errorf("Expected 4x3, got %dx%d", w, h)
	}
}

func TestScaleToZero(t *testing.T) {
	// 1 * 3/100 truncates to zero; the result is empty rather than an error
	src := imageutil.NewUniformGray(100, 3, 0)
	out := Scale(src, ScaleToWidth(1), FilterLanczos3)
	if out.Width() != 1 || out.Height() != 0 {
		t.Errorf("Expected 1x0, got %dx%d", out.Width(), out.Height())
	}
}
