package imageutil

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestNewGrayImage(t *testing.T) {
	img := NewGrayImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}

	empty := NewGrayImage(-3, 4)
	if empty.Width() != 0 || empty.Height() != 4 {
		t.Errorf("Expected 0x4 for negative width, got %dx%d", empty.Width(), empty.Height())
	}
}

func TestGrayImageGetSetGray(t *testing.T) {
	img := NewGrayImage(10, 10)
	img.SetGrayValue(5, 5, 128)

	if got := img.GetGray(5, 5); got != 128 {
		t.Errorf("Expected 128, got %d", got)
	}
	if got := img.Row(5)[5]; got != 128 {
		t.Errorf("Row should alias pixel buffer, got %d", got)
	}
}

func TestGrayImageClone(t *testing.T) {
	img := NewGrayImage(10, 10)
	img.SetGrayValue(5, 5, 200)

	clone := img.Clone()
	if clone.GetGray(5, 5) != 200 {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetGrayValue(5, 5, 10)
	if img.GetGray(5, 5) != 200 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestGrayImageFromImageTranslatesOrigin(t *testing.T) {
	src := image.NewGray(image.Rect(10, 20, 13, 22))
	src.SetGray(10, 20, color.Gray{Y: 7})
	src.SetGray(12, 21, color.Gray{Y: 9})

	img := GrayImageFromImage(src)
	if img.Bounds().Min != (image.Point{}) {
		t.Fatalf("Expected origin at (0,0), got %v", img.Bounds().Min)
	}
	if img.GetGray(0, 0) != 7 || img.GetGray(2, 1) != 9 {
		t.Errorf("Pixels not translated: got %d and %d", img.GetGray(0, 0), img.GetGray(2, 1))
	}
}

func TestToGrayscale(t *testing.T) {
	tests := []struct {
		name     string
		c        color.RGBA
		min, max uint8
	}{
		{"white", color.RGBA{255, 255, 255, 255}, 255, 255},
		{"black", color.RGBA{0, 0, 0, 255}, 0, 0},
		// 0.299 * 255 = 76.245
		{"red", color.RGBA{255, 0, 0, 255}, 75, 77},
		{"green", color.RGBA{0, 255, 0, 255}, 149, 151},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gray := ToGrayscale(CreateSolidRGBA(1, 1, tt.c))
			v := gray.GetGray(0, 0)
			if v < tt.min || v > tt.max {
				t.Errorf("Expected %d..%d, got %d", tt.min, tt.max, v)
			}
		})
	}
}

func TestToGrayscalePassesGrayThrough(t *testing.T) {
	src := CreateGradientGray(16, 2)
	gray := ToGrayscale(src)
	if diff := CalculateMaxDiffGray(src, gray); diff != 0 {
		t.Errorf("Gray input should be copied unchanged, max diff %d", diff)
	}
	gray.SetGrayValue(0, 0, 99)
	if src.GetGray(0, 0) == 99 {
		t.Error("ToGrayscale should not alias its input")
	}
}

func TestResizeGray(t *testing.T) {
	img := CreateGradientGray(100, 100)

	interps := []Interpolation{
		InterpolationLanczos,
		InterpolationNearest,
		InterpolationTriangle,
		InterpolationCatmullRom,
		InterpolationGaussian,
	}
	for _, interp := range interps {
		t.Run(interp.String(), func(t *testing.T) {
			down := ResizeGray(img, 50, 25, interp)
			if down.Width() != 50 || down.Height() != 25 {
				t.Errorf("Expected 50x25, got %dx%d", down.Width(), down.Height())
			}
			up := ResizeGray(img, 200, 300, interp)
			if up.Width() != 200 || up.Height() != 300 {
				t.Errorf("Expected 200x300, got %dx%d", up.Width(), up.Height())
			}
		})
	}
}

func TestResizeGrayUniformStaysUniform(t *testing.T) {
	img := NewUniformGray(9, 7, 200)
	resized := ResizeGray(img, 4, 3, InterpolationTriangle)
	for _, v := range resized.Pix {
		if v != 200 {
			t.Fatalf("Expected uniform 200 after resize, got %d", v)
		}
	}
}

func TestResizeGrayZeroDimension(t *testing.T) {
	img := CreateGradientGray(10, 10)
	resized := ResizeGray(img, 5, 0, InterpolationNearest)
	if resized.Width() != 5 || resized.Height() != 0 {
		t.Errorf("Expected 5x0, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeToWidthKeepsAspect(t *testing.T) {
	img := CreateGradientGray(200, 100)
	resized := ResizeToWidth(img, 50, InterpolationNearest)
	if resized.Width() != 50 || resized.Height() != 25 {
		t.Errorf("Expected 50x25, got %dx%d", resized.Width(), resized.Height())
	}
	resized = ResizeToHeight(img, 10, InterpolationNearest)
	if resized.Width() != 20 || resized.Height() != 10 {
		t.Errorf("Expected 20x10, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestLoadSaveImage(t *testing.T) {
	tmpDir := t.TempDir()
	img := CreateCheckerboardGray(64, 64, 8)

	pngPath := filepath.Join(tmpDir, "test.png")
	if err := SaveImage(img, pngPath); err != nil {
		t.Fatalf("Failed to save PNG: %v", err)
	}

	loaded, err := LoadGray(pngPath)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	// PNG should be lossless
	if diff := CalculateMaxDiffGray(img, loaded); diff != 0 {
		t.Errorf("PNG should be lossless, max diff %d", diff)
	}
}

func TestSaveImageUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.unknown")
	if err := SaveImage(NewGrayImage(2, 2), path); err == nil {
		t.Error("Expected an error for an unsupported extension")
	}
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadGray(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("Expected ErrImageNotFound, got %v", err)
	}
}

func TestLoadImageUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadGray(path)
	if err == nil || errors.Is(err, ErrImageNotFound) {
		t.Errorf("Expected a decode error, got %v", err)
	}
}
