package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/wbrown/img2ascii"
)

// computeGlyphs renders every character of the ramp with the font at
// fontPath into cells of cellSize pixels.
func computeGlyphs(fontPath, ramp string, cellSize int) (*img2ascii.GlyphCache, string, error) {
	r, err := img2ascii.NewRamp(ramp)
	if err != nil {
		return nil, "", err
	}

	font, err := img2ascii.LoadFont(fontPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load font: %w", err)
	}
	defer font.Close()

	cache, err := img2ascii.BuildGlyphCache(r, font, cellSize)
	if err != nil {
		return nil, "", err
	}
	return cache, filepath.Base(font.Name), nil
}

// saveGlyphs writes the glyph data to outputPath.
func saveGlyphs(cache *img2ascii.GlyphCache, fontName, outputPath string) error {
	var buf bytes.Buffer
	if err := img2ascii.SaveGlyphData(&buf, cache, fontName); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func main() {
	inputFont := flag.String("font", img2ascii.DefaultFontPath,
		"Path to the input font file (default: bundled Go Mono)")
	ramp := flag.String("ramp", img2ascii.DefaultRamp,
		"Characters to render, ordered from darkest to lightest")
	size := flag.Int("size", img2ascii.DefaultCellSize,
		"Cell size in pixels")
	outputFile := flag.String("output", "",
		"Path to save the output glyph data file (required)")
	flag.Parse()

	if *outputFile == "" {
		fmt.Println("The -output flag is required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Printf("Computing %dpx glyphs for font: %s", *size, *inputFont)

	cache, fontName, err := computeGlyphs(*inputFont, *ramp, *size)
	if err != nil {
		log.Fatalf("Failed to compute glyphs: %v", err)
	}

	log.Printf("Computed %d glyphs", cache.Len())

	if err := saveGlyphs(cache, fontName, *outputFile); err != nil {
		log.Fatalf("Failed to save glyph data: %v", err)
	}

	fileInfo, err := os.Stat(*outputFile)
	if err == nil {
		log.Printf("Saved glyph data to %s (%.2f KB)", *outputFile, float64(fileInfo.Size())/1024)
	}

	baseName := strings.TrimSuffix(fontName, filepath.Ext(fontName))
	log.Printf("Use with: img2ascii -r --font-size %d --glyphs %s -t %q INPUT OUTPUT",
		*size, *outputFile, *ramp)
	log.Printf("Suggested filename: %s_%d.glyphs", strings.ToLower(strings.ReplaceAll(baseName, " ", "_")), *size)
}
