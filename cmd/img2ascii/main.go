// Command img2ascii converts an image into character art, written either
// as a text file or as an image built from rendered glyphs.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/config"
	"github.com/wbrown/img2ascii/imageutil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one conversion and returns the process exit code.
// Missing input or font files are reported on stdout with exit code 0.
func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("img2ascii", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: img2ascii [flags] INPUT OUTPUT\n\n"+
			"A simple program to convert images into ascii art\n\n")
		fs.PrintDefaults()
	}

	scale := fs.StringP("scale", "s", "",
		`The resolution to scale the image to ("N", "W:H", "W:_" or "_:H")`)
	filter := fs.String("filter", img2ascii.DefaultFilter.String(),
		"The scaling filter to use when resizing the image: "+strings.Join(img2ascii.FilterNames, ", "))
	table := fs.StringP("table", "t", img2ascii.DefaultRamp,
		"The ascii characters to use ordered from darkest to lightest")
	raster := fs.BoolP("raster", "r", false,
		"Changes the output type from a text file to a rastered image")
	fontPath := fs.String("font", "",
		"The font to use when rastering the image (default: bundled Go Mono)")
	fontSize := fs.Int("font-size", img2ascii.DefaultCellSize,
		"The height of the font in pixels")
	glyphsPath := fs.String("glyphs", "",
		"Pre-computed glyph file to use instead of rendering the font")
	configPath := fs.StringP("config", "c", "",
		"Path to configuration file")
	verbose := fs.BoolP("verbose", "v", false,
		"Enable debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}
	input, output := fs.Arg(0), fs.Arg(1)

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	// Flags given on the command line win over the config file
	if fs.Changed("scale") {
		cfg.Scale = *scale
	}
	if fs.Changed("filter") {
		cfg.Filter = *filter
	}
	if fs.Changed("table") {
		cfg.Ramp = *table
	}
	if fs.Changed("raster") {
		cfg.Raster = *raster
	}
	if fs.Changed("font") {
		cfg.Font = *fontPath
	}
	if fs.Changed("font-size") {
		cfg.FontSize = *fontSize
	}
	if fs.Changed("glyphs") {
		cfg.Glyphs = *glyphsPath
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 1
	}

	logger := newLogger(stderr, cfg.LogLevel)

	if _, err := os.Stat(input); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(stdout, "Can not find input image!")
		return 0
	}

	opts, code, ok := converterOptions(cfg, logger, stdout, stderr)
	if !ok {
		return code
	}
	converter := img2ascii.NewConverter(opts...)

	img, err := imageutil.LoadImage(input)
	if err != nil {
		if errors.Is(err, imageutil.ErrImageNotFound) {
			fmt.Fprintln(stdout, "Can not find input image!")
			return 0
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	logger.Debug("loaded image", "path", input,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	if cfg.Raster {
		out, err := converter.ToRaster(img)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		if err := imageutil.SaveImage(out, output); err != nil {
			fmt.Fprintf(stderr, "failed to write output file: %v\n", err)
			return 1
		}
		logger.Info("wrote raster output", "path", output,
			"width", out.Bounds().Dx(), "height", out.Bounds().Dy())
		return 0
	}

	text, err := converter.ToText(img)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if err := os.WriteFile(output, []byte(text), 0644); err != nil {
		fmt.Fprintf(stderr, "failed to write output file: %v\n", err)
		return 1
	}
	logger.Info("wrote text output", "path", output, "bytes", len(text))
	return 0
}

// converterOptions turns a config into converter options, loading the
// font or glyph file for raster output. When ok is false the run should
// end with code.
func converterOptions(cfg *config.Config, logger *slog.Logger, stdout, stderr io.Writer) (opts []img2ascii.ConverterOption, code int, ok bool) {
	ramp, err := img2ascii.NewRamp(cfg.Ramp)
	if err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return nil, 1, false
	}
	filter, err := img2ascii.ParseFilter(cfg.Filter)
	if err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return nil, 1, false
	}
	spec, err := cfg.ScaleSpec()
	if err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return nil, 1, false
	}

	opts = []img2ascii.ConverterOption{
		img2ascii.WithRamp(ramp),
		img2ascii.WithFilter(filter),
		img2ascii.WithScale(spec),
		img2ascii.WithCellSize(cfg.FontSize),
		img2ascii.WithLogger(logger),
	}
	if !cfg.Raster {
		return opts, 0, true
	}

	if cfg.Glyphs != "" {
		f, err := os.Open(cfg.Glyphs)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(stdout, "Can not find glyph file!")
				return nil, 0, false
			}
			fmt.Fprintf(stderr, "%v\n", err)
			return nil, 1, false
		}
		defer f.Close()
		cache, fontName, err := img2ascii.LoadGlyphData(f)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return nil, 1, false
		}
		logger.Debug("loaded glyph file", "path", cfg.Glyphs, "font", fontName, "glyphs", cache.Len())
		return append(opts, img2ascii.WithGlyphCache(cache)), 0, true
	}

	font, err := img2ascii.LoadFont(cfg.Font)
	if err != nil {
		if errors.Is(err, img2ascii.ErrFontNotFound) {
			fmt.Fprintln(stdout, "Can not find font file!")
			return nil, 0, false
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return nil, 1, false
	}
	logger.Debug("loaded font", "font", font.Name, "size", cfg.FontSize)
	return append(opts, img2ascii.WithFont(font)), 0, true
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
