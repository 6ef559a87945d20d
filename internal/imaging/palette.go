package imaging

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/ironsheep/median-cut-mcp/internal/quantize"
)

// PaletteOptions controls how a palette is derived from an image.
type PaletteOptions struct {
	// Colors is the requested palette size. The palette actually holds
	// quantize.PaletteSize(Colors) entries.
	Colors int

	// SampleTarget is the pixel budget for sampling; see Downsample.
	// Zero or less samples every pixel.
	SampleTarget int

	// Region restricts sampling to part of the image. Nil samples it all.
	Region *Region

	// Debug logs sizes and timings for each stage.
	Debug bool
}

// PaletteResult is a palette together with how it was sampled.
type PaletteResult struct {
	Palette         quantize.Palette `json:"-"`
	Colors          []PaletteEntry   `json:"colors"`
	RequestedColors int              `json:"requested_colors"`
	PaletteSize     int              `json:"palette_size"`
	SampleCount     int              `json:"sample_count"`
	SampleWidth     int              `json:"sample_width"`
	SampleHeight    int              `json:"sample_height"`
}

// BuildPalette crops img to the requested region, shrinks it to the sample
// budget, extracts its pixels and quantizes them.
//
// Errors from quantize (invalid color count, no samples) are returned
// wrapped, so callers can still test them with errors.Is.
func BuildPalette(img image.Image, opts PaletteOptions) (*PaletteResult, error) {
	src, err := CropRegion(img, opts.Region)
	if err != nil {
		return nil, err
	}
	return buildPalette(src, opts)
}

// buildPalette samples src as is; opts.Region has already been applied.
func buildPalette(src image.Image, opts PaletteOptions) (*PaletteResult, error) {
	if opts.Colors < 1 {
		return nil, fmt.Errorf("%w: colors must be at least 1, got %d", quantize.ErrInvalidParameter, opts.Colors)
	}

	start := time.Now()

	sampled := Downsample(src, opts.SampleTarget)
	if opts.Debug {
		b := src.Bounds()
		s := sampled.Bounds()
		if b != s {
			log.Printf("Shrinking image %dx%d to %dx%d", b.Dx(), b.Dy(), s.Dx(), s.Dy())
		}
	}

	samples := ExtractSamples(sampled)
	if opts.Debug {
		log.Printf("Load & color extract %dms (%d samples)", time.Since(start).Milliseconds(), len(samples))
	}

	start = time.Now()
	palette, err := quantize.Quantize(samples, opts.Colors)
	if err != nil {
		return nil, fmt.Errorf("failed to quantize image: %w", err)
	}
	if opts.Debug {
		log.Printf("Color quantization %dms (%d colors)", time.Since(start).Milliseconds(), len(palette))
	}

	bounds := sampled.Bounds()
	return &PaletteResult{
		Palette:         palette,
		Colors:          FormatPalette(palette),
		RequestedColors: opts.Colors,
		PaletteSize:     len(palette),
		SampleCount:     len(samples),
		SampleWidth:     bounds.Dx(),
		SampleHeight:    bounds.Dy(),
	}, nil
}
