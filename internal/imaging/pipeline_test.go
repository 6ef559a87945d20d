package imaging

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ironsheep/median-cut-mcp/internal/quantize"
)

func TestQuantizeImage_ExactPalette(t *testing.T) {
	img := createPatternImage(100, 100)

	for _, kind := range []quantize.MatcherKind{"", quantize.MatcherLinear, quantize.MatcherKDTree} {
		t.Run(string(kind), func(t *testing.T) {
			result, err := QuantizeImage(img, QuantizeOptions{
				PaletteOptions: PaletteOptions{Colors: 4},
				Matcher:        kind,
			})
			if err != nil {
				t.Fatalf("QuantizeImage failed: %v", err)
			}

			if !result.Report.Identical {
				t.Errorf("four-color image should remap exactly, got %+v", result.Report)
			}
			if result.Width != 100 || result.Height != 100 {
				t.Errorf("got %dx%d, want 100x100", result.Width, result.Height)
			}
			if result.ImageBase64 == "" || result.MimeType != "image/png" {
				t.Error("expected an encoded PNG")
			}
			if result.Matcher == "" {
				t.Error("matcher name should be reported")
			}
		})
	}
}

func TestQuantizeImage_FullResolutionAfterSampling(t *testing.T) {
	img := createPatternImage(200, 100)

	result, err := QuantizeImage(img, QuantizeOptions{
		PaletteOptions: PaletteOptions{Colors: 2, SampleTarget: 500},
	})
	if err != nil {
		t.Fatalf("QuantizeImage failed: %v", err)
	}
	if result.Palette.SampleCount >= 200*100 {
		t.Errorf("palette should be built from a reduced sample, got %d samples", result.Palette.SampleCount)
	}
	if result.Width != 200 || result.Height != 100 || result.Report.TotalPixels != 200*100 {
		t.Errorf("remap should cover the full image, got %dx%d", result.Width, result.Height)
	}
	if result.Report.Identical {
		t.Error("two colors cannot reproduce four")
	}
}

func TestQuantizeImage_Region(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := QuantizeImage(img, QuantizeOptions{
		PaletteOptions: PaletteOptions{Colors: 1, Region: &Region{X1: 50, Y1: 50, X2: 100, Y2: 100}},
	})
	if err != nil {
		t.Fatalf("QuantizeImage failed: %v", err)
	}
	if result.Width != 50 || result.Height != 50 || !result.Report.Identical {
		t.Errorf("white quadrant should remap exactly, got %dx%d %+v", result.Width, result.Height, result.Report)
	}
}

func TestQuantizeImage_OutputPath(t *testing.T) {
	img := createPatternImage(20, 20)
	out := filepath.Join(t.TempDir(), "quantized.png")

	result, err := QuantizeImage(img, QuantizeOptions{
		PaletteOptions: PaletteOptions{Colors: 4},
		OutputPath:     out,
	})
	if err != nil {
		t.Fatalf("QuantizeImage failed: %v", err)
	}
	if result.OutputPath != out || result.ImageBase64 != "" {
		t.Errorf("expected the image to be written to %s only", out)
	}

	cache := NewImageCache()
	saved, err := cache.Load(out)
	if err != nil {
		t.Fatalf("failed to reload output: %v", err)
	}
	report, err := CompareImages(img, saved)
	if err != nil {
		t.Fatalf("CompareImages failed: %v", err)
	}
	if !report.Identical {
		t.Error("saved image does not match the remap")
	}
}

func TestQuantizeImage_Errors(t *testing.T) {
	img := createPatternImage(10, 10)

	_, err := QuantizeImage(img, QuantizeOptions{PaletteOptions: PaletteOptions{Colors: 0}})
	if !errors.Is(err, quantize.ErrInvalidParameter) {
		t.Errorf("colors=0: got %v, want ErrInvalidParameter", err)
	}

	_, err = QuantizeImage(img, QuantizeOptions{
		PaletteOptions: PaletteOptions{Colors: 2},
		Matcher:        "octree",
	})
	if !errors.Is(err, quantize.ErrInvalidParameter) {
		t.Errorf("unknown matcher: got %v, want ErrInvalidParameter", err)
	}
}

func TestQuantizeImage_RegionAwayFromOrigin(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := QuantizeImage(img, QuantizeOptions{
		PaletteOptions: PaletteOptions{Colors: 2, Region: &Region{X1: 25, Y1: 25, X2: 75, Y2: 75}},
	})
	if err != nil {
		t.Fatalf("QuantizeImage failed: %v", err)
	}
	if result.Width != 50 || result.Height != 50 {
		t.Errorf("got %dx%d, want 50x50", result.Width, result.Height)
	}
	if result.Palette.SampleCount != 2500 || result.Report.TotalPixels != 2500 {
		t.Errorf("palette and remap should cover the same crop: %d samples, %d pixels",
			result.Palette.SampleCount, result.Report.TotalPixels)
	}

	_, err = QuantizeImage(img, QuantizeOptions{
		PaletteOptions: PaletteOptions{Colors: 2, Region: &Region{X1: 0, Y1: 0, X2: 101, Y2: 10}},
	})
	if err == nil {
		t.Error("expected an error for a region outside the image")
	}
}
