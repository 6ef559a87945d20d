package imaging

import (
	"image"
	"log"
	"time"

	"github.com/ironsheep/median-cut-mcp/internal/quantize"
)

// QuantizeOptions controls a full palette-and-remap run.
type QuantizeOptions struct {
	PaletteOptions

	// Matcher selects the nearest-color search. Empty means linear.
	Matcher quantize.MatcherKind

	// OutputPath, when set, is where the remapped image is written. When
	// empty the image is returned base64-encoded instead.
	OutputPath string
}

// QuantizeResult describes a remapped image.
type QuantizeResult struct {
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Matcher     string         `json:"matcher"`
	Palette     *PaletteResult `json:"palette"`
	Report      *RemapReport   `json:"report"`
	OutputPath  string         `json:"output_path,omitempty"`
	ImageBase64 string         `json:"image_base64,omitempty"`
	MimeType    string         `json:"mime_type,omitempty"`

	// Image is the remapped image itself, for in-process callers.
	Image *image.NRGBA `json:"-"`
}

// QuantizeImage builds a palette from a sample of img, then remaps every
// pixel of the full-resolution img onto it. With a region set, both steps
// work on the same crop.
func QuantizeImage(img image.Image, opts QuantizeOptions) (*QuantizeResult, error) {
	src, err := CropRegion(img, opts.Region)
	if err != nil {
		return nil, err
	}

	pal, err := buildPalette(src, opts.PaletteOptions)
	if err != nil {
		return nil, err
	}

	kind := opts.Matcher
	if kind == "" {
		kind = quantize.MatcherLinear
	}
	m, err := quantize.NewMatcher(pal.Palette, kind)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	remapped, err := RemapImage(src, m)
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		log.Printf("Remap %dms (%s matcher)", time.Since(start).Milliseconds(), kind)
	}

	report, err := CompareImages(src, remapped)
	if err != nil {
		return nil, err
	}

	b := remapped.Bounds()
	result := &QuantizeResult{
		Width:   b.Dx(),
		Height:  b.Dy(),
		Matcher: string(kind),
		Palette: pal,
		Report:  report,
		Image:   remapped,
	}

	if opts.OutputPath != "" {
		if err := SaveImage(remapped, opts.OutputPath); err != nil {
			return nil, err
		}
		result.OutputPath = opts.OutputPath
		if opts.Debug {
			log.Printf("Quantized image saved to %s", opts.OutputPath)
		}
		return result, nil
	}

	encoded, err := EncodePNGBase64(remapped)
	if err != nil {
		return nil, err
	}
	result.ImageBase64 = encoded
	result.MimeType = "image/png"
	return result, nil
}
