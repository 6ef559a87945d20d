package imaging

import (
	"fmt"
	"image"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/median-cut-mcp/internal/quantize"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult is a color in the representations returned to clients.
type ColorResult struct {
	Hex string   `json:"hex"` // "#RRGGBB"
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// PaletteEntry is a palette color together with its position in the palette.
type PaletteEntry struct {
	Index int `json:"index"`
	ColorResult
}

// FormatColor renders c as hex, RGB and HSL.
func FormatColor(c quantize.Color) ColorResult {
	cf := toColorful(c)
	h, s, l := cf.Hsl()

	return ColorResult{
		Hex: strings.ToUpper(cf.Hex()),
		RGB: RGBColor{R: c.R, G: c.G, B: c.B},
		HSL: HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}

// FormatPalette renders every palette color in palette order.
func FormatPalette(p quantize.Palette) []PaletteEntry {
	entries := make([]PaletteEntry, len(p))
	for i, c := range p {
		entries[i] = PaletteEntry{Index: i, ColorResult: FormatColor(c)}
	}
	return entries
}

// ParseColor parses a "#RRGGBB" or "RRGGBB" hex string.
func ParseColor(s string) (quantize.Color, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 {
		return quantize.Color{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}

	cf, err := colorful.Hex(hex)
	if err != nil {
		return quantize.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return quantize.Color{R: r, G: g, B: b}, nil
}

// ParsePalette parses a list of hex colors, keeping their order.
func ParsePalette(values []string) (quantize.Palette, error) {
	p := make(quantize.Palette, 0, len(values))
	for i, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p = append(p, c)
	}
	return p, nil
}

func toColorful(c quantize.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// SampleColor reads the pixel at (x, y) the same way ExtractSamples does.
func SampleColor(img image.Image, x, y int) (quantize.Color, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return quantize.Color{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, _ := img.At(x, y).RGBA()
	return quantize.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}, nil
}
