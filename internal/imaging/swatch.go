package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/median-cut-mcp/internal/quantize"
)

// Swatch layout defaults.
const (
	DefaultSwatchCellSize = 32
	DefaultSwatchColumns  = 16

	// MaxSwatchSide bounds the rendered swatch in both dimensions.
	MaxSwatchSide = 4096
)

// SwatchResult contains a rendered palette preview.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Columns     int    `json:"columns"`
	Rows        int    `json:"rows"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderSwatch draws the palette as a grid of square cells in palette order,
// left to right then top to bottom. Cells past the end of the palette on the
// last row are left transparent.
func RenderSwatch(p quantize.Palette, cellSize, columns int) (*image.NRGBA, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: nothing to render", quantize.ErrEmptyPalette)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}
	if columns <= 0 {
		columns = DefaultSwatchColumns
	}
	columns = min(columns, len(p))
	rows := (len(p) + columns - 1) / columns

	if cellSize > MaxSwatchSide || columns > MaxSwatchSide/cellSize || rows > MaxSwatchSide/cellSize {
		return nil, fmt.Errorf("swatch of %d x %d cells of %dpx exceeds %dpx per side",
			columns, rows, cellSize, MaxSwatchSide)
	}

	img := imaging.New(columns*cellSize, rows*cellSize, color.NRGBA{})
	for i, c := range p {
		x := (i % columns) * cellSize
		y := (i / columns) * cellSize
		cell := image.Rect(x, y, x+cellSize, y+cellSize)
		fill := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		draw.Draw(img, cell, fill, image.Point{}, draw.Src)
	}
	return img, nil
}

// Swatch renders the palette and encodes it as a base64 PNG.
func Swatch(p quantize.Palette, cellSize, columns int) (*SwatchResult, error) {
	img, err := RenderSwatch(p, cellSize, columns)
	if err != nil {
		return nil, err
	}

	encoded, err := EncodePNGBase64(img)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	return &SwatchResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		Columns:     b.Dx() / cellSize,
		Rows:        b.Dy() / cellSize,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
