package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/median-cut-mcp/internal/quantize"
)

// DefaultSampleTarget is the pixel budget images are shrunk to before their
// colors are sampled.
const DefaultSampleTarget = 100_000

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// CropRegion returns the part of img covered by region. A nil region returns
// img unchanged.
func CropRegion(img image.Image, region *Region) (image.Image, error) {
	if region == nil {
		return img, nil
	}

	bounds := img.Bounds()
	if region.X1 < bounds.Min.X || region.Y1 < bounds.Min.Y || region.X2 > bounds.Max.X || region.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			region.X1, region.Y1, region.X2, region.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
		return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, image.Rect(region.X1, region.Y1, region.X2, region.Y2)), nil
}

// Downsample shrinks img so that it holds about targetSamples pixels while
// keeping its aspect ratio. Images already within budget, and any
// targetSamples <= 0, return img unchanged.
//
// The new height is sqrt(h/w * target) and the new width target/height,
// each rounded to the nearest pixel, resampled with a Lanczos filter.
func Downsample(img image.Image, targetSamples int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if targetSamples <= 0 || w*h <= targetSamples {
		return img
	}

	height := math.Sqrt(float64(h) / float64(w) * float64(targetSamples))
	width := float64(targetSamples) / height

	newW := max(1, int(math.Round(width)))
	newH := max(1, int(math.Round(height)))

	return imaging.Resize(img, newW, newH, imaging.Lanczos)
}

// ExtractSamples returns one color per pixel, scanning rows top to bottom
// and each row left to right.
//
// Pixels are read as 8-bit premultiplied RGBA, so translucent pixels are
// effectively composited onto black and the alpha value is dropped.
func ExtractSamples(img image.Image) []quantize.Color {
	rgba := clone.AsRGBA(img)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	samples := make([]quantize.Color, 0, w*h)
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			samples = append(samples, quantize.Color{R: row[x], G: row[x+1], B: row[x+2]})
		}
	}
	return samples
}

// FlattenRGB packs img into a row-major buffer of 3 bytes per pixel.
func FlattenRGB(img image.Image) []byte {
	rgba := clone.AsRGBA(img)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	pix := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			pix = append(pix, row[x], row[x+1], row[x+2])
		}
	}
	return pix
}

// ImageFromRGB wraps a packed RGB buffer as an opaque image.
func ImageFromRGB(pix []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pix) != width*height*3 {
		return nil, fmt.Errorf("RGB buffer has %d bytes, want %d for %dx%d", len(pix), width*height*3, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(pix); i, j = i+3, j+4 {
		img.Pix[j] = pix[i]
		img.Pix[j+1] = pix[i+1]
		img.Pix[j+2] = pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img, nil
}
