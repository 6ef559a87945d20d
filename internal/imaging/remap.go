package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/median-cut-mcp/internal/quantize"
)

// memoMatcher remembers the answer for every distinct pixel it has seen.
// Photographs repeat colors heavily, so most lookups never reach the
// underlying matcher.
type memoMatcher struct {
	next quantize.Matcher
	seen map[quantize.Color]memoEntry
}

type memoEntry struct {
	color quantize.Color
	index int
}

func newMemoMatcher(next quantize.Matcher) *memoMatcher {
	return &memoMatcher{
		next: next,
		seen: make(map[quantize.Color]memoEntry),
	}
}

func (m *memoMatcher) Match(pixel quantize.Color) (quantize.Color, int) {
	if e, ok := m.seen[pixel]; ok {
		return e.color, e.index
	}
	c, i := m.next.Match(pixel)
	m.seen[pixel] = memoEntry{color: c, index: i}
	return c, i
}

// RemapBuffer replaces every pixel of img with its nearest palette color and
// returns the result as a packed RGB buffer of width*height*3 bytes.
func RemapBuffer(img image.Image, m quantize.Matcher) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: no matcher", quantize.ErrEmptyPalette)
	}
	return quantize.RemapRGB(FlattenRGB(img), newMemoMatcher(m))
}

// RemapImage replaces every pixel of img with its nearest palette color. The
// result is opaque and has img's size, with its origin at (0, 0).
func RemapImage(img image.Image, m quantize.Matcher) (*image.NRGBA, error) {
	pix, err := RemapBuffer(img, m)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return ImageFromRGB(pix, b.Dx(), b.Dy())
}

// SaveImage writes img to path. The format follows the extension: jpg, jpeg,
// png, gif, tif, tiff or bmp.
func SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodePNGBase64 encodes img as a base64 PNG.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
