package quantize

import "fmt"

// RemapRGB replaces every pixel of a packed RGB buffer (3 bytes per pixel,
// row-major) with its nearest palette color. The input is left untouched and
// a new buffer of the same length is returned.
func RemapRGB(pix []byte, m Matcher) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: no matcher", ErrEmptyPalette)
	}
	if len(pix)%3 != 0 {
		return nil, fmt.Errorf("%w: RGB buffer length %d is not a multiple of 3", ErrInvalidParameter, len(pix))
	}

	out := make([]byte, len(pix))
	for i := 0; i < len(pix); i += 3 {
		c, _ := m.Match(Color{R: pix[i], G: pix[i+1], B: pix[i+2]})
		out[i] = c.R
		out[i+1] = c.G
		out[i+2] = c.B
	}
	return out, nil
}
