package quantize

import "errors"

var (
	// ErrInvalidParameter is returned when a requested color count is less than 1.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyInput is returned when there are no samples to quantize, or a
	// partition scheduled to emit a color owns no samples.
	ErrEmptyInput = errors.New("empty input")

	// ErrEmptyPalette is returned when matching against a palette with no entries.
	ErrEmptyPalette = errors.New("empty palette")
)
