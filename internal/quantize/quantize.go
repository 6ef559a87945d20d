package quantize

import (
	"fmt"
	"math/bits"
	"slices"
)

// MaxDepth returns the split depth used for a requested color count, which
// is floor(log2(count)). It returns -1 when count is less than 1.
func MaxDepth(count int) int {
	if count < 1 {
		return -1
	}
	return bits.Len(uint(count)) - 1
}

// PaletteSize returns the number of colors Quantize produces for count when
// there are enough samples: the largest power of two not above count.
func PaletteSize(count int) int {
	if count < 1 {
		return 0
	}
	return 1 << MaxDepth(count)
}

// Quantize derives a palette of up to PaletteSize(count) colors from samples
// using median cut.
//
// The samples slice is not modified. Fewer colors are returned when the
// samples run out before the target depth is reached; a single sample always
// yields a one-color palette.
//
// Errors wrap ErrInvalidParameter when count < 1 and ErrEmptyInput when
// samples is empty.
func Quantize(samples []Color, count int) (Palette, error) {
	return quantize(samples, count, nil)
}

func quantize(samples []Color, count int, onSplit func(parent, left, right partition)) (Palette, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: color count must be at least 1, got %d", ErrInvalidParameter, count)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples to quantize", ErrEmptyInput)
	}

	s := &splitter{
		maxDepth: MaxDepth(count),
		palette:  make(Palette, 0, min(PaletteSize(count), len(samples))),
		onSplit:  onSplit,
	}

	root := newPartition(slices.Clone(samples))
	if err := s.split(root, 0); err != nil {
		return nil, err
	}

	return s.palette, nil
}
