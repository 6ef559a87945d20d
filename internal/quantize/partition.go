package quantize

import "fmt"

// bounds is the tight per-channel [min, max] box around a set of samples,
// indexed by Channel.
type bounds struct {
	min [3]uint8
	max [3]uint8
}

// computeBounds scans samples once. The result for an empty slice is
// meaningless; callers must not ask for it.
func computeBounds(samples []Color) bounds {
	b := bounds{min: [3]uint8{255, 255, 255}}
	for _, c := range samples {
		for ch := Red; ch <= Blue; ch++ {
			v := c.Channel(ch)
			if v < b.min[ch] {
				b.min[ch] = v
			}
			if v > b.max[ch] {
				b.max[ch] = v
			}
		}
	}
	return b
}

func (b bounds) spread(ch Channel) int {
	return int(b.max[ch]) - int(b.min[ch])
}

// longestChannel picks the channel with the widest range. Ties go to red,
// then green, then blue.
func (b bounds) longestChannel() Channel {
	r, g, bl := b.spread(Red), b.spread(Green), b.spread(Blue)

	if r >= g && r >= bl {
		return Red
	}
	if g >= r && g >= bl {
		return Green
	}
	return Blue
}

// contains reports whether inner lies within b on every channel.
func (b bounds) contains(inner bounds) bool {
	for ch := Red; ch <= Blue; ch++ {
		if inner.min[ch] < b.min[ch] || inner.max[ch] > b.max[ch] {
			return false
		}
	}
	return true
}

// partition owns a subset of the samples and its bounding box. The box is
// only ever built by newPartition, so it cannot drift from the samples.
type partition struct {
	samples []Color
	bounds  bounds
}

func newPartition(samples []Color) partition {
	return partition{
		samples: samples,
		bounds:  computeBounds(samples),
	}
}

// average returns the channel-wise mean of the samples using truncating
// integer division.
func (p partition) average() (Color, error) {
	n := uint64(len(p.samples))
	if n == 0 {
		return Color{}, fmt.Errorf("%w: cannot average a partition with no samples", ErrEmptyInput)
	}

	var r, g, b uint64
	for _, c := range p.samples {
		r += uint64(c.R)
		g += uint64(c.G)
		b += uint64(c.B)
	}

	return Color{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}, nil
}
