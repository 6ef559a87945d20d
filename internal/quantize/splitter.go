package quantize

import (
	"cmp"
	"fmt"
	"slices"
)

// splitter drives the median-cut recursion and collects terminal colors in
// left-before-right order.
type splitter struct {
	maxDepth int
	palette  Palette

	// onSplit, when set, observes every split after both children are built.
	onSplit func(parent, left, right partition)
}

// split either emits the average of p or divides p at its median along the
// longest channel and recurses into both halves.
//
// Children are sub-slices of the parent's samples. Sorting a child in place
// never touches its sibling, and the parent is not read again afterwards.
func (s *splitter) split(p partition, depth int) error {
	if len(p.samples) == 0 {
		return fmt.Errorf("%w: partition at depth %d owns no samples", ErrEmptyInput, depth)
	}

	if depth == s.maxDepth || len(p.samples) == 1 {
		avg, err := p.average()
		if err != nil {
			return err
		}
		s.palette = append(s.palette, avg)
		return nil
	}

	ch := p.bounds.longestChannel()
	slices.SortStableFunc(p.samples, func(a, b Color) int {
		return cmp.Compare(a.Channel(ch), b.Channel(ch))
	})

	// The right half takes the extra sample when the count is odd.
	median := len(p.samples) / 2
	left := newPartition(p.samples[:median:median])
	right := newPartition(p.samples[median:])

	if s.onSplit != nil {
		s.onSplit(p, left, right)
	}

	if err := s.split(left, depth+1); err != nil {
		return err
	}
	return s.split(right, depth+1)
}
