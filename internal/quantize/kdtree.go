package quantize

import (
	"cmp"
	"slices"
)

// kdNode is a palette entry stored in a k-d tree. Entries in left have a
// value on axis no greater than the node's, entries in right no smaller.
type kdNode struct {
	color       Color
	index       int
	axis        Channel
	left, right *kdNode
}

// kdTree answers nearest-color queries in roughly logarithmic time for
// large palettes. Results match a linear scan exactly, including the
// lowest-index tie-break.
type kdTree struct {
	root    *kdNode
	palette Palette
}

type kdEntry struct {
	color Color
	index int
}

func newKDTree(palette Palette) *kdTree {
	entries := make([]kdEntry, len(palette))
	for i, c := range palette {
		entries[i] = kdEntry{color: c, index: i}
	}
	return &kdTree{root: buildKDTree(entries), palette: palette}
}

// buildKDTree splits on the channel with the widest range and uses the
// median entry as the node.
func buildKDTree(entries []kdEntry) *kdNode {
	if len(entries) == 0 {
		return nil
	}

	colors := make([]Color, len(entries))
	for i, e := range entries {
		colors[i] = e.color
	}
	axis := computeBounds(colors).longestChannel()

	slices.SortStableFunc(entries, func(a, b kdEntry) int {
		return cmp.Compare(a.color.Channel(axis), b.color.Channel(axis))
	})

	median := len(entries) / 2
	return &kdNode{
		color: entries[median].color,
		index: entries[median].index,
		axis:  axis,
		left:  buildKDTree(entries[:median]),
		right: buildKDTree(entries[median+1:]),
	}
}

type kdBest struct {
	index int
	dist  int
}

func (b *kdBest) offer(index, dist int) {
	if dist < b.dist || (dist == b.dist && index < b.index) {
		b.index, b.dist = index, dist
	}
}

func (t *kdTree) Match(pixel Color) (Color, int) {
	best := kdBest{index: t.root.index, dist: pixel.distanceSq(t.root.color)}
	t.root.nearest(pixel, &best)
	return t.palette[best.index], best.index
}

// nearest visits the side of the split containing target first. The other
// side is searched unless it is strictly farther than the best match, so an
// equally distant entry with a lower index is never skipped.
func (n *kdNode) nearest(target Color, best *kdBest) {
	if n == nil {
		return
	}

	best.offer(n.index, target.distanceSq(n.color))

	diff := int(target.Channel(n.axis)) - int(n.color.Channel(n.axis))
	near, far := n.left, n.right
	if diff >= 0 {
		near, far = n.right, n.left
	}

	near.nearest(target, best)
	if diff*diff <= best.dist {
		far.nearest(target, best)
	}
}
