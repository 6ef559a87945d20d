package quantize

import (
	"fmt"
	"strings"
)

// Palette is an ordered set of representative colors.
type Palette []Color

// MatchIndex returns the index of the palette entry closest to pixel. On
// equal distances the earliest entry wins.
func (p Palette) MatchIndex(pixel Color) (int, error) {
	if len(p) == 0 {
		return -1, fmt.Errorf("%w: cannot match %s", ErrEmptyPalette, pixel)
	}
	return p.nearest(pixel), nil
}

// Match returns the palette entry closest to pixel.
func (p Palette) Match(pixel Color) (Color, error) {
	i, err := p.MatchIndex(pixel)
	if err != nil {
		return Color{}, err
	}
	return p[i], nil
}

// nearest assumes a non-empty palette. Only a strictly smaller distance
// replaces the current best.
func (p Palette) nearest(pixel Color) int {
	best := 0
	bestDist := pixel.distanceSq(p[0])
	for i := 1; i < len(p); i++ {
		if d := pixel.distanceSq(p[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Match returns the entry of palette closest to pixel by Euclidean RGB
// distance, preferring the first entry on ties.
func Match(pixel Color, palette Palette) (Color, error) {
	return palette.Match(pixel)
}

// MatcherKind selects a nearest-color search strategy.
type MatcherKind string

const (
	// MatcherLinear scans every palette entry per lookup.
	MatcherLinear MatcherKind = "linear"

	// MatcherKDTree searches a k-d tree built over the palette.
	MatcherKDTree MatcherKind = "kdtree"
)

// ParseMatcherKind converts a name to a MatcherKind. An empty name selects
// MatcherLinear.
func ParseMatcherKind(name string) (MatcherKind, error) {
	switch MatcherKind(strings.ToLower(strings.TrimSpace(name))) {
	case "", MatcherLinear:
		return MatcherLinear, nil
	case MatcherKDTree:
		return MatcherKDTree, nil
	default:
		return "", fmt.Errorf("%w: unknown matcher %q (valid: %s, %s)",
			ErrInvalidParameter, name, MatcherLinear, MatcherKDTree)
	}
}

// Matcher maps pixels onto a fixed palette.
type Matcher interface {
	// Match returns the closest palette color and its palette index.
	Match(pixel Color) (Color, int)
}

// NewMatcher builds a Matcher of the given kind over palette. The palette is
// copied. An empty palette is rejected with ErrEmptyPalette.
func NewMatcher(palette Palette, kind MatcherKind) (Matcher, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("%w: matcher needs at least one color", ErrEmptyPalette)
	}

	p := make(Palette, len(palette))
	copy(p, palette)

	switch kind {
	case "", MatcherLinear:
		return linearMatcher{palette: p}, nil
	case MatcherKDTree:
		return newKDTree(p), nil
	default:
		return nil, fmt.Errorf("%w: unknown matcher %q", ErrInvalidParameter, kind)
	}
}

type linearMatcher struct {
	palette Palette
}

func (m linearMatcher) Match(pixel Color) (Color, int) {
	i := m.palette.nearest(pixel)
	return m.palette[i], i
}
