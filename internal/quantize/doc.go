// Package quantize implements median-cut color quantization.
//
// Given a set of RGB samples, Quantize recursively splits the samples along
// the channel with the widest range until a target depth is reached, and
// emits one averaged color per terminal partition. The resulting Palette can
// then be used to remap arbitrary pixels with Match or a Matcher.
//
// # Palette Size
//
// The palette holds 2^floor(log2(n)) colors for a requested count n, so a
// request that is not a power of two is rounded down:
//
//	n = 1  -> 1 color
//	n = 5  -> 4 colors
//	n = 16 -> 16 colors
//
// A partition that holds a single sample stops splitting early, so sample
// sets smaller than the target palette yield fewer colors.
//
// # Determinism
//
// Samples are ordered with a stable sort, ties on the split channel keep
// their input order, and channel ties resolve red before green before blue.
// The same input always produces the same palette in the same order.
//
// # Matching
//
// Match compares a pixel against every palette entry by Euclidean RGB
// distance and returns the first closest entry. NewMatcher can build a k-d
// tree over the palette instead; both matchers return identical results.
//
// The package holds no global state and performs no I/O. All functions are
// safe for concurrent use on distinct inputs.
package quantize
