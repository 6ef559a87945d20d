// Package imaging connects decoded images to the median-cut quantizer.
//
// It covers everything around the core algorithm: loading and caching source
// images, shrinking them to a sample budget, streaming their pixels into
// quantize.Color samples, remapping full-resolution images onto a palette,
// writing results, and formatting palette colors for clients.
//
// # Pipeline
//
// A typical run goes through these stages:
//
//	img, _ := cache.Load(path)                      // decode (PNG, JPEG, GIF, BMP, TIFF, WebP)
//	sampled := imaging.Downsample(img, 100_000)     // bound the sample count
//	samples := imaging.ExtractSamples(sampled)      // row-major pixels
//	palette, _ := quantize.Quantize(samples, 16)    // median cut
//	m, _ := quantize.NewMatcher(palette, quantize.MatcherLinear)
//	out, _ := imaging.RemapImage(img, m)            // every pixel -> nearest entry
//
// BuildPalette and QuantizeImage wrap these steps.
//
// # Coordinate System
//
// Regions use 0-based pixel coordinates with (0,0) at the top-left corner.
// (X1, Y1) is inclusive and (X2, Y2) is exclusive.
//
// # Alpha
//
// Pixels are sampled as premultiplied 8-bit RGBA and the alpha channel is
// dropped, so translucent areas contribute their color composited onto
// black. Remapped images are always opaque.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions hold no shared
// state and can run concurrently on different images.
package imaging
