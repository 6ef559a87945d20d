package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
)

// RemapReport measures how far a remapped image strays from its source.
type RemapReport struct {
	TotalPixels      int     `json:"total_pixels"`
	PixelsChanged    int     `json:"pixels_changed"`
	MeanChannelError float64 `json:"mean_channel_error"`
	RMSE             float64 `json:"rmse"`

	// PSNR is the peak signal-to-noise ratio in dB. It is 0 when the images
	// are identical, which Identical reports.
	PSNR      float64 `json:"psnr_db"`
	Identical bool    `json:"identical"`
}

// CompareImages compares two images of the same size channel by channel.
func CompareImages(original, remapped image.Image) (*RemapReport, error) {
	a := clone.AsRGBA(original)
	b := clone.AsRGBA(remapped)

	w, h := a.Rect.Dx(), a.Rect.Dy()
	if w != b.Rect.Dx() || h != b.Rect.Dy() {
		return nil, fmt.Errorf("image sizes differ: %dx%d vs %dx%d", w, h, b.Rect.Dx(), b.Rect.Dy())
	}

	totalPixels := w * h
	if totalPixels == 0 {
		return nil, fmt.Errorf("cannot compare empty images")
	}

	var absSum, sqSum float64
	changed := 0

	for y := 0; y < h; y++ {
		rowA := a.Pix[y*a.Stride : y*a.Stride+w*4]
		rowB := b.Pix[y*b.Stride : y*b.Stride+w*4]
		for x := 0; x < len(rowA); x += 4 {
			dr := absDiff(rowA[x], rowB[x])
			dg := absDiff(rowA[x+1], rowB[x+1])
			db := absDiff(rowA[x+2], rowB[x+2])

			absSum += float64(dr + dg + db)
			sqSum += float64(dr*dr + dg*dg + db*db)
			if dr+dg+db > 0 {
				changed++
			}
		}
	}

	samples := float64(totalPixels * 3)
	mse := sqSum / samples

	report := &RemapReport{
		TotalPixels:      totalPixels,
		PixelsChanged:    changed,
		MeanChannelError: math.Round(absSum/samples*100) / 100,
		RMSE:             math.Round(math.Sqrt(mse)*100) / 100,
		Identical:        mse == 0,
	}
	if mse > 0 {
		report.PSNR = math.Round(10*math.Log10(255*255/mse)*100) / 100
	}

	return report, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
