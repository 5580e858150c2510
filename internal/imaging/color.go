package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// maxSamplesPerAxis bounds the sampling grid used by MeanLightness.
const maxSamplesPerAxis = 256

// DarkThreshold is the mean lightness below which an image is treated as light text
// on a dark background.
const DarkThreshold = 0.5

// MeanLightness returns the average CIE L* lightness of img in [0, 1].
//
// Fully transparent pixels are skipped. An image with no opaque pixels (or no pixels)
// reports 1, i.e. a blank white page.
func MeanLightness(img image.Image) float64 {
	b := img.Bounds()
	if b.Empty() {
		return 1
	}

	stepX := max(1, b.Dx()/maxSamplesPerAxis)
	stepY := max(1, b.Dy()/maxSamplesPerAxis)

	var sum float64
	var n int
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return clamp01(sum / float64(n))
}

// IsDark reports whether img is mostly dark, suggesting light-on-dark text.
func IsDark(img image.Image) bool {
	return MeanLightness(img) < DarkThreshold
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
