package imaging

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
)

// Options tune PrepareForOCR. The zero value is not useful; start from DefaultOptions.
type Options struct {
	// MinHeight is the height below which the image is upscaled. 0 disables upscaling.
	MinHeight int

	// MaxScale caps the upscale factor.
	MaxScale float64

	// Contrast is the bild contrast change in [-1, 1]. 0 leaves contrast untouched.
	Contrast float64
}

// DefaultOptions returns the settings used for extract_image_text.
func DefaultOptions() Options {
	return Options{
		MinHeight: 300,
		MaxScale:  4,
		Contrast:  0.3,
	}
}

// PrepareForOCR returns a single-channel, dark-on-light, contrast-boosted copy of img.
//
// The input is never modified. See the package documentation for the pipeline.
func PrepareForOCR(img image.Image, opts Options) *image.Gray {
	out := upscale(img, opts)

	gray := imaging.Grayscale(out)
	var prepared image.Image = gray
	if IsDark(gray) {
		prepared = imaging.Invert(gray)
	}

	if opts.Contrast != 0 {
		prepared = adjust.Contrast(prepared, opts.Contrast)
	}
	return toGray(prepared)
}

// toGray copies img into an 8-bit single-channel image so the PNG handed to Tesseract
// is grayscale rather than RGBA.
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	g := image.NewGray(b)
	draw.Draw(g, b, img, b.Min, draw.Src)
	return g
}

func upscale(img image.Image, opts Options) image.Image {
	h := img.Bounds().Dy()
	if opts.MinHeight <= 0 || h == 0 || h >= opts.MinHeight {
		return img
	}
	scale := float64(opts.MinHeight) / float64(h)
	if opts.MaxScale > 0 && scale > opts.MaxScale {
		scale = opts.MaxScale
	}
	w := int(float64(img.Bounds().Dx())*scale + 0.5)
	return imaging.Resize(img, w, 0, imaging.Lanczos)
}
