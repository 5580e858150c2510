package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"testing"
)

// createInMemoryImage creates a solid color image.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createTextLikeImage draws a bar of fg "text" across a bg background.
func createTextLikeImage(width, height int, fg, bg color.Color) *image.RGBA {
	img := createInMemoryImage(width, height, bg)
	for y := height / 3; y < height/2; y++ {
		for x := width / 5; x < width*4/5; x++ {
			img.Set(x, y, fg)
		}
	}
	return img
}

func encode(t *testing.T, img image.Image, format string) []byte {
	t.Helper()
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	}
	if err != nil {
		t.Fatalf("failed to encode %s: %v", format, err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	src := createInMemoryImage(40, 20, color.RGBA{200, 100, 50, 255})
	for _, format := range []string{"png", "jpeg"} {
		t.Run(format, func(t *testing.T) {
			img, info, err := Decode(encode(t, src, format))
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if info.Width != 40 || info.Height != 20 {
				t.Errorf("dimensions: got %dx%d, want 40x20", info.Width, info.Height)
			}
			if info.Format != format {
				t.Errorf("format: got %q, want %q", info.Format, format)
			}
			if img.Bounds().Dx() != 40 {
				t.Errorf("decoded width: got %d", img.Bounds().Dx())
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, _, err := Decode([]byte("%PDF-1.4 definitely not an image"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}

	pngData := encode(t, createInMemoryImage(10, 10, color.White), "png")
	_, _, err = Decode(pngData[:len(pngData)/2])
	if err == nil {
		t.Error("truncated image should fail to decode")
	}
}

func TestMeanLightness(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want float64
	}{
		{"white", createInMemoryImage(10, 10, color.White), 1},
		{"black", createInMemoryImage(10, 10, color.Black), 0},
		{"transparent", image.NewRGBA(image.Rect(0, 0, 10, 10)), 1},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeanLightness(tt.img)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("MeanLightness() = %.3f, want %.3f", got, tt.want)
			}
		})
	}

	gray := MeanLightness(createInMemoryImage(10, 10, color.Gray{Y: 128}))
	if gray < 0.4 || gray > 0.65 {
		t.Errorf("mid gray lightness out of range: %.3f", gray)
	}
}

func TestMeanLightness_LargeImageSampled(t *testing.T) {
	img := createInMemoryImage(2000, 1000, color.White)
	if got := MeanLightness(img); math.Abs(got-1) > 0.01 {
		t.Errorf("MeanLightness() = %.3f, want 1", got)
	}
}

func TestIsDark(t *testing.T) {
	if IsDark(createTextLikeImage(100, 60, color.Black, color.White)) {
		t.Error("dark text on white is not dark")
	}
	if !IsDark(createTextLikeImage(100, 60, color.White, color.Black)) {
		t.Error("white text on black is dark")
	}
}

func lum(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

func TestPrepareForOCR_InvertsDarkImages(t *testing.T) {
	opts := Options{Contrast: 0.3}

	dark := createTextLikeImage(100, 60, color.RGBA{240, 240, 240, 255}, color.RGBA{20, 20, 40, 255})
	out := PrepareForOCR(dark, opts)
	if bg, text := lum(out.At(0, 0)), lum(out.At(50, 25)); bg <= text {
		t.Errorf("after inversion the background should be lighter than the text: bg=%d text=%d", bg, text)
	}

	light := createTextLikeImage(100, 60, color.RGBA{10, 10, 10, 255}, color.RGBA{250, 250, 230, 255})
	out = PrepareForOCR(light, opts)
	if bg, text := lum(out.At(0, 0)), lum(out.At(50, 25)); bg <= text {
		t.Errorf("light images must not be inverted: bg=%d text=%d", bg, text)
	}
}

func TestPrepareForOCR_Grayscale(t *testing.T) {
	out := PrepareForOCR(createInMemoryImage(20, 20, color.RGBA{200, 30, 30, 255}), Options{})
	if out.ColorModel() != color.GrayModel {
		t.Errorf("color model: got %T, want gray", out.ColorModel())
	}
	if got := out.Bounds(); got != image.Rect(0, 0, 20, 20) {
		t.Errorf("bounds: got %v", got)
	}
	r, g, b, _ := out.At(5, 5).RGBA()
	if r != g || g != b {
		t.Errorf("output is not gray: r=%d g=%d b=%d", r, g, b)
	}
}

func TestPrepareForOCR_DoesNotModifyInput(t *testing.T) {
	src := createTextLikeImage(50, 30, color.White, color.Black)
	before := src.RGBAAt(0, 0)
	PrepareForOCR(src, DefaultOptions())
	if src.RGBAAt(0, 0) != before {
		t.Error("input image was modified")
	}
}

func TestPrepareForOCR_Upscale(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		opts          Options
		wantHeight    int
	}{
		{"already tall", 400, 400, DefaultOptions(), 400},
		{"upscaled to min height", 100, 150, DefaultOptions(), 300},
		{"capped by max scale", 100, 50, DefaultOptions(), 200},
		{"disabled", 100, 50, Options{}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := PrepareForOCR(createInMemoryImage(tt.width, tt.height, color.White), tt.opts)
			if got := out.Bounds().Dy(); got != tt.wantHeight {
				t.Errorf("height: got %d, want %d", got, tt.wantHeight)
			}
		})
	}
}
