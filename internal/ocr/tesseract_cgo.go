//go:build cgo && linux

package ocr

import (
	"context"
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract recognizes text through the native libtesseract bindings.
//
// Each call creates and closes its own gosseract client, so a Tesseract value is safe
// for concurrent use.
type Tesseract struct {
	TessdataPrefix string
}

func newNative(opts Options) Engine {
	return &Tesseract{TessdataPrefix: opts.TessdataPrefix}
}

// Recognize runs OCR over img in the given language.
//
// The image is handed to Tesseract as in-memory PNG bytes; no temporary files are
// written. ctx is checked before the (uninterruptible) native call starts.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image, lang string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}
	if err := client.SetLanguage(languageOrDefault(lang)); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

// Version returns the linked libtesseract version.
func (t *Tesseract) Version(context.Context) (string, error) {
	return gosseract.Version(), nil
}
