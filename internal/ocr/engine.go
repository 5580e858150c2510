package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "eng"

// ErrEngineUnavailable is returned when no Tesseract engine can be reached.
var ErrEngineUnavailable = errors.New("ocr: tesseract engine unavailable")

// Engine recognizes the text in an image.
type Engine interface {
	// Recognize returns the raw recognized text. lang is a Tesseract language code;
	// an empty lang means DefaultLanguage.
	Recognize(ctx context.Context, img image.Image, lang string) (string, error)
}

// Options select and configure an engine.
type Options struct {
	// Command is the path of the tesseract executable. When set, the CLI engine is
	// used even if the native engine is compiled in.
	Command string

	// TessdataPrefix is the directory holding the *.traineddata files. Empty means
	// Tesseract's built-in default (or the TESSDATA_PREFIX environment variable).
	TessdataPrefix string
}

// New returns the engine selected by opts.
func New(opts Options) Engine {
	if opts.Command != "" {
		return &Command{Path: opts.Command, TessdataPrefix: opts.TessdataPrefix}
	}
	return newNative(opts)
}

// Info describes an engine for diagnostics.
type Info struct {
	Engine    string `json:"engine"`
	Version   string `json:"version,omitempty"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

type versioner interface {
	Version(ctx context.Context) (string, error)
}

// Probe reports which engine is configured and whether it answers.
func Probe(ctx context.Context, e Engine) Info {
	info := Info{Engine: fmt.Sprintf("%T", e)}
	v, ok := e.(versioner)
	if !ok {
		info.Available = true
		return info
	}
	version, err := v.Version(ctx)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Version = version
	info.Available = true
	return info
}

// EncodePNG encodes img losslessly for handing to Tesseract.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func languageOrDefault(lang string) string {
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
