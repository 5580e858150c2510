// Package extract implements the document text tools: extract_pdf_text reads the
// selectable text of a PDF and extract_image_text runs OCR over an image. Both accept
// an HTTP(S) URL or a local file path.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ironsheep/roku-tools/internal/imaging"
	"github.com/ironsheep/roku-tools/internal/ocr"
	"github.com/ironsheep/roku-tools/internal/tools"
)

// DefaultMaxChars is the PDF text cap when none is requested.
const DefaultMaxChars = 4000

const truncatedSuffix = "\n... [truncated]"

// ErrNoText is returned when a document holds no extractable text.
var ErrNoText = errors.New("extract: no text found")

const (
	noPDFText   = "No selectable text found in the PDF. It may be a scanned document. Try using image OCR or provide a higher-quality source."
	noImageText = "No text detected in the image."
	imageFailed = "Failed to extract text from image. Ensure the file is a supported image and that Tesseract OCR is installed."
)

// Extractor holds the collaborators of both tools.
type Extractor struct {
	Read    func(ctx context.Context, source string) ([]byte, error)
	OpenPDF func(data []byte) (Document, error)
	OCR     ocr.Engine
	Prepare imaging.Options
	Logger  *slog.Logger
}

// New returns an Extractor reading sources with reader and recognizing text with engine.
func New(reader *SourceReader, engine ocr.Engine, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		Read:    reader.Read,
		OpenPDF: OpenPDF,
		OCR:     engine,
		Prepare: imaging.DefaultOptions(),
		Logger:  logger,
	}
}

// PDFArgs are the arguments of extract_pdf_text.
type PDFArgs struct {
	Source   string `json:"source" jsonschema:"HTTP(S) URL or local file path to the PDF"`
	MaxPages int    `json:"max_pages,omitempty" jsonschema:"Optional limit of pages to process starting from page 1"`
	MaxChars int    `json:"max_chars,omitempty" jsonschema:"Truncate extracted text to this length (default: 4000)"`
}

// ImageArgs are the arguments of extract_image_text.
type ImageArgs struct {
	Source string `json:"source" jsonschema:"HTTP(S) URL or local file path to the image"`
	Lang   string `json:"lang,omitempty" jsonschema:"Tesseract language code for OCR (default: eng)"`
}

// PDF is the extract_pdf_text handler.
func (e *Extractor) PDF(ctx context.Context, a PDFArgs) tools.Result {
	text, pages, err := e.pdfText(ctx, a)
	if err != nil {
		e.Logger.Error("pdf extraction failed", "source", a.Source, "err", err)
		return tools.Fail(failureKind(err), err, fmt.Sprintf("Failed to extract text from PDF: %v", err))
	}
	if text == "" {
		e.Logger.Warn("pdf has no selectable text", "source", a.Source, "pages", pages)
		return tools.Fail(tools.KindContent, ErrNoText, noPDFText)
	}

	maxChars := a.MaxChars
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	text = tools.Truncate(text, maxChars, truncatedSuffix)

	e.Logger.Info("extracted pdf text", "source", a.Source, "pages", pages, "chars", utf8.RuneCountInString(text))
	return tools.OK(text)
}

func (e *Extractor) pdfText(ctx context.Context, a PDFArgs) (string, int, error) {
	data, err := e.Read(ctx, a.Source)
	if err != nil {
		return "", 0, err
	}
	doc, err := e.OpenPDF(data)
	if err != nil {
		return "", 0, err
	}
	return PDFText(doc, a.MaxPages)
}

// Image is the extract_image_text handler.
func (e *Extractor) Image(ctx context.Context, a ImageArgs) tools.Result {
	text, err := e.imageText(ctx, a)
	if err != nil {
		e.Logger.Error("image extraction failed", "source", a.Source, "lang", a.Lang, "err", err)
		return tools.Fail(failureKind(err), err, imageFailed)
	}
	if text == "" {
		return tools.Fail(tools.KindContent, ErrNoText, noImageText)
	}
	e.Logger.Info("extracted image text", "source", a.Source, "len", len(text))
	return tools.OK(text)
}

func (e *Extractor) imageText(ctx context.Context, a ImageArgs) (string, error) {
	if e.OCR == nil {
		return "", ocr.ErrEngineUnavailable
	}
	data, err := e.Read(ctx, a.Source)
	if err != nil {
		return "", err
	}
	img, info, err := imaging.Decode(data)
	if err != nil {
		return "", err
	}
	e.Logger.Debug("decoded image", "source", a.Source, "format", info.Format, "width", info.Width, "height", info.Height)

	text, err := e.OCR.Recognize(ctx, imaging.PrepareForOCR(img, e.Prepare), a.Lang)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func failureKind(err error) tools.Kind {
	if errors.Is(err, ocr.ErrEngineUnavailable) {
		return tools.KindConfig
	}
	return tools.Classify(err)
}
