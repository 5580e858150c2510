package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned when the data does not carry a PDF header.
var ErrNotPDF = errors.New("extract: not a PDF document")

// Document exposes the pages of a parsed PDF. Page numbers start at 1.
type Document interface {
	NumPage() int
	PageText(n int) (string, error)
}

// OpenPDF parses data as a PDF document.
func OpenPDF(data []byte) (doc Document, err error) {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	if !bytes.Contains(head, []byte("%PDF-")) {
		return nil, ErrNotPDF
	}

	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &pdfDocument{r: r, fonts: make(map[string]*pdf.Font)}, nil
}

type pdfDocument struct {
	r     *pdf.Reader
	fonts map[string]*pdf.Font
}

func (d *pdfDocument) NumPage() int {
	return d.r.NumPage()
}

// PageText returns the plain text of page n. The parser panics on some malformed
// pages; that is reported as an error.
func (d *pdfDocument) PageText(n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("page %d: %v", n, r)
		}
	}()

	p := d.r.Page(n)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d not found", n)
	}
	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			f := p.Font(name)
			d.fonts[name] = &f
		}
	}
	return p.GetPlainText(d.fonts)
}

// PDFText joins the non-empty text of the first maxPages pages (all pages when
// maxPages <= 0) with newlines. It also returns the number of pages read.
func PDFText(doc Document, maxPages int) (string, int, error) {
	pages := doc.NumPage()
	if maxPages > 0 && maxPages < pages {
		pages = maxPages
	}

	parts := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		text, err := doc.PageText(i)
		if err != nil {
			return "", 0, err
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), pages, nil
}
