package reader

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"jmoret/bankparse/internal/parsererror"
)

// PDFTextExtractor extracts embedded text from PDF bytes. The indirection
// exists so tests can run without real PDF fixtures.
type PDFTextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// LedongthucExtractor is the production extractor, backed by the
// ledongthuc/pdf library.
type LedongthucExtractor struct{}

// ExtractText pulls the embedded plain text out of a PDF document.
func (LedongthucExtractor) ExtractText(data []byte) (text string, err error) {
	// The pdf library panics on some malformed documents; a broken file
	// must degrade to an error, not take down the request.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction panicked: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("error opening pdf: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("error extracting pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("error reading pdf text: %w", err)
	}
	return buf.String(), nil
}

// MockPDFExtractor returns canned data for tests.
type MockPDFExtractor struct {
	Text string
	Err  error
}

func (m MockPDFExtractor) ExtractText(data []byte) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// PDFReader extracts embedded page text from PDF statements.
type PDFReader struct {
	extractor PDFTextExtractor
}

// NewPDFReader creates a PDF reader; a nil extractor selects the
// production ledongthuc/pdf implementation.
func NewPDFReader(extractor PDFTextExtractor) PDFReader {
	if extractor == nil {
		extractor = LedongthucExtractor{}
	}
	return PDFReader{extractor: extractor}
}

func (p PDFReader) ReadText(name string, data []byte) (string, error) {
	text, err := p.extractor.ExtractText(data)
	if err != nil {
		return "", &parsererror.UnreadableFileError{Name: name, Err: err}
	}
	return text, nil
}
