// Package reader converts uploaded statement files of the supported
// formats (txt, csv, pdf) into plain text for the document extractor.
package reader

import (
	"path/filepath"
	"strings"
)

// Reader turns one statement file's raw bytes into text. Implementations
// must not fail the whole batch: a broken file surfaces as an
// UnreadableFileError and the caller substitutes a placeholder.
type Reader interface {
	ReadText(name string, data []byte) (string, error)
}

// Registry routes files to readers by extension.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates a registry with the standard txt, csv and pdf
// readers. The PDF extractor is injectable for tests.
func NewRegistry(pdfExtractor PDFTextExtractor) *Registry {
	return &Registry{
		readers: map[string]Reader{
			".txt": TextReader{},
			".csv": CSVReader{},
			".pdf": NewPDFReader(pdfExtractor),
		},
	}
}

// ForFile returns the reader for the file's extension, or false for
// unsupported formats.
func (r *Registry) ForFile(name string) (Reader, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	reader, ok := r.readers[ext]
	return reader, ok
}

// Supported reports whether the file's extension has a reader.
func (r *Registry) Supported(name string) bool {
	_, ok := r.ForFile(name)
	return ok
}
