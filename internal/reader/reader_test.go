package reader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jmoret/bankparse/internal/parsererror"
)

func TestRegistryRouting(t *testing.T) {
	registry := NewRegistry(MockPDFExtractor{})

	tests := []struct {
		name      string
		fileName  string
		supported bool
	}{
		{"Plain text", "statement.txt", true},
		{"CSV", "export.csv", true},
		{"PDF", "bank.pdf", true},
		{"Uppercase extension", "STATEMENT.TXT", true},
		{"Unsupported", "notes.docx", false},
		{"No extension", "statement", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := registry.ForFile(tc.fileName)
			assert.Equal(t, tc.supported, ok)
			assert.Equal(t, tc.supported, registry.Supported(tc.fileName))
		})
	}
}

func TestTextReaderPassthrough(t *testing.T) {
	text, err := TextReader{}.ReadText("statement.txt", []byte("2024-01-01 Netflix -15.99"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01 Netflix -15.99", text)
}

func TestCSVReaderFlattensRows(t *testing.T) {
	data := []byte("Date,Description,Amount\n2024-01-01,Netflix,-15.99\n2024-01-02,Salary deposit,2500.00\n")

	text, err := CSVReader{}.ReadText("export.csv", data)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01 Netflix -15.99\n2024-01-02 Salary deposit 2500.00", text)
}

func TestCSVReaderHeaderOnly(t *testing.T) {
	text, err := CSVReader{}.ReadText("export.csv", []byte("Date,Description,Amount\n"))
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestCSVReaderRaggedRows(t *testing.T) {
	data := []byte("Date,Description,Amount\n2024-01-01,Coffee\n2024-01-02,Rent,-1200.00,memo\n")

	text, err := CSVReader{}.ReadText("export.csv", data)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01 Coffee\n2024-01-02 Rent -1200.00 memo", text)
}

func TestCSVReaderMalformed(t *testing.T) {
	_, err := CSVReader{}.ReadText("export.csv", []byte("a,\"unterminated\n"))
	require.Error(t, err)

	var unreadable *parsererror.UnreadableFileError
	require.ErrorAs(t, err, &unreadable)
	assert.Equal(t, "export.csv", unreadable.Name)
}

func TestPDFReader(t *testing.T) {
	t.Run("Extractor text passes through", func(t *testing.T) {
		r := NewPDFReader(MockPDFExtractor{Text: "2024-01-01 Pharmacy -12.00"})
		text, err := r.ReadText("bank.pdf", []byte("%PDF-1.4"))
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01 Pharmacy -12.00", text)
	})

	t.Run("Extractor failure wraps as unreadable file", func(t *testing.T) {
		r := NewPDFReader(MockPDFExtractor{Err: errors.New("corrupt xref table")})
		_, err := r.ReadText("bank.pdf", []byte("not a pdf"))
		require.Error(t, err)

		var unreadable *parsererror.UnreadableFileError
		require.ErrorAs(t, err, &unreadable)
		assert.Equal(t, "bank.pdf", unreadable.Name)
	})
}

func TestLedongthucExtractorRejectsGarbage(t *testing.T) {
	_, err := LedongthucExtractor{}.ExtractText([]byte("definitely not a pdf"))
	assert.Error(t, err)
}
