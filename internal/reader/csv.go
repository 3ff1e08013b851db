package reader

import (
	"bytes"
	"encoding/csv"
	"strings"

	"jmoret/bankparse/internal/parsererror"
)

// CSVReader flattens a header-plus-rows CSV into plain statement lines:
// each data row becomes one space-joined line in column order, so the
// line matcher sees the same shapes it gets from text statements.
//
// Uploaded CSVs have no known schema, which rules out struct-tag based
// decoding; the raw cell values are all that matters here.
type CSVReader struct{}

func (CSVReader) ReadText(name string, data []byte) (string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // tolerate ragged rows
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return "", &parsererror.UnreadableFileError{Name: name, Err: err}
	}
	if len(records) <= 1 {
		return "", nil
	}

	lines := make([]string, 0, len(records)-1)
	for _, row := range records[1:] { // skip the header row
		lines = append(lines, strings.Join(row, " "))
	}
	return strings.Join(lines, "\n"), nil
}
