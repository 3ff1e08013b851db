package reader

// TextReader passes plain text statements through unmodified.
type TextReader struct{}

func (TextReader) ReadText(name string, data []byte) (string, error) {
	return string(data), nil
}
