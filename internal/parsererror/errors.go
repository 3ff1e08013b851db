// Package parsererror defines the error taxonomy for statement parsing.
// Most of these errors are non-fatal by policy: a bad amount or date drops
// the candidate, a bad file becomes a placeholder line, and an LLM failure
// falls back to the heuristic parser. Only a request with no files at all
// is rejected outright.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrNoFiles is returned when an upload request carries no files.
var ErrNoFiles = errors.New("no files uploaded")

// InvalidAmountError reports a numeric token that did not parse as a
// signed decimal after cleanup.
type InvalidAmountError struct {
	Raw string
	Err error
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %v", e.Raw, e.Err)
}

func (e *InvalidAmountError) Unwrap() error {
	return e.Err
}

// InvalidDateError reports a token that matched no recognized date shape.
type InvalidDateError struct {
	Raw string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date token %q", e.Raw)
}

// UnreadableFileError reports a single uploaded file whose content could
// not be turned into text. The batch continues; the caller substitutes a
// placeholder line for the file.
type UnreadableFileError struct {
	Name string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("unreadable file %q: %v", e.Name, e.Err)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a failure in the LLM extraction path, either the
// API call itself or a response that did not contain a usable JSON array.
type UpstreamError struct {
	Stage string // "request" or "decode"
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("llm extraction failed during %s: %v", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
