package cpi

import (
	"errors"
	"fmt"
)

// Error kinds. All of them are fatal for a run; none is retried or downgraded to a
// warning. Use errors.Is to test for a kind, as most of them reach the caller
// wrapped into a [FormatError].
var (
	// ErrUnsupportedFormat flags a leading tag byte other than 0xFF or 0x7F.
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrInputOpen flags an input file which could not be opened.
	ErrInputOpen = errors.New("could not open input file")
	// ErrOutputOpen flags an output file which could not be created.
	ErrOutputOpen = errors.New("could not open output file")
	// ErrMalformedRange flags an unparsable character range token.
	ErrMalformedRange = errors.New("invalid range")
	// ErrInvalidRangeOrder flags a character range with end < start.
	ErrInvalidRangeOrder = errors.New("ending range can not be smaller than starting range")
	// ErrGlyphOutOfRange flags a selected character beyond the end of a font's bitmap.
	ErrGlyphOutOfRange = errors.New("character index beyond font")
	// ErrNilSink flags a call to Extract without a font sink.
	ErrNilSink = errors.New("cpi: nil font sink")
)

// FormatError represents an error encountered while reading a CPI file.
type FormatError struct {
	Section string // The record where the error occurred (e.g., "FileHeader", "CodePageEntry")
	Offset  int64  // Byte offset in the file where the record starts (-1 if unknown)
	Issue   string // Human-readable description of the issue
	Err     error  // Underlying error kind or I/O error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	msg := e.Issue
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("cpi: %s at offset 0x%X: %s", e.Section, e.Offset, msg)
	}
	return fmt.Sprintf("cpi: %s: %s", e.Section, msg)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

func errFormat(section string, offset int64, issue string, err error) error {
	return &FormatError{
		Section: section,
		Offset:  offset,
		Issue:   issue,
		Err:     err,
	}
}
