package cpi

import (
	"io"
)

// Options configures a run over a CPI file. Options are read-only for the parser.
type Options struct {
	InfoOnly bool      // walk the structure only, do not extract bitmaps
	CodePage uint16    // extract only this code page; 0 selects all code pages
	Ranges   Selection // characters to extract; empty selects all characters
}

// session is a single pass over a CPI file. It exclusively owns the cursor.
type session struct {
	c      *cursor
	opts   Options
	fonts  FontSink
	events EventSink
	h      *header
}

// Extract walks the CPI file r, which must be positioned at its start, and hands
// one FontData per selected (code page, font) pair to fonts. If events is non-nil,
// it receives the structure of the file as it is read.
//
// The first error ends the run; Extract makes no attempt to resynchronize on
// malformed input.
func Extract(r io.ReadSeeker, opts Options, fonts FontSink, events EventSink) error {
	if fonts == nil && !opts.InfoOnly {
		return ErrNilSink
	}
	s := &session{
		c:      newCursor(r),
		opts:   opts,
		fonts:  fonts,
		events: events,
	}
	var err error
	if s.h, err = readHeader(s.c, events); err != nil {
		return err
	}
	tracer().Debugf("%s file %q with %d code pages", s.h.file.Variant(), s.h.file.FormatID(),
		s.h.fontInfo.NumCodePages)
	return s.walk()
}

// ExtractAll extracts the fonts selected by opts from r and returns them in file
// order.
func ExtractAll(r io.ReadSeeker, opts Options) ([]FontData, error) {
	var fonts []FontData
	collect := FontSinkFunc(func(fd FontData) error {
		fonts = append(fonts, fd)
		return nil
	})
	if err := Extract(r, opts, collect, nil); err != nil {
		return nil, err
	}
	return fonts, nil
}

// Inspect walks the CPI file r without extracting bitmaps and reports its
// structure to events.
func Inspect(r io.ReadSeeker, codepage uint16, events EventSink) error {
	return Extract(r, Options{InfoOnly: true, CodePage: codepage}, nil, events)
}
