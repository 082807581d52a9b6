package cpifont

import (
	"fmt"
	"os"

	"github.com/npillmayer/cpifont/cpi"
)

// ExtractFile extracts the fonts selected by opts from the CPI file at path and
// hands them to sink, reading the file as a stream.
func ExtractFile(path string, opts cpi.Options, sink cpi.FontSink, events cpi.EventSink) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", cpi.ErrInputOpen, path, err)
	}
	defer f.Close()
	return cpi.Extract(f, opts, sink, events)
}

// CodePageFonts returns all fonts for code page cp, restricted to the characters
// given by ranges, e.g. "32-127". An empty ranges string selects every character.
//
// This is a convenience API for the common case of pulling a single code page out
// of a file. Clients who need to stream fonts to an output, or want to follow the
// structure of the file, need to use package `cpi` directly.
func CodePageFonts(f *CPIFile, cp uint16, ranges string) ([]cpi.FontData, error) {
	if f == nil {
		return nil, nil
	}
	sel, err := cpi.ParseRanges(ranges)
	if err != nil {
		return nil, err
	}
	return f.Fonts(cpi.Options{CodePage: cp, Ranges: sel})
}
