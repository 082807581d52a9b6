/*
Package cpifont is for DOS code page information (CPI) files and the bitmap fonts
they carry.

We will stick to the following nomenclature:

▪︎ A "CPI file" is a container of screen and printer fonts for a number of
code pages. An example is EGA.CPI of MS-DOS.

▪︎ A "code page" is a character set of 256 characters. An example is code page 437,
the character set of the original IBM PC.

▪︎ A "font" is a bitmap font for a code page in a certain cell size, e.g., 8x16
pixels. Glyph rows are one byte each, so fonts are at most 8 pixels wide.

CPI files come in two variants. Standard files (MS-DOS, PC-DOS, Windows NT) store
every font's bitmap right after its header. DR-DOS files store a bitmap block per
font size and map characters to glyph cells by an index table, thus glyphs shared
between code pages are stored only once.

Package cpi holds the parser. This package offers convenience functions on top of
it for clients which deal with files on disk.

# Links

File format overview:
https://www.seasip.info/DOS/CPI/cpi.html

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package cpifont

import (
	"bytes"
	"fmt"
	"os"

	"github.com/npillmayer/cpifont/cpi"
	"github.com/npillmayer/cpifont/cpiquery"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.cpi'
func tracer() tracing.Trace {
	return tracing.Select("font.cpi")
}

// CPIFile is a CPI file loaded into memory.
type CPIFile struct {
	Filepath string         // file path, empty for files parsed from memory
	Binary   []byte         // raw data
	Header   cpi.FileHeader // the file's fixed header
}

// LoadCPIFile loads a CPI file from disk.
func LoadCPIFile(path string) (*CPIFile, error) {
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", cpi.ErrInputOpen, path, err)
	}
	f, err := ParseCPIFile(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = path
	return f, nil
}

// ParseCPIFile loads a CPI file from memory. It checks the file header only; the
// code page entries are read by the methods of CPIFile.
func ParseCPIFile(fbytes []byte) (*CPIFile, error) {
	h, _, fi, err := cpi.ReadHeader(bytes.NewReader(fbytes))
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded %s CPI file %q with %d code pages", h.Variant(), h.FormatID(), fi.NumCodePages)
	return &CPIFile{Binary: fbytes, Header: *h}, nil
}

// Extract hands the fonts of f selected by opts to sink.
func (f *CPIFile) Extract(opts cpi.Options, sink cpi.FontSink) error {
	return cpi.Extract(bytes.NewReader(f.Binary), opts, sink, nil)
}

// Fonts returns the fonts of f selected by opts.
func (f *CPIFile) Fonts(opts cpi.Options) ([]cpi.FontData, error) {
	return cpi.ExtractAll(bytes.NewReader(f.Binary), opts)
}

// Catalog lists the code pages and fonts of f.
func (f *CPIFile) Catalog() (*cpiquery.Catalog, error) {
	return cpiquery.Describe(bytes.NewReader(f.Binary))
}
