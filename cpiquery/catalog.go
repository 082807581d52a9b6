/*
Package cpiquery answers questions about the structure of CPI files: which code pages
and fonts a file contains, and which Unicode character a glyph stands for.

Package cpi reports the structure of a file as a stream of events; this package
collects them into a [Catalog] for clients which need random access, e.g. an
interactive browser.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package cpiquery

import (
	"io"

	"github.com/npillmayer/cpifont/cpi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.cpi'
func tracer() tracing.Trace {
	return tracing.Select("font.cpi")
}

// Catalog lists the contents of a CPI file.
type Catalog struct {
	Header       cpi.FileHeader
	Extended     *cpi.ExtendedHeader // nil for standard files
	NumCodePages int
	Pages        []Page // in file order, printer entries included
}

// Page is one code page entry of a CPI file.
type Page struct {
	Offset int64 // file position of the entry
	Entry  cpi.CodePageEntry
	Info   *cpi.CodePageInfoHeader // nil for printer entries
	Fonts  []cpi.ScreenFontHeader
}

// IsPrinter is true for printer font entries, which carry no screen fonts.
func (p *Page) IsPrinter() bool {
	return p.Entry.IsPrinter()
}

// Describe walks the CPI file r without extracting bitmaps and returns its catalog.
func Describe(r io.ReadSeeker) (*Catalog, error) {
	cat := &Catalog{}
	err := cpi.Inspect(r, 0, cpi.EventSinkFunc(cat.add))
	if err != nil {
		return nil, err
	}
	tracer().Debugf("catalog holds %d code page entries", len(cat.Pages))
	return cat, nil
}

func (cat *Catalog) add(ev cpi.Event) error {
	switch ev.Kind {
	case cpi.EventFileHeader:
		cat.Header = *ev.Header
	case cpi.EventExtendedHeader:
		cat.Extended = ev.Extended
	case cpi.EventFontInfo:
		cat.NumCodePages = int(ev.FontInfo.NumCodePages)
	case cpi.EventCodePage, cpi.EventPrinterSkipped, cpi.EventCodePageSkipped:
		cat.Pages = append(cat.Pages, Page{Offset: ev.Offset, Entry: *ev.Entry})
	case cpi.EventCodePageInfo:
		cat.last().Info = ev.Info
	case cpi.EventScreenFont:
		p := cat.last()
		p.Fonts = append(p.Fonts, *ev.Font)
	}
	return nil
}

func (cat *Catalog) last() *Page {
	return &cat.Pages[len(cat.Pages)-1]
}

// Page returns the first screen font entry for code page cp.
func (cat *Catalog) Page(cp uint16) (*Page, bool) {
	for i := range cat.Pages {
		if p := &cat.Pages[i]; p.Entry.CodePage == cp && !p.IsPrinter() {
			return p, true
		}
	}
	return nil, false
}

// CodePages returns the numbers of all screen font code pages, in file order.
func (cat *Catalog) CodePages() []uint16 {
	var cps []uint16
	for i := range cat.Pages {
		if !cat.Pages[i].IsPrinter() {
			cps = append(cps, cat.Pages[i].Entry.CodePage)
		}
	}
	return cps
}

// FontCount returns the number of screen fonts over all code pages.
func (cat *Catalog) FontCount() int {
	n := 0
	for i := range cat.Pages {
		n += len(cat.Pages[i].Fonts)
	}
	return n
}
