package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/cpifont/cpi"
)

// reporter prints a summary of the code pages and fonts walked during extraction.
// Header details are left to the parser's debug traces.
type reporter struct {
	w io.Writer
}

func (r *reporter) WriteEvent(ev cpi.Event) (err error) {
	switch ev.Kind {
	case cpi.EventPrinterSkipped:
		_, err = fmt.Fprint(r.w, "Printer font, skipping...\n\n")
	case cpi.EventCodePage:
		_, err = fmt.Fprintf(r.w, "Code Page: %d\n", ev.Entry.CodePage)
	case cpi.EventScreenFont:
		_, err = fmt.Fprintf(r.w, "%dx%d\t%d characters\n", ev.Font.Width, ev.Font.Height, ev.Font.NumChars)
	}
	return
}
