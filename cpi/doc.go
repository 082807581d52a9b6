/*
Package cpi reads DOS code page information files (*.cpi) and extracts the bitmap
screen fonts embedded in them.

A CPI file is a container for one or more code pages, each bundling a small number of
fixed-size bitmap fonts (typically 8x8, 8x14 and 8x16 for EGA/VGA displays).
Its records are linked by raw file offsets, not by sequential layout, so package `cpi`
walks the file through a seekable cursor instead of slurping it into a struct.

Two layouts are supported:

▪︎ Standard files, tagged with 0xFF and "FONT   " in the header. A sub-variant
produced by Windows NT, tagged "FONT.NT", stores the link to the next code page entry
relative to the start of the current entry.

▪︎ DR-DOS extended files, tagged with 0x7F and "DRFONT ". Bitmaps of all code pages
live in shared per-font data blocks; every code page carries a character index table
which maps character codes to cells of these blocks.

Package `cpi` does not render glyphs, nor does it write CPI files. It delivers glyph
bitmaps as plain byte sequences, one byte per glyph row, to a [FontSink], and reports
the structure of a file as a stream of [Event]s.

The file format is described at http://www.seasip.info/DOS/CPI/cpi.html.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package cpi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.cpi'
func tracer() tracing.Trace {
	return tracing.Select("font.cpi")
}
