package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "cpi", "file", "format":
		pterm.Info.Println("CPI file structure")
		pterm.Println(`
	A CPI file starts with a fixed header, which links to the FontInfo header.
	FontInfo holds the number of code page entries; the entries form a chain:
	+-----------------+      +-----------------+
	| CodePageEntry   | ---> | CodePageEntry   | ---> ...
	+-----------------+      +-----------------+
	| CodePageInfo    |      | CodePageInfo    |
	+-----------------+      +-----------------+
	| ScreenFont 8x8  |      | ScreenFont 8x8  |
	| Bitmap          |      | Bitmap          |
	| ScreenFont 8x16 |      | ...             |
	| Bitmap          |
	+-----------------+
	Links are absolute file offsets, except for files of type FONT.NT, where
	they are relative to the start of the entry.
	`)
	case "drdos", "drfont", "extended":
		pterm.Info.Println("DR-DOS extended files")
		pterm.Println(`
	DRFONT files keep one bitmap block per font size, shared by all code pages.
	The extended header lists cell size and block offset per font size.
	Every code page entry carries a character index table:
	+-----------+------------------+
	| Character | Cell index (0-n) |
	+-----------+------------------+
	The glyph of character c lives at  block + index[c] * cellsize.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	header             print the file header
	pages              list all code page entries
	fonts:<cp>         list the fonts of a code page and select it
	glyph:<cp>:<n>     print glyph n of every font of a code page
	glyph:<n>          print glyph n of the selected code page
	help:cpi           explain the structure of CPI files
	help:drdos         explain DR-DOS extended files
	quit               leave the browser
	`)
	}
}
