package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/cpifont/cpi"
	"github.com/npillmayer/cpifont/cpiquery"
	"github.com/pterm/pterm"
)

func headerOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFile(); err != nil {
		return
	}
	h := intp.catalog.Header
	pterm.Printf("Format: %q (%s), tag byte 0x%02X\n", h.FormatID(), h.Variant(), h.ID0)
	pterm.Printf("Pointers: %d of type %d, FontInfo at 0x%X\n", h.PNum, h.PType, h.FIHOffset)
	pterm.Printf("Code page entries: %d\n", intp.catalog.NumCodePages)
	if x := intp.catalog.Extended; x != nil {
		data := [][]string{
			{"Font", "Cell Size", "Bitmap Block"},
		}
		for i := range x.CellSizes {
			data = append(data, []string{
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%d", x.CellSizes[i]),
				fmt.Sprintf("0x%X", x.Offsets[i]),
			})
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
	return nil, false
}

func pagesOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFile(); err != nil {
		return
	}
	data := [][]string{
		{"Entry", "Offset", "Device", "Code Page", "Name", "Fonts"},
	}
	for i := range intp.catalog.Pages {
		p := &intp.catalog.Pages[i]
		fonts := fmt.Sprintf("%d", len(p.Fonts))
		if p.IsPrinter() {
			fonts = "printer"
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("0x%X", p.Offset),
			p.Entry.Device(),
			fmt.Sprintf("%d", p.Entry.CodePage),
			cpiquery.CodePageName(p.Entry.CodePage),
			fonts,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func fontsOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFile(); err != nil {
		return
	}
	cp := intp.codepage
	if op.arg != "" {
		if cp, err = parseCodePage(op.arg); err != nil {
			return
		}
	}
	if cp == 0 {
		return ErrNoCodePage, false
	}
	p, ok := intp.catalog.Page(cp)
	if !ok {
		return fmt.Errorf("code page %d not in file", cp), false
	}
	intp.codepage = cp
	pterm.Printf("Code page %d (%s) has %d fonts\n", cp, cpiquery.CodePageName(cp), len(p.Fonts))
	data := [][]string{
		{"Font", "Size", "Characters", "Symbol"},
	}
	for i, sfh := range p.Fonts {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%dx%d", sfh.Width, sfh.Height),
			fmt.Sprintf("%d", sfh.NumChars),
			cpi.SymbolName(cp, int(sfh.Width), int(sfh.Height)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// glyphOp prints one glyph of every font of a code page. Arguments are either
// <cp>:<index> or <index> alone, which refers to the code page selected last.
func glyphOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFile(); err != nil {
		return
	}
	cp, arg := intp.codepage, op.arg
	if op.sub != "" {
		if cp, err = parseCodePage(op.arg); err != nil {
			return
		}
		arg = op.sub
	}
	if cp == 0 {
		return ErrNoCodePage, false
	}
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 || index > cpi.MaxCharIndex {
		return fmt.Errorf("glyph index must be in 0…%d: %q", cpi.MaxCharIndex, arg), false
	}
	opts := cpi.Options{CodePage: cp, Ranges: cpi.Selection{{Start: index, End: index}}}
	fonts, err := intp.file.Fonts(opts)
	if err != nil {
		return
	}
	if len(fonts) == 0 {
		return fmt.Errorf("code page %d not in file", cp), false
	}
	pterm.Printf("Glyph %d of code page %d %s\n", index, cp, describeRune(cp, index))
	for _, fd := range fonts {
		pterm.Info.Println(fd.Name)
		pterm.Println(strings.Join(glyphRows(fd.Glyph(0)), "\n"))
	}
	return nil, false
}

// glyphRows formats the rows of a glyph as hex value and bit pattern, most
// significant bit leftmost.
func glyphRows(glyph []byte) []string {
	rows := make([]string, len(glyph))
	for i, b := range glyph {
		bits := strings.NewReplacer("0", ".", "1", "#").Replace(fmt.Sprintf("%08b", b))
		rows[i] = fmt.Sprintf("0x%02X  %s", b, bits)
	}
	return rows
}

func describeRune(cp uint16, index int) string {
	r, ok := cpiquery.GlyphRune(cp, index)
	if !ok {
		return "(no character mapping)"
	}
	if strconv.IsPrint(r) {
		return fmt.Sprintf("(%U %q)", r, r)
	}
	return fmt.Sprintf("(%U)", r)
}
