/*
Package cpitest builds synthetic CPI files for tests.

Glyph bitmaps are filled with deterministic patterns (see [Row] and [Cell]), so tests
are able to predict the bytes an extraction has to yield without shipping binary
test data.
*/
package cpitest

import (
	"encoding/binary"
)

// FileHeaderSize is the size of the fixed file header.
const FileHeaderSize = 23

const (
	entrySize     = 28
	infoSize      = 6
	fontHdrSize   = 6
	indexTabSize  = 512
	fillerByte    = 0xEE
	printerDevice = 2
	screenDevice  = 1
)

// Format ids.
const (
	IDFont   = "FONT   "
	IDFontNT = "FONT.NT"
	IDDRFont = "DRFONT "
)

// Font is a screen font of a standard file.
type Font struct {
	Width, Height uint8
	NumChars      uint16
	Bitmap        []byte // NumChars*Height bytes
}

// NewFont creates a font with a bitmap filled by Row.
func NewFont(codepage uint16, width, height uint8, numChars int) Font {
	f := Font{Width: width, Height: height, NumChars: uint16(numChars)}
	f.Bitmap = make([]byte, numChars*int(height))
	for g := 0; g < numChars; g++ {
		for r := 0; r < int(height); r++ {
			f.Bitmap[g*int(height)+r] = Row(codepage, height, g, r)
		}
	}
	return f
}

// Glyph returns the bitmap rows of glyph g.
func (f Font) Glyph(g int) []byte {
	h := int(f.Height)
	return f.Bitmap[g*h : g*h+h]
}

// Row is the pattern byte for row r of glyph g in a font of the given height.
func Row(codepage uint16, height uint8, g, r int) byte {
	return byte(int(codepage) + 3*int(height) + 7*g + 13*r)
}

// Page is a code page entry of a standard file.
type Page struct {
	CodePage    uint16
	Device      string // defaults to "EGA"
	Printer     bool   // device type 2
	PrinterData []byte // payload of printer entries
	Fonts       []Font
	Gap         int // filler bytes between this entry's data and the next entry
}

// File is a synthetic CPI file.
type File struct {
	Data    []byte
	Entries []int64 // file offsets of the code page entries
	Blocks  []int64 // file offsets of the bitmap blocks (DR-DOS files)
}

type builder struct {
	b []byte
}

func (w *builder) u8(n uint8)   { w.b = append(w.b, n) }
func (w *builder) u16(n uint16) { w.b = binary.LittleEndian.AppendUint16(w.b, n) }
func (w *builder) u32(n uint32) { w.b = binary.LittleEndian.AppendUint32(w.b, n) }
func (w *builder) pos() int64   { return int64(len(w.b)) }

func (w *builder) str(s string, n int) {
	field := make([]byte, n)
	for i := range field {
		field[i] = ' '
	}
	copy(field, s)
	w.b = append(w.b, field...)
}

func (w *builder) fill(n int) {
	for i := 0; i < n; i++ {
		w.b = append(w.b, fillerByte)
	}
}

func (w *builder) fileHeader(id0 byte, id string, fih uint32) {
	w.u8(id0)
	w.str(id, 7)
	w.b = append(w.b, make([]byte, 8)...)
	w.u16(1)
	w.u8(1)
	w.u32(fih)
}

func (w *builder) entry(next, info uint32, device uint16, name string, codepage uint16) {
	w.u16(entrySize)
	w.u32(next)
	w.u16(device)
	w.str(name, 8)
	w.u16(codepage)
	w.b = append(w.b, make([]byte, 6)...)
	w.u32(info)
}

// Standard builds a standard CPI file with format id id (IDFont or IDFontNT).
// For IDFontNT, links between entries are stored relative to the entry start.
func Standard(id string, pages ...Page) File {
	w := &builder{}
	w.fileHeader(0xFF, id, FileHeaderSize)
	w.u16(uint16(len(pages)))
	file := File{}
	for _, p := range pages {
		start := w.pos()
		file.Entries = append(file.Entries, start)
		payload := 0
		for _, f := range p.Fonts {
			payload += fontHdrSize + len(f.Bitmap)
		}
		if p.Printer {
			payload = len(p.PrinterData)
		}
		size := entrySize + infoSize + payload
		next, info := uint32(start)+uint32(size+p.Gap), uint32(start)+entrySize
		if id == IDFontNT {
			next, info = uint32(size+p.Gap), entrySize
		}
		device, name := uint16(screenDevice), p.Device
		if p.Printer {
			device = printerDevice
		}
		if name == "" {
			name = "EGA"
		}
		w.entry(next, info, device, name, p.CodePage)
		w.u16(1)
		w.u16(uint16(len(p.Fonts)))
		w.u16(uint16(payload))
		if p.Printer {
			w.b = append(w.b, p.PrinterData...)
		}
		for _, f := range p.Fonts {
			w.u8(f.Height)
			w.u8(f.Width)
			w.u8(0)
			w.u8(0)
			w.u16(f.NumChars)
			w.b = append(w.b, f.Bitmap...)
		}
		w.fill(p.Gap)
	}
	file.Data = w.b
	return file
}

// ExtPage is a code page entry of a DR-DOS file.
type ExtPage struct {
	CodePage uint16
	Index    [256]int16 // cell index for every character
}

// IdentityIndex maps every character to the cell of the same number.
func IdentityIndex() (index [256]int16) {
	for i := range index {
		index[i] = int16(i)
	}
	return
}

// Cell is the pattern of cell k of font f with cell size cell.
func Cell(f, k int, cell uint8) []byte {
	b := make([]byte, cell)
	for r := range b {
		b[r] = byte(0x40*f + 5*k + 11*r + int(cell))
	}
	return b
}

// Extended builds a DR-DOS file. Every code page holds one font per entry of cells;
// the bitmap block of font f holds numCells cells filled by Cell.
func Extended(cells []uint8, numCells int, pages ...ExtPage) File {
	w := &builder{}
	n := len(cells)
	fih := FileHeaderSize + 1 + 5*n
	entriesEnd := fih + 2 + len(pages)*(entrySize+infoSize+n*fontHdrSize+indexTabSize)
	file := File{}
	blocks := make([]uint32, n)
	off := entriesEnd
	for f, cell := range cells {
		blocks[f] = uint32(off)
		file.Blocks = append(file.Blocks, int64(off))
		off += numCells * int(cell)
	}

	w.fileHeader(0x7F, IDDRFont, uint32(fih))
	w.u8(uint8(n))
	for _, cell := range cells {
		w.u8(cell)
	}
	for _, b := range blocks {
		w.u32(b)
	}
	w.u16(uint16(len(pages)))
	for _, p := range pages {
		start := w.pos()
		file.Entries = append(file.Entries, start)
		size := entrySize + infoSize + n*fontHdrSize + indexTabSize
		w.entry(uint32(start)+uint32(size), uint32(start)+entrySize, screenDevice, "EGA", p.CodePage)
		w.u16(2)
		w.u16(uint16(n))
		w.u16(uint16(n*fontHdrSize + indexTabSize))
		for _, cell := range cells {
			w.u8(cell)
			w.u8(8)
			w.u8(0)
			w.u8(0)
			w.u16(256)
		}
		for _, k := range p.Index {
			w.u16(uint16(k))
		}
	}
	for f, cell := range cells {
		for k := 0; k < numCells; k++ {
			w.b = append(w.b, Cell(f, k, cell)...)
		}
	}
	file.Data = w.b
	return file
}
