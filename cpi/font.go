package cpi

import (
	"fmt"
)

// ScreenFontHeader describes one bitmap font of a code page.
type ScreenFontHeader struct {
	Height   uint8
	Width    uint8
	YAspect  uint8
	XAspect  uint8
	NumChars uint16 // usually 256
}

// BitmapLength returns the size of the font's bitmap in standard files. Glyph rows
// are packed one byte per row, so fonts are assumed to be at most 8 pixels wide.
func (h *ScreenFontHeader) BitmapLength() int {
	return int(h.NumChars) * int(h.Height)
}

// CharacterIndexTable maps character codes to cells of the bitmap blocks of
// DR-DOS files.
type CharacterIndexTable [256]int16

// BitmapOffset returns the file offset of the glyph for character i in a bitmap block
// at offset block, with glyph cells of size cell.
func (t *CharacterIndexTable) BitmapOffset(i int, cell uint8, block uint32) int64 {
	return int64(t[i])*int64(cell) + int64(block)
}

// FontData is one extracted font: the bitmaps of the selected glyphs, concatenated in
// selection order, GlyphSize bytes per glyph.
type FontData struct {
	Name      string // symbol name, e.g. "CP437_8x16__1bpp"
	CodePage  uint16
	Width     int
	Height    int
	GlyphSize int  // bytes per glyph
	Extended  bool // extracted from a DR-DOS file
	FontIndex int  // position of the font within its code page
	Data      []byte
}

// Glyphs returns the number of glyphs in f.
func (f *FontData) Glyphs() int {
	if f.GlyphSize == 0 {
		return 0
	}
	return len(f.Data) / f.GlyphSize
}

// Glyph returns the bitmap of the n-th glyph of f.
func (f *FontData) Glyph(n int) []byte {
	return f.Data[n*f.GlyphSize : (n+1)*f.GlyphSize]
}

// SymbolName returns the name of an extracted font, which encodes code page and
// glyph dimensions.
func SymbolName(codepage uint16, width, height int) string {
	return fmt.Sprintf("CP%d_%dx%d__1bpp", codepage, width, height)
}

// FontSink receives extracted fonts, one per (code page, font) pair.
type FontSink interface {
	WriteFont(FontData) error
}

// FontSinkFunc adapts a function to the FontSink interface.
type FontSinkFunc func(FontData) error

// WriteFont calls f(fd).
func (f FontSinkFunc) WriteFont(fd FontData) error {
	return f(fd)
}

// screenFont reads the header of font number fontNo and, for standard files, its
// bitmap. DR-DOS files keep their bitmaps elsewhere; for them only the header is
// read, which keeps the cursor aligned for the character index table.
func (s *session) screenFont(entry *CodePageEntry, fontNo int) error {
	start, err := s.c.enter("ScreenFontHeader")
	if err != nil {
		return err
	}
	sfh := &ScreenFontHeader{}
	if err = s.c.record(sfh); err != nil {
		return err
	}
	tracer().Debugf("ScreenFontHeader: %dx%d, %d characters", sfh.Width, sfh.Height, sfh.NumChars)
	err = emit(s.events, Event{Kind: EventScreenFont, Offset: start, Entry: entry, Font: sfh, FontNo: fontNo})
	if err != nil || s.h.file.Variant() == Extended {
		return err
	}

	n := sfh.BitmapLength()
	tracer().Debugf("Bitmap length: 0x%X", n)
	if s.opts.InfoOnly {
		return s.c.Skip(int64(n))
	}
	if _, err = s.c.enter("Bitmap"); err != nil {
		return err
	}
	bitmap, err := s.c.bytes(n)
	if err != nil {
		return err
	}
	sel := s.opts.Ranges.orDefault(0, int(sfh.NumChars)-1)
	height := int(sfh.Height)
	data := make([]byte, 0, sel.Count()*height)
	for r := range sel.Indices() {
		if r < 0 || r >= int(sfh.NumChars) {
			return s.c.fail(fmt.Sprintf("character %d of %d", r, sfh.NumChars), ErrGlyphOutOfRange)
		}
		data = append(data, bitmap[r*height:r*height+height]...)
	}
	return s.fonts.WriteFont(FontData{
		Name:      SymbolName(entry.CodePage, int(sfh.Width), height),
		CodePage:  entry.CodePage,
		Width:     int(sfh.Width),
		Height:    height,
		GlyphSize: height,
		FontIndex: fontNo,
		Data:      data,
	})
}

// extendedFonts resolves every selected glyph of every font of a DR-DOS code page
// through the character index table. Each glyph costs one seek and one read; glyphs
// sharing a cell are read again.
func (s *session) extendedFonts(entry *CodePageEntry) error {
	start, err := s.c.enter("CharacterIndexTable")
	if err != nil {
		return err
	}
	table := &CharacterIndexTable{}
	if err = s.c.record(table); err != nil {
		return err
	}
	tracer().Debugf("CharacterIndexTable at 0x%X", start)
	sel := s.opts.Ranges.orDefault(0, MaxCharIndex)
	for f := 0; f < s.h.ext.NumFonts(); f++ {
		cell, block := s.h.ext.CellSizes[f], s.h.ext.Offsets[f]
		data := make([]byte, 0, sel.Count()*int(cell))
		for i := range sel.Indices() {
			if i < 0 || i > MaxCharIndex {
				return s.c.fail(fmt.Sprintf("character %d", i), ErrGlyphOutOfRange)
			}
			if err = s.c.at("Glyph", table.BitmapOffset(i, cell, block)); err != nil {
				return err
			}
			n := len(data)
			data = data[:n+int(cell)]
			if err = s.c.read(data[n:]); err != nil {
				return err
			}
		}
		err = s.fonts.WriteFont(FontData{
			Name:      SymbolName(entry.CodePage, 8, int(cell)),
			CodePage:  entry.CodePage,
			Width:     8,
			Height:    int(cell),
			GlyphSize: int(cell),
			Extended:  true,
			FontIndex: f,
			Data:      data,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
