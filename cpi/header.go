package cpi

import (
	"bytes"
	"fmt"
	"io"
)

// Variant identifies the layout of a CPI file, as told by its leading tag byte.
type Variant uint8

const (
	Standard Variant = 0xFF // MS-DOS, PC-DOS and Windows NT files
	Extended Variant = 0x7F // DR-DOS files with shared bitmap blocks
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Extended:
		return "DR-DOS extended"
	}
	return fmt.Sprintf("unknown(0x%02X)", uint8(v))
}

// fontNT is the format id of files which link code page entries with relative offsets.
const fontNT = "FONT.NT"

// FileHeader is the fixed header at the start of every CPI file.
type FileHeader struct {
	ID0       byte    // 0xFF or 0x7F
	ID        [7]byte // "FONT   ", "FONT.NT" or "DRFONT "
	Reserved  [8]byte
	PNum      uint16 // number of pointers, a font count hint
	PType     byte   // pointer type
	FIHOffset uint32 // absolute offset of the FontInfo section
}

// Variant returns the file layout.
func (h *FileHeader) Variant() Variant {
	return Variant(h.ID0)
}

// FormatID returns the 7 byte format id as a string, trailing blanks included.
func (h *FileHeader) FormatID() string {
	return string(h.ID[:])
}

// IsFontNT is true for files which store next-entry links relative to the
// start of the current code page entry.
func (h *FileHeader) IsFontNT() bool {
	return bytes.Equal(h.ID[:], []byte(fontNT))
}

// ExtendedHeader follows the FileHeader of DR-DOS files. It lists, for every font
// present in each code page, the glyph cell size and the absolute offset of the
// shared bitmap block.
type ExtendedHeader struct {
	CellSizes []uint8  // bytes per glyph, equal to the glyph height
	Offsets   []uint32 // absolute offsets of the bitmap blocks
}

// NumFonts returns the number of fonts per code page.
func (x *ExtendedHeader) NumFonts() int {
	if x == nil {
		return 0
	}
	return len(x.CellSizes)
}

// FontInfo is the section the FileHeader points to.
type FontInfo struct {
	NumCodePages uint16
}

// header holds everything read before the first code page entry.
type header struct {
	file     FileHeader
	ext      *ExtendedHeader // nil for standard files
	fontInfo FontInfo
}

// ReadHeader reads the header section of a CPI file: the FileHeader, the
// ExtendedHeader for DR-DOS files (nil otherwise), and the FontInfo section.
// r has to be positioned at the start of the file. On return, r is positioned at the
// first code page entry.
func ReadHeader(r io.ReadSeeker) (*FileHeader, *ExtendedHeader, FontInfo, error) {
	h, err := readHeader(newCursor(r), nil)
	if err != nil {
		return nil, nil, FontInfo{}, err
	}
	return &h.file, h.ext, h.fontInfo, nil
}

func readHeader(c *cursor, events EventSink) (*header, error) {
	h := &header{}
	start, err := c.enter("FileHeader")
	if err != nil {
		return nil, err
	}
	if h.file.ID0, err = c.u8(); err != nil {
		return nil, err
	}
	if v := h.file.Variant(); v != Standard && v != Extended {
		return nil, c.fail(fmt.Sprintf("tag byte 0x%02X", h.file.ID0), ErrUnsupportedFormat)
	}
	rest := struct {
		ID        [7]byte
		Reserved  [8]byte
		PNum      uint16
		PType     byte
		FIHOffset uint32
	}{}
	if err = c.record(&rest); err != nil {
		return nil, err
	}
	h.file.ID = rest.ID
	h.file.Reserved = rest.Reserved
	h.file.PNum = rest.PNum
	h.file.PType = rest.PType
	h.file.FIHOffset = rest.FIHOffset
	tracer().Debugf("FileHeader: 0x%X %q pnum=%d ptyp=%d fih=0x%X",
		h.file.ID0, h.file.FormatID(), h.file.PNum, h.file.PType, h.file.FIHOffset)
	if err = emit(events, Event{Kind: EventFileHeader, Offset: start, Header: &h.file}); err != nil {
		return nil, err
	}

	if h.file.Variant() == Extended {
		if h.ext, err = readExtendedHeader(c, events); err != nil {
			return nil, err
		}
	}

	if err = c.SeekTo(int64(h.file.FIHOffset)); err != nil {
		return nil, err
	}
	if start, err = c.enter("FontInfo"); err != nil {
		return nil, err
	}
	if h.fontInfo.NumCodePages, err = c.u16(); err != nil {
		return nil, err
	}
	tracer().Debugf("FontInfo: %d code pages", h.fontInfo.NumCodePages)
	err = emit(events, Event{Kind: EventFontInfo, Offset: start, FontInfo: &h.fontInfo})
	return h, err
}

// readExtendedHeader reads the font count, then all cell sizes, then all block
// offsets. The two lists are not interleaved.
func readExtendedHeader(c *cursor, events EventSink) (*ExtendedHeader, error) {
	start, err := c.enter("ExtendedHeader")
	if err != nil {
		return nil, err
	}
	n, err := c.u8()
	if err != nil {
		return nil, err
	}
	x := &ExtendedHeader{
		CellSizes: make([]uint8, n),
		Offsets:   make([]uint32, n),
	}
	for i := range x.CellSizes {
		if x.CellSizes[i], err = c.u8(); err != nil {
			return nil, err
		}
	}
	for i := range x.Offsets {
		if x.Offsets[i], err = c.u32(); err != nil {
			return nil, err
		}
	}
	for i := range x.CellSizes {
		tracer().Debugf("ExtendedHeader: font %d cell size %d block at 0x%X", i, x.CellSizes[i], x.Offsets[i])
	}
	err = emit(events, Event{Kind: EventExtendedHeader, Offset: start, Extended: x})
	return x, err
}
