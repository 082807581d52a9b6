package cpi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/npillmayer/cpifont/internal/cpitest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReadStandardHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	f := cpitest.Standard(cpitest.IDFont, cpitest.Page{CodePage: 437}, cpitest.Page{CodePage: 850})
	r := bytes.NewReader(f.Data)
	h, x, fi, err := ReadHeader(r)
	if err != nil {
		t.Fatal(err)
	}
	if h.Variant() != Standard {
		t.Errorf("expected standard variant, got %s", h.Variant())
	}
	if h.FormatID() != "FONT   " || h.IsFontNT() {
		t.Errorf("unexpected format id %q", h.FormatID())
	}
	if x != nil {
		t.Errorf("expected no extended header for standard file")
	}
	if fi.NumCodePages != 2 {
		t.Errorf("expected 2 code pages, got %d", fi.NumCodePages)
	}
	if pos, _ := r.Seek(0, io.SeekCurrent); pos != f.Entries[0] {
		t.Errorf("expected reader at first entry 0x%X, is at 0x%X", f.Entries[0], pos)
	}
}

func TestReadExtendedHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	cells := []uint8{16, 14, 8}
	f := cpitest.Extended(cells, 4, cpitest.ExtPage{CodePage: 437})
	h, x, fi, err := ReadHeader(bytes.NewReader(f.Data))
	if err != nil {
		t.Fatal(err)
	}
	if h.Variant() != Extended {
		t.Fatalf("expected extended variant, got %s", h.Variant())
	}
	if x.NumFonts() != 3 || len(x.Offsets) != 3 {
		t.Fatalf("expected 3 fonts per code page, got %d/%d", len(x.CellSizes), len(x.Offsets))
	}
	for i, cell := range cells {
		if x.CellSizes[i] != cell {
			t.Errorf("font %d: expected cell size %d, got %d", i, cell, x.CellSizes[i])
		}
		if int64(x.Offsets[i]) != f.Blocks[i] {
			t.Errorf("font %d: expected block at 0x%X, got 0x%X", i, f.Blocks[i], x.Offsets[i])
		}
	}
	if fi.NumCodePages != 1 {
		t.Errorf("expected 1 code page, got %d", fi.NumCodePages)
	}
}

func TestShortHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	_, _, _, err := ReadHeader(bytes.NewReader([]byte{0xFF, 'F', 'O'}))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got %v", err)
	}
	_, _, _, err = ReadHeader(bytes.NewReader([]byte{0x00}))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected unsupported format for a lone bad tag byte, got %v", err)
	}
}

func TestFontInfoBeyondEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	f := cpitest.Standard(cpitest.IDFont, cpitest.Page{CodePage: 437})
	binary.LittleEndian.PutUint32(f.Data[19:], 0xFFFF)
	_, _, _, err := ReadHeader(bytes.NewReader(f.Data))
	var ferr *FormatError
	if !errors.As(err, &ferr) || ferr.Section != "FontInfo" {
		t.Errorf("expected FontInfo format error, got %v", err)
	}
}

func TestNextEntryResolution(t *testing.T) {
	nt := &FileHeader{ID0: 0xFF}
	copy(nt.ID[:], "FONT.NT")
	std := &FileHeader{ID0: 0xFF}
	copy(std.ID[:], "FONT   ")
	const start, raw = 0x120, 0x200
	if pos := nextEntryOffset(nt, start, raw); pos != start+raw {
		t.Errorf("FONT.NT: expected link relative to entry, got 0x%X", pos)
	}
	if pos := nextEntryOffset(std, start, raw); pos != raw {
		t.Errorf("FONT: expected absolute link, got 0x%X", pos)
	}
}

func TestFormatErrorMessage(t *testing.T) {
	tests := []struct {
		err      *FormatError
		expected string
	}{
		{
			err:      &FormatError{Section: "CodePageEntry", Offset: 0x19, Issue: "short read", Err: io.ErrUnexpectedEOF},
			expected: "cpi: CodePageEntry at offset 0x19: short read: unexpected EOF",
		},
		{
			err:      &FormatError{Section: "FileHeader", Offset: -1, Err: ErrUnsupportedFormat},
			expected: "cpi: FileHeader: unsupported file type",
		},
	}
	for _, tt := range tests {
		if result := tt.err.Error(); result != tt.expected {
			t.Errorf("FormatError.Error() = %q; want %q", result, tt.expected)
		}
	}
}

func TestEventKindString(t *testing.T) {
	if s := EventPrinterSkipped.String(); s != "PrinterSkipped" {
		t.Errorf("unexpected name %q", s)
	}
	if s := EventKind(99).String(); s != "EventKind(99)" {
		t.Errorf("unexpected name %q", s)
	}
}
