package cpi

import (
	"bytes"
)

// Device types of code page entries.
const (
	DeviceScreen  uint16 = 1
	DevicePrinter uint16 = 2
)

// CodePageEntry is one node of the linked list of code pages. The list lives in the
// file: every entry holds the file offset of its successor.
type CodePageEntry struct {
	Size       uint16 // size of this record
	NextOffset uint32 // offset of the next entry; relative to this entry for FONT.NT files
	DeviceType uint16 // 1 = screen, 2 = printer
	DeviceName [8]byte
	CodePage   uint16
	Reserved   [6]byte
	InfoOffset uint32 // offset of the CodePageInfoHeader
}

// IsPrinter is true for printer font entries. These are never extracted.
func (e *CodePageEntry) IsPrinter() bool {
	return e.DeviceType == DevicePrinter
}

// Device returns the device name with padding removed, e.g. "EGA".
func (e *CodePageEntry) Device() string {
	return string(bytes.TrimRight(e.DeviceName[:], " \x00"))
}

// CodePageInfoHeader precedes the fonts of a code page.
type CodePageInfoHeader struct {
	Version  uint16 // 1 = FONT, 2 = DRFONT
	NumFonts uint16
	Size     uint16 // size of the font data; informational, never used to bound reads
}

// nextEntryOffset resolves the link to the code page entry following the entry
// starting at file position start.
func nextEntryOffset(h *FileHeader, start int64, next uint32) int64 {
	if h.IsFontNT() {
		return start + int64(next)
	}
	return int64(next)
}

// walk visits exactly FontInfo.NumCodePages entries. The chain is not terminated by
// a sentinel, and offsets are not validated beforehand: a broken chain surfaces as a
// read error.
func (s *session) walk() error {
	for i := 0; i < int(s.h.fontInfo.NumCodePages); i++ {
		if err := s.walkEntry(); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) walkEntry() error {
	start, err := s.c.enter("CodePageEntry")
	if err != nil {
		return err
	}
	entry := &CodePageEntry{}
	if err = s.c.record(entry); err != nil {
		return err
	}
	tracer().Debugf("CodePageEntry: size=0x%X next=0x%X device=%d %q code page %d",
		entry.Size, entry.NextOffset, entry.DeviceType, entry.Device(), entry.CodePage)

	ev := Event{Offset: start, Entry: entry}
	if entry.IsPrinter() {
		tracer().Infof("code page %d: printer font, skipping", entry.CodePage)
		ev.Kind = EventPrinterSkipped
		if err = emit(s.events, ev); err != nil {
			return err
		}
		return s.c.SeekTo(int64(entry.NextOffset))
	}
	if s.opts.CodePage != 0 && s.opts.CodePage != entry.CodePage {
		tracer().Debugf("code page %d not requested, skipping", entry.CodePage)
		ev.Kind = EventCodePageSkipped
		if err = emit(s.events, ev); err != nil {
			return err
		}
		return s.c.SeekTo(int64(entry.NextOffset))
	}
	tracer().Infof("code page %d", entry.CodePage)
	ev.Kind = EventCodePage
	if err = emit(s.events, ev); err != nil {
		return err
	}

	if err = s.extractCodePage(entry); err != nil {
		return err
	}
	return s.c.SeekTo(nextEntryOffset(&s.h.file, start, entry.NextOffset))
}

// extractCodePage reads the info header, which directly follows the entry, and all
// fonts of the code page.
func (s *session) extractCodePage(entry *CodePageEntry) error {
	start, err := s.c.enter("CodePageInfoHeader")
	if err != nil {
		return err
	}
	info := &CodePageInfoHeader{}
	if err = s.c.record(info); err != nil {
		return err
	}
	tracer().Debugf("CodePageInfoHeader: version=%d fonts=%d size=0x%X", info.Version, info.NumFonts, info.Size)
	if err = emit(s.events, Event{Kind: EventCodePageInfo, Offset: start, Entry: entry, Info: info}); err != nil {
		return err
	}
	for f := 0; f < int(info.NumFonts); f++ {
		if err = s.screenFont(entry, f); err != nil {
			return err
		}
	}
	if s.h.file.Variant() == Extended && !s.opts.InfoOnly {
		return s.extendedFonts(entry)
	}
	return nil
}
