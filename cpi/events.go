package cpi

import "fmt"

// EventKind classifies the structural records reported while walking a CPI file.
type EventKind uint8

const (
	// EventFileHeader reports the FileHeader.
	EventFileHeader EventKind = iota
	// EventExtendedHeader reports the ExtendedHeader of DR-DOS files.
	EventExtendedHeader
	// EventFontInfo reports the number of code page entries.
	EventFontInfo
	// EventCodePage reports a code page entry selected for extraction.
	EventCodePage
	// EventPrinterSkipped reports a printer font entry, which is never extracted.
	EventPrinterSkipped
	// EventCodePageSkipped reports an entry which does not match the requested code page.
	EventCodePageSkipped
	// EventCodePageInfo reports the info header of a selected code page.
	EventCodePageInfo
	// EventScreenFont reports the header of one screen font.
	EventScreenFont
)

func (k EventKind) String() string {
	switch k {
	case EventFileHeader:
		return "FileHeader"
	case EventExtendedHeader:
		return "ExtendedHeader"
	case EventFontInfo:
		return "FontInfo"
	case EventCodePage:
		return "CodePage"
	case EventPrinterSkipped:
		return "PrinterSkipped"
	case EventCodePageSkipped:
		return "CodePageSkipped"
	case EventCodePageInfo:
		return "CodePageInfo"
	case EventScreenFont:
		return "ScreenFont"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is one record of the structure of a CPI file. Exactly one of the pointer
// fields is set, depending on Kind. Events for code page records carry the entry
// they belong to in Entry as well.
type Event struct {
	Kind     EventKind
	Offset   int64 // file position where the record starts
	Header   *FileHeader
	Extended *ExtendedHeader
	FontInfo *FontInfo
	Entry    *CodePageEntry
	Info     *CodePageInfoHeader
	Font     *ScreenFontHeader
	FontNo   int // index of the screen font within its code page
}

// EventSink receives the structure of a CPI file, record by record, in file order.
// Returning an error aborts the walk.
type EventSink interface {
	WriteEvent(Event) error
}

// EventSinkFunc adapts a function to the EventSink interface.
type EventSinkFunc func(Event) error

// WriteEvent calls f(ev).
func (f EventSinkFunc) WriteEvent(ev Event) error {
	return f(ev)
}

func emit(events EventSink, ev Event) error {
	if events == nil {
		return nil
	}
	return events.WriteEvent(ev)
}
