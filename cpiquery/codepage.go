package cpiquery

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// DOS code pages with a known character mapping.
var charmaps = map[uint16]*charmap.Charmap{
	437: charmap.CodePage437,
	850: charmap.CodePage850,
	852: charmap.CodePage852,
	855: charmap.CodePage855,
	858: charmap.CodePage858,
	860: charmap.CodePage860,
	862: charmap.CodePage862,
	863: charmap.CodePage863,
	865: charmap.CodePage865,
	866: charmap.CodePage866,
}

// Charmap returns the character mapping of a DOS code page, if known.
func Charmap(cp uint16) (*charmap.Charmap, bool) {
	cm, ok := charmaps[cp]
	return cm, ok
}

// CodePageName returns a descriptive name for a code page, e.g.
// "IBM Code Page 437".
func CodePageName(cp uint16) string {
	if cm, ok := charmaps[cp]; ok {
		return cm.String()
	}
	return fmt.Sprintf("Code Page %d", cp)
}

// GlyphRune returns the Unicode character which the glyph at index i of a font for
// code page cp depicts. It returns false for unknown code pages and for indices
// outside 0…255.
func GlyphRune(cp uint16, i int) (rune, bool) {
	cm, ok := charmaps[cp]
	if !ok || i < 0 || i > 255 {
		return 0, false
	}
	return cm.DecodeByte(byte(i)), true
}
