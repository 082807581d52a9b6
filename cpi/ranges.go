package cpi

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// MaxRanges is the maximum number of character ranges in a Selection.
const MaxRanges = 20

// MaxCharIndex is the largest character index a range may refer to.
const MaxCharIndex = 255

// Range is an inclusive range [Start, End] of character indices.
type Range struct {
	Start, End int
}

// Len returns the number of characters in r.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

func (r Range) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Selection is an ordered list of character ranges. Ranges are neither sorted nor
// merged: a character covered by two ranges is selected twice.
type Selection []Range

// orDefault returns s, or, if s is empty, a selection of the single range
// [start, end].
func (s Selection) orDefault(start, end int) Selection {
	if len(s) > 0 {
		return s
	}
	return Selection{{Start: start, End: end}}
}

// Count returns the number of selected characters, repetitions included.
func (s Selection) Count() int {
	n := 0
	for _, r := range s {
		n += r.Len()
	}
	return n
}

// Indices iterates over the selected character indices, range by range, in
// declaration order.
func (s Selection) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, r := range s {
			for i := r.Start; i <= r.End; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}
}

func (s Selection) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// ParseRanges parses a comma separated list of character ranges, e.g.
// "32-167,57,2-4". Each item is either a single index or a pair "start-end".
// Starts are clamped to [0, 255] and ends to at most 255. An item which does not
// start with a number yields ErrMalformedRange, an end smaller than its start yields
// ErrInvalidRangeOrder.
func ParseRanges(spec string) (Selection, error) {
	var sel Selection
	for _, item := range strings.Split(spec, ",") {
		if item == "" {
			continue
		}
		r, err := parseRange(item)
		if err != nil {
			return nil, err
		}
		if len(sel) == MaxRanges {
			return nil, fmt.Errorf("%w: more than %d ranges", ErrMalformedRange, MaxRanges)
		}
		sel = append(sel, r)
	}
	tracer().Debugf("parsed ranges %q as %v", spec, sel)
	return sel, nil
}

func parseRange(item string) (Range, error) {
	start, rest, ok := leadingInt(item)
	if !ok {
		return Range{}, fmt.Errorf("%w '%s'", ErrMalformedRange, item)
	}
	end := start
	if strings.HasPrefix(rest, "-") {
		if n, _, ok := leadingInt(rest[1:]); ok {
			end = n
		}
	}
	start = min(max(start, 0), MaxCharIndex)
	end = min(end, MaxCharIndex)
	if end < start {
		return Range{}, fmt.Errorf("%w: '%s'", ErrInvalidRangeOrder, item)
	}
	return Range{Start: start, End: end}, nil
}

// leadingInt scans an optionally signed decimal number after leading blanks,
// returning the number and the unscanned remainder of s.
func leadingInt(s string) (int, string, bool) {
	s = strings.TrimLeft(s, " \t")
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, s, false
	}
	return n, s[j:], true
}
