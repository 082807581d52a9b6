package cpi

import (
	"encoding/binary"
	"io"
)

// Reading little-endian records from a CPI byte stream

// cursor is a position within a CPI file. All reads advance the cursor; links
// between records are followed by explicit seeks.
//
// Every method wraps failures into a FormatError for the record named by section,
// which is set by the caller before reading a record.
type cursor struct {
	r       io.ReadSeeker
	section string // record currently read
	start   int64  // file position where the current record started
	buf     [4]byte
}

func newCursor(r io.ReadSeeker) *cursor {
	return &cursor{r: r, section: "FileHeader"}
}

// enter marks the start of a record at the current position and returns that
// position.
func (c *cursor) enter(section string) (int64, error) {
	c.section = section
	pos, err := c.r.Seek(0, io.SeekCurrent)
	if err != nil {
		c.start = -1
		return -1, c.fail("cannot determine stream position", err)
	}
	c.start = pos
	return pos, nil
}

// at marks the start of a record at an absolute offset and moves the cursor there.
func (c *cursor) at(section string, offset int64) error {
	c.section, c.start = section, offset
	return c.SeekTo(offset)
}

// SeekTo moves the cursor to an absolute offset from the start of the stream.
func (c *cursor) SeekTo(offset int64) error {
	if _, err := c.r.Seek(offset, io.SeekStart); err != nil {
		return c.fail("seek failed", err)
	}
	return nil
}

// Skip moves the cursor n bytes forward, without reading the bytes in between.
func (c *cursor) Skip(n int64) error {
	if _, err := c.r.Seek(n, io.SeekCurrent); err != nil {
		return c.fail("seek failed", err)
	}
	return nil
}

func (c *cursor) fill(n int) ([]byte, error) {
	b := c.buf[:n]
	if _, err := io.ReadFull(c.r, b); err != nil {
		return nil, c.fail("short read", unexpected(err))
	}
	return b, nil
}

func (c *cursor) u8() (uint8, error) {
	b, err := c.fill(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.fill(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.fill(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// read fills p completely.
func (c *cursor) read(p []byte) error {
	if _, err := io.ReadFull(c.r, p); err != nil {
		return c.fail("short read", unexpected(err))
	}
	return nil
}

// bytes returns the next n bytes in a freshly allocated slice.
func (c *cursor) bytes(n int) ([]byte, error) {
	p := make([]byte, n)
	if err := c.read(p); err != nil {
		return nil, err
	}
	return p, nil
}

// record reads a fixed-size little-endian structure.
func (c *cursor) record(data any) error {
	if err := binary.Read(c.r, binary.LittleEndian, data); err != nil {
		return c.fail("short read", unexpected(err))
	}
	return nil
}

func (c *cursor) fail(issue string, err error) error {
	return errFormat(c.section, c.start, issue, err)
}

// A record cut short at the end of the file is never a regular EOF.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
