/*
Package cpiout writes fonts extracted from CPI files. It provides sinks for
package cpi, one per output format:

  - CHeaderSink appends C array declarations to a text file.
  - BinarySink writes the raw glyph bytes of every font to a file of its own.
  - GoSink collects fonts and writes them as a gofmt-ed Go source file.

All sinks open their output files per write and close them before returning; no
file handle outlives a call.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package cpiout

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/npillmayer/cpifont/cpi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.cpi'
func tracer() tracing.Trace {
	return tracing.Select("font.cpi")
}

// FormatCArray writes fd to w as a C declaration
//
//	const unsigned char CP437_8x16__1bpp[4096] = {
//	0x00,0x00,…,
//	…
//	0x00,0x00,…};
//
// with the bytes of one glyph per line, followed by an empty line.
func FormatCArray(w io.Writer, fd cpi.FontData) error {
	if _, err := fmt.Fprintf(w, "const unsigned char %s[%d] = {\n", fd.Name, len(fd.Data)); err != nil {
		return err
	}
	if len(fd.Data) == 0 {
		_, err := io.WriteString(w, "};\n\n")
		return err
	}
	line := make([]byte, 0, 5*fd.GlyphSize+4)
	for g := 0; g < fd.Glyphs(); g++ {
		line = line[:0]
		glyph := fd.Glyph(g)
		for i, b := range glyph {
			line = fmt.Appendf(line, "0x%02X", b)
			if i < len(glyph)-1 || g < fd.Glyphs()-1 {
				line = append(line, ',')
			}
		}
		if g == fd.Glyphs()-1 {
			line = append(line, "};\n"...)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// CHeaderSink appends fonts as C array declarations to a text file.
type CHeaderSink struct {
	Path string
}

// NewCHeaderSink creates a sink writing to the file at path.
func NewCHeaderSink(path string) *CHeaderSink {
	return &CHeaderSink{Path: path}
}

// Reset removes the output file, if present. Call it once before a run, as
// WriteFont appends to existing content.
func (s *CHeaderSink) Reset() error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w %s: %w", cpi.ErrOutputOpen, s.Path, err)
	}
	return nil
}

// WriteFont appends the declaration of fd to the output file.
func (s *CHeaderSink) WriteFont(fd cpi.FontData) (err error) {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w %s: %w", cpi.ErrOutputOpen, s.Path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	tracer().Debugf("appending %s (%d bytes) to %s", fd.Name, len(fd.Data), s.Path)
	return FormatCArray(f, fd)
}

// BinarySink writes every font to a file <name>.bin in directory Dir.
type BinarySink struct {
	Dir   string
	Files []string // paths written so far
}

// NewBinarySink creates a sink writing to directory dir; an empty dir denotes the
// current directory.
func NewBinarySink(dir string) *BinarySink {
	return &BinarySink{Dir: dir}
}

// FileName returns the file name of the binary output for fd.
func FileName(fd cpi.FontData) string {
	return fd.Name + ".bin"
}

// WriteFont writes the glyph bytes of fd, replacing an existing file.
func (s *BinarySink) WriteFont(fd cpi.FontData) error {
	path := filepath.Join(s.Dir, FileName(fd))
	if err := os.WriteFile(path, fd.Data, 0644); err != nil {
		return fmt.Errorf("%w %s: %w", cpi.ErrOutputOpen, path, err)
	}
	tracer().Debugf("wrote %d bytes to %s", len(fd.Data), path)
	s.Files = append(s.Files, path)
	return nil
}
