package cpiout

import (
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/npillmayer/cpifont/cpi"
)

// GoSink collects fonts and writes them as byte array variables of a Go package.
// As a Go file cannot be appended to, output happens on Close.
type GoSink struct {
	Path    string
	Package string
	fonts   []cpi.FontData
}

// NewGoSink creates a sink writing a file of package pkg to path.
func NewGoSink(path, pkg string) *GoSink {
	return &GoSink{Path: path, Package: pkg}
}

// WriteFont queues fd for output.
func (s *GoSink) WriteFont(fd cpi.FontData) error {
	s.fonts = append(s.fonts, fd)
	return nil
}

// Source returns the formatted Go source for the fonts collected so far.
func (s *GoSink) Source() ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Code generated by cpi-tools; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n", s.Package)
	for _, fd := range s.fonts {
		fmt.Fprintf(&b, "\n// %s holds %d glyphs of %dx%d pixels, %d bytes per glyph.\n",
			fd.Name, fd.Glyphs(), fd.Width, fd.Height, fd.GlyphSize)
		fmt.Fprintf(&b, "var %s = [%d]byte{\n", fd.Name, len(fd.Data))
		for g := 0; g < fd.Glyphs(); g++ {
			for i, x := range fd.Glyph(g) {
				if i > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "0x%02x,", x)
			}
			b.WriteByte('\n')
		}
		b.WriteString("}\n")
	}
	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting Go source for package %s: %w", s.Package, err)
	}
	return src, nil
}

// Close writes the Go source file.
func (s *GoSink) Close() error {
	src, err := s.Source()
	if err != nil {
		return err
	}
	if err = os.WriteFile(s.Path, src, 0644); err != nil {
		return fmt.Errorf("%w %s: %w", cpi.ErrOutputOpen, s.Path, err)
	}
	tracer().Debugf("wrote %d fonts to %s", len(s.fonts), s.Path)
	return nil
}
