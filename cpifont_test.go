package cpifont

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/cpifont/cpi"
	"github.com/npillmayer/cpifont/internal/cpitest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFixture(t *testing.T) (string, cpitest.File) {
	f := cpitest.Standard(cpitest.IDFont,
		cpitest.Page{CodePage: 437, Fonts: []cpitest.Font{cpitest.NewFont(437, 8, 8, 256), cpitest.NewFont(437, 8, 16, 256)}},
		cpitest.Page{CodePage: 850, Fonts: []cpitest.Font{cpitest.NewFont(850, 8, 16, 256)}},
	)
	path := filepath.Join(t.TempDir(), "ega.cpi")
	if err := os.WriteFile(path, f.Data, 0644); err != nil {
		t.Fatal(err)
	}
	return path, f
}

func TestLoadCPIFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	path, _ := writeFixture(t)
	f, err := LoadCPIFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Filepath != path || f.Header.Variant() != cpi.Standard {
		t.Errorf("unexpected file %q of variant %s", f.Filepath, f.Header.Variant())
	}
	cat, err := f.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if cat.FontCount() != 3 {
		t.Errorf("expected 3 fonts in catalog, have %d", cat.FontCount())
	}
}

func TestLoadMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	_, err := LoadCPIFile(filepath.Join(t.TempDir(), "missing.cpi"))
	if !errors.Is(err, cpi.ErrInputOpen) {
		t.Errorf("expected input open error, got %v", err)
	}
	err = ExtractFile(filepath.Join(t.TempDir(), "missing.cpi"), cpi.Options{InfoOnly: true}, nil, nil)
	if !errors.Is(err, cpi.ErrInputOpen) {
		t.Errorf("expected input open error, got %v", err)
	}
}

func TestParseGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	_, err := ParseCPIFile([]byte("MZ this is not a font file at all"))
	if !errors.Is(err, cpi.ErrUnsupportedFormat) {
		t.Errorf("expected unsupported format, got %v", err)
	}
}

func TestCodePageFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	path, _ := writeFixture(t)
	f, err := LoadCPIFile(path)
	if err != nil {
		t.Fatal(err)
	}
	fonts, err := CodePageFonts(f, 437, "65-66")
	if err != nil {
		t.Fatal(err)
	}
	if len(fonts) != 2 {
		t.Fatalf("expected 2 fonts for code page 437, got %d", len(fonts))
	}
	if fonts[1].Name != "CP437_8x16__1bpp" || fonts[1].Glyphs() != 2 {
		t.Errorf("unexpected font %s with %d glyphs", fonts[1].Name, fonts[1].Glyphs())
	}
	if b := fonts[0].Glyph(1)[0]; b != cpitest.Row(437, 8, 66, 0) {
		t.Errorf("expected first row of glyph 66, got 0x%02X", b)
	}
	if _, err = CodePageFonts(f, 437, "9-3"); !errors.Is(err, cpi.ErrInvalidRangeOrder) {
		t.Errorf("expected range order error, got %v", err)
	}
}

func TestExtractFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	path, _ := writeFixture(t)
	var names []string
	sink := cpi.FontSinkFunc(func(fd cpi.FontData) error {
		names = append(names, fd.Name)
		return nil
	})
	if err := ExtractFile(path, cpi.Options{CodePage: 850}, sink, nil); err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "CP850_8x16__1bpp" {
		t.Errorf("unexpected fonts %v", names)
	}
}
