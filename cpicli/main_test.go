package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/cpifont/internal/cpitest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func loadFixture(t *testing.T) *Intp {
	f := cpitest.Standard(cpitest.IDFont,
		cpitest.Page{CodePage: 437, Fonts: []cpitest.Font{cpitest.NewFont(437, 8, 8, 256), cpitest.NewFont(437, 8, 16, 256)}},
		cpitest.Page{CodePage: 850, Fonts: []cpitest.Font{cpitest.NewFont(850, 8, 16, 64)}},
	)
	path := filepath.Join(t.TempDir(), "ega.cpi")
	if err := os.WriteFile(path, f.Data, 0644); err != nil {
		t.Fatal(err)
	}
	intp := &Intp{}
	if err := intp.loadFile(path); err != nil {
		t.Fatal(err)
	}
	return intp
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	intp := &Intp{}
	cmd, err := intp.parseCommand("fonts:437  glyph:65 bogus")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.count != 3 {
		t.Fatalf("expected 3 steps, got %d", cmd.count)
	}
	want := []Op{{code: FONTS, arg: "437"}, {code: GLYPH, arg: "65"}, {code: HELP}, {code: NOOP}}
	if diff := cmp.Diff(want, cmd.op[:4], cmp.AllowUnexported(Op{})); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	cmd, _ = intp.parseCommand("glyph:850:7")
	if cmd.op[0].arg != "850" || cmd.op[0].sub != "7" {
		t.Errorf("expected code page and index arguments, got %+v", cmd.op[0])
	}
	cmd, _ = intp.parseCommand("QUIT now")
	if cmd.op[0].code != QUIT || cmd.op[1].code != NOOP {
		t.Errorf("expected parsing to stop at quit, got %+v", cmd.op[:2])
	}
}

func TestGlyphRows(t *testing.T) {
	want := []string{
		"0x18  ...##...",
		"0x81  #......#",
		"0x00  ........",
	}
	if diff := cmp.Diff(want, glyphRows([]byte{0x18, 0x81, 0x00})); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBrowseCodePages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	intp := loadFixture(t)
	if err, _ := glyphOp(intp, &Op{code: GLYPH, arg: "65"}); !errors.Is(err, ErrNoCodePage) {
		t.Errorf("expected missing code page, got %v", err)
	}
	if err, _ := fontsOp(intp, &Op{code: FONTS, arg: "866"}); err == nil {
		t.Errorf("expected code page 866 to be missing")
	}
	if err, _ := fontsOp(intp, &Op{code: FONTS, arg: "437"}); err != nil {
		t.Fatal(err)
	}
	if intp.codepage != 437 {
		t.Errorf("expected code page 437 to be selected, have %d", intp.codepage)
	}
	if err, _ := glyphOp(intp, &Op{code: GLYPH, arg: "65"}); err != nil {
		t.Errorf("glyph of selected code page: %v", err)
	}
	if err, _ := glyphOp(intp, &Op{code: GLYPH, arg: "850", sub: "200"}); err == nil {
		t.Errorf("expected glyph beyond a 64 character font to fail")
	}
	if err, _ := glyphOp(intp, &Op{code: GLYPH, arg: "437", sub: "256"}); err == nil {
		t.Errorf("expected glyph index 256 to be rejected")
	}
	for _, op := range []func(*Intp, *Op) (error, bool){headerOp, pagesOp} {
		if err, stop := op(intp, &Op{}); err != nil || stop {
			t.Errorf("unexpected result %v, %v", err, stop)
		}
	}
	if _, stop := quitOp(intp, &Op{code: QUIT}); !stop {
		t.Errorf("expected quit to stop the REPL")
	}
}

func TestNoFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	intp := &Intp{}
	if err := intp.loadFile(""); err == nil {
		t.Errorf("expected missing file name to be rejected")
	}
	if err, _ := pagesOp(intp, &Op{}); !errors.Is(err, ErrNoFile) {
		t.Errorf("expected no file error, got %v", err)
	}
}
