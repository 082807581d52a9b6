package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/cpifont/cpi"
	"github.com/npillmayer/cpifont/cpiout"
	"github.com/npillmayer/cpifont/cpiquery"
	"github.com/npillmayer/cpifont/internal/cpitest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestExtractOptions(t *testing.T) {
	opts, err := extractOptions(437, false, "32-34,65")
	if err != nil {
		t.Fatal(err)
	}
	want := cpi.Options{CodePage: 437, Ranges: cpi.Selection{{Start: 32, End: 34}, {Start: 65, End: 65}}}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	opts, err = extractOptions(0, true, "-")
	if err != nil || opts.Ranges != nil || !opts.InfoOnly {
		t.Errorf("expected info-only options with default range, got %+v, %v", opts, err)
	}
	if _, err = extractOptions(0, false, "5-1"); !errors.Is(err, cpi.ErrInvalidRangeOrder) {
		t.Errorf("expected range order error, got %v", err)
	}
	if _, err = extractOptions(70000, false, "-"); err == nil {
		t.Errorf("expected code page out of range to be rejected")
	}
}

func TestOutputSinks(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		out  outputConfig
		kind string
	}{
		{outputConfig{infoOnly: true, binary: true}, "<nil>"},
		{outputConfig{binary: true, name: "ignored.h"}, "*cpiout.BinarySink"},
		{outputConfig{format: "C", name: filepath.Join(dir, "font.h")}, "*cpiout.CHeaderSink"},
		{outputConfig{format: "go", name: filepath.Join(dir, "f.go"), pkg: "f"}, "*cpiout.GoSink"},
	}
	for _, tt := range tests {
		sink, done, err := tt.out.sink()
		if err != nil {
			t.Fatal(err)
		}
		if done == nil {
			t.Errorf("%s: expected a completion function", tt.kind)
		}
		kind := "<nil>"
		switch sink.(type) {
		case *cpiout.BinarySink:
			kind = "*cpiout.BinarySink"
		case *cpiout.CHeaderSink:
			kind = "*cpiout.CHeaderSink"
		case *cpiout.GoSink:
			kind = "*cpiout.GoSink"
		}
		if kind != tt.kind {
			t.Errorf("expected sink %s, got %s", tt.kind, kind)
		}
	}
	if _, _, err := (outputConfig{format: "pascal"}).sink(); err == nil {
		t.Errorf("expected unknown format to be rejected")
	}
	sink, _, _ := (outputConfig{format: "go", name: "font.h", pkg: "vga"}).sink()
	if gs := sink.(*cpiout.GoSink); gs.Path != "vga.go" {
		t.Errorf("expected default Go output vga.go, got %s", gs.Path)
	}
}

func TestReporter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	f := cpitest.Standard(cpitest.IDFont,
		cpitest.Page{CodePage: 437, Printer: true},
		cpitest.Page{CodePage: 850, Fonts: []cpitest.Font{cpitest.NewFont(850, 8, 8, 256), cpitest.NewFont(850, 8, 16, 128)}},
	)
	var b bytes.Buffer
	if err := cpi.Inspect(bytes.NewReader(f.Data), 0, &reporter{w: &b}); err != nil {
		t.Fatal(err)
	}
	expected := "Printer font, skipping...\n\n" +
		"Code Page: 850\n" +
		"8x8\t256 characters\n" +
		"8x16\t128 characters\n"
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	f := cpitest.Standard(cpitest.IDFont,
		cpitest.Page{CodePage: 437, Fonts: []cpitest.Font{cpitest.NewFont(437, 8, 8, 256), cpitest.NewFont(437, 8, 16, 256)}},
		cpitest.Page{CodePage: 850, Printer: true, Device: "4201"},
	)
	cat, err := cpiquery.Describe(bytes.NewReader(f.Data))
	if err != nil {
		t.Fatal(err)
	}
	data := catalogTable(cat)
	if len(data) != 3 {
		t.Fatalf("expected header and 2 rows, got %d rows", len(data))
	}
	if data[1][2] != "437" || data[1][4] != "8x8 8x16" || data[1][1] != "EGA" {
		t.Errorf("unexpected row %v", data[1])
	}
	if data[2][1] != "4201" || !strings.Contains(data[2][4], "printer") {
		t.Errorf("unexpected printer row %v", data[2])
	}
}

func TestExtractToCHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cpi")
	defer teardown()
	//
	f := cpitest.Standard(cpitest.IDFont,
		cpitest.Page{CodePage: 437, Fonts: []cpitest.Font{cpitest.NewFont(437, 8, 2, 4)}},
	)
	out := filepath.Join(t.TempDir(), "font.h")
	opts, err := extractOptions(0, false, "1-1")
	if err != nil {
		t.Fatal(err)
	}
	sink, done, err := outputConfig{format: "c", name: out}.sink()
	if err != nil {
		t.Fatal(err)
	}
	if err = cpi.Extract(bytes.NewReader(f.Data), opts, sink, nil); err != nil {
		t.Fatal(err)
	}
	if err = done(); err != nil {
		t.Fatal(err)
	}
	text, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var want bytes.Buffer
	g := cpitest.NewFont(437, 8, 2, 4).Glyph(1)
	_ = cpiout.FormatCArray(&want, cpi.FontData{Name: "CP437_8x2__1bpp", GlyphSize: 2, Data: g})
	if diff := cmp.Diff(want.String(), string(text)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
