package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/cpifont"
	"github.com/npillmayer/cpifont/cpi"
	"github.com/npillmayer/cpifont/cpiout"
	"github.com/thatisuday/commando"
)

func runExtractCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setDebug(flags)
	path := strings.TrimSpace(args["file"].Value)
	if path == "" {
		fatalf("CPI file path is required")
	}
	opts, err := extractOptions(
		mustFlagInt(flags["codepage"], "codepage"),
		mustFlagBool(flags["info"], "info"),
		mustFlagString(flags["range"], "range"),
	)
	if err != nil {
		fatalf("%v", err)
	}
	out := outputConfig{
		name:     mustFlagString(flags["output"], "output"),
		format:   mustFlagString(flags["format"], "format"),
		pkg:      mustFlagString(flags["package"], "package"),
		binary:   mustFlagBool(flags["binary"], "binary"),
		infoOnly: opts.InfoOnly,
	}
	sink, done, err := out.sink()
	if err != nil {
		fatalf("%v", err)
	}
	if err = cpifont.ExtractFile(path, opts, sink, &reporter{w: os.Stdout}); err != nil {
		fatalf("%v", err)
	}
	if err = done(); err != nil {
		fatalf("%v", err)
	}
	tracer().Debugf("extraction from %s done", path)
}

// extractOptions builds parser options from command line flags. A range flag of "-"
// selects the default range.
func extractOptions(codepage int, info bool, ranges string) (cpi.Options, error) {
	opts := cpi.Options{InfoOnly: info}
	if codepage < 0 || codepage > 0xFFFF {
		return opts, fmt.Errorf("invalid code page %d", codepage)
	}
	opts.CodePage = uint16(codepage)
	if ranges = strings.TrimSpace(ranges); ranges != "-" {
		sel, err := cpi.ParseRanges(ranges)
		if err != nil {
			return opts, err
		}
		opts.Ranges = sel
	}
	return opts, nil
}

type outputConfig struct {
	name     string // text output file
	format   string // "c" or "go"
	pkg      string // package of Go output
	binary   bool
	infoOnly bool
}

// sink creates the font sink for an output configuration. done has to be called
// after a successful run.
func (o outputConfig) sink() (sink cpi.FontSink, done func() error, err error) {
	done = func() error { return nil }
	switch {
	case o.infoOnly:
		return nil, done, nil
	case o.binary:
		return cpiout.NewBinarySink(""), done, nil
	}
	switch strings.ToLower(o.format) {
	case "c":
		s := cpiout.NewCHeaderSink(o.name)
		if err = s.Reset(); err != nil {
			return nil, done, err
		}
		return s, done, nil
	case "go":
		name := o.name
		if name == "font.h" {
			name = o.pkg + ".go"
		}
		s := cpiout.NewGoSink(name, o.pkg)
		return s, s.Close, nil
	}
	return nil, done, fmt.Errorf("unknown output format %q (expected c|go)", o.format)
}
