package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

const usage = `Extracts code page fonts from a CPI file into a hex byte array.

cpi-tools extract <file> [flags]
cpi-tools info <file>

Flags of extract:
	-i		List information only, don't output to file
	-o <name>	Specify an output file name (font.h by default)
	-b		Output data as raw binary files (-o option will be ignored)
	-c <number>	Specify the code page to extract
	-r <range>	Specify a range of characters to extract. Multiple
			ranges can be specified separated by commas, e.g. -r 32-167,57,2-4
	-f <format>	Text output format: c or go
	-d		Print debug information about file headers
`

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(0)
	}
	initTracing()

	commando.
		SetExecutableName("cpi-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for extracting bitmap fonts from DOS code page information (CPI) files.")

	commando.
		Register("extract").
		SetDescription("Extract code page fonts as a C byte array, Go source or raw binary files.").
		SetShortDescription("extract fonts").
		AddArgument("file", "CPI file path", "").
		AddFlag("output,o", "output file name (ignored for binary output)", commando.String, "font.h").
		AddFlag("binary,b", "write one raw binary file per font", commando.Bool, nil).
		AddFlag("info,i", "list information only, don't output to file", commando.Bool, nil).
		AddFlag("codepage,c", "code page to extract (0 extracts all)", commando.Int, 0).
		AddFlag("range,r", "character ranges, e.g. 32-167,57,2-4", commando.String, "-").
		AddFlag("format,f", "text output format: c|go", commando.String, "c").
		AddFlag("package,p", "package name for Go output", commando.String, "fonts").
		AddFlag("debug,d", "print debug information about file headers", commando.Bool, nil).
		SetAction(runExtractCommand)

	commando.
		Register("info").
		SetDescription("Print the code pages and fonts of a CPI file.").
		SetShortDescription("file structure").
		AddArgument("file", "CPI file path", "").
		AddFlag("debug,d", "print debug information about file headers", commando.Bool, nil).
		SetAction(runInfoCommand)

	commando.Parse(nil)
}

func printUsage(w io.Writer) {
	_, _ = io.WriteString(w, usage)
}

// initTracing routes traces to the Go logger. Parser traces stay quiet unless
// --debug is given.
func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.tyse.fonts": "Info",
		"trace.font.cpi":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func setDebug(flags map[string]commando.FlagValue) {
	if mustFlagBool(flags["debug"], "debug") {
		tracing.Select("font.cpi").SetTraceLevel(tracing.LevelDebug)
		tracer().SetTraceLevel(tracing.LevelDebug)
	}
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "cpi-tools: "+format+"\n", args...)
	os.Exit(1)
}
