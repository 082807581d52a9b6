package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cpifont"
	"github.com/npillmayer/cpifont/cpiquery"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.tyse.fonts": "Info",
		"trace.font.cpi":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	filename := flag.String("file", "", "CPI file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the CPI font browser")
	//
	// set up REPL
	repl, err := readline.New("cpi > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load CPI file to browse
	if err := intp.loadFile(*filename); err != nil {
		pterm.Error.Println(err)
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		tracing.Select("font.cpi").SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	file     *cpifont.CPIFile
	catalog  *cpiquery.Catalog
	repl     *readline.Instance
	codepage uint16 // code page selected by the last 'fonts' command, 0 if none
}

func (intp *Intp) String() string {
	if intp == nil || intp.file == nil {
		return "()"
	}
	s := fmt.Sprintf("( file=%s", intp.file.Filepath)
	if intp.codepage != 0 {
		s += fmt.Sprintf(" cp=%d", intp.codepage)
	}
	return s + " )"
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
	sub  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	HEADER
	PAGES
	FONTS
	GLYPH
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"header": HEADER,
	"pages":  PAGES,
	"fonts":  FONTS,
	"glyph":  GLYPH,
}

var opNames = []string{
	"quit",
	"help",
	"header",
	"pages",
	"fonts",
	"glyph",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
		command.op[i].sub = ""
	}
}

// parseCommand splits a line into steps, separated by blanks. Each step is an
// op-code with up to two arguments, e.g. "fonts:437" or "glyph:437:65".
func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.Split(step, ":")
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		if code == QUIT {
			return &command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		command.op[i].sub = getOptArg(c, 2)
		tracer().Debugf("%s: arguments '%s' '%s'", opNames[code], command.op[i].arg, command.op[i].sub)
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	HEADER: headerOp,
	PAGES:  pagesOp,
	FONTS:  fontsOp,
	GLYPH:  glyphOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return nil, false
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- File Loading -----------------------------------------------------

func (intp *Intp) loadFile(path string) (err error) {
	if path == "" {
		return errors.New("no CPI file given, use -file <path>")
	}
	if intp.file, err = cpifont.LoadCPIFile(path); err != nil {
		return
	}
	if intp.catalog, err = intp.file.Catalog(); err != nil {
		return
	}
	tracer().Infof("loaded %s with %d code pages", path, len(intp.catalog.CodePages()))
	return
}

// ----------------------------------------------------------------------

var ErrNoFile = errors.New("no CPI file loaded")
var ErrNoCodePage = errors.New("no code page selected, use fonts:<cp>")

func (intp *Intp) checkFile() error {
	if intp.catalog == nil {
		return ErrNoFile
	}
	return nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func parseCodePage(arg string) (uint16, error) {
	cp, err := strconv.ParseUint(arg, 10, 16)
	if err != nil || cp == 0 {
		return 0, fmt.Errorf("not a code page number: %q", arg)
	}
	return uint16(cp), nil
}
