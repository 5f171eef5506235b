// Package cli implements the bfk command: argument handling, file
// execution, and the interactive session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/bfk/internal/backend"
	"github.com/funvibe/bfk/internal/config"
	"github.com/funvibe/bfk/internal/lexer"
	"github.com/funvibe/bfk/internal/pipeline"
	"github.com/funvibe/bfk/internal/term"
	"github.com/funvibe/bfk/internal/vm"
)

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Session owns one interpreter for the duration of an interactive session
// or a single file run. Tape state survives every compile the session makes;
// the instruction sequence does not.
type Session struct {
	machine  *vm.VM
	settings *config.Settings
	lines    *bufio.Reader
	out      io.Writer
	errOut   io.Writer
}

func NewSession(settings *config.Settings) *Session {
	return &Session{
		machine:  vm.New(settings.TapeSize),
		settings: settings,
		lines:    term.LineReader(),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

// SetOutput redirects both session messages and program output.
func (s *Session) SetOutput(w io.Writer) {
	s.out = w
	s.machine.SetOutput(w)
}

// SetError redirects error reporting.
func (s *Session) SetError(w io.Writer) {
	s.errOut = w
}

// SetInput replaces the line reader driving the interactive loop.
func (s *Session) SetInput(r io.Reader) {
	s.lines = bufio.NewReader(r)
}

// Machine exposes the session's interpreter, mainly for input injection.
func (s *Session) Machine() *vm.VM {
	return s.machine
}

// Compile runs one unit of source text through the full pipeline. The
// instruction sequence and jump pairs are rebuilt from scratch; the tape
// and data cursor are left exactly as the previous compile left them.
// Compile and execution failures are reported to the error writer and the
// session stays usable; the interpreter's fatal conditions panic through.
func (s *Session) Compile(source, filePath string, verbose bool) bool {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = filePath

	compilePipeline := pipeline.New(
		&lexer.LexerProcessor{},
		&vm.CompilerProcessor{},
	)
	ctx = compilePipeline.Run(ctx)
	if len(ctx.Errors) > 0 {
		s.reportErrors(ctx.Errors)
		return false
	}

	if verbose {
		fmt.Fprintf(s.out, "compilation succeeded in %v\n", ctx.CompileDuration)
	}

	ctx = backend.NewExecutionProcessor(s.machine).Process(ctx)
	if len(ctx.Errors) > 0 {
		s.reportErrors(ctx.Errors)
		return false
	}
	return true
}

func (s *Session) reportErrors(errs []error) {
	for _, err := range errs {
		fmt.Fprintf(s.errOut, "%s\n", err)
	}
}

// RunREPL loops reading input units until the exit command or end of input.
// Read errors are reported and the loop re-prompts.
func (s *Session) RunREPL() {
	interactive := term.IsTTY()
	if interactive {
		fmt.Fprintln(s.out, "Welcome to bfk. Type 'exit' to quit.")
	}

	for {
		if interactive {
			fmt.Fprint(s.out, s.settings.Prompt)
		}

		line, err := s.lines.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(s.errOut, "error reading input: %s\n", err)
			continue
		}

		text := strings.TrimSpace(line)
		if text == config.ExitCommand {
			return
		}
		if text != "" {
			s.Compile(text, "", s.settings.Verbose)
		}

		if err != nil {
			// EOF after handling whatever was on the last line
			return
		}
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `bfk - a brainfuck interpreter

Usage:

  bfk                        start an interactive session
  bfk <file.bf>              compile and run a source file
  bfk <file.bf> -v           also report compile duration
  bfk <file.bf> --disasm     print the compiled program instead of running it
  bfk --version              print the interpreter version
`)
}

// Run is the command entry point. Reported errors do not affect the exit
// status: a rejected program is not a crash. Only the interpreter's fatal
// conditions terminate abnormally, by panicking past this function.
func Run(args []string) int {
	settings, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		settings = config.DefaultSettings()
	}

	var path string
	verbose := settings.Verbose
	disasm := false
	for _, arg := range args {
		switch {
		case arg == "-v" || arg == "--verbose":
			verbose = true
		case arg == "--disasm":
			disasm = true
		case arg == "--version":
			fmt.Fprintf(os.Stdout, "bfk %s\n", config.Version)
			return 0
		case strings.HasPrefix(arg, "-"):
			usage(os.Stdout)
			return 0
		case path == "":
			path = arg
		default:
			usage(os.Stdout)
			return 0
		}
	}

	if path == "" {
		if disasm {
			usage(os.Stdout)
			return 0
		}
		s := NewSession(settings)
		s.settings.Verbose = verbose
		s.RunREPL()
		return 0
	}

	if !isSourceFile(path) {
		fmt.Fprintf(os.Stderr, "error: %s is not a %s file\n", path, config.SourceFileExt)
		return 0
	}

	return runFile(path, settings, verbose, disasm)
}

// runFile reads the whole file and performs exactly one compile/run cycle.
func runFile(path string, settings *config.Settings, verbose, disasm bool) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading file: %s\n", err)
		return 0
	}

	if disasm {
		ctx := pipeline.NewPipelineContext(string(data))
		ctx.FilePath = path
		ctx = pipeline.New(&lexer.LexerProcessor{}, &vm.CompilerProcessor{}).Run(ctx)
		if len(ctx.Errors) > 0 {
			for _, err := range ctx.Errors {
				fmt.Fprintf(os.Stderr, "%s\n", err)
			}
			return 0
		}
		fmt.Print(vm.Disassemble(ctx.Chunk.(*vm.Chunk), filepath.Base(path)))
		return 0
	}

	s := NewSession(settings)
	s.Compile(string(data), path, verbose)
	return 0
}
