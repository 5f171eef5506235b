// Package term provides the interactive input channels for bfk.
//
// Two channels exist and stay distinct: a shared line-buffered reader used
// by the session prompt, and a raw single-character read used by the ','
// instruction. The raw read acquires and releases the terminal per call;
// no handle is held between instructions.
package term

import (
	"bufio"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// CharReader reads exactly one character per call.
type CharReader interface {
	ReadChar() (byte, error)
}

var (
	stdinReaderOnce sync.Once
	stdinReader     *bufio.Reader
)

// LineReader returns the shared buffered reader over os.Stdin. All line
// reads must go through it so no bytes are lost between the prompt and a
// non-terminal fallback character read.
func LineReader() *bufio.Reader {
	stdinReaderOnce.Do(func() {
		stdinReader = bufio.NewReader(os.Stdin)
	})
	return stdinReader
}

// ResetLineReader resets the shared stdin reader. Used in tests when
// os.Stdin is swapped.
func ResetLineReader() {
	stdinReaderOnce = sync.Once{}
	stdinReader = nil
}

// IsTTY reports whether stdin is an interactive terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

type stdinChars struct{}

// Stdin returns the default character source: a raw terminal read when
// stdin is a tty, otherwise one byte from the shared buffered reader so
// piped input still works.
func Stdin() CharReader {
	return stdinChars{}
}

func (stdinChars) ReadChar() (byte, error) {
	if !IsTTY() {
		return LineReader().ReadByte()
	}
	return readCharRaw()
}
