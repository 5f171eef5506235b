package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/bfk/internal/config"
)

func newTestSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	s := NewSession(config.DefaultSettings())
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	s.SetOutput(out)
	s.SetError(errOut)
	return s, out, errOut
}

func TestSessionPersistsTape(t *testing.T) {
	s, out, _ := newTestSession()

	if ok := s.Compile("+", "", false); !ok {
		t.Fatal("first compile failed")
	}
	if ok := s.Compile(".", "", false); !ok {
		t.Fatal("second compile failed")
	}

	if got := out.String(); got != "1\n" {
		t.Errorf("output: got=%q, want=%q", got, "1\n")
	}
}

func TestSessionReportsValidationError(t *testing.T) {
	s, out, errOut := newTestSession()

	if ok := s.Compile("][", "", false); ok {
		t.Fatal("expected compile to fail")
	}
	if !strings.Contains(errOut.String(), "mismatched ']'") {
		t.Errorf("error output: got=%q, want mention of mismatched ']'", errOut.String())
	}
	if out.String() != "" {
		t.Errorf("rejected input produced output: %q", out.String())
	}

	// The session survives a rejected compile.
	if ok := s.Compile("+.", "", false); !ok {
		t.Fatal("compile after rejection failed")
	}
	if got := out.String(); got != "1\n" {
		t.Errorf("output after recovery: got=%q, want=%q", got, "1\n")
	}
}

func TestSessionVerboseReportsDuration(t *testing.T) {
	s, out, _ := newTestSession()

	if ok := s.Compile("+.", "", true); !ok {
		t.Fatal("compile failed")
	}

	got := out.String()
	if !strings.Contains(got, "compilation succeeded in ") {
		t.Errorf("verbose output missing duration: %q", got)
	}
	if !strings.HasSuffix(got, "1\n") {
		t.Errorf("program output missing or out of order: %q", got)
	}
}

func TestREPLExitCommand(t *testing.T) {
	s, out, _ := newTestSession()
	s.SetInput(strings.NewReader("+\n.\nexit\n+.\n"))

	s.RunREPL()

	// Input after the exit command is never compiled.
	if got := out.String(); got != "1\n" {
		t.Errorf("output: got=%q, want=%q", got, "1\n")
	}
}

func TestREPLEndOfInput(t *testing.T) {
	s, out, _ := newTestSession()
	// Last line has no trailing newline; it still runs before the loop ends.
	s.SetInput(strings.NewReader("++\n."))

	s.RunREPL()

	if got := out.String(); got != "2\n" {
		t.Errorf("output: got=%q, want=%q", got, "2\n")
	}
}

func TestREPLSkipsBlankLines(t *testing.T) {
	s, out, errOut := newTestSession()
	s.SetInput(strings.NewReader("\n   \n+.\n"))

	s.RunREPL()

	if got := out.String(); got != "1\n" {
		t.Errorf("output: got=%q, want=%q", got, "1\n")
	}
	if errOut.String() != "" {
		t.Errorf("blank lines reported errors: %q", errOut.String())
	}
}

func TestREPLSurvivesRejectedLine(t *testing.T) {
	s, out, errOut := newTestSession()
	s.SetInput(strings.NewReader("]\n+.\n"))

	s.RunREPL()

	if !strings.Contains(errOut.String(), "mismatched ']'") {
		t.Errorf("error output: got=%q, want mention of mismatched ']'", errOut.String())
	}
	if got := out.String(); got != "1\n" {
		t.Errorf("output: got=%q, want=%q", got, "1\n")
	}
}

func TestIsSourceFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"hello.bf", true},
		{"nested/dir/prog.bf", true},
		{"short.b", true},
		{"hello.txt", false},
		{"bf", false},
		{"", false},
	}
	for _, c := range cases {
		if got := isSourceFile(c.path); got != c.want {
			t.Errorf("isSourceFile(%q): got=%v, want=%v", c.path, got, c.want)
		}
	}
}
