package config

const SourceFileExt = ".bf"

// Version is reported by --version.
const Version = "0.1.0"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".bf", ".b"}

// DefaultTapeSize is the number of memory cells allocated per interpreter.
// Overridable through the settings file; the tape never grows at run time.
const DefaultTapeSize = 30000

// ExitCommand is the literal line that terminates an interactive session.
const ExitCommand = "exit"

// DefaultPrompt is printed before each interactive line read.
const DefaultPrompt = "> "
