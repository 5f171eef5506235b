// Package lexer turns raw source text into the instruction token sequence.
//
// Only the eight recognized symbols produce tokens; every other byte is a
// comment and is dropped while still advancing the line/column counters.
// This stage cannot fail.
package lexer

import (
	"time"

	"github.com/funvibe/bfk/internal/pipeline"
	"github.com/funvibe/bfk/internal/token"
)

type Lexer struct {
	input    string
	position int // current position in input (points to current byte)
	line     int // current line number
	column   int // current column number
}

func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 0}
}

// Tokenize scans the whole input and returns the recognized instructions in
// source order.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for l.position < len(l.input) {
		ch := l.input[l.position]
		l.position++

		if ch == '\n' {
			l.line++
			l.column = 0
			continue
		}
		l.column++

		typ, ok := token.Symbols[ch]
		if !ok {
			// comment character
			continue
		}
		tokens = append(tokens, token.Token{
			Type:   typ,
			Lexeme: ch,
			Line:   l.line,
			Column: l.column,
		})
	}
	return tokens
}

// LexerProcessor adapts the lexer to the processing pipeline.
type LexerProcessor struct{}

func (p *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	start := time.Now()
	l := New(ctx.Source)
	ctx.Tokens = l.Tokenize()
	ctx.CompileDuration += time.Since(start)
	return ctx
}
