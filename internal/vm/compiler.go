package vm

import (
	"fmt"
	"time"

	"github.com/funvibe/bfk/internal/pipeline"
	"github.com/funvibe/bfk/internal/token"
)

// Compiler translates a token sequence into a chunk and validates its
// bracket structure. Compilation either yields a chunk with a complete,
// correct jump-pair set or fails without producing a chunk; the VM never
// sees an unvalidated program.
type Compiler struct{}

// NewCompiler creates a new compiler
func NewCompiler() *Compiler {
	return &Compiler{}
}

var opForToken = map[token.TokenType]Opcode{
	token.MOVE_RIGHT: OP_MOVE_RIGHT,
	token.MOVE_LEFT:  OP_MOVE_LEFT,
	token.INCREMENT:  OP_INCREMENT,
	token.DECREMENT:  OP_DECREMENT,
	token.OUTPUT:     OP_OUTPUT,
	token.INPUT:      OP_INPUT,
	token.JUMP_FWD:   OP_JUMP_FWD,
	token.JUMP_BACK:  OP_JUMP_BACK,
}

// Compile builds a fresh chunk from the tokens. The previous program, if
// any, is simply abandoned: a session reuses one interpreter across many
// compiles and each compile starts from scratch.
func (c *Compiler) Compile(tokens []token.Token) (*Chunk, error) {
	chunk := NewChunk()
	for _, tok := range tokens {
		op, ok := opForToken[tok.Type]
		if !ok {
			return nil, fmt.Errorf("unknown token %s at line %d, column %d", tok.Type, tok.Line, tok.Column)
		}
		chunk.Write(op, tok.Line, tok.Column)
	}

	if err := c.validateJumps(chunk); err != nil {
		return nil, err
	}
	return chunk, nil
}

// validateJumps matches every [ with its ] in one left-to-right pass using
// a stack of pending openers, and fills chunk.Jumps. An empty chunk
// validates trivially; adjacent [] validates as a zero-width pair.
func (c *Compiler) validateJumps(chunk *Chunk) error {
	var stack []int

	for i, op := range chunk.Code {
		switch op {
		case OP_JUMP_FWD:
			stack = append(stack, i)
		case OP_JUMP_BACK:
			// Only openers are ever pushed, so an empty stack is the
			// one way this close can be mismatched.
			if len(stack) == 0 {
				return fmt.Errorf("mismatched ']' at instruction %d (line %d, column %d)",
					i, chunk.Lines[i], chunk.Columns[i])
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			chunk.Jumps = append(chunk.Jumps, JumpPair{Start: start, End: i})
		}
	}

	if len(stack) > 0 {
		return fmt.Errorf("%d unmatched '[' at end of input", len(stack))
	}
	return nil
}

// CompilerProcessor adapts the compiler to the processing pipeline.
type CompilerProcessor struct{}

func (p *CompilerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Errors) > 0 {
		return ctx
	}

	start := time.Now()
	chunk, err := NewCompiler().Compile(ctx.Tokens)
	ctx.CompileDuration += time.Since(start)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	chunk.File = ctx.FilePath
	ctx.Chunk = chunk
	return ctx
}
