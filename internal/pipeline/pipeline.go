// Package pipeline wires the compile stages (lexer, compiler, execution)
// into a single processing sequence over a shared context.
package pipeline

import (
	"time"

	"github.com/funvibe/bfk/internal/token"
)

// PipelineContext carries one unit of input text through the stages.
type PipelineContext struct {
	// Source is the raw program text for this compile.
	Source string

	// FilePath is the originating file, empty for interactive input.
	FilePath string

	// Tokens is the filtered instruction sequence produced by the lexer.
	Tokens []token.Token

	// Chunk is the compiled program (a *vm.Chunk; stored untyped so the
	// vm package can implement Processor without an import cycle).
	Chunk interface{}

	// CompileDuration is how long lexing plus validation took.
	CompileDuration time.Duration

	// Errors collects stage failures. Later stages skip when non-empty.
	Errors []error
}

// NewPipelineContext creates a context for one unit of source text.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{Source: source}
}

// Processor is a single stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Every stage sees the context; stages that must
// not run after a failure (execution in particular) check ctx.Errors.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
