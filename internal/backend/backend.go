// Package backend runs compiled chunks on a session's interpreter.
package backend

import (
	"fmt"

	"github.com/funvibe/bfk/internal/pipeline"
	"github.com/funvibe/bfk/internal/vm"
)

// ExecutionProcessor is the final pipeline stage. It holds the session's
// persistent VM, so tape state carries over from one compile to the next
// while each compile brings its own freshly validated chunk.
type ExecutionProcessor struct {
	machine *vm.VM
}

func NewExecutionProcessor(machine *vm.VM) *ExecutionProcessor {
	return &ExecutionProcessor{machine: machine}
}

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// Never execute an input unit that failed an earlier stage.
	if len(ctx.Errors) > 0 {
		return ctx
	}

	chunk, ok := ctx.Chunk.(*vm.Chunk)
	if !ok {
		ctx.Errors = append(ctx.Errors, fmt.Errorf("internal error: pipeline context has no compiled chunk"))
		return ctx
	}

	if err := p.machine.Run(chunk); err != nil {
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
