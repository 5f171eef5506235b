package vm

import (
	"io"
	"os"

	"github.com/funvibe/bfk/internal/term"
)

// VM executes validated chunks against a fixed-size tape of int8 cells.
//
// The tape and the data cursor live as long as the VM: successive Run calls
// see the state left behind by earlier ones, which is what lets an
// interactive session build up a program line by line. Only the instruction
// cursor resets per run.
type VM struct {
	tape []int8
	dp   int // data cursor, always within [0, len(tape))
	ip   int // instruction cursor into the current chunk

	chunk *Chunk

	// Jump resolution tables, rebuilt from chunk.Jumps on every Run so
	// they can never go stale relative to the current chunk.
	jumpFwd  map[int]int // OP_JUMP_FWD index -> matching OP_JUMP_BACK index
	jumpBack map[int]int // OP_JUMP_BACK index -> matching OP_JUMP_FWD index

	// Output writer (defaults to os.Stdout)
	out io.Writer

	// Input channel for OP_INPUT: a raw single-character read, distinct
	// from whatever line reader drives the session.
	in term.CharReader
}

// New creates a VM with a zeroed tape of the given capacity and the data
// cursor at cell 0. This is the only point where tape state is initialized.
func New(tapeSize int) *VM {
	return &VM{
		tape: make([]int8, tapeSize),
		out:  os.Stdout,
		in:   term.Stdin(),
	}
}

// SetOutput redirects OP_OUTPUT writes.
func (vm *VM) SetOutput(w io.Writer) {
	vm.out = w
}

// SetInput replaces the OP_INPUT character source.
func (vm *VM) SetInput(r term.CharReader) {
	vm.in = r
}

// Run executes the chunk from instruction 0 until the instruction cursor
// walks off the end. Tape mutations are never rolled back: a failed run
// leaves behind whatever it managed to do.
func (vm *VM) Run(chunk *Chunk) error {
	vm.chunk = chunk
	vm.buildJumpTables()
	vm.ip = 0

	for vm.ip < chunk.Len() {
		if err := vm.executeOneOp(chunk.Code[vm.ip]); err != nil {
			return err
		}
	}
	return nil
}

func (vm *VM) buildJumpTables() {
	vm.jumpFwd = make(map[int]int, len(vm.chunk.Jumps))
	vm.jumpBack = make(map[int]int, len(vm.chunk.Jumps))
	for _, jp := range vm.chunk.Jumps {
		vm.jumpFwd[jp.Start] = jp.End
		vm.jumpBack[jp.End] = jp.Start
	}
}

// Cell returns the value of the cell at the data cursor.
func (vm *VM) Cell() int8 {
	return vm.tape[vm.dp]
}

// Cursor returns the data cursor position.
func (vm *VM) Cursor() int {
	return vm.dp
}

// TapeSize returns the tape capacity in cells.
func (vm *VM) TapeSize() int {
	return len(vm.tape)
}
