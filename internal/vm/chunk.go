package vm

// JumpPair records the positions of one matched [ ] pair within a chunk.
// Start is the OP_JUMP_FWD index, End the OP_JUMP_BACK index; Start < End
// always holds for pairs produced by the compiler.
type JumpPair struct {
	Start int
	End   int
}

// Chunk represents one compiled program: the instruction sequence plus the
// jump pairs the validator resolved for it. A chunk is immutable once the
// compiler returns it.
type Chunk struct {
	// Code is the instruction sequence, indexed by instruction cursor
	Code []Opcode

	// Lines maps instruction index to source line number (for errors)
	Lines []int

	// Columns maps instruction index to source column number (for errors)
	Columns []int

	// Jumps is the complete set of matched bracket pairs for Code
	Jumps []JumpPair

	// File is the source file name, empty for interactive input
	File string
}

// NewChunk creates a new empty chunk
func NewChunk() *Chunk {
	return &Chunk{
		Code:    make([]Opcode, 0, 256),
		Lines:   make([]int, 0, 256),
		Columns: make([]int, 0, 256),
	}
}

// Write adds an instruction to the chunk with its source position
func (c *Chunk) Write(op Opcode, line, col int) {
	c.Code = append(c.Code, op)
	c.Lines = append(c.Lines, line)
	c.Columns = append(c.Columns, col)
}

// Len returns the number of instructions in the chunk
func (c *Chunk) Len() int {
	return len(c.Code)
}
