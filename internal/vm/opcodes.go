// Package vm implements the bytecode interpreter for bfk
package vm

// Opcode represents a single interpreter instruction
type Opcode byte

const (
	// Data cursor movement
	OP_MOVE_RIGHT Opcode = iota // > advance the data cursor by one cell
	OP_MOVE_LEFT                // < retreat the data cursor by one cell

	// Cell arithmetic (int8, wraps around)
	OP_INCREMENT // + add 1 to the current cell
	OP_DECREMENT // - subtract 1 from the current cell

	// I/O
	OP_OUTPUT // . write the current cell value as a decimal line
	OP_INPUT  // , read one raw character into the current cell

	// Control flow
	OP_JUMP_FWD  // [ jump past the matching ] when the current cell is 0
	OP_JUMP_BACK // ] jump back past the matching [ when the current cell is non-zero
)

// OpcodeNames maps opcodes to their string names (for disassembly and errors)
var OpcodeNames = map[Opcode]string{
	OP_MOVE_RIGHT: "MOVE_RIGHT",
	OP_MOVE_LEFT:  "MOVE_LEFT",
	OP_INCREMENT:  "INCREMENT",
	OP_DECREMENT:  "DECREMENT",
	OP_OUTPUT:     "OUTPUT",
	OP_INPUT:      "INPUT",
	OP_JUMP_FWD:   "JUMP_FWD",
	OP_JUMP_BACK:  "JUMP_BACK",
}
