package vm

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable representation of a compiled chunk
func Disassemble(chunk *Chunk, name string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("== %s ==\n", name))

	// Jump targets by position, for annotating the bracket instructions
	fwd := make(map[int]int, len(chunk.Jumps))
	back := make(map[int]int, len(chunk.Jumps))
	for _, jp := range chunk.Jumps {
		fwd[jp.Start] = jp.End
		back[jp.End] = jp.Start
	}

	for offset, op := range chunk.Code {
		sb.WriteString(fmt.Sprintf("%04d ", offset))

		// Print line number, collapsing runs from the same source line
		if offset > 0 && chunk.Lines[offset] == chunk.Lines[offset-1] {
			sb.WriteString("   | ")
		} else {
			sb.WriteString(fmt.Sprintf("%4d ", chunk.Lines[offset]))
		}

		name, ok := OpcodeNames[op]
		if !ok {
			name = fmt.Sprintf("UNKNOWN(%d)", op)
		}

		switch op {
		case OP_JUMP_FWD:
			sb.WriteString(fmt.Sprintf("%-12s -> %04d\n", name, fwd[offset]))
		case OP_JUMP_BACK:
			sb.WriteString(fmt.Sprintf("%-12s -> %04d\n", name, back[offset]))
		default:
			sb.WriteString(name)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
