package vm

import (
	"fmt"
)

// executeOneOp runs the instruction under the instruction cursor and leaves
// the cursor on the next instruction to execute.
//
// Two failure modes exist and must not be confused. A missing jump target is
// an internal-consistency error (impossible after successful validation) and
// is returned so the session survives. Moving the data cursor off either end
// of the tape, or failing to read input, is a hard invariant violation and
// panics: the cursor never clamps or wraps, only cell values do.
func (vm *VM) executeOneOp(op Opcode) error {
	switch op {
	case OP_MOVE_RIGHT:
		if vm.dp == len(vm.tape)-1 {
			panic(fmt.Sprintf("cannot move data cursor past tape capacity %d", len(vm.tape)))
		}
		vm.dp++
		vm.ip++

	case OP_MOVE_LEFT:
		if vm.dp == 0 {
			panic("cannot move data cursor below 0")
		}
		vm.dp--
		vm.ip++

	case OP_INCREMENT:
		// int8 overflow wraps: 127 + 1 = -128
		vm.tape[vm.dp]++
		vm.ip++

	case OP_DECREMENT:
		// int8 underflow wraps: -128 - 1 = 127
		vm.tape[vm.dp]--
		vm.ip++

	case OP_OUTPUT:
		// the signed numeric value, not a character glyph
		fmt.Fprintf(vm.out, "%d\n", vm.tape[vm.dp])
		vm.ip++

	case OP_INPUT:
		ch, err := vm.in.ReadChar()
		if err != nil {
			panic(fmt.Sprintf("character input failed: %s", err))
		}
		vm.tape[vm.dp] = int8(ch)
		vm.ip++

	case OP_JUMP_FWD:
		if vm.tape[vm.dp] == 0 {
			end, ok := vm.jumpFwd[vm.ip]
			if !ok {
				return fmt.Errorf("no jump pair for '[' at instruction %d; compiled program is inconsistent", vm.ip)
			}
			vm.ip = end + 1
		} else {
			vm.ip++
		}

	case OP_JUMP_BACK:
		if vm.tape[vm.dp] != 0 {
			start, ok := vm.jumpBack[vm.ip]
			if !ok {
				return fmt.Errorf("no jump pair for ']' at instruction %d; compiled program is inconsistent", vm.ip)
			}
			vm.ip = start + 1
		} else {
			vm.ip++
		}

	default:
		return fmt.Errorf("unknown opcode %d at instruction %d", op, vm.ip)
	}

	return nil
}
