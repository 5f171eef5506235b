//go:build !windows
// +build !windows

package term

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// readCharRaw reads one byte from the terminal without waiting for a
// newline: no echo, no canonical mode, VMIN=1 so the read blocks until a
// key arrives. The previous terminal state is restored before returning.
func readCharRaw() (byte, error) {
	fd := int(os.Stdin.Fd())

	var oldState syscall.Termios
	if _, _, err := syscall.Syscall6(
		syscall.SYS_IOCTL,
		uintptr(fd),
		getTermiosGet(),
		uintptr(unsafe.Pointer(&oldState)),
		0, 0, 0,
	); err != 0 {
		return 0, fmt.Errorf("failed to get terminal settings")
	}

	newState := oldState
	newState.Lflag &^= syscall.ECHO | syscall.ICANON
	newState.Cc[syscall.VMIN] = 1
	newState.Cc[syscall.VTIME] = 0

	if _, _, err := syscall.Syscall6(
		syscall.SYS_IOCTL,
		uintptr(fd),
		getTermiosSet(),
		uintptr(unsafe.Pointer(&newState)),
		0, 0, 0,
	); err != 0 {
		return 0, fmt.Errorf("failed to set raw mode")
	}

	defer func() {
		_, _, _ = syscall.Syscall6(
			syscall.SYS_IOCTL,
			uintptr(fd),
			getTermiosSet(),
			uintptr(unsafe.Pointer(&oldState)),
			0, 0, 0,
		)
	}()

	buf := make([]byte, 1)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("no input available")
	}
	return buf[0], nil
}
