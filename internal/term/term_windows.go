//go:build windows
// +build windows

package term

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

var (
	kernel32           = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleMode = kernel32.NewProc("SetConsoleMode")
	procGetConsoleMode = kernel32.NewProc("GetConsoleMode")
)

const (
	enableEchoInput = 0x0004
	enableLineInput = 0x0002
)

// readCharRaw reads one byte from the console with line input and echo
// disabled. The previous console mode is restored before returning.
func readCharRaw() (byte, error) {
	handle, err := syscall.GetStdHandle(syscall.STD_INPUT_HANDLE)
	if err != nil {
		return 0, err
	}

	var oldMode uint32
	r, _, _ := procGetConsoleMode.Call(uintptr(handle), uintptr(unsafe.Pointer(&oldMode)))
	if r == 0 {
		return 0, fmt.Errorf("failed to get console mode")
	}

	newMode := oldMode &^ uint32(enableEchoInput|enableLineInput)
	r, _, _ = procSetConsoleMode.Call(uintptr(handle), uintptr(newMode))
	if r == 0 {
		return 0, fmt.Errorf("failed to set console mode")
	}

	defer func() {
		_, _, _ = procSetConsoleMode.Call(uintptr(handle), uintptr(oldMode))
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
