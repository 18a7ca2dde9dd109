//go:build windows

package cli

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableANSI switches the Windows console into virtual terminal mode so
// the escape codes in draw.go render instead of printing garbage.
func enableANSI(f *os.File) {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	_ = windows.SetConsoleMode(h, mode)
}
