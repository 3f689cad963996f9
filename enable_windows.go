package ansitext

import (
	"os"

	"golang.org/x/sys/windows"
)

// Enable reports whether f can be expected to interpret ANSI escape
// sequences, enabling terminal processing first where the platform needs
// it. On Windows it turns on virtual terminal processing for console
// handles.
func Enable(f *os.File) bool {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
