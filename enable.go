//go:build !windows

package ansitext

import (
	"os"

	"golang.org/x/term"
)

// Enable reports whether f can be expected to interpret ANSI escape
// sequences, enabling terminal processing first where the platform needs
// it. On unix-like systems that is a terminal check; respecting the
// NO_COLOR convention is up to the caller.
func Enable(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
