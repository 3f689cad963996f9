package ansi

import "strconv"

func csiNum(n int, final byte) string {
	return CSI + strconv.Itoa(n) + string(final)
}

// CursorUp moves the cursor up n rows.
func CursorUp(n int) string { return csiNum(n, 'A') }

// CursorDown moves the cursor down n rows.
func CursorDown(n int) string { return csiNum(n, 'B') }

// CursorForward moves the cursor right n columns.
func CursorForward(n int) string { return csiNum(n, 'C') }

// CursorBackward moves the cursor left n columns.
func CursorBackward(n int) string { return csiNum(n, 'D') }

// CursorNextLine moves the cursor to the start of the line n rows down.
func CursorNextLine(n int) string { return csiNum(n, 'E') }

// CursorPreviousLine moves the cursor to the start of the line n rows up.
func CursorPreviousLine(n int) string { return csiNum(n, 'F') }

// CursorColumn moves the cursor to the 1-based column col.
func CursorColumn(col int) string { return csiNum(col, 'G') }

// CursorPosition moves the cursor to the 1-based row and column.
func CursorPosition(row, col int) string {
	return CSI + strconv.Itoa(row) + Sep + strconv.Itoa(col) + "H"
}

// EraseMode selects how much of the display or line to erase.
type EraseMode int

const (
	EraseToEnd   EraseMode = 0
	EraseToStart EraseMode = 1
	EraseAll     EraseMode = 2
	EraseSaved   EraseMode = 3
)

// EraseInDisplay erases part of the screen.
func EraseInDisplay(mode EraseMode) string { return csiNum(int(mode), 'J') }

// EraseInLine erases part of the current line. EraseSaved is not meaningful
// here; terminals treat it as a no-op.
func EraseInLine(mode EraseMode) string { return csiNum(int(mode), 'K') }

// ScrollUp scrolls the display up n rows, adding blank lines at the bottom.
func ScrollUp(n int) string { return csiNum(n, 'S') }

// ScrollDown scrolls the display down n rows, adding blank lines at the top.
func ScrollDown(n int) string { return csiNum(n, 'T') }
