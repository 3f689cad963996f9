package ansi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ansitext/ansitext/ansi"
)

func TestControlSequences(t *testing.T) {
	for _, tc := range []struct {
		name string
		got  string
		want string
	}{
		{"cursor up", ansi.CursorUp(3), "\x1b[3A"},
		{"cursor down", ansi.CursorDown(1), "\x1b[1B"},
		{"cursor forward", ansi.CursorForward(10), "\x1b[10C"},
		{"cursor backward", ansi.CursorBackward(2), "\x1b[2D"},
		{"next line", ansi.CursorNextLine(1), "\x1b[1E"},
		{"previous line", ansi.CursorPreviousLine(4), "\x1b[4F"},
		{"column", ansi.CursorColumn(80), "\x1b[80G"},
		{"position", ansi.CursorPosition(5, 20), "\x1b[5;20H"},
		{"erase display to end", ansi.EraseInDisplay(ansi.EraseToEnd), "\x1b[0J"},
		{"erase display all", ansi.EraseInDisplay(ansi.EraseAll), "\x1b[2J"},
		{"erase saved", ansi.EraseInDisplay(ansi.EraseSaved), "\x1b[3J"},
		{"erase line to start", ansi.EraseInLine(ansi.EraseToStart), "\x1b[1K"},
		{"scroll up", ansi.ScrollUp(2), "\x1b[2S"},
		{"scroll down", ansi.ScrollDown(7), "\x1b[7T"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestControlRoundTrip(t *testing.T) {
	d := ansi.DecodeText("a" + ansi.CursorPosition(2, 3) + "b")
	assert.Equal(t, "ab", d.Plain)
	assert.Equal(t, []ansi.Control{{Pos: 1, Params: "2;3", Final: 'H'}}, d.Controls)
}
