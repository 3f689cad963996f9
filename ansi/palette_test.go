package ansi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansitext/ansitext/ansi"
)

func TestPaletteSizes(t *testing.T) {
	assert.Len(t, ansi.Palette3, 8)
	assert.Len(t, ansi.Palette4, 16)
	assert.Len(t, ansi.Palette8, 256)
}

func TestPaletteNearest(t *testing.T) {
	for _, tc := range []struct {
		name    string
		palette ansi.Palette
		r, g, b uint8
		want    int
	}{
		{"black", ansi.Palette3, 0, 0, 0, 0},
		{"pure red to classic red", ansi.Palette3, 255, 0, 0, 1},
		{"white to classic white", ansi.Palette3, 255, 255, 255, 7},
		{"pure red to bright red", ansi.Palette4, 255, 0, 0, 9},
		{"pure blue to bright blue", ansi.Palette4, 0, 0, 255, 12},
		{"cube corner", ansi.Palette8, 0x5F, 0, 0, 52},
		{"cube exact", ansi.Palette8, 0xFF, 0xFF, 0xFF, 15},
		{"gray ramp", ansi.Palette8, 8, 8, 8, 232},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.palette.Nearest(tc.r, tc.g, tc.b))
		})
	}
}

func TestQuantize(t *testing.T) {
	ss, err := ansi.ParseCodes("38;2;95;0;0")
	require.NoError(t, err)
	require.Len(t, ss, 1)
	q := ansi.Quantize(ss[0])
	assert.Equal(t, "38;5;52", q.String())
	assert.Equal(t, ansi.FgColor, q.Category())

	ss, err = ansi.ParseCodes("48;2;255;255;255")
	require.NoError(t, err)
	assert.Equal(t, "48;5;15", ansi.Quantize(ss[0]).String())

	// Non-24-bit settings pass through untouched.
	ss, err = ansi.ParseCodes("1")
	require.NoError(t, err)
	assert.Equal(t, ss[0], ansi.Quantize(ss[0]))
	ss, err = ansi.ParseCodes("38;5;100")
	require.NoError(t, err)
	assert.Equal(t, ss[0], ansi.Quantize(ss[0]))
}
