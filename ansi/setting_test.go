package ansi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansitext/ansitext/ansi"
)

func settingStrings(ss []ansi.Setting) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.String()
	}
	return out
}

func TestParseCodes(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		out  []string
		err  bool
	}{
		{name: "single", in: "1", out: []string{"1"}},
		{name: "pair", in: "01;31", out: []string{"1", "31"}},
		{name: "hex", in: "0x1F", out: []string{"31"}},
		{name: "indexed color", in: "38;5;196", out: []string{"38;5;196"}},
		{name: "rgb color", in: "48;2;10;20;30", out: []string{"48;2;10;20;30"}},
		{name: "color then style", in: "38;5;196;1", out: []string{"38;5;196", "1"}},
		{name: "index zero argument", in: "38;5;0", out: []string{"38;5;0"}},
		{name: "underline color", in: "4;58;2;255;0;0", out: []string{"4", "58;2;255;0;0"}},
		{name: "empty", in: "", err: true},
		{name: "blank", in: "  ", err: true},
		{name: "reset", in: "0", err: true},
		{name: "reset mixed in", in: "1;0;31", err: true},
		{name: "negative", in: "-1", err: true},
		{name: "junk", in: "1;x", err: true},
		{name: "truncated color fn", in: "38;5", err: true},
		{name: "bad color selector", in: "38;7;1", err: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ss, err := ansi.ParseCodes(tc.in)
			if tc.err {
				require.Error(t, err)
				var derr *ansi.DirectiveError
				assert.ErrorAs(t, err, &derr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.out, settingStrings(ss))
		})
	}
}

func TestSettingCategory(t *testing.T) {
	for _, tc := range []struct {
		in  string
		cat ansi.Category
	}{
		{"1", ansi.Weight},
		{"2", ansi.Weight},
		{"3", ansi.Italic},
		{"4", ansi.Underline},
		{"21", ansi.Underline},
		{"5", ansi.Blink},
		{"31", ansi.FgColor},
		{"39", ansi.FgColor},
		{"48;5;17", ansi.BgColor},
		{"58;2;1;2;3", ansi.UlColor},
		{"97", ansi.FgColor},
		{"107", ansi.BgColor},
		{"53", ansi.Overline},
		{"51", ansi.Boxing},
		{"26", ansi.Spacing},
		{"11", ansi.Font},
	} {
		t.Run(tc.in, func(t *testing.T) {
			ss, err := ansi.ParseCodes(tc.in)
			require.NoError(t, err)
			require.Len(t, ss, 1)
			assert.Equal(t, tc.cat, ss[0].Category())
			assert.True(t, ss[0].Optimizable())
		})
	}
}

func TestRawSetting(t *testing.T) {
	s := ansi.Raw("?25")
	assert.Equal(t, ansi.Unknown, s.Category())
	assert.False(t, s.Optimizable())
	assert.True(t, s.Valid())
	assert.Equal(t, "?25", s.String())

	assert.False(t, ansi.Raw("").Valid())
	assert.False(t, ansi.Raw("1m").Valid(), "terminator byte may not appear in parameter text")

	rc := ansi.RawCodes(9000, 1)
	assert.Equal(t, "9000;1", rc.String())
	assert.Equal(t, ansi.Unknown, rc.Category())
	assert.Equal(t, []int{9000, 1}, rc.Codes())
}

func TestCategoryClearCode(t *testing.T) {
	assert.Equal(t, 22, ansi.Weight.ClearCode())
	assert.Equal(t, 24, ansi.Underline.ClearCode())
	assert.Equal(t, 39, ansi.FgColor.ClearCode())
	assert.Equal(t, 49, ansi.BgColor.ClearCode())
	assert.Equal(t, 59, ansi.UlColor.ClearCode())
	assert.Equal(t, 0, ansi.Unknown.ClearCode())
}
