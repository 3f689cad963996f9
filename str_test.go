package ansitext_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansitext/ansitext"
)

func mustStr(t *testing.T, s string, directives ...any) ansitext.Str {
	t.Helper()
	str, err := ansitext.NewStr(s, directives...)
	require.NoError(t, err)
	return str
}

func TestStrZeroValue(t *testing.T) {
	var s ansitext.Str
	assert.Equal(t, "", s.String())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.SplitLines())
	up := s.ToUpper()
	assert.Equal(t, "", up.Plain())
}

func TestStrImmutability(t *testing.T) {
	s := mustStr(t, "hello", "red")
	before := s.String()

	up := s.ToUpper()
	bolded, err := s.With(0, 5, "bold")
	require.NoError(t, err)
	cleared, err := s.Cleared(0, 5)
	require.NoError(t, err)
	_ = s.Replace("hello", "bye", -1)
	_ = s.PadRight(10, '.', false)

	assert.Equal(t, before, s.String(), "operations must not touch the receiver")
	assert.Equal(t, "HELLO", up.Plain())
	assert.Equal(t, "\x1b[31;1mhello\x1b[0m", bolded.String())
	assert.Equal(t, "hello", cleared.String())
}

func TestStrWithAndSlice(t *testing.T) {
	s := mustStr(t, "This is an ANSI string")
	s, err := s.With(5, 11, "bold")
	require.NoError(t, err)
	assert.Equal(t, "This \x1b[1mis an \x1b[0mANSI string", s.String())

	part, err := s.Slice(6, 9)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1ms a\x1b[0m", part.String())

	_, err = s.With(5, 2, "bold")
	var rerr ansitext.RangeError
	require.ErrorAs(t, err, &rerr)
}

func TestStrLayer(t *testing.T) {
	s := mustStr(t, "0123456789", "red")
	s, err := s.WithLayer(ansitext.Topmost, 0, 4, "blue")
	require.NoError(t, err)
	assert.Equal(t, []string{"34"}, activeStrings(s.SettingsAt(0)))
	assert.Equal(t, []string{"31"}, activeStrings(s.SettingsAt(5)))
}

func TestStrConcat(t *testing.T) {
	a := mustStr(t, "foo", "red")
	b := mustStr(t, "bar", "bold")
	joined := a.Concat(b)
	assert.Equal(t, "foobar", joined.Plain())
	assert.Equal(t, a.String()+b.String(), joined.String())
	assert.Equal(t, "foo", a.Plain(), "concat leaves operands alone")
}

func TestStrJoin(t *testing.T) {
	sep := mustStr(t, "/")
	parts := []ansitext.Str{
		mustStr(t, "usr", "red"),
		mustStr(t, "local"),
		mustStr(t, "bin", "bold"),
	}
	joined := ansitext.JoinStr(sep, parts...)
	assert.Equal(t, "usr/local/bin", joined.Plain())
	assert.Equal(t, []string{"31"}, activeStrings(joined.SettingsAt(0)))
	assert.Empty(t, joined.SettingsAt(3))
	assert.Equal(t, []string{"1"}, activeStrings(joined.SettingsAt(10)))
}

func TestStrSplitAndTrim(t *testing.T) {
	s := mustStr(t, " a,b ", "bold")
	parts := s.TrimSpace().Split(",")
	require.Len(t, parts, 2)
	assert.Equal(t, "a", parts[0].Plain())
	assert.Equal(t, "b", parts[1].Plain())
	assert.Equal(t, []string{"1"}, activeStrings(parts[1].SettingsAt(0)))
}

func TestStrFormatMatching(t *testing.T) {
	s := mustStr(t, "err=42 ok=1")
	re := regexp.MustCompile(`\d+`)
	s, err := s.FormatMatching(re, "bold;red")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "31"}, activeStrings(s.SettingsAt(4)))
	assert.Empty(t, s.SettingsAt(0))

	s = s.UnformatMatching(regexp.MustCompile(`42`))
	assert.Empty(t, s.SettingsAt(4))
	assert.Equal(t, []string{"1", "31"}, activeStrings(s.SettingsAt(10)))
}

func TestStrSimplified(t *testing.T) {
	s := mustStr(t, "text", "red")
	s, err := s.With(0, 4, "blue")
	require.NoError(t, err)
	simple := s.Simplified()
	assert.True(t, s.Equal(simple))
	assert.Equal(t, "\x1b[34mtext\x1b[0m", simple.String())
}

func TestStrFormat(t *testing.T) {
	s := mustStr(t, "hi")
	got, err := s.Format("^6:bold")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m  hi  \x1b[0m", got)

	got, err = s.Format(" -^6:bold")
	require.NoError(t, err)
	assert.Equal(t, "  \x1b[1mhi\x1b[0m  ", got)
}

func TestStrTextCopies(t *testing.T) {
	s := mustStr(t, "abc", "red")
	txt := s.Text()
	txt.ToUpper()
	require.NoError(t, txt.Apply(0, 3, "bold"))
	assert.Equal(t, "abc", s.Plain())
	assert.Equal(t, []string{"31"}, activeStrings(s.SettingsAt(0)))
}
