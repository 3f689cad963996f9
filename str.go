package ansitext

import (
	"regexp"

	"github.com/ansitext/ansitext/ansi"
)

// Str is immutable formatted text. Every operation returns a new value,
// leaving the receiver untouched, so a Str may be shared freely. The zero
// Str is empty and ready to use.
type Str struct {
	t *Text
}

// NewStr decodes a string that may contain ANSI escape sequences and
// applies any further formatting directives to the whole of it.
func NewStr(s string, directives ...any) (Str, error) {
	t, err := New(s, directives...)
	if err != nil {
		return Str{}, err
	}
	return Str{t}, nil
}

// StrOf wraps a Text without copying; the Text must not be mutated after.
func StrOf(t *Text) Str { return Str{t} }

func (s Str) text() *Text {
	if s.t == nil {
		return &Text{complete: true}
	}
	return s.t
}

func (s Str) mutate(f func(t *Text)) Str {
	t := s.text().Copy()
	f(t)
	return Str{t}
}

func (s Str) String() string   { return s.text().String() }
func (s Str) Plain() string    { return s.text().Plain() }
func (s Str) Len() int         { return s.text().Len() }
func (s Str) Width() int       { return s.text().Width() }
func (s Str) Complete() bool   { return s.text().Complete() }
func (s Str) Equal(o Str) bool { return s.text().Equal(o.text()) }

// Text returns a mutable copy.
func (s Str) Text() *Text { return s.text().Copy() }

// SettingsAt resolves the settings in effect at a byte offset.
func (s Str) SettingsAt(pos int) []ansi.Setting { return s.text().SettingsAt(pos) }

// Find returns the maximal spans over which pred holds for at least one
// resolved active setting.
func (s Str) Find(pred func(ansi.Setting) bool) []Span { return s.text().Find(pred) }

// FindSetting returns the coalesced spans where the given setting is in
// effect after resolution.
func (s Str) FindSetting(setting ansi.Setting) []Span { return s.text().FindSetting(setting) }

// FindSettings returns the coalesced spans where all of the given settings
// are simultaneously in effect after resolution.
func (s Str) FindSettings(settings ...ansi.Setting) []Span {
	return s.text().FindSettings(settings...)
}

// With returns a copy with directives applied to [start, end) on the top
// layer, so the new settings win over anything already covering that text.
func (s Str) With(start, end int, directives ...any) (Str, error) {
	return s.withLayer(Topmost, start, end, directives...)
}

// WithLayer returns a copy with directives applied to [start, end) on the
// given layer.
func (s Str) WithLayer(layer Layer, start, end int, directives ...any) (Str, error) {
	return s.withLayer(layer, start, end, directives...)
}

func (s Str) withLayer(layer Layer, start, end int, directives ...any) (Str, error) {
	t := s.text().Copy()
	if err := t.ApplyLayer(layer, start, end, directives...); err != nil {
		return s, err
	}
	return Str{t}, nil
}

// Cleared returns a copy with all formatting removed from [start, end).
func (s Str) Cleared(start, end int) (Str, error) {
	t := s.text().Copy()
	if err := t.Clear(start, end); err != nil {
		return s, err
	}
	return Str{t}, nil
}

// Slice returns [start, end) with its formatting, rebased to offset zero.
func (s Str) Slice(start, end int) (Str, error) {
	t, err := s.text().Slice(start, end)
	if err != nil {
		return s, err
	}
	return Str{t}, nil
}

// Concat returns the concatenation of s and the given strings.
func (s Str) Concat(others ...Str) Str {
	return s.mutate(func(t *Text) {
		for _, o := range others {
			t.Concat(o.text())
		}
	})
}

// JoinStr concatenates parts with sep between each pair.
func JoinStr(sep Str, parts ...Str) Str {
	ts := make([]*Text, len(parts))
	for i, p := range parts {
		ts[i] = p.text()
	}
	return Str{Join(sep.text(), ts...)}
}

// Replace returns a copy with at most n occurrences of old replaced by new;
// n < 0 means all.
func (s Str) Replace(old, new string, n int) Str {
	return s.mutate(func(t *Text) { t.Replace(old, new, n) })
}

// Split divides the text around each occurrence of sep, which is not kept.
func (s Str) Split(sep string) []Str {
	return wrapAll(s.text().Split(sep))
}

// SplitLines divides the text at newlines, dropping the line breaks.
func (s Str) SplitLines() []Str {
	return wrapAll(s.text().SplitLines())
}

func wrapAll(ts []*Text) []Str {
	out := make([]Str, len(ts))
	for i, t := range ts {
		out[i] = Str{t}
	}
	return out
}

func (s Str) ToUpper() Str    { return s.mutate((*Text).ToUpper) }
func (s Str) ToLower() Str    { return s.mutate((*Text).ToLower) }
func (s Str) Capitalize() Str { return s.mutate((*Text).Capitalize) }
func (s Str) SwapCase() Str   { return s.mutate((*Text).SwapCase) }

func (s Str) Trim(cutset string) Str {
	return s.mutate(func(t *Text) { t.Trim(cutset) })
}

func (s Str) TrimLeft(cutset string) Str {
	return s.mutate(func(t *Text) { t.TrimLeft(cutset) })
}

func (s Str) TrimRight(cutset string) Str {
	return s.mutate(func(t *Text) { t.TrimRight(cutset) })
}

func (s Str) TrimSpace() Str { return s.mutate((*Text).TrimSpace) }

func (s Str) RemovePrefix(prefix string) Str {
	return s.mutate(func(t *Text) { t.RemovePrefix(prefix) })
}

func (s Str) RemoveSuffix(suffix string) Str {
	return s.mutate(func(t *Text) { t.RemoveSuffix(suffix) })
}

func (s Str) ExpandTabs(tabSize int) Str {
	return s.mutate(func(t *Text) { t.ExpandTabs(tabSize) })
}

func (s Str) PadLeft(width int, fill rune, extend bool) Str {
	return s.mutate(func(t *Text) { t.PadLeft(width, fill, extend) })
}

func (s Str) PadRight(width int, fill rune, extend bool) Str {
	return s.mutate(func(t *Text) { t.PadRight(width, fill, extend) })
}

func (s Str) Center(width int, fill rune, extend bool) Str {
	return s.mutate(func(t *Text) { t.Center(width, fill, extend) })
}

// Format renders per a format specifier; see [Text.Format].
func (s Str) Format(spec string) (string, error) {
	return s.text().Format(spec)
}

// FormatMatching returns a copy with directives applied to every
// non-overlapping match of re.
func (s Str) FormatMatching(re *regexp.Regexp, directives ...any) (Str, error) {
	t := s.text().Copy()
	if err := t.FormatMatching(re, directives...); err != nil {
		return s, err
	}
	return Str{t}, nil
}

// UnformatMatching returns a copy with formatting cleared from every
// non-overlapping match of re.
func (s Str) UnformatMatching(re *regexp.Regexp) Str {
	return s.mutate(func(t *Text) { t.UnformatMatching(re) })
}

// Simplified returns a copy with its formatting reduced to the minimal
// equivalent set of ranges.
func (s Str) Simplified() Str { return s.mutate((*Text).Simplify) }
