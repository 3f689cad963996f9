package ansitext

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/ansitext/ansitext/ansi"
)

// Text is mutable formatted text: a plain string plus the formatting ranges
// covering it. All positions are byte offsets into the plain text, as with
// the strings package.
//
// Formatting is kept out-of-band until rendered, so edits never have to
// reparse escape sequences and overlapping styles resolve by layer and
// application order rather than by splicing codes into the string.
type Text struct {
	plain    string
	complete bool
	store
}

// New decodes a string that may already contain ANSI escape sequences and
// applies any further formatting directives to the whole of it. See
// [ansi.ParseDirectives] for the directive forms accepted.
func New(s string, directives ...any) (*Text, error) {
	d := ansi.DecodeText(s)
	t := &Text{plain: d.Plain, complete: d.Complete}
	runs := make([]run, len(d.Runs))
	for i, r := range d.Runs {
		runs[i] = run{Span{r.Pos, r.Pos + len(r.Text)}, r.Active}
	}
	t.rebuild(runs)
	if len(directives) > 0 {
		if err := t.Apply(0, len(t.plain), directives...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// String renders the text with its formatting encoded as ANSI escape
// sequences. Every styled run ends with a full reset before the next
// sequence, so concatenating two rendered strings is equivalent to
// rendering the concatenation.
func (t *Text) String() string {
	return string(render(nil, t.plain, t.runs(len(t.plain))))
}

// Plain returns the text without any formatting.
func (t *Text) Plain() string { return t.plain }

// Len is the length of the plain text in bytes.
func (t *Text) Len() int { return len(t.plain) }

// Width is the number of terminal columns the plain text occupies.
func (t *Text) Width() int { return displayWidth(t.plain) }

// Complete reports whether the decoded input was free of truncated escape
// sequences. A dangling sequence introducer is kept as plain text and
// flagged here rather than treated as an error.
func (t *Text) Complete() bool { return t.complete }

// clampSpan clamps both bounds to [0, len]; only an inverted request can
// survive clamping as invalid.
func (t *Text) clampSpan(start, end int) (Span, error) {
	if end < start {
		return Span{}, RangeError{start, end, len(t.plain)}
	}
	sp := Span{Start: start, End: end}
	if sp.Start < 0 {
		sp.Start = 0
	}
	if sp.Start > len(t.plain) {
		sp.Start = len(t.plain)
	}
	if sp.End < 0 {
		sp.End = 0
	}
	if sp.End > len(t.plain) {
		sp.End = len(t.plain)
	}
	return sp, nil
}

// Apply formats [start, end) with the given directives on the top layer,
// so the new settings win over anything already covering that text.
func (t *Text) Apply(start, end int, directives ...any) error {
	return t.ApplyLayer(Topmost, start, end, directives...)
}

// ApplyLayer formats [start, end) on the given layer. Topmost ranges win
// over Bottommost ones wherever they overlap in the same category,
// regardless of application order.
func (t *Text) ApplyLayer(layer Layer, start, end int, directives ...any) error {
	sp, err := t.clampSpan(start, end)
	if err != nil {
		return err
	}
	settings, err := ansi.ParseDirectives(directives...)
	if err != nil {
		return err
	}
	for _, s := range settings {
		t.add(sp, s, layer)
	}
	return nil
}

// Clear removes all formatting from [start, end), splitting ranges that
// straddle the span's edges.
func (t *Text) Clear(start, end int) error {
	sp, err := t.clampSpan(start, end)
	if err != nil {
		return err
	}
	t.clearSpan(sp)
	return nil
}

// ClearAll removes all formatting.
func (t *Text) ClearAll() { t.clearAll() }

// SettingsAt resolves the settings in effect at a byte offset.
func (t *Text) SettingsAt(pos int) []ansi.Setting {
	if pos < 0 || pos >= len(t.plain) {
		return nil
	}
	return t.activeAt(pos)
}

// RangesAt returns every formatting range covering a byte offset, resolved
// or not, in application order.
func (t *Text) RangesAt(pos int) []Range {
	var out []Range
	for _, r := range t.ranges {
		if r.Contains(pos) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Ranges returns a copy of all formatting ranges in application order.
func (t *Text) Ranges() []Range {
	out := make([]Range, len(t.ranges))
	copy(out, t.ranges)
	sort.SliceStable(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Find returns the maximal spans over which pred holds for at least one
// resolved active setting, coalescing adjacent qualifying runs.
func (t *Text) Find(pred func(ansi.Setting) bool) []Span {
	var out []Span
	for _, r := range t.runs(len(t.plain)) {
		hit := false
		for _, s := range r.active {
			if pred(s) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		if n := len(out); n > 0 && out[n-1].End == r.Start {
			out[n-1].End = r.End
			continue
		}
		out = append(out, r.Span)
	}
	return out
}

// FindSetting returns the coalesced spans where the given setting is in
// effect after resolution.
func (t *Text) FindSetting(s ansi.Setting) []Span {
	return t.Find(func(have ansi.Setting) bool { return have.Equal(s) })
}

// FindSettings returns the coalesced spans where all of the given settings
// are simultaneously in effect after resolution.
func (t *Text) FindSettings(settings ...ansi.Setting) []Span {
	var out []Span
	for _, r := range t.runs(len(t.plain)) {
		all := true
		for _, s := range settings {
			if !settingIn(r.active, s) {
				all = false
				break
			}
		}
		if !all {
			continue
		}
		if n := len(out); n > 0 && out[n-1].End == r.Start {
			out[n-1].End = r.End
			continue
		}
		out = append(out, r.Span)
	}
	return out
}

// Insert splices other into the text at byte offset at, carrying its
// formatting along. Ranges straddling the insertion point grow over the
// inserted text.
func (t *Text) Insert(at int, other *Text) error {
	sp, err := t.clampSpan(at, at)
	if err != nil {
		return err
	}
	at = sp.Start
	t.store.insert(at, len(other.plain), false)
	t.store.concat(other.store, at)
	t.plain = t.plain[:at] + other.plain + t.plain[at:]
	t.complete = t.complete && other.complete
	return nil
}

// InsertString decodes s and inserts it at byte offset at.
func (t *Text) InsertString(at int, s string, directives ...any) error {
	other, err := New(s, directives...)
	if err != nil {
		return err
	}
	return t.Insert(at, other)
}

// insertPlain splices unformatted text at byte offset at. When extend is
// set, formatting that touches the insertion point grows over the new text.
func (t *Text) insertPlain(at int, s string, extend bool) {
	t.store.insert(at, len(s), extend)
	t.plain = t.plain[:at] + s + t.plain[at:]
}

// Delete removes [start, end) from the text. Ranges falling entirely inside
// the span disappear; others shrink around it.
func (t *Text) Delete(start, end int) error {
	sp, err := t.clampSpan(start, end)
	if err != nil {
		return err
	}
	t.store.delete(sp)
	t.plain = t.plain[:sp.Start] + t.plain[sp.End:]
	return nil
}

// Replace substitutes occurrences of old in the plain text with new,
// keeping surrounding formatting: ranges that extend past a match shrink
// around the replacement, which then inherits from any range still
// straddling it. At most n occurrences are replaced; n < 0 means all.
// It returns the number of replacements made.
func (t *Text) Replace(old, new string, n int) int {
	if old == "" {
		return 0
	}
	count := 0
	from := 0
	for n < 0 || count < n {
		i := strings.Index(t.plain[from:], old)
		if i < 0 {
			break
		}
		i += from
		t.store.delete(Span{i, i + len(old)})
		t.store.insert(i, len(new), false)
		t.plain = t.plain[:i] + new + t.plain[i+len(old):]
		from = i + len(new)
		count++
	}
	return count
}

// Slice copies [start, end) with its formatting, rebased to offset zero.
func (t *Text) Slice(start, end int) (*Text, error) {
	sp, err := t.clampSpan(start, end)
	if err != nil {
		return nil, err
	}
	return &Text{
		plain:    t.plain[sp.Start:sp.End],
		complete: t.complete,
		store:    t.sliceCopy(sp),
	}, nil
}

// Concat appends other texts, offsetting their formatting past this one's.
func (t *Text) Concat(others ...*Text) {
	for _, other := range others {
		t.store.concat(other.store, len(t.plain))
		t.plain += other.plain
		t.complete = t.complete && other.complete
	}
}

// Join concatenates parts with sep between each pair, copying every
// part's formatting. The operands are left untouched.
func Join(sep *Text, parts ...*Text) *Text {
	out := &Text{complete: true}
	for i, p := range parts {
		if i > 0 {
			out.Concat(sep)
		}
		out.Concat(p)
	}
	return out
}

// Append decodes s and concatenates it.
func (t *Text) Append(s string, directives ...any) error {
	other, err := New(s, directives...)
	if err != nil {
		return err
	}
	t.Concat(other)
	return nil
}

// Split divides the text around each occurrence of sep, which is not kept.
func (t *Text) Split(sep string) []*Text {
	if sep == "" {
		return []*Text{t.Copy()}
	}
	var out []*Text
	start := 0
	for {
		i := strings.Index(t.plain[start:], sep)
		if i < 0 {
			break
		}
		part, _ := t.Slice(start, start+i)
		out = append(out, part)
		start += i + len(sep)
	}
	part, _ := t.Slice(start, len(t.plain))
	return append(out, part)
}

// SplitLines divides the text at newlines, dropping the line breaks. A
// trailing newline does not produce an empty final line.
func (t *Text) SplitLines() []*Text {
	var out []*Text
	start := 0
	for i := 0; i < len(t.plain); i++ {
		if t.plain[i] != '\n' {
			continue
		}
		end := i
		if end > start && t.plain[end-1] == '\r' {
			end--
		}
		part, _ := t.Slice(start, end)
		out = append(out, part)
		start = i + 1
	}
	if start < len(t.plain) {
		part, _ := t.Slice(start, len(t.plain))
		out = append(out, part)
	}
	return out
}

// Trim removes leading and trailing bytes in cutset.
func (t *Text) Trim(cutset string) {
	t.TrimRight(cutset)
	t.TrimLeft(cutset)
}

// TrimLeft removes leading bytes in cutset.
func (t *Text) TrimLeft(cutset string) {
	n := len(t.plain) - len(strings.TrimLeft(t.plain, cutset))
	if n > 0 {
		t.Delete(0, n)
	}
}

// TrimRight removes trailing bytes in cutset.
func (t *Text) TrimRight(cutset string) {
	keep := len(strings.TrimRight(t.plain, cutset))
	if keep < len(t.plain) {
		t.Delete(keep, len(t.plain))
	}
}

// TrimSpace removes leading and trailing white space.
func (t *Text) TrimSpace() { t.Trim(" \t\n\v\f\r") }

// RemovePrefix removes prefix from the plain text if present.
func (t *Text) RemovePrefix(prefix string) bool {
	if prefix == "" || !strings.HasPrefix(t.plain, prefix) {
		return false
	}
	t.Delete(0, len(prefix))
	return true
}

// RemoveSuffix removes suffix from the plain text if present.
func (t *Text) RemoveSuffix(suffix string) bool {
	if suffix == "" || !strings.HasSuffix(t.plain, suffix) {
		return false
	}
	t.Delete(len(t.plain)-len(suffix), len(t.plain))
	return true
}

// mapReplace rewrites the plain text rune by rune, remapping range
// endpoints through the new byte offsets. A replacement may be any length,
// so formatting stretches or shrinks with the text it covers.
func (t *Text) mapReplace(f func(i int, r rune) string) {
	var b strings.Builder
	oldOffs := make([]int, 0, len(t.plain)+1)
	newOffs := make([]int, 0, len(t.plain)+1)
	i := 0
	for pos, r := range t.plain {
		oldOffs = append(oldOffs, pos)
		newOffs = append(newOffs, b.Len())
		b.WriteString(f(i, r))
		i++
	}
	oldOffs = append(oldOffs, len(t.plain))
	newOffs = append(newOffs, b.Len())
	t.store.translate(func(pos int) int {
		j := sort.SearchInts(oldOffs, pos)
		if j >= len(newOffs) {
			return newOffs[len(newOffs)-1]
		}
		return newOffs[j]
	})
	t.plain = b.String()
}

// ToUpper uppercases the plain text, keeping formatting aligned.
func (t *Text) ToUpper() {
	t.mapReplace(func(_ int, r rune) string { return string(unicode.ToUpper(r)) })
}

// ToLower lowercases the plain text, keeping formatting aligned.
func (t *Text) ToLower() {
	t.mapReplace(func(_ int, r rune) string { return string(unicode.ToLower(r)) })
}

// Capitalize uppercases the first rune and lowercases the rest.
func (t *Text) Capitalize() {
	t.mapReplace(func(i int, r rune) string {
		if i == 0 {
			return string(unicode.ToUpper(r))
		}
		return string(unicode.ToLower(r))
	})
}

// SwapCase inverts the case of every rune.
func (t *Text) SwapCase() {
	t.mapReplace(func(_ int, r rune) string {
		switch {
		case unicode.IsUpper(r):
			return string(unicode.ToLower(r))
		case unicode.IsLower(r):
			return string(unicode.ToUpper(r))
		}
		return string(r)
	})
}

// ExpandTabs replaces each tab with spaces up to the next multiple of
// tabSize columns. Formatting covering a tab stretches over the spaces
// replacing it. A tabSize of zero or less removes tabs.
func (t *Text) ExpandTabs(tabSize int) {
	col := 0
	t.mapReplace(func(_ int, r rune) string {
		switch r {
		case '\t':
			if tabSize <= 0 {
				return ""
			}
			n := tabSize - col%tabSize
			col += n
			return strings.Repeat(" ", n)
		case '\n', '\r':
			col = 0
		default:
			col += runewidth.RuneWidth(r)
		}
		return string(r)
	})
}

// PadLeft pads the text on the left with fill until it occupies width
// columns. When extend is set, formatting starting at the first byte grows
// back over the padding.
func (t *Text) PadLeft(width int, fill rune, extend bool) {
	n, _ := padCounts('>', t.Width(), width, runewidth.RuneWidth(fill))
	if n > 0 {
		t.insertPlain(0, strings.Repeat(string(fill), n), extend)
	}
}

// PadRight pads the text on the right with fill until it occupies width
// columns. When extend is set, formatting ending at the last byte grows
// over the padding.
func (t *Text) PadRight(width int, fill rune, extend bool) {
	_, n := padCounts('<', t.Width(), width, runewidth.RuneWidth(fill))
	if n > 0 {
		t.insertPlain(len(t.plain), strings.Repeat(string(fill), n), extend)
	}
}

// Center pads the text on both sides with fill until it occupies width
// columns, preferring the right side for an odd remainder.
func (t *Text) Center(width int, fill rune, extend bool) {
	left, right := padCounts('^', t.Width(), width, runewidth.RuneWidth(fill))
	if right > 0 {
		t.insertPlain(len(t.plain), strings.Repeat(string(fill), right), extend)
	}
	if left > 0 {
		t.insertPlain(0, strings.Repeat(string(fill), left), extend)
	}
}

// Format renders the text per a format specifier of the form
// [[fill][+|-]align][width][:directives]. Directives apply to the whole
// text; by default the fill inherits them along with any formatting
// reaching the text's edges, and a "-" after the fill leaves the fill
// unformatted instead.
func (t *Text) Format(spec string) (string, error) {
	fs, err := parseFormatSpec(spec)
	if err != nil {
		return "", err
	}
	c := t.Copy()
	apply := func() error {
		if fs.directives == "" {
			return nil
		}
		return c.Apply(0, len(c.plain), fs.directives)
	}
	if !fs.extend {
		if err := apply(); err != nil {
			return "", err
		}
	}
	switch fs.align {
	case '>':
		c.PadLeft(fs.width, fs.fill, fs.extend)
	case '^':
		c.Center(fs.width, fs.fill, fs.extend)
	default:
		c.PadRight(fs.width, fs.fill, fs.extend)
	}
	if fs.extend {
		if err := apply(); err != nil {
			return "", err
		}
	}
	return c.String(), nil
}

// FormatMatching applies directives to every non-overlapping match of re.
func (t *Text) FormatMatching(re *regexp.Regexp, directives ...any) error {
	settings, err := ansi.ParseDirectives(directives...)
	if err != nil {
		return err
	}
	for _, m := range re.FindAllStringIndex(t.plain, -1) {
		for _, s := range settings {
			t.add(Span{m[0], m[1]}, s, Topmost)
		}
	}
	return nil
}

// UnformatMatching clears formatting from every non-overlapping match of re.
func (t *Text) UnformatMatching(re *regexp.Regexp) {
	for _, m := range re.FindAllStringIndex(t.plain, -1) {
		t.clearSpan(Span{m[0], m[1]})
	}
}

// MapSettings replaces every range's setting with f applied to it, dropping
// ranges whose replacement is invalid. Useful for palette quantization and
// other whole-text rewrites.
func (t *Text) MapSettings(f func(ansi.Setting) ansi.Setting) {
	out := t.ranges[:0]
	for _, r := range t.ranges {
		r.Setting = f(r.Setting)
		if r.Setting.Valid() {
			out = append(out, r)
		}
	}
	t.ranges = out
}

// Simplify rewrites the formatting as the minimal equivalent set of
// bottom-layer ranges: shadowed ranges disappear and adjacent equal spans
// merge. Rendering is unchanged.
func (t *Text) Simplify() {
	t.simplify(len(t.plain))
}

// Copy returns an independent copy of the text and its formatting.
func (t *Text) Copy() *Text {
	return &Text{plain: t.plain, complete: t.complete, store: t.clone()}
}

// Equal reports whether two texts have the same plain text and resolve to
// the same formatting everywhere.
func (t *Text) Equal(other *Text) bool {
	if t.plain != other.plain {
		return false
	}
	a, b := t.runs(len(t.plain)), other.runs(len(other.plain))
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Span != b[i].Span || !settingsEqual(a[i].active, b[i].active) {
			return false
		}
	}
	return true
}
