package ansi

import (
	"strconv"
	"strings"
)

// Control sequence framing bytes.
const (
	Escape = "\x1b"  // the escape introducer
	CSI    = "\x1b[" // control sequence introducer
	Sep    = ";"     // SGR parameter separator
	SGREnd = 'm'     // SGR terminator byte
)

// termMin and termMax bound the byte range that terminates a control
// sequence; any such byte inside a stored parameter string would end the
// escape early when rendered.
const (
	termMin = 0x40
	termMax = 0x7E
)

// Setting is one formatting directive: the ordered SGR parameter codes it
// renders to, plus the attribute category those codes affect. Settings are
// immutable once constructed; the category is derived at construction and
// never recomputed.
type Setting struct {
	cat   Category
	text  string
	codes []int
	valid bool
}

// Raw wraps arbitrary parameter text verbatim into an opaque Setting. The
// result never fails validation beyond the Valid flag: text containing a
// sequence-terminator byte renders broken output and is the caller's
// responsibility.
func Raw(text string) Setting {
	return Setting{cat: Unknown, text: text, codes: intsOf(text), valid: textValid(text)}
}

// RawCodes builds an opaque Setting from literal parameter codes.
func RawCodes(codes ...int) Setting {
	return Raw(joinCodes(codes))
}

// newSetting builds a Setting from one group of parameter codes, deriving
// its category from the leading code.
func newSetting(codes []int) Setting {
	cat, eff := codeEffect(codes[0])
	if eff != effApply && eff != effClear {
		cat = Unknown
	}
	return Setting{cat: cat, text: joinCodes(codes), codes: codes, valid: true}
}

// Category returns the attribute group this setting affects; Unknown for
// opaque settings, which never compete with known ones.
func (s Setting) Category() Category { return s.cat }

// Codes returns the numeric parameter codes, or nil if any parameter is not
// a plain non-negative integer.
func (s Setting) Codes() []int {
	if s.codes == nil {
		return nil
	}
	out := make([]int, len(s.codes))
	copy(out, s.codes)
	return out
}

// Valid reports whether rendering this setting cannot terminate its escape
// sequence early.
func (s Setting) Valid() bool { return s.valid }

// Optimizable reports whether the setting participates in per-category
// conflict resolution and run merging.
func (s Setting) Optimizable() bool { return s.cat != Unknown }

// String returns the SGR parameter text of the setting.
func (s Setting) String() string { return s.text }

// Equal reports whether two settings render identical parameter text.
func (s Setting) Equal(other Setting) bool { return s.text == other.text }

func textValid(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= termMin && text[i] <= termMax {
			return false
		}
	}
	return text != ""
}

func joinCodes(codes []int) string {
	var sb strings.Builder
	for i, c := range codes {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

// intsOf parses parameter text into codes, returning nil if any component
// is not a plain non-negative decimal integer.
func intsOf(text string) []int {
	parts := strings.Split(text, Sep)
	codes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil
		}
		codes = append(codes, n)
	}
	return codes
}

// groupCodes splits a flat SGR parameter list into Settings, keeping the
// multi-parameter color functions (38;5;n, 38;2;r;g;b and the 48/58
// counterparts) together as single settings. In strict mode a malformed or
// truncated color function is an error; otherwise the dangling codes become
// one opaque setting, mirroring how foreign input is tolerated.
func groupCodes(codes []int, strict bool) ([]Setting, error) {
	var out []Setting
	for i := 0; i < len(codes); {
		c := codes[i]
		if isColorFn(c) {
			if i+1 < len(codes) {
				if n := colorFnArgs(codes[i+1]); n >= 0 && i+2+n <= len(codes) {
					out = append(out, newSetting(codes[i:i+2+n]))
					i += 2 + n
					continue
				}
			}
			if strict {
				return nil, &DirectiveError{Token: joinCodes(codes[i:])}
			}
			out = append(out, RawCodes(codes[i:]...))
			break
		}
		out = append(out, newSetting(codes[i:i+1]))
		i++
	}
	return out, nil
}

// ParseCodes parses a semicolon-separated SGR parameter string ("01;31")
// into one or more Settings. Components may be decimal or 0x-prefixed hex
// and must be non-negative; an explicit reset (0) is rejected since resets
// are synthesized during rendering, never stored.
func ParseCodes(text string) ([]Setting, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &DirectiveError{Token: text, Reason: "empty code string"}
	}
	parts := strings.Split(text, Sep)
	codes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := parseCodeInt(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		codes = append(codes, n)
	}
	out, err := groupCodes(codes, true)
	if err != nil {
		return nil, err
	}
	for _, s := range out {
		if len(s.codes) > 0 && s.codes[0] == CodeReset {
			return nil, &DirectiveError{Token: text, Reason: "explicit reset is synthesized by rendering, not stored"}
		}
	}
	return out, nil
}

// parseCodeInt applies the shared numeric rule: 0x prefix means hex, plain
// digits mean decimal, and negative values are invalid.
func parseCodeInt(text string) (int, error) {
	base := 10
	digits := text
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		base = 16
		digits = text[2:]
	}
	n, err := strconv.ParseInt(digits, base, 32)
	if err != nil || n < 0 {
		return 0, &DirectiveError{Token: text, Reason: "not a non-negative integer"}
	}
	return int(n), nil
}
