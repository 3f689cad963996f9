package ansi

import (
	"fmt"
	"strings"
)

// DirectiveError reports a directive token that could not be parsed into
// Settings: an unknown name, a malformed function call, a bad numeric
// component, an empty code string, or an explicit reset.
type DirectiveError struct {
	Token  string
	Reason string
}

func (e *DirectiveError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("ansi: invalid directive %q", e.Token)
	}
	return fmt.Sprintf("ansi: invalid directive %q: %s", e.Token, e.Reason)
}

// ColorComponent selects which displayed component a color directive sets.
type ColorComponent uint8

// Color components addressable by the rgb and color256 directive functions.
const (
	Foreground ColorComponent = iota
	Background
	UnderlineColor
	DoubleUnderlineColor
)

// RGB builds the Settings applying a 24-bit color to the given component.
// The underline components expand to two settings: one enabling the
// underline style, one setting its color.
func RGB(c ColorComponent, r, g, b uint8) []Setting {
	switch c {
	case Background:
		return []Setting{newSetting([]int{CodeBGSet, 2, int(r), int(g), int(b)})}
	case UnderlineColor:
		return []Setting{
			newSetting([]int{CodeUnderline}),
			newSetting([]int{CodeULSet, 2, int(r), int(g), int(b)}),
		}
	case DoubleUnderlineColor:
		return []Setting{
			newSetting([]int{CodeDoubleUnderline}),
			newSetting([]int{CodeULSet, 2, int(r), int(g), int(b)}),
		}
	}
	return []Setting{newSetting([]int{CodeFGSet, 2, int(r), int(g), int(b)})}
}

// RGB24 is RGB taking the three components packed into one 24-bit value.
func RGB24(c ColorComponent, v int) ([]Setting, error) {
	if v < 0 || v > 0xFFFFFF {
		return nil, &DirectiveError{Token: fmt.Sprint(v), Reason: "rgb value out of 24-bit range"}
	}
	return RGB(c, uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Color256 builds the Settings applying an 8-bit indexed palette color to
// the given component.
func Color256(c ColorComponent, index uint8) []Setting {
	switch c {
	case Background:
		return []Setting{newSetting([]int{CodeBGSet, 5, int(index)})}
	case UnderlineColor:
		return []Setting{
			newSetting([]int{CodeUnderline}),
			newSetting([]int{CodeULSet, 5, int(index)}),
		}
	case DoubleUnderlineColor:
		return []Setting{
			newSetting([]int{CodeDoubleUnderline}),
			newSetting([]int{CodeULSet, 5, int(index)}),
		}
	}
	return []Setting{newSetting([]int{CodeFGSet, 5, int(index)})}
}

// ParseDirectives turns caller-supplied directive tokens into an ordered
// Setting sequence. A token may be a prebuilt Setting, a []Setting, a
// non-negative int code, a nested []any, or a string holding a directive
// name ("bold", "red"), a function call ("rgb(138,43,226)",
// "bg_color256(0xD6)"), a semicolon-separated code string ("01;31"), or a
// leading-"[" literal passed through verbatim as one opaque Setting.
// Any bad token fails the whole call; no partial results are returned.
func ParseDirectives(tokens ...any) ([]Setting, error) {
	var out []Setting
	var pending []int // consecutive int tokens group like a code string
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		ss, err := groupCodes(pending, true)
		if err != nil {
			return err
		}
		for _, s := range ss {
			if len(s.codes) > 0 && s.codes[0] == CodeReset {
				return &DirectiveError{Token: "0", Reason: "explicit reset is synthesized by rendering, not stored"}
			}
		}
		out = append(out, ss...)
		pending = nil
		return nil
	}
	for _, tok := range tokens {
		switch v := tok.(type) {
		case Setting:
			if err := flush(); err != nil {
				return nil, err
			}
			out = append(out, v)
		case []Setting:
			if err := flush(); err != nil {
				return nil, err
			}
			out = append(out, v...)
		case int:
			if v < 0 {
				return nil, &DirectiveError{Token: fmt.Sprint(v), Reason: "not a non-negative integer"}
			}
			pending = append(pending, v)
		case string:
			if err := flush(); err != nil {
				return nil, err
			}
			ss, err := parseDirectiveString(v)
			if err != nil {
				return nil, err
			}
			out = append(out, ss...)
		case []any:
			if err := flush(); err != nil {
				return nil, err
			}
			ss, err := ParseDirectives(v...)
			if err != nil {
				return nil, err
			}
			out = append(out, ss...)
		default:
			return nil, &DirectiveError{Token: fmt.Sprint(tok), Reason: fmt.Sprintf("unsupported token type %T", tok)}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

// parseDirectiveString handles one string token: a verbatim literal, or a
// semicolon-separated mix of names, function calls, and numeric codes.
func parseDirectiveString(text string) ([]Setting, error) {
	if strings.HasPrefix(text, "[") {
		return []Setting{Raw(text[1:])}, nil
	}
	var out []Setting
	var pending []int
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		ss, err := groupCodes(pending, true)
		if err != nil {
			return err
		}
		for _, s := range ss {
			if len(s.codes) > 0 && s.codes[0] == CodeReset {
				return &DirectiveError{Token: text, Reason: "explicit reset is synthesized by rendering, not stored"}
			}
		}
		out = append(out, ss...)
		pending = nil
		return nil
	}
	for _, part := range strings.Split(text, Sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if ss, ok := Named(part); ok {
			if err := flush(); err != nil {
				return nil, err
			}
			out = append(out, ss...)
			continue
		}
		if strings.ContainsRune(part, '(') {
			ss, err := parseDirectiveCall(part)
			if err != nil {
				return nil, err
			}
			if err := flush(); err != nil {
				return nil, err
			}
			out = append(out, ss...)
			continue
		}
		n, err := parseCodeInt(part)
		if err != nil {
			return nil, &DirectiveError{Token: part, Reason: "unknown name"}
		}
		pending = append(pending, n)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, &DirectiveError{Token: text, Reason: "empty code string"}
	}
	return out, nil
}

// parseDirectiveCall parses the rgb(...)/color256(...) function forms,
// including the fg_/bg_/ul_/dul_ prefixes and the British colour spelling.
func parseDirectiveCall(text string) ([]Setting, error) {
	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return nil, &DirectiveError{Token: text, Reason: "malformed function call"}
	}
	name := strings.ToLower(strings.TrimSpace(text[:open]))
	args := strings.Split(text[open+1:len(text)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	component := Foreground
	for _, pfx := range [...]struct {
		s string
		c ColorComponent
	}{{"dul_", DoubleUnderlineColor}, {"ul_", UnderlineColor}, {"bg_", Background}, {"fg_", Foreground}} {
		if strings.HasPrefix(name, pfx.s) {
			component = pfx.c
			name = name[len(pfx.s):]
			break
		}
	}

	switch name {
	case "rgb":
		switch len(args) {
		case 1:
			v, err := parseCodeInt(args[0])
			if err != nil {
				return nil, &DirectiveError{Token: text, Reason: "invalid rgb value"}
			}
			return RGB24(component, v)
		case 3:
			var comp [3]uint8
			for i, a := range args {
				v, err := parseCodeInt(a)
				if err != nil || v > 0xFF {
					return nil, &DirectiveError{Token: text, Reason: "invalid rgb component"}
				}
				comp[i] = uint8(v)
			}
			return RGB(component, comp[0], comp[1], comp[2]), nil
		}
		return nil, &DirectiveError{Token: text, Reason: "rgb takes one 24-bit value or three 8-bit components"}
	case "color256", "colour256":
		if len(args) != 1 {
			return nil, &DirectiveError{Token: text, Reason: "color256 takes one 8-bit value"}
		}
		v, err := parseCodeInt(args[0])
		if err != nil || v > 0xFF {
			return nil, &DirectiveError{Token: text, Reason: "invalid color256 value"}
		}
		return Color256(component, uint8(v)), nil
	}
	return nil, &DirectiveError{Token: text, Reason: "malformed function call"}
}
