package ansi

import "strings"

// Run is a maximal stretch of decoded text over which one set of graphic
// settings is in effect. Pos is measured in bytes into the plain text.
type Run struct {
	Pos    int
	Text   string
	Active []Setting
}

// Control is a decoded non-graphic control sequence, anchored to the byte
// position in the plain text where it occurred.
type Control struct {
	Pos    int
	Params string
	Final  byte
}

// Decoded is the result of decoding a formatted string: its plain text, the
// styled runs covering that text, and any non-graphic control sequences
// found along the way. Complete is false when the input ended inside an
// unterminated escape sequence; the dangling introducer is kept as plain
// text in that case.
type Decoded struct {
	Runs     []Run
	Controls []Control
	Plain    string
	Complete bool
}

// DecodeText decodes a string that may contain ANSI escape sequences.
// Malformed sequences are tolerated: unrecognized graphic codes are carried
// through opaquely, and anything that is not a proper CSI sequence is kept
// as plain text.
func DecodeText(s string) Decoded {
	d := Decoded{Complete: true}
	var plain strings.Builder
	var active []Setting
	runStart := 0
	flush := func() {
		if plain.Len() > runStart {
			text := plain.String()[runStart:]
			d.Runs = append(d.Runs, Run{
				Pos:    runStart,
				Text:   text,
				Active: copySettings(active),
			})
			runStart = plain.Len()
		}
	}
	for i := 0; i < len(s); {
		esc := strings.Index(s[i:], Escape)
		if esc < 0 {
			plain.WriteString(s[i:])
			break
		}
		plain.WriteString(s[i : i+esc])
		i += esc
		params, final, n := scanCSI(s[i:])
		if n == 0 {
			if strings.HasPrefix(s[i:], CSI) {
				// Unterminated sequence; keep the tail as plain text.
				d.Complete = false
				plain.WriteString(s[i:])
				break
			}
			// Lone escape byte; keep it verbatim. At the end of input it
			// may be the start of a truncated sequence.
			if i+1 == len(s) {
				d.Complete = false
			}
			plain.WriteString(s[i : i+1])
			i++
			continue
		}
		i += n
		if final == SGREnd {
			flush()
			active = mergeParams(active, params)
			continue
		}
		flush()
		d.Controls = append(d.Controls, Control{
			Pos:    plain.Len(),
			Params: params,
			Final:  final,
		})
	}
	flush()
	d.Plain = plain.String()
	return d
}

// scanCSI scans a CSI sequence at the start of s, returning its parameter
// bytes, final byte, and total length consumed. It returns n=0 when s does
// not begin with a complete CSI sequence.
func scanCSI(s string) (params string, final byte, n int) {
	if !strings.HasPrefix(s, CSI) {
		return "", 0, 0
	}
	for j := len(CSI); j < len(s); j++ {
		if c := s[j]; c >= termMin && c <= termMax {
			return s[len(CSI):j], c, j + 1
		}
	}
	return "", 0, 0
}

// mergeParams folds one SGR parameter string into an active setting list:
// a reset clears everything, a recognized code replaces or removes its
// category, and unrecognized codes accumulate opaquely.
func mergeParams(active []Setting, params string) []Setting {
	if params == "" {
		return nil
	}
	codes := intsOf(params)
	if codes == nil {
		return mergeSetting(active, Raw(params))
	}
	groups, _ := groupCodes(codes, false)
	for _, g := range groups {
		if len(g.codes) > 0 && g.codes[0] == CodeReset {
			active = active[:0]
			continue
		}
		active = mergeSetting(active, g)
	}
	return active
}

func mergeSetting(active []Setting, s Setting) []Setting {
	if cat, eff := s.cat, settingEffect(s); cat != Unknown {
		active = removeCategory(active, cat)
		if eff == effApply {
			active = append(active, s)
		}
		return active
	}
	for _, have := range active {
		if have.text == s.text {
			return active
		}
	}
	return append(active, s)
}

func settingEffect(s Setting) effect {
	if len(s.codes) == 0 {
		return effNone
	}
	_, eff := codeEffect(s.codes[0])
	return eff
}

func removeCategory(active []Setting, cat Category) []Setting {
	out := active[:0]
	for _, s := range active {
		if s.cat != cat {
			out = append(out, s)
		}
	}
	return out
}

func copySettings(settings []Setting) []Setting {
	if len(settings) == 0 {
		return nil
	}
	out := make([]Setting, len(settings))
	copy(out, settings)
	return out
}
