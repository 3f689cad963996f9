package ansitext

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/ansitext/ansitext/ansi"
)

// formatSpec is a parsed format specifier:
//
//	[[fill][+|-]align][width][:directives]
//
// where align is one of "<", ">", "^" and width is a decimal column count.
// Directives are applied to the whole text. A "+" (the default) extends
// formatting over the fill; "-" leaves the fill unformatted. A bare width
// left-justifies with spaces.
type formatSpec struct {
	fill       rune
	align      byte
	extend     bool
	width      int
	directives string
}

var (
	// The layout part is matched greedily so that ":" may serve as a fill
	// character ahead of the ":directives" separator.
	splitSpecRe = regexp.MustCompile(`^(.?[-+]?[<>^]?[0-9]*)(:.*)?$`)
	alignSpecRe = regexp.MustCompile(`^(.?)([+-]?)([<>^])([0-9]*)$`)
	widthSpecRe = regexp.MustCompile(`^[0-9]*$`)
)

func parseFormatSpec(spec string) (formatSpec, error) {
	fs := formatSpec{fill: ' ', align: '<', extend: true}
	sm := splitSpecRe.FindStringSubmatch(spec)
	if sm == nil {
		return fs, &ansi.DirectiveError{Token: spec, Reason: "invalid format specifier"}
	}
	rest := sm[1]
	if sm[2] != "" {
		fs.directives = sm[2][1:]
	}
	if m := alignSpecRe.FindStringSubmatch(rest); m != nil {
		if m[1] != "" {
			fs.fill, _ = utf8.DecodeRuneInString(m[1])
		}
		fs.extend = m[2] != "-"
		fs.align = m[3][0]
		rest = m[4]
	} else if !widthSpecRe.MatchString(rest) {
		return fs, &ansi.DirectiveError{Token: spec, Reason: "invalid format specifier"}
	}
	if rest != "" {
		w, err := strconv.Atoi(rest)
		if err != nil {
			return fs, &ansi.DirectiveError{Token: spec, Reason: "invalid format width"}
		}
		fs.width = w
	}
	return fs, nil
}

// displayWidth is the number of terminal columns the plain text occupies.
func displayWidth(s string) int { return runewidth.StringWidth(s) }

// padCounts splits the columns needed to reach width between left and right
// padding for the given alignment.
func padCounts(align byte, have, width, fillWidth int) (left, right int) {
	if fillWidth <= 0 || have >= width {
		return 0, 0
	}
	n := (width - have) / fillWidth
	switch align {
	case '>':
		return n, 0
	case '^':
		return n / 2, n - n/2
	default:
		return 0, n
	}
}
