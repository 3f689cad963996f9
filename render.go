package ansitext

import "github.com/ansitext/ansitext/ansi"

// appendSGR appends one SGR sequence selecting the given settings, joining
// their parameter strings in order. It appends nothing for an empty list.
func appendSGR(p []byte, settings []ansi.Setting) []byte {
	if len(settings) == 0 {
		return p
	}
	p = append(p, ansi.CSI...)
	for i, s := range settings {
		if i > 0 {
			p = append(p, ansi.Sep...)
		}
		p = append(p, s.String()...)
	}
	return append(p, ansi.SGREnd)
}

// appendReset appends a full SGR reset sequence.
func appendReset(p []byte) []byte {
	return append(p, ansi.CSI+"0"+string(ansi.SGREnd)...)
}

// render encodes plain text and its resolved runs. At every transition out
// of a styled run a standalone reset is emitted before the next run's
// sequence, so a formatted string concatenates byte-for-byte with a render
// of its continuation.
func render(p []byte, plain string, runs []run) []byte {
	styled := false
	for _, r := range runs {
		if styled {
			p = appendReset(p)
		}
		p = appendSGR(p, r.active)
		p = append(p, plain[r.Start:r.End]...)
		styled = len(r.active) > 0
	}
	if styled {
		p = appendReset(p)
	}
	return p
}
