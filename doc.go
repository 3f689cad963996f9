// Package ansitext manipulates formatted terminal text as plain strings
// with out-of-band formatting ranges, rendering ANSI escape sequences only
// on demand.
//
// The mutable [Text] and immutable [Str] containers track which settings
// cover which byte spans; editing operations keep formatting aligned with
// the text it covers, and overlapping styles resolve by layer and
// application order per formatting category. The ansi subpackage holds the
// setting model, directive parser, decoder, and control sequence
// generators.
//
// All positions and lengths are byte offsets into the plain text, as with
// the strings package, not code-point or column indexes. Width-aware
// operations (padding, alignment, tab expansion) measure terminal columns
// while still addressing text by byte.
package ansitext
