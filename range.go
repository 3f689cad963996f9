package ansitext

import (
	"fmt"
	"sort"

	"github.com/ansitext/ansitext/ansi"
)

// Layer orders formatting ranges: a Topmost range beats any Bottommost
// range over the same text, regardless of application order. Apply and
// With format on the Topmost layer; Bottommost is for fallback styling
// that later applications should override.
type Layer uint8

const (
	Bottommost Layer = iota
	Topmost
)

// Span is a half-open [Start, End) interval of byte offsets into plain text.
type Span struct{ Start, End int }

// Contains reports whether the byte offset pos lies within the span.
func (sp Span) Contains(pos int) bool { return sp.Start <= pos && pos < sp.End }

// Empty reports whether the span covers no text.
func (sp Span) Empty() bool { return sp.End <= sp.Start }

// Range is one formatting setting applied over a span of text.
type Range struct {
	Span
	Setting ansi.Setting
	Layer   Layer

	seq uint64
}

// RangeError indicates a span that does not fit within a text of length Len.
type RangeError struct {
	Start, End, Len int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d) out of bounds for length %d", e.Start, e.End, e.Len)
}

// store holds formatting ranges over a piece of text, allocating each a
// sequence number so that later applications win over earlier ones within
// the same layer.
type store struct {
	ranges []Range
	seq    uint64
}

func (st *store) nextSeq() uint64 {
	st.seq++
	return st.seq
}

func (st *store) add(sp Span, s ansi.Setting, layer Layer) {
	if sp.Empty() || !s.Valid() {
		return
	}
	st.ranges = append(st.ranges, Range{
		Span:    sp,
		Setting: s,
		Layer:   layer,
		seq:     st.nextSeq(),
	})
}

// clearSpan removes all formatting within sp, splitting ranges that
// straddle its edges.
func (st *store) clearSpan(sp Span) {
	if sp.Empty() {
		return
	}
	out := st.ranges[:0]
	var split []Range
	for _, r := range st.ranges {
		switch {
		case r.End <= sp.Start || r.Start >= sp.End:
			out = append(out, r)
		case r.Start < sp.Start && r.End > sp.End:
			right := r
			right.Start = sp.End
			r.End = sp.Start
			out = append(out, r)
			split = append(split, right)
		case r.Start < sp.Start:
			r.End = sp.Start
			out = append(out, r)
		case r.End > sp.End:
			r.Start = sp.End
			out = append(out, r)
		}
	}
	st.ranges = append(out, split...)
}

func (st *store) clearAll() {
	st.ranges = st.ranges[:0]
}

// insert makes room for n bytes at offset at. Ranges at or after the
// insertion point shift right and ranges straddling it grow. When extend is
// set, ranges that merely touch the insertion point also grow, so the
// inserted text inherits their formatting.
func (st *store) insert(at, n int, extend bool) {
	if n <= 0 {
		return
	}
	for i := range st.ranges {
		r := &st.ranges[i]
		switch {
		case extend && r.Start == at && at == 0:
			r.End += n
		case r.Start >= at:
			r.Start += n
			r.End += n
		case r.End > at:
			r.End += n
		case extend && r.End == at:
			r.End += n
		}
	}
}

// delete collapses the span sp, dropping ranges that fall entirely inside it.
func (st *store) delete(sp Span) {
	if sp.Empty() {
		return
	}
	n := sp.End - sp.Start
	shift := func(pos int) int {
		switch {
		case pos <= sp.Start:
			return pos
		case pos >= sp.End:
			return pos - n
		default:
			return sp.Start
		}
	}
	out := st.ranges[:0]
	for _, r := range st.ranges {
		r.Start = shift(r.Start)
		r.End = shift(r.End)
		if !r.Empty() {
			out = append(out, r)
		}
	}
	st.ranges = out
}

// sliceCopy returns the ranges overlapping sp, clipped to it and rebased so
// that sp.Start becomes offset 0. Relative precedence is preserved.
func (st *store) sliceCopy(sp Span) store {
	var out store
	out.seq = st.seq
	for _, r := range st.ranges {
		start, end := r.Start, r.End
		if start < sp.Start {
			start = sp.Start
		}
		if end > sp.End {
			end = sp.End
		}
		if end <= start {
			continue
		}
		r.Start = start - sp.Start
		r.End = end - sp.Start
		out.ranges = append(out.ranges, r)
	}
	return out
}

// concat appends another store's ranges at byte offset off, renumbering
// them after this store's own so they resolve as if applied later.
func (st *store) concat(other store, off int) {
	rs := make([]Range, len(other.ranges))
	copy(rs, other.ranges)
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].seq < rs[j].seq })
	for _, r := range rs {
		r.Start += off
		r.End += off
		r.seq = st.nextSeq()
		st.ranges = append(st.ranges, r)
	}
}

func (st *store) clone() store {
	out := *st
	out.ranges = make([]Range, len(st.ranges))
	copy(out.ranges, st.ranges)
	return out
}

// translate remaps every range endpoint through a monotonic position map,
// dropping ranges that collapse.
func (st *store) translate(f func(pos int) int) {
	out := st.ranges[:0]
	for _, r := range st.ranges {
		r.Start = f(r.Start)
		r.End = f(r.End)
		if !r.Empty() {
			out = append(out, r)
		}
	}
	st.ranges = out
}
