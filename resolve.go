package ansitext

import (
	"sort"

	"github.com/ansitext/ansitext/ansi"
)

// activeAt resolves which settings are in effect at a byte offset. Within
// each formatting category the winner is the covering range with the
// highest layer, ties broken by most recent application. Opaque settings do
// not compete: every distinct one covering pos is in effect. The result is
// ordered by application order.
func (st *store) activeAt(pos int) []ansi.Setting {
	winners := make(map[ansi.Category]Range)
	var opaque []Range
	for _, r := range st.ranges {
		if !r.Contains(pos) {
			continue
		}
		cat := r.Setting.Category()
		if cat == ansi.Unknown {
			opaque = append(opaque, r)
			continue
		}
		if have, ok := winners[cat]; !ok || beats(r, have) {
			winners[cat] = r
		}
	}
	active := make([]Range, 0, len(winners)+len(opaque))
	for _, r := range winners {
		active = append(active, r)
	}
	for _, r := range opaque {
		if !containsSetting(active, r.Setting) {
			active = append(active, r)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].seq < active[j].seq })
	out := make([]ansi.Setting, len(active))
	for i, r := range active {
		out[i] = r.Setting
	}
	return out
}

func beats(a, b Range) bool {
	if a.Layer != b.Layer {
		return a.Layer > b.Layer
	}
	return a.seq > b.seq
}

func containsSetting(rs []Range, s ansi.Setting) bool {
	for _, r := range rs {
		if r.Setting.Equal(s) {
			return true
		}
	}
	return false
}

// run is a maximal span of text over which one resolved setting list holds.
type run struct {
	Span
	active []ansi.Setting
}

// runs splits [0, n) at every range boundary and resolves each segment,
// merging adjacent segments whose resolved settings agree.
func (st *store) runs(n int) []run {
	if n <= 0 {
		return nil
	}
	cuts := make([]int, 0, 2*len(st.ranges)+2)
	cuts = append(cuts, 0, n)
	for _, r := range st.ranges {
		if r.Start > 0 && r.Start < n {
			cuts = append(cuts, r.Start)
		}
		if r.End > 0 && r.End < n {
			cuts = append(cuts, r.End)
		}
	}
	sort.Ints(cuts)
	var out []run
	for i := 1; i < len(cuts); i++ {
		start, end := cuts[i-1], cuts[i]
		if end <= start {
			continue
		}
		active := st.activeAt(start)
		if len(out) > 0 && settingsEqual(out[len(out)-1].active, active) {
			out[len(out)-1].End = end
			continue
		}
		out = append(out, run{Span{start, end}, active})
	}
	return out
}

func settingsEqual(a, b []ansi.Setting) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// simplify rebuilds the store as the minimal set of ranges producing the
// same resolved runs: shadowed ranges disappear and contiguous equal spans
// merge. The result is idempotent under further simplification.
func (st *store) simplify(n int) {
	st.rebuild(st.runs(n))
}

// rebuild replaces the store's contents with bottom-layer ranges derived
// from resolved runs, opening one range per distinct setting and extending
// it across contiguous runs that keep it.
func (st *store) rebuild(runs []run) {
	st.ranges = st.ranges[:0]
	st.seq = 0
	type openRange struct {
		start   int
		setting ansi.Setting
	}
	var open []openRange
	pos := 0
	for _, r := range runs {
		keep := open[:0]
		for _, o := range open {
			if r.Start == pos && settingIn(r.active, o.setting) {
				keep = append(keep, o)
				continue
			}
			st.add(Span{o.start, pos}, o.setting, Bottommost)
		}
		open = keep
		for _, s := range r.active {
			already := false
			for _, o := range open {
				if o.setting.Equal(s) {
					already = true
					break
				}
			}
			if !already {
				open = append(open, openRange{r.Start, s})
			}
		}
		pos = r.End
	}
	for _, o := range open {
		st.add(Span{o.start, pos}, o.setting, Bottommost)
	}
}

func settingIn(ss []ansi.Setting, s ansi.Setting) bool {
	for _, have := range ss {
		if have.Equal(s) {
			return true
		}
	}
	return false
}
