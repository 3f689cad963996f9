package ansi

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// names maps normalized directive names to their Setting expansions. Built
// once at init; Setting values are immutable, so handing out shared slices
// is safe as long as callers never mutate them (ParseDirectives copies into
// fresh output slices).
var names = map[string][]Setting{}

// Named looks up a directive name ("bold", "red", "bg_bright_cyan",
// "indian_red"). Names are case-insensitive; spaces and dashes are treated
// as underscores.
func Named(name string) ([]Setting, bool) {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	ss, ok := names[key]
	return ss, ok
}

func defName(name string, codes ...int) {
	names[name] = []Setting{newSetting(codes)}
}

func defAlias(alias, name string) {
	names[alias] = names[name]
}

// defColor registers fg_NAME, bg_NAME, and the bare NAME alias for the
// foreground form.
func defColor(name string, fg, bg []Setting) {
	names["fg_"+name] = fg
	names["bg_"+name] = bg
	names[name] = fg
}

// defHexColor registers an extended color from its HTML hex notation.
func defHexColor(name, hex string) {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("ansi: bad color table entry %s=%s", name, hex))
	}
	r, g, b := c.RGB255()
	defColor(name, RGB(Foreground, r, g, b), RGB(Background, r, g, b))
}

func init() {
	// Style directives.
	defName("bold", CodeBold)
	defName("faint", CodeFaint)
	defName("italic", CodeItalic)
	defAlias("italics", "italic")
	defName("underline", CodeUnderline)
	defName("slow_blink", CodeSlowBlink)
	defName("rapid_blink", CodeRapidBlink)
	defName("swap_bg_fg", CodeReverse)
	defAlias("reverse", "swap_bg_fg")
	defName("hide", CodeConceal)
	defAlias("conceal", "hide")
	defName("crossed_out", CodeCrossedOut)
	defAlias("strike", "crossed_out")
	defName("double_underline", CodeDoubleUnderline)
	defName("overlined", CodeOverlined)
	defName("framed", CodeFramed)
	defName("encircled", CodeEncircled)
	defName("proportional_spacing", CodeProportional)
	defName("default_font", CodeDefaultFont)
	defName("gothic_font", CodeGothicFont)
	for i := 1; i <= 9; i++ {
		defName(fmt.Sprintf("alt_font_%d", i), CodeDefaultFont+i)
	}

	// Selective clears.
	defName("no_bold_faint", CodeNoBoldFaint)
	defName("no_italic", CodeNoItalic)
	defName("no_underline", CodeNoUnderline)
	defName("no_blink", CodeNoBlink)
	defName("no_swap_bg_fg", CodeNoReverse)
	defName("no_hide", CodeNoConceal)
	defName("no_crossed_out", CodeNoCrossedOut)
	defName("no_proportional_spacing", CodeNoProportional)
	defName("no_framed_encircled", CodeNoFrameEncircle)
	defName("no_overlined", CodeNoOverlined)
	defName("fg_default", CodeFGDefault)
	defName("bg_default", CodeBGDefault)
	defName("default_underline_color", CodeULDefault)
	defAlias("default_underline_colour", "default_underline_color")

	// Classic 3-bit and bright 4-bit colors.
	classics := []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	for i, name := range classics {
		defColor(name,
			[]Setting{newSetting([]int{CodeFGBlack + i})},
			[]Setting{newSetting([]int{CodeBGBlack + i})})
		defColor("bright_"+name,
			[]Setting{newSetting([]int{CodeFGBrightBlack + i})},
			[]Setting{newSetting([]int{CodeBGBrightBlack + i})})
	}

	// Extended colors, named after their HTML counterparts.
	for _, e := range [...]struct{ name, hex string }{
		{"indian_red", "#CD5C5C"},
		{"light_coral", "#F08080"},
		{"salmon", "#FA8072"},
		{"crimson", "#DC143C"},
		{"fire_brick", "#B22222"},
		{"dark_red", "#8B0000"},
		{"pink", "#FFC0CB"},
		{"hot_pink", "#FF69B4"},
		{"deep_pink", "#FF1493"},
		{"coral", "#FF7F50"},
		{"tomato", "#FF6347"},
		{"dark_orange", "#FF8C00"},
		{"gold", "#FFD700"},
		{"khaki", "#F0E68C"},
		{"lavender", "#E6E6FA"},
		{"plum", "#DDA0DD"},
		{"violet", "#EE82EE"},
		{"orchid", "#DA70D6"},
		{"fuchsia", "#FF00FF"},
		{"medium_purple", "#9370DB"},
		{"rebecca_purple", "#663399"},
		{"blue_violet", "#8A2BE2"},
		{"dark_violet", "#9400D3"},
		{"dark_magenta", "#8B008B"},
		{"indigo", "#4B0082"},
		{"slate_blue", "#6A5ACD"},
		{"chartreuse", "#7FFF00"},
		{"lime", "#00FF00"},
		{"lime_green", "#32CD32"},
		{"pale_green", "#98FB98"},
		{"spring_green", "#00FF7F"},
		{"sea_green", "#2E8B57"},
		{"forest_green", "#228B22"},
		{"dark_green", "#006400"},
		{"olive", "#808000"},
		{"teal", "#008080"},
		{"aqua", "#00FFFF"},
		{"turquoise", "#40E0D0"},
		{"steel_blue", "#4682B4"},
		{"sky_blue", "#87CEEB"},
		{"deep_sky_blue", "#00BFFF"},
		{"dodger_blue", "#1E90FF"},
		{"cornflower_blue", "#6495ED"},
		{"royal_blue", "#4169E1"},
		{"medium_blue", "#0000CD"},
		{"dark_blue", "#00008B"},
		{"navy", "#000080"},
		{"midnight_blue", "#191970"},
		{"tan", "#D2B48C"},
		{"chocolate", "#D2691E"},
		{"sienna", "#A0522D"},
		{"brown", "#A52A2A"},
		{"maroon", "#800000"},
		{"snow", "#FFFAFA"},
		{"ivory", "#FFFFF0"},
		{"beige", "#F5F5DC"},
		{"silver", "#C0C0C0"},
		{"light_gray", "#D3D3D3"},
		{"dark_gray", "#A9A9A9"},
		{"dim_gray", "#696969"},
		{"slate_gray", "#708090"},
	} {
		defHexColor(e.name, e.hex)
	}
	defAlias("light_grey", "light_gray")
	defAlias("dark_grey", "dark_gray")
	defAlias("dim_grey", "dim_gray")
	defAlias("slate_grey", "slate_gray")

	// A few palette-indexed extended colors, kept indexed rather than
	// 24-bit for wider terminal support.
	defColor("orange", Color256(Foreground, 214), Color256(Background, 214))
	defColor("orange_red", Color256(Foreground, 202), Color256(Background, 202))
	defColor("purple", Color256(Foreground, 90), Color256(Background, 90))
	defColor("gray", Color256(Foreground, 244), Color256(Background, 244))
	defAlias("grey", "gray")
	defAlias("fg_grey", "fg_gray")
	defAlias("bg_grey", "bg_gray")
}
