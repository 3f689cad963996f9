package ansi

// SGR parameter codes; see https://en.wikipedia.org/wiki/ANSI_escape_code#SGR.
const (
	CodeReset           = 0 // clear all attributes; synthesized by rendering, never stored
	CodeBold            = 1
	CodeFaint           = 2
	CodeItalic          = 3
	CodeUnderline       = 4
	CodeSlowBlink       = 5
	CodeRapidBlink      = 6
	CodeReverse         = 7
	CodeConceal         = 8
	CodeCrossedOut      = 9
	CodeDefaultFont     = 10
	CodeGothicFont      = 20
	CodeDoubleUnderline = 21
	CodeNoBoldFaint     = 22
	CodeNoItalic        = 23
	CodeNoUnderline     = 24
	CodeNoBlink         = 25
	CodeProportional    = 26
	CodeNoReverse       = 27
	CodeNoConceal       = 28
	CodeNoCrossedOut    = 29

	CodeFGBlack   = 30
	CodeFGRed     = 31
	CodeFGGreen   = 32
	CodeFGYellow  = 33
	CodeFGBlue    = 34
	CodeFGMagenta = 35
	CodeFGCyan    = 36
	CodeFGWhite   = 37
	CodeFGSet     = 38 // extended foreground color function
	CodeFGDefault = 39

	CodeBGBlack   = 40
	CodeBGRed     = 41
	CodeBGGreen   = 42
	CodeBGYellow  = 43
	CodeBGBlue    = 44
	CodeBGMagenta = 45
	CodeBGCyan    = 46
	CodeBGWhite   = 47
	CodeBGSet     = 48 // extended background color function
	CodeBGDefault = 49

	CodeNoProportional  = 50
	CodeFramed          = 51
	CodeEncircled       = 52
	CodeOverlined       = 53
	CodeNoFrameEncircle = 54
	CodeNoOverlined     = 55
	CodeULSet           = 58 // underline color function
	CodeULDefault       = 59

	CodeFGBrightBlack = 90
	CodeFGBrightWhite = 97
	CodeBGBrightBlack = 100
	CodeBGBrightWhite = 107
)

// Category identifies the attribute group an SGR parameter affects. Only one
// setting per known category may be in effect at a time; Unknown settings
// never compete with each other or with known ones.
type Category uint8

// Attribute categories, mirroring the mutually exclusive SGR effect groups.
const (
	Unknown Category = iota
	Weight
	Italic
	Underline // single and double underline styles share one group
	Overline
	Blink
	Reverse
	Conceal
	Strike
	Font
	Spacing
	Boxing
	FgColor
	BgColor
	UlColor

	numCategories
)

var categoryNames = []string{
	"unknown",
	"weight",
	"italic",
	"underline",
	"overline",
	"blink",
	"reverse",
	"conceal",
	"strike",
	"font",
	"spacing",
	"boxing",
	"fg-color",
	"bg-color",
	"ul-color",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "invalid"
}

// ClearCode returns the SGR parameter that clears settings of this category.
// Returns 0 (full reset) for Unknown, which has no selective clear.
func (c Category) ClearCode() int {
	switch c {
	case Weight:
		return CodeNoBoldFaint
	case Italic:
		return CodeNoItalic
	case Underline:
		return CodeNoUnderline
	case Overline:
		return CodeNoOverlined
	case Blink:
		return CodeNoBlink
	case Reverse:
		return CodeNoReverse
	case Conceal:
		return CodeNoConceal
	case Strike:
		return CodeNoCrossedOut
	case Font:
		return CodeDefaultFont
	case Spacing:
		return CodeNoProportional
	case Boxing:
		return CodeNoFrameEncircle
	case FgColor:
		return CodeFGDefault
	case BgColor:
		return CodeBGDefault
	case UlColor:
		return CodeULDefault
	}
	return CodeReset
}

// effect describes what a parameter code does to its category.
type effect uint8

const (
	effNone effect = iota // unrecognized code
	effReset              // code 0: clears every category
	effApply              // sets the category's current value
	effClear              // removes the category's current value
)

// codeEffect classifies a leading SGR parameter code.
func codeEffect(code int) (Category, effect) {
	switch {
	case code == CodeReset:
		return Unknown, effReset
	case code == CodeBold || code == CodeFaint:
		return Weight, effApply
	case code == CodeItalic:
		return Italic, effApply
	case code == CodeUnderline || code == CodeDoubleUnderline:
		return Underline, effApply
	case code == CodeSlowBlink || code == CodeRapidBlink:
		return Blink, effApply
	case code == CodeReverse:
		return Reverse, effApply
	case code == CodeConceal:
		return Conceal, effApply
	case code == CodeCrossedOut:
		return Strike, effApply
	case code >= CodeDefaultFont && code <= CodeGothicFont:
		return Font, effApply
	case code == CodeNoBoldFaint:
		return Weight, effClear
	case code == CodeNoItalic:
		return Italic, effClear
	case code == CodeNoUnderline:
		return Underline, effClear
	case code == CodeNoBlink:
		return Blink, effClear
	case code == CodeProportional:
		return Spacing, effApply
	case code == CodeNoReverse:
		return Reverse, effClear
	case code == CodeNoConceal:
		return Conceal, effClear
	case code == CodeNoCrossedOut:
		return Strike, effClear
	case code >= CodeFGBlack && code <= CodeFGSet:
		return FgColor, effApply
	case code == CodeFGDefault:
		return FgColor, effClear
	case code >= CodeBGBlack && code <= CodeBGSet:
		return BgColor, effApply
	case code == CodeBGDefault:
		return BgColor, effClear
	case code == CodeNoProportional:
		return Spacing, effClear
	case code == CodeFramed || code == CodeEncircled:
		return Boxing, effApply
	case code == CodeOverlined:
		return Overline, effApply
	case code == CodeNoFrameEncircle:
		return Boxing, effClear
	case code == CodeNoOverlined:
		return Overline, effClear
	case code == CodeULSet:
		return UlColor, effApply
	case code == CodeULDefault:
		return UlColor, effClear
	case code >= CodeFGBrightBlack && code <= CodeFGBrightWhite:
		return FgColor, effApply
	case code >= CodeBGBrightBlack && code <= CodeBGBrightWhite:
		return BgColor, effApply
	}
	return Unknown, effNone
}

// colorFnArgs returns the expected argument count for an extended color
// function selector (the code after 38, 48, or 58): 2 selects a 24-bit
// r;g;b triple, 5 selects one 8-bit palette index.
func colorFnArgs(selector int) int {
	switch selector {
	case 2:
		return 3
	case 5:
		return 1
	}
	return -1
}

// isColorFn reports whether code introduces a multi-parameter color function.
func isColorFn(code int) bool {
	return code == CodeFGSet || code == CodeBGSet || code == CodeULSet
}
