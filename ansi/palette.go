package ansi

// Palette color values taken from https://en.wikipedia.org/wiki/ANSI_escape_code#Colors.

import colorful "github.com/lucasb-eyer/go-colorful"

// Palette is a limited palette of colors for legacy terminals.
type Palette []colorful.Color

func paletteRGB(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Palette3 is the classic 3-bit palette of 8 colors.
var Palette3 = Palette{
	paletteRGB(0x00, 0x00, 0x00), // black
	paletteRGB(0x80, 0x00, 0x00), // red
	paletteRGB(0x00, 0x80, 0x00), // green
	paletteRGB(0x80, 0x80, 0x00), // yellow
	paletteRGB(0x00, 0x00, 0x80), // blue
	paletteRGB(0x80, 0x00, 0x80), // magenta
	paletteRGB(0x00, 0x80, 0x80), // cyan
	paletteRGB(0xC0, 0xC0, 0xC0), // white
}

// Palette4 is the extended 4-bit palette of the 8 classic colors and their
// bright counterparts.
var Palette4 = Palette3.concat(
	paletteRGB(0x80, 0x80, 0x80), // bright black
	paletteRGB(0xFF, 0x00, 0x00), // bright red
	paletteRGB(0x00, 0xFF, 0x00), // bright green
	paletteRGB(0xFF, 0xFF, 0x00), // bright yellow
	paletteRGB(0x00, 0x00, 0xFF), // bright blue
	paletteRGB(0xFF, 0x00, 0xFF), // bright magenta
	paletteRGB(0x00, 0xFF, 0xFF), // bright cyan
	paletteRGB(0xFF, 0xFF, 0xFF), // bright white
)

// Palette8 is the extended 8-bit palette: the 16 extended colors, a
// 6x6x6=216 color cube, and 24 shades of gray.
var Palette8 = func() Palette {
	p := make(Palette, 0, 256)
	p = append(p, Palette4...)
	levels := [6]uint8{0x00, 0x5F, 0x87, 0xAF, 0xD7, 0xFF}
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				p = append(p, paletteRGB(r, g, b))
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p = append(p, paletteRGB(v, v, v))
	}
	return p
}()

func (p Palette) concat(colors ...colorful.Color) Palette {
	out := make(Palette, 0, len(p)+len(colors))
	out = append(out, p...)
	out = append(out, colors...)
	return out
}

// Nearest returns the palette index whose color is perceptually closest to
// the given components, using CIE-L*a*b* distance.
func (p Palette) Nearest(r, g, b uint8) int {
	target := paletteRGB(r, g, b)
	best, bestDist := 0, -1.0
	for i, c := range p {
		if d := target.DistanceLab(c); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Quantize converts a 24-bit color setting into the nearest 8-bit palette
// setting. Settings that are not 24-bit color functions are returned
// unchanged.
func Quantize(s Setting) Setting {
	codes := s.codes
	if len(codes) != 5 || codes[1] != 2 || !isColorFn(codes[0]) {
		return s
	}
	idx := Palette8.Nearest(uint8(codes[2]), uint8(codes[3]), uint8(codes[4]))
	return newSetting([]int{codes[0], 5, idx})
}
