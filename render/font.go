package render

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	glyphW = 3
	glyphH = 5

	// hudScale is the size in framebuffer pixels of one glyph pixel.
	hudScale = 4
)

// glyphRows holds 3x5 bitmaps; bit 2 is the leftmost pixel.
var glyphRows = map[rune][glyphH]uint8{
	'0': {7, 5, 5, 5, 7},
	'1': {2, 6, 2, 2, 7},
	'2': {7, 1, 7, 4, 7},
	'3': {7, 1, 7, 1, 7},
	'4': {5, 5, 7, 1, 1},
	'5': {7, 4, 7, 1, 7},
	'6': {7, 4, 7, 5, 7},
	'7': {7, 1, 1, 1, 1},
	'8': {7, 5, 7, 5, 7},
	'9': {7, 5, 7, 1, 7},
	'F': {7, 4, 6, 4, 4},
	'X': {5, 5, 2, 5, 5},
	'Y': {5, 5, 2, 2, 2},
	':': {0, 2, 0, 2, 0},
	' ': {0, 0, 0, 0, 0},
	'?': {7, 1, 2, 0, 2},
}

// hudFont is a tinyfont.Fonter for the frame counter overlay. Each glyph
// pixel is drawn as a hudScale×hudScale block. Not safe for concurrent use.
type hudFont struct {
	g hudGlyph
}

type hudGlyph struct {
	r rune
}

func (f *hudFont) GetYAdvance() uint8 { return (glyphH + 1) * hudScale }

func (f *hudFont) GetGlyph(r rune) tinyfont.Glypher {
	if _, ok := glyphRows[r]; !ok {
		r = '?'
	}
	f.g.r = r
	return &f.g
}

func (g *hudGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows := glyphRows[g.r]
	top := y - (glyphH-1)*hudScale
	for row := int16(0); row < glyphH; row++ {
		bits := rows[row]
		for col := int16(0); col < glyphW; col++ {
			if bits&(4>>col) == 0 {
				continue
			}
			for dy := int16(0); dy < hudScale; dy++ {
				for dx := int16(0); dx < hudScale; dx++ {
					display.SetPixel(x+col*hudScale+dx, top+row*hudScale+dy, c)
				}
			}
		}
	}
}

func (g *hudGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    glyphW * hudScale,
		Height:   glyphH * hudScale,
		XAdvance: (glyphW + 1) * hudScale,
		XOffset:  0,
		YOffset:  -(glyphH - 1) * hudScale,
	}
}
