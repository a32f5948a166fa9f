package render

import (
	"encoding/binary"
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
)

var (
	hudFG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	hudBG = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

const hudPad = 2 * hudScale

// DrawText writes s with its top-left corner at (x, y). Pixels outside the
// framebuffer are clipped.
func DrawText(fb *Framebuffer, x, y int, s string, c color.RGBA) {
	if !fb.Allocated() {
		return
	}
	d := &fbDisplayer{fb: fb}
	f := &hudFont{}
	tinyfont.WriteLine(d, f, int16(x), int16(y+(glyphH-1)*hudScale), s, c)
}

// TextWidth returns the rendered width of s in framebuffer pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(&hudFont{}, s)
	return int(w)
}

// DrawHUD stamps the frame number and the gradient offsets into the top-left
// corner of fb.
func DrawHUD(fb *Framebuffer, frame uint64, xOffset, yOffset uint8) {
	if !fb.Allocated() {
		return
	}
	s := fmt.Sprintf("F:%d X:%d Y:%d", frame, xOffset, yOffset)
	d := &fbDisplayer{fb: fb}
	w := TextWidth(s) + 2*hudPad
	h := glyphH*hudScale + 2*hudPad
	_ = d.FillRectangle(0, 0, int16(w), int16(h), hudBG)
	DrawText(fb, hudPad, hudPad, s, hudFG)
}

// fbDisplayer adapts a Framebuffer to drivers.Displayer.
type fbDisplayer struct {
	fb *Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	row := d.fb.Row(int(y))
	ix := int(x)
	if row == nil || ix < 0 || ix >= d.fb.Width() {
		return
	}
	binary.LittleEndian.PutUint32(row[ix*BytesPerPixel:], PackXRGB(c.R, c.G, c.B))
}

func (d *fbDisplayer) Display() error { return nil }

func (d *fbDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	pixel := PackXRGB(c.R, c.G, c.B)
	x0 := clampInt(int(x), 0, d.fb.Width())
	x1 := clampInt(int(x)+int(width), 0, d.fb.Width())
	y0 := clampInt(int(y), 0, d.fb.Height())
	y1 := clampInt(int(y)+int(height), 0, d.fb.Height())
	for py := y0; py < y1; py++ {
		row := d.fb.Row(py)
		for px := x0; px < x1; px++ {
			binary.LittleEndian.PutUint32(row[px*BytesPerPixel:], pixel)
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
