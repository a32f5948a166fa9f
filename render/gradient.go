package render

import "encoding/binary"

// PackXRGB packs a color into an XRGB8888 pixel value: blue in bits 0-7,
// green in 8-15, red in 16-23, bits 24-31 unused.
func PackXRGB(r, g, b uint8) uint32 {
	return uint32(b) | uint32(g)<<8 | uint32(r)<<16
}

// UnpackXRGB is the inverse of PackXRGB.
func UnpackXRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// FillGradient writes the frame gradient into fb. For pixel (x, y):
// blue = blueBase+x, green = greenBase+y, red = red, all mod 256.
// Rows are addressed through the stride.
func FillGradient(fb *Framebuffer, red, greenBase, blueBase uint8) {
	width := fb.Width()
	height := fb.Height()

	for y := 0; y < height; y++ {
		row := fb.Row(y)
		if row == nil {
			return
		}
		green := greenBase + uint8(y)
		for x := 0; x < width; x++ {
			blue := blueBase + uint8(x)
			binary.LittleEndian.PutUint32(row[x*BytesPerPixel:], PackXRGB(red, green, blue))
		}
	}
}

// PixelAt returns the color of pixel (x, y). ok is false outside the buffer.
func PixelAt(fb *Framebuffer, x, y int) (r, g, b uint8, ok bool) {
	row := fb.Row(y)
	if row == nil || x < 0 || x >= fb.Width() {
		return 0, 0, 0, false
	}
	r, g, b = UnpackXRGB(binary.LittleEndian.Uint32(row[x*BytesPerPixel:]))
	return r, g, b, true
}
